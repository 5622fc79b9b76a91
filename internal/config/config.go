// Package config loads server settings from defaults, an optional YAML file and
// environment variables, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Config represents the server configuration.
type Config struct {
	Port        int    `yaml:"port" env:"PORT"`
	DataFile    string `yaml:"data_file" env:"DATA_FILE"`
	PublicDir   string `yaml:"public_dir" env:"PUBLIC_DIR"`
	StoreDriver string `yaml:"store_driver" env:"STORE_DRIVER"` // json or sqlite
	SQLitePath  string `yaml:"sqlite_path" env:"SQLITE_PATH"`
	GinMode     string `yaml:"gin_mode" env:"GIN_MODE"`

	MaxUploadMB int `yaml:"max_upload_mb" env:"MAX_UPLOAD_MB"`

	UploadRatePerMinute int `yaml:"upload_rate_per_minute" env:"UPLOAD_RATE_PER_MINUTE"`
	UploadRateBurst     int `yaml:"upload_rate_burst" env:"UPLOAD_RATE_BURST"`

	CORSAllowOrigins []string `yaml:"cors_allow_origins" env:"CORS_ALLOW_ORIGINS" envSeparator:" "` // empty = all origins
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Port:                3000,
		DataFile:            "data.json",
		PublicDir:           "public",
		StoreDriver:         DriverJSON,
		SQLitePath:          "blog.db",
		GinMode:             "debug",
		MaxUploadMB:         10,
		UploadRatePerMinute: 30,
		UploadRateBurst:     10,
	}
}

// Load builds the configuration. path may be empty, and a missing file at path
// is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path is the operator's config file
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Port < 1 || c.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("port must be between 1 and 65535, got %d", c.Port))
	}
	if c.DataFile == "" && c.StoreDriver == DriverJSON {
		result = multierror.Append(result, fmt.Errorf("data_file cannot be empty"))
	}
	if c.PublicDir == "" {
		result = multierror.Append(result, fmt.Errorf("public_dir cannot be empty"))
	}
	switch c.StoreDriver {
	case DriverJSON:
	case DriverSQLite:
		if c.SQLitePath == "" {
			result = multierror.Append(result, fmt.Errorf("sqlite_path cannot be empty when store_driver is sqlite"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("store_driver must be %q or %q, got %q", DriverJSON, DriverSQLite, c.StoreDriver))
	}
	if c.MaxUploadMB < 1 {
		result = multierror.Append(result, fmt.Errorf("max_upload_mb must be positive, got %d", c.MaxUploadMB))
	}
	if c.UploadRatePerMinute < 0 {
		result = multierror.Append(result, fmt.Errorf("upload_rate_per_minute cannot be negative, got %d", c.UploadRatePerMinute))
	}
	if c.UploadRatePerMinute > 0 && c.UploadRateBurst < 1 {
		result = multierror.Append(result, fmt.Errorf("upload_rate_burst must be at least 1 when rate limiting is on, got %d", c.UploadRateBurst))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		result = multierror.Append(result, fmt.Errorf("gin_mode must be debug, release or test, got %q", c.GinMode))
	}

	return result.ErrorOrNil()
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

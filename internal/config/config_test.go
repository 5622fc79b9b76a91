package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := Default()
	if cfg.DataFile != def.DataFile || cfg.PublicDir != def.PublicDir || cfg.StoreDriver != DriverJSON {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
port: 8081
data_file: /srv/blog/data.json
public_dir: /srv/blog/public
store_driver: SQLite
sqlite_path: /srv/blog/blog.db
max_upload_mb: 4
cors_allow_origins:
  - https://a.example
  - https://b.example
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 8081 {
		t.Errorf("Port = %d, want 8081", cfg.Port)
	}
	if cfg.StoreDriver != DriverSQLite {
		t.Errorf("StoreDriver = %q, want sqlite", cfg.StoreDriver)
	}
	if cfg.MaxUploadBytes() != 4<<20 {
		t.Errorf("MaxUploadBytes() = %d", cfg.MaxUploadBytes())
	}
	if !reflect.DeepEqual(cfg.CORSAllowOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("CORSAllowOrigins = %v", cfg.CORSAllowOrigins)
	}
	// 지정하지 않은 값은 기본값 유지
	if cfg.UploadRatePerMinute != 30 {
		t.Errorf("UploadRatePerMinute = %d, want default 30", cfg.UploadRatePerMinute)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "port: 8081\ndata_file: from-yaml.json\n")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://x.example https://y.example")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want env value 9090", cfg.Port)
	}
	if cfg.DataFile != "from-yaml.json" {
		t.Errorf("DataFile = %q, want yaml value", cfg.DataFile)
	}
	if len(cfg.CORSAllowOrigins) != 2 {
		t.Errorf("CORSAllowOrigins = %v", cfg.CORSAllowOrigins)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "port: [not a number")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail on malformed yaml")
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("PORT", "abc")
	if _, err := Load(""); err == nil {
		t.Fatal("Load() should fail on non-numeric PORT")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		wantErrs int
		contains string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Port = 0 }, wantErrs: 1, contains: "port"},
		{name: "unknown driver", mutate: func(c *Config) { c.StoreDriver = "mongo" }, wantErrs: 1, contains: "store_driver"},
		{name: "sqlite without path", mutate: func(c *Config) { c.StoreDriver = DriverSQLite; c.SQLitePath = "" }, wantErrs: 1, contains: "sqlite_path"},
		{name: "rate limit disabled", mutate: func(c *Config) { c.UploadRatePerMinute = 0; c.UploadRateBurst = 0 }},
		{name: "burst zero with rate", mutate: func(c *Config) { c.UploadRateBurst = 0 }, wantErrs: 1, contains: "upload_rate_burst"},
		{name: "bad gin mode", mutate: func(c *Config) { c.GinMode = "loud" }, wantErrs: 1, contains: "gin_mode"},
		{
			name: "every problem reported",
			mutate: func(c *Config) {
				c.Port = -1
				c.DataFile = ""
				c.PublicDir = ""
				c.MaxUploadMB = 0
			},
			wantErrs: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErrs == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}

			var merr *multierror.Error
			if !errors.As(err, &merr) {
				t.Fatalf("Validate() error = %v, want *multierror.Error", err)
			}
			if len(merr.Errors) != tt.wantErrs {
				t.Errorf("Validate() reported %d errors, want %d: %v", len(merr.Errors), tt.wantErrs, err)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Validate() error %q does not mention %q", err, tt.contains)
			}
		})
	}
}

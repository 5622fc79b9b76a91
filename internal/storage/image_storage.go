package storage

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const imagesDirName = "images"

var ErrInvalidImageName = errors.New("invalid image file name")

// ImageStore writes uploaded images under <publicDir>/images and hands back
// paths relative to publicDir, which is also the static file root.
type ImageStore struct {
	publicDir string
}

func NewImageStore(publicDir string) (*ImageStore, error) {
	if err := os.MkdirAll(filepath.Join(publicDir, imagesDirName), 0755); err != nil {
		return nil, fmt.Errorf("NewImageStore(): failed to create images directory: %v", err)
	}
	return &ImageStore{publicDir: publicDir}, nil
}

func (s *ImageStore) Dir() string {
	return filepath.Join(s.publicDir, imagesDirName)
}

// Save stores r under its original file name. A file with the same name is
// overwritten.
func (s *ImageStore) Save(r io.Reader, name string) (string, error) {
	cleanName := filepath.Base(filepath.Clean(name))
	if cleanName == "." || cleanName == ".." || cleanName == string(filepath.Separator) || strings.TrimSpace(cleanName) == "" {
		return "", ErrInvalidImageName
	}

	full := filepath.Join(s.Dir(), cleanName)
	dst, err := os.Create(full)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, r); err != nil {
		// 잘린 파일이 남지 않도록 지운다
		dst.Close()
		os.Remove(full)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(full)
		return "", err
	}

	log.Printf("ImageStore.Save(): saved %s", cleanName)
	return path.Join(imagesDirName, cleanName), nil
}

// Delete is best-effort: failures are logged and never returned.
func (s *ImageStore) Delete(storedPath string) {
	if storedPath == "" {
		return
	}
	full, ok := s.resolve(storedPath)
	if !ok {
		log.Printf("ImageStore.Delete(): refusing path outside public dir: %s", storedPath)
		return
	}
	if err := os.Remove(full); err != nil {
		log.Printf("ImageStore.Delete(): failed to delete image file: %v", err)
		return
	}
	log.Printf("ImageStore.Delete(): deleted %s", storedPath)
}

// Exists reports whether storedPath points at a regular file under publicDir.
func (s *ImageStore) Exists(storedPath string) bool {
	full, ok := s.resolve(storedPath)
	if !ok {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.Mode().IsRegular()
}

func (s *ImageStore) resolve(storedPath string) (string, bool) {
	rel := filepath.Clean(filepath.FromSlash(storedPath))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.Join(s.publicDir, rel), true
}

package storage

import (
	"BlogCMS_Server/internal/models"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// JSONStore keeps every post in a single JSON array on disk.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

// ReadAll fails when the file is missing or is not a JSON array of posts.
func (s *JSONStore) ReadAll(_ context.Context) ([]models.Post, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("JSONStore.ReadAll(): failed to read %s: %w", s.path, err)
	}

	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("JSONStore.ReadAll(): malformed data file %s: %w", s.path, err)
	}
	if posts == nil {
		// "null" 문서도 빈 목록으로 취급
		posts = []models.Post{}
	}
	return posts, nil
}

// WriteAll replaces the whole document. The new content is written to a temp
// file in the same directory and renamed over the old one.
func (s *JSONStore) WriteAll(_ context.Context, posts []models.Post) error {
	if posts == nil {
		posts = []models.Post{}
	}
	// 본문에 들어간 <, >, & 를 \u003c 형태로 바꾸지 않는다
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(posts); err != nil {
		return err
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("JSONStore.WriteAll(): failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	// CreateTemp은 0600으로 만든다
	if err := tmp.Chmod(0644); err != nil {
		log.Printf("JSONStore.WriteAll(): failed to chmod temp file: %v", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("JSONStore.WriteAll(): failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("JSONStore.WriteAll(): failed to replace %s: %w", s.path, err)
	}
	return nil
}

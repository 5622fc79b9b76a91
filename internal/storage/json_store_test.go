package storage

import (
	"BlogCMS_Server/internal/models"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestJSONStoreReadAll(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		create  bool
		wantErr bool
		wantLen int
	}{
		{
			name: "valid data",
			json: `[
				{
					"id": 1,
					"title": "First",
					"description": "desc",
					"imagePath": "images/a.png",
					"authorName": "kim",
					"blogTitle": "blog",
					"paraGraph": "body"
				}
			]`,
			create:  true,
			wantLen: 1,
		},
		{
			name:    "empty array",
			json:    `[]`,
			create:  true,
			wantLen: 0,
		},
		{
			name:    "null document",
			json:    `null`,
			create:  true,
			wantLen: 0,
		},
		{
			name:    "invalid json",
			json:    `{invalid json}`,
			create:  true,
			wantErr: true,
		},
		{
			name:    "object instead of array",
			json:    `{"id": 1}`,
			create:  true,
			wantErr: true,
		},
		{
			name:    "missing file",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storePath := filepath.Join(t.TempDir(), "data.json")
			if tt.create {
				if err := os.WriteFile(storePath, []byte(tt.json), 0600); err != nil {
					t.Fatalf("Failed to write test file: %v", err)
				}
			}

			posts, err := NewJSONStore(storePath).ReadAll(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(posts) != tt.wantLen {
				t.Errorf("ReadAll() len = %v, want %v", len(posts), tt.wantLen)
			}
		})
	}
}

func TestJSONStoreWriteAllRoundTrip(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "data.json")
	store := NewJSONStore(storePath)
	ctx := context.Background()

	posts := []models.Post{
		{ID: 3, Title: "C", ImagePath: "images/c.png", ParaGraph: "line1\nline2"},
		{ID: 1, Title: "A", Description: "d", AuthorName: "lee", BlogTitle: "b", ImagePath: "images/a.png"},
	}
	if err := store.WriteAll(ctx, posts); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	first, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := store.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, posts) {
		t.Errorf("ReadAll() = %+v, want %+v", loaded, posts)
	}

	if err := store.WriteAll(ctx, loaded); err != nil {
		t.Fatalf("second WriteAll() error = %v", err)
	}
	second, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("WriteAll(ReadAll()) changed the document:\n%s\n---\n%s", first, second)
	}
}

func TestJSONStoreWriteAllFieldNames(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "data.json")
	store := NewJSONStore(storePath)

	if err := store.WriteAll(context.Background(), []models.Post{{ID: 7, Title: "T", ImagePath: "images/x.jpg"}}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "title", "description", "imagePath", "authorName", "blogTitle", "paraGraph"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("document is missing key %q: %s", key, data)
		}
	}
}

func TestJSONStoreWriteAllEmpty(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "data.json")
	store := NewJSONStore(storePath)

	if err := store.WriteAll(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("WriteAll(nil) wrote %q, want []", data)
	}

	entries, err := os.ReadDir(filepath.Dir(storePath))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestJSONStoreWriteAllKeepsMarkup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := NewJSONStore(path)
	want := []models.Post{{ID: 1, Title: "a<b>&c", ParaGraph: "<p>Tom & Jerry</p>"}}

	if err := store.WriteAll(context.Background(), want); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{`"a<b>&c"`, `"<p>Tom & Jerry</p>"`} {
		if !strings.Contains(string(data), s) {
			t.Errorf("file does not contain %s:\n%s", s, data)
		}
	}
	if strings.Contains(string(data), `\u003c`) {
		t.Errorf("file has escaped markup:\n%s", data)
	}
	if strings.HasSuffix(string(data), "\n") {
		t.Error("file ends with a trailing newline")
	}

	got, err := store.ReadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadAll() = %+v, want %+v", got, want)
	}
}

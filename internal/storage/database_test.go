package storage

import (
	"BlogCMS_Server/internal/models"
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "blog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreEmpty(t *testing.T) {
	store := openTestSQLite(t)

	posts, err := store.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Errorf("ReadAll() = %v, want empty slice", posts)
	}
}

func TestSQLiteStoreKeepsOrderAndReplaces(t *testing.T) {
	store := openTestSQLite(t)
	ctx := context.Background()

	posts := []models.Post{
		{ID: 5, Title: "five", ImagePath: "images/5.png"},
		{ID: 2, Title: "two", Description: "d", AuthorName: "a", BlogTitle: "b", ParaGraph: "p", ImagePath: "images/2.png"},
		{ID: 9, Title: "nine"},
	}
	if err := store.WriteAll(ctx, posts); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	loaded, err := store.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, posts) {
		t.Errorf("ReadAll() = %+v, want %+v", loaded, posts)
	}

	// 전체 교체: 빠진 행은 사라져야 한다
	if err := store.WriteAll(ctx, posts[1:2]); err != nil {
		t.Fatal(err)
	}
	loaded, err = store.ReadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].ID != 2 {
		t.Errorf("ReadAll() after replace = %+v", loaded)
	}
}

func TestSQLiteStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "blog.db")
	ctx := context.Background()

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.WriteAll(ctx, []models.Post{{ID: 1, Title: "kept"}}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	// 마이그레이션이 두 번 적용되면 안 된다
	reopened, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	posts, err := reopened.ReadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].Title != "kept" {
		t.Errorf("ReadAll() after reopen = %+v", posts)
	}
}

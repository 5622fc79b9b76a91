package storage

import (
	"BlogCMS_Server/internal/models"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log"

	migrate "github.com/rubenv/sql-migrate"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore는 RecordStore와 같은 계약을 sqlite 테이블 위에서 구현한다.
// position 컬럼이 삽입 순서를 보존한다
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite(): failed to open database: %w", err)
	}
	// sqlite는 단일 writer
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to connect to database: %w", err)
	}

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}
	n, err := migrate.Exec(db, "sqlite3", source, migrate.Up)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to run migrations: %w", err)
	}
	log.Printf("OpenSQLite(): %s ready, applied %d migrations", path, n)

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ReadAll(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT id, title, description, image_path, author_name, blog_title, paragraph
		FROM posts
		ORDER BY position ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImagePath, &p.AuthorName, &p.BlogTitle, &p.ParaGraph); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// WriteAll은 트랜잭션 안에서 테이블을 비우고 목록 전체를 다시 넣는다
func (s *SQLiteStore) WriteAll(ctx context.Context, posts []models.Post) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM posts"); err != nil {
		return fmt.Errorf("SQLiteStore.WriteAll(): failed to clear posts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO posts(id, position, title, description, image_path, author_name, blog_title, paragraph)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range posts {
		if _, err := stmt.ExecContext(ctx, p.ID, i, p.Title, p.Description, p.ImagePath, p.AuthorName, p.BlogTitle, p.ParaGraph); err != nil {
			return fmt.Errorf("SQLiteStore.WriteAll(): failed to insert post %d: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

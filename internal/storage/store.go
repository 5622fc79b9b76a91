package storage

import (
	"BlogCMS_Server/internal/models"
	"context"
)

// RecordStore는 게시글 목록 전체를 읽고 쓴다.
// WriteAll은 항상 전체 목록을 덮어쓴다 (부분 쓰기 없음)
type RecordStore interface {
	ReadAll(ctx context.Context) ([]models.Post, error)
	WriteAll(ctx context.Context, posts []models.Post) error
}

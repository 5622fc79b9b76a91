package posts

import (
	"BlogCMS_Server/internal/events"
	"BlogCMS_Server/internal/models"
	"BlogCMS_Server/internal/storage"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"sync"

	"github.com/samber/lo"
)

var (
	ErrNotFound = errors.New("entry not found")
	ErrUpload   = errors.New("image upload failed")
)

type imageStore interface {
	Save(r io.Reader, name string) (string, error)
	Delete(storedPath string)
}

type eventPublisher interface {
	Publish(e events.Event)
}

// Upload is an image received with a create or update request.
type Upload struct {
	Name string
	Body io.Reader
}

// Service owns every read-modify-write on the post list. All mutations go
// through mutate so they are serialized by one lock.
type Service struct {
	mu     sync.Mutex
	store  storage.RecordStore
	images imageStore
	ids    *Allocator
	events eventPublisher
}

// NewService reads the store once to seed the id allocator. A store that
// cannot be read is an error the caller should treat as fatal.
func NewService(ctx context.Context, store storage.RecordStore, images imageStore, pub eventPublisher) (*Service, error) {
	existing, err := store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("NewService(): failed to load posts: %w", err)
	}
	log.Printf("NewService(): loaded %d posts", len(existing))

	return &Service{
		store:  store,
		images: images,
		ids:    NewAllocator(existing),
		events: pub,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]models.Post, error) {
	return s.store.ReadAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (models.Post, error) {
	all, err := s.store.ReadAll(ctx)
	if err != nil {
		return models.Post{}, err
	}
	post, ok := lo.Find(all, func(p models.Post) bool { return p.ID == id })
	if !ok {
		return models.Post{}, ErrNotFound
	}
	return post, nil
}

// Create stores the image, appends a new post and returns the full list.
func (s *Service) Create(ctx context.Context, fields models.PostFields, image Upload) ([]models.Post, error) {
	var created models.Post
	// 같은 파일명을 쓰는 기존 게시글이 있으면 롤백 때 파일을 지우지 않는다
	var shared bool

	all, err := s.mutate(ctx, func(current []models.Post) ([]models.Post, error) {
		storedPath, err := s.images.Save(image.Body, image.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		shared = lo.ContainsBy(current, func(p models.Post) bool { return p.ImagePath == storedPath })

		created = models.Post{
			ID:          s.ids.Next(current),
			Title:       fields.Title,
			Description: fields.Description,
			ImagePath:   storedPath,
			AuthorName:  fields.AuthorName,
			BlogTitle:   fields.BlogTitle,
			ParaGraph:   fields.ParaGraph,
		}
		return append(current, created), nil
	})
	if err != nil {
		if created.ImagePath != "" && !shared {
			s.images.Delete(created.ImagePath)
		}
		return nil, err
	}

	s.publish(events.PostCreated, created.ID)
	return all, nil
}

// Update overwrites only the non-empty fields. When image is given, the old
// file is removed before the new one is written.
func (s *Service) Update(ctx context.Context, id int, fields models.PostFields, image *Upload) (models.Post, error) {
	var updated models.Post

	_, err := s.mutate(ctx, func(current []models.Post) ([]models.Post, error) {
		_, idx, ok := lo.FindIndexOf(current, func(p models.Post) bool { return p.ID == id })
		if !ok {
			return nil, ErrNotFound
		}

		post := &current[idx]
		applyFields(post, fields)

		if image != nil {
			s.images.Delete(post.ImagePath)
			storedPath, err := s.images.Save(image.Body, image.Name)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUpload, err)
			}
			post.ImagePath = storedPath
		}

		updated = *post
		return current, nil
	})
	if err != nil {
		return models.Post{}, err
	}

	s.publish(events.PostUpdated, id)
	return updated, nil
}

// Delete removes the post, then its image (best-effort).
func (s *Service) Delete(ctx context.Context, id int) error {
	var removed models.Post

	_, err := s.mutate(ctx, func(current []models.Post) ([]models.Post, error) {
		_, idx, ok := lo.FindIndexOf(current, func(p models.Post) bool { return p.ID == id })
		if !ok {
			return nil, ErrNotFound
		}
		removed = current[idx]
		return slices.Delete(current, idx, idx+1), nil
	})
	if err != nil {
		return err
	}

	s.images.Delete(removed.ImagePath)
	s.publish(events.PostDeleted, id)
	return nil
}

// mutate is the single read-modify-write entry point. When fn returns an
// error nothing is written.
func (s *Service) mutate(ctx context.Context, fn func(current []models.Post) ([]models.Post, error)) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if err := s.store.WriteAll(ctx, next); err != nil {
		return nil, fmt.Errorf("Service.mutate(): failed to persist posts: %w", err)
	}
	return next, nil
}

func (s *Service) publish(t events.Type, id int) {
	if s.events == nil {
		return
	}
	s.events.Publish(events.Event{Type: t, PostID: id})
}

func applyFields(p *models.Post, f models.PostFields) {
	if f.Title != "" {
		p.Title = f.Title
	}
	if f.Description != "" {
		p.Description = f.Description
	}
	if f.AuthorName != "" {
		p.AuthorName = f.AuthorName
	}
	if f.BlogTitle != "" {
		p.BlogTitle = f.BlogTitle
	}
	if f.ParaGraph != "" {
		p.ParaGraph = f.ParaGraph
	}
}

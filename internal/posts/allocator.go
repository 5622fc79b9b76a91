package posts

import (
	"BlogCMS_Server/internal/models"
	"sync"

	"github.com/samber/lo"
)

// Allocator hands out post ids. An id is never handed out twice in the same
// process, even after the post that held it is deleted.
type Allocator struct {
	mu   sync.Mutex
	next int
}

// NewAllocator seeds the counter with max(existing ids)+1, or 1 for an empty store.
func NewAllocator(existing []models.Post) *Allocator {
	return &Allocator{next: maxID(existing) + 1}
}

// Next also looks at the current list so ids written by someone else since
// startup are not reused.
func (a *Allocator) Next(current []models.Post) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if floor := maxID(current) + 1; floor > a.next {
		a.next = floor
	}
	id := a.next
	a.next++
	return id
}

func maxID(posts []models.Post) int {
	return lo.Max(lo.Map(posts, func(p models.Post, _ int) int { return p.ID }))
}

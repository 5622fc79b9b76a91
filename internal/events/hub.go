package events

import (
	"log"
	"sync"
	"time"
)

type Type string

const (
	PostCreated Type = "created"
	PostUpdated Type = "updated"
	PostDeleted Type = "deleted"
)

// 게시글 변경 알림. /ws/posts 구독자에게 JSON으로 전달된다
type Event struct {
	Type   Type      `json:"type"`
	PostID int       `json:"id"`
	At     time.Time `json:"at"`
}

// Hub fans events out to subscribers. A subscriber whose buffer is full is
// dropped instead of blocking the publisher.
type Hub struct {
	mu      sync.Mutex
	subs    map[chan Event]struct{}
	bufSize int
}

func NewHub(bufSize int) *Hub {
	if bufSize <= 0 {
		bufSize = 16
	}
	return &Hub{
		subs:    make(map[chan Event]struct{}),
		bufSize: bufSize,
	}
}

// Subscribe returns a channel of events and a function that cancels the
// subscription. The channel is closed on cancel or when the subscriber is dropped.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.bufSize)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() { h.remove(ch) })
	}
	return ch, cancel
}

func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
			log.Printf("Hub.Publish(): subscriber too slow, dropping it")
			delete(h.subs, ch)
			close(ch)
		}
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) remove(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

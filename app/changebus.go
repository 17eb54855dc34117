package app

import (
	"sync"
	"sync/atomic"
	"time"
)

// ChangeType classifies a venue directory mutation.
type ChangeType string

const (
	ChangeVenueCreated  ChangeType = "venue_created"
	ChangeVenueUpdated  ChangeType = "venue_updated"
	ChangeVenueDeleted  ChangeType = "venue_deleted"
	ChangeReviewAdded   ChangeType = "review_added"
	ChangeReviewRemoved ChangeType = "review_removed"
)

// VenueChange is a message published to the ChangeBus after a write path
// has invalidated the venue cache.
type VenueChange struct {
	ID        uint64     `json:"id"`
	Type      ChangeType `json:"type"`
	VenueID   string     `json:"venue_id"`
	Slug      string     `json:"slug"`
	Timestamp time.Time  `json:"timestamp"`
}

// ChangeBus is an in-memory pub/sub bus for broadcasting venue changes to
// SSE clients and other in-process observers.
type ChangeBus struct {
	nextID      atomic.Uint64
	bufferSize  int
	mu          sync.RWMutex
	subscribers map[chan VenueChange]struct{}
}

// NewChangeBus creates a new ChangeBus with the given per-subscriber buffer.
func NewChangeBus(bufferSize int) *ChangeBus {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &ChangeBus{
		bufferSize:  bufferSize,
		subscribers: make(map[chan VenueChange]struct{}),
	}
}

// Subscribe returns a buffered channel that receives venue changes and an
// unsubscribe function. The caller must call unsubscribe when done.
func (b *ChangeBus) Subscribe() (<-chan VenueChange, func()) {
	ch := make(chan VenueChange, b.bufferSize)

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		delete(b.subscribers, ch)
		b.mu.Unlock()
	}

	return ch, unsubscribe
}

// Publish sends a change to all subscribers with a non-blocking send.
// Slow consumers that have full buffers will miss messages.
func (b *ChangeBus) Publish(change VenueChange) {
	change.ID = b.nextID.Add(1)
	if change.Timestamp.IsZero() {
		change.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- change:
		default:
			// Drop message for slow consumer
		}
	}
}

package notify

import (
	"context"
	"sync"
)

// DefaultMemoryLimit is the number of notifications a MemoryStore retains
// when no limit is given.
const DefaultMemoryLimit = 50

// MemoryStore is a Store that lives for the process lifetime. Once full,
// the oldest notifications are evicted.
type MemoryStore struct {
	mu     sync.Mutex
	items  []Notification
	nextID int64
	limit  int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store retaining at most limit notifications.
func NewMemoryStore(limit int) *MemoryStore {
	if limit < 1 {
		limit = DefaultMemoryLimit
	}
	return &MemoryStore{limit: limit}
}

func (m *MemoryStore) Save(_ context.Context, n Notification) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	n.ID = m.nextID
	m.items = append(m.items, n)
	if over := len(m.items) - m.limit; over > 0 {
		m.items = append(m.items[:0:0], m.items[over:]...)
	}
	return n.ID, nil
}

// List returns retained notifications, newest first.
func (m *MemoryStore) List(_ context.Context) ([]Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Notification, len(m.items))
	for i, n := range m.items {
		out[len(m.items)-1-i] = n
	}
	return out, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return nil
}

func (m *MemoryStore) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}

package history

import (
	"context"
	"sync"
)

// Store holds one bounded List per user.
type Store interface {
	Push(ctx context.Context, userID int64, e Entry) error
	List(ctx context.Context, userID int64) ([]Entry, error)
	Clear(ctx context.Context, userID int64) error
}

// MemoryStore keeps lists in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	lists    map[int64]*List
	capacity int
}

func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		lists:    make(map[int64]*List),
		capacity: capacity,
	}
}

func (s *MemoryStore) Push(_ context.Context, userID int64, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[userID]
	if !ok {
		l = NewList(s.capacity)
		s.lists[userID] = l
	}
	l.Push(e)
	return nil
}

func (s *MemoryStore) List(_ context.Context, userID int64) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[userID]
	if !ok {
		return []Entry{}, nil
	}
	return l.Entries(), nil
}

func (s *MemoryStore) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.lists, userID)
	return nil
}

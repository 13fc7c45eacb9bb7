package registry

import (
	"context"
	"slices"
	"sync"

	"prassign/internal/domain"
)

// MemoryStore keeps the member list in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	members []domain.Member
	saves   int
}

func NewMemoryStore(members ...domain.Member) *MemoryStore {
	return &MemoryStore{members: members}
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.members), nil
}

func (s *MemoryStore) Save(_ context.Context, members []domain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members = slices.Clone(members)
	s.saves++
	return nil
}

// Saves reports how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saves
}

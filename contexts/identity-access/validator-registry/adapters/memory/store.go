package memory

import (
	"context"
	"sync"

	"chainfreight/contexts/identity-access/validator-registry/domain/entities"
	"chainfreight/contexts/identity-access/validator-registry/ports"
)

// Store is an in-memory registry for tests and local runs.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entities.Authorization
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]entities.Authorization),
	}
}

func (s *Store) SetAuthorization(_ context.Context, entry entities.Authorization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Validator] = entry
	return nil
}

func (s *Store) GetAuthorization(_ context.Context, validator string) (entities.Authorization, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[validator]
	return entry, ok, nil
}

var _ ports.Registry = (*Store)(nil)

// Package memory is an in-process Storage, used for tests and throwaway runs.
package memory

import (
	"context"
	"sync"

	"github.com/dieuclat/storefront/internal/repository"
)

// Store keeps values in a map. FailSaves makes every Save return an error,
// which lets callers exercise their persistence-failure paths.
type Store struct {
	mu        sync.RWMutex
	data      map[string][]byte
	saveErr   error
	saveCount int
}

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// FailSaves makes subsequent saves fail with err. A nil err restores normal behaviour.
func (s *Store) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves reports how many saves have succeeded.
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveCount
}

func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data[key] = append([]byte(nil), value...)
	s.saveCount++
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Store) Close() error {
	return nil
}

package session

import (
	"context"
	"strings"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore crea un Store en memoria, sin persistencia.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *memoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(token) == "" {
		token = ""
	}
	s.token = token
	return nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

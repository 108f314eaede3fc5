package memory

import (
	"context"
	"sync"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/storage"
)

// Storage is an in-memory session store for development and tests.
type Storage struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
}

var _ storage.Store = (*Storage)(nil)

// New creates an empty in-memory store.
func New() *Storage {
	return &Storage{
		sessions: make(map[string]model.Session),
	}
}

func (s *Storage) SaveSession(_ context.Context, sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = *sess
	return nil
}

func (s *Storage) GetSession(_ context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	copy := sess
	return &copy, nil
}

func (s *Storage) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

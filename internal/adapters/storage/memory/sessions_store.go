package memory

import (
	"context"
	"sync"

	"pet-triage/internal/domain/intake"
)

// sessionStore guarda copias: quien lee nunca comparte el mapa de respuestas.
type sessionStore struct {
	mu     sync.RWMutex
	byUser map[string]intake.Session
}

func NewSessionStore() intake.SessionStore {
	return &sessionStore{
		byUser: make(map[string]intake.Session),
	}
}

func (s *sessionStore) Get(ctx context.Context, userID string) (intake.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byUser[userID]
	if !ok {
		return intake.Session{}, intake.ErrSessionNotFound
	}
	return sess.Clone(), nil
}

func (s *sessionStore) Save(ctx context.Context, sess intake.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byUser[sess.UserID] = sess.Clone()
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byUser, userID)
	return nil
}

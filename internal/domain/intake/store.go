package intake

import (
	"context"
	"errors"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// SessionStore guarda la sesión viva de cada usuario (key = user id).
// Get devuelve ErrSessionNotFound si el usuario está en IDLE.
type SessionStore interface {
	Get(ctx context.Context, userID string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, userID string) error
}

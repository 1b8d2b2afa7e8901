package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-triage/internal/domain/pets"
	"pet-triage/internal/domain/records"
)

var (
	ErrNotFound = records.ErrNotFound
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Profile
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Profile),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return records.ErrDuplicateID
	}
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *petRepo) ListByUser(ctx context.Context, userID string) ([]pets.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Profile, 0)
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}

	// Orden estable por created_at asc
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

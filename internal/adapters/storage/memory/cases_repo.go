package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-triage/internal/domain/cases"
	"pet-triage/internal/domain/records"
)

type caseRepo struct {
	mu   sync.RWMutex
	byID map[string]cases.Case
}

func NewCaseRepo() cases.Repository {
	return &caseRepo{
		byID: make(map[string]cases.Case),
	}
}

func (r *caseRepo) Create(ctx context.Context, c cases.Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("case id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return records.ErrDuplicateID
	}

	c.Reasons = append([]string(nil), c.Reasons...)
	r.byID[c.ID] = c
	return nil
}

func (r *caseRepo) GetByID(ctx context.Context, id string) (cases.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return cases.Case{}, ErrNotFound
	}
	c.Reasons = append([]string(nil), c.Reasons...)
	return c, nil
}

func (r *caseRepo) ListByUser(ctx context.Context, userID string, filter cases.ListFilter) ([]cases.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cases.Case, 0)
	for _, c := range r.byID {
		if c.UserID != userID || !filter.Match(c) {
			continue
		}
		c.Reasons = append([]string(nil), c.Reasons...)
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

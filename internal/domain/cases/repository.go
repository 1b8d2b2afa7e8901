package cases

import (
	"context"

	"pet-triage/internal/domain/triage"
)

type Repository interface {
	Create(ctx context.Context, c Case) error
	GetByID(ctx context.Context, id string) (Case, error)
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Case, error)
}

// ListFilter: campos vacíos no filtran. Limit <= 0 = sin límite.
type ListFilter struct {
	Level    triage.Level
	Category triage.Category
	PetID    string
	Limit    int
}

// Match aplica el filtro sobre un caso (lo usan los adapters sin SQL).
func (f ListFilter) Match(c Case) bool {
	if f.Level != "" && c.Level != f.Level {
		return false
	}
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.PetID != "" && c.PetID != f.PetID {
		return false
	}
	return true
}

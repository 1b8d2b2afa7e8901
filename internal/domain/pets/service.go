package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-triage/internal/domain/records"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = records.ErrNotFound
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Species           Species
	Name              string
	Age               string
	Weight            string
	ChronicConditions string
}

// Register persiste un perfil nuevo. El id sale de records.ID y una colisión
// se devuelve como records.ErrDuplicateID.
func (s *Service) Register(ctx context.Context, userID string, in RegisterInput) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}
	if !in.Species.Valid() {
		return Profile{}, fmt.Errorf("species %q: %w", in.Species, ErrInvalidInput)
	}

	now := s.now().UTC()
	p := Profile{
		ID:                records.ID(userID, now),
		UserID:            userID,
		Species:           in.Species,
		Name:              strings.TrimSpace(in.Name),
		Age:               strings.TrimSpace(in.Age),
		Weight:            strings.TrimSpace(in.Weight),
		ChronicConditions: strings.TrimSpace(in.ChronicConditions),
		CreatedAt:         now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("create pet profile %s: %w", p.ID, err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Profile, error) {
	return s.repo.ListByUser(ctx, userID)
}

package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-triage/internal/domain/records"
	"pet-triage/internal/domain/triage"
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

type OpenInput struct {
	PetID          string
	ChiefComplaint string
	Category       triage.Category
	Followup1      string
	Followup2      string
	Followup3      string
	Result         triage.Result
}

// Open persiste el caso con el veredicto ya calculado.
func (s *Service) Open(ctx context.Context, userID string, in OpenInput) (Case, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Case{}, ErrInvalidInput
	}
	if in.Category == "" || in.Result.Level == "" || len(in.Result.Reasons) == 0 {
		return Case{}, ErrInvalidInput
	}

	now := s.now().UTC()
	reasons := make([]string, len(in.Result.Reasons))
	copy(reasons, in.Result.Reasons)

	c := Case{
		ID:             records.ID(userID, now),
		UserID:         userID,
		PetID:          strings.TrimSpace(in.PetID),
		ChiefComplaint: in.ChiefComplaint,
		Category:       in.Category,
		Followup1:      in.Followup1,
		Followup2:      in.Followup2,
		Followup3:      in.Followup3,
		Level:          in.Result.Level,
		Reasons:        reasons,
		CreatedAt:      now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Case{}, fmt.Errorf("create case %s: %w", c.ID, err)
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Case, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Case, error) {
	return s.repo.ListByUser(ctx, userID, filter)
}

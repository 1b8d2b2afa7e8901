package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-triage/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Profile
	err  error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Profile{}}
}

func (r *testRepo) Create(ctx context.Context, p Profile) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[p.ID]; ok {
		return records.ErrDuplicateID
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID string) ([]Profile, error) {
	out := make([]Profile, 0)
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService(repo Repository, now time.Time) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return now }
	return s
}

func TestRegister_BuildsProfile(t *testing.T) {
	now := time.Date(2024, 5, 10, 8, 30, 0, 0, time.FixedZone("IRST", 3*3600+1800))
	repo := newTestRepo()
	svc := newTestService(repo, now)

	p, err := svc.Register(context.Background(), "1001", RegisterInput{
		Species:           SpeciesCat,
		Name:              "  Pishi ",
		Age:               "۲ سال",
		Weight:            "۴.۵",
		ChronicConditions: NoConditions,
	})
	require.NoError(t, err)

	assert.Equal(t, records.ID("1001", now), p.ID)
	assert.Equal(t, "Pishi", p.Name)
	assert.Equal(t, time.UTC, p.CreatedAt.Location())
	assert.Equal(t, p, repo.byID[p.ID])
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	svc := newTestService(newTestRepo(), time.Now())

	_, err := svc.Register(context.Background(), " ", RegisterInput{Species: SpeciesDog})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), "1001", RegisterInput{Species: "bird"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_SameSecondCollisionIsSurfaced(t *testing.T) {
	now := time.Unix(1700000000, 0)
	svc := newTestService(newTestRepo(), now)

	_, err := svc.Register(context.Background(), "1001", RegisterInput{Species: SpeciesDog, Name: "A"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "1001", RegisterInput{Species: SpeciesDog, Name: "B"})
	assert.ErrorIs(t, err, records.ErrDuplicateID)
}

func TestRegister_WrapsRepoError(t *testing.T) {
	repo := newTestRepo()
	repo.err = errors.New("disk full")
	svc := newTestService(repo, time.Now())

	_, err := svc.Register(context.Background(), "1001", RegisterInput{Species: SpeciesDog})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

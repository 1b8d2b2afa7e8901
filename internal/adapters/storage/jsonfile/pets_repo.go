package jsonfile

import (
	"context"
	"time"

	"pet-triage/internal/domain/pets"
)

// petRecord es el formato en disco de data/pets/{pet_id}.json.
type petRecord struct {
	PetID             string    `json:"pet_id"`
	UserID            string    `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	Species           string    `json:"species"`
	Name              string    `json:"name"`
	Age               string    `json:"age"`
	Weight            string    `json:"weight"`
	ChronicConditions string    `json:"chronic_conditions"`
}

type PetsRepo struct {
	d dir
}

func NewPetsRepo(baseDir string) (*PetsRepo, error) {
	d, err := openDir(baseDir, PetsDir)
	if err != nil {
		return nil, err
	}
	return &PetsRepo{d: d}, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Profile) error {
	return r.d.create(p.ID, petRecord{
		PetID:             p.ID,
		UserID:            p.UserID,
		CreatedAt:         p.CreatedAt.UTC(),
		Species:           string(p.Species),
		Name:              p.Name,
		Age:               p.Age,
		Weight:            p.Weight,
		ChronicConditions: p.ChronicConditions,
	})
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Profile, error) {
	var rec petRecord
	if err := r.d.read(id, &rec); err != nil {
		return pets.Profile{}, err
	}
	return rec.toProfile(), nil
}

func (r *PetsRepo) ListByUser(ctx context.Context, userID string) ([]pets.Profile, error) {
	ids, err := r.d.idsOf(userID)
	if err != nil {
		return nil, err
	}
	out := make([]pets.Profile, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (rec petRecord) toProfile() pets.Profile {
	return pets.Profile{
		ID:                rec.PetID,
		UserID:            rec.UserID,
		Species:           pets.Species(rec.Species),
		Name:              rec.Name,
		Age:               rec.Age,
		Weight:            rec.Weight,
		ChronicConditions: rec.ChronicConditions,
		CreatedAt:         rec.CreatedAt.UTC(),
	}
}

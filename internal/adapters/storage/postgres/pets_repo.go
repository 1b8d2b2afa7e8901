package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-triage/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
			id, user_id,
			species, name, age, weight,
			chronic_conditions, created_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_profiles (`+petColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.UserID,
		string(p.Species),
		p.Name,
		p.Age,
		p.Weight,
		p.ChronicConditions,
		p.CreatedAt,
	)
	return mapCreateErr(err)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Profile{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+petColumns+`
		FROM pet_profiles
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Profile{}, ErrNotFound
		}
		return pets.Profile{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByUser(ctx context.Context, userID string) ([]pets.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT`+petColumns+`
		FROM pet_profiles
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Profile, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Profile, error) {
	var p pets.Profile
	var species string
	err := s.Scan(
		&p.ID,
		&p.UserID,
		&species,
		&p.Name,
		&p.Age,
		&p.Weight,
		&p.ChronicConditions,
		&p.CreatedAt,
	)
	p.Species = pets.Species(species)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, err
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-triage/internal/domain/cases"
	"pet-triage/internal/domain/triage"

	"github.com/lib/pq"
)

type CasesRepo struct {
	db *sql.DB
}

func NewCasesRepo(db *sql.DB) *CasesRepo {
	return &CasesRepo{db: db}
}

const caseColumns = `
			id, user_id, pet_id,
			chief_complaint, symptom_category,
			followup_1_answer, followup_2_answer, followup_3_answer,
			triage_level, triage_reasons,
			created_at`

func (r *CasesRepo) Create(ctx context.Context, c cases.Case) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO triage_cases (`+caseColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		c.ID,
		c.UserID,
		c.PetID,
		c.ChiefComplaint,
		string(c.Category),
		c.Followup1,
		c.Followup2,
		c.Followup3,
		string(c.Level),
		pq.Array(c.Reasons),
		c.CreatedAt,
	)
	return mapCreateErr(err)
}

func (r *CasesRepo) GetByID(ctx context.Context, id string) (cases.Case, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cases.Case{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+caseColumns+`
		FROM triage_cases
		WHERE id = $1
	`, id)

	c, err := scanCase(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cases.Case{}, ErrNotFound
		}
		return cases.Case{}, err
	}
	return c, nil
}

func (r *CasesRepo) ListByUser(ctx context.Context, userID string, filter cases.ListFilter) ([]cases.Case, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	where := []string{"user_id = $1"}
	args := []any{userID}

	if filter.Level != "" {
		args = append(args, string(filter.Level))
		where = append(where, fmt.Sprintf("triage_level = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		where = append(where, fmt.Sprintf("symptom_category = $%d", len(args)))
	}
	if filter.PetID != "" {
		args = append(args, filter.PetID)
		where = append(where, fmt.Sprintf("pet_id = $%d", len(args)))
	}

	q := `
		SELECT` + caseColumns + `
		FROM triage_cases
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at ASC, id ASC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += fmt.Sprintf("\n\t\tLIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cases.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCase(s scanner) (cases.Case, error) {
	var c cases.Case
	var category, level string
	var reasons pq.StringArray
	err := s.Scan(
		&c.ID,
		&c.UserID,
		&c.PetID,
		&c.ChiefComplaint,
		&category,
		&c.Followup1,
		&c.Followup2,
		&c.Followup3,
		&level,
		&reasons,
		&c.CreatedAt,
	)
	c.Category = triage.ParseCategory(category)
	c.Level = triage.Level(level)
	c.Reasons = []string(reasons)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, err
}

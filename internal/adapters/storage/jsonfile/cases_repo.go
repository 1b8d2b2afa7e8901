package jsonfile

import (
	"context"
	"time"

	"pet-triage/internal/domain/cases"
	"pet-triage/internal/domain/triage"
)

// caseRecord es el formato en disco de data/cases/{case_id}.json.
type caseRecord struct {
	CaseID          string    `json:"case_id"`
	UserID          string    `json:"user_id"`
	PetID           string    `json:"pet_id"`
	CreatedAt       time.Time `json:"created_at"`
	ChiefComplaint  string    `json:"chief_complaint"`
	SymptomCategory string    `json:"symptom_category"`
	Followup1       string    `json:"followup_1_answer"`
	Followup2       string    `json:"followup_2_answer"`
	Followup3       string    `json:"followup_3_answer"`
	TriageLevel     string    `json:"triage_level"`
	TriageReasons   []string  `json:"triage_reasons"`
}

type CasesRepo struct {
	d dir
}

func NewCasesRepo(baseDir string) (*CasesRepo, error) {
	d, err := openDir(baseDir, CasesDir)
	if err != nil {
		return nil, err
	}
	return &CasesRepo{d: d}, nil
}

func (r *CasesRepo) Create(ctx context.Context, c cases.Case) error {
	return r.d.create(c.ID, caseRecord{
		CaseID:          c.ID,
		UserID:          c.UserID,
		PetID:           c.PetID,
		CreatedAt:       c.CreatedAt.UTC(),
		ChiefComplaint:  c.ChiefComplaint,
		SymptomCategory: string(c.Category),
		Followup1:       c.Followup1,
		Followup2:       c.Followup2,
		Followup3:       c.Followup3,
		TriageLevel:     string(c.Level),
		TriageReasons:   c.Reasons,
	})
}

func (r *CasesRepo) GetByID(ctx context.Context, id string) (cases.Case, error) {
	var rec caseRecord
	if err := r.d.read(id, &rec); err != nil {
		return cases.Case{}, err
	}
	return rec.toCase(), nil
}

func (r *CasesRepo) ListByUser(ctx context.Context, userID string, filter cases.ListFilter) ([]cases.Case, error) {
	ids, err := r.d.idsOf(userID)
	if err != nil {
		return nil, err
	}
	out := make([]cases.Case, 0)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !filter.Match(c) {
			continue
		}
		out = append(out, c)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (rec caseRecord) toCase() cases.Case {
	return cases.Case{
		ID:             rec.CaseID,
		UserID:         rec.UserID,
		PetID:          rec.PetID,
		ChiefComplaint: rec.ChiefComplaint,
		Category:       triage.ParseCategory(rec.SymptomCategory),
		Followup1:      rec.Followup1,
		Followup2:      rec.Followup2,
		Followup3:      rec.Followup3,
		Level:          triage.Level(rec.TriageLevel),
		Reasons:        rec.TriageReasons,
		CreatedAt:      rec.CreatedAt.UTC(),
	}
}

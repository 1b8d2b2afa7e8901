package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-triage/internal/domain/cases"
	"pet-triage/internal/domain/pets"
	"pet-triage/internal/domain/records"
	"pet-triage/internal/domain/triage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var petCols = []string{"id", "user_id", "species", "name", "age", "weight", "chronic_conditions", "created_at"}

var caseCols = []string{
	"id", "user_id", "pet_id", "chief_complaint", "symptom_category",
	"followup_1_answer", "followup_2_answer", "followup_3_answer",
	"triage_level", "triage_reasons", "created_at",
}

func TestPetsRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Unix(1700000000, 0).UTC()
	p := pets.Profile{ID: "u1_1700000000", UserID: "u1", Species: pets.SpeciesDog, Name: "Rex", Age: "3", Weight: "10", ChronicConditions: "نداره", CreatedAt: at}

	mock.ExpectExec("INSERT INTO pet_profiles").
		WithArgs(p.ID, p.UserID, "dog", "Rex", "3", "10", "نداره", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewPetsRepo(db).Create(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_CreateDuplicate(t *testing.T) {
	for name, dbErr := range map[string]error{
		"pgx": &pgconn.PgError{Code: "23505"},
		"pq":  &pq.Error{Code: "23505"},
	} {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec("INSERT INTO pet_profiles").WillReturnError(dbErr)

			err = NewPetsRepo(db).Create(context.Background(), pets.Profile{ID: "u1_1", UserID: "u1", Species: pets.SpeciesCat})
			assert.ErrorIs(t, err, records.ErrDuplicateID)
		})
	}
}

func TestPetsRepo_CreateOtherErrorPassesThrough(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectExec("INSERT INTO pet_profiles").WillReturnError(boom)

	err = NewPetsRepo(db).Create(context.Background(), pets.Profile{ID: "u1_1"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, records.ErrDuplicateID)
}

func TestPetsRepo_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Unix(1700000000, 0).UTC()
	mock.ExpectQuery("FROM pet_profiles").
		WithArgs("u1_1700000000").
		WillReturnRows(sqlmock.NewRows(petCols).AddRow("u1_1700000000", "u1", "cat", "Pishi", "2", "4.5", "", at))
	mock.ExpectQuery("FROM pet_profiles").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(petCols))

	repo := NewPetsRepo(db)
	p, err := repo.GetByID(context.Background(), "u1_1700000000")
	require.NoError(t, err)
	assert.Equal(t, pets.SpeciesCat, p.Species)
	assert.Equal(t, "Pishi", p.Name)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, records.ErrNotFound)

	_, err = repo.GetByID(context.Background(), " ")
	assert.ErrorIs(t, err, records.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCasesRepo_CreateStoresReasonsAsArray(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := cases.Case{
		ID: "u1_1700000000", UserID: "u1", PetID: "u1_1699999990",
		ChiefComplaint: "vomiting", Category: triage.CategoryGI,
		Followup1: "3+ times", Followup2: "no blood seen", Followup3: "eating normally",
		Level: triage.LevelVisitSoon, Reasons: []string{"frequent episodes"},
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}

	mock.ExpectExec("INSERT INTO triage_cases").
		WithArgs(c.ID, c.UserID, c.PetID, c.ChiefComplaint, "GI", c.Followup1, c.Followup2, c.Followup3, "visit_soon", `{"frequent episodes"}`, c.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewCasesRepo(db).Create(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCasesRepo_ListByUserWithFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Unix(1700000000, 0).UTC()
	mock.ExpectQuery(`FROM triage_cases\s+WHERE user_id = \$1 AND triage_level = \$2 AND symptom_category = \$3\s+ORDER BY created_at ASC, id ASC\s+LIMIT \$4`).
		WithArgs("u1", "emergency", "RESP", 10).
		WillReturnRows(sqlmock.NewRows(caseCols).
			AddRow("u1_1700000000", "u1", "", "سرفه", "RESP", "a", "کبود", "c", "emergency", `{"gums","open mouth"}`, at))

	got, err := NewCasesRepo(db).ListByUser(context.Background(), "u1", cases.ListFilter{
		Level:    triage.LevelEmergency,
		Category: triage.CategoryResp,
		Limit:    10,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"gums", "open mouth"}, got[0].Reasons)
	assert.Equal(t, triage.CategoryResp, got[0].Category)
	assert.Equal(t, triage.LevelEmergency, got[0].Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS pet_profiles").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package cases

import (
	"time"

	"pet-triage/internal/domain/triage"
)

// Case es el registro de una corrida de triage completa. Inmutable.
type Case struct {
	ID     string // {user_id}_{unix}
	UserID string
	PetID  string // vacío si no hubo perfil

	ChiefComplaint string
	Category       triage.Category

	Followup1 string
	Followup2 string
	Followup3 string

	Level   triage.Level
	Reasons []string

	CreatedAt time.Time
}

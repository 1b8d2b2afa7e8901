package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

func (s Species) Valid() bool {
	return s == SpeciesDog || s == SpeciesCat
}

// NoConditions es el valor que se sugiere cuando no hay enfermedad de base.
const NoConditions = "نداره"

// Profile es el perfil capturado al terminar el bloque de datos básicos.
// Inmutable: cada intake completo genera uno nuevo.
type Profile struct {
	ID     string // {user_id}_{unix}
	UserID string

	Species Species // dog, cat
	Name    string
	Age     string // texto libre, sin unidad validada
	Weight  string // texto libre, sin unidad validada

	ChronicConditions string

	CreatedAt time.Time
}

package triage

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Category agrupa la queja principal en una familia de síntomas.
// @Enum GI, RESP, GENERAL
type Category string

const (
	CategoryGI      Category = "GI"
	CategoryResp    Category = "RESP"
	CategoryGeneral Category = "GENERAL"
)

// Categories en orden de desempate del clasificador.
var Categories = []Category{CategoryGI, CategoryResp, CategoryGeneral}

// ParseCategory devuelve GENERAL para cualquier valor desconocido.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryGI, CategoryResp, CategoryGeneral:
		return Category(s)
	default:
		return CategoryGeneral
	}
}

// Level es el veredicto de urgencia: home_care < visit_soon < emergency.
// @Enum home_care, visit_soon, emergency
type Level string

const (
	LevelHomeCare  Level = "home_care"
	LevelVisitSoon Level = "visit_soon"
	LevelEmergency Level = "emergency"
)

// Rank ordena los niveles por severidad.
func (l Level) Rank() int {
	switch l {
	case LevelVisitSoon:
		return 1
	case LevelEmergency:
		return 2
	default:
		return 0
	}
}

// Max devuelve el más severo de los dos.
func Max(a, b Level) Level {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Result es el veredicto de Decide. Reasons nunca está vacío.
type Result struct {
	Level   Level    `json:"level"`
	Reasons []string `json:"reasons"`
	Advice  string   `json:"advice"`
}

package intake

import (
	"time"

	"pet-triage/internal/domain/cases"
	"pet-triage/internal/domain/triage"
)

// State es el paso actual del intake. IDLE no se persiste: sin sesión = IDLE.
type State string

const (
	StateIdle       State = "IDLE"
	StateSpecies    State = "SPECIES"
	StateName       State = "NAME"
	StateAge        State = "AGE"
	StateWeight     State = "WEIGHT"
	StateConditions State = "CONDITIONS"
	StateComplaint  State = "COMPLAINT"
	StateFollowup1  State = "FOLLOWUP_1"
	StateFollowup2  State = "FOLLOWUP_2"
	StateFollowup3  State = "FOLLOWUP_3"
)

// Field es la key bajo la que se guarda cada respuesta.
type Field string

const (
	FieldSpecies    Field = "species"
	FieldName       Field = "name"
	FieldAge        Field = "age"
	FieldWeight     Field = "weight"
	FieldConditions Field = "conditions"
	FieldComplaint  Field = "chief_complaint"
	FieldCategory   Field = "symptom_category"
	FieldFollowup1  Field = "followup_1"
	FieldFollowup2  Field = "followup_2"
	FieldFollowup3  Field = "followup_3"
)

// Session es la conversación en curso de un usuario. Una sola por usuario.
type Session struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	State     State            `json:"state"`
	Answers   map[Field]string `json:"answers"`
	PetID     string           `json:"pet_id,omitempty"`
	StartedAt time.Time        `json:"started_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Clone copia el mapa de respuestas; los stores en memoria no deben compartirlo.
func (s Session) Clone() Session {
	out := s
	out.Answers = make(map[Field]string, len(s.Answers))
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	return out
}

// Message es un mensaje saliente; Keyboard son opciones sugeridas.
type Message struct {
	Text           string     `json:"text"`
	Keyboard       [][]string `json:"keyboard,omitempty"`
	RemoveKeyboard bool       `json:"remove_keyboard,omitempty"`
}

// Discard describe la sesión que un begin/restart descartó.
type Discard struct {
	SessionID string `json:"session_id"`
	State     State  `json:"state"`
}

// Response es el resultado de un turno.
type Response struct {
	Messages  []Message
	State     State // estado después del turno
	Discarded *Discard
	PetID     string         // perfil escrito en este turno
	Case      *cases.Case    // caso escrito en este turno
	Result    *triage.Result // veredicto calculado en este turno
}

func (r *Response) add(msgs ...Message) {
	r.Messages = append(r.Messages, msgs...)
}

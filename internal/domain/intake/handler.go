package intake

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-triage/internal/domain/triage"
	"pet-triage/internal/middleware"
	"pet-triage/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, eng *Engine, log logger.Logger) {
	r.Route("/chat", func(cr chi.Router) {
		cr.Post("/messages", postMessageHandler(eng, log))
		cr.Post("/begin", beginHandler(eng, log))
		cr.Post("/cancel", cancelHandler(eng, log))
		cr.Get("/session", getSessionHandler(eng))
	})
}

// messageRequest es un turno del usuario.
type messageRequest struct {
	Text string `json:"text"`
}

// chatResponse es lo que el transporte HTTP devuelve por turno.
type chatResponse struct {
	State     string         `json:"state"`
	Messages  []Message      `json:"messages"`
	Discarded *Discard       `json:"discarded,omitempty"`
	PetID     string         `json:"pet_id,omitempty"`
	CaseID    string         `json:"case_id,omitempty"`
	Result    *triage.Result `json:"result,omitempty"`
}

// sessionResponse describe la sesión viva (o IDLE).
type sessionResponse struct {
	State     string           `json:"state"`
	SessionID string           `json:"session_id,omitempty"`
	Answers   map[Field]string `json:"answers,omitempty"`
	PetID     string           `json:"pet_id,omitempty"`
	StartedAt *time.Time       `json:"started_at,omitempty"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
	Prompt    *Message         `json:"prompt,omitempty"`
}

// postMessageHandler godoc
// @Summary Enviar un mensaje al intake
// @Description Procesa un turno de texto libre del usuario y devuelve los mensajes de respuesta. «شروع» / «شروع مجدد» inician una sesión nueva en cualquier estado; /cancel la descarta.
// @Tags chat
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ID del usuario (transporte HTTP, sin autenticación)"
// @Param payload body messageRequest true "Texto del usuario"
// @Success 200 {object} chatResponse
// @Failure 400 {string} string "invalid json / text required"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /chat/messages [post]
func postMessageHandler(eng *Engine, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req messageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			http.Error(w, "text required", http.StatusBadRequest)
			return
		}

		resp, err := eng.Handle(r.Context(), userID, req.Text)
		writeTurn(w, log, userID, resp, err)
	}
}

// beginHandler godoc
// @Summary Iniciar (o reiniciar) un intake
// @Description Descarta la sesión en curso, si existe, y arranca en SPECIES.
// @Tags chat
// @Produce json
// @Param X-User-ID header string true "ID del usuario (transporte HTTP, sin autenticación)"
// @Success 200 {object} chatResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /chat/begin [post]
func beginHandler(eng *Engine, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		resp, err := eng.Begin(r.Context(), userID)
		writeTurn(w, log, userID, resp, err)
	}
}

// cancelHandler godoc
// @Summary Cancelar el intake en curso
// @Description Vuelve a IDLE sin persistir nada. En IDLE solo devuelve el menú.
// @Tags chat
// @Produce json
// @Param X-User-ID header string true "ID del usuario (transporte HTTP, sin autenticación)"
// @Success 200 {object} chatResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /chat/cancel [post]
func cancelHandler(eng *Engine, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		resp, err := eng.Cancel(r.Context(), userID)
		writeTurn(w, log, userID, resp, err)
	}
}

// getSessionHandler godoc
// @Summary Ver la sesión de intake en curso
// @Tags chat
// @Produce json
// @Param X-User-ID header string true "ID del usuario (transporte HTTP, sin autenticación)"
// @Success 200 {object} sessionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /chat/session [get]
func getSessionHandler(eng *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sess, found, err := eng.Session(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !found {
			writeJSON(w, http.StatusOK, sessionResponse{State: string(StateIdle)})
			return
		}

		prompt := Prompt(sess)
		writeJSON(w, http.StatusOK, sessionResponse{
			State:     string(sess.State),
			SessionID: sess.ID,
			Answers:   sess.Answers,
			PetID:     sess.PetID,
			StartedAt: &sess.StartedAt,
			UpdatedAt: &sess.UpdatedAt,
			Prompt:    &prompt,
		})
	}
}

func writeTurn(w http.ResponseWriter, log logger.Logger, userID string, resp Response, err error) {
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error("intake turn failed", map[string]any{"user_id": userID, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := chatResponse{
		State:     string(resp.State),
		Messages:  resp.Messages,
		Discarded: resp.Discarded,
		PetID:     resp.PetID,
		Result:    resp.Result,
	}
	if out.Messages == nil {
		out.Messages = []Message{}
	}
	if resp.Case != nil {
		out.CaseID = resp.Case.ID
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

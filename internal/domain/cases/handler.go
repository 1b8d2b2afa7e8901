package cases

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-triage/internal/domain/triage"
	"pet-triage/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/cases", func(cr chi.Router) {
		cr.Get("/", listCasesHandler(svc))
		cr.Get("/{caseID}", getCaseHandler(svc))
	})
}

// caseResponse representa un caso de triage devuelto por la API.
type caseResponse struct {
	ID              string          `json:"case_id"`
	UserID          string          `json:"user_id"`
	PetID           string          `json:"pet_id"`
	CreatedAt       time.Time       `json:"created_at"`
	ChiefComplaint  string          `json:"chief_complaint"`
	SymptomCategory triage.Category `json:"symptom_category" enums:"GI,RESP,GENERAL"`
	Followup1       string          `json:"followup_1_answer"`
	Followup2       string          `json:"followup_2_answer"`
	Followup3       string          `json:"followup_3_answer"`
	TriageLevel     triage.Level    `json:"triage_level" enums:"home_care,visit_soon,emergency"`
	TriageReasons   []string        `json:"triage_reasons"`
}

// listCasesHandler godoc
// @Summary Listar casos de triage
// @Description Casos del usuario, del más antiguo al más nuevo. Filtros opcionales por nivel, categoría y perfil.
// @Tags cases
// @Produce json
// @Param X-User-ID header string true "ID del usuario (transporte HTTP, sin autenticación)"
// @Param level query string false "home_care | visit_soon | emergency"
// @Param category query string false "GI | RESP | GENERAL"
// @Param pet_id query string false "ID del perfil de mascota"
// @Param limit query int false "Máximo de casos a devolver (1-200). Por defecto 50"
// @Success 200 {array} caseResponse
// @Failure 400 {string} string "invalid filter"
// @Failure 401 {string} string "unauthorized"
// @Router /cases [get]
func listCasesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByUser(r.Context(), userID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]caseResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCaseResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getCaseHandler godoc
// @Summary Obtener caso de triage
// @Tags cases
// @Produce json
// @Param X-User-ID header string true "ID del usuario (transporte HTTP, sin autenticación)"
// @Param caseID path string true "ID del caso ({user_id}_{unix})"
// @Success 200 {object} caseResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "case not found"
// @Router /cases/{caseID} [get]
func getCaseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "caseID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "case not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if c.UserID != userID {
			http.Error(w, "case not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toCaseResponse(c))
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()

	limit := 50
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	filter := ListFilter{Limit: limit, PetID: strings.TrimSpace(q.Get("pet_id"))}

	if v := strings.TrimSpace(q.Get("level")); v != "" {
		lvl := triage.Level(strings.ToLower(v))
		switch lvl {
		case triage.LevelHomeCare, triage.LevelVisitSoon, triage.LevelEmergency:
			filter.Level = lvl
		default:
			return ListFilter{}, errors.New("invalid level filter")
		}
	}
	if v := strings.TrimSpace(q.Get("category")); v != "" {
		cat := triage.Category(strings.ToUpper(v))
		if triage.ParseCategory(string(cat)) != cat {
			return ListFilter{}, errors.New("invalid category filter")
		}
		filter.Category = cat
	}
	return filter, nil
}

func toCaseResponse(c Case) caseResponse {
	reasons := c.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return caseResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		PetID:           c.PetID,
		CreatedAt:       c.CreatedAt,
		ChiefComplaint:  c.ChiefComplaint,
		SymptomCategory: c.Category,
		Followup1:       c.Followup1,
		Followup2:       c.Followup2,
		Followup3:       c.Followup3,
		TriageLevel:     c.Level,
		TriageReasons:   reasons,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

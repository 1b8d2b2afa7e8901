package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-triage/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

// petResponse representa un perfil de mascota devuelto por la API.
type petResponse struct {
	ID                string    `json:"pet_id"`
	UserID            string    `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	Species           Species   `json:"species"`
	Name              string    `json:"name"`
	Age               string    `json:"age"`
	Weight            string    `json:"weight"`
	ChronicConditions string    `json:"chronic_conditions"`
}

// listPetsHandler godoc
// @Summary Listar perfiles de mascotas
// @Description Perfiles capturados en los intakes del usuario, del más antiguo al más nuevo.
// @Tags pets
// @Produce json
// @Param X-User-ID header string true "ID del usuario (transporte HTTP, sin autenticación)"
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener perfil de mascota
// @Tags pets
// @Produce json
// @Param X-User-ID header string true "ID del usuario (transporte HTTP, sin autenticación)"
// @Param petID path string true "ID del perfil ({user_id}_{unix})"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		// perfiles de otro usuario no se revelan
		if p.UserID != userID {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Profile) petResponse {
	return petResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		CreatedAt:         p.CreatedAt,
		Species:           p.Species,
		Name:              p.Name,
		Age:               p.Age,
		Weight:            p.Weight,
		ChronicConditions: p.ChronicConditions,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package router

import (
	"net/http"

	_ "pet-triage/docs"
	mem "pet-triage/internal/adapters/storage/memory"
	"pet-triage/internal/domain/cases"
	"pet-triage/internal/domain/intake"
	"pet-triage/internal/domain/pets"
	"pet-triage/internal/domain/referral"
	"pet-triage/internal/middleware"
	"pet-triage/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options: lo que no venga se arma en memoria (modo dev / tests).
// Engine tiene que compartir Pets y Cases con el router si se pasan ambos.
type Options struct {
	Engine   *intake.Engine
	Pets     *pets.Service
	Cases    *cases.Service
	Contacts referral.Contacts
	Logger   logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Use(middleware.UserContext)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	petsSvc := opts.Pets
	if petsSvc == nil {
		petsSvc = pets.NewService(mem.NewPetRepo())
	}
	casesSvc := opts.Cases
	if casesSvc == nil {
		casesSvc = cases.NewService(mem.NewCaseRepo())
	}
	eng := opts.Engine
	if eng == nil {
		eng = intake.NewEngine(intake.Options{
			Sessions: mem.NewSessionStore(),
			Pets:     petsSvc,
			Cases:    casesSvc,
			Contacts: opts.Contacts,
			Logger:   log,
		})
	}

	// Rutas por módulo
	intake.RegisterRoutes(r, eng, log)
	pets.RegisterRoutes(r, petsSvc)
	cases.RegisterRoutes(r, casesSvc)
	referral.RegisterRoutes(r, opts.Contacts)

	return r
}

package router

import (
	"net/http"

	_ "cat-feeding-tracker/docs"
	mem "cat-feeding-tracker/internal/adapters/storage/memory"
	"cat-feeding-tracker/internal/domain/calculator"
	"cat-feeding-tracker/internal/domain/cats"
	"cat-feeding-tracker/internal/domain/foods"
	"cat-feeding-tracker/internal/domain/schedule"
	"cat-feeding-tracker/internal/middleware"
	"cat-feeding-tracker/internal/platform/logger"
	"cat-feeding-tracker/internal/ports/foodfacts"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => nop

	// Lookup puede ser nil: la búsqueda externa queda apagada.
	Lookup foodfacts.Lookuper

	// BalanceThreshold en kcal; nil usa el default (50).
	BalanceThreshold *float64

	// Catálogo inicial; vacío usa la tabla embebida.
	Seed *foods.Catalog
}

func NewRouter(opts Options) http.Handler {
	log := logger.OrNop(opts.Logger)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", healthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	seed := foods.Seed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	// Repos in-memory: el estado vive lo que vive el proceso.
	catRepo := mem.NewCatRepo()
	foodRepo := mem.NewFoodRepo(seed)
	mealRepo := mem.NewMealRepo()

	// Services por módulo
	catsSvc := cats.NewService(catRepo, log)
	foodsSvc := foods.NewService(foodRepo, opts.Lookup, log)
	scheduleSvc := schedule.NewService(mealRepo, catsSvc, foodsSvc, schedule.Options{
		BalanceThreshold: opts.BalanceThreshold,
		Logger:           log,
	})

	// Rutas por módulo
	calculator.RegisterRoutes(r)
	cats.RegisterRoutes(r, catsSvc, scheduleSvc)
	foods.RegisterRoutes(r, foodsSvc)
	schedule.RegisterRoutes(r, scheduleSvc)

	return r
}

// healthHandler godoc
// @Summary Liveness
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

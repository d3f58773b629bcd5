package foods

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cat-feeding-tracker/internal/nutrition"
	"cat-feeding-tracker/internal/platform/logger"
	"cat-feeding-tracker/internal/ports/foodfacts"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("food not found")
	// ErrNoLookupResult agrupa cualquier falla de la búsqueda externa.
	ErrNoLookupResult = errors.New("no cat food results found with calorie information")
)

type Service struct {
	repo   Repository
	lookup foodfacts.Lookuper
	log    logger.Logger
}

func NewService(repo Repository, lookup foodfacts.Lookuper, log logger.Logger) *Service {
	if lookup == nil {
		lookup = foodfacts.Disabled{}
	}
	return &Service{
		repo:   repo,
		lookup: lookup,
		log:    logger.OrNop(log).With(map[string]any{"module": "foods"}),
	}
}

func (s *Service) Catalog(ctx context.Context) (Catalog, error) {
	return s.repo.Snapshot(ctx)
}

func (s *Service) List(ctx context.Context, t nutrition.FoodType) ([]FoodEntry, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown food_type %q", ErrInvalidInput, t)
	}
	c, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return c.Entries(t), nil
}

// Find devuelve la primera coincidencia exacta por brand.
func (s *Service) Find(ctx context.Context, t nutrition.FoodType, brand string) (FoodEntry, error) {
	c, err := s.repo.Snapshot(ctx)
	if err != nil {
		return FoodEntry{}, err
	}
	e, ok := c.Find(t, brand)
	if !ok {
		return FoodEntry{}, ErrNotFound
	}
	return e, nil
}

type AddInput struct {
	Type            nutrition.FoodType
	Brand           string
	CaloriesPer100g float64
}

type AddResult struct {
	Type     nutrition.FoodType
	Entry    FoodEntry
	Warnings []string
}

// Add agrega un alimento. Brand vacío bloquea; kcal fuera del rango típico
// solo genera aviso.
func (s *Service) Add(ctx context.Context, in AddInput) (AddResult, error) {
	brand := strings.TrimSpace(in.Brand)
	if brand == "" {
		return AddResult{}, fmt.Errorf("%w: brand name is required", ErrInvalidInput)
	}
	if !in.Type.Valid() {
		return AddResult{}, fmt.Errorf("%w: unknown food_type %q", ErrInvalidInput, in.Type)
	}
	if in.CaloriesPer100g <= 0 {
		return AddResult{}, fmt.Errorf("%w: calories_per_100g must be greater than zero", ErrInvalidInput)
	}

	e := FoodEntry{Brand: brand, CaloriesPer100g: in.CaloriesPer100g}
	if _, err := s.repo.Append(ctx, in.Type, e); err != nil {
		return AddResult{}, err
	}

	res := AddResult{Type: in.Type, Entry: e}
	if w := nutrition.CaloriesWarning(e.CaloriesPer100g, in.Type); w != "" {
		res.Warnings = []string{w}
		s.log.Warn("food calories outside typical range", map[string]any{
			"brand": brand, "food_type": in.Type, "kcal_100g": e.CaloriesPer100g,
		})
	}
	s.log.Info("food added", map[string]any{"brand": brand, "food_type": in.Type})
	return res, nil
}

// Lookup consulta el catálogo externo. Un producto sin kcal cuenta como
// sin resultado.
func (s *Service) Lookup(ctx context.Context, query string) (foodfacts.Record, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return foodfacts.Record{}, fmt.Errorf("%w: search term is required", ErrInvalidInput)
	}

	rec, ok := s.lookup.Lookup(ctx, query)
	if !ok || rec.CaloriesPer100g == nil || *rec.CaloriesPer100g <= 0 {
		s.log.Info("food lookup without result", map[string]any{"query": query})
		return foodfacts.Record{}, ErrNoLookupResult
	}
	return rec, nil
}

// ImportFromLookup busca y agrega el resultado como "<brand> - <producto>".
func (s *Service) ImportFromLookup(ctx context.Context, query string, t nutrition.FoodType) (AddResult, foodfacts.Record, error) {
	if !t.Valid() {
		return AddResult{}, foodfacts.Record{}, fmt.Errorf("%w: unknown food_type %q", ErrInvalidInput, t)
	}
	rec, err := s.Lookup(ctx, query)
	if err != nil {
		return AddResult{}, foodfacts.Record{}, err
	}

	res, err := s.Add(ctx, AddInput{
		Type:            t,
		Brand:           rec.DisplayName(),
		CaloriesPer100g: *rec.CaloriesPer100g,
	})
	if err != nil {
		return AddResult{}, rec, err
	}
	return res, rec, nil
}

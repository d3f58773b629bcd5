package cats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cat-feeding-tracker/internal/nutrition"
	"cat-feeding-tracker/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("cat not found")
	ErrOutOfRange   = errors.New("index out of range")
)

const defaultBreed = "Unknown"

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  logger.OrNop(log).With(map[string]any{"module": "cats"}),
		now:  time.Now,
	}
}

// SaveInput son los campos del formulario de perfil.
// LifeStage/ActivityLevel/BodyCondition vacíos se completan con los
// valores sugeridos por edad (y "ideal"); si vienen, mandan.
type SaveInput struct {
	Name          string
	Breed         string
	WeightKg      float64
	AgeYears      int
	AgeMonths     int
	LifeStage     nutrition.LifeStage
	ActivityLevel nutrition.ActivityLevel
	BodyCondition nutrition.BodyCondition
	IsNeutered    bool
}

type SaveResult struct {
	Profile  CatProfile
	Created  bool
	Warnings []string
}

// Save crea o reemplaza (por nombre) un perfil.
func (s *Service) Save(ctx context.Context, in SaveInput) (SaveResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return SaveResult{}, fmt.Errorf("%w: cat name is required", ErrInvalidInput)
	}

	months := nutrition.AgeInMonths(in.AgeYears, in.AgeMonths)
	stage := in.LifeStage
	if stage == "" {
		stage = nutrition.LifeStageFromAge(months)
	}
	activity := in.ActivityLevel
	if activity == "" {
		activity = nutrition.SuggestedActivityFromAge(months)
	}
	condition := in.BodyCondition
	if condition == "" {
		condition = nutrition.BodyIdeal
	}

	breed := strings.TrimSpace(in.Breed)
	if breed == "" {
		breed = defaultBreed
	}

	p := CatProfile{
		Name:          name,
		Breed:         breed,
		WeightKg:      in.WeightKg,
		AgeYears:      in.AgeYears,
		AgeMonths:     in.AgeMonths,
		LifeStage:     stage,
		ActivityLevel: activity,
		BodyCondition: condition,
		IsNeutered:    in.IsNeutered,
		CreatedAt:     s.now(),
	}
	if err := validate(p); err != nil {
		return SaveResult{}, err
	}
	p.Recompute()

	created, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return SaveResult{}, err
	}

	res := SaveResult{Profile: p, Created: created, Warnings: warningsFor(p)}
	s.log.Info("cat profile saved", map[string]any{
		"cat":     p.Name,
		"created": created,
		"rer":     p.RestingEnergy,
		"der":     p.DailyEnergy,
	})
	for _, w := range res.Warnings {
		s.log.Warn("cat profile warning", map[string]any{"cat": p.Name, "warning": w})
	}
	return res, nil
}

// UpdateInput: punteros para PATCH real, nil = no tocar.
type UpdateInput struct {
	Breed         *string
	WeightKg      *float64
	AgeYears      *int
	AgeMonths     *int
	LifeStage     *nutrition.LifeStage
	ActivityLevel *nutrition.ActivityLevel
	BodyCondition *nutrition.BodyCondition
	IsNeutered    *bool
}

// Update aplica cambios parciales y recalcula RER/DER. Conserva CreatedAt
// y la posición en la lista.
func (s *Service) Update(ctx context.Context, name string, in UpdateInput) (SaveResult, error) {
	p, err := s.repo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return SaveResult{}, err
	}

	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
		if p.Breed == "" {
			p.Breed = defaultBreed
		}
	}
	if in.WeightKg != nil {
		p.WeightKg = *in.WeightKg
	}
	if in.AgeYears != nil {
		p.AgeYears = *in.AgeYears
	}
	if in.AgeMonths != nil {
		p.AgeMonths = *in.AgeMonths
	}
	if in.LifeStage != nil {
		p.LifeStage = *in.LifeStage
	}
	if in.ActivityLevel != nil {
		p.ActivityLevel = *in.ActivityLevel
	}
	if in.BodyCondition != nil {
		p.BodyCondition = *in.BodyCondition
	}
	if in.IsNeutered != nil {
		p.IsNeutered = *in.IsNeutered
	}

	if err := validate(p); err != nil {
		return SaveResult{}, err
	}
	p.Recompute()

	if err := s.repo.Update(ctx, p); err != nil {
		return SaveResult{}, err
	}

	s.log.Info("cat profile updated", map[string]any{"cat": p.Name, "der": p.DailyEnergy})
	return SaveResult{Profile: p, Warnings: warningsFor(p)}, nil
}

func (s *Service) Get(ctx context.Context, name string) (CatProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CatProfile{}, ErrNotFound
	}
	return s.repo.GetByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]CatProfile, error) {
	return s.repo.List(ctx)
}

// DeleteAt borra por posición (orden de la lista).
func (s *Service) DeleteAt(ctx context.Context, index int) (CatProfile, error) {
	p, err := s.repo.DeleteAt(ctx, index)
	if err != nil {
		return CatProfile{}, err
	}
	s.log.Info("cat profile deleted", map[string]any{"cat": p.Name, "index": index})
	return p, nil
}

// Delete borra por nombre. No toca las comidas del gato.
func (s *Service) Delete(ctx context.Context, name string) (CatProfile, error) {
	p, err := s.repo.DeleteByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return CatProfile{}, err
	}
	s.log.Info("cat profile deleted", map[string]any{"cat": p.Name})
	return p, nil
}

func validate(p CatProfile) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: cat name is required", ErrInvalidInput)
	case p.WeightKg <= 0:
		return fmt.Errorf("%w: weight_kg must be greater than zero", ErrInvalidInput)
	case p.AgeYears < 0:
		return fmt.Errorf("%w: age_years must be >= 0", ErrInvalidInput)
	case p.AgeMonths < 0 || p.AgeMonths > 11:
		return fmt.Errorf("%w: age_months must be between 0 and 11", ErrInvalidInput)
	case !p.LifeStage.Valid():
		return fmt.Errorf("%w: unknown life_stage %q", ErrInvalidInput, p.LifeStage)
	case !p.ActivityLevel.Valid():
		return fmt.Errorf("%w: unknown activity_level %q", ErrInvalidInput, p.ActivityLevel)
	case !p.BodyCondition.Valid():
		return fmt.Errorf("%w: unknown body_condition %q", ErrInvalidInput, p.BodyCondition)
	}
	return nil
}

func warningsFor(p CatProfile) []string {
	if w := nutrition.WeightWarning(p.WeightKg); w != "" {
		return []string{w}
	}
	return nil
}

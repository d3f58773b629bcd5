package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cat-feeding-tracker/internal/domain/cats"
	"cat-feeding-tracker/internal/domain/foods"
	"cat-feeding-tracker/internal/nutrition"
	"cat-feeding-tracker/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("meal not found")
	ErrUnknownCat   = errors.New("cat not found")
	ErrUnknownFood  = errors.New("food not found in catalog")
)

// ProfileReader lo implementa cats.Service.
type ProfileReader interface {
	Get(ctx context.Context, name string) (cats.CatProfile, error)
	List(ctx context.Context) ([]cats.CatProfile, error)
}

// FoodFinder lo implementa foods.Service.
type FoodFinder interface {
	Find(ctx context.Context, t nutrition.FoodType, brand string) (foods.FoodEntry, error)
}

type Service struct {
	repo      Repository
	profiles  ProfileReader
	foods     FoodFinder
	threshold float64
	log       logger.Logger
	now       func() time.Time
}

type Options struct {
	// BalanceThreshold en kcal; nil o negativo usa DefaultBalanceThreshold.
	BalanceThreshold *float64
	Logger           logger.Logger
}

func NewService(repo Repository, profiles ProfileReader, foods FoodFinder, opts Options) *Service {
	threshold := DefaultBalanceThreshold
	if opts.BalanceThreshold != nil && *opts.BalanceThreshold >= 0 {
		threshold = *opts.BalanceThreshold
	}
	return &Service{
		repo:      repo,
		profiles:  profiles,
		foods:     foods,
		threshold: threshold,
		log:       logger.OrNop(opts.Logger).With(map[string]any{"module": "schedule"}),
		now:       time.Now,
	}
}

type AddMealInput struct {
	CatName           string
	Time              string
	FoodType          nutrition.FoodType
	Brand             string
	PercentageOfDaily float64
}

// AddMeal toma el DER vigente del gato y las kcal del catálogo, y agrega la
// comida al final del cronograma.
func (s *Service) AddMeal(ctx context.Context, in AddMealInput) (Meal, error) {
	if !in.FoodType.Valid() {
		return Meal{}, fmt.Errorf("%w: unknown food_type %q", ErrInvalidInput, in.FoodType)
	}

	cat, err := s.profiles.Get(ctx, strings.TrimSpace(in.CatName))
	if err != nil {
		if errors.Is(err, cats.ErrNotFound) {
			return Meal{}, ErrUnknownCat
		}
		return Meal{}, err
	}

	food, err := s.foods.Find(ctx, in.FoodType, in.Brand)
	if err != nil {
		if errors.Is(err, foods.ErrNotFound) {
			return Meal{}, fmt.Errorf("%w: %q (%s)", ErrUnknownFood, in.Brand, in.FoodType)
		}
		return Meal{}, err
	}

	m, err := NewMeal(MealInput{
		CatName:           cat.Name,
		Time:              in.Time,
		FoodType:          in.FoodType,
		Brand:             food.Brand,
		CaloriesPer100g:   food.CaloriesPer100g,
		PercentageOfDaily: in.PercentageOfDaily,
		DailyTarget:       cat.DailyEnergy,
	})
	if err != nil {
		return Meal{}, err
	}
	m.ID = uuid.NewString()
	m.CreatedAt = s.now().UTC()

	if err := s.repo.Append(ctx, m); err != nil {
		return Meal{}, err
	}

	s.log.Info("meal added", map[string]any{
		"cat":       m.CatName,
		"meal_id":   m.ID,
		"time":      m.Time,
		"kcal":      m.TargetCalories,
		"grams":     m.GramsNeeded,
		"food_type": m.FoodType,
	})
	return m, nil
}

func (s *Service) RemoveMeal(ctx context.Context, id string) (Meal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Meal{}, ErrNotFound
	}
	m, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Meal{}, err
	}
	s.log.Info("meal removed", map[string]any{"cat": m.CatName, "meal_id": m.ID})
	return m, nil
}

// RemoveForCat borra todas las comidas del gato (borrado en cascada).
func (s *Service) RemoveForCat(ctx context.Context, catName string) (int, error) {
	n, err := s.repo.DeleteByCat(ctx, catName)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("meals removed for cat", map[string]any{"cat": catName, "count": n})
	}
	return n, nil
}

// ListForCat devuelve las comidas del gato ordenadas por hora.
func (s *Service) ListForCat(ctx context.Context, catName string) ([]Meal, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return SortByTime(MealsFor(all, catName)), nil
}

// Orphans lista comidas cuyo gato ya no existe.
func (s *Service) Orphans(ctx context.Context) ([]Meal, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		known[p.Name] = struct{}{}
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Meal, 0)
	for _, m := range all {
		if _, ok := known[m.CatName]; !ok {
			out = append(out, m)
		}
	}
	return out, nil
}

type TypeShare struct {
	FoodType       nutrition.FoodType
	Calories       float64
	PercentOfDaily float64
}

type DistributionSlice struct {
	Time     string
	Label    string
	Calories float64
	Percent  float64 // sobre el total programado
}

type TimelinePoint struct {
	Hour     float64
	Label    string
	Brand    string
	Calories float64
}

// Dashboard resume el cronograma de un gato contra su DER actual.
type Dashboard struct {
	Cat             cats.CatProfile
	Meals           []Meal
	Totals          Totals
	Status          Status
	Difference      float64
	StatusMessage   string
	PercentOfTarget float64
	Threshold       float64
	Breakdown       []TypeShare
	Distribution    []DistributionSlice
	Timeline        []TimelinePoint
}

func (s *Service) Dashboard(ctx context.Context, catName string) (Dashboard, error) {
	cat, err := s.profiles.Get(ctx, strings.TrimSpace(catName))
	if err != nil {
		if errors.Is(err, cats.ErrNotFound) {
			return Dashboard{}, ErrUnknownCat
		}
		return Dashboard{}, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	meals := SortByTime(MealsFor(all, cat.Name))

	totals := DailyTotalsFor(all, cat.Name)
	status, diff := BalanceStatus(totals.Calories, cat.DailyEnergy, s.threshold)

	byType := FoodTypeBreakdown(all, cat.Name)
	breakdown := make([]TypeShare, 0, len(byType))
	for _, t := range nutrition.FoodTypes() {
		breakdown = append(breakdown, TypeShare{
			FoodType:       t,
			Calories:       byType[t],
			PercentOfDaily: PercentageOfTarget(byType[t], cat.DailyEnergy),
		})
	}

	dist := make([]DistributionSlice, 0, len(meals))
	timeline := make([]TimelinePoint, 0, len(meals))
	for _, m := range meals {
		label := FormatTime12h(m.Time)
		dist = append(dist, DistributionSlice{
			Time:     m.Time,
			Label:    label,
			Calories: m.TargetCalories,
			Percent:  PercentageOfTarget(m.TargetCalories, totals.Calories),
		})
		timeline = append(timeline, TimelinePoint{
			Hour:     hourDecimal(m.Time),
			Label:    label,
			Brand:    m.Brand,
			Calories: m.TargetCalories,
		})
	}

	return Dashboard{
		Cat:             cat,
		Meals:           meals,
		Totals:          totals,
		Status:          status,
		Difference:      diff,
		StatusMessage:   status.Message(diff),
		PercentOfTarget: PercentageOfTarget(totals.Calories, cat.DailyEnergy),
		Threshold:       s.threshold,
		Breakdown:       breakdown,
		Distribution:    dist,
		Timeline:        timeline,
	}, nil
}

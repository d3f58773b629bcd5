package memory

import (
	"context"
	"errors"
	"sync"

	"cat-feeding-tracker/internal/domain/schedule"
)

type mealRepo struct {
	mu    sync.RWMutex
	items []schedule.Meal
}

func NewMealRepo() schedule.Repository {
	return &mealRepo{}
}

func (r *mealRepo) Append(ctx context.Context, m schedule.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" {
		return errors.New("meal id required")
	}
	for _, it := range r.items {
		if it.ID == m.ID {
			return errors.New("meal already exists")
		}
	}
	r.items = append(r.items, m)
	return nil
}

func (r *mealRepo) List(ctx context.Context) ([]schedule.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Meal, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *mealRepo) Delete(ctx context.Context, id string) (schedule.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.items {
		if m.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return m, nil
		}
	}
	return schedule.Meal{}, schedule.ErrNotFound
}

func (r *mealRepo) DeleteByCat(ctx context.Context, catName string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	removed := 0
	for _, m := range r.items {
		if m.CatName == catName {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	// Limpia la cola para no retener comidas borradas en el array.
	for i := len(kept); i < len(r.items); i++ {
		r.items[i] = schedule.Meal{}
	}
	r.items = kept
	return removed, nil
}

package memory

import (
	"context"
	"sync"

	"cat-feeding-tracker/internal/domain/foods"
	"cat-feeding-tracker/internal/nutrition"
)

// foodRepo guarda el snapshot vigente del catálogo. Los lectores reciben el
// valor y nunca ven un Add a medias.
type foodRepo struct {
	mu      sync.RWMutex
	catalog foods.Catalog
}

func NewFoodRepo(seed foods.Catalog) foods.Repository {
	return &foodRepo{catalog: seed}
}

func (r *foodRepo) Snapshot(ctx context.Context) (foods.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.catalog, nil
}

func (r *foodRepo) Append(ctx context.Context, t nutrition.FoodType, e foods.FoodEntry) (foods.Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := r.catalog.Add(t, e.Brand, e.CaloriesPer100g)
	if err != nil {
		return r.catalog, err
	}
	r.catalog = next
	return next, nil
}

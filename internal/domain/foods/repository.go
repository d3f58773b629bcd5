package foods

import (
	"context"

	"cat-feeding-tracker/internal/nutrition"
)

// Repository mantiene la versión vigente del catálogo.
type Repository interface {
	Snapshot(ctx context.Context) (Catalog, error)
	// Append agrega y devuelve el snapshot resultante.
	Append(ctx context.Context, t nutrition.FoodType, e FoodEntry) (Catalog, error)
}

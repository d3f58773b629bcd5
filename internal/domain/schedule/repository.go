package schedule

import "context"

// Repository guarda el cronograma como una secuencia plana en orden de
// inserción.
type Repository interface {
	Append(ctx context.Context, m Meal) error
	List(ctx context.Context) ([]Meal, error)
	Delete(ctx context.Context, id string) (Meal, error)
	DeleteByCat(ctx context.Context, catName string) (int, error)
}

package cats

import "context"

// Repository guarda perfiles en orden de inserción.
type Repository interface {
	// Upsert reemplaza en su posición si existe un perfil con el mismo Name,
	// si no lo agrega al final.
	Upsert(ctx context.Context, p CatProfile) (created bool, err error)
	Update(ctx context.Context, p CatProfile) error
	GetByName(ctx context.Context, name string) (CatProfile, error)
	List(ctx context.Context) ([]CatProfile, error)
	DeleteAt(ctx context.Context, index int) (CatProfile, error)
	DeleteByName(ctx context.Context, name string) (CatProfile, error)
}

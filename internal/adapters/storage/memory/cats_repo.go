package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"cat-feeding-tracker/internal/domain/cats"
)

// catRepo guarda los perfiles en orden de inserción. El índice por nombre
// se reconstruye en cada borrado.
type catRepo struct {
	mu     sync.RWMutex
	items  []cats.CatProfile
	byName map[string]int
}

func NewCatRepo() cats.Repository {
	return &catRepo{
		byName: make(map[string]int),
	}
}

func (r *catRepo) Upsert(ctx context.Context, p cats.CatProfile) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.Name) == "" {
		return false, errors.New("cat name required")
	}
	if i, exists := r.byName[p.Name]; exists {
		r.items[i] = p
		return false, nil
	}
	r.byName[p.Name] = len(r.items)
	r.items = append(r.items, p)
	return true, nil
}

func (r *catRepo) Update(ctx context.Context, p cats.CatProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.byName[p.Name]
	if !exists {
		return cats.ErrNotFound
	}
	r.items[i] = p
	return nil
}

func (r *catRepo) GetByName(ctx context.Context, name string) (cats.CatProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byName[name]
	if !ok {
		return cats.CatProfile{}, cats.ErrNotFound
	}
	return r.items[i], nil
}

func (r *catRepo) List(ctx context.Context) ([]cats.CatProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cats.CatProfile, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *catRepo) DeleteAt(ctx context.Context, index int) (cats.CatProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.items) {
		return cats.CatProfile{}, cats.ErrOutOfRange
	}
	return r.removeLocked(index), nil
}

func (r *catRepo) DeleteByName(ctx context.Context, name string) (cats.CatProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byName[name]
	if !ok {
		return cats.CatProfile{}, cats.ErrNotFound
	}
	return r.removeLocked(i), nil
}

func (r *catRepo) removeLocked(i int) cats.CatProfile {
	p := r.items[i]
	r.items = append(r.items[:i], r.items[i+1:]...)

	r.byName = make(map[string]int, len(r.items))
	for j, it := range r.items {
		r.byName[it.Name] = j
	}
	return p
}

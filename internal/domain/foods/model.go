package foods

import (
	"fmt"

	"cat-feeding-tracker/internal/nutrition"
)

// FoodEntry es un alimento del catálogo. Brand no es único.
type FoodEntry struct {
	Brand           string  `yaml:"brand"`
	CaloriesPer100g float64 `yaml:"calories_per_100g"`
}

// Catalog es un snapshot inmutable: Add devuelve un catálogo nuevo y nunca
// modifica el receptor, así que se puede pasar por valor sin copiar.
type Catalog struct {
	dry []FoodEntry
	wet []FoodEntry
}

func (c Catalog) list(t nutrition.FoodType) []FoodEntry {
	if t == nutrition.FoodDry {
		return c.dry
	}
	return c.wet
}

// Entries devuelve una copia de la secuencia en orden de presentación.
func (c Catalog) Entries(t nutrition.FoodType) []FoodEntry {
	if !t.Valid() {
		return []FoodEntry{}
	}
	src := c.list(t)
	out := make([]FoodEntry, len(src))
	copy(out, src)
	return out
}

func (c Catalog) Len(t nutrition.FoodType) int {
	if !t.Valid() {
		return 0
	}
	return len(c.list(t))
}

// Add agrega al final de la secuencia del tipo indicado (copy-on-write).
func (c Catalog) Add(t nutrition.FoodType, brand string, caloriesPer100g float64) (Catalog, error) {
	if !t.Valid() {
		return c, fmt.Errorf("%w: unknown food_type %q", ErrInvalidInput, t)
	}

	src := c.list(t)
	next := make([]FoodEntry, len(src), len(src)+1)
	copy(next, src)
	next = append(next, FoodEntry{Brand: brand, CaloriesPer100g: caloriesPer100g})

	out := c
	if t == nutrition.FoodDry {
		out.dry = next
	} else {
		out.wet = next
	}
	return out, nil
}

// Find busca por brand exacto; con duplicados gana el primero.
func (c Catalog) Find(t nutrition.FoodType, brand string) (FoodEntry, bool) {
	if !t.Valid() {
		return FoodEntry{}, false
	}
	for _, e := range c.list(t) {
		if e.Brand == brand {
			return e, true
		}
	}
	return FoodEntry{}, false
}

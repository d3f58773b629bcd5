package foods

import (
	_ "embed"
	"fmt"
	"strings"

	"cat-feeding-tracker/internal/nutrition"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Dry []FoodEntry `yaml:"dry"`
	Wet []FoodEntry `yaml:"wet"`
}

// LoadSeed parsea un catálogo en YAML con las claves dry/wet.
func LoadSeed(data []byte) (Catalog, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("parse food seed: %w", err)
	}

	var c Catalog
	for _, group := range []struct {
		t       nutrition.FoodType
		entries []FoodEntry
	}{
		{nutrition.FoodDry, f.Dry},
		{nutrition.FoodWet, f.Wet},
	} {
		for i, e := range group.entries {
			if strings.TrimSpace(e.Brand) == "" || e.CaloriesPer100g <= 0 {
				return Catalog{}, fmt.Errorf("food seed %s[%d]: brand and calories_per_100g are required", group.t, i)
			}
			var err error
			c, err = c.Add(group.t, e.Brand, e.CaloriesPer100g)
			if err != nil {
				return Catalog{}, err
			}
		}
	}
	return c, nil
}

// Seed devuelve la tabla de referencia embebida.
func Seed() Catalog {
	c, err := LoadSeed(seedYAML)
	if err != nil {
		panic(err)
	}
	return c
}

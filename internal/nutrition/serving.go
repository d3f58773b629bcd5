package nutrition

import "errors"

var ErrInvalidCalorieDensity = errors.New("calories per 100g must be greater than zero")

const (
	dryCupGrams = 113.0
	wetCupGrams = 227.0
)

// CupSizeGrams devuelve los gramos aproximados de una taza según el tipo.
// Cualquier tipo que no sea dry se trata como húmedo.
func CupSizeGrams(t FoodType) float64 {
	if t == FoodDry {
		return dryCupGrams
	}
	return wetCupGrams
}

// ServingSize convierte calorías objetivo en gramos y tazas.
func ServingSize(caloriesPer100g, targetCalories float64, t FoodType) (grams, cups float64, err error) {
	if caloriesPer100g <= 0 {
		return 0, 0, ErrInvalidCalorieDensity
	}
	grams = targetCalories / caloriesPer100g * 100
	cups = grams / CupSizeGrams(t)
	return grams, cups, nil
}

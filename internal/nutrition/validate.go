package nutrition

// Validaciones "soft": devuelven un aviso para mostrar pero nunca bloquean.
// Un string vacío significa que el valor está dentro del rango típico.

const (
	minWeightKg = 0.5
	maxWeightKg = 15.0

	minDryKcal = 300.0
	maxDryKcal = 500.0
	minWetKcal = 60.0
	maxWetKcal = 150.0
)

func WeightWarning(weightKg float64) string {
	switch {
	case weightKg < minWeightKg:
		return "Weight seems too low. Please check the value."
	case weightKg > maxWeightKg:
		return "Weight seems very high. Please verify."
	}
	return ""
}

func CaloriesWarning(caloriesPer100g float64, t FoodType) string {
	if t == FoodDry {
		if caloriesPer100g < minDryKcal || caloriesPer100g > maxDryKcal {
			return "Dry food calories typically range 300-500 kcal/100g"
		}
		return ""
	}
	if caloriesPer100g < minWetKcal || caloriesPer100g > maxWetKcal {
		return "Wet food calories typically range 60-150 kcal/100g"
	}
	return ""
}

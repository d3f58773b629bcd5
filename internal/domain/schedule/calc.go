package schedule

import (
	"math"
	"sort"
	"strconv"

	"cat-feeding-tracker/internal/nutrition"
)

// DefaultBalanceThreshold es la tolerancia en kcal para considerar balanceado.
const DefaultBalanceThreshold = 50.0

type Status string

const (
	StatusBalanced Status = "balanced"
	StatusOver     Status = "over"
	StatusUnder    Status = "under"
)

// Message es el texto que acompaña al estado en la UI.
func (s Status) Message(difference float64) string {
	switch s {
	case StatusBalanced:
		return "Feeding schedule is well-balanced!"
	case StatusOver:
		return "Feeding schedule exceeds target by " + formatKcal(difference) + " kcal. Consider reducing portion sizes."
	default:
		return "Feeding schedule is under target by " + formatKcal(math.Abs(difference)) + " kcal. Consider increasing portions or adding another meal."
	}
}

type Totals struct {
	Calories  float64
	Grams     float64
	Cups      float64
	MealCount int
}

// MealsFor filtra por gato respetando el orden de inserción.
func MealsFor(meals []Meal, catName string) []Meal {
	out := make([]Meal, 0)
	for _, m := range meals {
		if m.CatName == catName {
			out = append(out, m)
		}
	}
	return out
}

// SortByTime ordena una copia por "HH:MM". Es estable: dos comidas a la misma
// hora mantienen su orden de inserción.
func SortByTime(meals []Meal) []Meal {
	out := make([]Meal, len(meals))
	copy(out, meals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// DailyTotalsFor suma las comidas del gato. Sin comidas devuelve ceros.
func DailyTotalsFor(meals []Meal, catName string) Totals {
	var t Totals
	for _, m := range MealsFor(meals, catName) {
		t.Calories += m.TargetCalories
		t.Grams += m.GramsNeeded
		t.Cups += m.CupsNeeded
		t.MealCount++
	}
	return t
}

// BalanceStatus compara total contra objetivo. difference = total - target.
// threshold 0 exige diferencia exacta; uno negativo se trata como 0.
func BalanceStatus(total, target, threshold float64) (Status, float64) {
	if threshold < 0 {
		threshold = 0
	}
	diff := total - target
	switch {
	case math.Abs(diff) <= threshold:
		return StatusBalanced, diff
	case diff > 0:
		return StatusOver, diff
	default:
		return StatusUnder, diff
	}
}

// FoodTypeBreakdown suma TargetCalories por tipo. Ambos tipos siempre están.
func FoodTypeBreakdown(meals []Meal, catName string) map[nutrition.FoodType]float64 {
	out := make(map[nutrition.FoodType]float64, 2)
	for _, t := range nutrition.FoodTypes() {
		out[t] = 0
	}
	for _, m := range MealsFor(meals, catName) {
		out[m.FoodType] += m.TargetCalories
	}
	return out
}

// PercentageOfTarget devuelve 0 cuando target es 0.
func PercentageOfTarget(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return actual / target * 100
}

func formatKcal(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}

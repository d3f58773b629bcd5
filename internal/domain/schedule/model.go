package schedule

import (
	"fmt"
	"strings"
	"time"

	"cat-feeding-tracker/internal/nutrition"
)

// Meal es una comida programada. Brand, CaloriesPer100g y DailyTarget son
// copias tomadas al crearla: editar el perfil o el catálogo después no la
// modifica. CatName es una referencia débil al perfil.
type Meal struct {
	ID      string
	CatName string
	Time    string // "HH:MM" 24h con ceros

	FoodType        nutrition.FoodType
	Brand           string
	CaloriesPer100g float64

	PercentageOfDaily float64 // 0-100
	DailyTarget       float64 // DER al momento de crear

	TargetCalories float64
	GramsNeeded    float64
	CupsNeeded     float64

	CreatedAt time.Time
}

type MealInput struct {
	CatName           string
	Time              string
	FoodType          nutrition.FoodType
	Brand             string
	CaloriesPer100g   float64
	PercentageOfDaily float64
	DailyTarget       float64
}

// NewMeal calcula calorías objetivo, gramos y tazas. No asigna ID ni CreatedAt.
func NewMeal(in MealInput) (Meal, error) {
	catName := strings.TrimSpace(in.CatName)
	if catName == "" {
		return Meal{}, fmt.Errorf("%w: cat name is required", ErrInvalidInput)
	}
	if err := ValidateTime(in.Time); err != nil {
		return Meal{}, err
	}
	if !in.FoodType.Valid() {
		return Meal{}, fmt.Errorf("%w: unknown food_type %q", ErrInvalidInput, in.FoodType)
	}
	if in.PercentageOfDaily < 0 || in.PercentageOfDaily > 100 {
		return Meal{}, fmt.Errorf("%w: percentage_of_daily must be between 0 and 100", ErrInvalidInput)
	}
	if in.DailyTarget < 0 {
		return Meal{}, fmt.Errorf("%w: daily target must be >= 0", ErrInvalidInput)
	}

	target := in.PercentageOfDaily / 100 * in.DailyTarget
	grams, cups, err := nutrition.ServingSize(in.CaloriesPer100g, target, in.FoodType)
	if err != nil {
		return Meal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return Meal{
		CatName:           catName,
		Time:              in.Time,
		FoodType:          in.FoodType,
		Brand:             in.Brand,
		CaloriesPer100g:   in.CaloriesPer100g,
		PercentageOfDaily: in.PercentageOfDaily,
		DailyTarget:       in.DailyTarget,
		TargetCalories:    target,
		GramsNeeded:       grams,
		CupsNeeded:        cups,
	}, nil
}

// ValidateTime exige "HH:MM" con ceros a la izquierda: el orden por texto
// depende de eso.
func ValidateTime(s string) error {
	if len(s) != 5 {
		return fmt.Errorf("%w: time must be HH:MM (24h)", ErrInvalidInput)
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("%w: time must be HH:MM (24h)", ErrInvalidInput)
	}
	return nil
}

// FormatTime12h convierte "14:30" en "02:30 PM". Si el valor no es válido lo
// devuelve tal cual.
func FormatTime12h(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("03:04 PM")
}

// hourDecimal devuelve 8.5 para "08:30".
func hourDecimal(hhmm string) float64 {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0
	}
	return float64(t.Hour()) + float64(t.Minute())/60
}

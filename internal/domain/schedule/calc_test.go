package schedule

import (
	"errors"
	"math"
	"testing"

	"cat-feeding-tracker/internal/nutrition"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestNewMeal_ComputesServing(t *testing.T) {
	der := nutrition.DailyEnergy(nutrition.RestingEnergy(4.5), nutrition.ActivityModerate, nutrition.LifeStageAdult, nutrition.BodyIdeal)

	m, err := NewMeal(MealInput{
		CatName:           "Milo",
		Time:              "08:00",
		FoodType:          nutrition.FoodDry,
		Brand:             "Hill's Science Diet Adult Indoor",
		CaloriesPer100g:   370,
		PercentageOfDaily: 25,
		DailyTarget:       der,
	})
	if err != nil {
		t.Fatalf("new meal: %v", err)
	}

	if !approx(m.TargetCalories, 75.70, 0.01) {
		t.Fatalf("target: got %.4f", m.TargetCalories)
	}
	if !approx(m.GramsNeeded, 20.46, 0.01) {
		t.Fatalf("grams: got %.4f", m.GramsNeeded)
	}
	if !approx(m.CupsNeeded, 0.1811, 0.0005) {
		t.Fatalf("cups: got %.4f", m.CupsNeeded)
	}
}

func TestNewMeal_WetCupSize(t *testing.T) {
	m, err := NewMeal(MealInput{
		CatName: "Milo", Time: "18:30", FoodType: nutrition.FoodWet,
		CaloriesPer100g: 100, PercentageOfDaily: 50, DailyTarget: 227,
	})
	if err != nil {
		t.Fatalf("new meal: %v", err)
	}
	// 113.5 kcal -> 113.5 g -> 0.5 tazas de 227 g
	if !approx(m.CupsNeeded, 0.5, 1e-9) {
		t.Fatalf("cups: got %v", m.CupsNeeded)
	}
}

func TestNewMeal_Validation(t *testing.T) {
	base := MealInput{
		CatName: "Milo", Time: "08:00", FoodType: nutrition.FoodDry,
		CaloriesPer100g: 370, PercentageOfDaily: 25, DailyTarget: 300,
	}

	cases := map[string]func(in *MealInput){
		"no cat":        func(in *MealInput) { in.CatName = "" },
		"unpadded time": func(in *MealInput) { in.Time = "8:00" },
		"bad time":      func(in *MealInput) { in.Time = "25:00" },
		"pct > 100":     func(in *MealInput) { in.PercentageOfDaily = 101 },
		"pct < 0":       func(in *MealInput) { in.PercentageOfDaily = -1 },
		"zero kcal":     func(in *MealInput) { in.CaloriesPer100g = 0 },
		"unknown type":  func(in *MealInput) { in.FoodType = "raw" },
	}
	for name, mut := range cases {
		in := base
		mut(&in)
		if _, err := NewMeal(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestSortByTime_StableAndLexicographic(t *testing.T) {
	meals := []Meal{
		{ID: "a", Time: "18:00"},
		{ID: "b", Time: "08:00"},
		{ID: "c", Time: "12:30"},
		{ID: "d", Time: "08:00"},
	}

	got := SortByTime(meals)
	want := []string{"b", "d", "c", "a"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("pos %d: want %s got %s", i, id, got[i].ID)
		}
	}
	if meals[0].ID != "a" {
		t.Fatalf("input must not be reordered")
	}
}

func TestMealsFor_PreservesInsertionOrder(t *testing.T) {
	meals := []Meal{
		{ID: "1", CatName: "Milo", Time: "18:00"},
		{ID: "2", CatName: "Luna", Time: "07:00"},
		{ID: "3", CatName: "Milo", Time: "08:00"},
	}
	got := MealsFor(meals, "Milo")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected filter result %+v", got)
	}
}

func TestDailyTotalsFor(t *testing.T) {
	if got := DailyTotalsFor(nil, "Milo"); got != (Totals{}) {
		t.Fatalf("expected zero totals, got %+v", got)
	}

	meals := []Meal{
		{CatName: "Milo", TargetCalories: 100, GramsNeeded: 27, CupsNeeded: 0.24},
		{CatName: "Luna", TargetCalories: 999},
		{CatName: "Milo", TargetCalories: 50, GramsNeeded: 55, CupsNeeded: 0.24},
	}
	got := DailyTotalsFor(meals, "Milo")
	if got.Calories != 150 || got.Grams != 82 || got.MealCount != 2 || !approx(got.Cups, 0.48, 1e-9) {
		t.Fatalf("unexpected totals %+v", got)
	}
}

func TestBalanceStatus(t *testing.T) {
	cases := []struct {
		total, target float64
		status        Status
		diff          float64
	}{
		{500, 480, StatusBalanced, 20},
		{600, 480, StatusOver, 120},
		{300, 480, StatusUnder, -180},
		{530, 480, StatusBalanced, 50},
		{430, 480, StatusBalanced, -50},
	}
	for _, c := range cases {
		st, diff := BalanceStatus(c.total, c.target, 50)
		if st != c.status || diff != c.diff {
			t.Fatalf("BalanceStatus(%v, %v): got (%s, %v) want (%s, %v)", c.total, c.target, st, diff, c.status, c.diff)
		}
	}

	if st, diff := BalanceStatus(510, 500, 0); st != StatusOver || diff != 10 {
		t.Fatalf("zero threshold: got (%s, %v) want (over, 10)", st, diff)
	}
	if st, _ := BalanceStatus(500, 500, 0); st != StatusBalanced {
		t.Fatalf("zero threshold with exact match should be balanced, got %s", st)
	}
	if st, _ := BalanceStatus(560, 480, 100); st != StatusBalanced {
		t.Fatalf("custom threshold ignored, got %s", st)
	}
}

func TestFoodTypeBreakdown_DefaultsToZero(t *testing.T) {
	got := FoodTypeBreakdown([]Meal{{CatName: "Milo", FoodType: nutrition.FoodDry, TargetCalories: 80}}, "Milo")
	if got[nutrition.FoodDry] != 80 {
		t.Fatalf("dry: got %v", got[nutrition.FoodDry])
	}
	wet, ok := got[nutrition.FoodWet]
	if !ok || wet != 0 {
		t.Fatalf("wet must be present with 0, got %v (present=%v)", wet, ok)
	}
}

func TestPercentageOfTarget(t *testing.T) {
	if got := PercentageOfTarget(123, 0); got != 0 {
		t.Fatalf("expected 0 for zero target, got %v", got)
	}
	if got := PercentageOfTarget(50, 200); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

func TestFormatTime12h(t *testing.T) {
	cases := map[string]string{
		"08:00": "08:00 AM",
		"00:15": "12:15 AM",
		"12:00": "12:00 PM",
		"18:45": "06:45 PM",
		"bad":   "bad",
	}
	for in, want := range cases {
		if got := FormatTime12h(in); got != want {
			t.Fatalf("FormatTime12h(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStatusMessage(t *testing.T) {
	if got := StatusUnder.Message(-180.4); got != "Feeding schedule is under target by 180 kcal. Consider increasing portions or adding another meal." {
		t.Fatalf("unexpected message %q", got)
	}
}

package nutrition

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRestingEnergy_MatchesFormula(t *testing.T) {
	for _, w := range []float64{0.5, 1, 2.3, 4.5, 7, 15} {
		got := RestingEnergy(w)
		want := 70 * math.Pow(w, 0.75)
		if got != want {
			t.Fatalf("RestingEnergy(%v) = %v, want %v", w, got, want)
		}
	}
}

func TestRestingEnergy_MonotonicInWeight(t *testing.T) {
	prev := RestingEnergy(0.1)
	for w := 0.2; w <= 20; w += 0.1 {
		cur := RestingEnergy(w)
		if cur <= prev {
			t.Fatalf("expected RER to increase at %.1f kg: prev=%v cur=%v", w, prev, cur)
		}
		prev = cur
	}
}

func TestDailyMultiplier_PriorityOrder(t *testing.T) {
	cases := []struct {
		name      string
		activity  ActivityLevel
		stage     LifeStage
		condition BodyCondition
		want      float64
	}{
		{"kitten very young ignores overweight", ActivityVeryYoung, LifeStageKitten, BodyOverweight, 2.5},
		{"kitten very young ignores underweight", ActivityVeryYoung, LifeStageKitten, BodyUnderweight, 2.5},
		{"kitten very young ideal", ActivityVeryYoung, LifeStageKitten, BodyIdeal, 2.5},
		{"kitten high", ActivityHigh, LifeStageKitten, BodyIdeal, 2.0},
		{"kitten low overweight", ActivityLow, LifeStageKitten, BodyOverweight, 2.0},
		{"adult overweight high", ActivityHigh, LifeStageAdult, BodyOverweight, 0.8},
		{"adult underweight low", ActivityLow, LifeStageAdult, BodyUnderweight, 1.3},
		{"senior overweight", ActivityLow, LifeStageSenior, BodyOverweight, 0.8},
		{"senior underweight", ActivityModerate, LifeStageSenior, BodyUnderweight, 1.3},
		{"senior ideal high", ActivityHigh, LifeStageSenior, BodyIdeal, 1.1},
		{"adult low", ActivityLow, LifeStageAdult, BodyIdeal, 1.2},
		{"adult moderate", ActivityModerate, LifeStageAdult, BodyIdeal, 1.4},
		{"adult high", ActivityHigh, LifeStageAdult, BodyIdeal, 1.6},
		{"adult very young falls through", ActivityVeryYoung, LifeStageAdult, BodyIdeal, 1.6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DailyMultiplier(tc.activity, tc.stage, tc.condition)
			if got != tc.want {
				t.Fatalf("expected multiplier %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDailyEnergy_ScalesRER(t *testing.T) {
	rer := RestingEnergy(4.5)
	der := DailyEnergy(rer, ActivityModerate, LifeStageAdult, BodyIdeal)
	if !almostEqual(der, rer*1.4, 1e-9) {
		t.Fatalf("expected DER=%v, got %v", rer*1.4, der)
	}
	if !almostEqual(rer, 216.28, 0.01) {
		t.Fatalf("expected RER≈216.28 for 4.5kg, got %v", rer)
	}
	if !almostEqual(der, 302.79, 0.01) {
		t.Fatalf("expected DER≈302.79 for 4.5kg moderate adult, got %v", der)
	}
}

func TestServingSize_Dry(t *testing.T) {
	grams, cups, err := ServingSize(370, 92.5, FoodDry)
	if err != nil {
		t.Fatalf("ServingSize returned error: %v", err)
	}
	if !almostEqual(grams, 25.0, 1e-9) {
		t.Fatalf("expected 25g, got %v", grams)
	}
	if !almostEqual(cups, 25.0/113, 1e-9) || !almostEqual(cups, 0.2212, 1e-4) {
		t.Fatalf("expected ≈0.2212 cups, got %v", cups)
	}
}

func TestServingSize_WetUsesLargerCup(t *testing.T) {
	grams, cups, err := ServingSize(90, 90, FoodWet)
	if err != nil {
		t.Fatalf("ServingSize returned error: %v", err)
	}
	if !almostEqual(grams, 100, 1e-9) || !almostEqual(cups, 100.0/227, 1e-9) {
		t.Fatalf("unexpected wet serving: grams=%v cups=%v", grams, cups)
	}
}

func TestServingSize_RejectsZeroDensity(t *testing.T) {
	for _, kcal := range []float64{0, -10} {
		_, _, err := ServingSize(kcal, 50, FoodDry)
		if !errors.Is(err, ErrInvalidCalorieDensity) {
			t.Fatalf("expected ErrInvalidCalorieDensity for %v, got %v", kcal, err)
		}
	}
}

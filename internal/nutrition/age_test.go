package nutrition

import "testing"

func TestAgeInMonths(t *testing.T) {
	if got := AgeInMonths(3, 4); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
	if got := AgeInMonths(0, 0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestLifeStageFromAge_Boundaries(t *testing.T) {
	cases := map[int]LifeStage{
		0:   LifeStageKitten,
		11:  LifeStageKitten,
		12:  LifeStageAdult,
		119: LifeStageAdult,
		120: LifeStageSenior,
		200: LifeStageSenior,
	}
	for months, want := range cases {
		if got := LifeStageFromAge(months); got != want {
			t.Fatalf("LifeStageFromAge(%d) = %s, want %s", months, got, want)
		}
	}
}

func TestSuggestedActivityFromAge_Boundaries(t *testing.T) {
	cases := map[int]ActivityLevel{
		0:   ActivityVeryYoung,
		4:   ActivityVeryYoung,
		5:   ActivityHigh,
		11:  ActivityHigh,
		12:  ActivityModerate,
		83:  ActivityModerate,
		84:  ActivityLow,
		150: ActivityLow,
	}
	for months, want := range cases {
		if got := SuggestedActivityFromAge(months); got != want {
			t.Fatalf("SuggestedActivityFromAge(%d) = %s, want %s", months, got, want)
		}
	}
}

func TestFormatAge(t *testing.T) {
	cases := []struct {
		years, months int
		want          string
	}{
		{0, 1, "1 month"},
		{0, 5, "5 months"},
		{1, 0, "1 year"},
		{4, 0, "4 years"},
		{1, 1, "1 year, 1 month"},
		{2, 3, "2 years, 3 months"},
	}
	for _, tc := range cases {
		if got := FormatAge(tc.years, tc.months); got != tc.want {
			t.Fatalf("FormatAge(%d, %d) = %q, want %q", tc.years, tc.months, got, tc.want)
		}
	}
}

func TestKgLbsConversion(t *testing.T) {
	if got := KgToLbs(1); !almostEqual(got, 2.20462, 1e-9) {
		t.Fatalf("expected 2.20462, got %v", got)
	}
	if got := LbsToKg(KgToLbs(4.5)); !almostEqual(got, 4.5, 1e-9) {
		t.Fatalf("expected 4.5 after round trip, got %v", got)
	}
}

func TestSoftWarnings(t *testing.T) {
	if WeightWarning(4.5) != "" {
		t.Fatalf("4.5kg should not warn")
	}
	if WeightWarning(0.3) == "" || WeightWarning(16) == "" {
		t.Fatalf("out of range weights should warn")
	}
	if CaloriesWarning(370, FoodDry) != "" || CaloriesWarning(90, FoodWet) != "" {
		t.Fatalf("typical calories should not warn")
	}
	if CaloriesWarning(250, FoodDry) == "" || CaloriesWarning(520, FoodDry) == "" {
		t.Fatalf("dry outside 300-500 should warn")
	}
	if CaloriesWarning(50, FoodWet) == "" || CaloriesWarning(160, FoodWet) == "" {
		t.Fatalf("wet outside 60-150 should warn")
	}
}

package nutrition

import "fmt"

// AgeInMonths combina años y meses.
func AgeInMonths(years, months int) int {
	return years*12 + months
}

// LifeStageFromAge: <12 meses kitten, <120 adult, resto senior.
func LifeStageFromAge(months int) LifeStage {
	switch {
	case months < 12:
		return LifeStageKitten
	case months < 120:
		return LifeStageAdult
	default:
		return LifeStageSenior
	}
}

// SuggestedActivityFromAge es solo un valor por defecto para el formulario;
// lo que elija el usuario manda.
func SuggestedActivityFromAge(months int) ActivityLevel {
	switch {
	case months <= 4:
		return ActivityVeryYoung
	case months < 12:
		return ActivityHigh
	case months < 84:
		return ActivityModerate
	default:
		return ActivityLow
	}
}

// FormatAge arma "2 years, 3 months" / "1 year" / "5 months".
func FormatAge(years, months int) string {
	switch {
	case years == 0:
		return fmt.Sprintf("%d %s", months, plural(months, "month"))
	case months == 0:
		return fmt.Sprintf("%d %s", years, plural(years, "year"))
	default:
		return fmt.Sprintf("%d %s, %d %s", years, plural(years, "year"), months, plural(months, "month"))
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

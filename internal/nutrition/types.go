package nutrition

import "strings"

// LifeStage define la etapa de vida del gato.
// @Enum kitten, adult, senior
type LifeStage string

const (
	LifeStageKitten LifeStage = "kitten"
	LifeStageAdult  LifeStage = "adult"
	LifeStageSenior LifeStage = "senior"
)

// ActivityLevel define el nivel de actividad.
// @Enum very_young, low, moderate, high
type ActivityLevel string

const (
	ActivityVeryYoung ActivityLevel = "very_young"
	ActivityLow       ActivityLevel = "low"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHigh      ActivityLevel = "high"
)

// BodyCondition es la evaluación subjetiva del peso.
// @Enum underweight, ideal, overweight
type BodyCondition string

const (
	BodyUnderweight BodyCondition = "underweight"
	BodyIdeal       BodyCondition = "ideal"
	BodyOverweight  BodyCondition = "overweight"
)

// FoodType separa el catálogo en alimento seco y húmedo.
// @Enum dry, wet
type FoodType string

const (
	FoodDry FoodType = "dry"
	FoodWet FoodType = "wet"
)

func (s LifeStage) Valid() bool {
	switch s {
	case LifeStageKitten, LifeStageAdult, LifeStageSenior:
		return true
	}
	return false
}

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivityVeryYoung, ActivityLow, ActivityModerate, ActivityHigh:
		return true
	}
	return false
}

func (c BodyCondition) Valid() bool {
	switch c {
	case BodyUnderweight, BodyIdeal, BodyOverweight:
		return true
	}
	return false
}

func (t FoodType) Valid() bool {
	return t == FoodDry || t == FoodWet
}

// FoodTypes devuelve los tipos en orden de presentación.
func FoodTypes() []FoodType {
	return []FoodType{FoodDry, FoodWet}
}

// ParseFoodType normaliza (trim + lower). No valida.
func ParseFoodType(s string) FoodType {
	return FoodType(strings.ToLower(strings.TrimSpace(s)))
}

func ParseLifeStage(s string) LifeStage {
	return LifeStage(strings.ToLower(strings.TrimSpace(s)))
}

func ParseActivityLevel(s string) ActivityLevel {
	return ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
}

func ParseBodyCondition(s string) BodyCondition {
	return BodyCondition(strings.ToLower(strings.TrimSpace(s)))
}

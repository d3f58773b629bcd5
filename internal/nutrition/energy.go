package nutrition

import "math"

// Multiplicadores DER por situación.
const (
	multKittenVeryYoung = 2.5
	multKitten          = 2.0
	multWeightLoss      = 0.8
	multWeightGain      = 1.3
	multSenior          = 1.1
	multLowActivity     = 1.2
	multModerate        = 1.4
	multHighActivity    = 1.6
)

// RestingEnergy calcula el RER (kcal/día): 70 * peso^0.75.
// No valida el peso; eso es responsabilidad de quien llama.
func RestingEnergy(weightKg float64) float64 {
	return 70 * math.Pow(weightKg, 0.75)
}

// DailyMultiplier elige un único multiplicador. El orden importa:
// kitten siempre gana; luego condición corporal, senior y por último actividad.
func DailyMultiplier(activity ActivityLevel, stage LifeStage, condition BodyCondition) float64 {
	switch {
	case stage == LifeStageKitten && activity == ActivityVeryYoung:
		return multKittenVeryYoung
	case stage == LifeStageKitten:
		return multKitten
	case condition == BodyOverweight:
		return multWeightLoss
	case condition == BodyUnderweight:
		return multWeightGain
	case stage == LifeStageSenior:
		return multSenior
	case activity == ActivityLow:
		return multLowActivity
	case activity == ActivityModerate:
		return multModerate
	default:
		return multHighActivity
	}
}

// DailyEnergy calcula el DER (kcal/día) a partir del RER.
func DailyEnergy(rer float64, activity ActivityLevel, stage LifeStage, condition BodyCondition) float64 {
	return rer * DailyMultiplier(activity, stage, condition)
}

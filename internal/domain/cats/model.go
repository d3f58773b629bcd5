package cats

import (
	"time"

	"cat-feeding-tracker/internal/nutrition"
)

// CatProfile es el perfil de un gato. Name es la clave única.
// RestingEnergy y DailyEnergy son derivados: cualquier cambio en peso,
// actividad, etapa o condición corporal pasa por Recompute.
type CatProfile struct {
	Name  string
	Breed string

	WeightKg  float64
	AgeYears  int
	AgeMonths int // 0-11

	LifeStage     nutrition.LifeStage
	ActivityLevel nutrition.ActivityLevel
	BodyCondition nutrition.BodyCondition
	IsNeutered    bool

	RestingEnergy float64 // RER kcal/día
	DailyEnergy   float64 // DER kcal/día

	CreatedAt time.Time
}

// Recompute recalcula RER y luego DER, siempre en ese orden.
func (p *CatProfile) Recompute() {
	p.RestingEnergy = nutrition.RestingEnergy(p.WeightKg)
	p.DailyEnergy = nutrition.DailyEnergy(p.RestingEnergy, p.ActivityLevel, p.LifeStage, p.BodyCondition)
}

func (p CatProfile) TotalAgeMonths() int {
	return nutrition.AgeInMonths(p.AgeYears, p.AgeMonths)
}

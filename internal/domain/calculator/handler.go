// Package calculator expone el motor de energía y las utilidades de edad sin
// guardar nada.
package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cat-feeding-tracker/internal/nutrition"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(cr chi.Router) {
		cr.Get("/energy", energyHandler())
		cr.Get("/serving", servingHandler())
		cr.Get("/age", ageHandler())
	})
}

var errBadParam = errors.New("bad parameter")

type energyResponse struct {
	WeightKg      float64                 `json:"weight_kg"`
	WeightLbs     float64                 `json:"weight_lbs"`
	LifeStage     nutrition.LifeStage     `json:"life_stage"`
	ActivityLevel nutrition.ActivityLevel `json:"activity_level"`
	BodyCondition nutrition.BodyCondition `json:"body_condition"`
	Multiplier    float64                 `json:"multiplier"`
	RestingEnergy float64                 `json:"resting_energy"`
	DailyEnergy   float64                 `json:"daily_energy"`
	Warnings      []string                `json:"warnings"`
}

type servingResponse struct {
	FoodType        nutrition.FoodType `json:"food_type"`
	CaloriesPer100g float64            `json:"calories_per_100g"`
	TargetCalories  float64            `json:"target_calories"`
	Grams           float64            `json:"grams"`
	Cups            float64            `json:"cups"`
	CupSizeGrams    float64            `json:"cup_size_grams"`
}

type ageResponse struct {
	Years             int                     `json:"years"`
	Months            int                     `json:"months"`
	TotalMonths       int                     `json:"total_months"`
	Display           string                  `json:"display"`
	LifeStage         nutrition.LifeStage     `json:"life_stage"`
	SuggestedActivity nutrition.ActivityLevel `json:"suggested_activity"`
}

// energyHandler godoc
// @Summary Calcular RER/DER
// @Description Acepta weight_kg o weight_lbs. Sin life_stage ni activity_level se sugieren por edad (years/months).
// @Tags calculator
// @Produce json
// @Param weight_kg query number false "Peso en kg"
// @Param weight_lbs query number false "Peso en lbs"
// @Param years query int false "Edad (años)"
// @Param months query int false "Edad (meses 0-11)"
// @Param life_stage query string false "kitten | adult | senior"
// @Param activity_level query string false "very_young | low | moderate | high"
// @Param body_condition query string false "underweight | ideal | overweight"
// @Success 200 {object} energyResponse
// @Failure 400 {string} string "parámetro inválido"
// @Router /calculator/energy [get]
func energyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		weightKg, err := weightParam(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		years, err := intParam(q, "years", 0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		months, err := intParam(q, "months", 0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		total := nutrition.AgeInMonths(years, months)

		stage := nutrition.ParseLifeStage(q.Get("life_stage"))
		if stage == "" {
			stage = nutrition.LifeStageFromAge(total)
		}
		activity := nutrition.ParseActivityLevel(q.Get("activity_level"))
		if activity == "" {
			activity = nutrition.SuggestedActivityFromAge(total)
		}
		condition := nutrition.ParseBodyCondition(q.Get("body_condition"))
		if condition == "" {
			condition = nutrition.BodyIdeal
		}
		if !stage.Valid() || !activity.Valid() || !condition.Valid() {
			http.Error(w, "unknown life_stage, activity_level or body_condition", http.StatusBadRequest)
			return
		}

		rer := nutrition.RestingEnergy(weightKg)
		warnings := []string{}
		if msg := nutrition.WeightWarning(weightKg); msg != "" {
			warnings = append(warnings, msg)
		}

		writeJSON(w, http.StatusOK, energyResponse{
			WeightKg:      weightKg,
			WeightLbs:     nutrition.KgToLbs(weightKg),
			LifeStage:     stage,
			ActivityLevel: activity,
			BodyCondition: condition,
			Multiplier:    nutrition.DailyMultiplier(activity, stage, condition),
			RestingEnergy: rer,
			DailyEnergy:   nutrition.DailyEnergy(rer, activity, stage, condition),
			Warnings:      warnings,
		})
	}
}

// servingHandler godoc
// @Summary Porción para un objetivo de calorías
// @Tags calculator
// @Produce json
// @Param kcal query number true "kcal por 100 g"
// @Param target query number true "kcal objetivo"
// @Param type query string false "dry | wet (default dry)"
// @Success 200 {object} servingResponse
// @Failure 400 {string} string "parámetro inválido"
// @Router /calculator/serving [get]
func servingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		kcal, err := floatParam(q, "kcal")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		target, err := floatParam(q, "target")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ft := nutrition.FoodDry
		if raw := q.Get("type"); raw != "" {
			ft = nutrition.ParseFoodType(raw)
		}
		if !ft.Valid() {
			http.Error(w, "unknown food_type", http.StatusBadRequest)
			return
		}

		grams, cups, err := nutrition.ServingSize(kcal, target, ft)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, servingResponse{
			FoodType:        ft,
			CaloriesPer100g: kcal,
			TargetCalories:  target,
			Grams:           grams,
			Cups:            cups,
			CupSizeGrams:    nutrition.CupSizeGrams(ft),
		})
	}
}

// ageHandler godoc
// @Summary Edad, etapa de vida y actividad sugerida
// @Tags calculator
// @Produce json
// @Param years query int false "Años"
// @Param months query int false "Meses (0-11)"
// @Success 200 {object} ageResponse
// @Failure 400 {string} string "parámetro inválido"
// @Router /calculator/age [get]
func ageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		years, err := intParam(q, "years", 0)
		if err != nil || years < 0 {
			http.Error(w, "years must be a non-negative integer", http.StatusBadRequest)
			return
		}
		months, err := intParam(q, "months", 0)
		if err != nil || months < 0 || months > 11 {
			http.Error(w, "months must be between 0 and 11", http.StatusBadRequest)
			return
		}

		total := nutrition.AgeInMonths(years, months)
		writeJSON(w, http.StatusOK, ageResponse{
			Years:             years,
			Months:            months,
			TotalMonths:       total,
			Display:           nutrition.FormatAge(years, months),
			LifeStage:         nutrition.LifeStageFromAge(total),
			SuggestedActivity: nutrition.SuggestedActivityFromAge(total),
		})
	}
}

func weightParam(q url.Values) (float64, error) {
	if strings.TrimSpace(q.Get("weight_kg")) != "" {
		kg, err := floatParam(q, "weight_kg")
		if err != nil {
			return 0, err
		}
		if kg <= 0 {
			return 0, fmt.Errorf("%w: weight_kg must be greater than zero", errBadParam)
		}
		return kg, nil
	}
	lbs, err := floatParam(q, "weight_lbs")
	if err != nil {
		return 0, fmt.Errorf("%w: weight_kg or weight_lbs is required", errBadParam)
	}
	if lbs <= 0 {
		return 0, fmt.Errorf("%w: weight_lbs must be greater than zero", errBadParam)
	}
	return nutrition.LbsToKg(lbs), nil
}

func floatParam(q url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", errBadParam, key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a number", errBadParam, key)
	}
	return v, nil
}

func intParam(q url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadParam, key)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

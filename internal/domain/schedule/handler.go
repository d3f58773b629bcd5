package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cat-feeding-tracker/internal/domain/cats"
	"cat-feeding-tracker/internal/nutrition"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/cats/{name}/meals", func(mr chi.Router) {
		mr.Get("/", listMealsHandler(svc))
		mr.Post("/", addMealHandler(svc))
	})
	r.Get("/cats/{name}/dashboard", dashboardHandler(svc))

	r.Route("/meals", func(mr chi.Router) {
		mr.Get("/orphans", orphansHandler(svc))
		mr.Delete("/{mealID}", removeMealHandler(svc))
	})
}

type addMealRequest struct {
	Time              string  `json:"time" example:"08:00"`
	FoodType          string  `json:"food_type" enums:"dry,wet"`
	Brand             string  `json:"brand"`
	PercentageOfDaily float64 `json:"percentage_of_daily" example:"25"`
}

type mealResponse struct {
	ID                string             `json:"id"`
	CatName           string             `json:"cat_name"`
	Time              string             `json:"time"`
	TimeDisplay       string             `json:"time_display"`
	FoodType          nutrition.FoodType `json:"food_type"`
	Brand             string             `json:"brand"`
	CaloriesPer100g   float64            `json:"calories_per_100g"`
	PercentageOfDaily float64            `json:"percentage_of_daily"`
	DailyTarget       float64            `json:"daily_target"`
	TargetCalories    float64            `json:"target_calories"`
	GramsNeeded       float64            `json:"grams_needed"`
	CupsNeeded        float64            `json:"cups_needed"`
	CreatedAt         time.Time          `json:"created_at"`
}

type totalsResponse struct {
	TotalCalories float64 `json:"total_calories"`
	TotalGrams    float64 `json:"total_grams"`
	TotalCups     float64 `json:"total_cups"`
	MealCount     int     `json:"meal_count"`
}

type mealsResponse struct {
	Meals      []mealResponse `json:"meals"`
	Totals     totalsResponse `json:"totals"`
	Target     float64        `json:"target_calories"`
	Status     Status         `json:"status"`
	Difference float64        `json:"difference"`
	Message    string         `json:"message"`
}

type typeShareResponse struct {
	FoodType       nutrition.FoodType `json:"food_type"`
	Calories       float64            `json:"calories"`
	PercentOfDaily float64            `json:"percent_of_daily"`
}

type distributionResponse struct {
	Time     string  `json:"time"`
	Label    string  `json:"label"`
	Calories float64 `json:"calories"`
	Percent  float64 `json:"percent"`
}

type timelineResponse struct {
	Hour     float64 `json:"hour"`
	Label    string  `json:"label"`
	Brand    string  `json:"brand"`
	Calories float64 `json:"calories"`
}

type dashboardResponse struct {
	Cat             cats.CatResponse       `json:"cat"`
	Meals           []mealResponse         `json:"meals"`
	Totals          totalsResponse         `json:"totals"`
	Status          Status                 `json:"status"`
	Difference      float64                `json:"difference"`
	Message         string                 `json:"message"`
	PercentOfTarget float64                `json:"percent_of_target"`
	Threshold       float64                `json:"balance_threshold"`
	Breakdown       []typeShareResponse    `json:"breakdown"`
	Distribution    []distributionResponse `json:"distribution"`
	Timeline        []timelineResponse     `json:"timeline"`
}

// listMealsHandler godoc
// @Summary Comidas del gato
// @Description Ordenadas por hora, con totales y estado de balance contra el DER actual.
// @Tags schedule
// @Produce json
// @Param name path string true "Nombre del gato"
// @Success 200 {object} mealsResponse
// @Failure 404 {string} string "cat not found"
// @Router /cats/{name}/meals [get]
func listMealsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Dashboard(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mealsResponse{
			Meals:      toMealResponses(d.Meals),
			Totals:     toTotalsResponse(d.Totals),
			Target:     d.Cat.DailyEnergy,
			Status:     d.Status,
			Difference: d.Difference,
			Message:    d.StatusMessage,
		})
	}
}

// addMealHandler godoc
// @Summary Agregar comida
// @Description Calcula kcal, gramos y tazas desde el % del DER y las kcal/100g del catálogo.
// @Tags schedule
// @Accept json
// @Produce json
// @Param name path string true "Nombre del gato"
// @Param payload body addMealRequest true "Comida"
// @Success 201 {object} mealResponse
// @Failure 400 {string} string "invalid json / validación / alimento inexistente"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{name}/meals [post]
func addMealHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addMealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.AddMeal(r.Context(), AddMealInput{
			CatName:           chi.URLParam(r, "name"),
			Time:              req.Time,
			FoodType:          nutrition.ParseFoodType(req.FoodType),
			Brand:             req.Brand,
			PercentageOfDaily: req.PercentageOfDaily,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toMealResponse(m))
	}
}

// dashboardHandler godoc
// @Summary Dashboard del gato
// @Tags schedule
// @Produce json
// @Param name path string true "Nombre del gato"
// @Success 200 {object} dashboardResponse
// @Failure 404 {string} string "cat not found"
// @Router /cats/{name}/dashboard [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Dashboard(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDashboardResponse(d))
	}
}

// removeMealHandler godoc
// @Summary Borrar comida
// @Tags schedule
// @Produce json
// @Param mealID path string true "Meal ID"
// @Success 200 {object} mealResponse
// @Failure 404 {string} string "meal not found"
// @Router /meals/{mealID} [delete]
func removeMealHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.RemoveMeal(r.Context(), chi.URLParam(r, "mealID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toMealResponse(m))
	}
}

// orphansHandler godoc
// @Summary Comidas huérfanas
// @Description Comidas cuyo gato fue borrado sin cascade.
// @Tags schedule
// @Produce json
// @Success 200 {array} mealResponse
// @Router /meals/orphans [get]
func orphansHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Orphans(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toMealResponses(items))
	}
}

func toMealResponse(m Meal) mealResponse {
	return mealResponse{
		ID:                m.ID,
		CatName:           m.CatName,
		Time:              m.Time,
		TimeDisplay:       FormatTime12h(m.Time),
		FoodType:          m.FoodType,
		Brand:             m.Brand,
		CaloriesPer100g:   m.CaloriesPer100g,
		PercentageOfDaily: m.PercentageOfDaily,
		DailyTarget:       m.DailyTarget,
		TargetCalories:    m.TargetCalories,
		GramsNeeded:       m.GramsNeeded,
		CupsNeeded:        m.CupsNeeded,
		CreatedAt:         m.CreatedAt,
	}
}

func toMealResponses(items []Meal) []mealResponse {
	out := make([]mealResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMealResponse(m))
	}
	return out
}

func toTotalsResponse(t Totals) totalsResponse {
	return totalsResponse{
		TotalCalories: t.Calories,
		TotalGrams:    t.Grams,
		TotalCups:     t.Cups,
		MealCount:     t.MealCount,
	}
}

func toDashboardResponse(d Dashboard) dashboardResponse {
	breakdown := make([]typeShareResponse, 0, len(d.Breakdown))
	for _, b := range d.Breakdown {
		breakdown = append(breakdown, typeShareResponse(b))
	}
	dist := make([]distributionResponse, 0, len(d.Distribution))
	for _, s := range d.Distribution {
		dist = append(dist, distributionResponse(s))
	}
	timeline := make([]timelineResponse, 0, len(d.Timeline))
	for _, p := range d.Timeline {
		timeline = append(timeline, timelineResponse(p))
	}

	return dashboardResponse{
		Cat:             cats.ToCatResponse(d.Cat),
		Meals:           toMealResponses(d.Meals),
		Totals:          toTotalsResponse(d.Totals),
		Status:          d.Status,
		Difference:      d.Difference,
		Message:         d.StatusMessage,
		PercentOfTarget: d.PercentOfTarget,
		Threshold:       d.Threshold,
		Breakdown:       breakdown,
		Distribution:    dist,
		Timeline:        timeline,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownFood):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnknownCat):
		http.Error(w, "cat not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "meal not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package cats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cat-feeding-tracker/internal/nutrition"

	"github.com/go-chi/chi/v5"
)

// MealCleaner borra las comidas de un gato. Lo implementa schedule;
// se declara acá para no importar schedule desde cats.
type MealCleaner interface {
	RemoveForCat(ctx context.Context, catName string) (int, error)
}

func RegisterRoutes(r chi.Router, svc *Service, meals MealCleaner) {
	r.Route("/cats", func(cr chi.Router) {
		cr.Get("/", listCatsHandler(svc))
		cr.Post("/", saveCatHandler(svc))

		cr.Get("/{name}", getCatHandler(svc))
		cr.Patch("/{name}", updateCatHandler(svc))
		cr.Delete("/{name}", deleteCatHandler(svc, meals))

		// Borrado por posición en la lista
		cr.Delete("/index/{index}", deleteCatAtHandler(svc))
	})
}

// saveCatRequest es el formulario de perfil. life_stage, activity_level y
// body_condition son opcionales: si faltan se sugieren por edad.
type saveCatRequest struct {
	Name          string  `json:"name"`
	Breed         string  `json:"breed"`
	WeightKg      float64 `json:"weight_kg"`
	AgeYears      int     `json:"age_years"`
	AgeMonths     int     `json:"age_months"`
	LifeStage     string  `json:"life_stage" enums:"kitten,adult,senior"`
	ActivityLevel string  `json:"activity_level" enums:"very_young,low,moderate,high"`
	BodyCondition string  `json:"body_condition" enums:"underweight,ideal,overweight"`
	IsNeutered    *bool   `json:"is_neutered"` // default true
}

type updateCatRequest struct {
	Breed         *string  `json:"breed"`
	WeightKg      *float64 `json:"weight_kg"`
	AgeYears      *int     `json:"age_years"`
	AgeMonths     *int     `json:"age_months"`
	LifeStage     *string  `json:"life_stage"`
	ActivityLevel *string  `json:"activity_level"`
	BodyCondition *string  `json:"body_condition"`
	IsNeutered    *bool    `json:"is_neutered"`
}

// CatResponse representa un perfil con sus requerimientos calculados.
type CatResponse struct {
	Name           string                  `json:"name"`
	Breed          string                  `json:"breed"`
	WeightKg       float64                 `json:"weight_kg"`
	WeightLbs      float64                 `json:"weight_lbs"`
	AgeYears       int                     `json:"age_years"`
	AgeMonths      int                     `json:"age_months"`
	TotalAgeMonths int                     `json:"total_age_months"`
	AgeDisplay     string                  `json:"age_display"`
	LifeStage      nutrition.LifeStage     `json:"life_stage"`
	ActivityLevel  nutrition.ActivityLevel `json:"activity_level"`
	BodyCondition  nutrition.BodyCondition `json:"body_condition"`
	IsNeutered     bool                    `json:"is_neutered"`
	RestingEnergy  float64                 `json:"resting_energy"`
	DailyEnergy    float64                 `json:"daily_energy"`
	CreatedAt      time.Time               `json:"created_at"`
}

type saveCatResponse struct {
	Cat      CatResponse `json:"cat"`
	Created  bool        `json:"created"`
	Warnings []string    `json:"warnings"`
}

type deleteCatResponse struct {
	Cat          CatResponse `json:"cat"`
	MealsRemoved int         `json:"meals_removed"`
}

// listCatsHandler godoc
// @Summary Listar perfiles
// @Description Devuelve los perfiles en orden de creación.
// @Tags cats
// @Produce json
// @Success 200 {array} CatResponse
// @Router /cats [get]
func listCatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]CatResponse, 0, len(items))
		for _, p := range items {
			out = append(out, ToCatResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// saveCatHandler godoc
// @Summary Crear o reemplazar perfil
// @Description Upsert por nombre: si ya existe un gato con ese nombre se reemplaza en su posición. Calcula RER y DER. Los avisos de rango (peso) no bloquean.
// @Tags cats
// @Accept json
// @Produce json
// @Param payload body saveCatRequest true "Perfil del gato"
// @Success 201 {object} saveCatResponse "creado"
// @Success 200 {object} saveCatResponse "reemplazado"
// @Failure 400 {string} string "invalid json / validación"
// @Router /cats [post]
func saveCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveCatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		neutered := true
		if req.IsNeutered != nil {
			neutered = *req.IsNeutered
		}

		res, err := svc.Save(r.Context(), SaveInput{
			Name:          req.Name,
			Breed:         req.Breed,
			WeightKg:      req.WeightKg,
			AgeYears:      req.AgeYears,
			AgeMonths:     req.AgeMonths,
			LifeStage:     nutrition.ParseLifeStage(req.LifeStage),
			ActivityLevel: nutrition.ParseActivityLevel(req.ActivityLevel),
			BodyCondition: nutrition.ParseBodyCondition(req.BodyCondition),
			IsNeutered:    neutered,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		status := http.StatusOK
		if res.Created {
			status = http.StatusCreated
		}
		writeJSON(w, status, toSaveResponse(res))
	}
}

// getCatHandler godoc
// @Summary Obtener perfil
// @Tags cats
// @Produce json
// @Param name path string true "Nombre del gato"
// @Success 200 {object} CatResponse
// @Failure 404 {string} string "cat not found"
// @Router /cats/{name} [get]
func getCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToCatResponse(p))
	}
}

// updateCatHandler godoc
// @Summary Actualizar perfil
// @Description Actualización parcial. Recalcula RER/DER cuando cambian peso, edad, actividad, etapa o condición.
// @Tags cats
// @Accept json
// @Produce json
// @Param name path string true "Nombre del gato"
// @Param payload body updateCatRequest true "Campos a modificar"
// @Success 200 {object} saveCatResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{name} [patch]
func updateCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateCatRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Breed:      req.Breed,
			WeightKg:   req.WeightKg,
			AgeYears:   req.AgeYears,
			AgeMonths:  req.AgeMonths,
			IsNeutered: req.IsNeutered,
		}
		if req.LifeStage != nil {
			v := nutrition.ParseLifeStage(*req.LifeStage)
			in.LifeStage = &v
		}
		if req.ActivityLevel != nil {
			v := nutrition.ParseActivityLevel(*req.ActivityLevel)
			in.ActivityLevel = &v
		}
		if req.BodyCondition != nil {
			v := nutrition.ParseBodyCondition(*req.BodyCondition)
			in.BodyCondition = &v
		}

		res, err := svc.Update(r.Context(), chi.URLParam(r, "name"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSaveResponse(res))
	}
}

// deleteCatHandler godoc
// @Summary Borrar perfil
// @Description Por defecto las comidas del gato quedan en el plan (huérfanas). Con cascade=true también se borran.
// @Tags cats
// @Produce json
// @Param name path string true "Nombre del gato"
// @Param cascade query bool false "Borrar también sus comidas"
// @Success 200 {object} deleteCatResponse
// @Failure 404 {string} string "cat not found"
// @Router /cats/{name} [delete]
func deleteCatHandler(svc *Service, meals MealCleaner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Delete(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}

		removed := 0
		cascade, _ := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("cascade")))
		if cascade && meals != nil {
			removed, err = meals.RemoveForCat(r.Context(), p.Name)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		writeJSON(w, http.StatusOK, deleteCatResponse{Cat: ToCatResponse(p), MealsRemoved: removed})
	}
}

// deleteCatAtHandler godoc
// @Summary Borrar perfil por posición
// @Description No toca las comidas del gato.
// @Tags cats
// @Produce json
// @Param index path int true "Posición (0-based)"
// @Success 200 {object} deleteCatResponse
// @Failure 400 {string} string "index must be an integer"
// @Failure 404 {string} string "index out of range"
// @Router /cats/index/{index} [delete]
func deleteCatAtHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idx, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, "index must be an integer", http.StatusBadRequest)
			return
		}

		p, err := svc.DeleteAt(r.Context(), idx)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deleteCatResponse{Cat: ToCatResponse(p)})
	}
}

// ToCatResponse se exporta para que schedule arme el dashboard con el mismo shape.
func ToCatResponse(p CatProfile) CatResponse {
	return CatResponse{
		Name:           p.Name,
		Breed:          p.Breed,
		WeightKg:       p.WeightKg,
		WeightLbs:      nutrition.KgToLbs(p.WeightKg),
		AgeYears:       p.AgeYears,
		AgeMonths:      p.AgeMonths,
		TotalAgeMonths: p.TotalAgeMonths(),
		AgeDisplay:     nutrition.FormatAge(p.AgeYears, p.AgeMonths),
		LifeStage:      p.LifeStage,
		ActivityLevel:  p.ActivityLevel,
		BodyCondition:  p.BodyCondition,
		IsNeutered:     p.IsNeutered,
		RestingEnergy:  p.RestingEnergy,
		DailyEnergy:    p.DailyEnergy,
		CreatedAt:      p.CreatedAt,
	}
}

func toSaveResponse(res SaveResult) saveCatResponse {
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return saveCatResponse{
		Cat:      ToCatResponse(res.Profile),
		Created:  res.Created,
		Warnings: warnings,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "cat not found", http.StatusNotFound)
	case errors.Is(err, ErrOutOfRange):
		http.Error(w, "cat index out of range", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package foods

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cat-feeding-tracker/internal/nutrition"
	"cat-feeding-tracker/internal/ports/foodfacts"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/foods", func(fr chi.Router) {
		fr.Get("/", listFoodsHandler(svc))
		fr.Post("/", addFoodHandler(svc))

		fr.Get("/lookup", lookupHandler(svc))
		fr.Post("/lookup/import", importHandler(svc))

		fr.Get("/{type}/find", findFoodHandler(svc))
	})
}

type foodResponse struct {
	Brand           string  `json:"brand"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
}

type catalogResponse struct {
	Dry []foodResponse `json:"dry"`
	Wet []foodResponse `json:"wet"`
}

type addFoodRequest struct {
	FoodType        string  `json:"food_type" enums:"dry,wet"`
	Brand           string  `json:"brand"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
}

type addFoodResponse struct {
	FoodType nutrition.FoodType `json:"food_type"`
	Food     foodResponse       `json:"food"`
	Warnings []string           `json:"warnings"`
}

type lookupResponse struct {
	Brand           string   `json:"brand"`
	ProductName     string   `json:"product_name"`
	Categories      string   `json:"categories"`
	CaloriesPer100g *float64 `json:"calories_per_100g"`
	SourceURL       string   `json:"source_url"`
}

type importRequest struct {
	Query    string `json:"query"`
	FoodType string `json:"food_type" enums:"dry,wet"`
}

type importResponse struct {
	Lookup lookupResponse  `json:"lookup"`
	Added  addFoodResponse `json:"added"`
}

// listFoodsHandler godoc
// @Summary Listar catálogo
// @Description Sin `type` devuelve ambas listas; con `type` solo esa secuencia, en orden de presentación.
// @Tags foods
// @Produce json
// @Param type query string false "dry | wet"
// @Success 200 {object} catalogResponse
// @Failure 400 {string} string "unknown food_type"
// @Router /foods [get]
func listFoodsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if t := strings.TrimSpace(r.URL.Query().Get("type")); t != "" {
			items, err := svc.List(r.Context(), nutrition.ParseFoodType(t))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toFoodResponses(items))
			return
		}

		c, err := svc.Catalog(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, catalogResponse{
			Dry: toFoodResponses(c.Entries(nutrition.FoodDry)),
			Wet: toFoodResponses(c.Entries(nutrition.FoodWet)),
		})
	}
}

// addFoodHandler godoc
// @Summary Agregar alimento
// @Description Agrega al final del catálogo. kcal fuera del rango típico (dry 300-500, wet 60-150) devuelve avisos pero se guarda igual.
// @Tags foods
// @Accept json
// @Produce json
// @Param payload body addFoodRequest true "Alimento"
// @Success 201 {object} addFoodResponse
// @Failure 400 {string} string "invalid json / validación"
// @Router /foods [post]
func addFoodHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addFoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Add(r.Context(), AddInput{
			Type:            nutrition.ParseFoodType(req.FoodType),
			Brand:           req.Brand,
			CaloriesPer100g: req.CaloriesPer100g,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAddResponse(res))
	}
}

// findFoodHandler godoc
// @Summary Buscar alimento por brand
// @Description Devuelve la primera entrada con ese brand exacto.
// @Tags foods
// @Produce json
// @Param type path string true "dry | wet"
// @Param brand query string true "Brand exacto"
// @Success 200 {object} foodResponse
// @Failure 400 {string} string "unknown food_type"
// @Failure 404 {string} string "food not found"
// @Router /foods/{type}/find [get]
func findFoodHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := nutrition.ParseFoodType(chi.URLParam(r, "type"))
		if !t.Valid() {
			http.Error(w, "unknown food_type", http.StatusBadRequest)
			return
		}

		e, err := svc.Find(r.Context(), t, r.URL.Query().Get("brand"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFoodResponse(e))
	}
}

// lookupHandler godoc
// @Summary Buscar en Open Pet Food Facts
// @Description Prefiere productos de gato. Si el servicio externo falla o el producto no tiene kcal responde 404.
// @Tags foods
// @Produce json
// @Param q query string true "Texto a buscar"
// @Success 200 {object} lookupResponse
// @Failure 400 {string} string "search term is required"
// @Failure 404 {string} string "no cat food results found with calorie information"
// @Router /foods/lookup [get]
func lookupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Lookup(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toLookupResponse(rec))
	}
}

// importHandler godoc
// @Summary Buscar y agregar al catálogo
// @Tags foods
// @Accept json
// @Produce json
// @Param payload body importRequest true "Búsqueda y tipo"
// @Success 201 {object} importResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "no cat food results found with calorie information"
// @Router /foods/lookup/import [post]
func importHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, rec, err := svc.ImportFromLookup(r.Context(), req.Query, nutrition.ParseFoodType(req.FoodType))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, importResponse{
			Lookup: toLookupResponse(rec),
			Added:  toAddResponse(res),
		})
	}
}

func toFoodResponse(e FoodEntry) foodResponse {
	return foodResponse{Brand: e.Brand, CaloriesPer100g: e.CaloriesPer100g}
}

func toFoodResponses(items []FoodEntry) []foodResponse {
	out := make([]foodResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toFoodResponse(e))
	}
	return out
}

func toAddResponse(res AddResult) addFoodResponse {
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return addFoodResponse{
		FoodType: res.Type,
		Food:     toFoodResponse(res.Entry),
		Warnings: warnings,
	}
}

func toLookupResponse(rec foodfacts.Record) lookupResponse {
	return lookupResponse{
		Brand:           rec.Brand,
		ProductName:     rec.ProductName,
		Categories:      rec.Categories,
		CaloriesPer100g: rec.CaloriesPer100g,
		SourceURL:       rec.SourceURL,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "food not found", http.StatusNotFound)
	case errors.Is(err, ErrNoLookupResult):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

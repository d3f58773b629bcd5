package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cat-feeding-tracker/internal/ports/foodfacts"
	"cat-feeding-tracker/internal/router"

	"github.com/go-chi/chi/v5"
)

type stubLookup struct{}

func (stubLookup) Lookup(ctx context.Context, query string) (foodfacts.Record, bool) {
	if query != "salmon" {
		return foodfacts.Record{}, false
	}
	kcal := 96.0
	return foodfacts.Record{
		Brand:           "Acme",
		ProductName:     "Salmon Cat Pate",
		Categories:      "Cat food",
		CaloriesPer100g: &kcal,
		SourceURL:       "https://world.openpetfoodfacts.org/product/222",
	}, true
}

func TestHTTP_EndToEnd_ScheduleFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Lookup: stubLookup{}}))
	defer ts.Close()

	// 1) Crear perfil
	{
		st, body := doReq(t, ts.URL, "POST", "/cats", map[string]any{
			"name":           "Milo",
			"breed":          "Tabby",
			"weight_kg":      4.5,
			"age_years":      3,
			"activity_level": "moderate",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create cat, got %d body=%s", st, string(body))
		}
		var out struct {
			Cat struct {
				LifeStage   string  `json:"life_stage"`
				DailyEnergy float64 `json:"daily_energy"`
			} `json:"cat"`
			Created bool `json:"created"`
		}
		mustJSON(t, body, &out)
		if !out.Created || out.Cat.LifeStage != "adult" || math.Abs(out.Cat.DailyEnergy-302.79) > 0.01 {
			t.Fatalf("unexpected cat %+v", out)
		}
	}

	// 2) Reemplazar por nombre: 200 y la lista sigue con 1
	{
		st, body := doReq(t, ts.URL, "POST", "/cats", map[string]any{
			"name":           "Milo",
			"weight_kg":      4.5,
			"age_years":      3,
			"activity_level": "moderate",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 replace cat, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/cats", nil)
		var list []map[string]any
		mustJSON(t, body, &list)
		if st != http.StatusOK || len(list) != 1 {
			t.Fatalf("expected 1 cat, got %d (status %d)", len(list), st)
		}
	}

	// 3) Dos comidas, 50% cada una
	var mealID string
	{
		st, body := doReq(t, ts.URL, "POST", "/cats/Milo/meals", map[string]any{
			"time":                "18:00",
			"food_type":           "wet",
			"brand":               "Fancy Feast Classic Pate Chicken",
			"percentage_of_daily": 50,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add meal, got %d body=%s", st, string(body))
		}
		var m struct {
			ID string `json:"id"`
		}
		mustJSON(t, body, &m)
		mealID = m.ID

		st, body = doReq(t, ts.URL, "POST", "/cats/Milo/meals", map[string]any{
			"time":                "08:00",
			"food_type":           "dry",
			"brand":               "Royal Canin Indoor Adult",
			"percentage_of_daily": 50,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add meal, got %d body=%s", st, string(body))
		}
	}

	// 4) Comida inválida
	{
		st, _ := doReq(t, ts.URL, "POST", "/cats/Milo/meals", map[string]any{
			"time": "8:00", "food_type": "dry", "brand": "Royal Canin Indoor Adult", "percentage_of_daily": 10,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unpadded time, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/cats/Ghost/meals", map[string]any{
			"time": "08:00", "food_type": "dry", "brand": "Royal Canin Indoor Adult", "percentage_of_daily": 10,
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown cat, got %d", st)
		}
	}

	// 5) Dashboard balanceado y ordenado por hora
	{
		st, body := doReq(t, ts.URL, "GET", "/cats/Milo/dashboard", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
		}
		var d struct {
			Status string `json:"status"`
			Meals  []struct {
				Time string `json:"time"`
			} `json:"meals"`
			Totals struct {
				MealCount int `json:"meal_count"`
			} `json:"totals"`
		}
		mustJSON(t, body, &d)
		if d.Status != "balanced" || d.Totals.MealCount != 2 || d.Meals[0].Time != "08:00" {
			t.Fatalf("unexpected dashboard %+v", d)
		}
	}

	// 6) Borrar una comida
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/meals/"+mealID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 remove meal, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/meals/"+mealID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 on second remove, got %d", st)
		}
	}

	// 7) Borrar el gato sin cascade deja huérfanas
	{
		st, body := doReq(t, ts.URL, "DELETE", "/cats/Milo", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete cat, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/meals/orphans", nil)
		var orphans []map[string]any
		mustJSON(t, body, &orphans)
		if st != http.StatusOK || len(orphans) != 1 {
			t.Fatalf("expected 1 orphan meal, got %d", len(orphans))
		}
		st, _ = doReq(t, ts.URL, "GET", "/cats/Milo", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_EndToEnd_CascadeAndIndexDelete(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, name := range []string{"Luna", "Tom"} {
		st, body := doReq(t, ts.URL, "POST", "/cats", map[string]any{"name": name, "weight_kg": 4, "age_years": 2})
		if st != http.StatusCreated {
			t.Fatalf("create %s: %d %s", name, st, string(body))
		}
	}
	st, _ := doReq(t, ts.URL, "POST", "/cats/Luna/meals", map[string]any{
		"time": "07:30", "food_type": "dry", "brand": "Royal Canin Kitten", "percentage_of_daily": 30,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 add meal, got %d", st)
	}

	st, body := doReq(t, ts.URL, "DELETE", "/cats/Luna?cascade=true", nil)
	var del struct {
		MealsRemoved int `json:"meals_removed"`
	}
	mustJSON(t, body, &del)
	if st != http.StatusOK || del.MealsRemoved != 1 {
		t.Fatalf("expected cascade to remove 1 meal, got %d (status %d)", del.MealsRemoved, st)
	}

	st, body = doReq(t, ts.URL, "GET", "/meals/orphans", nil)
	var orphans []map[string]any
	mustJSON(t, body, &orphans)
	if st != http.StatusOK || len(orphans) != 0 {
		t.Fatalf("expected no orphans, got %d", len(orphans))
	}

	if st, _ := doReq(t, ts.URL, "DELETE", "/cats/index/5", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for out of range index, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "DELETE", "/cats/index/0", nil); st != http.StatusOK {
		t.Fatalf("expected 200 delete index 0, got %d", st)
	}
}

func TestHTTP_EndToEnd_FoodsAndLookup(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Lookup: stubLookup{}}))
	defer ts.Close()

	// Catálogo sembrado
	{
		st, body := doReq(t, ts.URL, "GET", "/foods", nil)
		var c struct {
			Dry []map[string]any `json:"dry"`
			Wet []map[string]any `json:"wet"`
		}
		mustJSON(t, body, &c)
		if st != http.StatusOK || len(c.Dry) != 30 || len(c.Wet) != 29 {
			t.Fatalf("unexpected seed sizes dry=%d wet=%d", len(c.Dry), len(c.Wet))
		}
	}

	// Alta manual con aviso
	{
		st, body := doReq(t, ts.URL, "POST", "/foods", map[string]any{
			"food_type": "dry", "brand": "Light Kibble", "calories_per_100g": 250,
		})
		var out struct {
			Warnings []string `json:"warnings"`
		}
		mustJSON(t, body, &out)
		if st != http.StatusCreated || len(out.Warnings) != 1 {
			t.Fatalf("expected 201 with warning, got %d %+v", st, out)
		}
		st, _ = doReq(t, ts.URL, "POST", "/foods", map[string]any{"food_type": "dry", "brand": "", "calories_per_100g": 250})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for empty brand, got %d", st)
		}
	}

	// Búsqueda externa
	{
		st, body := doReq(t, ts.URL, "GET", "/foods/lookup?q=salmon", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 lookup, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/foods/lookup?q=nothing", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 lookup miss, got %d", st)
		}
	}

	// Import y búsqueda por brand
	{
		st, body := doReq(t, ts.URL, "POST", "/foods/lookup/import", map[string]any{"query": "salmon", "food_type": "wet"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 import, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/foods/wet/find?brand="+url.QueryEscape("Acme - Salmon Cat Pate"), nil)
		var f struct {
			CaloriesPer100g float64 `json:"calories_per_100g"`
		}
		mustJSON(t, body, &f)
		if st != http.StatusOK || f.CaloriesPer100g != 96 {
			t.Fatalf("expected imported food, got %d %+v", st, f)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health %d %q", st, string(body))
	}
}

// -------------------------
// Helpers
// -------------------------

func mustJSON(t *testing.T, body []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func TestSwaggerDocCoversEveryRoute(t *testing.T) {
	h := router.NewRouter(router.Options{})
	ts := httptest.NewServer(h)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/swagger/doc.json")
	if err != nil {
		t.Fatalf("get doc: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for doc.json, got %d", resp.StatusCode)
	}

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode doc: %v", err)
	}

	routes, ok := h.(chi.Routes)
	if !ok {
		t.Fatalf("router is not a chi.Routes")
	}
	walk := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/swagger/") {
			return nil
		}
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		if _, ok := doc.Paths[route][strings.ToLower(method)]; !ok {
			t.Errorf("route %s %s missing from swagger doc", method, route)
		}
		return nil
	}
	if err := chi.Walk(routes, walk); err != nil {
		t.Fatalf("walk: %v", err)
	}
}

package foods

import (
	"context"
	"errors"
	"testing"

	"cat-feeding-tracker/internal/nutrition"
	"cat-feeding-tracker/internal/ports/foodfacts"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	c Catalog
}

func (r *testRepo) Snapshot(ctx context.Context) (Catalog, error) { return r.c, nil }

func (r *testRepo) Append(ctx context.Context, t nutrition.FoodType, e FoodEntry) (Catalog, error) {
	next, err := r.c.Add(t, e.Brand, e.CaloriesPer100g)
	if err != nil {
		return r.c, err
	}
	r.c = next
	return next, nil
}

type stubLookup struct {
	rec     foodfacts.Record
	ok      bool
	queries []string
}

func (s *stubLookup) Lookup(ctx context.Context, query string) (foodfacts.Record, bool) {
	s.queries = append(s.queries, query)
	return s.rec, s.ok
}

func kcal(v float64) *float64 { return &v }

func newTestService(l foodfacts.Lookuper) (*Service, *testRepo) {
	repo := &testRepo{c: Seed()}
	return NewService(repo, l, nil), repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Add_Validation(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	cases := []AddInput{
		{Type: nutrition.FoodDry, Brand: "  ", CaloriesPer100g: 380},
		{Type: nutrition.FoodDry, Brand: "X", CaloriesPer100g: 0},
		{Type: nutrition.FoodType("raw"), Brand: "X", CaloriesPer100g: 100},
	}
	for _, in := range cases {
		if _, err := svc.Add(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestService_Add_SoftWarningStillSaves(t *testing.T) {
	svc, repo := newTestService(nil)
	ctx := context.Background()

	res, err := svc.Add(ctx, AddInput{Type: nutrition.FoodWet, Brand: "Dense Pate", CaloriesPer100g: 200})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", res.Warnings)
	}
	if repo.c.Len(nutrition.FoodWet) != 30 {
		t.Fatalf("expected entry appended, got %d wet", repo.c.Len(nutrition.FoodWet))
	}

	res, err = svc.Add(ctx, AddInput{Type: nutrition.FoodDry, Brand: "Normal", CaloriesPer100g: 380})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", res.Warnings)
	}
}

func TestService_Find(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	e, err := svc.Find(ctx, nutrition.FoodDry, "Royal Canin Kitten")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if e.CaloriesPer100g != 400 {
		t.Fatalf("expected 400 kcal, got %v", e.CaloriesPer100g)
	}

	if _, err := svc.Find(ctx, nutrition.FoodDry, "Nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Lookup(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService(nil)
	if _, err := svc.Lookup(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty query, got %v", err)
	}
	if _, err := svc.Lookup(ctx, "salmon"); !errors.Is(err, ErrNoLookupResult) {
		t.Fatalf("disabled lookup should yield ErrNoLookupResult, got %v", err)
	}

	// Registro sin kcal cuenta como ausente.
	svc, _ = newTestService(&stubLookup{ok: true, rec: foodfacts.Record{Brand: "Acme"}})
	if _, err := svc.Lookup(ctx, "salmon"); !errors.Is(err, ErrNoLookupResult) {
		t.Fatalf("expected ErrNoLookupResult for calorie-less record, got %v", err)
	}

	// 0 kcal también.
	svc, repo := newTestService(&stubLookup{ok: true, rec: foodfacts.Record{Brand: "Acme", CaloriesPer100g: kcal(0)}})
	if _, err := svc.Lookup(ctx, "salmon"); !errors.Is(err, ErrNoLookupResult) {
		t.Fatalf("expected ErrNoLookupResult for zero-calorie record, got %v", err)
	}
	before := repo.c.Len(nutrition.FoodWet)
	if _, _, err := svc.ImportFromLookup(ctx, "salmon", nutrition.FoodWet); !errors.Is(err, ErrNoLookupResult) {
		t.Fatalf("expected ErrNoLookupResult on import, got %v", err)
	}
	if repo.c.Len(nutrition.FoodWet) != before {
		t.Fatalf("catalog must not change")
	}
}

func TestService_ImportFromLookup(t *testing.T) {
	ctx := context.Background()
	stub := &stubLookup{ok: true, rec: foodfacts.Record{
		Brand:           "Acme",
		ProductName:     "Salmon Cat Pate",
		CaloriesPer100g: kcal(96),
	}}
	svc, repo := newTestService(stub)

	res, rec, err := svc.ImportFromLookup(ctx, " salmon ", nutrition.FoodWet)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if rec.Brand != "Acme" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if res.Entry.Brand != "Acme - Salmon Cat Pate" || res.Entry.CaloriesPer100g != 96 {
		t.Fatalf("unexpected entry %+v", res.Entry)
	}
	if _, ok := repo.c.Find(nutrition.FoodWet, "Acme - Salmon Cat Pate"); !ok {
		t.Fatalf("expected imported entry in catalog")
	}
	if len(stub.queries) != 1 || stub.queries[0] != "salmon" {
		t.Fatalf("expected trimmed query, got %v", stub.queries)
	}
}

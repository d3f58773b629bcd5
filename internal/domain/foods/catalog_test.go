package foods

import (
	"testing"

	"cat-feeding-tracker/internal/nutrition"
)

func TestSeed_Counts(t *testing.T) {
	c := Seed()

	if got := c.Len(nutrition.FoodDry); got != 30 {
		t.Fatalf("expected 30 dry entries, got %d", got)
	}
	if got := c.Len(nutrition.FoodWet); got != 29 {
		t.Fatalf("expected 29 wet entries, got %d", got)
	}

	first := c.Entries(nutrition.FoodDry)[0]
	if first.Brand != "Royal Canin Indoor Adult" || first.CaloriesPer100g != 375 {
		t.Fatalf("unexpected first dry entry: %+v", first)
	}
}

func TestCatalog_AddIsCopyOnWrite(t *testing.T) {
	base := Seed()

	next, err := base.Add(nutrition.FoodDry, "House Kibble", 380)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if base.Len(nutrition.FoodDry) != 30 {
		t.Fatalf("receiver modified: %d dry entries", base.Len(nutrition.FoodDry))
	}
	if next.Len(nutrition.FoodDry) != 31 {
		t.Fatalf("expected 31 dry entries, got %d", next.Len(nutrition.FoodDry))
	}
	if next.Len(nutrition.FoodWet) != 29 {
		t.Fatalf("wet sequence should be untouched, got %d", next.Len(nutrition.FoodWet))
	}

	entries := next.Entries(nutrition.FoodDry)
	if last := entries[len(entries)-1]; last.Brand != "House Kibble" {
		t.Fatalf("expected append at the end, got %+v", last)
	}

	// Dos Add sobre el mismo snapshot no se pisan.
	a, _ := base.Add(nutrition.FoodWet, "A", 80)
	b, _ := base.Add(nutrition.FoodWet, "B", 90)
	if _, ok := a.Find(nutrition.FoodWet, "B"); ok {
		t.Fatalf("snapshot a must not see b's entry")
	}
	if _, ok := b.Find(nutrition.FoodWet, "A"); ok {
		t.Fatalf("snapshot b must not see a's entry")
	}
}

func TestCatalog_AddRejectsUnknownType(t *testing.T) {
	if _, err := Seed().Add(nutrition.FoodType("raw"), "X", 100); err == nil {
		t.Fatalf("expected error for unknown food type")
	}
}

func TestCatalog_FindFirstMatchWins(t *testing.T) {
	c := Seed()
	c, _ = c.Add(nutrition.FoodDry, "Dup", 300)
	c, _ = c.Add(nutrition.FoodDry, "Dup", 450)

	e, ok := c.Find(nutrition.FoodDry, "Dup")
	if !ok {
		t.Fatalf("expected Dup to be found")
	}
	if e.CaloriesPer100g != 300 {
		t.Fatalf("expected first match (300), got %v", e.CaloriesPer100g)
	}

	if _, ok := c.Find(nutrition.FoodWet, "Dup"); ok {
		t.Fatalf("find must not cross food types")
	}
	if _, ok := c.Find(nutrition.FoodDry, "dup"); ok {
		t.Fatalf("find is exact match")
	}
}

func TestCatalog_EntriesReturnsCopy(t *testing.T) {
	c := Seed()
	items := c.Entries(nutrition.FoodWet)
	items[0].Brand = "changed"

	if c.Entries(nutrition.FoodWet)[0].Brand == "changed" {
		t.Fatalf("Entries must return a copy")
	}
}

func TestLoadSeed_RejectsMissingCalories(t *testing.T) {
	_, err := LoadSeed([]byte("dry:\n  - { brand: \"X\" }\n"))
	if err == nil {
		t.Fatalf("expected error for entry without calories")
	}
}

package foodfacts

import (
	"context"
	"strings"
)

// Record es el producto normalizado que devuelve un catálogo externo.
type Record struct {
	Brand           string
	ProductName     string
	Categories      string
	CaloriesPer100g *float64 // nil si el producto no trae kcal
	SourceURL       string
}

// DisplayName es el nombre con el que se agrega al catálogo local.
func (r Record) DisplayName() string {
	brand := strings.TrimSpace(r.Brand)
	product := strings.TrimSpace(r.ProductName)
	switch {
	case brand == "":
		return product
	case product == "":
		return brand
	}
	return brand + " - " + product
}

// Lookuper busca un producto por texto libre. Nunca devuelve error:
// timeouts, fallas de red o productos sin kcal se reportan como ok=false.
type Lookuper interface {
	Lookup(ctx context.Context, query string) (Record, bool)
}

// Disabled se usa cuando la búsqueda externa está apagada por config.
type Disabled struct{}

func (Disabled) Lookup(context.Context, string) (Record, bool) {
	return Record{}, false
}

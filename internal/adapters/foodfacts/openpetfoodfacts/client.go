package openpetfoodfacts

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cat-feeding-tracker/internal/platform/httpclient"
	"cat-feeding-tracker/internal/platform/logger"
	"cat-feeding-tracker/internal/ports/foodfacts"
)

const (
	DefaultBaseURL   = "https://world.openpetfoodfacts.org"
	DefaultTimeout   = 5 * time.Second
	DefaultUserAgent = "cat-feeding-tracker/1.0"

	searchPath = "/cgi/search.pl"
	pageSize   = 20
	unknown    = "Unknown"
)

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    logger.Logger
}

// Client busca productos en Open Pet Food Facts. Implementa foodfacts.Lookuper.
type Client struct {
	http *httpclient.Client
	log  logger.Logger
}

var _ foodfacts.Lookuper = (*Client)(nil)

func New(opts Options) (*Client, error) {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc, err := httpclient.New(base, timeout)
	if err != nil {
		return nil, err
	}
	hc.UserAgent = strings.TrimSpace(opts.UserAgent)
	if hc.UserAgent == "" {
		hc.UserAgent = DefaultUserAgent
	}

	return &Client{
		http: hc,
		log:  logger.OrNop(opts.Logger).With(map[string]any{"adapter": "openpetfoodfacts"}),
	}, nil
}

type searchResponse struct {
	Count    int       `json:"count"`
	Products []product `json:"products"`
}

type product struct {
	Code        string         `json:"code"`
	ProductName *string        `json:"product_name"`
	Brands      *string        `json:"brands"`
	Categories  *string        `json:"categories"`
	Nutriments  map[string]any `json:"nutriments"`
}

// Lookup nunca devuelve error: cualquier falla se loguea y se reporta como
// ok=false.
func (c *Client) Lookup(ctx context.Context, query string) (foodfacts.Record, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return foodfacts.Record{}, false
	}

	q := url.Values{}
	q.Set("search_terms", query)
	q.Set("search_simple", "1")
	q.Set("json", "1")
	q.Set("page_size", strconv.Itoa(pageSize))

	var resp searchResponse
	if err := c.http.GetJSON(ctx, searchPath, q, &resp); err != nil {
		c.log.Warn("food lookup failed", map[string]any{"query": query, "error": err})
		return foodfacts.Record{}, false
	}
	if len(resp.Products) == 0 {
		c.log.Debug("food lookup without products", map[string]any{"query": query})
		return foodfacts.Record{}, false
	}

	p := pickProduct(resp.Products)
	rec := foodfacts.Record{
		Brand:       textOrUnknown(p.Brands),
		ProductName: textOrUnknown(p.ProductName),
		Categories:  textOrUnknown(p.Categories),
		SourceURL:   c.http.BaseURL + "/product/" + p.Code,
	}
	kcal, ok := parseFloatAny(p.Nutriments["energy-kcal_100g"])
	if !ok || kcal <= 0 {
		c.log.Debug("food lookup product without calories", map[string]any{"query": query, "code": p.Code})
		return foodfacts.Record{}, false
	}
	rec.CaloriesPer100g = &kcal
	return rec, true
}

// pickProduct prefiere productos de gato; si no hay, el primero.
func pickProduct(items []product) product {
	for _, p := range items {
		if containsCat(p.Categories) || containsCat(p.ProductName) {
			return p
		}
	}
	return items[0]
}

func containsCat(s *string) bool {
	return s != nil && strings.Contains(strings.ToLower(*s), "cat")
}

func textOrUnknown(s *string) string {
	if s == nil {
		return unknown
	}
	return *s
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

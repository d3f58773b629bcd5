package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "--help")
	if err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if out == "" {
		t.Fatalf("expected help output")
	}
}

func TestEnergyCommand(t *testing.T) {
	out, err := run(t, "energy", "--weight", "4.5", "--years", "3", "--activity", "moderate")
	if err != nil {
		t.Fatalf("energy: %v", err)
	}
	if !strings.Contains(out, "RER:        216 kcal/day") || !strings.Contains(out, "DER:        303 kcal/day (x1.4)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestServingCommand(t *testing.T) {
	out, err := run(t, "serving", "--kcal", "100", "--target", "113.5", "--type", "wet")
	if err != nil {
		t.Fatalf("serving: %v", err)
	}
	if !strings.Contains(out, "113.5 g\t0.50 cups (wet, 227 g/cup)") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "serving", "--kcal", "0", "--target", "50", "--type", "dry"); err == nil {
		t.Fatalf("expected error for zero kcal")
	}
}

func TestFoodsCommand(t *testing.T) {
	out, err := run(t, "foods", "--type", "wet")
	if err != nil {
		t.Fatalf("foods: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 30 { // header + 29
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
}

func TestLookupCommand(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": [{"code": "7", "brands": "Acme", "product_name": "Cat Chow", "categories": "Cat food", "nutriments": {"energy-kcal_100g": 380}}]}`))
	}))
	defer ts.Close()

	out, err := run(t, "lookup", "--base-url", ts.URL, "--json=false", "cat", "chow")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !strings.Contains(out, "Product:    Acme - Cat Chow") || !strings.Contains(out, "380 kcal/100g") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

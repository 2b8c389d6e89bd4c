package output

import (
	"math"
	"strings"
	"testing"

	"github.com/governos/roi-calculator/internal/config"
	"github.com/governos/roi-calculator/internal/engine"
)

func TestCsvString(t *testing.T) {
	result := engine.DerivedFinancials{
		Currency:  "USD",
		Cashflows: []float64{-46474.96, 43525.04},
		Cumulative: []engine.CumulativePoint{
			{Label: "Y1Q1", Value: -46475},
			{Label: "Y1Q2", Value: -2950},
		},
	}

	csv := CsvString(result)
	lines := strings.Split(strings.TrimSpace(csv), "\n")

	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, expected 3", len(lines))
	}
	if lines[0] != `"period","cashflow","cumulative"` {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `"Y1Q1","-46474.96","-46475.00"` {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != `"Y1Q2","43525.04","-2950.00"` {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestCsvStringFullProjection(t *testing.T) {
	result := engine.Derive(config.DefaultAssumptions())

	csv := CsvString(result)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != len(result.Cashflows)+1 {
		t.Errorf("len(lines) = %d, expected %d", len(lines), len(result.Cashflows)+1)
	}
}

func TestPaybackDisplay(t *testing.T) {
	tests := []struct {
		name     string
		summary  engine.Summary
		expected string
	}{
		{"Reached", engine.Summary{PaybackMonths: 9, PaybackReached: true}, "9 months"},
		{"Not reached", engine.Summary{PaybackMonths: 0, PaybackReached: false}, "not reached"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := payback(tt.summary); got != tt.expected {
				t.Errorf("payback() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestIRRDisplay(t *testing.T) {
	tests := []struct {
		name     string
		summary  engine.Summary
		expected string
	}{
		{"Converged", engine.Summary{IRR: 0.9359, IRRConverged: true}, "93.59%"},
		{"Not converged", engine.Summary{IRR: 0.5, IRRConverged: false}, "50.00% (not converged)"},
		{"NaN", engine.Summary{IRR: math.NaN()}, "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := irr(tt.summary); got != tt.expected {
				t.Errorf("irr() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestNonFiniteMetricsRenderAsNA(t *testing.T) {
	result := engine.DerivedFinancials{Currency: "USD"}

	if got := metric(result, math.Inf(1)); got != "n/a" {
		t.Errorf("metric(+Inf) = %q, expected n/a", got)
	}
	if got := metric(result, math.NaN()); got != "n/a" {
		t.Errorf("metric(NaN) = %q, expected n/a", got)
	}
	if got := percent(math.Inf(1)); got != "n/a" {
		t.Errorf("percent(+Inf) = %q, expected n/a", got)
	}
	if got := percent(60.041733); got != "60.0%" {
		t.Errorf("percent(60.04) = %q, expected 60.0%%", got)
	}
}

package validation

import (
	"strings"
	"testing"
)

func cleanView() AssumptionView {
	return AssumptionView{
		TotalFTE:           9,
		HorizonYears:       3,
		DiscountRate:       0.10,
		AnnualPlatformCost: 210000,
		OneTimeCost:        90000,
		MonetaryFields: map[string]float64{
			"pricing.annualLicense": 180000,
		},
		LeverFractions: map[string]float64{
			"valueLevers.ticketDeflection": 0.30,
		},
	}
}

func TestValidateAssumptionsClean(t *testing.T) {
	if warnings := ValidateAssumptions(cleanView()); len(warnings) != 0 {
		t.Errorf("clean view produced warnings: %v", warnings)
	}
}

func TestValidateAssumptionsWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*AssumptionView)
		expected string
	}{
		{
			"Negative monetary field",
			func(v *AssumptionView) { v.MonetaryFields["pricing.annualLicense"] = -1 },
			"pricing.annualLicense",
		},
		{
			"Lever above one",
			func(v *AssumptionView) { v.LeverFractions["valueLevers.ticketDeflection"] = 1.2 },
			"outside [0, 1]",
		},
		{
			"Negative lever",
			func(v *AssumptionView) { v.LeverFractions["valueLevers.ticketDeflection"] = -0.1 },
			"outside [0, 1]",
		},
		{
			"Zero FTE",
			func(v *AssumptionView) { v.TotalFTE = 0 },
			"blended hourly rate is undefined",
		},
		{
			"Zero platform cost",
			func(v *AssumptionView) { v.AnnualPlatformCost = 0; v.OneTimeCost = 0 },
			"ROI percentage is undefined",
		},
		{
			"Zero horizon",
			func(v *AssumptionView) { v.HorizonYears = 0 },
			"projection will be empty",
		},
		{
			"Excessive horizon",
			func(v *AssumptionView) { v.HorizonYears = 25 },
			"exceeds the expected maximum",
		},
		{
			"Negative discount rate",
			func(v *AssumptionView) { v.DiscountRate = -0.05 },
			"Discount rate is negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := cleanView()
			tt.mutate(&view)

			warnings := ValidateAssumptions(view)
			if len(warnings) != 1 {
				t.Fatalf("len(warnings) = %d (%v), expected 1", len(warnings), warnings)
			}
			if !strings.Contains(warnings[0], tt.expected) {
				t.Errorf("warning %q does not mention %q", warnings[0], tt.expected)
			}
		})
	}
}

func TestValidateAssumptionsDeterministicOrder(t *testing.T) {
	view := cleanView()
	view.MonetaryFields["a.first"] = -1
	view.MonetaryFields["z.last"] = -2

	first := ValidateAssumptions(view)
	second := ValidateAssumptions(view)

	if len(first) != 2 {
		t.Fatalf("len(warnings) = %d, expected 2", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("warning order unstable at index %d: %q vs %q", i, first[i], second[i])
		}
	}
	if !strings.Contains(first[0], "a.first") {
		t.Errorf("warnings not sorted by field name: %v", first)
	}
}

package validation

import (
	"fmt"
	"sort"

	"github.com/governos/roi-calculator/pkg/constants"
)

// AssumptionView is the subset of the assumption record the validator
// inspects, flattened so this package stays decoupled from the config
// structs.
type AssumptionView struct {
	TotalFTE           float64
	HorizonYears       int
	DiscountRate       float64
	AnnualPlatformCost float64
	OneTimeCost        float64
	MonetaryFields     map[string]float64
	LeverFractions     map[string]float64
}

// ValidateAssumptions returns human-readable warnings for implausible
// inputs. Warnings never block computation: the engine propagates
// degenerate values arithmetically, and these messages exist so the
// resulting NaN/Inf figures are explainable.
func ValidateAssumptions(view AssumptionView) []string {
	var warnings []string

	for _, name := range sortedKeys(view.MonetaryFields) {
		if view.MonetaryFields[name] < 0 {
			warnings = append(warnings, fmt.Sprintf(
				"Field '%s' is negative (%.2f) - results will reflect it arithmetically", name, view.MonetaryFields[name]))
		}
	}

	for _, name := range sortedKeys(view.LeverFractions) {
		value := view.LeverFractions[name]
		if value < 0 || value > 1 {
			warnings = append(warnings, fmt.Sprintf(
				"Lever '%s' is outside [0, 1] (%.2f)", name, value))
		}
	}

	if view.TotalFTE == 0 {
		warnings = append(warnings, "Total FTE count is zero - blended hourly rate is undefined and labor-driven figures will be non-finite")
	}

	if view.AnnualPlatformCost == 0 && view.OneTimeCost == 0 {
		warnings = append(warnings, "Platform cost inputs are all zero - ROI percentage is undefined")
	}

	if view.HorizonYears == 0 {
		warnings = append(warnings, "Horizon is zero years - projection will be empty and payback unreachable")
	} else if view.HorizonYears > constants.MaxReasonableHorizonYears {
		warnings = append(warnings, fmt.Sprintf(
			"Horizon of %d years exceeds the expected maximum of %d", view.HorizonYears, constants.MaxReasonableHorizonYears))
	}

	if view.DiscountRate < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Discount rate is negative (%.4f)", view.DiscountRate))
	}

	return warnings
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

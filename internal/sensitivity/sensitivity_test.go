package sensitivity

import (
	"math"
	"testing"

	"github.com/governos/roi-calculator/internal/config"
	"github.com/governos/roi-calculator/internal/engine"
	"github.com/governos/roi-calculator/pkg/testutil"
)

func TestRunRowOrderMatchesBenefitBars(t *testing.T) {
	results := NewRunner(nil, config.DefaultAssumptions()).Run()

	if len(results) != len(engine.BenefitLabels) {
		t.Fatalf("len(results) = %d, expected %d", len(results), len(engine.BenefitLabels))
	}
	for i, result := range results {
		if result.Driver != engine.BenefitLabels[i] {
			t.Errorf("results[%d].Driver = %q, expected %q", i, result.Driver, engine.BenefitLabels[i])
		}
	}
}

func TestRunBaseNPVMatchesEngine(t *testing.T) {
	assumptions := config.DefaultAssumptions()
	expected := engine.Derive(assumptions).Summary.NPV

	for _, result := range NewRunner(nil, assumptions).Run() {
		if result.BaseNPV != expected {
			t.Errorf("BaseNPV for %q = %v, expected %v", result.Driver, result.BaseNPV, expected)
		}
	}
}

func TestRunRangesAreOrderedAndNonNegative(t *testing.T) {
	for _, result := range NewRunner(nil, config.DefaultAssumptions()).Run() {
		if result.LowNPV > result.HighNPV {
			t.Errorf("driver %q: LowNPV %v > HighNPV %v", result.Driver, result.LowNPV, result.HighNPV)
		}
		if result.Range < 0 {
			t.Errorf("driver %q: negative range %v", result.Driver, result.Range)
		}
		if math.Abs(result.Range-(result.HighNPV-result.LowNPV)) > 1e-9 {
			t.Errorf("driver %q: Range %v inconsistent with bounds", result.Driver, result.Range)
		}
	}
}

func TestRunZeroedLeverHasZeroRange(t *testing.T) {
	// Perturbing a zero-valued driver multiplicatively cannot move NPV.
	assumptions := testutil.ZeroLevers(config.DefaultAssumptions())
	assumptions.RiskCompliance.NonComplianceImpact = 0

	for _, result := range NewRunner(nil, assumptions).Run() {
		if result.Range != 0 {
			t.Errorf("driver %q: Range = %v, expected 0 for zeroed levers", result.Driver, result.Range)
		}
	}
}

func TestRunDoesNotMutateBaseline(t *testing.T) {
	assumptions := config.DefaultAssumptions()
	runner := NewRunner(nil, assumptions)

	before := engine.Derive(assumptions).Summary.NPV
	runner.Run()
	runner.Run()
	after := engine.Derive(runner.assumptions).Summary.NPV

	if before != after {
		t.Errorf("baseline NPV changed across runs: %v -> %v", before, after)
	}
}

func TestRunValueUpliftRangeIsSymmetric(t *testing.T) {
	// NPV is linear in the uplift lever, so a +/-15% shift must produce a
	// symmetric span around the base.
	results := NewRunner(nil, config.DefaultAssumptions()).Run()
	uplift := results[7]

	lowDelta := uplift.BaseNPV - uplift.LowNPV
	highDelta := uplift.HighNPV - uplift.BaseNPV
	if math.Abs(lowDelta-highDelta) > 1e-6 {
		t.Errorf("uplift span not symmetric: low delta %v, high delta %v", lowDelta, highDelta)
	}
}

// Package sensitivity re-evaluates the projection once per driver with
// that driver perturbed and all others held at baseline. Unlike the
// engine's tornado table, which is a fixed-spread display approximation,
// these rows are true one-parameter-at-a-time NPV deltas.
package sensitivity

import (
	"math"

	"github.com/governos/roi-calculator/internal/config"
	"github.com/governos/roi-calculator/internal/engine"
	"go.uber.org/zap"
)

// PerturbationFraction is the relative shift applied to each driver in
// both directions.
const PerturbationFraction = 0.15

// DriverResult holds the NPV range observed when one driver moves by
// +/- PerturbationFraction of its base value.
type DriverResult struct {
	Driver  string  `json:"driver"`
	BaseNPV float64 `json:"baseNpv"`
	LowNPV  float64 `json:"lowNpv"`
	HighNPV float64 `json:"highNpv"`
	Range   float64 `json:"range"`
}

type driver struct {
	name  string
	apply func(*config.Assumptions, float64)
}

// drivers mirrors the engine's benefit-bar ordering so the two tables line
// up row for row in the UI.
var drivers = []driver{
	{engine.BenefitLabels[0], func(a *config.Assumptions, f float64) { a.ValueLevers.TicketDeflection *= f }},
	{engine.BenefitLabels[1], func(a *config.Assumptions, f float64) { a.ValueLevers.OnboardingReduction *= f }},
	{engine.BenefitLabels[2], func(a *config.Assumptions, f float64) { a.ValueLevers.AuditInternalReduction *= f }},
	{engine.BenefitLabels[3], func(a *config.Assumptions, f float64) { a.ValueLevers.AuditExternalReduction *= f }},
	{engine.BenefitLabels[4], func(a *config.Assumptions, f float64) { a.ValueLevers.IncidentMTTRReduction *= f }},
	{engine.BenefitLabels[5], func(a *config.Assumptions, f float64) { a.ValueLevers.ToolsRetired *= f }},
	{engine.BenefitLabels[6], func(a *config.Assumptions, f float64) { a.RiskCompliance.NonComplianceImpact *= f }},
	{engine.BenefitLabels[7], func(a *config.Assumptions, f float64) { a.ValueLevers.ValueUplift *= f }},
}

// Runner sweeps the drivers against a fixed baseline assumption record.
type Runner struct {
	logger      *zap.Logger
	assumptions config.Assumptions
}

// NewRunner constructs a Runner. A nil logger is replaced with a no-op
// logger to prevent panics.
func NewRunner(logger *zap.Logger, assumptions config.Assumptions) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, assumptions: assumptions}
}

// Run evaluates every driver and returns results in benefit-bar order.
// The assumption record is copied per evaluation; the baseline is never
// mutated.
func (r *Runner) Run() []DriverResult {
	base := engine.Derive(r.assumptions).Summary.NPV

	results := make([]DriverResult, 0, len(drivers))
	for _, d := range drivers {
		low := r.evaluate(d, 1.0-PerturbationFraction)
		high := r.evaluate(d, 1.0+PerturbationFraction)

		// A driver can move NPV in either direction; report the span
		// ordered low-to-high regardless.
		if low > high {
			low, high = high, low
		}

		results = append(results, DriverResult{
			Driver:  d.name,
			BaseNPV: base,
			LowNPV:  low,
			HighNPV: high,
			Range:   high - low,
		})

		r.logger.Debug("driver evaluated",
			zap.String("op", "sensitivity.Run"),
			zap.String("driver", d.name),
			zap.Float64("lowNpv", low),
			zap.Float64("highNpv", high),
		)
	}
	return results
}

func (r *Runner) evaluate(d driver, factor float64) float64 {
	shifted := r.assumptions
	d.apply(&shifted, factor)
	npv := engine.Derive(shifted).Summary.NPV
	if math.IsNaN(npv) {
		r.logger.Warn("non-finite NPV for perturbed driver",
			zap.String("op", "sensitivity.evaluate"),
			zap.String("driver", d.name),
			zap.Float64("factor", factor),
		)
	}
	return npv
}

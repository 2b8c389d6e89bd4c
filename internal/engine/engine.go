// Package engine computes the ROI projection: a stateless, deterministic
// transform from an assumption record to a quarterly cash-flow series and
// summary financial metrics. Derive holds no state between invocations and
// performs no validation; degenerate numeric input (zero FTEs, zero
// platform cost) propagates arithmetically as NaN/Inf rather than raising
// a structured error.
package engine

import (
	"fmt"
	"math"

	"github.com/governos/roi-calculator/internal/config"
	"github.com/governos/roi-calculator/pkg/constants"
	"github.com/governos/roi-calculator/pkg/finmath"
	"github.com/governos/roi-calculator/pkg/mathutil"
)

// Baseline category keys. BaselineContext maps each to its current-state
// annual amount.
const (
	BaselinePeople         = "people"
	BaselineTicketsChanges = "ticketsChanges"
	BaselineOnboarding     = "onboarding"
	BaselineSoftware       = "software"
	BaselineAudit          = "audit"
	BaselineComplianceRisk = "complianceRisk"
	BaselineIncidents      = "incidents"
)

// Benefit lever labels, in the fixed order BenefitBars is emitted. Display
// layers slice this sequence by index range to build persona views, so the
// order is load-bearing.
var BenefitLabels = [8]string{
	"Ticket & change deflection",
	"Onboarding acceleration",
	"Internal audit effort",
	"External audit spend",
	"Incident MTTR",
	"Tool consolidation",
	"Compliance risk avoided",
	"Value acceleration",
}

// complianceRiskDriverIndex locates the risk-avoided term within
// BenefitLabels; its tornado spread carries the same 0.25 x multiplier
// scaling as the benefit itself.
const complianceRiskDriverIndex = 6

// BenefitBar is one labeled annual benefit amount, rounded to the nearest
// whole currency unit.
type BenefitBar struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// CumulativePoint is the running cumulative cash position at the end of a
// quarter, rounded to the nearest whole currency unit.
type CumulativePoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TornadoRow approximates one driver's NPV range. This is a display
// approximation (a fixed spread around the base NPV), not a re-evaluation
// of the model at shifted inputs; the sensitivity package provides the
// authoritative per-driver sweep.
type TornadoRow struct {
	Driver string  `json:"driver"`
	Low    float64 `json:"low"`
	High   float64 `json:"high"`
}

// Summary holds the scalar metrics derived from the cash-flow series.
// Values are left unrounded for the display layer to format; PaybackMonths
// is meaningful only when PaybackReached is true.
type Summary struct {
	PaybackMonths      int     `json:"paybackMonths"`
	PaybackReached     bool    `json:"paybackReached"`
	Year1Net           float64 `json:"year1Net"`
	HorizonNet         float64 `json:"horizonNet"`
	ROIPct             float64 `json:"roiPct"`
	NPV                float64 `json:"npv"`
	IRR                float64 `json:"irr"` // quarterly periodic rate
	IRRConverged       bool    `json:"irrConverged"`
	TotalAnnualBenefit float64 `json:"totalAnnualBenefit"`
	AnnualPlatformCost float64 `json:"annualPlatformCost"`
}

// DerivedFinancials is the engine's sole output.
type DerivedFinancials struct {
	Currency        string             `json:"currency"`
	BaselineContext map[string]float64 `json:"baselineContext"`
	BenefitBars     []BenefitBar       `json:"benefitBars"`
	Cashflows       []float64          `json:"cashflows"`
	Cumulative      []CumulativePoint  `json:"cumulative"`
	Summary         Summary            `json:"summary"`
	Tornado         []TornadoRow       `json:"tornado"`
}

// HasNonFinite reports whether any projected value is NaN or infinite.
// Degenerate inputs (zero FTEs, zero platform cost) propagate through the
// arithmetic unguarded; display layers use this to avoid emitting values
// JSON cannot represent.
func (d DerivedFinancials) HasNonFinite() bool {
	for _, amount := range d.BaselineContext {
		if !mathutil.IsFinite(amount) {
			return true
		}
	}
	for _, bar := range d.BenefitBars {
		if !mathutil.IsFinite(bar.Amount) {
			return true
		}
	}
	for _, cf := range d.Cashflows {
		if !mathutil.IsFinite(cf) {
			return true
		}
	}
	for _, point := range d.Cumulative {
		if !mathutil.IsFinite(point.Value) {
			return true
		}
	}
	for _, row := range d.Tornado {
		if !mathutil.IsFinite(row.Low) || !mathutil.IsFinite(row.High) {
			return true
		}
	}
	summary := []float64{
		d.Summary.Year1Net, d.Summary.HorizonNet, d.Summary.ROIPct,
		d.Summary.NPV, d.Summary.IRR,
		d.Summary.TotalAnnualBenefit, d.Summary.AnnualPlatformCost,
	}
	for _, value := range summary {
		if !mathutil.IsFinite(value) {
			return true
		}
	}
	return false
}

// Derive computes the full projection for one assumption snapshot.
func Derive(assumptions config.Assumptions) DerivedFinancials {
	multiplier := assumptions.Finance.Scenario.Multiplier()

	baseline := deriveBaseline(assumptions)
	benefits := deriveBenefits(assumptions, baseline, multiplier)

	totalBenefit := 0.0
	for _, amount := range benefits {
		totalBenefit += amount
	}

	annualCost := assumptions.Pricing.AnnualPlatformCost()
	oneTimeCost := assumptions.Pricing.Implementation
	quarters := assumptions.Finance.HorizonYears * constants.QuartersPerYear

	perQuarterBenefit := totalBenefit / constants.QuartersPerYear
	perQuarterCost := annualCost / constants.QuartersPerYear

	cashflows := make([]float64, quarters)
	cumulative := make([]CumulativePoint, quarters)
	running := -oneTimeCost
	paybackQuarter := 0
	for q := 0; q < quarters; q++ {
		cashflows[q] = perQuarterBenefit - perQuarterCost
		if q == 0 {
			cashflows[q] -= oneTimeCost
		}
		running += perQuarterBenefit - perQuarterCost
		if paybackQuarter == 0 && running >= 0 {
			paybackQuarter = q + 1
		}
		cumulative[q] = CumulativePoint{
			Label: quarterLabel(q),
			Value: mathutil.RoundWhole(running),
		}
	}

	summary := deriveSummary(assumptions, cashflows, paybackQuarter, totalBenefit, annualCost)

	return DerivedFinancials{
		Currency:        assumptions.Profile.Currency,
		BaselineContext: baseline,
		BenefitBars:     benefitBars(benefits),
		Cashflows:       cashflows,
		Cumulative:      cumulative,
		Summary:         summary,
		Tornado:         deriveTornado(summary.NPV, multiplier),
	}
}

// BlendedHourlyRate is the heuristic labor rate used for ticket, change,
// and audit effort: the three role costs summed, divided by total FTE
// count, converted to hourly, then halved. This is deliberately not a true
// weighted average; the formula is preserved as documented. Zero total FTE
// yields a non-finite rate.
func BlendedHourlyRate(people config.PeopleProcess) float64 {
	costSum := people.AnalystCost + people.EngineerCost + people.OperatorCost
	return costSum / people.TotalFTE() / constants.WorkHoursPerYear / constants.BlendedRateDiscount
}

func deriveBaseline(assumptions config.Assumptions) map[string]float64 {
	people := assumptions.PeopleProcess
	risk := assumptions.RiskCompliance

	blendedRate := BlendedHourlyRate(people)

	peopleCost := people.AnalystFTE*people.AnalystCost +
		people.EngineerFTE*people.EngineerCost +
		people.OperatorFTE*people.OperatorCost +
		people.ContractorMonthlySpend*constants.MonthsPerYear

	ticketHours := people.TicketsPerMonth * constants.MonthsPerYear * people.MinutesPerTicket / constants.MinutesPerHour
	changeHours := people.ChangesPerMonth * constants.MonthsPerYear * people.HoursPerChange
	ticketChangeCost := (ticketHours + changeHours) * blendedRate

	dailyCost := (people.AnalystCost + people.EngineerCost + people.OperatorCost) / 3 / constants.WorkDaysPerYear
	onboardingCost := people.OnboardingDays * dailyCost

	auditCost := risk.AuditHoursPerYear*blendedRate + risk.ExternalAuditSpend
	complianceLoss := risk.NonComplianceProbability * risk.NonComplianceImpact
	incidentCost := risk.IncidentsPerYear * risk.CostPerIncident

	return map[string]float64{
		BaselinePeople:         peopleCost,
		BaselineTicketsChanges: ticketChangeCost,
		BaselineOnboarding:     onboardingCost,
		BaselineSoftware:       assumptions.SoftwareInfra.TotalAnnual(),
		BaselineAudit:          auditCost,
		BaselineComplianceRisk: complianceLoss,
		BaselineIncidents:      incidentCost,
	}
}

// deriveBenefits returns the eight annual benefit terms in display order,
// each lever scaled by the scenario multiplier before applying.
func deriveBenefits(assumptions config.Assumptions, baseline map[string]float64, multiplier float64) [8]float64 {
	levers := assumptions.ValueLevers
	risk := assumptions.RiskCompliance

	auditInternal := risk.AuditHoursPerYear * BlendedHourlyRate(assumptions.PeopleProcess)

	var benefits [8]float64
	benefits[0] = baseline[BaselineTicketsChanges] * levers.TicketDeflection * multiplier
	benefits[1] = baseline[BaselineOnboarding] * levers.OnboardingReduction * multiplier
	benefits[2] = auditInternal * levers.AuditInternalReduction * multiplier
	benefits[3] = risk.ExternalAuditSpend * levers.AuditExternalReduction * multiplier
	benefits[4] = baseline[BaselineIncidents] * levers.IncidentMTTRReduction * multiplier
	benefits[5] = math.Round(levers.ToolsRetired*multiplier) * levers.CostPerRetiredTool
	benefits[6] = baseline[BaselineComplianceRisk] * (constants.RiskReductionFactor * multiplier)
	benefits[7] = levers.ValuePerProject * levers.ProjectsPerYear * levers.ValueUplift * multiplier
	return benefits
}

func benefitBars(benefits [8]float64) []BenefitBar {
	bars := make([]BenefitBar, len(benefits))
	for i, amount := range benefits {
		bars[i] = BenefitBar{
			Label:  BenefitLabels[i],
			Amount: mathutil.RoundWhole(amount),
		}
	}
	return bars
}

func deriveSummary(assumptions config.Assumptions, cashflows []float64, paybackQuarter int, totalBenefit, annualCost float64) Summary {
	year1Quarters := constants.QuartersPerYear
	if len(cashflows) < year1Quarters {
		year1Quarters = len(cashflows)
	}
	year1Net := 0.0
	for _, cf := range cashflows[:year1Quarters] {
		year1Net += cf
	}

	horizonNet := 0.0
	for _, cf := range cashflows {
		horizonNet += cf
	}

	oneTimeCost := assumptions.Pricing.Implementation
	totalCost := annualCost*float64(assumptions.Finance.HorizonYears) + oneTimeCost
	roiPct := horizonNet / totalCost * constants.PercentageMultiplier

	irr, irrConverged := finmath.IRR(cashflows)

	return Summary{
		PaybackMonths:      paybackQuarter * constants.MonthsPerQuarter,
		PaybackReached:     paybackQuarter > 0,
		Year1Net:           year1Net,
		HorizonNet:         horizonNet,
		ROIPct:             roiPct,
		NPV:                finmath.NPV(assumptions.Finance.DiscountRate, cashflows),
		IRR:                irr,
		IRRConverged:       irrConverged,
		TotalAnnualBenefit: totalBenefit,
		AnnualPlatformCost: annualCost,
	}
}

// deriveTornado builds the illustrative sensitivity table: each driver's
// range is +/- 15% of the base NPV, with the non-compliance-impact driver
// additionally scaled by 0.25 x the scenario multiplier. Non-authoritative
// by construction.
func deriveTornado(baseNPV, multiplier float64) []TornadoRow {
	rows := make([]TornadoRow, len(BenefitLabels))
	for i, label := range BenefitLabels {
		spread := baseNPV * constants.TornadoSpread
		if i == complianceRiskDriverIndex {
			spread *= constants.RiskReductionFactor * multiplier
		}
		rows[i] = TornadoRow{
			Driver: label,
			Low:    baseNPV - spread,
			High:   baseNPV + spread,
		}
	}
	return rows
}

func quarterLabel(q int) string {
	return fmt.Sprintf("Y%dQ%d", q/constants.QuartersPerYear+1, q%constants.QuartersPerYear+1)
}

package config

import (
	"fmt"
	"strings"

	"github.com/governos/roi-calculator/pkg/constants"
)

// Scenario selects how much of the claimed benefit is assumed realized.
type Scenario string

const (
	ScenarioConservative Scenario = "conservative"
	ScenarioBase         Scenario = "base"
	ScenarioOptimistic   Scenario = "optimistic"
)

// Multiplier returns the benefit scaling factor for the scenario.
// Unrecognized values fall back to the base multiplier.
func (s Scenario) Multiplier() float64 {
	switch Scenario(strings.ToLower(string(s))) {
	case ScenarioConservative:
		return constants.ConservativeMultiplier
	case ScenarioOptimistic:
		return constants.OptimisticMultiplier
	default:
		return constants.BaseMultiplier
	}
}

// ParseScenario normalizes a scenario string, rejecting unknown values.
func ParseScenario(value string) (Scenario, error) {
	s := Scenario(strings.ToLower(strings.TrimSpace(value)))
	switch s {
	case ScenarioConservative, ScenarioBase, ScenarioOptimistic:
		return s, nil
	}
	return "", fmt.Errorf("expected scenario of %s, %s, or %s, got %q",
		ScenarioConservative, ScenarioBase, ScenarioOptimistic, value)
}

// Profile holds organization sizing descriptors. Only Currency affects
// computed output, and then only as a display label.
type Profile struct {
	Currency  string `json:"currency" yaml:"currency"`
	Employees int    `json:"employees" yaml:"employees"`
	Domains   int    `json:"domains" yaml:"domains"`
	Tools     int    `json:"tools" yaml:"tools"`
}

// PeopleProcess holds staffing levels and costs by role along with
// ticket, change-request, and onboarding effort assumptions.
type PeopleProcess struct {
	AnalystFTE             float64 `json:"analystFte" yaml:"analystFte"`
	AnalystCost            float64 `json:"analystCost" yaml:"analystCost"`
	EngineerFTE            float64 `json:"engineerFte" yaml:"engineerFte"`
	EngineerCost           float64 `json:"engineerCost" yaml:"engineerCost"`
	OperatorFTE            float64 `json:"operatorFte" yaml:"operatorFte"`
	OperatorCost           float64 `json:"operatorCost" yaml:"operatorCost"`
	TicketsPerMonth        float64 `json:"ticketsPerMonth" yaml:"ticketsPerMonth"`
	MinutesPerTicket       float64 `json:"minutesPerTicket" yaml:"minutesPerTicket"`
	ChangesPerMonth        float64 `json:"changesPerMonth" yaml:"changesPerMonth"`
	HoursPerChange         float64 `json:"hoursPerChange" yaml:"hoursPerChange"`
	OnboardingDays         float64 `json:"onboardingDays" yaml:"onboardingDays"`
	ContractorMonthlySpend float64 `json:"contractorMonthlySpend" yaml:"contractorMonthlySpend"`
}

// SoftwareInfra holds six annualized software and infrastructure cost
// categories, summed directly into the baseline.
type SoftwareInfra struct {
	Catalog     float64 `json:"catalog" yaml:"catalog"`
	Quality     float64 `json:"quality" yaml:"quality"`
	Lineage     float64 `json:"lineage" yaml:"lineage"`
	MDM         float64 `json:"mdm" yaml:"mdm"`
	Integration float64 `json:"integration" yaml:"integration"`
	Compute     float64 `json:"compute" yaml:"compute"`
}

// RiskCompliance holds audit effort and spend, incident frequency and
// cost, and the expected non-compliance exposure.
type RiskCompliance struct {
	AuditHoursPerYear        float64 `json:"auditHoursPerYear" yaml:"auditHoursPerYear"`
	ExternalAuditSpend       float64 `json:"externalAuditSpend" yaml:"externalAuditSpend"`
	IncidentsPerYear         float64 `json:"incidentsPerYear" yaml:"incidentsPerYear"`
	CostPerIncident          float64 `json:"costPerIncident" yaml:"costPerIncident"`
	NonComplianceProbability float64 `json:"nonComplianceProbability" yaml:"nonComplianceProbability"`
	NonComplianceImpact      float64 `json:"nonComplianceImpact" yaml:"nonComplianceImpact"`
}

// ValueLevers holds the platform's claimed impact: reduction/uplift
// fractions (0.0-1.0 expected) and counts/rates applied to the baseline.
type ValueLevers struct {
	TicketDeflection       float64 `json:"ticketDeflection" yaml:"ticketDeflection"`
	OnboardingReduction    float64 `json:"onboardingReduction" yaml:"onboardingReduction"`
	AuditInternalReduction float64 `json:"auditInternalReduction" yaml:"auditInternalReduction"`
	AuditExternalReduction float64 `json:"auditExternalReduction" yaml:"auditExternalReduction"`
	IncidentMTTRReduction  float64 `json:"incidentMttrReduction" yaml:"incidentMttrReduction"`
	ToolsRetired           float64 `json:"toolsRetired" yaml:"toolsRetired"`
	CostPerRetiredTool     float64 `json:"costPerRetiredTool" yaml:"costPerRetiredTool"`
	ValuePerProject        float64 `json:"valuePerProject" yaml:"valuePerProject"`
	ProjectsPerYear        float64 `json:"projectsPerYear" yaml:"projectsPerYear"`
	ValueUplift            float64 `json:"valueUplift" yaml:"valueUplift"`
}

// Pricing holds the evaluated platform's costs. Implementation is charged
// once in the first quarter; the rest is annualized.
type Pricing struct {
	AnnualLicense  float64 `json:"annualLicense" yaml:"annualLicense"`
	Implementation float64 `json:"implementation" yaml:"implementation"`
	AddOns         float64 `json:"addOns" yaml:"addOns"`
}

// Finance holds the evaluation horizon, discount rate, and scenario.
type Finance struct {
	HorizonYears int      `json:"horizonYears" yaml:"horizonYears"`
	DiscountRate float64  `json:"discountRate" yaml:"discountRate"`
	Scenario     Scenario `json:"scenario" yaml:"scenario"`
}

// Assumptions is the complete, immutable input record for the engine.
// Callers pass a full snapshot on every recomputation; the engine never
// mutates it.
type Assumptions struct {
	Profile        Profile        `json:"profile" yaml:"profile"`
	PeopleProcess  PeopleProcess  `json:"peopleProcess" yaml:"peopleProcess"`
	SoftwareInfra  SoftwareInfra  `json:"softwareInfra" yaml:"softwareInfra"`
	RiskCompliance RiskCompliance `json:"riskCompliance" yaml:"riskCompliance"`
	ValueLevers    ValueLevers    `json:"valueLevers" yaml:"valueLevers"`
	Pricing        Pricing        `json:"pricing" yaml:"pricing"`
	Finance        Finance        `json:"finance" yaml:"finance"`
}

// TotalFTE returns the summed headcount across the three roles.
func (p PeopleProcess) TotalFTE() float64 {
	return p.AnalystFTE + p.EngineerFTE + p.OperatorFTE
}

// TotalAnnual returns the sum of the six software/infrastructure categories.
func (s SoftwareInfra) TotalAnnual() float64 {
	return s.Catalog + s.Quality + s.Lineage + s.MDM + s.Integration + s.Compute
}

// AnnualPlatformCost returns the recurring platform cost, excluding the
// one-time implementation charge.
func (p Pricing) AnnualPlatformCost() float64 {
	return p.AnnualLicense + p.AddOns
}

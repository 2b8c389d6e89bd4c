package config

// DefaultAssumptions returns the documented reference scenario: a mid-size
// organization evaluating the platform over a three-year horizon at a 10%
// discount rate. Golden values in the test suite derive from this record.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Profile: Profile{
			Currency:  "USD",
			Employees: 2500,
			Domains:   12,
			Tools:     6,
		},
		PeopleProcess: PeopleProcess{
			AnalystFTE:             4,
			AnalystCost:            95000,
			EngineerFTE:            3,
			EngineerCost:           140000,
			OperatorFTE:            2,
			OperatorCost:           120000,
			TicketsPerMonth:        180,
			MinutesPerTicket:       35,
			ChangesPerMonth:        25,
			HoursPerChange:         6,
			OnboardingDays:         30,
			ContractorMonthlySpend: 15000,
		},
		SoftwareInfra: SoftwareInfra{
			Catalog:     60000,
			Quality:     48000,
			Lineage:     36000,
			MDM:         90000,
			Integration: 30000,
			Compute:     24000,
		},
		RiskCompliance: RiskCompliance{
			AuditHoursPerYear:        1200,
			ExternalAuditSpend:       80000,
			IncidentsPerYear:         24,
			CostPerIncident:          7500,
			NonComplianceProbability: 0.08,
			NonComplianceImpact:      2000000,
		},
		ValueLevers: ValueLevers{
			TicketDeflection:       0.30,
			OnboardingReduction:    0.25,
			AuditInternalReduction: 0.35,
			AuditExternalReduction: 0.20,
			IncidentMTTRReduction:  0.40,
			ToolsRetired:           2,
			CostPerRetiredTool:     45000,
			ValuePerProject:        250000,
			ProjectsPerYear:        6,
			ValueUplift:            0.10,
		},
		Pricing: Pricing{
			AnnualLicense:  180000,
			Implementation: 90000,
			AddOns:         30000,
		},
		Finance: Finance{
			HorizonYears: 3,
			DiscountRate: 0.10,
			Scenario:     ScenarioBase,
		},
	}
}

// DefaultConfiguration returns a Configuration carrying the default
// assumption record and empty logging/output preferences.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Assumptions: DefaultAssumptions(),
	}
}

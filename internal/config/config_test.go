package config

import (
	"strings"
	"testing"
)

func TestDefaultAssumptionsComplete(t *testing.T) {
	assumptions := DefaultAssumptions()

	if assumptions.Profile.Currency != "USD" {
		t.Errorf("Currency = %q, expected USD", assumptions.Profile.Currency)
	}
	if assumptions.PeopleProcess.TotalFTE() != 9 {
		t.Errorf("TotalFTE = %v, expected 9", assumptions.PeopleProcess.TotalFTE())
	}
	if assumptions.SoftwareInfra.TotalAnnual() != 288000 {
		t.Errorf("SoftwareInfra.TotalAnnual = %v, expected 288000", assumptions.SoftwareInfra.TotalAnnual())
	}
	if assumptions.Pricing.AnnualPlatformCost() != 210000 {
		t.Errorf("AnnualPlatformCost = %v, expected 210000", assumptions.Pricing.AnnualPlatformCost())
	}
	if assumptions.Finance.HorizonYears != 3 {
		t.Errorf("HorizonYears = %d, expected 3", assumptions.Finance.HorizonYears)
	}
	if assumptions.Finance.Scenario != ScenarioBase {
		t.Errorf("Scenario = %q, expected base", assumptions.Finance.Scenario)
	}
}

func TestLoadConfigurationFromReaderPartialOverride(t *testing.T) {
	yaml := `
finance:
  horizonYears: 5
  scenario: optimistic
pricing:
  annualLicense: 250000
`

	conf, err := LoadConfigurationFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Finance.HorizonYears != 5 {
		t.Errorf("HorizonYears = %d, expected 5", conf.Finance.HorizonYears)
	}
	if conf.Finance.Scenario != ScenarioOptimistic {
		t.Errorf("Scenario = %q, expected optimistic", conf.Finance.Scenario)
	}
	if conf.Pricing.AnnualLicense != 250000 {
		t.Errorf("AnnualLicense = %v, expected 250000", conf.Pricing.AnnualLicense)
	}

	// Untouched fields keep their documented defaults.
	if conf.Finance.DiscountRate != 0.10 {
		t.Errorf("DiscountRate = %v, expected default 0.10", conf.Finance.DiscountRate)
	}
	if conf.Pricing.Implementation != 90000 {
		t.Errorf("Implementation = %v, expected default 90000", conf.Pricing.Implementation)
	}
	if conf.PeopleProcess.AnalystCost != 95000 {
		t.Errorf("AnalystCost = %v, expected default 95000", conf.PeopleProcess.AnalystCost)
	}
}

func TestLoadConfigurationFromReaderInvalidScenario(t *testing.T) {
	yaml := `
finance:
  scenario: aggressive
`

	if _, err := LoadConfigurationFromReader(strings.NewReader(yaml)); err == nil {
		t.Errorf("expected error for unknown scenario, got nil")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration("does-not-exist.yaml"); err == nil {
		t.Errorf("expected error for missing config file, got nil")
	}
}

func TestParseScenario(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Scenario
		wantErr  bool
	}{
		{"Base", "base", ScenarioBase, false},
		{"Conservative", "conservative", ScenarioConservative, false},
		{"Optimistic", "optimistic", ScenarioOptimistic, false},
		{"Mixed case", "Optimistic", ScenarioOptimistic, false},
		{"Padded", "  base  ", ScenarioBase, false},
		{"Unknown", "aggressive", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario, err := ParseScenario(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseScenario(%q) error = nil, expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseScenario(%q) error = %v", tt.input, err)
			}
			if scenario != tt.expected {
				t.Errorf("ParseScenario(%q) = %q, expected %q", tt.input, scenario, tt.expected)
			}
		})
	}
}

func TestScenarioMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		expected float64
	}{
		{"Conservative", ScenarioConservative, 0.7},
		{"Base", ScenarioBase, 1.0},
		{"Optimistic", ScenarioOptimistic, 1.25},
		{"Mixed case", Scenario("OPTIMISTIC"), 1.25},
		{"Unknown falls back to base", Scenario("aggressive"), 1.0},
		{"Empty falls back to base", Scenario(""), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scenario.Multiplier(); got != tt.expected {
				t.Errorf("Multiplier() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestValidateConfigurationCleanDefaults(t *testing.T) {
	conf := DefaultConfiguration()
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("default configuration produced warnings: %v", warnings)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf := DefaultConfiguration()
	conf.PeopleProcess.AnalystFTE = 0
	conf.PeopleProcess.EngineerFTE = 0
	conf.PeopleProcess.OperatorFTE = 0
	conf.ValueLevers.TicketDeflection = 1.5
	conf.Pricing.AnnualLicense = -1000

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 3 {
		t.Fatalf("len(warnings) = %d (%v), expected 3", len(warnings), warnings)
	}

	assertContains := func(substr string) {
		t.Helper()
		for _, warning := range warnings {
			if strings.Contains(warning, substr) {
				return
			}
		}
		t.Errorf("no warning mentions %q in %v", substr, warnings)
	}
	assertContains("Total FTE count is zero")
	assertContains("valueLevers.ticketDeflection")
	assertContains("pricing.annualLicense")
}

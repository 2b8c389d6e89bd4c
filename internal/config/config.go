// Package config defines the assumption record consumed by the projection
// engine and includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/governos/roi-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for roi-calculator: the assumption
// record plus logging and output preferences.
type Configuration struct {
	Assumptions `mapstructure:",squash" yaml:",inline"`
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Fields absent from the file keep their documented
// default values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalOverDefaults(v)
}

// LoadConfigurationFromReader loads YAML configuration from an arbitrary
// reader, used by the HTTP editor API.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalOverDefaults(v)
}

func unmarshalOverDefaults(v *viper.Viper) (*Configuration, error) {
	configuration := DefaultConfiguration()
	if err := v.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if configuration.Finance.Scenario != "" {
		scenario, err := ParseScenario(string(configuration.Finance.Scenario))
		if err != nil {
			return nil, err
		}
		configuration.Finance.Scenario = scenario
	}

	return configuration, nil
}

// ValidateConfiguration performs general validation of the assumption
// record and returns warnings. The engine itself never validates; warnings
// surface beside results so degenerate figures are explainable.
func (c *Configuration) ValidateConfiguration() []string {
	return validation.ValidateAssumptions(c.assumptionView())
}

func (c *Configuration) assumptionView() validation.AssumptionView {
	return validation.AssumptionView{
		TotalFTE:           c.PeopleProcess.TotalFTE(),
		HorizonYears:       c.Finance.HorizonYears,
		DiscountRate:       c.Finance.DiscountRate,
		AnnualPlatformCost: c.Pricing.AnnualPlatformCost(),
		OneTimeCost:        c.Pricing.Implementation,
		MonetaryFields: map[string]float64{
			"peopleProcess.analystCost":            c.PeopleProcess.AnalystCost,
			"peopleProcess.engineerCost":           c.PeopleProcess.EngineerCost,
			"peopleProcess.operatorCost":           c.PeopleProcess.OperatorCost,
			"peopleProcess.contractorMonthlySpend": c.PeopleProcess.ContractorMonthlySpend,
			"softwareInfra.catalog":                c.SoftwareInfra.Catalog,
			"softwareInfra.quality":                c.SoftwareInfra.Quality,
			"softwareInfra.lineage":                c.SoftwareInfra.Lineage,
			"softwareInfra.mdm":                    c.SoftwareInfra.MDM,
			"softwareInfra.integration":            c.SoftwareInfra.Integration,
			"softwareInfra.compute":                c.SoftwareInfra.Compute,
			"riskCompliance.externalAuditSpend":    c.RiskCompliance.ExternalAuditSpend,
			"riskCompliance.costPerIncident":       c.RiskCompliance.CostPerIncident,
			"riskCompliance.nonComplianceImpact":   c.RiskCompliance.NonComplianceImpact,
			"valueLevers.costPerRetiredTool":       c.ValueLevers.CostPerRetiredTool,
			"valueLevers.valuePerProject":          c.ValueLevers.ValuePerProject,
			"pricing.annualLicense":                c.Pricing.AnnualLicense,
			"pricing.implementation":               c.Pricing.Implementation,
			"pricing.addOns":                       c.Pricing.AddOns,
		},
		LeverFractions: map[string]float64{
			"valueLevers.ticketDeflection":            c.ValueLevers.TicketDeflection,
			"valueLevers.onboardingReduction":         c.ValueLevers.OnboardingReduction,
			"valueLevers.auditInternalReduction":      c.ValueLevers.AuditInternalReduction,
			"valueLevers.auditExternalReduction":      c.ValueLevers.AuditExternalReduction,
			"valueLevers.incidentMttrReduction":       c.ValueLevers.IncidentMTTRReduction,
			"valueLevers.valueUplift":                 c.ValueLevers.ValueUplift,
			"riskCompliance.nonComplianceProbability": c.RiskCompliance.NonComplianceProbability,
		},
	}
}

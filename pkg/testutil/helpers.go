// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/governos/roi-calculator/internal/config"
)

// ZeroLevers returns a copy of the assumptions with every value lever
// (including tool retirement and value acceleration) set to zero.
func ZeroLevers(assumptions config.Assumptions) config.Assumptions {
	assumptions.ValueLevers = config.ValueLevers{}
	return assumptions
}

// WithScenario returns a copy of the assumptions with the scenario replaced.
func WithScenario(assumptions config.Assumptions, scenario config.Scenario) config.Assumptions {
	assumptions.Finance.Scenario = scenario
	return assumptions
}

// WithHorizon returns a copy of the assumptions with the horizon replaced.
func WithHorizon(assumptions config.Assumptions, years int) config.Assumptions {
	assumptions.Finance.HorizonYears = years
	return assumptions
}

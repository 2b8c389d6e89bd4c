// Package finmath provides time-value-of-money calculations shared by the
// projection engine and the sensitivity runner.
package finmath

import (
	"math"

	"github.com/governos/roi-calculator/pkg/constants"
)

// NPV discounts a series of periodic cash flows at a quarterly rate derived
// from the annual discount rate by simple division by four (not a compounded
// root). Periods are one-based: cashflows[0] is discounted by one quarter.
func NPV(annualRate float64, cashflows []float64) float64 {
	quarterlyRate := annualRate / constants.QuartersPerYear
	npv := 0.0
	for i, cf := range cashflows {
		npv += cf / math.Pow(1.0+quarterlyRate, float64(i+1))
	}
	return npv
}

// npvAtRate evaluates the NPV of the series at a periodic (quarterly) rate.
func npvAtRate(rate float64, cashflows []float64) float64 {
	npv := 0.0
	for i, cf := range cashflows {
		npv += cf / math.Pow(1.0+rate, float64(i+1))
	}
	return npv
}

// npvDerivative evaluates d(NPV)/d(rate) at a periodic rate.
func npvDerivative(rate float64, cashflows []float64) float64 {
	d := 0.0
	for i, cf := range cashflows {
		period := float64(i + 1)
		d -= period * cf / math.Pow(1.0+rate, period+1.0)
	}
	return d
}

// IRR finds the quarterly periodic rate at which the series' NPV is zero,
// by Newton-Raphson iteration from a 10% starting guess. A non-finite step
// halves the current rate instead of diverging. When the iteration budget
// runs out before the update shrinks below tolerance, the last computed
// rate is returned with converged == false; the numeric value for
// converging inputs is unaffected by the flag.
func IRR(cashflows []float64) (rate float64, converged bool) {
	rate = constants.IRRInitialGuess
	for i := 0; i < constants.IRRMaxIterations; i++ {
		next := rate - npvAtRate(rate, cashflows)/npvDerivative(rate, cashflows)
		if math.IsNaN(next) || math.IsInf(next, 0) {
			rate = rate / 2
			continue
		}
		if math.Abs(next-rate) < constants.IRRTolerance {
			return next, true
		}
		rate = next
	}
	return rate, false
}

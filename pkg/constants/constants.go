// Package constants provides shared constants for the roi-calculator application.
package constants

// Scenario multipliers scale every benefit lever; baseline costs are never scaled.
const (
	// ConservativeMultiplier models partial benefit realization
	ConservativeMultiplier = 0.7

	// BaseMultiplier is the reference case
	BaseMultiplier = 1.0

	// OptimisticMultiplier models full adoption with upside
	OptimisticMultiplier = 1.25
)

// Labor and calendar constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// QuartersPerYear is the number of quarters in a year
	QuartersPerYear = 4

	// MonthsPerQuarter converts a quarter index into months
	MonthsPerQuarter = 3

	// WorkHoursPerYear is the standard annual work hours for one FTE
	WorkHoursPerYear = 2080

	// WorkDaysPerYear is the standard annual working days for one FTE
	WorkDaysPerYear = 260

	// MinutesPerHour converts per-ticket minutes into hours
	MinutesPerHour = 60
)

// Engine constants
const (
	// BlendedRateDiscount halves the heuristic blended hourly rate
	BlendedRateDiscount = 2.0

	// RiskReductionFactor is the fixed fraction of the expected
	// compliance loss the platform is assumed to avoid
	RiskReductionFactor = 0.25

	// TornadoSpread is the fraction of base NPV used for the
	// approximate per-driver tornado range
	TornadoSpread = 0.15

	// IRRInitialGuess is the Newton-Raphson starting quarterly rate
	IRRInitialGuess = 0.10

	// IRRMaxIterations bounds the Newton-Raphson iteration budget
	IRRMaxIterations = 100

	// IRRTolerance is the convergence threshold on the rate update
	IRRTolerance = 1e-7
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// assumption payloads (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// MaxReasonableHorizonYears is the horizon length beyond which
	// validation emits a warning
	MaxReasonableHorizonYears = 20

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

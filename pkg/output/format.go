// Package output provides utilities for formatting and displaying
// projection results.
package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/governos/roi-calculator/internal/engine"
	"github.com/governos/roi-calculator/pkg/constants"
	"github.com/governos/roi-calculator/pkg/format"
	"github.com/governos/roi-calculator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
// Non-finite metrics render as "n/a"; the engine leaves them unguarded.
func PrettyFormat(result engine.DerivedFinancials) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Baseline annual costs ---\n")
	for _, category := range sortedCategories(result.BaselineContext) {
		_, _ = p.Printf("%-16s | %s\n", category, currency(result, result.BaselineContext[category]))
	}

	fmt.Printf("\n--- Annual benefits (%s) ---\n", result.Currency)
	for _, bar := range result.BenefitBars {
		_, _ = p.Printf("%-26s | %s\n", bar.Label, currency(result, bar.Amount))
	}

	fmt.Printf("\n--- Cumulative cash position ---\n")
	fmt.Printf("Period | Position\n")
	fmt.Printf("______ | ________\n")
	for _, point := range result.Cumulative {
		_, _ = p.Printf("%-6s | %s\n", point.Label, currency(result, point.Value))
	}

	fmt.Printf("\n--- Summary ---\n")
	fmt.Printf("Payback          : %s\n", payback(result.Summary))
	fmt.Printf("Year-1 net       : %s\n", metric(result, result.Summary.Year1Net))
	fmt.Printf("Horizon net      : %s\n", metric(result, result.Summary.HorizonNet))
	fmt.Printf("ROI              : %s\n", percent(result.Summary.ROIPct))
	fmt.Printf("NPV              : %s\n", metric(result, result.Summary.NPV))
	fmt.Printf("IRR (quarterly)  : %s\n", irr(result.Summary))
	fmt.Printf("Annual benefit   : %s\n", metric(result, result.Summary.TotalAnnualBenefit))
	fmt.Printf("Annual cost      : %s\n", metric(result, result.Summary.AnnualPlatformCost))

	fmt.Printf("\n--- NPV sensitivity (illustrative) ---\n")
	for _, row := range result.Tornado {
		_, _ = p.Printf("%-26s | %s .. %s\n", row.Driver, currency(result, row.Low), currency(result, row.High))
	}
}

// CsvFormat outputs the quarterly series in comma-separated value format.
func CsvFormat(result engine.DerivedFinancials) {
	fmt.Print(CsvString(result))
}

// CsvString renders the quarterly series as CSV, used by both the CLI and
// the HTTP API.
func CsvString(result engine.DerivedFinancials) string {
	var builder strings.Builder
	builder.WriteString(`"period","cashflow","cumulative"` + "\n")
	for i, point := range result.Cumulative {
		builder.WriteString(fmt.Sprintf(`"%s","%.2f","%.2f"`, point.Label, result.Cashflows[i], point.Value))
		builder.WriteString("\n")
	}
	return builder.String()
}

// JSONFormat outputs the full projection as indented JSON.
func JSONFormat(result engine.DerivedFinancials) error {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode projection: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func sortedCategories(baseline map[string]float64) []string {
	categories := make([]string, 0, len(baseline))
	for category := range baseline {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func currency(result engine.DerivedFinancials, amount float64) string {
	if !mathutil.IsFinite(amount) {
		return "n/a"
	}
	return format.Currency(result.Currency, amount)
}

func metric(result engine.DerivedFinancials, amount float64) string {
	return currency(result, amount)
}

func percent(value float64) string {
	if !mathutil.IsFinite(value) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", value)
}

func payback(summary engine.Summary) string {
	if !summary.PaybackReached {
		return "not reached"
	}
	return fmt.Sprintf("%d months", summary.PaybackMonths)
}

func irr(summary engine.Summary) string {
	if !mathutil.IsFinite(summary.IRR) {
		return "n/a"
	}
	value := fmt.Sprintf("%.2f%%", summary.IRR*constants.PercentageMultiplier)
	if !summary.IRRConverged {
		value += " (not converged)"
	}
	return value
}

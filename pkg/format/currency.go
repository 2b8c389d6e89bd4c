package format

import (
	"fmt"
	"math"
	"strings"
)

// symbols maps the currency codes the calculator recognizes to display
// symbols. Unknown codes fall back to "<CODE> " as a prefix; currency is a
// display label only and never affects computation.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"AUD": "A$",
	"CAD": "C$",
}

// Currency returns a currency string with the code's symbol and thousands
// separators (e.g., "-$1,234.56").
func Currency(code string, amount float64) string {
	symbol, ok := symbols[strings.ToUpper(code)]
	if !ok {
		symbol = strings.ToUpper(code) + " "
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a symbol but with
// separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveCurrency(math.Abs(amount))
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}

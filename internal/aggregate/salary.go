package aggregate

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Salary placeholders
const (
	NotSpecified       = "Not specified"
	SalaryNotSpecified = "Salary not specified"
	DefaultInterval    = "yearly"
)

var printer = message.NewPrinter(language.English)

// Dollars formats a whole-dollar amount with thousands separators, e.g. "$80,000".
// Fractions are truncated.
func Dollars(amount float64) string {
	return printer.Sprintf("$%d", int64(amount))
}

// FormatSalary formats a min/max pair with an interval label.
// Equal bounds collapse to one amount; absent bounds give "Not specified".
func FormatSalary(minAmount, maxAmount *float64, interval string) string {
	interval = strings.TrimSpace(interval)
	if interval == "" {
		interval = DefaultInterval
	}

	switch {
	case minAmount != nil && maxAmount != nil:
		if *minAmount == *maxAmount {
			return Dollars(*minAmount) + " " + interval
		}
		return Dollars(*minAmount) + " - " + Dollars(*maxAmount) + " " + interval
	case minAmount != nil:
		return Dollars(*minAmount) + "+ " + interval
	case maxAmount != nil:
		return "Up to " + Dollars(*maxAmount) + " " + interval
	default:
		return NotSpecified
	}
}

// FormatSalaryRange formats provider salary bounds followed by suffix
// (for example "per year" or "yearly"). Zero counts as absent, and missing
// bounds give "Salary not specified".
func FormatSalaryRange(minAmount, maxAmount *float64, suffix string) string {
	hasMin := minAmount != nil && *minAmount != 0
	hasMax := maxAmount != nil && *maxAmount != 0

	switch {
	case hasMin && hasMax:
		return Dollars(*minAmount) + " - " + Dollars(*maxAmount) + " " + suffix
	case hasMin:
		return Dollars(*minAmount) + "+ " + suffix
	case hasMax:
		return "Up to " + Dollars(*maxAmount) + " " + suffix
	default:
		return SalaryNotSpecified
	}
}

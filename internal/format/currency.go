// Package format renders amounts for display. Aggregation never rounds;
// anything lossy lives here.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var abbrevSuffixes = []byte{'k', 'M', 'B', 'T', 'P', 'E'}

// Currency renders an amount as Indian rupees: en-IN digit grouping with
// two decimals below one lakh, and an abbreviated form (₹1.5M) at or
// above it.
func Currency(amount decimal.Decimal) string {
	value, _ := amount.Float64()
	if value < 100000 {
		return "₹" + groupIndian(amount.StringFixed(2))
	}

	exp := int(math.Log(value) / math.Log(1000))
	if exp > len(abbrevSuffixes) {
		exp = len(abbrevSuffixes)
	}
	return fmt.Sprintf("₹%.1f%c", value/math.Pow(1000, float64(exp)), abbrevSuffixes[exp-1])
}

// groupIndian inserts en-IN digit separators: the last three integer
// digits form one group, everything before them groups in pairs
// (12,34,567.00).
func groupIndian(fixed string) string {
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var groups []string
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		groups = append(groups, intPart[len(intPart)-3:])
	} else {
		groups = []string{intPart}
	}

	out := strings.Join(groups, ",") + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// Percent renders a month-over-month change with its sign, one decimal.
func Percent(change decimal.Decimal) string {
	value, _ := change.Float64()
	return fmt.Sprintf("%+.1f%%", value)
}

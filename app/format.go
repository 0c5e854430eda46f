package app

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCurrencyTick abbreviates a value the way the Y scale shows it:
// $1.5M, $45K, $750. The magnitude rule applies to the absolute value,
// the sign rides inside the dollar sign.
func FormatCurrencyTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.0fK", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatCurrencyWhole renders whole dollars with US thousands
// separators: 1234.9 -> $1,235.
func FormatCurrencyWhole(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return "$" + sign + string(out)
}

// TooltipLine is the hover text for one dataset point.
func TooltipLine(label string, v float64) string {
	return fmt.Sprintf("%s: %s", label, FormatCurrencyWhole(v))
}

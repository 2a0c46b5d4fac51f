package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	priceJunk    = regexp.MustCompile(`[^0-9,.\-]`)
	thousandsDot = regexp.MustCompile(`\.(\d{3})`)
)

// ParsePrice coerces the price formats the source sheet hands back:
// "8500", "18.000,50", "$ 1.234.567,89". Anything unparseable is 0.
func ParsePrice(raw string) float64 {
	s := priceJunk.ReplaceAllString(raw, "")
	// Periods in front of a 3-digit group are thousands separators; what
	// remains uses the comma as the decimal separator.
	s = thousandsDot.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, ",", ".")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

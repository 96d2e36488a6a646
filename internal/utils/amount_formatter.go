package utils

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatAmount renders amount rounded half away from zero to precision
// decimal places. Infinities and NaN are printed as-is.
func FormatAmount(amount float64, precision int) string {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	if precision < 0 {
		precision = 0
	}

	return decimal.NewFromFloat(amount).StringFixed(int32(precision))
}

// FormatCompact switches to scientific notation once an amount no longer
// fits a table column or would round to zero at precision.
func FormatCompact(amount float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	abs := math.Abs(amount)
	if abs != 0 && (abs >= 1e15 || abs < 0.5*math.Pow10(-precision)) {
		return strconv.FormatFloat(amount, 'e', 6, 64)
	}
	return FormatAmount(amount, precision)
}

package engine

import (
	"math"
	"strconv"
)

// ============================================================================
// VALUE FORMATTING — Axis tick and tooltip callbacks
// ============================================================================
// Inputs are decimal fractions (0.1234 == 12.34%). Every rounding step is
// half away from zero (math.Round).
// ============================================================================

const (
	DefaultPercentPrecision = 0
	DefaultNumberPrecision  = 2
)

// Formatter renders a decimal fraction for display.
type Formatter func(decimal float64) string

// ToPercent renders d as a percentage with exactly fixed decimals.
// ToPercent(0.1234, 2) == "12.34%".
func ToPercent(d float64, fixed int) string {
	pct := math.Round(d*10000) / 100
	return strconv.FormatFloat(unsignedZero(RoundTo(pct, fixed)), 'f', clampPrecision(fixed), 64) + "%"
}

// ToNumber renders d scaled by 100 and rounded to fixed decimals, without
// trailing zeros or suffix. ToNumber(0.5, 2) == "50".
func ToNumber(d float64, fixed int) string {
	return strconv.FormatFloat(unsignedZero(RoundTo(d*100, fixed)), 'f', -1, 64)
}

// PercentFormatter binds ToPercent to a precision.
func PercentFormatter(fixed int) Formatter {
	return func(d float64) string { return ToPercent(d, fixed) }
}

// NumberFormatter binds ToNumber to a precision.
func NumberFormatter(fixed int) Formatter {
	return func(d float64) string { return ToNumber(d, fixed) }
}

// FormatterFor picks the chart's formatter at default precision.
func FormatterFor(isPercentual bool) Formatter {
	if isPercentual {
		return PercentFormatter(DefaultPercentPrecision)
	}
	return NumberFormatter(DefaultNumberPrecision)
}

// RoundTo rounds v to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	decimals = clampPrecision(decimals)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// unsignedZero turns -0 into 0 so tiny negatives print as "0".
func unsignedZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// clampPrecision keeps precision within what a float64 can show.
func clampPrecision(fixed int) int {
	if fixed < 0 {
		return 0
	}
	if fixed > 15 {
		return 15
	}
	return fixed
}

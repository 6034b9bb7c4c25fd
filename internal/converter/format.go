package converter

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"GoldSentinel/internal/model"
)

// FormatLKR renders an LKR amount in the compact dashboard style:
// millions with one decimal, thousands with none, plain below that.
func FormatLKR(value float64) string {
	switch {
	case value >= 1_000_000:
		return "LKR " + Fixed(value/1_000_000, 1) + "M"
	case value >= 1_000:
		return "LKR " + Fixed(value/1_000, 0) + "K"
	default:
		return "LKR " + Fixed(value, 0)
	}
}

// FormatUSD renders a USD amount with two decimals.
func FormatUSD(value float64) string {
	return "$" + Fixed(value, 2)
}

// Format renders an already converted value in the style of its unit.
func Format(value float64, unit model.CurrencyUnit) string {
	switch unit {
	case model.UnitPawn:
		return FormatLKR(value)
	case model.UnitTroyOunce:
		return FormatUSD(value)
	}
	unit.MustValid()
	panic("unreachable")
}

// Fixed formats v with the given number of decimals, rounding half away from
// zero on the exact binary value of v, as toFixed does. 1.15 is stored as
// 1.149999... and so renders "1.1" at one place. Non-finite values render as
// NaN / Infinity.
func Fixed(v float64, places int32) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	// 1100 digits covers the longest exact float64 fraction (1074 digits).
	exact := new(big.Float).SetFloat64(v).Text('f', 1100)
	return decimal.RequireFromString(exact).StringFixed(places)
}

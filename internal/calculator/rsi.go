package calculator

import (
	"errors"

	"github.com/markcheno/go-talib"
)

// RSI computes the Wilder-smoothed relative strength index over period.
// Fewer than period+1 closes yields ErrNotEnoughData. A flat series reads 0.
func RSI(closes []float64, period int) (float64, error) {
	if period < 2 {
		return 0, errors.New("period must be at least 2")
	}
	if len(closes) < period+1 {
		return 0, ErrNotEnoughData
	}
	return last(talib.Rsi(closes, period)), nil
}

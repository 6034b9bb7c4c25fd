package calculator

import (
	"errors"

	"github.com/markcheno/go-talib"

	"GoldSentinel/internal/model"
)

// ErrNotEnoughData is returned when a series is shorter than the window.
var ErrNotEnoughData = errors.New("not enough data")

// SMA computes the simple moving average of the last period prices.
func SMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, ErrNotEnoughData
	}
	return last(talib.Sma(prices, period)), nil
}

// Closes extracts the close of every point.
func Closes(points []model.DailyDataPoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return closes
}

func last(values []float64) float64 {
	return values[len(values)-1]
}

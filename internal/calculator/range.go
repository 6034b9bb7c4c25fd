package calculator

import (
	"math"

	"GoldSentinel/internal/model"
)

// Range returns the highest high and lowest low of the last window points.
// A window of zero or more than the series covers the whole series.
func Range(points []model.DailyDataPoint, window int) (high, low float64, err error) {
	if len(points) == 0 {
		return 0, 0, ErrNotEnoughData
	}
	start := 0
	if window > 0 && window < len(points) {
		start = len(points) - window
	}
	high, low = math.Inf(-1), math.Inf(1)
	for _, p := range points[start:] {
		high = math.Max(high, p.High)
		low = math.Min(low, p.Low)
	}
	return high, low, nil
}

// Position places current within [low, high] as 0..1, clamped. A flat range
// is the midpoint.
func Position(current, high, low float64) float64 {
	if high <= low {
		return 0.5
	}
	return math.Max(0, math.Min(1, (current-low)/(high-low)))
}

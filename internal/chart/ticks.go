package chart

import (
	"math"

	"GoldSentinel/internal/model"
)

// tickSteps maps a minimum value range to the step used for it, largest first.
var tickSteps = []struct {
	minRange float64
	step     float64
}{
	{50_000, 10_000},
	{10_000, 5_000},
	{2_000, 1_000},
	{0, 500},
}

// BuildTickSchedule returns y-axis tick values for the Pawn unit. Candidates
// are every close, the current price when positive, and the converted
// predicted price when given. The result is strictly increasing and positive.
func BuildTickSchedule(points []model.DailyDataPoint, currentPrice float64, predictedPrice *float64) []float64 {
	candidates := make([]float64, 0, len(points)+2)
	for _, p := range points {
		candidates = append(candidates, p.Close)
	}
	if currentPrice > 0 {
		candidates = append(candidates, currentPrice)
	}
	if predictedPrice != nil {
		candidates = append(candidates, *predictedPrice)
	}
	if len(candidates) == 0 {
		return nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range candidates {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	// NaN or Inf candidates cannot produce a finite schedule.
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}

	spread := hi - lo
	step := 0.0
	for _, s := range tickSteps {
		if spread >= s.minRange {
			step = s.step
			break
		}
	}

	ticks := generateTicks(lo, hi, step)
	if len(ticks) < 3 && spread > 0 {
		step = math.Max(100, math.Ceil(spread/50)*10)
		ticks = generateTicks(lo, hi, step)
	}

	out := ticks[:0]
	for _, v := range ticks {
		if v > 0 {
			out = append(out, v)
		}
	}
	return out
}

// MaxTicks bounds the schedule; wider spreads are cut at the top.
const MaxTicks = 1000

func generateTicks(lo, hi, step float64) []float64 {
	start := math.Floor(lo/step) * step
	var ticks []float64
	for i := 0; i < MaxTicks; i++ {
		level := start + float64(i)*step
		if level > hi {
			break
		}
		ticks = append(ticks, level)
	}
	return ticks
}

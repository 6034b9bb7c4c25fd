package chart

import (
	"GoldSentinel/internal/converter"
	"GoldSentinel/internal/model"
)

// ConvertSeries expresses every OHLC price of points in unit. Date and volume
// are kept verbatim. The input slice is never modified.
func ConvertSeries(points []model.DailyDataPoint, unit model.CurrencyUnit, usdToLkrRate float64) []model.DailyDataPoint {
	switch unit {
	case model.UnitTroyOunce:
		return points
	case model.UnitPawn:
	default:
		unit.MustValid()
	}

	out := make([]model.DailyDataPoint, len(points))
	for i, p := range points {
		out[i] = model.DailyDataPoint{
			Date:   p.Date,
			Open:   converter.ToPawn(p.Open, usdToLkrRate).Price,
			High:   converter.ToPawn(p.High, usdToLkrRate).Price,
			Low:    converter.ToPawn(p.Low, usdToLkrRate).Price,
			Close:  converter.ToPawn(p.Close, usdToLkrRate).Price,
			Volume: p.Volume,
		}
	}
	return out
}

// MergeLivePrice returns a copy of points whose last close is the live price.
// livePrice is USD per Troy Ounce, so merging must happen before conversion.
// A nil or zero live price, or an empty series, returns points unchanged.
func MergeLivePrice(points []model.DailyDataPoint, livePrice *float64) []model.DailyDataPoint {
	if livePrice == nil || *livePrice == 0 || len(points) == 0 {
		return points
	}
	out := make([]model.DailyDataPoint, len(points))
	copy(out, points)
	out[len(out)-1].Close = *livePrice
	return out
}

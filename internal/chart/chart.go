// Package chart derives plot traces, axis ticks and annotations for the
// price chart from polled API snapshots. Everything here is pure.
package chart

import (
	"errors"

	"GoldSentinel/internal/converter"
	"GoldSentinel/internal/model"
)

// ErrNoData is returned when there is no series to draw.
var ErrNoData = errors.New("no data available")

// Input is one render's worth of chart data.
type Input struct {
	// Points must already be merged with the live price and converted to Unit.
	Points []model.DailyDataPoint
	// Prediction and HistoricalPredictions are in USD per Troy Ounce.
	Prediction            *model.Prediction
	HistoricalPredictions []model.HistoricalPrediction
	// LivePrice is USD per Troy Ounce; nil when no real-time quote is known.
	LivePrice *float64
	Unit      model.CurrencyUnit
	Rate      float64
}

// Chart is everything the renderer needs for one frame.
type Chart struct {
	Traces       []Trace `json:"traces"`
	Layout       Layout  `json:"layout"`
	CurrentPrice float64 `json:"current_price"`
}

// Build assembles traces and layout. It returns ErrNoData for an empty series.
func Build(in Input) (*Chart, error) {
	traces, err := BuildTraces(in)
	if err != nil {
		return nil, err
	}
	current := CurrentPrice(in)
	return &Chart{
		Traces:       traces,
		Layout:       BuildLayout(in, current),
		CurrentPrice: current,
	}, nil
}

// CurrentPrice is the live price converted to the display unit when one is
// known, else the last close, else zero.
func CurrentPrice(in Input) float64 {
	if in.LivePrice != nil && *in.LivePrice != 0 {
		return converter.ConvertValue(*in.LivePrice, in.Unit, in.Rate)
	}
	if len(in.Points) > 0 {
		return in.Points[len(in.Points)-1].Close
	}
	return 0
}

// predicted returns the prediction date and converted price, if any.
func predicted(in Input) (string, float64, bool) {
	if in.Prediction == nil || in.Prediction.PredictedPrice == 0 {
		return "", 0, false
	}
	return in.Prediction.NextDay, converter.ConvertValue(in.Prediction.PredictedPrice, in.Unit, in.Rate), true
}

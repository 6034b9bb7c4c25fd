package recorder

import (
	"context"
	"time"
)

// PriceTick is one observed gold price in USD per Troy Ounce.
type PriceTick struct {
	Source string // "realtime" or "daily"
	Symbol string
	Price  float64
	At     time.Time
}

// RateEvent is one observed exchange rate.
type RateEvent struct {
	From string
	To   string
	Rate float64
	At   time.Time
}

// PredictionEvent is a next-day forecast as first seen, with the model
// accuracy reported alongside it.
type PredictionEvent struct {
	NextDay         string    `json:"next_day"`
	PredictedPrice  float64   `json:"predicted_price"`
	CurrentPrice    float64   `json:"current_price"`
	Method          string    `json:"method"`
	R2Score         float64   `json:"r2_score"`
	AverageAccuracy float64   `json:"average_accuracy"`
	At              time.Time `json:"at"`
}

// Recorder persists polled data for later analysis.
type Recorder interface {
	RecordPriceTick(t *PriceTick) error
	RecordExchangeRate(evt *RateEvent) error
	RecordPrediction(evt *PredictionEvent) error
	// RecentPredictions returns up to limit forecasts, latest day first.
	RecentPredictions(ctx context.Context, limit int) ([]PredictionEvent, error)
	Close() error
}

package collector

import (
	"context"

	"GoldSentinel/internal/model"
)

// Fetcher defines the interface for fetching data from the prediction API.
type Fetcher interface {
	FetchDailyData(ctx context.Context) (*model.DailyDataResponse, error)
	FetchRealtimePrice(ctx context.Context) (*model.RealtimePriceResponse, error)
	FetchExchangeRate(ctx context.Context, from, to string) (*model.ExchangeRateResponse, error)
	FetchExplanation(ctx context.Context) (*model.PredictionExplanation, error)
	Name() string
}

// PriceSource supplies only the real-time price.
type PriceSource interface {
	FetchRealtimePrice(ctx context.Context) (*model.RealtimePriceResponse, error)
	Name() string
}

package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"GoldSentinel/internal/model"
)

// ErrUpstreamStatus is wrapped by every non-2xx response from the API.
var ErrUpstreamStatus = errors.New("unexpected upstream status")

// APIFetcher implements Fetcher against the gold prediction REST API.
type APIFetcher struct {
	client *resty.Client
}

// NewAPIFetcher creates a fetcher with optional proxy support.
func NewAPIFetcher(baseURL string, timeout time.Duration, proxyURL string) *APIFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &APIFetcher{client: client}
}

func (f *APIFetcher) Name() string { return "prediction-api" }

func (f *APIFetcher) FetchDailyData(ctx context.Context) (*model.DailyDataResponse, error) {
	var out model.DailyDataResponse
	if err := f.get(ctx, "/xauusd", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch daily data: %w", err)
	}
	return &out, nil
}

func (f *APIFetcher) FetchRealtimePrice(ctx context.Context) (*model.RealtimePriceResponse, error) {
	var out model.RealtimePriceResponse
	if err := f.get(ctx, "/xauusd/realtime", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch realtime price: %w", err)
	}
	return &out, nil
}

func (f *APIFetcher) FetchExchangeRate(ctx context.Context, from, to string) (*model.ExchangeRateResponse, error) {
	var out model.ExchangeRateResponse
	params := map[string]string{"from": from, "to": to}
	if err := f.get(ctx, "/exchange-rate/{from}/{to}", params, &out); err != nil {
		return nil, fmt.Errorf("fetch exchange rate %s/%s: %w", from, to, err)
	}
	return &out, nil
}

func (f *APIFetcher) FetchExplanation(ctx context.Context) (*model.PredictionExplanation, error) {
	var out model.PredictionExplanation
	if err := f.get(ctx, "/xauusd/explanation", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch explanation: %w", err)
	}
	return &out, nil
}

func (f *APIFetcher) get(ctx context.Context, path string, params map[string]string, out interface{}) error {
	req := f.client.R().SetContext(ctx).SetResult(out)
	if params != nil {
		req.SetPathParams(params)
	}
	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %d, body: %s", ErrUpstreamStatus, resp.StatusCode(), resp.String())
	}
	return nil
}

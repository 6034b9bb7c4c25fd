package collector

import (
	"context"
	"sync"
	"time"

	"GoldSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	mu sync.Mutex

	Daily       *model.DailyDataResponse
	Realtime    *model.RealtimePriceResponse
	Rate        *model.ExchangeRateResponse
	Explanation *model.PredictionExplanation
	Err         error

	Calls map[string]int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) record(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[name]++
	return m.Err
}

// CallCount reports how many times the named fetch ran.
func (m *MockFetcher) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[name]
}

func (m *MockFetcher) FetchDailyData(_ context.Context) (*model.DailyDataResponse, error) {
	if err := m.record("daily"); err != nil {
		return nil, err
	}
	if m.Daily != nil {
		return m.Daily, nil
	}
	return GenerateMockDaily(2000, 30), nil
}

func (m *MockFetcher) FetchRealtimePrice(_ context.Context) (*model.RealtimePriceResponse, error) {
	if err := m.record("realtime"); err != nil {
		return nil, err
	}
	if m.Realtime != nil {
		return m.Realtime, nil
	}
	return &model.RealtimePriceResponse{Symbol: "XAUUSD", CurrentPrice: 2000, Status: model.StatusSuccess}, nil
}

func (m *MockFetcher) FetchExchangeRate(_ context.Context, from, to string) (*model.ExchangeRateResponse, error) {
	if err := m.record("exchange_rate"); err != nil {
		return nil, err
	}
	if m.Rate != nil {
		return m.Rate, nil
	}
	return &model.ExchangeRateResponse{FromCurrency: from, ToCurrency: to, ExchangeRate: 300, Status: model.StatusSuccess}, nil
}

func (m *MockFetcher) FetchExplanation(_ context.Context) (*model.PredictionExplanation, error) {
	if err := m.record("explanation"); err != nil {
		return nil, err
	}
	if m.Explanation != nil {
		return m.Explanation, nil
	}
	return &model.PredictionExplanation{OverallSentiment: model.ImpactNeutral}, nil
}

// GenerateMockDaily builds a gently rising daily series ending yesterday with
// a prediction for today.
func GenerateMockDaily(basePrice float64, count int) *model.DailyDataResponse {
	now := time.Now().UTC()
	points := make([]model.DailyDataPoint, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		points[i] = model.DailyDataPoint{
			Date:   now.AddDate(0, 0, -(count - i)).Format("2006-01-02"),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	last := points[count-1].Close
	return &model.DailyDataResponse{
		Symbol:       "XAUUSD",
		Timeframe:    "daily",
		Data:         points,
		CurrentPrice: last,
		Prediction: &model.Prediction{
			NextDay:          now.Format("2006-01-02"),
			PredictedPrice:   last * 1.002,
			CurrentPrice:     last,
			PredictionMethod: "Lasso Regression",
		},
		Timestamp: now.Format(time.RFC3339),
		Status:    model.StatusSuccess,
	}
}

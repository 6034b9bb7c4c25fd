package model

// DailyDataPoint is one trading day of XAU/USD. Prices are USD per Troy Ounce
// as delivered by the prediction API.
type DailyDataPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Prediction is the active next-day forecast.
type Prediction struct {
	NextDay          string  `json:"next_day"`
	PredictedPrice   float64 `json:"predicted_price"`
	CurrentPrice     float64 `json:"current_price"`
	PredictionMethod string  `json:"prediction_method"`
}

// HistoricalPrediction is a past forecast, evaluated or not.
type HistoricalPrediction struct {
	Date           string   `json:"date"`
	PredictedPrice float64  `json:"predicted_price"`
	ActualPrice    *float64 `json:"actual_price,omitempty"`
}

// AccuracyStats summarises how past predictions performed.
type AccuracyStats struct {
	AverageAccuracy      float64 `json:"average_accuracy"`
	R2Score              float64 `json:"r2_score"`
	TotalPredictions     int     `json:"total_predictions"`
	EvaluatedPredictions int     `json:"evaluated_predictions"`
}

// DailyDataResponse is the payload of GET /xauusd.
type DailyDataResponse struct {
	Symbol                string                 `json:"symbol"`
	Timeframe             string                 `json:"timeframe"`
	Data                  []DailyDataPoint       `json:"data"`
	HistoricalPredictions []HistoricalPrediction `json:"historical_predictions"`
	AccuracyStats         AccuracyStats          `json:"accuracy_stats"`
	CurrentPrice          float64                `json:"current_price"`
	Prediction            *Prediction            `json:"prediction,omitempty"`
	Timestamp             string                 `json:"timestamp"`
	Status                string                 `json:"status"`
	Message               string                 `json:"message,omitempty"`
}

// RealtimePriceResponse is the payload of GET /xauusd/realtime.
type RealtimePriceResponse struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	Timestamp    string  `json:"timestamp"`
	Status       string  `json:"status"`
	Message      string  `json:"message,omitempty"`
}

// ExchangeRateResponse is the payload of GET /exchange-rate/{from}/{to}.
type ExchangeRateResponse struct {
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
	ExchangeRate float64 `json:"exchange_rate"`
	Timestamp    string  `json:"timestamp"`
	Status       string  `json:"status"`
	Message      string  `json:"message,omitempty"`
}

// StatusSuccess is the status value the API reports for a usable payload.
const StatusSuccess = "success"

// Package dashboard turns a feed snapshot into everything the dashboard page
// shows for one display unit.
package dashboard

import (
	"errors"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"GoldSentinel/internal/calculator"
	"GoldSentinel/internal/chart"
	"GoldSentinel/internal/converter"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/snapshot"
)

// Status is the page state.
type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusNoData  Status = "no_data"
	StatusOK      Status = "ok"
)

const (
	// FallbackExchangeRate is used until a USD/LKR rate has been fetched.
	FallbackExchangeRate = 300.0
	// DefaultMethod labels predictions that do not name their method.
	DefaultMethod = "Lasso Regression"

	ErrorMessage  = "Unable to fetch data. Please check if the backend is running."
	NoDataMessage = "No data available"

	goodR2 = 0.7
)

// Options tune Build.
type Options struct {
	DefaultRate float64
	Now         func() time.Time
}

// ExpectedChange is the move from the current price to the prediction.
type ExpectedChange struct {
	Change   float64 `json:"change"`
	Percent  float64 `json:"percent"`
	Positive bool    `json:"positive"`
	Text     string  `json:"text"`
}

// Accuracy is the model accuracy panel.
type Accuracy struct {
	AverageAccuracy float64 `json:"average_accuracy"`
	R2Score         float64 `json:"r2_score"`
	R2Text          string  `json:"r2_text"`
	Rating          string  `json:"rating"`
	Total           int     `json:"total"`
	Evaluated       int     `json:"evaluated"`
	Pending         int     `json:"pending"`
}

// Explanation is the sentiment panel with its price in the display unit.
type Explanation struct {
	*model.PredictionExplanation
	Price model.ConvertedPrice `json:"price"`
}

// View is the full dashboard state for one unit.
type View struct {
	Status       Status             `json:"status"`
	Message      string             `json:"message,omitempty"`
	Unit         model.CurrencyUnit `json:"unit"`
	ExchangeRate float64            `json:"exchange_rate"`
	RateFallback bool               `json:"rate_fallback"`

	LivePrice      model.ConvertedPrice  `json:"live_price"`
	Prediction     *model.ConvertedPrice `json:"prediction,omitempty"`
	PredictionDate string                `json:"prediction_date,omitempty"`
	ExpectedChange *ExpectedChange       `json:"expected_change,omitempty"`
	Method         string                `json:"method,omitempty"`

	Accuracy    *Accuracy         `json:"accuracy,omitempty"`
	Explanation *Explanation      `json:"explanation,omitempty"`
	Stats       *calculator.Stats `json:"stats,omitempty"`

	Chart  *chart.Chart `json:"chart,omitempty"`
	NoData bool         `json:"no_data"`

	UpdatedAt  time.Time `json:"updated_at"`
	UpdatedAgo string    `json:"updated_ago,omitempty"`
}

// Build derives the view. unit must be a valid unit.
func Build(snap snapshot.Snapshot, unit model.CurrencyUnit, opts Options) View {
	unit.MustValid()
	if opts.DefaultRate <= 0 {
		opts.DefaultRate = FallbackExchangeRate
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	rate, fallback := ExchangeRate(snap, opts.DefaultRate)
	v := View{Unit: unit, ExchangeRate: rate, RateFallback: fallback}

	switch {
	case snap.Daily == nil && snap.Err(snapshot.FeedDaily) == nil:
		v.Status = StatusLoading
		return v
	case snap.Err(snapshot.FeedDaily) != nil:
		v.Status = StatusError
		v.Message = ErrorMessage
		return v
	case snap.Daily == nil || snap.Daily.Status != model.StatusSuccess:
		v.Status = StatusNoData
		v.Message = NoDataMessage
		return v
	}
	v.Status = StatusOK
	daily := snap.Daily

	current := CurrentPriceUSD(snap)
	v.LivePrice = converter.Convert(current, unit, rate)

	if p := daily.Prediction; p != nil && p.PredictedPrice != 0 {
		pred := converter.Convert(p.PredictedPrice, unit, rate)
		v.Prediction = &pred
		v.PredictionDate = p.NextDay
		v.ExpectedChange = expectedChange(v.LivePrice.Price, pred.Price, unit)
		v.Method = p.PredictionMethod
		if v.Method == "" {
			v.Method = DefaultMethod
		}
	}

	v.Accuracy = accuracy(daily.AccuracyStats)

	if e := snap.Explanation; e != nil {
		v.Explanation = &Explanation{
			PredictionExplanation: e,
			Price:                 converter.Convert(e.CurrentPrice, unit, rate),
		}
	}

	in := chart.Input{
		Points:                Series(snap, unit, rate),
		Prediction:            daily.Prediction,
		HistoricalPredictions: daily.HistoricalPredictions,
		LivePrice:             LivePrice(snap),
		Unit:                  unit,
		Rate:                  rate,
	}
	c, err := chart.Build(in)
	if errors.Is(err, chart.ErrNoData) {
		v.NoData = true
	} else {
		v.Chart = c
	}
	v.Stats = calculator.Compute(in.Points, chart.CurrentPrice(in))

	if at, ok := snap.UpdatedAt[snapshot.FeedDaily]; ok {
		v.UpdatedAt = at
		v.UpdatedAgo = humanize.RelTime(at, opts.Now(), "ago", "from now")
	}
	return v
}

// ExchangeRate returns the fetched USD/LKR rate, or def and true when none is
// known yet.
func ExchangeRate(snap snapshot.Snapshot, def float64) (float64, bool) {
	if snap.ExchangeRate != nil && snap.ExchangeRate.ExchangeRate != 0 {
		return snap.ExchangeRate.ExchangeRate, false
	}
	return def, true
}

// LivePrice returns the real-time quote in USD when one is known.
func LivePrice(snap snapshot.Snapshot) *float64 {
	if snap.Realtime == nil || snap.Realtime.CurrentPrice == 0 {
		return nil
	}
	p := snap.Realtime.CurrentPrice
	return &p
}

// Series is the daily series with the live price merged in, converted to unit.
func Series(snap snapshot.Snapshot, unit model.CurrencyUnit, rate float64) []model.DailyDataPoint {
	if snap.Daily == nil {
		return nil
	}
	return chart.ConvertSeries(chart.MergeLivePrice(snap.Daily.Data, LivePrice(snap)), unit, rate)
}

// CurrentPriceUSD prefers the real-time quote, then the daily payload's price.
func CurrentPriceUSD(snap snapshot.Snapshot) float64 {
	if snap.Realtime != nil && snap.Realtime.CurrentPrice != 0 {
		return snap.Realtime.CurrentPrice
	}
	if snap.Daily != nil {
		return snap.Daily.CurrentPrice
	}
	return 0
}

func expectedChange(current, predicted float64, unit model.CurrencyUnit) *ExpectedChange {
	change := predicted - current
	pct := 0.0
	if current > 0 {
		pct = change / current * 100
	}

	arrow, symbol, places := "↘", "$", int32(2)
	if change >= 0 {
		arrow = "↗"
	}
	if unit == model.UnitPawn {
		symbol, places = "LKR ", 0
	}
	sign := ""
	if pct >= 0 {
		sign = "+"
	}

	return &ExpectedChange{
		Change:   change,
		Percent:  pct,
		Positive: change >= 0,
		Text: arrow + " " + symbol + converter.Fixed(math.Abs(change), places) +
			" (" + sign + converter.Fixed(pct, 2) + "%)",
	}
}

func accuracy(s model.AccuracyStats) *Accuracy {
	a := &Accuracy{
		AverageAccuracy: s.AverageAccuracy,
		R2Score:         s.R2Score,
		R2Text:          "N/A",
		Rating:          "N/A",
		Total:           s.TotalPredictions,
		Evaluated:       s.EvaluatedPredictions,
		Pending:         s.TotalPredictions - s.EvaluatedPredictions,
	}
	if s.R2Score != 0 {
		a.R2Text = converter.Fixed(s.R2Score, 3)
		a.Rating = "Bad"
		if s.R2Score >= goodR2 {
			a.Rating = "Good"
		}
	}
	return a
}

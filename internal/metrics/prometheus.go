package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Poll metrics
	PollExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gold_sentinel_poll_total",
			Help: "Total number of feed polls",
		},
		[]string{"feed", "status"}, // status: success|error
	)

	PollDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gold_sentinel_poll_duration_seconds",
			Help:    "Feed poll duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 15},
		},
		[]string{"feed"},
	)

	PollLastSuccess = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gold_sentinel_poll_last_success_timestamp",
			Help: "Unix timestamp of the last successful poll",
		},
		[]string{"feed"},
	)

	// Market metrics
	GoldPrice = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gold_sentinel_price_usd_per_troy_ounce",
			Help: "Latest gold price in USD per Troy Ounce",
		},
	)

	ExchangeRate = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gold_sentinel_exchange_rate",
			Help: "Latest exchange rate",
		},
		[]string{"from", "to"},
	)

	PredictedPrice = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gold_sentinel_predicted_price_usd_per_troy_ounce",
			Help: "Next-day predicted gold price in USD per Troy Ounce",
		},
	)

	// Server metrics
	WebSocketClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gold_sentinel_websocket_clients",
			Help: "Connected dashboard WebSocket clients",
		},
	)
)

var registerOnce sync.Once

// Init registers all metrics with Prometheus. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(PollExecutions)
		prometheus.MustRegister(PollDuration)
		prometheus.MustRegister(PollLastSuccess)

		prometheus.MustRegister(GoldPrice)
		prometheus.MustRegister(ExchangeRate)
		prometheus.MustRegister(PredictedPrice)

		prometheus.MustRegister(WebSocketClients)
	})
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordPoll records one feed poll
func RecordPoll(feed string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	PollExecutions.WithLabelValues(feed, status).Inc()
	PollDuration.WithLabelValues(feed).Observe(duration.Seconds())
	if err == nil {
		PollLastSuccess.WithLabelValues(feed).SetToCurrentTime()
	}
}

package recorder

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func count(t *testing.T, r *SQLiteRecorder, table string) int {
	t.Helper()
	var n int
	require.NoError(t, r.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func TestSQLiteRecorder_PriceTicks(t *testing.T) {
	r := openTestRecorder(t)
	at := time.Unix(1700000000, 0)

	require.NoError(t, r.RecordPriceTick(&PriceTick{Source: "realtime", Symbol: "XAUUSD", Price: 2040.5, At: at}))
	require.NoError(t, r.RecordPriceTick(&PriceTick{Source: "realtime", Symbol: "XAUUSD", Price: 2041}))
	assert.Equal(t, 2, count(t, r, "price_ticks"))

	var ts int64
	var price float64
	require.NoError(t, r.db.QueryRow("SELECT timestamp, price FROM price_ticks ORDER BY id LIMIT 1").Scan(&ts, &price))
	assert.Equal(t, at.Unix(), ts)
	assert.Equal(t, 2040.5, price)
}

func TestSQLiteRecorder_ExchangeRate(t *testing.T) {
	r := openTestRecorder(t)
	require.NoError(t, r.RecordExchangeRate(&RateEvent{From: "USD", To: "LKR", Rate: 299.8}))

	var from, to string
	var rate float64
	require.NoError(t, r.db.QueryRow("SELECT from_currency, to_currency, rate FROM exchange_rates").Scan(&from, &to, &rate))
	assert.Equal(t, "USD", from)
	assert.Equal(t, "LKR", to)
	assert.Equal(t, 299.8, rate)
}

func TestSQLiteRecorder_PredictionUpsert(t *testing.T) {
	r := openTestRecorder(t)

	require.NoError(t, r.RecordPrediction(&PredictionEvent{NextDay: "2024-01-04", PredictedPrice: 2050, Method: "Lasso Regression"}))
	require.NoError(t, r.RecordPrediction(&PredictionEvent{NextDay: "2024-01-04", PredictedPrice: 2055, Method: "Lasso Regression"}))
	require.NoError(t, r.RecordPrediction(&PredictionEvent{NextDay: "2024-01-05", PredictedPrice: 2060}))
	assert.Equal(t, 2, count(t, r, "predictions"))

	var price float64
	require.NoError(t, r.db.QueryRow("SELECT predicted_price FROM predictions WHERE next_day = ?", "2024-01-04").Scan(&price))
	assert.Equal(t, 2055.0, price)
}

func TestSQLiteRecorder_RecentPredictions(t *testing.T) {
	r := openTestRecorder(t)
	at := time.Unix(1700000000, 0)
	for _, day := range []string{"2024-01-03", "2024-01-05", "2024-01-04"} {
		require.NoError(t, r.RecordPrediction(&PredictionEvent{NextDay: day, PredictedPrice: 2050, R2Score: 0.8, At: at}))
	}

	got, err := r.RecentPredictions(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-05", got[0].NextDay)
	assert.Equal(t, "2024-01-04", got[1].NextDay)
	assert.Equal(t, 0.8, got[0].R2Score)
	assert.True(t, got[0].At.Equal(at))
}

func TestSQLiteRecorder_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.RecordPriceTick(&PriceTick{Price: 1}))
	require.NoError(t, r.Close())

	r, err = NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, 1, count(t, r, "price_ticks"))
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordPriceTick(&PriceTick{}))
	assert.NoError(t, r.RecordExchangeRate(&RateEvent{}))
	assert.NoError(t, r.RecordPrediction(&PredictionEvent{}))
	got, err := r.RecentPredictions(context.Background(), 10)
	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, r.Close())
}

package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoldSentinel/internal/model"
)

func series(closes ...float64) []model.DailyDataPoint {
	points := make([]model.DailyDataPoint, len(closes))
	for i, c := range closes {
		points[i] = model.DailyDataPoint{Close: c, High: c + 1, Low: c - 1}
	}
	return points
}

func TestSMA(t *testing.T) {
	ma, err := SMA([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, 4.0, ma)

	_, err = SMA([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, ErrNotEnoughData)

	_, err = SMA([]float64{1, 2}, 0)
	assert.Error(t, err)
}

func TestRSI(t *testing.T) {
	rising := make([]float64, 16)
	falling := make([]float64, 16)
	alternating := make([]float64, 15)
	flat := make([]float64, 15)
	for i := range rising {
		rising[i] = float64(100 + i)
		falling[i] = float64(100 - i)
	}
	for i := range alternating {
		alternating[i] = float64(10 + i%2)
		flat[i] = 42
	}

	tests := []struct {
		name   string
		closes []float64
		want   float64
	}{
		{"all gains", rising, 100},
		{"all losses", falling, 0},
		{"balanced", alternating, 50},
		{"flat", flat, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RSI(tt.closes, 14)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	_, err := RSI(rising[:14], 14)
	assert.ErrorIs(t, err, ErrNotEnoughData)

	_, err = RSI(rising, 1)
	assert.Error(t, err)
}

func TestRange(t *testing.T) {
	points := series(10, 30, 20, 15)

	high, low, err := Range(points, 2)
	require.NoError(t, err)
	assert.Equal(t, 21.0, high)
	assert.Equal(t, 14.0, low)

	high, low, err = Range(points, 100)
	require.NoError(t, err)
	assert.Equal(t, 31.0, high)
	assert.Equal(t, 9.0, low)

	_, _, err = Range(nil, 5)
	assert.ErrorIs(t, err, ErrNotEnoughData)
}

func TestPosition(t *testing.T) {
	assert.Equal(t, 0.5, Position(15, 20, 10))
	assert.Equal(t, 0.0, Position(5, 20, 10))
	assert.Equal(t, 1.0, Position(25, 20, 10))
	assert.Equal(t, 0.5, Position(10, 10, 10))
}

func TestCompute(t *testing.T) {
	assert.Nil(t, Compute(nil, 100))

	short := Compute(series(10, 11, 12), 12)
	require.NotNil(t, short)
	assert.Nil(t, short.MA20)
	assert.Nil(t, short.RSI14)
	assert.Equal(t, 13.0, short.High52w)
	assert.Equal(t, 9.0, short.Low52w)
	assert.Equal(t, 0.75, short.Position52w)

	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = float64(100 + i)
	}
	full := Compute(series(closes...), 129)
	require.NotNil(t, full.MA20)
	assert.Equal(t, 119.5, *full.MA20)
	require.NotNil(t, full.RSI14)
	assert.Equal(t, 100.0, *full.RSI14)
	assert.Equal(t, 130.0, full.High30d)
	assert.Equal(t, 107.0, full.Low30d)
}

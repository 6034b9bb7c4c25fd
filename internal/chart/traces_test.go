package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoldSentinel/internal/converter"
	"GoldSentinel/internal/model"
)

func traceNames(traces []Trace) []string {
	names := make([]string, len(traces))
	for i, t := range traces {
		names[i] = t.Name
	}
	return names
}

func findTrace(traces []Trace, name string) (Trace, bool) {
	for _, t := range traces {
		if t.Name == name {
			return t, true
		}
	}
	return Trace{}, false
}

func TestBuildTraces_EmptyInputSignalsNoData(t *testing.T) {
	traces, err := BuildTraces(Input{Unit: model.UnitPawn, Rate: 300})
	assert.Nil(t, traces)
	assert.True(t, errors.Is(err, ErrNoData))

	c, err := Build(Input{Points: []model.DailyDataPoint{}, Unit: model.UnitTroyOunce})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBuildTraces_PriceAndCurrentOnly(t *testing.T) {
	in := Input{Points: samplePoints(), Unit: model.UnitTroyOunce, Rate: 300}

	traces, err := BuildTraces(in)
	require.NoError(t, err)
	assert.Equal(t, []string{TracePrice, TraceCurrent, TraceCurrentLevel}, traceNames(traces))

	price := traces[0]
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, price.X)
	assert.Equal(t, []float64{2063, 2058, 2042}, price.Y)
	assert.Equal(t, []string{"$2063.00", "$2058.00", "$2042.00"}, price.CustomData)

	current := traces[1]
	assert.Equal(t, []string{"2024-01-03"}, current.X)
	assert.Equal(t, []float64{2042}, current.Y)

	level := traces[2]
	assert.Equal(t, []string{"2024-01-01", "2024-01-03"}, level.X)
	assert.Equal(t, []float64{2042, 2042}, level.Y)
	assert.False(t, level.ShowLegend)
}

func TestBuildTraces_FullOrder(t *testing.T) {
	live := 2050.0
	in := Input{
		Points: samplePoints(),
		Prediction: &model.Prediction{
			NextDay: "2024-01-04", PredictedPrice: 2071, CurrentPrice: 2050, PredictionMethod: "Lasso Regression",
		},
		HistoricalPredictions: []model.HistoricalPrediction{
			{Date: "2024-01-02", PredictedPrice: 2055},
			{Date: "2024-01-03", PredictedPrice: 0},
		},
		LivePrice: &live,
		Unit:      model.UnitTroyOunce,
		Rate:      300,
	}

	traces, err := BuildTraces(in)
	require.NoError(t, err)
	assert.Equal(t, []string{
		TracePrice, TraceAccuracy, TraceFuture, TraceCurrent, TraceCurrentLevel, TracePrediction, TracePredictionLevel,
	}, traceNames(traces))

	acc, _ := findTrace(traces, TraceAccuracy)
	assert.Equal(t, []string{"2024-01-02"}, acc.X, "unpriced historical entries are skipped")

	cur, _ := findTrace(traces, TraceCurrent)
	assert.Equal(t, []float64{2050}, cur.Y, "live price wins over last close")

	pred, _ := findTrace(traces, TracePrediction)
	assert.Equal(t, []string{"2024-01-03", "2024-01-04"}, pred.X)
	assert.Equal(t, []float64{2050, 2071}, pred.Y)

	lvl, _ := findTrace(traces, TracePredictionLevel)
	assert.Equal(t, []string{"2024-01-01", "2024-01-04"}, lvl.X)
	assert.Equal(t, []float64{2071, 2071}, lvl.Y)
	assert.False(t, lvl.ShowLegend)
}

func TestBuildTraces_DuplicateDateSuppressesFuture(t *testing.T) {
	in := Input{
		Points:                samplePoints(),
		Prediction:            &model.Prediction{NextDay: "2024-01-05", PredictedPrice: 2000},
		HistoricalPredictions: []model.HistoricalPrediction{{Date: "2024-01-05", PredictedPrice: 2000}},
		Unit:                  model.UnitTroyOunce,
		Rate:                  300,
	}

	traces, err := BuildTraces(in)
	require.NoError(t, err)
	_, found := findTrace(traces, TraceFuture)
	assert.False(t, found)

	// The prediction connector and level still render.
	_, found = findTrace(traces, TracePrediction)
	assert.True(t, found)
	_, found = findTrace(traces, TracePredictionLevel)
	assert.True(t, found)
}

func TestBuildTraces_ZeroPredictionIsAbsent(t *testing.T) {
	in := Input{
		Points:     samplePoints(),
		Prediction: &model.Prediction{NextDay: "2024-01-04"},
		Unit:       model.UnitTroyOunce,
	}
	traces, err := BuildTraces(in)
	require.NoError(t, err)
	assert.Equal(t, []string{TracePrice, TraceCurrent, TraceCurrentLevel}, traceNames(traces))
}

func TestBuildTraces_PawnConvertsPredictions(t *testing.T) {
	rate := 300.0
	live := 2050.0
	in := Input{
		Points:                ConvertSeries(MergeLivePrice(samplePoints(), &live), model.UnitPawn, rate),
		Prediction:            &model.Prediction{NextDay: "2024-01-04", PredictedPrice: 2071},
		HistoricalPredictions: []model.HistoricalPrediction{{Date: "2024-01-02", PredictedPrice: 2055}},
		LivePrice:             &live,
		Unit:                  model.UnitPawn,
		Rate:                  rate,
	}

	traces, err := BuildTraces(in)
	require.NoError(t, err)

	want := converter.ToPawn(2050, rate).Price
	cur, _ := findTrace(traces, TraceCurrent)
	assert.InDelta(t, want, cur.Y[0], 1e-9)
	price := traces[0]
	assert.InDelta(t, want, price.Y[len(price.Y)-1], 1e-9, "merged close equals current price")

	acc, _ := findTrace(traces, TraceAccuracy)
	assert.InDelta(t, converter.ToPawn(2055, rate).Price, acc.Y[0], 1e-9)
	assert.Equal(t, []string{converter.FormatLKR(acc.Y[0])}, acc.CustomData)

	fut, _ := findTrace(traces, TraceFuture)
	assert.InDelta(t, converter.ToPawn(2071, rate).Price, fut.Y[0], 1e-9)
}

func TestCurrentPrice(t *testing.T) {
	pts := samplePoints()
	zero := 0.0
	live := 2100.0

	assert.Equal(t, 2042.0, CurrentPrice(Input{Points: pts, Unit: model.UnitTroyOunce}))
	assert.Equal(t, 2042.0, CurrentPrice(Input{Points: pts, LivePrice: &zero, Unit: model.UnitTroyOunce}))
	assert.Equal(t, 2100.0, CurrentPrice(Input{Points: pts, LivePrice: &live, Unit: model.UnitTroyOunce}))
	assert.Equal(t, 0.0, CurrentPrice(Input{Unit: model.UnitPawn, Rate: 300}))
}

func TestBuildLayout(t *testing.T) {
	t.Run("troy ounce uses automatic ticks", func(t *testing.T) {
		in := Input{Points: samplePoints(), Unit: model.UnitTroyOunce}
		l := BuildLayout(in, CurrentPrice(in))
		assert.Equal(t, "auto", l.YAxis.TickMode)
		assert.Empty(t, l.YAxis.TickVals)
		require.Len(t, l.Annotations, 1)
		assert.Equal(t, "2024-01-03", l.Annotations[0].X)
		assert.Equal(t, "$2042.00", l.Annotations[0].Text)
	})

	t.Run("pawn uses tick schedule and anchors at prediction", func(t *testing.T) {
		rate := 300.0
		in := Input{
			Points:     ConvertSeries(samplePoints(), model.UnitPawn, rate),
			Prediction: &model.Prediction{NextDay: "2024-01-04", PredictedPrice: 2071},
			Unit:       model.UnitPawn,
			Rate:       rate,
		}
		current := CurrentPrice(in)
		l := BuildLayout(in, current)

		pred := converter.ToPawn(2071, rate).Price
		assert.Equal(t, "array", l.YAxis.TickMode)
		assert.Equal(t, " LKR", l.YAxis.TickSuffix)
		assert.Equal(t, BuildTickSchedule(in.Points, current, &pred), l.YAxis.TickVals)
		assert.Len(t, l.YAxis.TickText, len(l.YAxis.TickVals))

		require.Len(t, l.Annotations, 2)
		assert.Equal(t, "2024-01-04", l.Annotations[0].X)
		assert.Equal(t, current, l.Annotations[0].Y)
		assert.Equal(t, "2024-01-04", l.Annotations[1].X)
		assert.Equal(t, converter.FormatLKR(pred), l.Annotations[1].Text)
	})
}

func TestTickLabels(t *testing.T) {
	assert.Equal(t, []string{"158,000", "1,000,000"}, tickLabels([]float64{158_000, 1_000_000}))
	assert.Nil(t, tickLabels(nil))
}

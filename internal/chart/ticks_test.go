package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"GoldSentinel/internal/model"
)

func closes(vals ...float64) []model.DailyDataPoint {
	pts := make([]model.DailyDataPoint, len(vals))
	for i, v := range vals {
		pts[i] = model.DailyDataPoint{Close: v}
	}
	return pts
}

func ptr(v float64) *float64 { return &v }

func TestBuildTickSchedule_StepThresholds(t *testing.T) {
	tests := []struct {
		name      string
		points    []model.DailyDataPoint
		current   float64
		predicted *float64
		want      []float64
	}{
		{
			name:   "range 2500 uses 1000 step",
			points: closes(1000, 2200, 3500),
			want:   []float64{1000, 2000, 3000},
		},
		{
			name:   "range 12000 uses 5000 step",
			points: closes(601_000, 613_000),
			want:   []float64{600_000, 605_000, 610_000},
		},
		{
			name:   "range 60000 uses 10000 step",
			points: closes(612_000, 672_000),
			want:   []float64{610_000, 620_000, 630_000, 640_000, 650_000, 660_000, 670_000},
		},
		{
			name:   "range 1500 uses 500 step",
			points: closes(700, 2200),
			want:   []float64{500, 1000, 1500, 2000},
		},
		{
			name:      "current and prediction widen the range",
			points:    closes(1500),
			current:   1200,
			predicted: ptr(3300),
			want:      []float64{1000, 2000, 3000},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildTickSchedule(tt.points, tt.current, tt.predicted))
		})
	}
}

func TestBuildTickSchedule_RefinesSmallRange(t *testing.T) {
	// 500-step gives [1000, 1500]; refinement uses max(100, ceil(400/50)*10) = 100.
	got := BuildTickSchedule(closes(1100, 1500), 0, nil)
	assert.Equal(t, []float64{1100, 1200, 1300, 1400, 1500}, got)
}

func TestBuildTickSchedule_RefinedStepAboveFloor(t *testing.T) {
	// 500-step gives [1000, 1500]; refinement uses ceil(900/50)*10 = 180.
	got := BuildTickSchedule(closes(1050, 1950), 0, nil)
	assert.Equal(t, []float64{900, 1080, 1260, 1440, 1620, 1800}, got)
}

func TestBuildTickSchedule_ZeroRangeNoRefine(t *testing.T) {
	assert.Equal(t, []float64{1000}, BuildTickSchedule(closes(1200), 1200, nil))
}

func TestBuildTickSchedule_DropsNonPositive(t *testing.T) {
	got := BuildTickSchedule(closes(-400, 1500), 0, nil)
	assert.Equal(t, []float64{500, 1000, 1500}, got)
}

func TestBuildTickSchedule_CurrentIgnoredWhenNotPositive(t *testing.T) {
	got := BuildTickSchedule(closes(1000, 3500), -5000, nil)
	assert.Equal(t, []float64{1000, 2000, 3000}, got)
}

func TestBuildTickSchedule_Invariants(t *testing.T) {
	inputs := [][]float64{
		{154_000, 156_500, 158_200, 161_900},
		{140_000, 190_000, 210_000},
		{1_000_000, 1_001_234},
		{9_999, 10_001},
	}
	for _, in := range inputs {
		ticks := BuildTickSchedule(closes(in...), 0, nil)
		if assert.NotEmpty(t, ticks, "input %v", in) {
			for i := 1; i < len(ticks); i++ {
				assert.Greater(t, ticks[i], ticks[i-1])
			}
			for _, v := range ticks {
				assert.Greater(t, v, 0.0)
				assert.LessOrEqual(t, v, in[len(in)-1])
			}
		}
	}
}

func TestBuildTickSchedule_Empty(t *testing.T) {
	assert.Empty(t, BuildTickSchedule(nil, 0, nil))
}

func TestBuildTickSchedule_CapsTickCount(t *testing.T) {
	ticks := BuildTickSchedule(closes(10000, 1e9), 0, nil)
	assert.Len(t, ticks, MaxTicks)
	assert.Equal(t, 10000.0, ticks[1]-ticks[0])

	huge := BuildTickSchedule(closes(1e300, 1.0000001e300), 0, nil)
	assert.LessOrEqual(t, len(huge), MaxTicks)
}

package converter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoldSentinel/internal/model"
)

func TestToPawn_Formula(t *testing.T) {
	got := ToPawn(2000, 300)
	want := 2000 / TroyOunceGrams * PawnGrams * 300

	assert.InDelta(t, want, got.Price, 1e-9)
	assert.Equal(t, "LKR", got.Currency)
	assert.Equal(t, "1 Pawn", got.Unit)
	assert.Equal(t, "LKR 154K", got.DisplayText)
}

func TestToPawn_DisplayThresholds(t *testing.T) {
	// A price of exactly one Troy Ounce in grams makes the result 8*rate.
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{"below thousand", 124.875, "LKR 999"},
		{"thousand rounds half up", 187.5, "LKR 2K"},
		{"exactly thousand", 125, "LKR 1K"},
		{"just below million", 124_999.9, "LKR 1000K"},
		{"exactly million", 125_000, "LKR 1.0M"},
		{"millions", 312_500, "LKR 2.5M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPawn(TroyOunceGrams, tt.rate)
			assert.Equal(t, tt.want, got.DisplayText, "price=%f", got.Price)
		})
	}
}

func TestToTroyOunce_RoundTrip(t *testing.T) {
	prices := []float64{0.01, 1, 31.1035, 1850.25, 2400, 99_999.99}
	rates := []float64{0.5, 1, 300, 325.42, 10_000}

	for _, p := range prices {
		for _, r := range rates {
			lkr := ToPawn(p, r).Price
			back := ToTroyOunce(lkr, r)
			assert.InEpsilon(t, p, back.Price, 1e-12, "price=%v rate=%v", p, r)
			assert.Equal(t, "USD", back.Currency)
			assert.Equal(t, "Troy Ounce", back.Unit)
		}
	}
}

func TestToTroyOunce_Display(t *testing.T) {
	got := ToTroyOunce(ToPawn(2345.678, 300).Price, 300)
	assert.Equal(t, "$2345.68", got.DisplayText)
}

func TestToTroyOunce_ZeroRateIsNotGuarded(t *testing.T) {
	got := ToTroyOunce(1000, 0)
	assert.True(t, math.IsInf(got.Price, 1))
	assert.Equal(t, "$Infinity", got.DisplayText)

	got = ToTroyOunce(0, 0)
	assert.True(t, math.IsNaN(got.Price))
	assert.Equal(t, "$NaN", got.DisplayText)
}

func TestToPawn_Monotonic(t *testing.T) {
	rate := 300.0
	prev := ToPawn(0, rate).Price
	for p := 1.0; p < 5000; p += 7.3 {
		cur := ToPawn(p, rate).Price
		require.Greater(t, cur, prev, "price=%v", p)
		prev = cur
	}
}

func TestToPawn_NonPositivePassThrough(t *testing.T) {
	assert.Equal(t, "LKR 0", ToPawn(0, 300).DisplayText)

	neg := ToPawn(-100, 300)
	assert.Less(t, neg.Price, 0.0)
	assert.Equal(t, "LKR -7716", neg.DisplayText)
}

func TestConvert_IdentityPath(t *testing.T) {
	for _, rate := range []float64{0, 1, 300, math.NaN()} {
		got := Convert(1923.456, model.UnitTroyOunce, rate)
		assert.Equal(t, 1923.456, got.Price)
		assert.Equal(t, "USD", got.Currency)
		assert.Equal(t, "Troy Ounce", got.Unit)
		assert.Equal(t, "$1923.46", got.DisplayText)
	}
}

func TestConvert_Pawn(t *testing.T) {
	assert.Equal(t, ToPawn(2000, 310), Convert(2000, model.UnitPawn, 310))
}

func TestConvert_UnknownUnitPanics(t *testing.T) {
	assert.Panics(t, func() {
		Convert(100, model.CurrencyUnit("gram"), 300)
	})
	assert.Panics(t, func() {
		Format(100, model.CurrencyUnit(""))
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$10.50", Format(10.5, model.UnitTroyOunce))
	assert.Equal(t, "LKR 155K", Format(154_580, model.UnitPawn))
}

func TestFormat_BinaryHalfway(t *testing.T) {
	assert.Equal(t, "LKR 1.1M", FormatLKR(1_150_000))
	assert.Equal(t, "LKR 1.4M", FormatLKR(1_450_000))
	assert.Equal(t, "$1.00", FormatUSD(1.005))
}

func TestFixed(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   string
	}{
		{1.5, 0, "2"},
		{2.5, 0, "3"},
		{-1.5, 0, "-2"},
		{1.25, 1, "1.3"},
		{1999.999, 2, "2000.00"},
		{3, 2, "3.00"},
		{1.15, 1, "1.1"},
		{1.45, 1, "1.4"},
		{1.005, 2, "1.00"},
		{-1.005, 2, "-1.00"},
		{0.5, 0, "1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fixed(tt.v, tt.places), "Fixed(%v, %d)", tt.v, tt.places)
	}
}

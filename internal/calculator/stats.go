package calculator

import "GoldSentinel/internal/model"

// Trading-day windows.
const (
	Window30d = 22
	Window52w = 252
	MAPeriod  = 20
	RSIPeriod = 14
)

// Stats summarises a daily series. Prices are in the series' unit; fields
// whose window is not covered stay nil.
type Stats struct {
	MA20        *float64 `json:"ma20,omitempty"`
	RSI14       *float64 `json:"rsi14,omitempty"`
	High30d     float64  `json:"high_30d"`
	Low30d      float64  `json:"low_30d"`
	High52w     float64  `json:"high_52w"`
	Low52w      float64  `json:"low_52w"`
	Position52w float64  `json:"position_52w"`
}

// Compute derives Stats for points relative to current. It returns nil for
// an empty series.
func Compute(points []model.DailyDataPoint, current float64) *Stats {
	if len(points) == 0 {
		return nil
	}
	closes := Closes(points)
	s := &Stats{}
	if ma, err := SMA(closes, MAPeriod); err == nil {
		s.MA20 = &ma
	}
	if rsi, err := RSI(closes, RSIPeriod); err == nil {
		s.RSI14 = &rsi
	}
	s.High30d, s.Low30d, _ = Range(points, Window30d)
	s.High52w, s.Low52w, _ = Range(points, Window52w)
	s.Position52w = Position(current, s.High52w, s.Low52w)
	return s
}

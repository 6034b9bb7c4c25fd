package export

import "GoldSentinel/internal/model"

// Row is one exported trading day in the display unit.
type Row struct {
	Date   string  `json:"date" parquet:"date"`
	Open   float64 `json:"open" parquet:"open"`
	High   float64 `json:"high" parquet:"high"`
	Low    float64 `json:"low" parquet:"low"`
	Close  float64 `json:"close" parquet:"close"`
	Volume float64 `json:"volume" parquet:"volume"`
	Unit   string  `json:"unit" parquet:"unit"`
}

// Rows copies already converted points into export rows.
func Rows(points []model.DailyDataPoint, unit model.CurrencyUnit) []Row {
	rows := make([]Row, len(points))
	for i, p := range points {
		rows[i] = Row{
			Date:   p.Date,
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
			Unit:   string(unit),
		}
	}
	return rows
}

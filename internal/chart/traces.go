package chart

import (
	"GoldSentinel/internal/converter"
	"GoldSentinel/internal/model"
)

// Trace names as shown in the legend.
const (
	TracePrice           = "Gold Price Line"
	TraceAccuracy        = "Accuracy Line"
	TraceFuture          = "Future Prediction"
	TraceCurrent         = "Current Price"
	TraceCurrentLevel    = "Current Price Level"
	TracePrediction      = "Prediction"
	TracePredictionLevel = "Prediction Level"
)

const (
	colorGold            = "#F5D300"
	colorAccuracy        = "#0055ff"
	colorFuture          = "#ff6b35"
	colorPrediction      = "#00fa2e"
	colorPredictionLevel = "#26d4b4"
)

// Mode is the scatter drawing mode.
type Mode string

const (
	ModeLines        Mode = "lines"
	ModeMarkers      Mode = "markers"
	ModeLinesMarkers Mode = "lines+markers"
)

// Line styles a trace's connecting line.
type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Dash  string  `json:"dash,omitempty"`
}

// Marker styles a trace's points.
type Marker struct {
	Color  string `json:"color"`
	Size   int    `json:"size"`
	Symbol string `json:"symbol,omitempty"`
}

// Trace is one scatter series, shaped after the Plotly trace object.
type Trace struct {
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Mode          Mode      `json:"mode"`
	X             []string  `json:"x"`
	Y             []float64 `json:"y"`
	Line          *Line     `json:"line,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	Opacity       float64   `json:"opacity,omitempty"`
	ShowLegend    bool      `json:"showlegend"`
	HoverInfo     string    `json:"hoverinfo,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	CustomData    []string  `json:"customdata,omitempty"`
}

// BuildTraces produces the chart traces in their fixed order: price line,
// accuracy line, future prediction, current price marker, current level,
// then prediction connector and prediction level.
func BuildTraces(in Input) ([]Trace, error) {
	if len(in.Points) == 0 {
		return nil, ErrNoData
	}

	firstDate := in.Points[0].Date
	lastDate := in.Points[len(in.Points)-1].Date
	current := CurrentPrice(in)
	traces := make([]Trace, 0, 7)

	traces = append(traces, priceLine(in.Points, in.Unit))

	if t, ok := accuracyLine(in); ok {
		traces = append(traces, t)
	}

	predDate, predPrice, hasPred := predicted(in)
	if hasPred && !hasHistoricalDate(in.HistoricalPredictions, predDate) {
		traces = append(traces, Trace{
			Name:          TraceFuture,
			Type:          "scatter",
			Mode:          ModeMarkers,
			X:             []string{predDate},
			Y:             []float64{predPrice},
			Marker:        &Marker{Color: colorFuture, Size: 8, Symbol: "diamond"},
			Opacity:       0.8,
			ShowLegend:    true,
			HoverTemplate: "Future Prediction: %{x}<br>Price: " + converter.Format(predPrice, in.Unit) + "<extra></extra>",
		})
	}

	traces = append(traces,
		Trace{
			Name:          TraceCurrent,
			Type:          "scatter",
			Mode:          ModeMarkers,
			X:             []string{lastDate},
			Y:             []float64{current},
			Marker:        &Marker{Color: colorGold, Size: 9},
			ShowLegend:    true,
			HoverTemplate: "Current Price<br>Date: %{x}<br>Price: " + converter.Format(current, in.Unit) + "<extra></extra>",
		},
		Trace{
			Name:      TraceCurrentLevel,
			Type:      "scatter",
			Mode:      ModeLines,
			X:         []string{firstDate, lastDate},
			Y:         []float64{current, current},
			Line:      &Line{Color: colorGold, Width: 1.5, Dash: "dot"},
			HoverInfo: "skip",
		},
	)

	if hasPred {
		traces = append(traces,
			Trace{
				Name:          TracePrediction,
				Type:          "scatter",
				Mode:          ModeLinesMarkers,
				X:             []string{lastDate, predDate},
				Y:             []float64{current, predPrice},
				Line:          &Line{Color: colorPrediction, Width: 2, Dash: "dot"},
				Marker:        &Marker{Color: colorPrediction, Size: 7},
				ShowLegend:    true,
				HoverTemplate: "Prediction Date: %{x}<br>Price: " + converter.Format(predPrice, in.Unit) + "<extra></extra>",
			},
			Trace{
				Name:      TracePredictionLevel,
				Type:      "scatter",
				Mode:      ModeLines,
				X:         []string{firstDate, predDate},
				Y:         []float64{predPrice, predPrice},
				Line:      &Line{Color: colorPredictionLevel, Width: 1.5, Dash: "dot"},
				HoverInfo: "skip",
			},
		)
	}

	return traces, nil
}

func priceLine(points []model.DailyDataPoint, unit model.CurrencyUnit) Trace {
	x := make([]string, len(points))
	y := make([]float64, len(points))
	hover := make([]string, len(points))
	for i, p := range points {
		x[i] = p.Date
		y[i] = p.Close
		hover[i] = converter.Format(p.Close, unit)
	}
	return Trace{
		Name:          TracePrice,
		Type:          "scatter",
		Mode:          ModeLines,
		X:             x,
		Y:             y,
		Line:          &Line{Color: colorGold, Width: 2},
		ShowLegend:    true,
		HoverTemplate: "Date: %{x}<br>Price: %{customdata}<extra></extra>",
		CustomData:    hover,
	}
}

// accuracyLine draws every historical prediction that carries a price.
func accuracyLine(in Input) (Trace, bool) {
	var x []string
	var y []float64
	var hover []string
	for _, hp := range in.HistoricalPredictions {
		if hp.PredictedPrice == 0 {
			continue
		}
		v := converter.ConvertValue(hp.PredictedPrice, in.Unit, in.Rate)
		x = append(x, hp.Date)
		y = append(y, v)
		hover = append(hover, converter.Format(v, in.Unit))
	}
	if len(x) == 0 {
		return Trace{}, false
	}
	return Trace{
		Name:          TraceAccuracy,
		Type:          "scatter",
		Mode:          ModeLinesMarkers,
		X:             x,
		Y:             y,
		Line:          &Line{Color: colorAccuracy, Width: 3, Dash: "solid"},
		Marker:        &Marker{Color: colorAccuracy, Size: 8, Symbol: "circle"},
		Opacity:       0.8,
		ShowLegend:    true,
		HoverTemplate: "Predicted: %{x}<br>Price: %{customdata}<extra></extra>",
		CustomData:    hover,
	}, true
}

// hasHistoricalDate matches against every historical entry, priced or not.
func hasHistoricalDate(history []model.HistoricalPrediction, date string) bool {
	for _, hp := range history {
		if hp.Date == date {
			return true
		}
	}
	return false
}

package chart

import (
	"math"

	"github.com/dustin/go-humanize"

	"GoldSentinel/internal/converter"
	"GoldSentinel/internal/model"
)

// Axis describes the price axis ticking.
type Axis struct {
	TickMode   string    `json:"tickmode"`
	TickVals   []float64 `json:"tickvals,omitempty"`
	TickText   []string  `json:"ticktext,omitempty"`
	TickFormat string    `json:"tickformat"`
	TickSuffix string    `json:"ticksuffix,omitempty"`
	Side       string    `json:"side"`
}

// Annotation is a price label pinned next to the chart's right edge.
type Annotation struct {
	X      string  `json:"x"`
	Y      float64 `json:"y"`
	Text   string  `json:"text"`
	Color  string  `json:"color"`
	XShift int     `json:"xshift"`
}

// Layout holds the unit-dependent parts of the chart layout.
type Layout struct {
	YAxis       Axis         `json:"yaxis"`
	Annotations []Annotation `json:"annotations"`
}

// BuildLayout picks the axis mode for the unit and labels the current and
// predicted price levels. current must come from CurrentPrice(in).
func BuildLayout(in Input, current float64) Layout {
	predDate, predPrice, hasPred := predicted(in)

	var axis Axis
	switch in.Unit {
	case model.UnitPawn:
		var pp *float64
		if hasPred {
			pp = &predPrice
		}
		vals := BuildTickSchedule(in.Points, current, pp)
		axis = Axis{
			TickMode:   "array",
			TickVals:   vals,
			TickText:   tickLabels(vals),
			TickFormat: ",.0f",
			TickSuffix: " LKR",
			Side:       "right",
		}
	case model.UnitTroyOunce:
		axis = Axis{TickMode: "auto", TickFormat: "$,.2f", Side: "right"}
	default:
		in.Unit.MustValid()
	}

	var annotations []Annotation
	anchor := predDate
	if !hasPred && len(in.Points) > 0 {
		anchor = in.Points[len(in.Points)-1].Date
	}
	if anchor != "" {
		annotations = append(annotations, Annotation{
			X: anchor, Y: current, Text: converter.Format(current, in.Unit), Color: colorGold, XShift: 10,
		})
	}
	if hasPred {
		annotations = append(annotations, Annotation{
			X: predDate, Y: predPrice, Text: converter.Format(predPrice, in.Unit), Color: colorPredictionLevel, XShift: 10,
		})
	}

	return Layout{YAxis: axis, Annotations: annotations}
}

// tickLabels renders tick values with thousands separators; the axis adds the suffix.
func tickLabels(vals []float64) []string {
	if len(vals) == 0 {
		return nil
	}
	labels := make([]string, len(vals))
	for i, v := range vals {
		labels[i] = humanize.Comma(int64(math.Round(v)))
	}
	return labels
}

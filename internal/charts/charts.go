// Package charts renders the savings-plan projection as a PNG image.
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"dadops/internal/datemath"
	"dadops/internal/model"
)

// SavingsProjection plots the monthly savings plan from now to the due
// month: the cumulative saved amount per month against the effective cost
// target, starting from cash already on hand.
func SavingsProjection(costs model.CalculatedCosts, due model.DueDate, cashOnHand float64) ([]byte, error) {
	months := costs.MonthsRemaining
	dueTime := datemath.DueTime(model.DueDate{Month: due.Month, Year: due.Year})

	xValues := make([]time.Time, 0, months+1)
	saved := make([]float64, 0, months+1)
	target := make([]float64, 0, months+1)

	balance := cashOnHand
	for i := 0; i <= months; i++ {
		xValues = append(xValues, dueTime.AddDate(0, i-months, 0))
		saved = append(saved, balance)
		target = append(target, costs.EffectiveCost)
		balance += costs.MonthlySavingsTarget
	}

	graph := chart.Chart{
		Width:  900,
		Height: 500,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 40, Right: 40, Bottom: 40},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 06"),
			Style:          chart.Style{FontSize: 11, FontColor: chart.ColorBlack},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("$%.0f", v.(float64))
			},
			Style: chart.Style{FontSize: 11, FontColor: chart.ColorBlack},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Saved",
				XValues: xValues,
				YValues: saved,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "Effective cost",
				XValues: xValues,
				YValues: target,
				Style: chart.Style{
					StrokeColor:     chart.ColorRed,
					StrokeWidth:     2,
					StrokeDashArray: []float64{5, 5},
				},
			},
		},
	}

	graph.Elements = []chart.Renderable{chart.Legend(&graph, chart.Style{
		FillColor:   drawing.ColorWhite,
		FontColor:   chart.ColorBlack,
		StrokeColor: chart.ColorTransparent,
	})}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering savings chart: %w", err)
	}
	return buf.Bytes(), nil
}

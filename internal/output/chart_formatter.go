package output

import (
	"errors"
	"strconv"

	"github.com/vicanso/go-charts/v2"

	"github.com/planwise/retirement-engine/internal/domain"
)

// ChartFormatter renders the year-by-year balance path as a PNG line chart.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string { return "chart" }

func (c ChartFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	records := result.YearlyProjections
	if len(records) < 2 {
		return nil, errors.New("not enough projection years to chart")
	}

	labels := make([]string, len(records))
	balances := make([]float64, len(records))
	var yMin, yMax float64
	for i, yr := range records {
		labels[i] = strconv.Itoa(yr.Year)
		v := yr.Balance.InexactFloat64()
		balances[i] = v
		if i == 0 {
			yMin, yMax = v, v
			continue
		}
		if v < yMin {
			yMin = v
		}
		if v > yMax {
			yMax = v
		}
	}
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad
	split := len(records) / 10
	if split < 5 {
		split = 5
	}

	painter, err := charts.LineRender([][]float64{balances},
		charts.TitleTextOptionFunc("Projected Retirement Balance"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Balance"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

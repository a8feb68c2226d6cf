package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderPriceTrend writes a standalone HTML page with a line chart of the
// cheapest fare per departure-time slot. Labels and prices are parallel
// slices in chronological order.
func RenderPriceTrend(w io.Writer, labels []string, prices []float64, currency string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Price Trend",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cheapest price by departure time",
			Subtitle: fmt.Sprintf("Prices in %s", currency),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	values := make([]opts.LineData, 0, len(prices))
	for _, p := range prices {
		values = append(values, opts.LineData{Value: p})
	}

	line.SetXAxis(labels).AddSeries("Cheapest fare", values,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.2}),
	)

	return line.Render(w)
}

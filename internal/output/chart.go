package output

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartTitle     = "Lines of Code Over Time by Language"
	chartWidth     = "1200px"
	chartHeight    = "600px"
	chartLineWidth = 2
	fullZoomPct    = 100
)

// DefaultChartPath is the chart file written when no path is given.
const DefaultChartPath = "loc_chart.html"

// ChartWriter renders the report as an interactive HTML line chart, one
// series per reported language in column order.
type ChartWriter struct{}

// Write renders the chart to path.
func (w *ChartWriter) Write(report *LOCReport, path string) error {
	line := buildChart(report)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := line.Render(file); err != nil {
		file.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return file.Close()
}

func buildChart(report *LOCReport) *charts.Line {
	subtitle := fmt.Sprintf("%s, %s granularity", report.RepoPath, report.Granularity)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: chartTitle,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Type: "scroll", Top: "bottom"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: fullZoomPct}, opts.DataZoom{Type: "inside"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Lines of Code",
		}),
	)

	labels := make([]string, len(report.Records))
	for i, rec := range report.Records {
		labels[i] = rec.Period
	}
	line.SetXAxis(labels)

	for _, series := range chartSeries(report) {
		line.AddSeries(series.name, series.data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: chartLineWidth}),
		)
	}

	return line
}

type lineSeries struct {
	name string
	data []opts.LineData
}

// chartSeries builds one series per language. Missing values plot as 0.
func chartSeries(report *LOCReport) []lineSeries {
	series := make([]lineSeries, len(report.Languages))
	for i, lang := range report.Languages {
		data := make([]opts.LineData, len(report.Records))
		for j, rec := range report.Records {
			data[j] = opts.LineData{Value: rec.Get(lang)}
		}
		series[i] = lineSeries{name: lang, data: data}
	}
	return series
}

package chart

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/vybenetwork/vybebot/logger"
)

var ErrNoData = errors.New("no data points to draw")

var (
	colorSteelBlue = drawing.ColorFromHex("4682b4")
	colorSkyBlue   = drawing.ColorFromHex("87ceeb")
	colorYellow    = drawing.ColorFromHex("ffd700")
	colorPurple    = drawing.ColorFromHex("800080")
	colorBlue      = drawing.ColorFromHex("1f4fff")
)

const (
	chartHeight = 600
	minWidth    = 1400
)

func barWidthFor(n int) int {
	if n <= 0 {
		return minWidth
	}
	if w := n * 46; w > minWidth {
		return w
	}
	return minWidth
}

// renderBar draws one labelled bar per point, in the style of the text
// summaries that accompany it.
func renderBar(title, yAxisName string, labels []string, values []float64, color drawing.Color) ([]byte, error) {
	if len(values) == 0 || len(labels) != len(values) {
		return nil, ErrNoData
	}

	barStyle := chart.Style{
		FillColor:   color,
		StrokeColor: color,
	}
	bars := make([]chart.Value, 0, len(values))
	for i, v := range values {
		bars = append(bars, chart.Value{Label: labels[i], Value: v, Style: barStyle})
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      barWidthFor(len(bars)),
		Height:     chartHeight,
		BarWidth:   30,
		BarSpacing: 16,
		XAxis: chart.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: chart.YAxis{
			Name: yAxisName,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		log.Error().Err(err).Func(logger.WithCategory(logger.CategoryChart)).Str("title", title).Msg("render bar chart err")
		return nil, err
	}

	return buf.Bytes(), nil
}

// renderLine draws a time series line. A fill color turns it into an
// area chart, a dot width adds point markers.
func renderLine(title, yAxisName, timeFormat string, times []time.Time, values []float64, color, fill drawing.Color, dotWidth float64) ([]byte, error) {
	if len(values) == 0 || len(times) != len(values) {
		return nil, ErrNoData
	}

	series := chart.TimeSeries{
		XValues: times,
		YValues: values,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2.0,
			FillColor:   fill,
			DotColor:    color,
			DotWidth:    dotWidth,
		},
	}

	graph := chart.Chart{
		Title:  title,
		Width:  minWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat(timeFormat),
			Style: chart.Style{
				TextRotationDegrees: 45.0,
			},
		},
		YAxis: chart.YAxis{
			Name: yAxisName,
		},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		log.Error().Err(err).Func(logger.WithCategory(logger.CategoryChart)).Str("title", title).Msg("render line chart err")
		return nil, err
	}

	return buf.Bytes(), nil
}

func ActiveUsersPNG(programName, timeRange string, labels []string, values []float64) ([]byte, error) {
	title := fmt.Sprintf("Active Users Over %s | %s", timeRange, programName)
	return renderBar(title, "Active Users", labels, values, colorSteelBlue)
}

// TransactionsPNG keeps the title flexible: callers announce hourly or
// daily buckets depending on the requested range.
func TransactionsPNG(title string, labels []string, values []float64) ([]byte, error) {
	return renderBar(title, "Transaction Count", labels, values, colorYellow)
}

func HoldersPNG(startDate, endDate string, labels []string, values []float64) ([]byte, error) {
	title := fmt.Sprintf("Holders Count (%s → %s)", startDate, endDate)
	return renderBar(title, "Holders", labels, values, colorPurple)
}

func BalancesPNG(wallet string, labels []string, values []float64) ([]byte, error) {
	short := wallet
	if len(short) > 6 {
		short = short[:6]
	}
	title := fmt.Sprintf("Token Value Over Time • %s...", short)
	return renderBar(title, "Token Value (USD)", labels, values, colorSkyBlue)
}

func TvlPNG(programName, resolution string, times []time.Time, values []float64) ([]byte, error) {
	title := fmt.Sprintf("TVL Over Time • %s • %s", programName, resolution)
	return renderLine(title, "TVL (USD)", "2006-01-02 15:04", times, values, colorBlue, drawing.Color{}, 4.0)
}

func TransferVolumePNG(mint, startDate, endDate, interval string, times []time.Time, values []float64) ([]byte, error) {
	title := fmt.Sprintf("Transfer Volume | %s (%s → %s, %s)", mint, startDate, endDate, interval)
	fill := colorSkyBlue.WithAlpha(100)
	return renderLine(title, "Volume", "2006-01-02 15:04", times, values, colorSteelBlue, fill, 0)
}

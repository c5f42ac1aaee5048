package dashboard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfpulse/pkg/contracts/domain"
)

func renderToString(t *testing.T, render func(w *bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render(&buf))
	return buf.String()
}

func TestCountryPieChartRenders(t *testing.T) {
	chart := CountryPieChart(CountryPie(testTable(), domain.FilterState{}))
	html := renderToString(t, func(w *bytes.Buffer) error { return chart.Render(w) })

	assert.Contains(t, html, "Top 10 Countries")
	assert.Contains(t, html, "Germany")
}

func TestTrendChartRenders(t *testing.T) {
	dates, series := ConversionTrend(testTable(), domain.FilterState{})
	chart := TrendChart(dates, series)
	html := renderToString(t, func(w *bytes.Buffer) error { return chart.Render(w) })

	assert.Contains(t, html, "Conversion Trend Over Time")
	assert.Contains(t, html, "2021-01-01")
}

func TestUIElementBarChartRenders(t *testing.T) {
	chart := UIElementBarChart(UIElementBar(testTable(), domain.FilterState{}))
	html := renderToString(t, func(w *bytes.Buffer) error { return chart.Render(w) })

	assert.Contains(t, html, "Top UI Elements")
	assert.Contains(t, html, "signup-button")
}

func TestWorldMapChartRenders(t *testing.T) {
	locate := func(string) (float64, float64, bool) { return 51, 9, true }
	chart := WorldMapChart(WorldBubbles(testTable(), domain.FilterState{}, locate))
	html := renderToString(t, func(w *bytes.Buffer) error { return chart.Render(w) })

	assert.Contains(t, html, "world")
	assert.Contains(t, html, "Conversions by Country")
}

func TestImportanceBarChartRenders(t *testing.T) {
	chart := ImportanceBarChart(ImportanceBar(testTable(), domain.FilterState{}))
	html := renderToString(t, func(w *bytes.Buffer) error { return chart.Render(w) })

	assert.Contains(t, html, "Importance Distribution")
	assert.Contains(t, html, "Very High")
}

func TestDevicePieChartRenders(t *testing.T) {
	chart := DevicePieChart(DevicePie(testTable(), domain.FilterState{Device: domain.DeviceAll}))
	html := renderToString(t, func(w *bytes.Buffer) error { return chart.Render(w) })

	assert.Contains(t, html, "Mobile vs Non-Mobile Users")
}

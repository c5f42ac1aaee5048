package dashboard

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Chart construction: each panel datum becomes an ECharts object the
// transport layer renders to HTML. Titles match the panel semantics, not
// the filter state.

// CountryPieChart renders the top-10 country shares.
func CountryPieChart(data []NameValue) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top 10 Countries by Conversion Percentage"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
	)

	items := make([]opts.PieData, 0, len(data))
	for _, d := range data {
		items = append(items, opts.PieData{Name: d.Name, Value: roundTo(d.Value, 2)})
	}
	pie.AddSeries("countries", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {c}%"}))
	return pie
}

// DevicePieChart renders the mobile/desktop split.
func DevicePieChart(data []NameValue) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Mobile vs Non-Mobile Users"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
	)

	items := make([]opts.PieData, 0, len(data))
	for _, d := range data {
		items = append(items, opts.PieData{Name: d.Name, Value: d.Value})
	}
	pie.AddSeries("devices", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {c}"}))
	return pie
}

// TrendChart renders daily conversion counts, one line per country.
func TrendChart(dates []string, series []TrendSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Conversion Trend Over Time"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
	)

	line.SetXAxis(dates)
	for _, s := range series {
		points := make([]opts.LineData, 0, len(s.Counts))
		for _, c := range s.Counts {
			points = append(points, opts.LineData{Value: c})
		}
		line.AddSeries(s.Country, points)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))
	return line
}

// UIElementBarChart renders the top UI elements horizontally.
func UIElementBarChart(data []NameValue) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top UI Elements"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	names := make([]string, 0, len(data))
	values := make([]opts.BarData, 0, len(data))
	// Reversed so the largest bar ends up on top after the axis flip.
	for i := len(data) - 1; i >= 0; i-- {
		names = append(names, data[i].Name)
		values = append(values, opts.BarData{Value: data[i].Value})
	}
	bar.SetXAxis(names).AddSeries("conversions", values)
	bar.XYReversal()
	return bar
}

// WorldMapChart renders one scaled bubble per country on a world map.
func WorldMapChart(bubbles []CountryBubble) *charts.Geo {
	geo := charts.NewGeo()

	maxCount := 1
	for _, b := range bubbles {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	geo.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Conversions by Country and Importance Score"}),
		charts.WithGeoComponentOpts(opts.GeoComponent{Map: "world"}),
		charts.WithVisualMapOpts(opts.VisualMap{Calculable: true, Max: float32(maxCount)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Formatter: "{b}: {c}"}),
	)

	items := make([]opts.GeoData, 0, len(bubbles))
	for _, b := range bubbles {
		items = append(items, opts.GeoData{
			Name: fmt.Sprintf("%s (avg importance %.0f)", b.Country, b.AvgImportance),
			Value: []interface{}{b.Lng, b.Lat, b.Count},
		})
	}
	geo.AddSeries("conversions", types.ChartScatter, items)
	return geo
}

// ImportanceBarChart renders the importance bucket distribution.
func ImportanceBarChart(data []NameValue) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Importance Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	names := make([]string, 0, len(data))
	values := make([]opts.BarData, 0, len(data))
	for _, d := range data {
		names = append(names, d.Name)
		values = append(values, opts.BarData{Value: d.Value})
	}
	bar.SetXAxis(names).AddSeries("conversions", values)
	return bar
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

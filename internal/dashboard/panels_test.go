package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfpulse/pkg/contracts/domain"
)

func day(d int) time.Time {
	return time.Date(2021, 1, d, 12, 0, 0, 0, time.UTC)
}

func rec(id, country, device, element string, score int, ts time.Time) domain.UnifiedRecord {
	return domain.UnifiedRecord{
		ID:           id,
		SessionID:    "s" + id,
		CompositeKey: fmt.Sprintf("%s_%s", country, ts.Format("2006-01-02150405")),
		CountryName:  country,
		StdCountry:   country,
		IsMobile:     device,
		UIElement:    element,
		Timestamp:    ts,
		CreatedAt:    ts,
		ImportantScore: score,
		Importance:     domain.BucketImportance(score),
	}
}

func testTable() []domain.UnifiedRecord {
	return []domain.UnifiedRecord{
		rec("1", "Germany", "Mobile", "signup-button", 10, day(1)),
		rec("2", "Germany", "Desktop", "signup-button", 30, day(2)),
		rec("3", "Germany", "Mobile", "pay-button", 60, day(2)),
		rec("4", "India", "Mobile", "signup-button", 80, day(3)),
		rec("5", "United States", "Desktop", "search-box", 100, day(4)),
	}
}

func TestCountryPiePercentages(t *testing.T) {
	data := CountryPie(testTable(), domain.FilterState{})
	require.Len(t, data, 3)

	// Five rows, five distinct keys: Germany 3/5, the others 1/5 each.
	assert.Equal(t, NameValue{Name: "Germany", Value: 60}, data[0])

	sum := 0.0
	for _, d := range data {
		sum += d.Value
	}
	assert.LessOrEqual(t, sum, 100.0)
}

func TestCountryPieHonorsCountryFilter(t *testing.T) {
	data := CountryPie(testTable(), domain.FilterState{Countries: []string{"India"}})
	require.Len(t, data, 1)
	assert.Equal(t, "India", data[0].Name)
	assert.InDelta(t, 100, data[0].Value, 1e-9)
}

func TestCountryPieTopTen(t *testing.T) {
	var records []domain.UnifiedRecord
	for i := 0; i < 12; i++ {
		records = append(records, rec(fmt.Sprintf("%d", i), fmt.Sprintf("Country %02d", i),
			"Mobile", "button", 10, day(i%27+1)))
	}

	data := CountryPie(records, domain.FilterState{})
	assert.Len(t, data, 10)

	sum := 0.0
	for _, d := range data {
		sum += d.Value
	}
	// Twelve countries share the keys; the displayed ten cover less than all of it.
	assert.Less(t, sum, 100.0)
}

func TestCountryPieEmptyTable(t *testing.T) {
	assert.Nil(t, CountryPie(nil, domain.FilterState{}))
}

func TestDevicePie(t *testing.T) {
	data := DevicePie(testTable(), domain.FilterState{Device: domain.DeviceAll})
	require.Len(t, data, 2)
	assert.Equal(t, NameValue{Name: "Mobile", Value: 3}, data[0])
	assert.Equal(t, NameValue{Name: "Desktop", Value: 2}, data[1])

	data = DevicePie(testTable(), domain.FilterState{Device: "Desktop"})
	require.Len(t, data, 1)
	assert.Equal(t, NameValue{Name: "Desktop", Value: 2}, data[0])
}

func TestDevicePieIgnoresCountryFilter(t *testing.T) {
	// The device pie declares only the device input.
	data := DevicePie(testTable(), domain.FilterState{Countries: []string{"India"}, Device: domain.DeviceAll})
	total := 0.0
	for _, d := range data {
		total += d.Value
	}
	assert.Equal(t, 5.0, total)
}

func TestConversionTrend(t *testing.T) {
	dates, series := ConversionTrend(testTable(), domain.FilterState{
		Countries: []string{"Germany", "India"},
	})

	assert.Equal(t, []string{"2021-01-01", "2021-01-02", "2021-01-03"}, dates)
	require.Len(t, series, 2)
	assert.Equal(t, "Germany", series[0].Country)
	assert.Equal(t, []float64{1, 2, 0}, series[0].Counts)
	assert.Equal(t, "India", series[1].Country)
	assert.Equal(t, []float64{0, 0, 1}, series[1].Counts)
}

func TestConversionTrendDateBoundsInclusive(t *testing.T) {
	dates, series := ConversionTrend(testTable(), domain.FilterState{
		Start: day(2), End: day(3),
	})
	assert.Equal(t, []string{"2021-01-02", "2021-01-03"}, dates)
	require.Len(t, series, 2)
}

func TestUIElementBar(t *testing.T) {
	data := UIElementBar(testTable(), domain.FilterState{})
	require.Len(t, data, 3)
	assert.Equal(t, NameValue{Name: "signup-button", Value: 3}, data[0])
}

func TestWorldBubbles(t *testing.T) {
	locate := func(name string) (float64, float64, bool) {
		if name == "Unknownland" {
			return 0, 0, false
		}
		return 51, 9, true
	}

	table := append(testTable(), rec("6", "Unknownland", "Mobile", "button", 50, day(5)))
	bubbles := WorldBubbles(table, domain.FilterState{}, locate)

	require.Len(t, bubbles, 3) // Unknownland skipped
	byCountry := map[string]CountryBubble{}
	for _, b := range bubbles {
		byCountry[b.Country] = b
	}
	germany := byCountry["Germany"]
	assert.Equal(t, 3, germany.Count)
	assert.InDelta(t, 33.3, germany.AvgImportance, 0.1)
	assert.Equal(t, 51.0, germany.Lat)
}

func TestImportanceBar(t *testing.T) {
	data := ImportanceBar(testTable(), domain.FilterState{})
	require.Len(t, data, 4)
	assert.Equal(t, []NameValue{
		{Name: "Low", Value: 1},
		{Name: "Medium", Value: 1},
		{Name: "High", Value: 1},
		{Name: "Very High", Value: 2},
	}, data)
}

func TestSummarize(t *testing.T) {
	s := Summarize(testTable())
	assert.Equal(t, 5, s.TotalConversions)
	assert.Equal(t, 5, s.TotalUsers)
	assert.InDelta(t, 100, s.ConversionRate, 1e-9)
	assert.Equal(t, "100.00%", s.RateDisplay)
}

func TestSummarizeRatio(t *testing.T) {
	table := testTable()
	// Two extra rows reusing session ids: 7 keys over 5 users.
	table = append(table,
		rec("6", "Germany", "Mobile", "button", 10, day(6)),
		rec("7", "Germany", "Mobile", "button", 10, day(7)))
	table[5].SessionID = "s1"
	table[6].SessionID = "s2"

	s := Summarize(table)
	assert.Equal(t, 7, s.TotalConversions)
	assert.Equal(t, 5, s.TotalUsers)
	assert.Equal(t, "140.00%", s.RateDisplay)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalConversions)
	assert.Zero(t, s.TotalUsers)
	assert.Equal(t, "0.00%", s.RateDisplay)
}

func TestDateRange(t *testing.T) {
	min, max, ok := DateRange(testTable())
	require.True(t, ok)
	assert.Equal(t, day(1), min)
	assert.Equal(t, day(4), max)

	_, _, ok = DateRange(nil)
	assert.False(t, ok)
}

func TestCountries(t *testing.T) {
	assert.Equal(t, []string{"Germany", "India", "United States"}, Countries(testTable()))
}

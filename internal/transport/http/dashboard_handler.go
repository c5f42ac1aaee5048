// Package http wires the dashboard over chi: the filter page, the summary
// scorecards, and one endpoint per chart panel. Every panel request
// recomputes its chart synchronously from the in-memory table; the table
// is read-only after startup so no locking is needed.
package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"rfpulse/internal/dashboard"
	apierrors "rfpulse/internal/errors"
	"rfpulse/pkg/contracts/domain"
)

const dateLayout = "2006-01-02"

// Panel names as they appear in the /panels/{panel} route.
const (
	PanelCountryPie      = "country-pie"
	PanelDevicePie       = "device-pie"
	PanelConversionTrend = "conversion-trend"
	PanelUIElementBar    = "ui-element-bar"
	PanelWorldMap        = "world-map"
	PanelImportance      = "importance"
)

// Locator resolves a country name to its map centroid.
type Locator func(name string) (lat, lng float64, ok bool)

// DashboardHandler serves the dashboard page and its chart callbacks.
type DashboardHandler struct {
	logger  *slog.Logger
	records []domain.UnifiedRecord
	summary dashboard.Summary
	locate  Locator
	title   string

	minDate time.Time
	maxDate time.Time
}

// NewDashboardHandler builds a handler over the loaded unified table. The
// scorecards are computed here, once, from the unfiltered table.
func NewDashboardHandler(logger *slog.Logger, records []domain.UnifiedRecord, locate Locator, title string) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &DashboardHandler{
		logger:  logger.With(slog.String("component", "dashboard_handler")),
		records: records,
		summary: dashboard.Summarize(records),
		locate:  locate,
		title:   title,
	}
	h.minDate, h.maxDate, _ = dashboard.DateRange(records)
	return h
}

// Routes returns the dashboard routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Page)
	r.Get("/healthz", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/summary", h.GetSummary)
	})
	r.Get("/panels/{panel}", h.Panel)

	return r
}

// Health reports liveness and the table size.
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "ok",
		"rows":   len(h.records),
	})
}

// GetSummary returns the static scorecards.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.summary)
}

// Panel renders one chart for the current filter selection. The filter
// arrives as query parameters: countries (comma-separated), start, end
// (dates, inclusive), and device.
func (h *DashboardHandler) Panel(w http.ResponseWriter, r *http.Request) {
	filter, apiErr := h.parseFilter(r)
	if apiErr != nil {
		_ = render.Render(w, r, apiErr)
		return
	}

	name := chi.URLParam(r, "panel")
	start := time.Now()

	var err error
	switch name {
	case PanelCountryPie:
		err = dashboard.CountryPieChart(dashboard.CountryPie(h.records, filter)).Render(w)
	case PanelDevicePie:
		err = dashboard.DevicePieChart(dashboard.DevicePie(h.records, filter)).Render(w)
	case PanelConversionTrend:
		dates, series := dashboard.ConversionTrend(h.records, filter)
		err = dashboard.TrendChart(dates, series).Render(w)
	case PanelUIElementBar:
		err = dashboard.UIElementBarChart(dashboard.UIElementBar(h.records, filter)).Render(w)
	case PanelWorldMap:
		err = dashboard.WorldMapChart(dashboard.WorldBubbles(h.records, filter, h.locate)).Render(w)
	case PanelImportance:
		err = dashboard.ImportanceBarChart(dashboard.ImportanceBar(h.records, filter)).Render(w)
	default:
		_ = render.Render(w, r, apierrors.ErrPanelNotFound)
		return
	}

	if err != nil {
		h.logger.Error("failed to render panel",
			slog.String("panel", name),
			slog.String("error", err.Error()))
		return
	}
	h.logger.Debug("panel rendered",
		slog.String("panel", name),
		slog.Duration("elapsed", time.Since(start)))
}

func (h *DashboardHandler) parseFilter(r *http.Request) (domain.FilterState, *apierrors.APIError) {
	q := r.URL.Query()
	filter := domain.FilterState{Device: q.Get("device")}

	if raw := strings.TrimSpace(q.Get("countries")); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				filter.Countries = append(filter.Countries, c)
			}
		}
	}

	if raw := q.Get("start"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return domain.FilterState{}, apierrors.ErrInvalidDate("start", raw)
		}
		filter.Start = t
	}
	if raw := q.Get("end"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return domain.FilterState{}, apierrors.ErrInvalidDate("end", raw)
		}
		// The end date is inclusive: extend to the last instant of the day.
		filter.End = t.Add(24*time.Hour - time.Second)
	}

	return filter, nil
}

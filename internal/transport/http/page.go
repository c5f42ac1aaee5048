package http

import (
	"html/template"
	"log/slog"
	"net/http"

	"rfpulse/internal/dashboard"
	"rfpulse/pkg/contracts/domain"
)

type pageData struct {
	Title     string
	Summary   dashboard.Summary
	Countries []pageCountry
	Devices   []string
	MinDate   string
	MaxDate   string
	Panels    []string
}

type pageCountry struct {
	Name     string
	Selected bool
}

// Page serves the dashboard page: filter controls, scorecards, and one
// frame per panel. Filter changes reload the panel frames with the new
// query string; all chart recomputation happens server-side.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	defaults := make(map[string]bool, len(domain.DefaultCountries))
	for _, c := range domain.DefaultCountries {
		defaults[c] = true
	}

	countries := make([]pageCountry, 0)
	for _, c := range dashboard.Countries(h.records) {
		countries = append(countries, pageCountry{Name: c, Selected: defaults[c]})
	}

	data := pageData{
		Title:     h.title,
		Summary:   h.summary,
		Countries: countries,
		Devices:   []string{domain.DeviceAll, "Mobile", "Desktop"},
		MinDate:   h.minDate.Format(dateLayout),
		MaxDate:   h.maxDate.Format(dateLayout),
		Panels: []string{
			PanelCountryPie, PanelDevicePie, PanelUIElementBar,
			PanelConversionTrend, PanelWorldMap, PanelImportance,
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		h.logger.Error("failed to render page", slog.String("error", err.Error()))
	}
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; background-color: #f8f9fa; }
    header { padding: 16px 24px; }
    .layout { display: flex; gap: 16px; padding: 0 24px 24px; }
    .sidebar { width: 240px; flex-shrink: 0; }
    .card { background: #fff; border: 1px solid #dee2e6; border-radius: 6px; padding: 12px; margin-bottom: 12px; }
    .card h3 { margin: 0 0 8px; font-size: 14px; color: #495057; }
    .card .num { font-size: 24px; font-weight: bold; }
    .panels { flex-grow: 1; display: grid; grid-template-columns: repeat(3, 1fr); gap: 12px; }
    .panels iframe { width: 100%; height: 420px; border: 1px solid #dee2e6; border-radius: 6px; background: #fff; }
    select, input { width: 100%; margin-bottom: 8px; }
    select[multiple] { height: 140px; }
  </style>
</head>
<body>
  <header><h2>{{.Title}}</h2></header>
  <div class="layout">
    <div class="sidebar">
      <div class="card">
        <h3>Filters</h3>
        <label>Countries</label>
        <select id="countries" multiple>
          {{range .Countries}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>{{end}}
        </select>
        <label>From</label>
        <input type="date" id="start" value="{{.MinDate}}" min="{{.MinDate}}" max="{{.MaxDate}}">
        <label>To</label>
        <input type="date" id="end" value="{{.MaxDate}}" min="{{.MinDate}}" max="{{.MaxDate}}">
        <label>Device</label>
        <select id="device">
          {{range .Devices}}<option value="{{.}}">{{.}}</option>{{end}}
        </select>
      </div>
      <div class="card"><h3>Total Conversions</h3><div class="num">{{.Summary.TotalConversions}}</div></div>
      <div class="card"><h3>Total Users</h3><div class="num">{{.Summary.TotalUsers}}</div></div>
      <div class="card"><h3>Conversion Rate</h3><div class="num">{{.Summary.RateDisplay}}</div></div>
    </div>
    <div class="panels">
      {{range .Panels}}<iframe id="panel-{{.}}" data-panel="{{.}}"></iframe>{{end}}
    </div>
  </div>
  <script>
    function reload() {
      var selected = Array.from(document.getElementById('countries').selectedOptions)
        .map(function (o) { return o.value; });
      var params = new URLSearchParams();
      if (selected.length) params.set('countries', selected.join(','));
      var start = document.getElementById('start').value;
      var end = document.getElementById('end').value;
      if (start) params.set('start', start);
      if (end) params.set('end', end);
      params.set('device', document.getElementById('device').value);
      document.querySelectorAll('.panels iframe').forEach(function (frame) {
        frame.src = '/panels/' + frame.dataset.panel + '?' + params.toString();
      });
    }
    ['countries', 'start', 'end', 'device'].forEach(function (id) {
      document.getElementById(id).addEventListener('change', reload);
    });
    reload();
  </script>
</body>
</html>
`))

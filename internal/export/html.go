package export

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

// htmlReport is a self-contained styled page with a client-side sortable
// table. Escaping is handled by html/template.
const htmlReport = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Vortex Mod Export</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; background: #1e1e2e; color: #cdd6f4; }
h1 { font-size: 1.4rem; }
p.meta { color: #a6adc8; }
table { border-collapse: collapse; width: 100%; }
th, td { padding: 0.4rem 0.7rem; text-align: left; border-bottom: 1px solid #45475a; }
th { background: #313244; cursor: pointer; position: sticky; top: 0; }
th:hover { background: #45475a; }
tr:hover td { background: #313244; }
td.disabled { color: #f38ba8; }
td.enabled { color: #a6e3a1; }
a { color: #89b4fa; }
</style>
</head>
<body>
<h1>Vortex Mod Export</h1>
<p class="meta">{{ len .Records }} mods &middot; generated {{ .Generated }}</p>
<table id="mods">
<thead>
<tr><th>Game</th><th>Name</th><th>Version</th><th>Enabled</th><th>Parts</th><th>Homepage</th></tr>
</thead>
<tbody>
{{- range .Records }}
<tr>
<td>{{ .Game }}</td>
<td>{{ .Name }}</td>
<td>{{ .Version }}</td>
{{- if .Enabled }}
<td class="enabled">yes</td>
{{- else }}
<td class="disabled">no</td>
{{- end }}
<td>{{ .Parts }}</td>
<td>{{ if .Homepage }}<a href="{{ .Homepage }}">{{ .Homepage }}</a>{{ end }}</td>
</tr>
{{- end }}
</tbody>
</table>
<script>
document.querySelectorAll("#mods th").forEach(function (th, col) {
  th.addEventListener("click", function () {
    var tbody = th.closest("table").querySelector("tbody");
    var rows = Array.from(tbody.querySelectorAll("tr"));
    var asc = th.dataset.asc !== "true";
    th.dataset.asc = asc;
    rows.sort(function (a, b) {
      var x = a.children[col].textContent.trim();
      var y = b.children[col].textContent.trim();
      var nx = parseFloat(x), ny = parseFloat(y);
      if (!isNaN(nx) && !isNaN(ny)) { return asc ? nx - ny : ny - nx; }
      return asc ? x.localeCompare(y) : y.localeCompare(x);
    });
    rows.forEach(function (r) { tbody.appendChild(r); });
  });
});
</script>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlReport))

// WriteHTML writes the mod list as a styled, sortable HTML page.
func WriteHTML(records []domain.ModRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	data := struct {
		Records   []JSONRecord
		Generated string
	}{
		Records:   ToJSONRecords(records),
		Generated: time.Now().Format("2006-01-02 15:04"),
	}
	if err := htmlTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return f.Close()
}

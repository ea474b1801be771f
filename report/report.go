// Package report renders batch analysis results as an HTML table.
package report

import (
	"html/template"
	"io"
	"time"

	"github.com/taulab/gophercnf/batch"
)

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>CNF clause validity report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 0.3em 0.8em; text-align: right; }
th, td.path { text-align: left; }
.valid { color: #060; }
.invalid { color: #900; }
.error { color: #900; font-style: italic; }
</style>
</head>
<body>
<h1>CNF clause validity report</h1>
<p>Generated {{.Generated.Format "2006-01-02 15:04:05"}} &mdash; {{len .Results}} file(s)</p>
<table>
<tr><th>File</th><th>Vars</th><th>Clauses</th><th>Tautological</th><th>Non-tautological</th><th>Verdict</th><th>Elapsed</th></tr>
{{range .Results}}
<tr>
<td class="path">{{.Path}}</td>
{{if .Err}}<td colspan="6" class="error">{{.Err}}</td>{{else -}}
<td>{{.Stats.Vars}}</td>
<td>{{.Stats.Clauses}}</td>
<td>{{.Stats.Tautological}}</td>
<td>{{.Stats.NonTautological}}</td>
{{if .Stats.Valid}}<td class="valid">valid</td>{{else}}<td class="invalid">not valid</td>{{end -}}
<td>{{.Elapsed}}</td>
{{end -}}
</tr>
{{end}}
</table>
</body>
</html>
`))

type pageData struct {
	Generated time.Time
	Results   []batch.Result
}

// WriteHTML renders the results of a batch run as an HTML document on w.
func WriteHTML(w io.Writer, results []batch.Result) error {
	return page.Execute(w, pageData{Generated: time.Now(), Results: results})
}

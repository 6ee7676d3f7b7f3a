package render

import (
	"html/template"
	"io"

	"github.com/spektr-org/barh/engine"
)

var pageTemplate = template.Must(template.New("barh").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<script src="https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"></script>
</head>
<body>
{{ .Element }}
{{ .Script }}
{{- if .Toggle }}
<p class="barh-toggle"><a href="{{ .ToggleHref }}">{{ .Toggle.Label }}</a></p>
{{- end }}
</body>
</html>
`))

type pageData struct {
	Title      string
	Element    template.HTML
	Script     template.HTML
	Toggle     *engine.ToggleLink
	ToggleHref string
}

// Page writes an HTML page holding the chart and, when the chart has a
// cutoff, the show-more / show-less link pointing at toggleHref.
func Page(w io.Writer, chart *engine.ChartData, toggleHref string) error {
	snippet := NewBar(chart).RenderSnippet()
	return pageTemplate.Execute(w, pageData{
		Title:      pageTitle(chart),
		Element:    template.HTML(snippet.Element),
		Script:     template.HTML(snippet.Script),
		Toggle:     chart.Toggle,
		ToggleHref: toggleHref,
	})
}

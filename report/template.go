package report

import (
	"html/template"
	"strings"
	"time"

	"github.com/rcvacademy/browser-test-harness/framework"
)

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"attachment": renderAttachment,
	"lower":      strings.ToLower,
	"duration":   func(d time.Duration) string { return d.Round(time.Millisecond).String() },
	"timestamp":  func(t time.Time) string { return t.Format("2006-01-02 15:04:05") },
}).Parse(reportHTML))

func renderAttachment(a framework.Attachment) template.HTML {
	switch a.Kind {
	case framework.AttachmentHTML:
		return template.HTML(a.Content)
	case framework.AttachmentURL:
		return template.HTML(`<a class="url" href="` + template.HTMLEscapeString(a.Content) +
			`" target="_blank">` + template.HTMLEscapeString(a.Name) + `</a>`)
	case framework.AttachmentImage:
		return template.HTML(`<div class="image"><img src="` + template.HTMLEscapeString(a.Content) +
			`" alt="` + template.HTMLEscapeString(a.Name) + `"/></div>`)
	default:
		return template.HTML(`<div class="text"><b>` + template.HTMLEscapeString(a.Name) + `</b><pre>` +
			template.HTMLEscapeString(a.Content) + `</pre></div>`)
	}
}

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; }
table { border-collapse: collapse; width: 100%; }
td, th { border: 1px solid #e6e6e6; padding: 5px; vertical-align: top; text-align: left; }
.passed, .xpassed { color: green; }
.failed, .error { color: red; }
.skipped, .xfailed { color: orange; }
pre { white-space: pre-wrap; }
</style>
</head>
<body>
<h1 id="title">{{.Title}}</h1>
<p>Run {{.RunID}} started {{timestamp .Started}}, finished {{timestamp .Finished}}.</p>
<h2>Environment</h2>
<table id="environment">
{{- range .Environment}}
<tr><td>{{.Name}}</td><td>{{.Value}}</td></tr>
{{- end}}
</table>
<h2>Summary</h2>
<p>
{{.Counts.Passed}} passed, {{.Counts.Failed}} failed, {{.Counts.Skipped}} skipped,
{{.Counts.XFailed}} expected failures, {{.Counts.XPassed}} unexpected passes, {{.Counts.Errors}} errors
</p>
<h2>Results</h2>
<table id="results-table">
<tr><th>Result</th><th>Test</th><th>Duration</th><th>Links</th></tr>
{{- range .Entries}}
<tr class="{{lower .Result}}">
<td class="col-result">{{.Result}}</td>
<td class="col-name">{{.TestID}}{{if ne .Phase "call"}} ({{.Phase}}){{end}}</td>
<td class="col-duration">{{duration .Duration}}</td>
<td class="col-links">{{range .Attachments}}{{if eq .Kind "url"}}{{attachment .}} {{end}}{{end}}</td>
</tr>
<tr class="extra"><td colspan="4">
{{- range .Attachments}}{{if ne .Kind "url"}}{{attachment .}}{{end}}{{end}}
{{- if .Errors}}<pre class="log">{{range .Errors}}{{.}}
{{end}}</pre>{{end}}
</td></tr>
{{- end}}
</table>
</body>
</html>
`

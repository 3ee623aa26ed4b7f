package rendering

import (
	"html/template"
	"strings"
)

// resumeTemplate is a single-column, ATS-friendly layout. Section blocks
// only render when their model slice or field is non-empty.
const resumeTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, "Times New Roman", serif; color: #1a1a1a; margin: 40px auto; max-width: 720px; font-size: 13px; line-height: 1.45; }
  h1 { font-size: 22px; margin: 0 0 4px; }
  h2 { font-size: 14px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #999; padding-bottom: 2px; margin: 18px 0 8px; }
  .contact { color: #444; margin-bottom: 6px; }
  .contact span + span::before { content: " \2022 "; color: #999; }
  .entry { margin-bottom: 10px; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-title { font-weight: bold; }
  .dates { color: #666; font-style: italic; }
  .skills span { display: inline-block; border: 1px solid #ccc; border-radius: 3px; padding: 1px 6px; margin: 0 4px 4px 0; }
  ul { margin: 4px 0 0; padding-left: 18px; }
</style>
</head>
<body>
{{- if .ContactLines}}<h1>{{index .ContactLines 0}}</h1>{{end}}
{{- if gt (len .ContactLines) 1}}
<div class="contact">
{{- range slice .ContactLines 1}}<span>{{.}}</span>{{end}}
</div>
{{- end}}
{{- if .Summary}}
<h2>Professional Summary</h2>
<p>{{.Summary}}</p>
{{- end}}
{{- if .Skills}}
<h2>Skills</h2>
<div class="skills">
{{- range .Skills}}<span>{{.Name}} ({{.Level}})</span>{{end}}
</div>
{{- end}}
{{- if .Experience}}
<h2>Experience</h2>
{{- range .Experience}}
<div class="entry">
  <div class="entry-head"><span class="entry-title">{{.Position}}{{if .Company}}, {{.Company}}{{end}}</span><span class="dates">{{.DateRange}}</span></div>
  {{- if .Description}}<div>{{.Description}}</div>{{end}}
  {{- if .Achievements}}
  <ul>
  {{- range .Achievements}}<li>{{.}}</li>{{end}}
  </ul>
  {{- end}}
</div>
{{- end}}
{{- end}}
{{- if .Education}}
<h2>Education</h2>
{{- range .Education}}
<div class="entry">
  <div class="entry-head"><span class="entry-title">{{.Degree}}{{if .Field}}, {{.Field}}{{end}}</span><span class="dates">{{.DateRange}}</span></div>
  <div>{{.Institution}}</div>
  {{- if .Description}}<div>{{.Description}}</div>{{end}}
</div>
{{- end}}
{{- end}}
{{- if .Projects}}
<h2>Projects</h2>
{{- range .Projects}}
<div class="entry">
  <div class="entry-head"><span class="entry-title">{{.Title}}</span><span class="dates">{{.DateRange}}</span></div>
  {{- if .Description}}<div>{{.Description}}</div>{{end}}
  {{- if .Technologies}}<div>Technologies: {{.Technologies}}</div>{{end}}
  {{- if .Link}}<div>{{.Link}}</div>{{end}}
</div>
{{- end}}
{{- end}}
</body>
</html>
`

var resumeTmpl = template.Must(template.New("resume").Parse(resumeTemplate))

// RenderHTML renders a projection as a standalone HTML page. The same
// output backs the live preview and the PDF export capture.
func RenderHTML(m RenderModel) (string, error) {
	var result strings.Builder
	if err := resumeTmpl.Execute(&result, m); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

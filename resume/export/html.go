package export

import (
	"bytes"
	"html/template"

	"resumeai-backend/resume/model"
)

// resumeHTML is the print layout used by the Chrome engine. Section order and
// omission rules match the native engine.
const resumeHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 20mm; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 10pt; color: #111; }
  h1 { font-size: 20pt; text-align: center; margin: 0 0 4pt 0; }
  .contact { text-align: center; font-size: 9pt; margin: 0 0 2pt 0; }
  hr { border: none; border-top: 1px solid #444; margin: 6pt 0; }
  h2 { font-size: 13pt; margin: 10pt 0 4pt 0; }
  .entry { margin-bottom: 6pt; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-title { font-weight: bold; font-size: 11pt; }
  .entry-dates { font-size: 9pt; color: #444; }
  .entry-sub { font-style: italic; }
  p { margin: 2pt 0; }
</style>
</head>
<body>
<h1>{{.Data.PersonalInfo.FullName}}</h1>
{{with .ContactLine}}<div class="contact">{{.}}</div>{{end}}
{{with .WebLine}}<div class="contact">{{.}}</div>{{end}}
<hr>
{{if .Data.HasSummary}}<h2>Summary</h2><p>{{.Data.Summary}}</p>{{end}}
{{if .Data.HasExperience}}<h2>Experience</h2>
{{range .Data.Experience}}<div class="entry">
  <div class="entry-head"><span class="entry-title">{{.Position}}</span><span class="entry-dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
  <div class="entry-sub">{{.Company}}</div>
  {{with .Description}}<p>{{.}}</p>{{end}}
</div>{{end}}{{end}}
{{if .Data.HasEducation}}<h2>Education</h2>
{{range .Data.Education}}<div class="entry">
  <div class="entry-head"><span class="entry-title">{{join " in " .Degree .FieldOfStudy}}</span><span class="entry-dates">{{dateRange .StartDate .EndDate false}}</span></div>
  <div class="entry-sub">{{.School}}{{with .GPA}} &bull; GPA: {{.}}{{end}}</div>
</div>{{end}}{{end}}
{{if .Data.HasProjects}}<h2>Projects</h2>
{{range .Data.Projects}}<div class="entry">
  <div class="entry-head"><span class="entry-title">{{.Name}}</span><span class="entry-dates">{{dateRange .StartDate .EndDate false}}</span></div>
  {{with .Technologies}}<div class="entry-sub">{{joinAll " &bull; " .}}</div>{{end}}
  {{with .Description}}<p>{{.}}</p>{{end}}
</div>{{end}}{{end}}
{{if .Data.HasSkills}}<h2>Skills</h2><p>{{joinAll " &bull; " .Data.Skills}}</p>{{end}}
</body>
</html>`

var resumeTemplate = template.Must(template.New("resume").Funcs(template.FuncMap{
	"dateRange": model.DateRange,
	"join":      model.JoinNonEmpty,
	"joinAll": func(sep string, values []string) template.HTML {
		var b bytes.Buffer
		for i, v := range values {
			if i > 0 {
				b.WriteString(sep)
			}
			template.HTMLEscape(&b, []byte(v))
		}
		return template.HTML(b.String())
	},
}).Parse(resumeHTML))

type htmlInput struct {
	Data        model.ResumeData
	ContactLine string
	WebLine     string
}

// RenderHTML produces the HTML document fed to the Chrome engine.
func RenderHTML(data model.ResumeData) (string, error) {
	input := htmlInput{
		Data:        data,
		ContactLine: model.JoinNonEmpty(" | ", data.PersonalInfo.Email, data.PersonalInfo.Phone, data.PersonalInfo.Location),
		WebLine:     model.JoinNonEmpty(" | ", data.PersonalInfo.Website, data.PersonalInfo.LinkedIn),
	}
	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package printtemplates

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/render"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/scoring"
)

// The print renderers produce self-contained HTML documents: the A4 print
// stylesheet (page sizing, page-break classes) is embedded here so the output
// prints correctly without an application shell around it.

const printStylesheet = `
@page { size: A4; margin: 18mm 14mm; }
body { font-family: "Helvetica Neue", Arial, sans-serif; color: #1f2937; font-size: 12px; }
h1 { font-size: 20px; margin-bottom: 2px; }
h2 { font-size: 14px; border-bottom: 1px solid #d1d5db; padding-bottom: 4px; margin-top: 18px; }
.meta { color: #6b7280; margin-bottom: 12px; }
.section { page-break-inside: avoid; }
.page-break { page-break-before: always; }
.field { margin: 6px 0; }
.field .label { font-weight: 600; margin-right: 6px; }
.badges span { display: inline-block; border: 1px solid #d1d5db; border-radius: 10px; padding: 1px 8px; margin-right: 4px; }
.badges span.selected { background: #1f2937; color: #ffffff; border-color: #1f2937; }
.row { margin: 8px 0 8px 12px; }
.row .row-label { font-weight: 600; }
.score-bar { background: #e5e7eb; height: 10px; width: 220px; display: inline-block; }
.score-bar .fill { background: #1f2937; height: 10px; display: block; }
.total { font-size: 14px; font-weight: 700; margin-top: 14px; }
`

// field is the uniform shape every rendered field is converted to before
// template execution; exactly one of Badges, Values or Value is populated.
type field struct {
	Label  string
	Badges []render.Badge
	Values []string
	Value  string
}

type section struct {
	Title  string
	Fields []field
	Rows   []row
}

type row struct {
	Label  string
	Fields []field
}

const fieldTemplateBody = `<div class="field">
{{- if .Badges}}<span class="label">{{.Label}}:</span><span class="badges">{{range .Badges}}<span{{if .Selected}} class="selected"{{end}}>{{.Option}}</span>{{end}}</span>
{{- else if .Values}}<span class="label">{{.Label}}:</span>{{range $i, $v := .Values}}{{if $i}}, {{end}}{{$v}}{{end}}
{{- else}}<span class="label">{{.Label}}:</span> {{.Value}}
{{- end}}</div>`

const sectionTemplateBody = `<div class="section">
<h2>{{.Title}}</h2>
{{range .Fields}}{{template "field" .}}{{end}}
{{range .Rows}}<div class="row">
<div class="row-label">{{.Label}}</div>
{{range .Fields}}{{template "field" .}}{{end}}
</div>{{end}}
</div>`

var caseRecordTmpl = mustDocument("caseRecord", `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Case Record</title>
<style>{{.Style}}</style>
</head>
<body>
<h1>Case Record</h1>
<div class="meta">Psychologist: {{.Psychologist}} &middot; Record: {{.ID}}</div>
{{range .Sections}}{{template "section" .}}{{end}}
</body>
</html>`)

var scoreSheetTmpl = mustDocument("scoreSheet", `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Score Sheet</title>
<style>{{.Style}}</style>
</head>
<body>
<h1>{{.View.SessionLabel}}</h1>
<div class="meta">Session {{.View.SessionNumber}} &middot; {{.View.SessionDate}}</div>
{{range .View.Headings}}
<div class="section">
<h2>{{.Label}} ({{.Score}} / {{.Point}})</h2>
<div class="score-bar"><span class="fill" style="width: {{barWidth .Score .Point}}%"></span></div>
{{range .Questions}}
<div class="field"><span class="label">{{.Text}}</span> {{.Score}} / {{.Point}}</div>
{{end}}
</div>
{{end}}
<div class="total">Total: {{.View.TotalScore}} / {{.View.MaxScore}}</div>
</body>
</html>`)

var reviewTmpl = mustDocument("review", `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Review Mechanism</title>
<style>{{.Style}}</style>
</head>
<body>
<h1>Review Mechanism</h1>
{{template "section" .Section}}
</body>
</html>`)

func mustDocument(name, body string) *template.Template {
	tmpl := template.New(name).Funcs(template.FuncMap{
		"barWidth": barWidth,
	})
	template.Must(tmpl.New("field").Parse(fieldTemplateBody))
	template.Must(tmpl.New("section").Parse(sectionTemplateBody))
	return template.Must(tmpl.Parse(body))
}

// RenderCaseRecordHTML produces the printable document of a full case record.
func RenderCaseRecordHTML(record *types.Details) (string, error) {
	view := render.RenderCaseRecord(record)
	if !view.Loaded {
		return "", fmt.Errorf("no case record to print")
	}

	sections := make([]section, 0, len(view.Sections))
	for _, s := range view.Sections {
		sections = append(sections, convertSection(s))
	}

	var buf bytes.Buffer
	err := caseRecordTmpl.Execute(&buf, map[string]any{
		"Style":        template.CSS(printStylesheet),
		"ID":           view.ID,
		"Psychologist": view.Psychologist,
		"Sections":     sections,
	})
	if err != nil {
		return "", fmt.Errorf("error rendering case record: %w", err)
	}
	return buf.String(), nil
}

// RenderScoreSheetHTML produces the printable document of a scored session,
// one bar per heading.
func RenderScoreSheetHTML(session types.SessionScoring) (string, error) {
	view, err := scoring.JoinWithRubric(session)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = scoreSheetTmpl.Execute(&buf, map[string]any{
		"Style": template.CSS(printStylesheet),
		"View":  view,
	})
	if err != nil {
		return "", fmt.Errorf("error rendering score sheet: %w", err)
	}
	return buf.String(), nil
}

// RenderReviewHTML produces the printable document of a submitted review.
func RenderReviewHTML(review *types.ReviewMechanism) (string, error) {
	reviewSection, ok := render.RenderReview(review)
	if !ok {
		return "", fmt.Errorf("no review to print")
	}
	var buf bytes.Buffer
	err := reviewTmpl.Execute(&buf, map[string]any{
		"Style":   template.CSS(printStylesheet),
		"Section": convertSection(reviewSection),
	})
	if err != nil {
		return "", fmt.Errorf("error rendering review: %w", err)
	}
	return buf.String(), nil
}

func convertSection(s render.Section) section {
	converted := section{
		Title:  s.Title,
		Fields: convertFields(s.Fields),
	}
	for _, r := range s.Rows {
		converted.Rows = append(converted.Rows, row{
			Label:  r.Label,
			Fields: convertFields(r.Fields),
		})
	}
	return converted
}

func convertFields(fields []any) []field {
	converted := make([]field, 0, len(fields))
	for _, f := range fields {
		switch v := f.(type) {
		case render.BadgeField:
			converted = append(converted, field{Label: v.Label, Badges: v.Badges})
		case render.ListField:
			converted = append(converted, field{Label: v.Label, Values: v.Values})
		case render.TextField:
			converted = append(converted, field{Label: v.Label, Value: v.Value})
		}
	}
	return converted
}

func barWidth(score, point int) int {
	if point <= 0 {
		return 0
	}
	width := score * 100 / point
	if width > 100 {
		width = 100
	}
	return width
}

package reporting

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/njgolf/golfrank/internal/insights"
	"github.com/njgolf/golfrank/internal/ranking"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultTitle heads reports when no title is configured.
const DefaultTitle = "Public Golf Course Rankings"

// ReportData is everything the report template renders.
type ReportData struct {
	Title    string
	Options  ranking.Options
	Ranked   []ranking.CourseRecord
	Insights insights.Insights
}

// NewReportData builds the views for a ranked table, listing n courses in
// each insight section.
func NewReportData(title string, opts ranking.Options, ranked []ranking.CourseRecord, n int) ReportData {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return ReportData{
		Title:    title,
		Options:  opts,
		Ranked:   ranked,
		Insights: insights.Build(ranked, n),
	}
}

const reportTemplate = `# {{ .Title }}

Ranked {{ .Insights.Summary.Courses }} courses. value_quality = {{ weight .Options.Weights.GolfQuality }} × golf_quality + {{ weight (complement .Options.Weights.GolfQuality) }} × value_score; composite_score = {{ weight .Options.Weights.Composite }} × golf_quality + {{ weight (complement .Options.Weights.Composite) }} × value_quality. Prices are mapped to value scores with the ` + "`{{ .Options.Policy }}`" + ` curve policy.
{{ with .Insights.Summary }}{{ if .Courses }}
## Summary

| Metric | Mean | Median | Min | Max |
|---|---:|---:|---:|---:|
| Saturday noon price | {{ money .Price.Mean }} | {{ money .Price.Median }} | {{ money .Price.Min }} | {{ money .Price.Max }} |
| Golf quality | {{ score .GolfQuality.Mean }} | {{ score .GolfQuality.Median }} | {{ score .GolfQuality.Min }} | {{ score .GolfQuality.Max }} |
| Value score | {{ score .ValueScore.Mean }} | {{ score .ValueScore.Median }} | {{ score .ValueScore.Min }} | {{ score .ValueScore.Max }} |
| Composite score | {{ score .Composite.Mean }} | {{ score .Composite.Median }} | {{ score .Composite.Min }} | {{ score .Composite.Max }} |
{{ end }}{{ end }}
## Rankings

| Rank | Course | County | Price | Golf quality | Value score | Value quality | Composite | Rating |
|---:|---|---|---:|---:|---:|---:|---:|---|
{{ range .Ranked }}| {{ .RankPosition }} | {{ cell .Course }} | {{ cell .County }} | {{ money .Price }} | {{ score .GolfQuality }} | {{ score .ValueScore }} | {{ score .ValueQuality }} | {{ score .CompositeScore }} | {{ interpret .CompositeScore }} |
{{ end }}{{ if .Insights.Undervalued }}
## Most undervalued

{{ template "shortlist" .Insights.Undervalued }}{{ end }}{{ if .Insights.Overpriced }}
## Most overpriced

{{ template "shortlist" .Insights.Overpriced }}{{ end }}`

const shortlistTemplate = `{{ define "shortlist" }}| Course | Price | Value score | Composite | Rank |
|---|---:|---:|---:|---:|
{{ range . }}| {{ cell .Course }} | {{ money .Price }} | {{ score .ValueScore }} | {{ score .CompositeScore }} | {{ .RankPosition }} |
{{ end }}{{ end }}`

var reportTmpl = template.Must(template.Must(template.New("report").Funcs(template.FuncMap{
	"money":      FormatPrice,
	"score":      func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"weight":     func(v float64) string { return fmt.Sprintf("%g", ranking.Round(v, 4)) },
	"complement": func(v float64) float64 { return 1 - v },
	"interpret":  InterpretScore,
	"cell":       markdownCell,
}).Parse(reportTemplate)).Parse(shortlistTemplate))

// RenderMarkdown writes the report as GitHub-flavored Markdown.
func RenderMarkdown(w io.Writer, data ReportData) error {
	if err := reportTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// RenderHTML writes the report as an HTML fragment converted from the
// Markdown rendering.
func RenderHTML(w io.Writer, data ReportData) error {
	var md bytes.Buffer
	if err := RenderMarkdown(&md, data); err != nil {
		return err
	}

	conv := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := conv.Convert(md.Bytes(), w); err != nil {
		return fmt.Errorf("failed to convert report to HTML: %w", err)
	}
	return nil
}

// markdownCell keeps free text from breaking the table layout.
func markdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// Package renderer turns fundwatch report structures into markdown. It is
// pure formatting: all business logic stays in the root package.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/rsarin/fundwatch"
)

//go:embed *.md
var templates embed.FS

// Changes renders a ChangeReport to a markdown string.
func Changes(r *fundwatch.ChangeReport) string {
	partials := map[string]string{
		"changes_title": "changes_title.md",
		"changes_fund":  "changes_fund.md",
	}
	return renderTemplate("changes", "changes.md", partials, r)
}

// Holdings renders a HoldingReport to a markdown string.
func Holdings(r *fundwatch.HoldingReport) string {
	partials := map[string]string{
		"holding_title": "holding_title.md",
		"holding_funds": "holding_funds.md",
	}
	return renderTemplate("holding", "holding.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that
// depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := templates.ReadFile(mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := templates.ReadFile(file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

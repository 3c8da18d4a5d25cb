package page

import (
	"bytes"
	"fmt"
	"html/template"

	"statuspage/pkg/config"
	"statuspage/pkg/status"
)

// Data is the value set the page template is rendered with.
type Data struct {
	Systems   []status.SystemStatus
	Incidents []status.Incident
	Panels    []status.Panel
	Config    *config.Config
}

// Render executes the page template, fetched from the pages branch, against
// the derived data.
func Render(templateText string, data Data) ([]byte, error) {
	funcs := template.FuncMap{
		// The footer is operator-supplied HTML; render it raw like the rest
		// of the incident bodies.
		"safe": func(s string) template.HTML { return template.HTML(s) },
	}

	tmpl, err := template.New("page").Funcs(funcs).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render page template: %w", err)
	}

	return buf.Bytes(), nil
}

package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var modalTemplate = template.Must(template.ParseFS(templateFS, "templates/modal.html"))

// HTML renders the modal content region. Server strings are escaped.
func HTML(m Modal) (template.HTML, error) {
	var buf bytes.Buffer
	if err := modalTemplate.ExecuteTemplate(&buf, "modal", m); err != nil {
		return "", fmt.Errorf("execute modal template: %w", err)
	}
	return template.HTML(buf.String()), nil
}

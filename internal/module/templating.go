package module

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ExampleMarker is the first line of the optional trailing example block
// that the examples option appends to rendered content.
const ExampleMarker = ".Example"

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// templateData is the substitution set available to the embedded templates.
type templateData struct {
	ID       string
	Title    string
	FileName string
	Comments bool
	Examples bool
	Includes []string
}

// render produces the full file body for one module type.
func render(t Type, data templateData) (string, error) {
	var b strings.Builder
	name := t.String() + Extension + ".tmpl"
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("rendering %s template: %w", t, err)
	}
	return b.String(), nil
}

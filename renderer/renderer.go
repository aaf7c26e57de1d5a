package renderer

import (
	"fmt"
	"strings"
	"text/template"
)

// renderTemplate is a generic utility to render a report template against
// its data. Template errors are rendered into the output rather than
// returned, a report is always produced.
func renderTemplate(name, content string, data any) string {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}

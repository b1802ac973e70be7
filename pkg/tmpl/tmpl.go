// Package tmpl provides text template rendering for message bodies.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// plural returns singular when n is 1 and pluralForm otherwise.
func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

var funcs = template.FuncMap{
	"join":   strings.Join,
	"trim":   strings.TrimSpace,
	"upper":  strings.ToUpper,
	"plural": plural,
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - join: Join string slice with separator (e.g., join .Names ", ")
//   - trim: Trim surrounding whitespace
//   - upper: Uppercase a string
//   - plural: Pick a word form by count (e.g., plural .Count "task" "tasks")
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

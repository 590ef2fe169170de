// Package tmpl renders text templates with a small set of helpers for
// generating configuration files.
package tmpl

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// quote returns s as a double-quoted scalar. Go escapes are a subset of
// YAML's double-quoted escapes, so the result is valid YAML.
func quote(s string) string {
	return strconv.Quote(s)
}

var funcs = template.FuncMap{
	"quote": quote,
	"join":  strings.Join,
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - quote: double-quote a string for use as a YAML scalar
//   - join: join string slice with separator (e.g., join .Seed ", ")
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

// Package jsoncolor renders JSON documents with theme colors for terminal
// output.
package jsoncolor

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/colonyops/nupedia/internal/core/styles"
)

// Colorize indents data and colors keys, strings, numbers and literals with
// the active theme. Invalid JSON is returned unchanged.
func Colorize(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	raw := buf.String()

	literals := []struct {
		word  string
		style lipgloss.Style
	}{
		{"true", styles.WarningStyle},
		{"false", styles.WarningStyle},
		{"null", styles.ErrorStyle},
	}

	var out strings.Builder
	for i := 0; i < len(raw); {
		ch := raw[i]
		switch {
		case ch == '"':
			end := findStringEnd(raw, i)
			str := raw[i : end+1]
			rest := strings.TrimLeft(raw[end+1:], " \t")
			if strings.HasPrefix(rest, ":") {
				out.WriteString(styles.TextPrimaryBoldStyle.Render(str))
			} else {
				out.WriteString(styles.SuccessStyle.Render(str))
			}
			i = end + 1
			continue

		case ch == '-' || ch >= '0' && ch <= '9':
			end := i + 1
			for end < len(raw) && strings.IndexByte("0123456789.eE+-", raw[end]) >= 0 {
				end++
			}
			out.WriteString(styles.WarningStyle.Render(raw[i:end]))
			i = end
			continue

		case strings.IndexByte("{}[]:,", ch) >= 0:
			out.WriteString(styles.TextMutedStyle.Render(string(ch)))
			i++
			continue
		}

		matched := false
		for _, lit := range literals {
			if strings.HasPrefix(raw[i:], lit.word) {
				out.WriteString(lit.style.Render(lit.word))
				i += len(lit.word)
				matched = true
				break
			}
		}
		if !matched {
			out.WriteByte(ch)
			i++
		}
	}

	return out.String()
}

// findStringEnd returns the index of the quote closing the string that
// starts at pos.
func findStringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return len(s) - 1
}

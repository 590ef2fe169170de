package initcmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/colonyops/nupedia/internal/core/config"
	"github.com/colonyops/nupedia/pkg/tmpl"
)

// Answers are the values collected by the wizard.
type Answers struct {
	Theme        string
	Markdown     bool
	SidebarWidth int
	HistoryLimit int
	Seed         []string
	ArticleFile  string
}

// DefaultAnswers returns answers matching the built-in configuration.
func DefaultAnswers() Answers {
	cfg := config.DefaultConfig()
	return Answers{
		Theme:        cfg.TUI.Theme,
		Markdown:     cfg.TUI.Markdown,
		SidebarWidth: cfg.TUI.SidebarWidth,
		HistoryLimit: cfg.History.Limit,
		Seed:         cfg.History.Seed,
	}
}

type binding struct {
	Action string
	Keys   []string
}

const configTemplate = `# Nupedia configuration.
# Check edits with: nupedia config validate

tui:
  theme: {{ .Theme | quote }}
  markdown: {{ .Markdown }}
  sidebar_width: {{ .SidebarWidth }}

history:
  limit: {{ .HistoryLimit }}
{{- if .Seed }}
  seed:
{{- range .Seed }}
    - {{ quote . }}
{{- end }}
{{- else }}
  seed: []
{{- end }}
{{- if .ArticleFile }}

article:
  file: {{ .ArticleFile | quote }}
{{- end }}

# Keybindings replace the default keys of an action:
# keybindings:
{{- range .Keybindings }}
#   {{ .Action }}: [{{ join .Keys ", " }}]
{{- end }}
`

// GenerateConfig renders a starter config file from the answers.
func GenerateConfig(a Answers) (string, error) {
	defaults := config.DefaultConfig().Keybindings

	bindings := make([]binding, 0, len(defaults))
	for _, action := range config.Actions() {
		keys := make([]string, 0, len(defaults[action]))
		for _, k := range defaults[action] {
			keys = append(keys, strconv.Quote(k))
		}
		bindings = append(bindings, binding{Action: action, Keys: keys})
	}

	out, err := tmpl.Render(configTemplate, struct {
		Answers
		Keybindings []binding
	}{Answers: a, Keybindings: bindings})
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return out, nil
}

// ParseSeed splits a comma-separated list, dropping blanks and duplicates.
func ParseSeed(s string) []string {
	var seed []string
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" && !slices.Contains(seed, entry) {
			seed = append(seed, entry)
		}
	}
	return seed
}

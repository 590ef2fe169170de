package doctor

import (
	"context"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// isTerminalFunc reports whether fd is a terminal. Package-level variable to
// allow test overrides.
var isTerminalFunc = term.IsTerminal

// TerminalCheck verifies the TUI can run in the current terminal.
type TerminalCheck struct{}

// NewTerminalCheck creates a new terminal check.
func NewTerminalCheck() *TerminalCheck {
	return &TerminalCheck{}
}

func (c *TerminalCheck) Name() string {
	return "Terminal"
}

func (c *TerminalCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if isTerminalFunc(int(os.Stdout.Fd())) {
		result.Items = append(result.Items, pass("Interactive", "stdout is a terminal"))
	} else {
		result.Items = append(result.Items, fail("Interactive", "stdout is not a terminal; the TUI needs one"))
	}

	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		result.Items = append(result.Items, pass("Colors", "true color"))
	case termenv.ANSI256:
		result.Items = append(result.Items, pass("Colors", "256 colors"))
	case termenv.ANSI:
		result.Items = append(result.Items, warn("Colors", "16 colors; themes are approximated"))
	default:
		result.Items = append(result.Items, warn("Colors", "no color support detected"))
	}

	return result
}

// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/colonyops/nupedia/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to a writer.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter returns a context carrying p.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(icon, msg string) {
	if icon != "" {
		msg = icon + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

// Printf prints an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line("", fmt.Sprintf(format, args...))
}

// Success prints msg with a success mark.
func (p *Printer) Success(msg string) {
	p.line(styles.SuccessStyle.Render("✔"), msg)
}

// Successf prints a formatted line with a success mark.
func (p *Printer) Successf(format string, args ...any) {
	p.Success(fmt.Sprintf(format, args...))
}

// Infof prints a formatted informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextPrimaryStyle.Render("•"), fmt.Sprintf(format, args...))
}

// Warnf prints a formatted warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.WarningStyle.Render("●"), fmt.Sprintf(format, args...))
}

// Errorf prints a formatted error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle.Render("✘"), fmt.Sprintf(format, args...))
}

// Section prints a bold heading followed by a divider.
func (p *Printer) Section(title string) {
	p.line("", styles.CommandHeaderStyle.Render(title))
	p.line("", styles.DividerStyle.Render(strings.Repeat("─", 40)))
}

// CheckItem prints a passing check with an optional detail.
func (p *Printer) CheckItem(label, detail string) {
	p.item(styles.SuccessStyle.Render("✔"), label, detail)
}

// WarnItem prints a check that passed with a warning.
func (p *Printer) WarnItem(label, detail string) {
	p.item(styles.WarningStyle.Render("●"), label, detail)
}

// FailItem prints a failing check.
func (p *Printer) FailItem(label, detail string) {
	p.item(styles.ErrorStyle.Render("✘"), label, detail)
}

func (p *Printer) item(icon, label, detail string) {
	if detail != "" {
		detail = " " + styles.TextMutedStyle.Render(detail)
	}
	_, _ = fmt.Fprintf(p.w, "  %s %s%s\n", icon, label, detail)
}

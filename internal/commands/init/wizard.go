// Package initcmd implements the interactive setup wizard behind
// `nupedia init`.
package initcmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/nupedia/internal/core/config"
	"github.com/colonyops/nupedia/internal/core/doctor"
	"github.com/colonyops/nupedia/internal/core/styles"
	"github.com/colonyops/nupedia/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions

	// confirm and prompt are replaced in tests.
	confirm func(title, description string) (bool, error)
	prompt  func(a *Answers) error
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{
		opts:    opts,
		confirm: confirmOverwrite,
		prompt:  promptAnswers,
	}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		overwrite, err := w.confirm("Config file already exists", w.opts.ConfigPath+"\nOverwrite? (a backup will be created)")
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers()
	if !w.opts.Yes {
		if err := w.prompt(&answers); err != nil {
			return err
		}
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	content, err := GenerateConfig(answers)
	if err != nil {
		return err
	}
	if err := WriteConfig(content, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	result := NewInitCheck(w.opts.ConfigPath, answers).Run(ctx)

	p.Section(result.Name)
	for _, item := range result.Items {
		switch item.Status {
		case doctor.StatusPass:
			p.CheckItem(item.Label, item.Detail)
		case doctor.StatusWarn:
			p.WarnItem(item.Label, item.Detail)
		case doctor.StatusFail:
			p.FailItem(item.Label, item.Detail)
		}
	}

	w.printNextSteps(p)
	return nil
}

func confirmOverwrite(title, description string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Value(&overwrite).
		Run()
	return overwrite, err
}

func promptAnswers(a *Answers) error {
	limit := strconv.Itoa(a.HistoryLimit)
	seed := strings.Join(a.Seed, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(styles.ThemeNames()...)...).
				Value(&a.Theme),
			huh.NewConfirm().
				Title("Render articles as markdown?").
				Description("Sections are rendered with glamour instead of plain text").
				Value(&a.Markdown),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Search history size").
				Description(fmt.Sprintf("Number of recent searches to keep (1-%d)", config.MaxHistoryLimit)).
				Validate(validateLimit).
				Value(&limit),
			huh.NewInput().
				Title("Seeded searches").
				Description("Comma-separated list shown on the home page at startup").
				Value(&seed),
			huh.NewInput().
				Title("Article file").
				Description("Optional file whose contents replace the welcome article").
				Value(&a.ArticleFile),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	a.HistoryLimit, _ = strconv.Atoi(strings.TrimSpace(limit))
	a.Seed = ParseSeed(seed)
	a.ArticleFile = strings.TrimSpace(a.ArticleFile)
	return nil
}

func validateLimit(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < 1 || n > config.MaxHistoryLimit {
		return fmt.Errorf("must be between 1 and %d", config.MaxHistoryLimit)
	}
	return nil
}

func (w *Wizard) printNextSteps(p *printer.Printer) {
	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Run 'nupedia config validate' after editing %s", w.opts.ConfigPath)
	p.Printf("  2. Run 'nupedia' to open the wiki")
}

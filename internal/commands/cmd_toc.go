package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/nupedia/internal/core/article"
	"github.com/colonyops/nupedia/internal/core/styles"
	"github.com/colonyops/nupedia/internal/tui/jsoncolor"
	"github.com/colonyops/nupedia/pkg/iojson"
)

type TocCmd struct {
	flags  *Flags
	input  iojson.TextReader
	title  string
	asJSON bool
}

// NewTocCmd creates a new toc command.
func NewTocCmd(flags *Flags) *TocCmd {
	return &TocCmd{flags: flags}
}

// Register adds the toc command to the application.
func (cmd *TocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "toc",
		Usage:     "Print the table of contents of an article",
		UsageText: "nupedia toc [options]",
		Description: `Splits an article into sections on blank lines and prints one entry per
section. Reads --file, or stdin when input is piped, or the configured article
otherwise.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.StringFlag{
				Name:        "title",
				Usage:       "article title (defaults to the configured title)",
				Destination: &cmd.title,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the table of contents as JSON",
				Destination: &cmd.asJSON,
			},
		},
		Action: cmd.run,
	})
	return app
}

// tocOutput is the JSON shape of the toc command.
type tocOutput struct {
	Title    string             `json:"title"`
	Sections int                `json:"sections"`
	Entries  []article.TOCEntry `json:"entries"`
}

func (cmd *TocCmd) run(_ context.Context, c *cli.Command) error {
	doc, err := cmd.article()
	if err != nil {
		return err
	}

	sections := doc.Sections()
	out := tocOutput{
		Title:    doc.Title,
		Sections: len(sections),
		Entries:  article.TableOfContents(sections),
	}

	w := c.Root().Writer
	if cmd.asJSON {
		return writeJSON(w, out)
	}
	return writeTOC(w, out)
}

// article resolves the input article: explicit input first, then the
// configured article.
func (cmd *TocCmd) article() (article.Article, error) {
	cfg, err := cmd.flags.LoadedConfig()
	if err != nil {
		return article.Article{}, err
	}

	doc := article.Article{Title: cfg.Article.Title, Content: cfg.Article.Content}

	content, err := cmd.input.Read()
	switch {
	case errors.Is(err, iojson.ErrNoInput):
	case err != nil:
		return article.Article{}, err
	default:
		doc.Content = content
	}

	if cmd.title != "" {
		doc.Title = cmd.title
	}
	return doc, nil
}

func writeJSON(w io.Writer, out tocOutput) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		data, err := iojson.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshal toc: %w", err)
		}
		_, err = fmt.Fprintln(w, jsoncolor.Colorize(data))
		return err
	}
	return iojson.WriteWith(w, os.Stderr, out)
}

func writeTOC(w io.Writer, out tocOutput) error {
	if _, err := fmt.Fprintln(w, styles.CommandHeaderStyle.Render(out.Title)); err != nil {
		return err
	}
	if len(out.Entries) == 0 {
		_, err := fmt.Fprintln(w, styles.TextMutedStyle.Render("No sections"))
		return err
	}
	for _, e := range out.Entries {
		_, err := fmt.Fprintf(w, "%2d. %s %s\n", e.Index+1, e.Label, styles.TextMutedStyle.Render("#"+e.Anchor))
		if err != nil {
			return err
		}
	}
	return nil
}

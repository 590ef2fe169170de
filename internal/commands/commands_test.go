package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/nupedia/internal/core/article"
	"github.com/colonyops/nupedia/internal/core/config"
	"github.com/colonyops/nupedia/internal/printer"
	"github.com/colonyops/nupedia/pkg/tuitest"
)

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

// runApp runs args against a root command holding cmd and returns stdout
// plus printer output.
func runApp(t *testing.T, cmd registrar, args ...string) (string, string, error) {
	t.Helper()

	var out, pout bytes.Buffer
	app := &cli.Command{
		Name:           "nupedia",
		Writer:         &out,
		ErrWriter:      &pout,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = cmd.Register(app)

	ctx := printer.WithPrinter(context.Background(), printer.New(&pout))
	err := app.Run(ctx, append([]string{"nupedia"}, args...))
	return out.String(), tuitest.StripANSI(pout.String()), err
}

func testFlags(t *testing.T) *Flags {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Article.Title = "Configured"
	cfg.Article.Content = "one two three four\n\nfive six"
	return &Flags{
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
		Config:     &cfg,
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "article.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTocCmd_Text(t *testing.T) {
	path := writeFile(t, "Rome was not built in a day\n\nIt took a while")

	out, _, err := runApp(t, NewTocCmd(testFlags(t)), "toc", "--file", path, "--title", "Rome")
	require.NoError(t, err)

	out = tuitest.StripANSI(out)
	assert.Contains(t, out, "Rome")
	assert.Contains(t, out, " 1. Rome was not... #section-0")
	assert.Contains(t, out, " 2. It took a... #section-1")
}

func TestTocCmd_JSON(t *testing.T) {
	path := writeFile(t, "alpha beta\n\n\n\ngamma")

	out, _, err := runApp(t, NewTocCmd(testFlags(t)), "toc", "--file", path, "--json")
	require.NoError(t, err)

	var got tocOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "Configured", got.Title, "title falls back to the configured article")
	assert.Equal(t, 2, got.Sections)
	assert.Equal(t, []article.TOCEntry{
		{Index: 0, Anchor: "section-0", Label: "alpha beta..."},
		{Index: 1, Anchor: "section-1", Label: "gamma..."},
	}, got.Entries)
}

func TestTocCmd_MissingFile(t *testing.T) {
	_, _, err := runApp(t, NewTocCmd(testFlags(t)), "toc", "--file", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTocCmd_ConfigError(t *testing.T) {
	flags := &Flags{ConfigErr: errors.New("bad yaml")}

	_, _, err := runApp(t, NewTocCmd(flags), "toc", "--file", writeFile(t, "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config: bad yaml")
}

func TestConfigValidateCmd_ValidJSON(t *testing.T) {
	out, _, err := runApp(t, NewConfigValidateCmd(testFlags(t)), "config", "validate", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Valid  bool              `json:"valid"`
		Errors []validationError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Valid)
	assert.Empty(t, got.Errors)
}

func TestConfigValidateCmd_Warnings(t *testing.T) {
	flags := testFlags(t)
	flags.Config.History.Seed = []string{"Go", "Go"}

	_, printed, err := runApp(t, NewConfigValidateCmd(flags), "config", "validate")
	require.NoError(t, err)

	assert.Contains(t, printed, `duplicate entry "Go" is ignored`)
	assert.Contains(t, printed, "history.seed[1]")
	assert.Contains(t, printed, "Configuration is valid")
}

func TestConfigValidateCmd_LoadError(t *testing.T) {
	flags := &Flags{ConfigErr: errors.New("yaml: line 3: bad indentation")}

	out, _, err := runApp(t, NewConfigValidateCmd(flags), "config", "validate", "--format", "json")

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())

	var got struct {
		Valid  bool              `json:"valid"`
		Errors []validationError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "config", got.Errors[0].Field)
	assert.Contains(t, got.Errors[0].Message, "bad indentation")
}

func TestFieldErrors_Nil(t *testing.T) {
	assert.Nil(t, fieldErrors(nil))
}

func TestDoctorCmd_JSON(t *testing.T) {
	out, _, _ := runApp(t, NewDoctorCmd(testFlags(t)), "doctor", "--format", "json")

	var got struct {
		Healthy bool `json:"healthy"`
		Checks  []struct {
			Name string `json:"name"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Checks, 2)
	assert.Equal(t, "Configuration", got.Checks[0].Name)
	assert.Equal(t, "Terminal", got.Checks[1].Name)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a loaded default Config for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load("")
	require.NoError(t, err)
	return cfg
}

func hasFieldError(t *testing.T, err error, field string) bool {
	t.Helper()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	for _, e := range fieldErrs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep("")
	assert.NoError(t, err, "expected valid config")
}

func TestValidateDeep_RunsBasicValidation(t *testing.T) {
	cfg := validConfig(t)
	cfg.History.Limit = 0

	err := cfg.ValidateDeep("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.limit")
}

func TestValidateDeep_MissingConfigFileIsFine(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(filepath.Join(t.TempDir(), "config.yaml"))
	assert.NoError(t, err)
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := validConfig(t)

	err := cfg.ValidateDeep(tmpDir)

	assert.True(t, hasFieldError(t, err, "config_file"), "expected error about config file being a directory")
}

func TestValidateDeep_ArticleFileMissing(t *testing.T) {
	cfg := validConfig(t)
	cfg.Article.File = filepath.Join(t.TempDir(), "missing.md")

	err := cfg.ValidateDeep("")

	assert.True(t, hasFieldError(t, err, "article.file"), "expected error about article file")
}

func TestValidateDeep_ArticleFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)
	cfg.Article.File = t.TempDir()

	err := cfg.ValidateDeep("")

	assert.True(t, hasFieldError(t, err, "article.file"), "expected error about article file")
}

func TestValidateDeep_ArticleFileExists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("x"), 0o644))

	cfg := validConfig(t)
	cfg.Article.File = "a.md"

	err := cfg.ValidateDeep(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}

func TestValidateDeep_KeyConflict(t *testing.T) {
	cfg := validConfig(t)
	cfg.Keybindings[ActionEdit] = []string{"t"}

	err := cfg.ValidateDeep("")

	// "edit" sorts before "toggle_sidebar", so the latter reports the conflict.
	assert.True(t, hasFieldError(t, err, "keybindings.toggle_sidebar"), "expected key conflict error")
}

func TestWarnings_SeedExceedsLimit(t *testing.T) {
	cfg := validConfig(t)
	cfg.History.Limit = 2

	warnings := cfg.Warnings()

	require.Len(t, warnings, 1)
	assert.Equal(t, "History", warnings[0].Category)
	assert.Equal(t, "history.seed", warnings[0].Item)
}

func TestWarnings_DuplicateSeed(t *testing.T) {
	cfg := validConfig(t)
	cfg.History.Seed = []string{"Go", "Rust", "Go"}

	warnings := cfg.Warnings()

	require.Len(t, warnings, 1)
	assert.Equal(t, "history.seed[2]", warnings[0].Item)
	assert.Contains(t, warnings[0].Message, `"Go"`)
}

func TestWarnings_Defaults(t *testing.T) {
	cfg := validConfig(t)
	assert.Empty(t, cfg.Warnings())
}

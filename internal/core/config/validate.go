package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// file accessibility and keybinding conflicts. The configPath argument specifies
// the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateArticleFile(configPath),
		c.validateKeyConflicts(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if len(c.History.Seed) > c.History.Limit {
		warnings = append(warnings, ValidationWarning{
			Category: "History",
			Item:     "history.seed",
			Message:  fmt.Sprintf("%d seed entries exceed the limit of %d; extra entries are dropped", len(c.History.Seed), c.History.Limit),
		})
	}

	seen := make(map[string]bool, len(c.History.Seed))
	for i, entry := range c.History.Seed {
		if seen[entry] {
			warnings = append(warnings, ValidationWarning{
				Category: "History",
				Item:     fmt.Sprintf("history.seed[%d]", i),
				Message:  fmt.Sprintf("duplicate entry %q is ignored", entry),
			})
		}
		seen[entry] = true
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateArticleFile checks the article file exists and is a regular file.
func (c *Config) validateArticleFile(configPath string) error {
	path := c.ArticlePath(configPath)
	if path == "" {
		return nil
	}

	return criterio.Run("article.file", path, isRegularFile)
}

func isRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	return nil
}

// validateKeyConflicts reports keys bound to more than one action.
func (c *Config) validateKeyConflicts() error {
	var errs criterio.FieldErrorsBuilder

	owners := make(map[string]string)
	for _, action := range Actions() {
		keys := slices.Clone(c.Keybindings[action])
		slices.Sort(keys)
		for _, key := range keys {
			if other, ok := owners[key]; ok {
				errs = errs.Append(fmt.Sprintf("keybindings.%s", action), fmt.Errorf("key %q is already bound to %q", key, other))
				continue
			}
			owners[key] = action
		}
	}

	return errs.ToError()
}

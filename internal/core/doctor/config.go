package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/nupedia/internal/core/config"
)

// ConfigCheck loads and deep-validates the config file.
type ConfigCheck struct {
	configPath string
}

// NewConfigCheck creates a config check for the file at configPath.
func NewConfigCheck(configPath string) *ConfigCheck {
	return &ConfigCheck{configPath: configPath}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if _, err := os.Stat(c.configPath); errors.Is(err, os.ErrNotExist) {
		result.Items = append(result.Items, warn("Config file", c.configPath+" not found, using defaults"))
	} else {
		result.Items = append(result.Items, pass("Config file", c.configPath))
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		result.Items = append(result.Items, fail("Load", err.Error()))
		return result
	}
	result.Items = append(result.Items, pass("Load", fmt.Sprintf("theme %s, history limit %d", cfg.TUI.Theme, cfg.History.Limit)))

	if err := cfg.ValidateDeep(c.configPath); err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result.Items = append(result.Items, fail(fe.Field, fe.Err.Error()))
			}
		} else {
			result.Items = append(result.Items, fail("Validate", err.Error()))
		}
	} else {
		result.Items = append(result.Items, pass("Validate", "keybindings and files are valid"))
	}

	for _, w := range cfg.Warnings() {
		result.Items = append(result.Items, warn(w.Item, w.Message))
	}

	return result
}

package initcmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"slices"

	"github.com/colonyops/nupedia/internal/core/config"
	"github.com/colonyops/nupedia/internal/core/doctor"
)

// lookPath is swapped out by tests.
var lookPath = exec.LookPath

// InitCheck verifies the file written by the wizard loads back with the
// chosen answers.
type InitCheck struct {
	configPath string
	answers    Answers
}

// NewInitCheck creates a new init validation check.
func NewInitCheck(configPath string, answers Answers) *InitCheck {
	return &InitCheck{configPath: configPath, answers: answers}
}

func (c *InitCheck) Name() string {
	return "Init Validation"
}

func (c *InitCheck) Run(_ context.Context) doctor.Result {
	result := doctor.Result{Name: c.Name()}

	result.Items = append(result.Items, c.checkConfigFile())
	result.Items = append(result.Items, c.checkRoundTrip())
	result.Items = append(result.Items, c.checkBinary())

	return result
}

func (c *InitCheck) checkConfigFile() doctor.CheckItem {
	if _, err := os.Stat(c.configPath); err != nil {
		return doctor.CheckItem{
			Label:  "Config file",
			Status: doctor.StatusFail,
			Detail: c.configPath + " not found",
		}
	}
	return doctor.CheckItem{
		Label:  "Config file",
		Status: doctor.StatusPass,
		Detail: c.configPath,
	}
}

func (c *InitCheck) checkRoundTrip() doctor.CheckItem {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return doctor.CheckItem{
			Label:  "Settings",
			Status: doctor.StatusFail,
			Detail: err.Error(),
		}
	}

	a := c.answers
	applied := cfg.TUI.Theme == a.Theme &&
		cfg.TUI.Markdown == a.Markdown &&
		cfg.History.Limit == a.HistoryLimit &&
		slices.Equal(cfg.History.Seed, a.Seed)
	if !applied {
		return doctor.CheckItem{
			Label:  "Settings",
			Status: doctor.StatusFail,
			Detail: "loaded config does not match the chosen settings",
		}
	}

	return doctor.CheckItem{
		Label:  "Settings",
		Status: doctor.StatusPass,
		Detail: fmt.Sprintf("theme %s, %d seeded searches", cfg.TUI.Theme, len(cfg.History.Seed)),
	}
}

func (c *InitCheck) checkBinary() doctor.CheckItem {
	path, err := lookPath("nupedia")
	if err != nil {
		return doctor.CheckItem{
			Label:  "nupedia binary",
			Status: doctor.StatusWarn,
			Detail: "not found in PATH",
		}
	}
	return doctor.CheckItem{
		Label:  "nupedia binary",
		Status: doctor.StatusPass,
		Detail: path,
	}
}

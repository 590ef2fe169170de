package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/nupedia/internal/core/config"
)

type Flags struct {
	LogLevel     string
	LogFile      string
	ConfigPath   string
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands.
	// ConfigErr holds the load error instead so that diagnostic commands
	// can still run against a broken file.
	Config    *config.Config
	ConfigErr error
}

// LoadedConfig returns the config loaded by the Before hook.
func (f *Flags) LoadedConfig() (*config.Config, error) {
	if f.ConfigErr != nil {
		return nil, fmt.Errorf("load config: %w", f.ConfigErr)
	}
	return f.Config, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "nupedia", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/nupedia/nupedia.log
// On Linux: $XDG_STATE_HOME/nupedia/nupedia.log (defaults to ~/.local/state/nupedia/nupedia.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "nupedia", "nupedia.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "nupedia", "nupedia.log")
	}

	return filepath.Join(home, ".local", "state", "nupedia", "nupedia.log")
}

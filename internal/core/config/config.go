// Package config handles configuration loading and validation for nupedia.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/nupedia/internal/core/article"
	"github.com/colonyops/nupedia/internal/core/styles"
	"github.com/colonyops/nupedia/internal/core/validate"
	"github.com/colonyops/nupedia/internal/wiki"
)

// Built-in action names for keybindings.
const (
	ActionHome          = "home"
	ActionRequest       = "request"
	ActionSearch        = "search"
	ActionEdit          = "edit"
	ActionToggleSidebar = "toggle_sidebar"
	ActionNextSection   = "next_section"
	ActionPrevSection   = "prev_section"
	ActionSave          = "save"
	ActionPreview       = "preview"
	ActionHelp          = "help"
	ActionClearActivity = "clear_activity"
	ActionQuit          = "quit"
)

// Limits for numeric settings.
const (
	MaxHistoryLimit     = 100
	MinSidebarWidth     = 16
	MaxSidebarWidth     = 60
	DefaultSidebarWidth = 28
)

// defaultKeybindings maps each action to the keys that trigger it. Keys
// written with a ctrl modifier also work while a text field has focus.
var defaultKeybindings = map[string][]string{
	ActionHome:          {"ctrl+o", "g"},
	ActionRequest:       {"ctrl+r", "n"},
	ActionSearch:        {"/", "ctrl+f"},
	ActionEdit:          {"e"},
	ActionToggleSidebar: {"t"},
	ActionNextSection:   {"]"},
	ActionPrevSection:   {"["},
	ActionSave:          {"ctrl+s"},
	ActionPreview:       {"ctrl+p"},
	ActionHelp:          {"?"},
	ActionClearActivity: {"x"},
	ActionQuit:          {"q", "ctrl+c"},
}

// Config holds the application configuration.
type Config struct {
	TUI         TUIConfig           `yaml:"tui"`
	History     HistoryConfig       `yaml:"history"`
	Article     ArticleConfig       `yaml:"article"`
	Keybindings map[string][]string `yaml:"keybindings"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme        string `yaml:"theme"`         // palette name, see styles.ThemeNames
	Markdown     bool   `yaml:"markdown"`      // render article sections as markdown
	SidebarWidth int    `yaml:"sidebar_width"` // table of contents width in cells
}

// HistoryConfig holds recent search settings.
type HistoryConfig struct {
	Limit int      `yaml:"limit"`
	Seed  []string `yaml:"seed"`
}

// ArticleConfig overrides the article shown at startup. When File is set,
// its contents replace Content. Relative paths resolve against the config
// file's directory.
type ArticleConfig struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	File    string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:        styles.DefaultTheme,
			SidebarWidth: DefaultSidebarWidth,
		},
		History: HistoryConfig{
			Limit: article.DefaultHistoryLimit,
			Seed:  article.DefaultSearchHistory(),
		},
		Article: ArticleConfig{
			Title:   article.DefaultTitle,
			Content: article.DefaultContent,
		},
		Keybindings: mergeKeybindings(defaultKeybindings, nil),
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if cfg.Article.File != "" {
		content, err := os.ReadFile(cfg.ArticlePath(configPath))
		if err != nil {
			return nil, fmt.Errorf("read article file: %w", err)
		}
		cfg.Article.Content = string(content)
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.SidebarWidth == 0 {
		c.TUI.SidebarWidth = defaults.TUI.SidebarWidth
	}
	if c.History.Limit == 0 {
		c.History.Limit = defaults.History.Limit
	}
	if c.Article.Title == "" {
		c.Article.Title = defaults.Article.Title
	}
	if c.Article.Content == "" {
		c.Article.Content = defaults.Article.Content
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings replace the default keys for the same action.
func mergeKeybindings(defaults, user map[string][]string) map[string][]string {
	result := make(map[string][]string, len(defaults)+len(user))

	for action, keys := range defaults {
		result[action] = slices.Clone(keys)
	}

	for action, keys := range user {
		result[action] = slices.Clone(keys)
	}

	return result
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a known theme (available: %v)", c.TUI.Theme, styles.ThemeNames())
	}

	if c.TUI.SidebarWidth < MinSidebarWidth || c.TUI.SidebarWidth > MaxSidebarWidth {
		return fmt.Errorf("tui.sidebar_width must be between %d and %d", MinSidebarWidth, MaxSidebarWidth)
	}

	if c.History.Limit < 1 || c.History.Limit > MaxHistoryLimit {
		return fmt.Errorf("history.limit must be between 1 and %d", MaxHistoryLimit)
	}

	for i, entry := range c.History.Seed {
		if err := validate.NotBlank(entry); err != nil {
			return fmt.Errorf("history.seed[%d] %w", i, err)
		}
	}

	for action, keys := range c.Keybindings {
		if !isValidAction(action) {
			return fmt.Errorf("keybinding for unknown action %q", action)
		}
		if len(keys) == 0 {
			return fmt.Errorf("keybinding %q must have at least one key", action)
		}
		if slices.Contains(keys, "") {
			return fmt.Errorf("keybinding %q has an empty key", action)
		}
	}

	return nil
}

// ArticlePath returns the resolved path of the article file, or "" if unset.
func (c *Config) ArticlePath(configPath string) string {
	if c.Article.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Article.File) || configPath == "" {
		return c.Article.File
	}
	return filepath.Join(filepath.Dir(configPath), c.Article.File)
}

// Actions returns every action name that can be bound, sorted.
func Actions() []string {
	actions := make([]string, 0, len(defaultKeybindings))
	for action := range defaultKeybindings {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	return actions
}

func isValidAction(action string) bool {
	_, ok := defaultKeybindings[action]
	return ok
}

// WikiOptions returns the initial wiki state options described by the config.
func (c *Config) WikiOptions() wiki.Options {
	return wiki.Options{
		Article: article.Article{
			Title:   c.Article.Title,
			Content: c.Article.Content,
		},
		HistoryLimit: c.History.Limit,
		SeedHistory:  slices.Clone(c.History.Seed),
	}
}

// Package config loads dbgcmd settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/dbgcmd/internal/logging"
)

// DefaultAllowedChars is the set of characters the console accepts from the
// keyboard when no allow-list is configured.
const DefaultAllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 ._-\"'/\\~"

// Config is the on-disk configuration
type Config struct {
	Theme        string    `json:"theme"`
	AllowedChars string    `json:"allowedChars"`
	StartShown   bool      `json:"startShown"`
	Keys         Keys      `json:"keys"`
	Log          LogConfig `json:"log"`
}

// Keys lists the key names bound to each console action. Names follow
// Bubble Tea's key strings ("up", "ctrl+v", "`").
type Keys struct {
	Toggle     []string `json:"toggle"`
	Backspace  []string `json:"backspace"`
	Older      []string `json:"older"`
	Newer      []string `json:"newer"`
	Confirm    []string `json:"confirm"`
	ClearEntry []string `json:"clearEntry"`
	Paste      []string `json:"paste"`
	Quit       []string `json:"quit"`
}

// LogConfig configures the log file
type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	Format     string `json:"format"`
	MaxSizeMB  int    `json:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Theme:        "charm",
		AllowedChars: DefaultAllowedChars,
		StartShown:   true,
		Keys: Keys{
			Toggle:     []string{"`", "f1"},
			Backspace:  []string{"backspace"},
			Older:      []string{"up", "ctrl+p"},
			Newer:      []string{"down", "ctrl+n"},
			Confirm:    []string{"enter"},
			ClearEntry: []string{"ctrl+u"},
			Paste:      []string{"ctrl+v"},
			Quit:       []string{"ctrl+c"},
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every action has a key and the log level is known.
func (c Config) Validate() error {
	var errs []error

	bindings := map[string][]string{
		"toggle":     c.Keys.Toggle,
		"backspace":  c.Keys.Backspace,
		"older":      c.Keys.Older,
		"newer":      c.Keys.Newer,
		"confirm":    c.Keys.Confirm,
		"clearEntry": c.Keys.ClearEntry,
		"paste":      c.Keys.Paste,
		"quit":       c.Keys.Quit,
	}
	for _, name := range []string{"toggle", "backspace", "older", "newer", "confirm", "clearEntry", "paste", "quit"} {
		if len(bindings[name]) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s has no keys", name))
		}
	}

	if c.Log.Level != "" && !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	if c.AllowedChars == "" {
		errs = append(errs, errors.New("allowedChars is empty"))
	}
	return errors.Join(errs...)
}

// Logging converts the log section for logging.Init
func (c Config) Logging() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}

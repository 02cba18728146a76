package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/dbgcmd/internal/app"
	"github.com/renato0307/dbgcmd/internal/config"
	"github.com/renato0307/dbgcmd/internal/console"
	"github.com/renato0307/dbgcmd/internal/logging"
	"github.com/renato0307/dbgcmd/internal/ui"
)

func main() {
	configFlag := flag.String("config", defaultConfigPath(), "Path to the YAML config file")
	themeFlag := flag.String("theme", "", "Theme to use ("+strings.Join(ui.AvailableThemes(), ", ")+")")
	logFileFlag := flag.String("log-file", "", "Write logs to this file (default: no logging)")
	logLevelFlag := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	logFormatFlag := flag.String("log-format", "", "Log format (text, json)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg, *themeFlag, *logFileFlag, *logLevelFlag, *logFormatFlag)

	if err := logging.Init(cfg.Logging()); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Shutdown()

	c := console.New()
	if !c.Enabled() {
		fmt.Println("Console disabled in this build (noconsole)")
	}
	logging.Info("starting dbgcmd", "console_enabled", c.Enabled(), "theme", cfg.Theme)

	p := tea.NewProgram(
		app.NewModel(c, cfg),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logging.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides config values with flags that were set
func applyFlags(cfg *config.Config, theme, logFile, logLevel, logFormat string) {
	if theme != "" {
		cfg.Theme = theme
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/dbgcmd/config.yaml, or "" when
// no config directory is known
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dbgcmd", "config.yaml")
}

package app

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/combo/internal/config"
	"github.com/five82/combo/internal/prefs"
	"github.com/five82/combo/internal/ui"
)

// Options configure the combo demo.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/combo/prefs.toml
	Theme      string // overrides the saved theme for this run
	LogPath    string // non-empty enables debug logging to this file
}

// Run boots the demo form until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	logger, closeLog, err := openLogger(opts.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	uiOpts, err := load(opts)
	if err != nil {
		return err
	}
	uiOpts.Context = ctx
	uiOpts.Logger = logger

	logger.Printf("starting with %d fields, theme %s", len(uiOpts.Config.Fields), uiOpts.ThemeName)
	return ui.Run(uiOpts)
}

// load resolves config and prefs into UI options.
func load(opts Options) (ui.Options, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return ui.Options{}, fmt.Errorf("load prefs: %w", err)
	}

	theme := userPrefs.Theme
	if opts.Theme != "" {
		theme = opts.Theme
	}

	return ui.Options{
		Config:    &cfg,
		ThemeName: theme,
		PrefsPath: opts.PrefsPath,
	}, nil
}

// openLogger sends the standard logger to path. The terminal belongs to the
// TUI, so without a path everything is discarded.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := tea.LogToFile(path, "combo")
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return log.Default(), func() { _ = f.Close() }, nil
}

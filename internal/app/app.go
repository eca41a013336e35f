package app

import (
	"context"
	"fmt"

	"github.com/davrell/roster/internal/config"
	"github.com/davrell/roster/internal/directory"
	"github.com/davrell/roster/internal/logging"
	"github.com/davrell/roster/internal/prefs"
	"github.com/davrell/roster/internal/state"
	"github.com/davrell/roster/internal/ui"
)

// Options configure the roster application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	APIBase    string // overrides the configured directory API base URL
}

// Run boots the roster TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIBase != "" {
		cfg.APIBase = opts.APIBase
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	log, err := logging.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client, err := directory.NewClient(cfg.APIBase, cfg.Timeout(), log)
	if err != nil {
		return fmt.Errorf("init directory client: %w", err)
	}

	store := state.NewStore()

	log.Infow("starting", "api", cfg.APIBase)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Log:       log,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/glabrego/threadnav/internal/app"
	"github.com/glabrego/threadnav/internal/config"
	"github.com/glabrego/threadnav/internal/fetch"
	"github.com/glabrego/threadnav/internal/storage"
)

// Flags are the global flags shared by every command.
type Flags struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	DBPath     string
	URL        string
	Width      int
}

// Apply overlays explicitly set flags onto cfg.
func (f *Flags) Apply(cfg *config.Config) {
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.LogFile = f.LogFile
	}
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}
}

// Runtime holds what the commands share once flags and config are resolved.
// It is allocated up front and populated in the root command's Before hook.
type Runtime struct {
	Config  config.Config
	Service *app.Service
	Repo    *storage.Repository

	logCloser func()
}

// Setup opens the pin database and wires the service. A database that
// cannot be opened or written is logged and the app runs without pins.
func (rt *Runtime) Setup(ctx context.Context, cfg config.Config, logger zerolog.Logger) {
	rt.Config = cfg

	var pins app.PinStore
	repo, err := openRepository(ctx, cfg.DBPath)
	if err != nil {
		logger.Warn().Err(err).Str("db", cfg.DBPath).Msg("pins unavailable")
	} else {
		rt.Repo = repo
		pins = repo
	}

	rt.Service = app.NewService(fetch.NewClient("", nil), pins, cfg.SiteEnabled, logger)
}

func (rt *Runtime) Close() error {
	if rt.Repo == nil {
		return nil
	}
	err := rt.Repo.Close()
	rt.Repo = nil
	return err
}

func openRepository(ctx context.Context, path string) (*storage.Repository, error) {
	repo, err := storage.NewRepository(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("storage schema: %w", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("storage write check: %w", err)
	}
	return repo, nil
}

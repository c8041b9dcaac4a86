package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/glabrego/threadnav/internal/config"
	"github.com/glabrego/threadnav/internal/logging"
)

// GlobalFlags are the root command's flags, bound to flags.
func GlobalFlags(flags *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file (YAML or TOML)",
			Sources:     cli.EnvVars("THREADNAV_CONFIG"),
			Destination: &flags.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Destination: &flags.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file",
			Destination: &flags.LogFile,
		},
		&cli.StringFlag{
			Name:        "db",
			Usage:       "path to the pin database",
			Destination: &flags.DBPath,
		},
		&cli.StringFlag{
			Name:        "url",
			Usage:       "treat a saved page as if it were served from this URL",
			Destination: &flags.URL,
		},
		&cli.IntFlag{
			Name:        "width",
			Usage:       "layout width used by non-interactive commands",
			Value:       80,
			Destination: &flags.Width,
		},
	}
}

// Before loads the config, sets up the global logger and populates rt.
// An explicitly passed config file that does not exist fails the command;
// an unreadable one is logged and defaults are used.
func (rt *Runtime) Before(flags *Flags) cli.BeforeFunc {
	return func(ctx context.Context, c *cli.Command) (context.Context, error) {
		cfg, cfgErr := config.Load(flags.ConfigPath)
		if cfgErr != nil && !errors.Is(cfgErr, config.ErrConfigFile) {
			return ctx, fmt.Errorf("load config: %w", cfgErr)
		}
		flags.Apply(&cfg)

		logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger
		rt.logCloser = closer

		if cfgErr != nil {
			log.Warn().Err(cfgErr).Msg("using default config")
		}

		rt.Setup(ctx, cfg, logging.Component("app"))
		return ctx, nil
	}
}

// After releases what Before opened. The log file is closed last, even
// when the database fails to close.
func (rt *Runtime) After(_ context.Context, _ *cli.Command) error {
	defer func() {
		if rt.logCloser != nil {
			rt.logCloser()
			rt.logCloser = nil
		}
	}()

	if err := rt.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
		return err
	}
	return nil
}

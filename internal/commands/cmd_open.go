package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/glabrego/threadnav/internal/fetch"
	"github.com/glabrego/threadnav/internal/logging"
	"github.com/glabrego/threadnav/internal/tui"
	"github.com/glabrego/threadnav/internal/tui/actions"
)

// OpenCmd runs the interactive reader. It is the root command's default
// action.
type OpenCmd struct {
	flags *Flags
	rt    *Runtime

	noWatch bool
}

func NewOpenCmd(flags *Flags, rt *Runtime) *OpenCmd {
	return &OpenCmd{flags: flags, rt: rt}
}

// Flags are registered on the root command.
func (cmd *OpenCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-watch",
			Usage:       "do not reload local files when they change",
			Destination: &cmd.noWatch,
		},
	}
}

func (cmd *OpenCmd) Run(ctx context.Context, c *cli.Command) error {
	target := c.Args().First()
	if target == "" {
		return fmt.Errorf("missing conversation: pass a file path or a shared conversation URL")
	}
	if c.Args().Len() > 1 {
		return fmt.Errorf("unexpected arguments after %q", target)
	}

	cfg := cmd.rt.Config
	model := tui.NewModel(cmd.rt.Service, tui.Options{
		Target:          target,
		Override:        cmd.flags.URL,
		ThemeMode:       cfg.Theme,
		ScrollDebounce:  cfg.ScrollDebounce,
		RefreshDebounce: cfg.RefreshDebounce,
		LongPress:       cfg.LongPress,
		TopOffset:       cfg.TopOffset,
		TimelinePadding: cfg.TimelinePadding,
	})
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	model.Bind(program.Send)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if path, ok := fetch.LocalPath(target); ok && !cmd.noWatch {
		logger := logging.Component("watch")
		go func() {
			if err := actions.WatchFile(watchCtx, path, model.FileChanged, logger); err != nil && watchCtx.Err() == nil {
				logger.Warn().Err(err).Msg("file watcher stopped")
			}
		}()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

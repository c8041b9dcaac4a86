package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/glabrego/threadnav/internal/conversation"
)

type AdaptersCmd struct {
	flags *Flags
	rt    *Runtime

	jsonOutput bool
}

func NewAdaptersCmd(flags *Flags, rt *Runtime) *AdaptersCmd {
	return &AdaptersCmd{flags: flags, rt: rt}
}

func (cmd *AdaptersCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "adapters",
		Usage:     "List site adapters and whether the config enables them",
		UsageText: "threadnav adapters [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})
	return root
}

type adapterInfo struct {
	Name    string `json:"name"`
	Host    string `json:"host"`
	Enabled bool   `json:"enabled"`
}

func (cmd *AdaptersCmd) run(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer
	adapters := conversation.Adapters()

	infos := make([]adapterInfo, len(adapters))
	for i, a := range adapters {
		infos[i] = adapterInfo{Name: a.Name(), Host: a.Host(), Enabled: cmd.rt.Config.SiteEnabled(a.Host())}
	}

	if cmd.jsonOutput {
		for _, info := range infos {
			if err := writeLine(out, info); err != nil {
				return fmt.Errorf("encode adapter: %w", err)
			}
		}
		return nil
	}

	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{info.Name, info.Host, strconv.FormatBool(info.Enabled)}
	}
	return writeTable(out, []string{"NAME", "HOST", "ENABLED"}, rows)
}

package commands

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/glabrego/threadnav/internal/app"
	"github.com/glabrego/threadnav/internal/conversation"
)

type PinsCmd struct {
	flags *Flags
	rt    *Runtime

	jsonOutput bool
}

func NewPinsCmd(flags *Flags, rt *Runtime) *PinsCmd {
	return &PinsCmd{flags: flags, rt: rt}
}

func (cmd *PinsCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "pins",
		Usage:     "Show pinned turns",
		UsageText: "threadnav pins [file-or-url] [--json]",
		Description: `Without an argument, lists every conversation that has pins, most recently pinned first.
With a conversation, lists its pinned turns.`,
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

type sessionInfo struct {
	ID         string    `json:"id"`
	Location   string    `json:"location"`
	Pins       int       `json:"pins"`
	LastPinned time.Time `json:"last_pinned"`
}

func (cmd *PinsCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.rt.Repo == nil {
		return fmt.Errorf("pin database unavailable: %s", cmd.rt.Config.DBPath)
	}
	if target := c.Args().First(); target != "" {
		return cmd.listConversation(ctx, c, target)
	}

	sessions, err := cmd.rt.Service.Sessions(ctx)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		for _, s := range sessions {
			info := sessionInfo{ID: s.ID, Location: s.Location, Pins: s.Pins, LastPinned: s.LastPinned}
			if err := writeLine(out, info); err != nil {
				return fmt.Errorf("encode session: %w", err)
			}
		}
		return nil
	}

	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "No pinned conversations")
		return nil
	}

	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = []string{
			s.ID,
			strconv.Itoa(s.Pins),
			s.LastPinned.Local().Format("2006-01-02 15:04"),
			s.Location,
		}
	}
	return writeTable(out, []string{"SESSION", "PINS", "LAST PINNED", "LOCATION"}, rows)
}

func (cmd *PinsCmd) listConversation(ctx context.Context, c *cli.Command, target string) error {
	conv, err := cmd.rt.Service.Open(ctx, target, cmd.flags.URL)
	if err != nil {
		return err
	}
	marked := cmd.rt.Service.LoadMarked(ctx, conv.SessionID)

	items := conversation.Layout(conv.Turns, 80, conversation.WithMarkdownStyle("notty")).Items()
	var pinned []int
	for i := range items {
		if _, ok := marked[app.ItemKey(i)]; ok {
			pinned = append(pinned, i)
		}
	}
	sort.Ints(pinned)

	out := c.Root().Writer
	if cmd.jsonOutput {
		for _, i := range pinned {
			info := itemInfo{Index: i + 1, ID: items[i].ID, Line: int(items[i].Position) + 1, Pinned: true, Prompt: items[i].Label}
			if err := writeLine(out, info); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil
	}

	if len(pinned) == 0 {
		_, _ = fmt.Fprintf(c.Root().ErrWriter, "No pinned turns in %s\n", conv.SessionID)
		return nil
	}

	rows := make([][]string, len(pinned))
	for n, i := range pinned {
		rows[n] = []string{strconv.Itoa(i + 1), clip(items[i].Label, 70)}
	}
	return writeTable(out, []string{"#", "PROMPT"}, rows)
}

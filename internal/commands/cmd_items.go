package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/glabrego/threadnav/internal/app"
	"github.com/glabrego/threadnav/internal/conversation"
)

type ItemsCmd struct {
	flags *Flags
	rt    *Runtime

	// flags
	jsonOutput bool
}

// NewItemsCmd creates the items command
func NewItemsCmd(flags *Flags, rt *Runtime) *ItemsCmd {
	return &ItemsCmd{flags: flags, rt: rt}
}

// Register adds the items command to the application
func (cmd *ItemsCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:      "items",
		Usage:     "List the turns of a conversation",
		UsageText: "threadnav items <file-or-url> [--json]",
		Description: `Loads a conversation the same way the reader does and prints one row per turn:
its index, the document line its header starts on, whether it is pinned and its prompt.

Line numbers depend on --width.`,
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

type itemInfo struct {
	Index  int    `json:"index"`
	ID     string `json:"id"`
	Line   int    `json:"line"`
	Pinned bool   `json:"pinned"`
	Prompt string `json:"prompt"`
}

func (cmd *ItemsCmd) run(ctx context.Context, c *cli.Command) error {
	target := c.Args().First()
	if target == "" {
		return fmt.Errorf("missing conversation: pass a file path or a shared conversation URL")
	}

	conv, err := cmd.rt.Service.Open(ctx, target, cmd.flags.URL)
	if err != nil {
		return err
	}
	marked := cmd.rt.Service.LoadMarked(ctx, conv.SessionID)

	doc := conversation.Layout(conv.Turns, cmd.width(), conversation.WithMarkdownStyle("notty"))
	items := doc.Items()
	infos := make([]itemInfo, len(items))
	for i, item := range items {
		_, pinned := marked[app.ItemKey(i)]
		infos[i] = itemInfo{
			Index:  i + 1,
			ID:     item.ID,
			Line:   int(item.Position) + 1,
			Pinned: pinned,
			Prompt: item.Label,
		}
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		for _, info := range infos {
			if err := writeLine(out, info); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil
	}

	if len(infos) == 0 {
		_, _ = fmt.Fprintf(c.Root().ErrWriter, "No turns found (%s)\n", conv.Adapter.Name())
		return nil
	}

	rows := make([][]string, len(infos))
	for i, info := range infos {
		pin := ""
		if info.Pinned {
			pin = "yes"
		}
		rows[i] = []string{strconv.Itoa(info.Index), strconv.Itoa(info.Line), pin, clip(info.Prompt, 60)}
	}
	return writeTable(out, []string{"#", "LINE", "PINNED", "PROMPT"}, rows)
}

func (cmd *ItemsCmd) width() int {
	if cmd.flags.Width > 0 {
		return cmd.flags.Width
	}
	return 80
}

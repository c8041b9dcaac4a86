package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/urfave/cli/v3"

	"github.com/glabrego/threadnav/internal/commands"
)

// Populated at build-time via -ldflags.
var version = "dev"

func build() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			return mv
		}
	}
	return version
}

func main() {
	ctx := context.Background()

	rt := &commands.Runtime{}
	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "threadnav",
		Usage:     "Navigate long AI chat conversations turn by turn",
		UsageText: "threadnav [global options] <file-or-url> | command [command options]",
		Description: `threadnav opens a ChatGPT or Claude conversation (a shared link or a saved page)
or a Markdown transcript and lets you move between its turns with the keyboard
or the timeline on the right edge. Pinned turns are remembered per conversation.

Local files are reloaded when they change.`,
		Version: build(),
		Flags:   commands.GlobalFlags(flags),
		Before:  rt.Before(flags),
		After:   rt.After,
	}

	openCmd := commands.NewOpenCmd(flags, rt)

	app = commands.NewItemsCmd(flags, rt).Register(app)
	app = commands.NewPinsCmd(flags, rt).Register(app)
	app = commands.NewAdaptersCmd(flags, rt).Register(app)

	app.Flags = append(app.Flags, openCmd.Flags()...)
	app.Action = openCmd.Run

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}
	os.Exit(exitCode)
}

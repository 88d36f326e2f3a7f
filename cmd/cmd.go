// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for msh.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/msh/cmd/config"
	"github.com/matt-FFFFFF/msh/cmd/flags"
	"github.com/matt-FFFFFF/msh/cmd/missing"
	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/lineio"
	"github.com/matt-FFFFFF/msh/internal/shell"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = NewRootCmd()

// NewRootCmd builds the msh command tree.
func NewRootCmd() *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			config.NewConfigCmd(),
			missing.NewMissingCmd(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "msh",
		Description: `msh is a small interactive command interpreter. It reads one line at a time,
runs the builtins cd, history, showpids, exit and quit itself, re-runs earlier
lines with !N and !NN, and starts every other command as a child process.`,
		Usage:     "msh [--config FILE]",
		Version:   fmt.Sprintf("%s (%s)", Version, Commit),
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      flags.Config,
				Aliases:   []string{"c"},
				Usage:     "Load settings from a YAML or HCL file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  flags.Prompt,
				Usage: "Override the prompt",
			},
			&cli.StringFlag{
				Name:  flags.LogLevel,
				Usage: fmt.Sprintf("Log level (DEBUG, INFO, WARN, ERROR), overrides %s", ctxlog.LevelEnvVar()),
			},
			&cli.StringFlag{
				Name:  flags.LogFormat,
				Usage: "Log format, text or json",
				Value: "text",
			},
			&cli.BoolFlag{
				Name:  flags.NoEdit,
				Usage: "Read plain lines even on a terminal",
			},
		},
		Before: beforeFunc,
		Action: actionFunc,
	}
}

func beforeFunc(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	switch format := cmd.String(flags.LogFormat); format {
	case "text":
	case "json":
		ctx = ctxlog.New(ctx, ctxlog.JSONLogger)
	default:
		return ctx, cli.Exit(fmt.Sprintf("invalid log format %q", format), 1)
	}

	lvl := cmd.String(flags.LogLevel)
	if lvl == "" {
		return ctx, nil
	}

	level, ok := ctxlog.ParseLevel(lvl)
	if !ok {
		return ctx, cli.Exit(fmt.Sprintf("invalid log level %q", lvl), 1)
	}

	ctxlog.LevelVar.Set(level)

	return ctx, nil
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	cfg, err := flags.LoadConfig(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	in := lineio.New(lineio.Mode(cfg.LineEditing), cfg.LineMax, os.Stdin, cmd.Root().Writer)
	defer in.Close() //nolint:errcheck

	sh := shell.New(cfg, in, shell.WithOutput(cmd.Root().Writer, cmd.Root().ErrWriter))

	return sh.Run(ctx)
}

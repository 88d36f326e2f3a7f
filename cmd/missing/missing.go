// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package missing is the hidden subcommand started in place of a program that
// could not be found or executed, so that the failure still has a process.
package missing

import (
	"context"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/msh/internal/launcher"
	"github.com/urfave/cli/v3"
)

// NewMissingCmd returns the hidden not-found command.
func NewMissingCmd() *cli.Command {
	return &cli.Command{
		Name:            launcher.MissingCommandName,
		Usage:           "Report a command line that could not be run",
		Hidden:          true,
		SkipFlagParsing: true,
		Action:          actionFunc,
	}
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	line := strings.Join(cmd.Args().Slice(), " ")
	_, _ = fmt.Fprintf(cmd.Root().Writer, "%s: Command not found.\n", line)

	return cli.Exit("", 1)
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config is the subcommand that prints the effective settings and the builtin commands.
package config

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/msh/cmd/flags"
	"github.com/matt-FFFFFF/msh/internal/shell"
	"github.com/urfave/cli/v3"
)

// NewConfigCmd returns the config subcommand.
func NewConfigCmd() *cli.Command {
	return &cli.Command{
		Name:   "config",
		Usage:  "Show the effective configuration and the builtin commands",
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	cfg, err := flags.LoadConfig(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to marshal config: %s", err), 1)
	}

	w := cmd.Root().Writer
	_, _ = fmt.Fprintf(w, "%s\nBuiltin commands:\n\n", out)

	for _, name := range shell.DefaultBuiltins().Names() {
		_, _ = fmt.Fprintf(w, "- %s\n", name)
	}

	return nil
}

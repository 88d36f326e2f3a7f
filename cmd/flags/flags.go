// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package flags holds the root flag names and turns them into a shell configuration.
package flags

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/msh/internal/config"
	"github.com/urfave/cli/v3"
)

// Root command flag names.
const (
	Config    = "config"
	Prompt    = "prompt"
	LogLevel  = "log-level"
	LogFormat = "log-format"
	NoEdit    = "no-edit"
)

// LoadConfig loads the file named by --config and applies --prompt and --no-edit on top.
func LoadConfig(ctx context.Context, cmd *cli.Command) (*config.Config, error) {
	path := cmd.String(Config)

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if cmd.IsSet(Prompt) {
		cfg.Prompt = cmd.String(Prompt)
	}

	if cmd.Bool(NoEdit) {
		cfg.LineEditing = config.LineEditingOff
	}

	return cfg, nil
}

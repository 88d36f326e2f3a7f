// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the msh command interpreter.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/msh/cmd"
	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	err := cmd.RootCmd.Run(ctx, os.Args)

	cancel()

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		os.Exit(exitCoder.ExitCode())
	}

	if err != nil {
		ctxlog.Error(ctx, "shell failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Debug(ctx, "shell exited")
	os.Exit(0)
}

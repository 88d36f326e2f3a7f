// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/matt-FFFFFF/msh/internal/ctxlog"
)

// Builtin is a command run by the shell itself.
type Builtin struct {
	// Record adds the line to the history before Run is called.
	Record bool
	Run    func(ctx context.Context, s *Shell, args []string) (Outcome, error)
}

// Registry maps command names to builtins.
type Registry map[string]Builtin

// Register adds or replaces the builtin called name.
func (r Registry) Register(name string, b Builtin) {
	r[name] = b
}

// Names returns the registered names in order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// DefaultBuiltins returns exit, quit, cd, history and showpids.
func DefaultBuiltins() Registry {
	r := make(Registry)
	r.Register("exit", Builtin{Run: exitBuiltin})
	r.Register("quit", Builtin{Run: exitBuiltin})
	r.Register("cd", Builtin{Record: true, Run: cdBuiltin})
	r.Register("history", Builtin{Record: true, Run: historyBuiltin})
	r.Register("showpids", Builtin{Record: true, Run: showpidsBuiltin})

	return r
}

func exitBuiltin(_ context.Context, _ *Shell, _ []string) (Outcome, error) {
	return Outcome{Action: ActionExit}, nil
}

// cdBuiltin changes to the first argument, or to $HOME without one.
// Further arguments are ignored.
func cdBuiltin(ctx context.Context, s *Shell, args []string) (Outcome, error) {
	dir := os.Getenv("HOME")
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.Chdir(dir); err != nil {
		_, _ = fmt.Fprintf(s.err, "cd: %v\n", err)
		return Outcome{}, nil
	}

	ctxlog.Debug(ctx, "changed directory", "dir", dir)

	return Outcome{}, nil
}

func historyBuiltin(ctx context.Context, s *Shell, _ []string) (Outcome, error) {
	if err := s.history.List(s.out); err != nil {
		ctxlog.Warn(ctx, "failed to write history", "error", err)
	}

	return Outcome{}, nil
}

func showpidsBuiltin(ctx context.Context, s *Shell, _ []string) (Outcome, error) {
	if err := s.pids.List(s.out); err != nil {
		ctxlog.Warn(ctx, "failed to write pids", "error", err)
	}

	return Outcome{}, nil
}

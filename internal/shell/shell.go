// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell implements the read, dispatch and execute loop of msh.
package shell

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/matt-FFFFFF/msh/internal/config"
	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/history"
	"github.com/matt-FFFFFF/msh/internal/launcher"
	"github.com/matt-FFFFFF/msh/internal/lineio"
	"github.com/matt-FFFFFF/msh/internal/pids"
)

// Shell holds the state of one interactive session.
type Shell struct {
	cfg         *config.Config
	in          lineio.Reader
	launcher    launcher.Launcher
	builtins    Registry
	history     *history.History
	pids        *pids.Registry
	singleDigit history.RecallPolicy
	out         io.Writer
	err         io.Writer
}

// Option configures a Shell.
type Option func(*Shell)

// WithOutput sets the writers used for messages and builtin output.
func WithOutput(out, err io.Writer) Option {
	return func(s *Shell) {
		s.out = out
		s.err = err
	}
}

// WithLauncher replaces the launcher used for external commands.
func WithLauncher(l launcher.Launcher) Option {
	return func(s *Shell) {
		s.launcher = l
	}
}

// WithBuiltins replaces the builtin command table.
func WithBuiltins(r Registry) Option {
	return func(s *Shell) {
		s.builtins = r
	}
}

// New creates a shell reading lines from in. A nil cfg uses config.Default.
func New(cfg *config.Config, in lineio.Reader, opts ...Option) *Shell {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Shell{
		cfg:         cfg,
		in:          in,
		launcher:    &launcher.OSLauncher{},
		builtins:    DefaultBuiltins(),
		history:     history.New(cfg.HistorySize),
		pids:        pids.New(cfg.PidSize),
		singleDigit: history.RecallSingleDigit,
		out:         os.Stdout,
		err:         os.Stderr,
	}

	if cfg.SingleDigitRecall == config.RecallInclusive {
		s.singleDigit = history.RecallInclusive
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// History returns the command history of the session.
func (s *Shell) History() *history.History {
	return s.history
}

// Pids returns the pids of the external commands started by the session.
func (s *Shell) Pids() *pids.Registry {
	return s.pids
}

// Run prompts for and dispatches lines until exit or quit is entered, the input
// ends under the exit policy, or a command cannot be started at all.
// A recalled line is dispatched without prompting.
func (s *Shell) Run(ctx context.Context) error {
	var (
		line    string
		pending bool
	)

	for {
		if !pending {
			var err error

			line, err = s.readLine(ctx)
			if errors.Is(err, io.EOF) {
				ctxlog.Debug(ctx, "end of input")
				return nil
			}

			if err != nil {
				return err
			}
		}

		outcome, err := s.Dispatch(ctx, line)
		if err != nil {
			return err
		}

		switch outcome.Action {
		case ActionExit:
			return nil
		case ActionRecall:
			line, pending = outcome.Line, true
		default:
			pending = false
		}
	}
}

// readLine retries interrupted and failed reads. End of input is returned as
// io.EOF under the exit policy and retried otherwise.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		line, err := s.in.ReadLine(s.cfg.Prompt)

		switch {
		case err == nil:
			return line, nil
		case errors.Is(err, io.EOF) && s.cfg.EndOfInput != config.EndOfInputRetry:
			return "", io.EOF
		case errors.Is(err, lineio.ErrInterrupted):
			ctxlog.Debug(ctx, "prompt interrupted")
		default:
			ctxlog.Debug(ctx, "read failed, prompting again", "error", err)
		}
	}
}

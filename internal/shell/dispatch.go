// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/history"
	"github.com/matt-FFFFFF/msh/internal/tokenizer"
)

// Messages printed to standard output.
const (
	MsgTooManyArguments = "Command exceeded maximum argument length."
	MsgNotInHistory     = "Command not in history."
)

// Action tells the loop what to do after a line has been dispatched.
type Action int

const (
	// ActionContinue prompts for the next line.
	ActionContinue Action = iota
	// ActionRecall dispatches Outcome.Line next, without prompting.
	ActionRecall
	// ActionExit ends the loop.
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionRecall:
		return "recall"
	case ActionExit:
		return "exit"
	default:
		return "continue"
	}
}

// Outcome is the result of dispatching one line.
type Outcome struct {
	Action Action
	Line   string
}

// Dispatch classifies line and acts on it. The only error returned is a failure
// to start any process for an external command, which ends the session.
func (s *Shell) Dispatch(ctx context.Context, line string) (Outcome, error) {
	line = strings.TrimRight(line, "\r\n")

	tokens, err := tokenizer.Tokenize(line, s.cfg.MaxArguments)
	if tokens.Empty() {
		return Outcome{}, nil
	}

	if errors.Is(err, tokenizer.ErrTooManyArguments) {
		ctxlog.Debug(ctx, "dispatch", "kind", "oversized", "tokens", len(tokens))
		s.history.Record(line)
		s.println(MsgTooManyArguments)

		return Outcome{}, nil
	}

	name := tokens.Command()

	if b, ok := s.builtins[name]; ok {
		ctxlog.Debug(ctx, "dispatch", "kind", "builtin", "name", name)

		if b.Record {
			s.history.Record(line)
		}

		return b.Run(ctx, s, tokens.Args())
	}

	if n, policy, ok := s.parseRecall(name); ok {
		ctxlog.Debug(ctx, "dispatch", "kind", "recall", "position", n)
		return s.recall(n, policy), nil
	}

	ctxlog.Debug(ctx, "dispatch", "kind", "external", "name", name)
	s.history.Record(line)

	return Outcome{}, s.external(ctx, tokens, line)
}

// parseRecall recognises "!D" and "!DD". Anything else, such as "!123" or "!a",
// is not a recall and runs as an external command.
func (s *Shell) parseRecall(token string) (int, history.RecallPolicy, bool) {
	if len(token) < 2 || token[0] != '!' {
		return 0, nil, false
	}

	digits := token[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, nil, false
		}
	}

	switch len(digits) {
	case 1:
		return int(digits[0] - '0'), s.singleDigit, true
	case 2:
		return int(digits[0]-'0')*10 + int(digits[1]-'0'), history.RecallTwoDigit, true
	default:
		return 0, nil, false
	}
}

func (s *Shell) recall(n int, policy history.RecallPolicy) Outcome {
	line, err := s.history.Recall(n, policy)
	if err != nil {
		s.println(MsgNotInHistory)
		return Outcome{}
	}

	return Outcome{Action: ActionRecall, Line: line}
}

func (s *Shell) external(ctx context.Context, tokens tokenizer.Tokens, line string) error {
	s.flush(ctx)

	res, err := s.launcher.Launch(ctx, tokens, line)
	if err != nil {
		return fmt.Errorf("%s: %w", tokens.Command(), err)
	}

	s.pids.Record(res.Pid)
	ctxlog.Debug(ctx, "command finished", "name", tokens.Command(), "pid", res.Pid, "exit_code", res.ExitCode, "found", res.Found)

	return nil
}

func (s *Shell) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}

// flush pushes buffered output out before a child writes to the same stream.
func (s *Shell) flush(ctx context.Context) {
	f, ok := s.out.(interface{ Flush() error })
	if !ok {
		return
	}

	if err := f.Flush(); err != nil {
		ctxlog.Warn(ctx, "failed to flush output", "error", err)
	}
}

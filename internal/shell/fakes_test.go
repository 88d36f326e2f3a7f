// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/msh/internal/launcher"
)

// scriptReader returns its lines in order, then io.EOF. An error in errs at the
// same index is returned instead of the line.
type scriptReader struct {
	lines   []string
	errs    map[int]error
	prompts int
	calls   int
}

func (r *scriptReader) ReadLine(_ string) (string, error) {
	r.prompts++
	i := r.calls
	r.calls++

	if err, ok := r.errs[i]; ok {
		return "", err
	}

	if i >= len(r.lines) {
		return "", io.EOF
	}

	return r.lines[i], nil
}

func (r *scriptReader) Close() error {
	return nil
}

// fakeLauncher hands out pids from 1001 and behaves like the not-found helper
// for names listed in missing.
type fakeLauncher struct {
	out     io.Writer
	missing map[string]bool
	err     error
	argv    [][]string
	lines   []string
	nextPid int
}

func (f *fakeLauncher) Launch(_ context.Context, argv []string, line string) (launcher.Result, error) {
	if f.err != nil {
		return launcher.Result{ExitCode: -1}, f.err
	}

	f.argv = append(f.argv, append([]string(nil), argv...))
	f.lines = append(f.lines, line)
	f.nextPid++
	pid := 1000 + f.nextPid

	if f.missing[argv[0]] {
		_, _ = fmt.Fprintf(f.out, "%s: Command not found.\n", line)
		return launcher.Result{Pid: pid, ExitCode: 1}, nil
	}

	return launcher.Result{Pid: pid, Found: true}, nil
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/matt-FFFFFF/msh/internal/ctxlog"
)

// MissingCommandName is the hidden subcommand of the msh binary that reports a
// command which could not be run.
const MissingCommandName = "missing"

var (
	// ErrCouldNotStartProcess is returned when no child process could be created at all.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrEmptyCommand is returned when Launch is called without a program name.
	ErrEmptyCommand = errors.New("empty command")
)

// MissingHelper returns the program path and argv of the child that reports line
// as not found. It re-executes the running binary with the hidden missing subcommand.
var MissingHelper = func(line string) (string, []string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", nil, err
	}

	return self, []string{filepath.Base(self), MissingCommandName, line}, nil
}

// ScriptShell runs executable files that the kernel refuses to load because they
// have no interpreter line.
var ScriptShell = "/bin/sh"

// Result describes a finished child.
type Result struct {
	Pid      int  // Process identifier of the child.
	ExitCode int  // Exit status, -1 when it could not be collected.
	Found    bool // False when the not-found helper ran instead of the program.
}

// Launcher starts a program and blocks until it exits.
type Launcher interface {
	// Launch runs argv and waits for it. line is the input exactly as typed and is
	// used in the not-found report. A returned error means no process could be
	// created and the caller should give up.
	Launch(ctx context.Context, argv []string, line string) (Result, error)
}

var _ Launcher = (*OSLauncher)(nil)

// OSLauncher runs programs as operating system processes.
// The zero value inherits the standard streams, environment and working directory
// of the current process.
type OSLauncher struct {
	Files []*os.File // stdin, stdout and stderr of the child.
	Env   []string   // Environment of the child, defaults to os.Environ().
	Dir   string     // Working directory of the child, defaults to the current one.
}

// Launch implements Launcher.
func (l *OSLauncher) Launch(ctx context.Context, argv []string, line string) (Result, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Result{ExitCode: -1}, ErrEmptyCommand
	}

	logger := ctxlog.Logger(ctx).With("command", argv[0])

	path, err := LookPath(argv[0])
	if err == nil {
		ps, startErr := l.start(path, argv)
		if startErr == nil {
			logger.Debug("process started", "path", path, "pid", ps.Pid)
			return l.wait(ctx, ps, true), nil
		}

		err = startErr
	}

	logger.Debug("command cannot be run, starting not-found helper", "error", err)

	helper, helperArgv, err := MissingHelper(line)
	if err != nil {
		return Result{ExitCode: -1}, errors.Join(ErrCouldNotStartProcess, err)
	}

	ps, err := os.StartProcess(helper, helperArgv, l.procAttr())
	if err != nil {
		return Result{ExitCode: -1}, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("not-found helper started", "pid", ps.Pid)

	return l.wait(ctx, ps, false), nil
}

// start runs path, falling back to ScriptShell for a file without an
// interpreter line.
func (l *OSLauncher) start(path string, argv []string) (*os.Process, error) {
	ps, err := os.StartProcess(path, argv, l.procAttr())
	if !errors.Is(err, syscall.ENOEXEC) {
		return ps, err
	}

	shArgv := append([]string{filepath.Base(ScriptShell), path}, argv[1:]...)

	return os.StartProcess(ScriptShell, shArgv, l.procAttr())
}

func (l *OSLauncher) procAttr() *os.ProcAttr {
	files := l.Files
	if len(files) == 0 {
		files = []*os.File{os.Stdin, os.Stdout, os.Stderr}
	}

	env := l.Env
	if env == nil {
		env = os.Environ()
	}

	return &os.ProcAttr{
		Dir:   l.Dir,
		Env:   env,
		Files: files,
	}
}

func (l *OSLauncher) wait(ctx context.Context, ps *os.Process, found bool) Result {
	res := Result{Pid: ps.Pid, Found: found, ExitCode: -1}

	state, err := ps.Wait()
	if err != nil {
		ctxlog.Warn(ctx, "could not collect exit status", "pid", ps.Pid, "error", err)
		return res
	}

	res.ExitCode = state.ExitCode()
	ctxlog.Debug(ctx, "process finished", "pid", ps.Pid, "exitCode", res.ExitCode)

	return res
}

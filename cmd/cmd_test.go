// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/msh/internal/config"
	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// newTestRoot returns a root command writing to a buffer, with process exit stubbed out.
func newTestRoot(t *testing.T) (*cli.Command, *bytes.Buffer, *int) {
	t.Helper()

	exitCode := -1
	stubs := gostub.Stub(&cli.OsExiter, func(code int) {
		exitCode = code
	})
	t.Cleanup(stubs.Reset)

	out := &bytes.Buffer{}
	root := NewRootCmd()
	root.Writer = out
	root.ErrWriter = io.Discard

	return root, out, &exitCode
}

func stubConfigFs(t *testing.T, files map[string]string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stubs := gostub.Stub(&config.FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	var exitCoder cli.ExitCoder
	require.ErrorAs(t, err, &exitCoder)
	assert.Equal(t, code, exitCoder.ExitCode())
}

func TestMissing(t *testing.T) {
	root, out, _ := newTestRoot(t)

	err := root.Run(context.Background(), []string{"msh", "missing", "foobarbaz  -x --help"})
	requireExitCode(t, err, 1)
	assert.Equal(t, "foobarbaz  -x --help: Command not found.\n", out.String())
}

func TestRoot_RunsShellOnStdin(t *testing.T) {
	stdin, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	_, err = stdin.WriteString("history\nexit\nhistory\n")
	require.NoError(t, err)
	_, err = stdin.Seek(0, io.SeekStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stdin.Close() })

	stubs := gostub.Stub(&os.Stdin, stdin)
	t.Cleanup(stubs.Reset)

	root, out, _ := newTestRoot(t)

	require.NoError(t, root.Run(context.Background(), []string{"msh", "--no-edit", "--prompt", "$ "}))
	assert.Equal(t, "$ 1: history\n$ ", out.String())
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	root, _, _ := newTestRoot(t)

	err := root.Run(context.Background(), []string{"msh", "--log-level", "chatty", "config"})
	requireExitCode(t, err, 1)
}

func TestRoot_InvalidLogFormat(t *testing.T) {
	root, _, _ := newTestRoot(t)

	err := root.Run(context.Background(), []string{"msh", "--log-format", "xml", "config"})
	requireExitCode(t, err, 1)
}

func TestRoot_LogLevel(t *testing.T) {
	prev := ctxlog.LevelVar.Level()
	t.Cleanup(func() { ctxlog.LevelVar.Set(prev) })

	root, _, _ := newTestRoot(t)

	require.NoError(t, root.Run(context.Background(), []string{"msh", "--log-level", "debug", "config"}))
	assert.Equal(t, slog.LevelDebug, ctxlog.LevelVar.Level())
}

func TestConfig_ShowsEffectiveSettings(t *testing.T) {
	stubConfigFs(t, map[string]string{"/msh.yaml": "history_size: 7\n"})

	root, out, _ := newTestRoot(t)

	require.NoError(t, root.Run(context.Background(), []string{"msh", "--config", "/msh.yaml", "--no-edit", "config"}))
	assert.Contains(t, out.String(), "history_size: 7")
	assert.Contains(t, out.String(), "pid_size: 15")
	assert.Contains(t, out.String(), "line_editing:")
	assert.Contains(t, out.String(), "off")
	assert.Contains(t, out.String(), "- showpids\n")
}

func TestConfig_LoadFailure(t *testing.T) {
	stubConfigFs(t, nil)

	root, _, _ := newTestRoot(t)

	err := root.Run(context.Background(), []string{"msh", "--config", "/missing.yaml", "config"})
	requireExitCode(t, err, 1)
}

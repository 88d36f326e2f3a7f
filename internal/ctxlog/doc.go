// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger for the shell.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler that writes to stderr, so that log lines
// never interleave with what the shell and its children print on stdout.
package ctxlog

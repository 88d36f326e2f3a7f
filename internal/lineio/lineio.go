// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lineio reads command lines from the user, one prompt at a time.
package lineio

import (
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// DefaultLineMax is the default bound of one input line in bytes, newline included.
const DefaultLineMax = 255

// ErrInterrupted is returned when the user aborts the line being edited (Ctrl+C).
var ErrInterrupted = errors.New("input interrupted")

// Mode selects how lines are read.
type Mode string

// Line editing modes.
const (
	ModeAuto Mode = "auto" // Line editing when stdin and stdout are terminals.
	ModeOn   Mode = "on"   // Always use line editing.
	ModeOff  Mode = "off"  // Plain buffered reads.
)

// Reader reads one line per call.
type Reader interface {
	// ReadLine shows prompt and returns the next line without its trailing newline.
	// io.EOF means the input is closed.
	ReadLine(prompt string) (string, error)
	io.Closer
}

// New returns a Terminal or a Plain reader depending on mode.
func New(mode Mode, lineMax int, in *os.File, out io.Writer) Reader {
	if mode == ModeOn || (mode == ModeAuto && isTerminal(in) && isTerminal(os.Stdout)) {
		return NewTerminal(lineMax)
	}

	return NewPlain(in, out, lineMax)
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// lineBound returns lineMax, or DefaultLineMax when lineMax cannot hold a byte and a newline.
func lineBound(lineMax int) int {
	if lineMax < 2 {
		return DefaultLineMax
	}

	return lineMax
}

// truncate cuts line so that it fits in lineMax bytes once a newline is added.
// It never splits a UTF-8 sequence.
func truncate(line string, lineMax int) string {
	limit := lineBound(lineMax) - 1
	if len(line) <= limit {
		return line
	}

	for limit > 0 && !utf8.RuneStart(line[limit]) {
		limit--
	}

	return line[:limit]
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lineio

import (
	"errors"
	"strings"

	"github.com/peterh/liner"
)

var _ Reader = (*Terminal)(nil)

// Terminal reads lines with liner, giving the user cursor movement and
// arrow-key access to the lines typed in this session.
type Terminal struct {
	state   *liner.State
	lineMax int
}

// NewTerminal puts the terminal into raw mode until Close is called.
func NewTerminal(lineMax int) *Terminal {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	return &Terminal{
		state:   state,
		lineMax: lineMax,
	}
}

// ReadLine implements Reader.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupted
	}

	if err != nil {
		return "", err
	}

	line = truncate(line, t.lineMax)
	if strings.TrimSpace(line) != "" {
		t.state.AppendHistory(line)
	}

	return line, nil
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	return t.state.Close()
}

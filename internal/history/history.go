// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package history keeps the bounded log of command lines entered at the prompt
// and resolves "!N" recall requests against it.
package history

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/msh/internal/ringlog"
)

// DefaultSize is the number of lines retained when no size is configured.
const DefaultSize = 15

// ErrNotInHistory is returned when a recall names a position that cannot be served.
var ErrNotInHistory = errors.New("command not in history")

// RecallPolicy decides which 1-based positions a recall may name.
// count is the number of lines ever recorded and capacity the number retained at most.
type RecallPolicy func(n, count, capacity int) bool

// RecallSingleDigit is the bound used by the one-digit "!D" form: 1 <= n < count.
// Unlike RecallTwoDigit it refuses the most recent line.
func RecallSingleDigit(n, count, _ int) bool {
	return n >= 1 && n < count
}

// RecallTwoDigit is the bound used by the two-digit "!DD" form: n <= capacity and n <= count.
func RecallTwoDigit(n, count, capacity int) bool {
	return n >= 1 && n <= capacity && n <= count
}

// RecallInclusive accepts every retained position, 1 <= n <= min(count, capacity).
func RecallInclusive(n, count, capacity int) bool {
	return n >= 1 && n <= min(count, capacity)
}

// History is a fixed-capacity log of raw command lines.
type History struct {
	log *ringlog.Log[string]
}

// New returns an empty history retaining at most size lines.
func New(size int) *History {
	if size < 1 {
		size = DefaultSize
	}

	return &History{log: ringlog.New[string](size)}
}

// Record appends line, evicting the oldest line once the history is full.
// A trailing newline is not stored.
func (h *History) Record(line string) {
	h.log.Record(strings.TrimRight(line, "\r\n"))
}

// Count returns the number of lines ever recorded.
func (h *History) Count() int {
	return h.log.Total()
}

// Len returns the number of lines currently retained.
func (h *History) Len() int {
	return h.log.Len()
}

// Cap returns the maximum number of retained lines.
func (h *History) Cap() int {
	return h.log.Cap()
}

// Lines returns the retained lines, oldest first.
func (h *History) Lines() []string {
	out := make([]string, 0, h.log.Len())
	for _, line := range h.log.All() {
		out = append(out, line)
	}

	return out
}

// List writes the retained lines numbered from 1, oldest first.
func (h *History) List(w io.Writer) error {
	for n, line := range h.log.All() {
		if _, err := fmt.Fprintf(w, "%d: %s\n", n, line); err != nil {
			return err
		}
	}

	return nil
}

// Recall returns the line displayed at position n if policy allows it.
// Positions whose line is no longer retained are never served.
func (h *History) Recall(n int, policy RecallPolicy) (string, error) {
	if !policy(n, h.Count(), h.Cap()) {
		return "", fmt.Errorf("%w: %d", ErrNotInHistory, n)
	}

	line, ok := h.log.At(n)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrNotInHistory, n)
	}

	return line, nil
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tokenizer splits a raw input line into whitespace separated tokens.
// There is no quoting or escaping: every run of blanks separates two tokens.
package tokenizer

import (
	"errors"
	"strings"
)

// DefaultMaxArguments is the number of arguments allowed after the command name.
const DefaultMaxArguments = 10

// ErrTooManyArguments is returned when a line holds more tokens than allowed.
var ErrTooManyArguments = errors.New("too many arguments")

// Tokens is the ordered list of non-empty fields of one line.
type Tokens []string

// Command returns the first token, or "" when the line held no command.
func (t Tokens) Command() string {
	if len(t) == 0 {
		return ""
	}

	return t[0]
}

// Args returns the tokens following the command.
func (t Tokens) Args() []string {
	if len(t) < 2 {
		return nil
	}

	return t[1:]
}

// Empty reports whether the line held no command.
func (t Tokens) Empty() bool {
	return len(t) == 0
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Tokenize splits line on runs of space, tab, carriage return and newline.
// At most maxArgs+1 tokens are accepted; when the line holds more, the accepted
// tokens are returned together with ErrTooManyArguments.
// A maxArgs below zero uses DefaultMaxArguments.
func Tokenize(line string, maxArgs int) (Tokens, error) {
	if maxArgs < 0 {
		maxArgs = DefaultMaxArguments
	}

	// A line never holds more tokens than bytes.
	maxArgs = min(maxArgs, len(line))

	limit := maxArgs + 1
	tokens := make(Tokens, 0, min(limit, 4))
	rest := line

	for {
		rest = strings.TrimLeftFunc(rest, isBlank)
		if rest == "" {
			return tokens, nil
		}

		if len(tokens) == limit {
			return tokens, ErrTooManyArguments
		}

		end := strings.IndexFunc(rest, isBlank)
		if end < 0 {
			end = len(rest)
		}

		tokens = append(tokens, rest[:end])
		rest = rest[end:]
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tokenizer

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Tokens
		expectedErr error
	}{
		{
			name:     "simple command",
			input:    "ls -l\n",
			expected: Tokens{"ls", "-l"},
		},
		{
			name:     "runs of blanks collapse",
			input:    "  echo \t hello   world \n",
			expected: Tokens{"echo", "hello", "world"},
		},
		{
			name:     "quotes are not special",
			input:    `echo 'a b' "c"`,
			expected: Tokens{"echo", "'a", "b'", `"c"`},
		},
		{
			name:     "empty line",
			input:    "",
			expected: Tokens{},
		},
		{
			name:     "only whitespace",
			input:    " \t \r\n",
			expected: Tokens{},
		},
		{
			name:     "exactly ten arguments",
			input:    "cmd " + strings.Repeat("a ", 10) + "\n",
			expected: Tokens{"cmd", "a", "a", "a", "a", "a", "a", "a", "a", "a", "a"},
		},
		{
			name:        "eleven arguments",
			input:       "cmd " + strings.Repeat("a ", 11) + "\n",
			expected:    Tokens{"cmd", "a", "a", "a", "a", "a", "a", "a", "a", "a", "a"},
			expectedErr: ErrTooManyArguments,
		},
		{
			name:     "trailing blanks after the limit are not an extra field",
			input:    "cmd " + strings.Repeat("a ", 10) + "   \t\n",
			expected: Tokens{"cmd", "a", "a", "a", "a", "a", "a", "a", "a", "a", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input, DefaultMaxArguments)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenize_DoesNotModifyInput(t *testing.T) {
	line := "  cd /tmp \n"
	_, err := Tokenize(line, DefaultMaxArguments)
	require.NoError(t, err)
	assert.Equal(t, "  cd /tmp \n", line)
}

func TestTokenize_CustomLimit(t *testing.T) {
	got, err := Tokenize("a b c", 1)
	require.ErrorIs(t, err, ErrTooManyArguments)
	assert.Equal(t, Tokens{"a", "b"}, got)

	got, err = Tokenize("a b c", -1)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestTokenize_HugeLimit(t *testing.T) {
	for _, maxArgs := range []int{math.MaxInt, math.MaxInt - 1} {
		tokens, err := Tokenize("ls -l /tmp", maxArgs)
		require.NoError(t, err)
		assert.Equal(t, Tokens{"ls", "-l", "/tmp"}, tokens)
	}

	tokens, err := Tokenize("", math.MaxInt)
	require.NoError(t, err)
	assert.True(t, tokens.Empty())
}

func TestTokens_Accessors(t *testing.T) {
	var empty Tokens
	assert.True(t, empty.Empty())
	assert.Equal(t, "", empty.Command())
	assert.Nil(t, empty.Args())

	tok := Tokens{"cd"}
	assert.Equal(t, "cd", tok.Command())
	assert.Nil(t, tok.Args())

	tok = Tokens{"cd", "/tmp"}
	assert.Equal(t, []string{"/tmp"}, tok.Args())
}

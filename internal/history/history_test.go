// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package history

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(h *History, n int) {
	for i := 1; i <= n; i++ {
		h.Record(fmt.Sprintf("echo %d\n", i))
	}
}

func TestList_NumbersEntriesInOrder(t *testing.T) {
	for n := 1; n <= DefaultSize; n++ {
		t.Run(fmt.Sprintf("%d entries", n), func(t *testing.T) {
			h := New(DefaultSize)
			fill(h, n)

			var buf bytes.Buffer
			require.NoError(t, h.List(&buf))

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, n)

			for i, line := range lines {
				assert.Equal(t, fmt.Sprintf("%d: echo %d", i+1, i+1), line)
			}
		})
	}
}

func TestList_EvictionRenumbers(t *testing.T) {
	h := New(DefaultSize)
	fill(h, DefaultSize+1)

	var buf bytes.Buffer
	require.NoError(t, h.List(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, DefaultSize)
	assert.Equal(t, "1: echo 2", lines[0])
	assert.Equal(t, "15: echo 16", lines[14])
	assert.Equal(t, DefaultSize+1, h.Count())
	assert.Equal(t, DefaultSize, h.Len())
}

func TestRecord_StripsNewline(t *testing.T) {
	h := New(3)
	h.Record("ls -l\n")
	h.Record("pwd\r\n")

	assert.Equal(t, []string{"ls -l", "pwd"}, h.Lines())
}

func TestRecall(t *testing.T) {
	tests := []struct {
		name     string
		recorded int
		n        int
		policy   RecallPolicy
		want     string
		wantErr  bool
	}{
		{name: "single digit zero", recorded: 5, n: 0, policy: RecallSingleDigit, wantErr: true},
		{name: "single digit below count", recorded: 5, n: 4, policy: RecallSingleDigit, want: "echo 4"},
		{name: "single digit equal to count", recorded: 5, n: 5, policy: RecallSingleDigit, wantErr: true},
		{name: "single digit above count", recorded: 5, n: 9, policy: RecallSingleDigit, wantErr: true},
		{name: "single digit after eviction uses window", recorded: 20, n: 3, policy: RecallSingleDigit, want: "echo 8"},
		{name: "two digit equal to count", recorded: 12, n: 12, policy: RecallTwoDigit, want: "echo 12"},
		{name: "two digit above count", recorded: 12, n: 13, policy: RecallTwoDigit, wantErr: true},
		{name: "two digit at capacity", recorded: 30, n: 15, policy: RecallTwoDigit, want: "echo 30"},
		{name: "two digit above capacity", recorded: 30, n: 16, policy: RecallTwoDigit, wantErr: true},
		{name: "two digit zero", recorded: 3, n: 0, policy: RecallTwoDigit, wantErr: true},
		{name: "inclusive equal to count", recorded: 3, n: 3, policy: RecallInclusive, want: "echo 3"},
		{name: "inclusive above count", recorded: 3, n: 4, policy: RecallInclusive, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(DefaultSize)
			fill(h, tt.recorded)

			got, err := h.Recall(tt.n, tt.policy)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotInHistory)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecall_DoesNotRecord(t *testing.T) {
	h := New(DefaultSize)
	fill(h, 4)

	_, err := h.Recall(2, RecallSingleDigit)
	require.NoError(t, err)
	assert.Equal(t, 4, h.Count())
}

func TestNew_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultSize, New(0).Cap())
	assert.Equal(t, 3, New(3).Cap())
}

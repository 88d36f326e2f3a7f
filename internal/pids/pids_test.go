// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pids

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_List(t *testing.T) {
	r := New(DefaultSize)
	r.Record(4100)
	r.Record(4107)

	var buf bytes.Buffer
	require.NoError(t, r.List(&buf))
	assert.Equal(t, "1: 4100\n2: 4107\n", buf.String())
}

func TestRegistry_Eviction(t *testing.T) {
	r := New(3)
	for _, pid := range []int{11, 12, 13, 14, 15} {
		r.Record(pid)
	}

	assert.Equal(t, []int{13, 14, 15}, r.Pids())
	assert.Equal(t, 5, r.Count())

	var buf bytes.Buffer
	require.NoError(t, r.List(&buf))
	assert.Equal(t, "1: 13\n2: 14\n3: 15\n", buf.String())
}

func TestRegistry_Empty(t *testing.T) {
	r := New(0)

	var buf bytes.Buffer
	require.NoError(t, r.List(&buf))
	assert.Empty(t, buf.String())
	assert.Empty(t, r.Pids())
}

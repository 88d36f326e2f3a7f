// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pids records the identifiers of processes spawned by the shell.
package pids

import (
	"fmt"
	"io"

	"github.com/matt-FFFFFF/msh/internal/ringlog"
)

// DefaultSize is the number of pids retained when no size is configured.
const DefaultSize = 15

// Registry is a fixed-capacity log of process identifiers in spawn order.
type Registry struct {
	log *ringlog.Log[int]
}

// New returns an empty registry retaining at most size pids.
func New(size int) *Registry {
	if size < 1 {
		size = DefaultSize
	}

	return &Registry{log: ringlog.New[int](size)}
}

// Record appends pid, evicting the oldest pid once the registry is full.
func (r *Registry) Record(pid int) {
	r.log.Record(pid)
}

// Count returns the number of pids ever recorded.
func (r *Registry) Count() int {
	return r.log.Total()
}

// Pids returns the retained pids, oldest first.
func (r *Registry) Pids() []int {
	out := make([]int, 0, r.log.Len())
	for _, pid := range r.log.All() {
		out = append(out, pid)
	}

	return out
}

// List writes the retained pids as "<seq>: <pid>" lines, oldest first.
func (r *Registry) List(w io.Writer) error {
	for n, pid := range r.log.All() {
		if _, err := fmt.Fprintf(w, "%d: %d\n", n, pid); err != nil {
			return err
		}
	}

	return nil
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ringlog provides a fixed-capacity, insertion-ordered log.
// Once the log is full every new entry evicts the oldest one, so the retained
// window always holds the most recent entries in the order they were recorded.
package ringlog

import "iter"

// Log is a bounded FIFO log of T backed by a ring buffer.
// The zero value is not usable, create one with New.
type Log[T any] struct {
	buf   []T
	start int // index of the oldest retained entry
	size  int // number of retained entries
	total int // number of entries ever recorded
}

// New returns an empty log that retains at most capacity entries.
// A capacity below one is treated as one.
func New[T any](capacity int) *Log[T] {
	if capacity < 1 {
		capacity = 1
	}

	return &Log[T]{buf: make([]T, capacity)}
}

// Record appends v, evicting the oldest entry when the log is full.
func (l *Log[T]) Record(v T) {
	if l.size < len(l.buf) {
		l.buf[(l.start+l.size)%len(l.buf)] = v
		l.size++
	} else {
		l.buf[l.start] = v
		l.start = (l.start + 1) % len(l.buf)
	}

	l.total++
}

// Cap returns the maximum number of retained entries.
func (l *Log[T]) Cap() int {
	return len(l.buf)
}

// Len returns the number of retained entries, never more than Cap.
func (l *Log[T]) Len() int {
	return l.size
}

// Total returns the number of entries ever recorded, including evicted ones.
func (l *Log[T]) Total() int {
	return l.total
}

// At returns the retained entry at 1-based position n, oldest first.
// The second return value is false when no entry is retained at n.
func (l *Log[T]) At(n int) (T, bool) {
	var zero T
	if n < 1 || n > l.size {
		return zero, false
	}

	return l.buf[(l.start+n-1)%len(l.buf)], true
}

// All yields the retained entries with their 1-based positions, oldest first.
func (l *Log[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range l.size {
			if !yield(i+1, l.buf[(l.start+i)%len(l.buf)]) {
				return
			}
		}
	}
}

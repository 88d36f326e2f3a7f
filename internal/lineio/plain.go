// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var _ Reader = (*Plain)(nil)

// Plain reads newline terminated lines from any reader and writes the prompt to w.
type Plain struct {
	r       *bufio.Reader
	w       io.Writer
	lineMax int
}

// NewPlain returns a Plain reader. Lines longer than lineMax-1 bytes are truncated
// and the remainder of that line is discarded.
func NewPlain(r io.Reader, w io.Writer, lineMax int) *Plain {
	return &Plain{
		r:       bufio.NewReader(r),
		w:       w,
		lineMax: lineMax,
	}
}

// ReadLine implements Reader.
func (p *Plain) ReadLine(prompt string) (string, error) {
	if p.w != nil {
		if _, err := fmt.Fprint(p.w, prompt); err != nil {
			return "", err
		}
	}

	line, err := p.readBounded()
	if err != nil {
		return "", err
	}

	return truncate(strings.TrimRight(line, "\r"), p.lineMax), nil
}

// readBounded reads one physical line but keeps at most one byte more than
// truncate can return, so memory use does not grow with the line.
func (p *Plain) readBounded() (string, error) {
	keep := lineBound(p.lineMax)

	var (
		buf  []byte
		read bool
	)

	for {
		chunk, err := p.r.ReadSlice('\n')
		read = read || len(chunk) > 0

		if err == nil {
			chunk = chunk[:len(chunk)-1]
		}

		if room := keep - len(buf); room > 0 {
			buf = append(buf, chunk[:min(room, len(chunk))]...)
		}

		switch {
		case err == nil:
			return string(buf), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && read:
			// A last line without a newline is still a line.
			return string(buf), nil
		default:
			return "", err
		}
	}
}

// Close implements io.Closer. The underlying reader is owned by the caller.
func (p *Plain) Close() error {
	return nil
}

// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Term buffers output to w. Escape sequences are only emitted when color is
// set.
type Term struct {
	bytes.Buffer
	w     io.Writer
	color bool
}

type TermAttr int

var (
	AttrBold   TermAttr = 1
	AttrRed    TermAttr = 31
	AttrGreen  TermAttr = 32
	AttrYellow TermAttr = 33
)

// NewTerm returns a Term writing to f, with color enabled if f is a terminal.
func NewTerm(f *os.File) *Term {
	return &Term{w: f, color: isTerminal(f)}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (t *Term) BeginningOfLine() {
	if t.color {
		t.WriteByte('\r')
	}
}

// ClearRight clears from the cursor to the end of the line.
func (t *Term) ClearRight() {
	if t.color {
		t.WriteString("\033[K")
	}
}

func (t *Term) Attr(attrs ...TermAttr) {
	if !t.color {
		return
	}
	t.WriteString("\033[0")
	for _, attr := range attrs {
		fmt.Fprintf(t, ";%d", attr)
	}
	t.WriteByte('m')
}

func (t *Term) Flush() {
	t.w.Write(t.Bytes())
	t.Reset()
}

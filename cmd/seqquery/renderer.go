// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
)

type Renderer interface {
	// Status renders a progress status message. The caller should call cleanup
	// when it's done.
	Status(msg string) (cleanup func())
	// Result displays the outcome of one script action.
	Result(res *result)
	// ScriptDone displays the summary of a completed script.
	ScriptDone(s *state)
	// Error prints an error.
	Error(output string)
}

type termRenderer struct {
	term  *Term
	quiet bool
}

func NewTermRenderer(term *Term, quiet bool) *termRenderer {
	return &termRenderer{
		term:  term,
		quiet: quiet,
	}
}

func (r *termRenderer) Status(msg string) (cleanup func()) {
	// Status lines are overwritten, which only makes sense on a terminal.
	if !r.term.color || r.quiet {
		return func() {}
	}
	fmt.Fprintf(r.term, "%s", msg)
	r.term.Flush()
	return func() {
		r.term.BeginningOfLine()
		r.term.ClearRight()
		r.term.Flush()
	}
}

func (r *termRenderer) Result(res *result) {
	defer r.term.Flush()
	if !res.checked {
		if !r.quiet {
			fmt.Fprintf(r.term, "    %s = %s\n", res.label(), res.got)
		}
		return
	}
	if res.pass {
		if r.quiet {
			return
		}
		r.term.Attr(AttrGreen)
		r.term.WriteString("--- PASS")
		r.term.Attr()
		fmt.Fprintf(r.term, " %s = %s\n", res.label(), res.got)
		return
	}
	r.term.Attr(AttrRed)
	r.term.WriteString("--- FAIL")
	r.term.Attr()
	fmt.Fprintf(r.term, " %s = %s, want %s\n", res.label(), res.got, res.want)
}

func (r *termRenderer) ScriptDone(s *state) {
	defer r.term.Flush()
	label := "PASS"
	if s.failed > 0 || s.errors > 0 {
		r.term.Attr(AttrBold, AttrRed)
		label = "FAIL"
	} else if s.checks == 0 {
		r.term.Attr(AttrBold, AttrYellow)
		label = "DONE"
	} else {
		r.term.Attr(AttrBold, AttrGreen)
	}
	fmt.Fprintf(r.term, "=== %s %s", label, s.name)
	r.term.Attr()
	fmt.Fprintf(r.term, " %d checks", s.checks)
	if s.failed > 0 {
		fmt.Fprintf(r.term, ", %d failed", s.failed)
	}
	if s.errors > 0 {
		fmt.Fprintf(r.term, ", %d errors", s.errors)
	}
	r.term.WriteByte('\n')
	if !r.quiet {
		fmt.Fprintf(r.term, "    size %d of %d", s.index.Len(), s.index.Cap())
		if s.cleared.Len() > 0 {
			fmt.Fprintf(r.term, ", cleared %v", s.cleared.Values())
		}
		r.term.WriteByte('\n')
	}
}

func (r *termRenderer) Error(output string) {
	r.term.Attr(AttrRed)
	fmt.Fprintf(r.term, "error: %s\n", output)
	r.term.Attr()
	r.term.Flush()
}

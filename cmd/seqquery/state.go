// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/onethreeseven/lookupseq"
)

// state is the running state of one script.
type state struct {
	name  string
	index *lookupseq.Index

	// Symbols cleared since the last load, in order.
	cleared Seq[int]

	checks int // Actions with a Want
	failed int
	errors int // Lines that could not be parsed
}

func newState(name string) *state {
	return &state{name: name, index: lookupseq.New(nil)}
}

type result struct {
	script string
	ev     scriptEvent

	got  string
	want string

	checked bool
	pass    bool
}

// label describes the action that produced res, e.g. "t.txt:3: contains [5 7]".
func (res *result) label() string {
	ev := &res.ev
	args := ""
	switch ev.Action {
	case "load":
		args = " " + fmt.Sprint(ev.Sequence)
	case "contains":
		args = " " + fmt.Sprint(ev.Query)
	case "clear", "count":
		args = " " + strconv.Itoa(*ev.Symbol)
	}
	return fmt.Sprintf("%s:%d: %s%s", res.script, ev.Line, ev.Action, args)
}

func (s *state) apply(ev scriptEvent) *result {
	res := &result{script: s.name, ev: ev}
	x := s.index
	w := ev.want
	switch ev.Action {
	case "load":
		s.index = lookupseq.New(ev.Sequence)
		s.cleared = Seq[int]{}
		res.got = fmt.Sprintf("%d symbols, %d distinct", s.index.Len(), len(s.index.Universe()))
	case "clear":
		before := x.Len()
		if x.Has(*ev.Symbol) {
			s.cleared.Append(*ev.Symbol)
		}
		x.Clear(*ev.Symbol)
		res.got = fmt.Sprintf("removed %d", before-x.Len())
	case "contains":
		got := x.Contains(ev.Query)
		res.got = strconv.FormatBool(got)
		res.want = strconv.FormatBool(w.b)
		res.pass = got == w.b
	case "size", "count":
		got := x.Len()
		if ev.Action == "count" {
			got = x.Count(*ev.Symbol)
		}
		res.got = strconv.Itoa(got)
		res.want = strconv.Itoa(w.n)
		res.pass = got == w.n
	case "active", "universe":
		var got []int
		if ev.Action == "active" {
			got = x.Active()
		} else {
			got = x.Universe()
		}
		res.got = fmt.Sprint(got)
		res.want = fmt.Sprint(w.ints)
		res.pass = slices.Equal(got, w.ints)
	}

	if w.set {
		res.checked = true
		s.checks++
		if !res.pass {
			s.failed++
		}
	}
	return res
}

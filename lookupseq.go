// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lookupseq implements an index over a fixed sequence of integer
// symbols that supports clearing every occurrence of a symbol and testing
// whether a query occurs as an ordered, not necessarily contiguous,
// subsequence.
//
// Each symbol's occurrences are linked in increasing position order, so
// clearing a symbol costs time proportional to its occurrences and a
// containment query only visits occurrences of the queried symbols.
//
// An Index is not safe for concurrent use while Clear is running. The
// read-only methods may be called concurrently with each other.
package lookupseq

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// noPos terminates an occurrence chain. It is also the initial Contains
// cursor, which sorts before every real position.
const noPos = -1

// An Index is a sequence of symbols with a per-symbol occurrence chain.
type Index struct {
	// seq is the backing sequence. Cleared slots hold sentinel.
	seq []int

	// next[p] is the position of the next occurrence of seq[p], or noPos.
	// Occurrences are identified by their position, so this is the whole
	// occurrence arena.
	next []int

	// heads maps each present symbol to the position of its first
	// occurrence. Cleared symbols are deleted.
	heads map[int]int

	sentinel int
	size     int
}

// New returns an Index over a copy of sequence.
func New(sequence []int) *Index {
	x := &Index{
		seq:   slices.Clone(sequence),
		next:  make([]int, len(sequence)),
		heads: make(map[int]int),
		size:  len(sequence),
	}
	if x.seq == nil {
		x.seq = []int{}
	}

	// tails is only needed while linking. Positions are visited in
	// increasing order, so appending at the tail keeps each chain sorted.
	tails := make(map[int]int)
	for pos, sym := range x.seq {
		x.next[pos] = noPos
		if tail, ok := tails[sym]; ok {
			x.next[tail] = pos
		} else {
			x.heads[sym] = pos
		}
		tails[sym] = pos
	}

	x.sentinel = -1
	for {
		if _, ok := x.heads[x.sentinel]; !ok {
			break
		}
		x.sentinel--
	}
	return x
}

// Universe returns the symbols currently present, in ascending order.
func (x *Index) Universe() []int {
	syms := maps.Keys(x.heads)
	slices.Sort(syms)
	return syms
}

// Has reports whether symbol is present.
func (x *Index) Has(symbol int) bool {
	_, ok := x.heads[symbol]
	return ok
}

// Clear removes every occurrence of symbol. Clearing a symbol that is not
// present does nothing.
func (x *Index) Clear(symbol int) {
	head, ok := x.heads[symbol]
	if !ok {
		return
	}
	for pos := head; pos != noPos; pos = x.next[pos] {
		x.seq[pos] = x.sentinel
		x.size--
	}
	delete(x.heads, symbol)
}

// Active returns the symbols that have not been cleared, in their original
// order. The result has length x.Len() and is not retained by x.
func (x *Index) Active() []int {
	out := make([]int, 0, x.size)
	for _, sym := range x.seq {
		if sym != x.sentinel {
			out = append(out, sym)
		}
	}
	return out
}

// Contains reports whether query occurs in the active sequence as an ordered
// subsequence, allowing gaps between matched symbols. An empty query does not
// match.
func (x *Index) Contains(query []int) bool {
	// Taking the earliest occurrence after the previous match never rules
	// out an alignment that a later occurrence would allow.
	cursor := noPos
	for _, sym := range query {
		pos, ok := x.heads[sym]
		if !ok {
			return false
		}
		for pos != noPos && pos <= cursor {
			pos = x.next[pos]
		}
		if pos == noPos {
			return false
		}
		cursor = pos
	}
	return cursor > noPos
}

// Len returns the number of symbols that have not been cleared.
func (x *Index) Len() int {
	return x.size
}

// Cap returns the length of the backing sequence, including cleared slots.
func (x *Index) Cap() int {
	return len(x.seq)
}

// Count returns the number of occurrences of symbol.
func (x *Index) Count(symbol int) int {
	n := 0
	x.walk(symbol, func(int) { n++ })
	return n
}

// Positions returns the positions of symbol in the backing sequence, in
// increasing order, or nil if symbol is not present.
func (x *Index) Positions(symbol int) []int {
	var out []int
	x.walk(symbol, func(pos int) { out = append(out, pos) })
	return out
}

func (x *Index) walk(symbol int, fn func(pos int)) {
	head, ok := x.heads[symbol]
	if !ok {
		return
	}
	for pos := head; pos != noPos; pos = x.next[pos] {
		fn(pos)
	}
}

func (x *Index) String() string {
	return fmt.Sprint(x.Active())
}

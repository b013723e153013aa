// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// Seq is a set that remembers the order in which values were first added.
type Seq[V comparable] struct {
	m map[V]struct{}
	o []V
}

// Append adds v to the end of s if it is not already present.
func (s *Seq[V]) Append(v V) (added bool) {
	if s.Has(v) {
		return false
	}
	if s.m == nil {
		s.m = make(map[V]struct{})
	}
	s.m[v] = struct{}{}
	s.o = append(s.o, v)
	return true
}

func (s *Seq[V]) Has(v V) bool {
	_, ok := s.m[v]
	return ok
}

func (s *Seq[V]) Len() int {
	return len(s.o)
}

// Values returns the values of s in insertion order. The caller must not
// modify the result.
func (s *Seq[V]) Values() []V {
	return s.o
}

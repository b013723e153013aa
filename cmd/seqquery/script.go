// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

type scriptReader struct {
	sc   *bufio.Scanner
	line int
}

func newScriptReader(r io.Reader) *scriptReader {
	scanner := bufio.NewScanner(r)
	// Sequences can be long, so set a large line length limit.
	scanner.Buffer(nil, 16<<20)
	return &scriptReader{sc: scanner}
}

// scriptEvent is one line of a script. The exported fields are the JSON
// form of a line; the text form is converted into the same fields.
type scriptEvent struct {
	Action   string
	Sequence []int           // load
	Query    []int           // contains
	Symbol   *int            // clear, count
	Want     json.RawMessage // optional expected result

	Line   int    `json:"-"`
	Output string `json:"-"` // error message for Action == "error"

	want expectation
}

// expectation is a decoded Want. Which field is used depends on the action.
type expectation struct {
	set  bool
	b    bool
	n    int
	ints []int
}

// Result kinds per action.
const (
	kindNone = iota
	kindBool
	kindInt
	kindInts
)

var actionKinds = map[string]int{
	"load":     kindNone,
	"clear":    kindNone,
	"contains": kindBool,
	"size":     kindInt,
	"count":    kindInt,
	"active":   kindInts,
	"universe": kindInts,
}

// textLineRe matches the shorthand form "action [ints...] [=> want]".
var textLineRe = regexp.MustCompile(`^([a-z]+)((?:\s+-?\d+)*)\s*(?:=>\s*(.*))?$`)

func (r *scriptReader) next() (scriptEvent, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var ev scriptEvent
		var err error
		if strings.HasPrefix(text, "{") {
			dec := json.NewDecoder(strings.NewReader(text))
			dec.DisallowUnknownFields()
			err = dec.Decode(&ev)
		} else {
			ev, err = parseText(text)
		}
		if err == nil {
			err = ev.check()
		}
		if err != nil {
			ev = scriptEvent{Action: "error", Output: fmt.Sprintf("%s: %v", text, err)}
		}
		ev.Line = r.line
		return ev, nil
	}
	err := r.sc.Err()
	if err == nil {
		err = io.EOF
	}
	return scriptEvent{}, err
}

func parseText(text string) (scriptEvent, error) {
	subs := textLineRe.FindStringSubmatch(text)
	if subs == nil {
		return scriptEvent{}, fmt.Errorf("malformed line")
	}
	ev := scriptEvent{Action: subs[1]}
	if _, ok := actionKinds[ev.Action]; !ok {
		return scriptEvent{}, fmt.Errorf("unknown action %q", ev.Action)
	}
	ints, err := parseInts(subs[2])
	if err != nil {
		return scriptEvent{}, err
	}
	switch ev.Action {
	case "load":
		ev.Sequence = ints
	case "contains":
		ev.Query = ints
	case "clear", "count":
		if len(ints) != 1 {
			return scriptEvent{}, fmt.Errorf("%s takes one symbol, got %d", ev.Action, len(ints))
		}
		ev.Symbol = &ints[0]
	default:
		if len(ints) > 0 {
			return scriptEvent{}, fmt.Errorf("%s takes no arguments", ev.Action)
		}
	}

	if want := strings.TrimSpace(subs[3]); want != "" {
		// Re-encode the shorthand as JSON so both forms decode the same way.
		if actionKinds[ev.Action] == kindInts {
			ints, err := parseInts(want)
			if err != nil {
				return scriptEvent{}, err
			}
			if ints == nil {
				ints = []int{}
			}
			ev.Want, _ = json.Marshal(ints)
		} else {
			ev.Want = json.RawMessage(want)
		}
	}
	return ev, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	s = strings.Trim(strings.TrimSpace(s), "[]")
	for _, f := range strings.Fields(s) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// check validates ev and decodes its Want.
func (ev *scriptEvent) check() error {
	kind, ok := actionKinds[ev.Action]
	if !ok {
		return fmt.Errorf("unknown action %q", ev.Action)
	}
	takesSymbol := ev.Action == "clear" || ev.Action == "count"
	switch {
	case takesSymbol && ev.Symbol == nil:
		return fmt.Errorf("%s requires a symbol", ev.Action)
	case !takesSymbol && ev.Symbol != nil:
		return fmt.Errorf("%s takes no Symbol", ev.Action)
	case ev.Action != "load" && ev.Sequence != nil:
		return fmt.Errorf("%s takes no Sequence", ev.Action)
	case ev.Action != "contains" && ev.Query != nil:
		return fmt.Errorf("%s takes no Query", ev.Action)
	}
	if len(ev.Want) == 0 {
		return nil
	}
	if string(ev.Want) == "null" {
		return fmt.Errorf("want must not be null")
	}

	var dst any
	switch kind {
	case kindNone:
		return fmt.Errorf("%s has no result to check", ev.Action)
	case kindBool:
		dst = &ev.want.b
	case kindInt:
		dst = &ev.want.n
	case kindInts:
		dst = &ev.want.ints
	}
	if err := json.Unmarshal(ev.Want, dst); err != nil {
		return fmt.Errorf("bad want %s: %w", ev.Want, err)
	}
	if kind == kindInts && ev.want.ints == nil {
		ev.want.ints = []int{}
	}
	ev.want.set = true
	return nil
}

// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Seqquery runs scripts of clear and containment queries against a
// lookupseq.Index and reports the results.
//
// Usage:
//
//	seqquery [flags] [script ...]
//
// With no scripts, or the script "-", it reads standard input. Each script
// line is either a JSON object such as
//
//	{"Action":"contains","Query":[5,7],"Want":true}
//
// or the shorthand "contains 5 7 => true". The actions are load, clear,
// contains, size, count, active and universe. Lines with a want are checked
// and the exit status is 1 if any check fails or any line is malformed.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch err := err.(type) {
	case nil:
		return
	case ErrExit:
		os.Exit(int(err))
	default:
		fmt.Fprintf(os.Stderr, "seqquery: %s\n", err)
		os.Exit(1)
	}
}

type ErrExit int

func (e ErrExit) Error() string {
	return fmt.Sprintf("exit code %d", int(e))
}

type options struct {
	color   string
	quiet   bool
	scripts []string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet("seqquery", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.color, "color", "auto", "colorize output: auto, always or never")
	flagSet.BoolVarP(&opts.quiet, "quiet", "q", false, "only print failed checks, errors and summaries")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "usage: seqquery [flags] [script ...]\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return opts, ErrExit(0)
		}
		return opts, ErrExit(2)
	}
	switch opts.color {
	case "auto", "always", "never":
	default:
		fmt.Fprintf(stderr, "invalid --color %q\n", opts.color)
		flagSet.Usage()
		return opts, ErrExit(2)
	}
	opts.scripts = flagSet.Args()
	if len(opts.scripts) == 0 {
		opts.scripts = []string{"-"}
	}
	return opts, nil
}

func run(args []string, stdout *os.File, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	term := NewTerm(stdout)
	switch opts.color {
	case "always":
		term.color = true
	case "never":
		term.color = false
	}
	return main1(NewTermRenderer(term, opts.quiet), opts.scripts)
}

func main1(r Renderer, scripts []string) error {
	failed := false
	for _, name := range scripts {
		s, err := runScript(r, name)
		if err != nil {
			return err
		}
		if s.failed > 0 || s.errors > 0 {
			failed = true
		}
	}
	if failed {
		return ErrExit(1)
	}
	return nil
}

func runScript(r Renderer, name string) (*state, error) {
	var in io.Reader = os.Stdin
	if name == "-" {
		name = "<stdin>"
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	cleanup := r.Status(fmt.Sprintf("reading %s...", name))
	var evs []scriptEvent
	sr := newScriptReader(in)
	for {
		ev, err := sr.next()
		if err == io.EOF {
			break
		} else if err != nil {
			cleanup()
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		evs = append(evs, ev)
	}
	cleanup()

	s := newState(name)
	for _, ev := range evs {
		if ev.Action == "error" {
			s.errors++
			r.Error(fmt.Sprintf("%s:%d: %s", name, ev.Line, ev.Output))
			continue
		}
		r.Result(s.apply(ev))
	}
	r.ScriptDone(s)
	return s, nil
}

package main

import (
	"context"
	"errors"
	"io"
)

// New creates a TRAC processor with the given options applied over the
// defaults (empty input, discarded output, apostrophe meta character).
func New(opts ...Option) *TRAC {
	var tr TRAC
	tr.apply(opts...)
	return &tr
}

// Run scans the processor's program until it halts, returning any abnormal
// halt cause. A normal halt, including one from exhausted input, returns nil.
func (tr *TRAC) Run(ctx context.Context) error {
	err := isolate("TRAC", func() error {
		tr.run(ctx)
		return nil
	})
	if err == nil || errors.Is(err, errHalt) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func WithInput(r io.Reader) Option         { return withInput(r) }
func WithRuneInput(r io.RuneReader) Option { return withRuneInput(r) }
func WithOutput(w io.Writer) Option        { return withOutput(w) }
func WithTee(w io.Writer) Option           { return withTee(w) }
func WithProgram(text string) Option       { return withProgram(text) }
func WithIdle(text string) Option          { return withIdle(text) }
func WithMetaChar(meta rune) Option        { return withMetaChar(meta) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

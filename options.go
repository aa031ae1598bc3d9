package main

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/trac-lang/gotrac/internal/runeio"
)

type Option interface{ apply(tr *TRAC) }

var defaults = []Option{
	withInput(bytes.NewReader(nil)),
	withOutput(ioutil.Discard),
	withMetaChar('\''),
}

func (tr *TRAC) apply(opts ...Option) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(tr)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(tr)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(tr *TRAC) {
	tr.logfn = logfn
}

type inputOption struct{ io.Reader }
type runeInputOption struct{ io.RuneReader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type programOption string
type idleOption string
type metaCharOption rune

func withInput(r io.Reader) inputOption             { return inputOption{r} }
func withRuneInput(r io.RuneReader) runeInputOption { return runeInputOption{r} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withTee(w io.Writer) teeOption                 { return teeOption{w} }
func withProgram(text string) programOption         { return programOption(text) }
func withIdle(text string) idleOption               { return idleOption(text) }
func withMetaChar(meta rune) metaCharOption         { return metaCharOption(meta) }

func (i inputOption) apply(tr *TRAC) {
	tr.in = runeio.NewReader(i.Reader)
	if cl, ok := i.Reader.(io.Closer); ok {
		tr.closers = append(tr.closers, cl)
	}
}

func (i runeInputOption) apply(tr *TRAC) {
	tr.in = i.RuneReader
	if cl, ok := i.RuneReader.(io.Closer); ok {
		tr.closers = append(tr.closers, cl)
	}
}

func (o outputOption) apply(tr *TRAC) {
	if tr.out != nil {
		tr.out.Flush()
	}
	tr.out = newWriteFlusher(o.Writer)
}

func (o teeOption) apply(tr *TRAC) {
	tr.out = multiWriteFlusher(tr.out, newWriteFlusher(o.Writer))
}

func (text programOption) apply(tr *TRAC) { tr.boot = string(text) }
func (text idleOption) apply(tr *TRAC)    { tr.idle = string(text) }
func (meta metaCharOption) apply(tr *TRAC) {
	tr.meta = rune(meta)
}

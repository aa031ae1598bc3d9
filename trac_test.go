package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type trTestCases []trTestCase

func (trts trTestCases) run(t *testing.T) {
	for _, trt := range trts {
		if !t.Run(trt.name, trt.run) {
			return
		}
	}
}

func trTest(name string) (trt trTestCase) {
	trt.name = name
	return trt
}

type trTestCase struct {
	name    string
	opts    []Option
	ops     []func(tr *TRAC)
	expect  []func(t *testing.T, tr *TRAC)
	timeout time.Duration
	wantErr error
}

func (trt trTestCase) withOptions(opts ...Option) trTestCase {
	trt.opts = append(trt.opts, opts...)
	return trt
}

// withSource runs text the way the command line front end does: as the
// character source consumed by the idling procedure, record by record.
func (trt trTestCase) withSource(text string) trTestCase {
	return trt.withOptions(WithInput(strings.NewReader(text)), WithIdle(idleProgram))
}

// withProgram runs text directly as the active string, once.
func (trt trTestCase) withProgram(text string) trTestCase {
	return trt.withOptions(WithProgram(text))
}

func (trt trTestCase) withInput(text string) trTestCase {
	return trt.withOptions(WithInput(strings.NewReader(text)))
}

// do drives individual processor methods instead of Run.
func (trt trTestCase) do(ops ...func(tr *TRAC)) trTestCase {
	trt.ops = append(trt.ops, ops...)
	return trt
}

func seedOp(text string) func(tr *TRAC) {
	return func(tr *TRAC) { tr.seed(text) }
}

func stepOp(tr *TRAC) { tr.step() }

func (trt trTestCase) withTimeout(timeout time.Duration) trTestCase {
	trt.timeout = timeout
	return trt
}

func (trt trTestCase) expectError(err error) trTestCase {
	trt.wantErr = err
	return trt
}

func (trt trTestCase) expectOutput(output string) trTestCase {
	var out strings.Builder
	trt.opts = append(trt.opts, WithOutput(&out))
	trt.expect = append(trt.expect, func(t *testing.T, tr *TRAC) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return trt
}

// expectForm asserts a form's pf rendering, pointer glyph and markers
// included.
func (trt trTestCase) expectForm(name, rendering string) trTestCase {
	trt.expect = append(trt.expect, func(t *testing.T, tr *TRAC) {
		f := tr.forms.get(name)
		if assert.NotNil(t, f, "expected form %q to exist", name) {
			assert.Equal(t, rendering, formDumper{form: f}.render(), "expected form %q", name)
		}
	})
	return trt
}

func (trt trTestCase) expectNoForm(name string) trTestCase {
	trt.expect = append(trt.expect, func(t *testing.T, tr *TRAC) {
		assert.Nil(t, tr.forms.get(name), "expected form %q to be absent", name)
	})
	return trt
}

func (trt trTestCase) expectFormNames(names ...string) trTestCase {
	trt.expect = append(trt.expect, func(t *testing.T, tr *TRAC) {
		if names == nil {
			names = []string{}
		}
		got := tr.forms.list()
		if got == nil {
			got = []string{}
		}
		assert.Equal(t, names, got, "expected form names")
	})
	return trt
}

func (trt trTestCase) expectNeutral(text string) trTestCase {
	trt.expect = append(trt.expect, func(t *testing.T, tr *TRAC) {
		assert.Equal(t, text, string(tr.neutral), "expected neutral string")
	})
	return trt
}

func (trt trTestCase) expectMeta(meta rune) trTestCase {
	trt.expect = append(trt.expect, func(t *testing.T, tr *TRAC) {
		assert.Equal(t, meta, tr.meta, "expected meta character")
	})
	return trt
}

func (trt trTestCase) run(t *testing.T) {
	tr := New(trt.opts...)

	const defaultTimeout = time.Second
	timeout := trt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := trt.runTR(ctx, tr); trt.wantErr != nil {
		assert.True(t, errors.Is(err, trt.wantErr), "expected error: %v\ngot: %+v", trt.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected run error")
	}

	if !t.Failed() {
		for _, expect := range trt.expect {
			expect(t, tr)
		}
	}
}

func (trt trTestCase) runTR(ctx context.Context, tr *TRAC) error {
	defer tr.Close()

	if len(trt.ops) == 0 {
		return tr.Run(ctx)
	}

	err := isolate("trTestCase.ops", func() error {
		for _, op := range trt.ops {
			op(tr)
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errHalt) {
		return nil
	}
	return err
}

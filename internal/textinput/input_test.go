package textinput

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, in *Input) string {
	t.Helper()
	var sb strings.Builder
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			return sb.String()
		}
		require.NoError(t, err)
		sb.WriteRune(r)
	}
}

func TestInput_empty(t *testing.T) {
	var in Input
	_, _, err := in.ReadRune()
	assert.Equal(t, io.EOF, err)
}

func TestInput_singleStream(t *testing.T) {
	in := Input{Queue: []io.Reader{strings.NewReader("abc")}}
	assert.Equal(t, "abc", readAll(t, &in))
}

func TestInput_streamsAreNewlineSeparated(t *testing.T) {
	in := Input{Queue: []io.Reader{
		strings.NewReader("one"),
		strings.NewReader("two"),
		strings.NewReader("three"),
	}}
	assert.Equal(t, "one\ntwo\nthree", readAll(t, &in))
}

func TestInput_emptyStreamsStillSeparate(t *testing.T) {
	in := Input{Queue: []io.Reader{
		strings.NewReader(""),
		strings.NewReader("tail"),
	}}
	assert.Equal(t, "\ntail", readAll(t, &in))
}

func TestInput_tracksLocations(t *testing.T) {
	in := Input{Queue: []io.Reader{
		Named("first", strings.NewReader("a\nbc")),
	}}
	readAll(t, &in)
	assert.Equal(t, `first:2 "bc"`, in.Scan.String(), "scan tracks the current line")
	assert.Equal(t, `first:1 "a"`, in.Last.String(), "last holds the prior line")
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (cr *closeRecorder) Close() error {
	cr.closed = true
	return nil
}

func TestInput_closesDrainedStreams(t *testing.T) {
	cr := &closeRecorder{Reader: strings.NewReader("x")}
	in := Input{Queue: []io.Reader{cr, strings.NewReader("y")}}
	readAll(t, &in)
	assert.True(t, cr.closed)
}

package textinput

import (
	"bytes"
	"fmt"
	"io"

	"github.com/trac-lang/gotrac/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

// Line combines a Location with a buffer of the text scanned on it so far.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input reads runes sequentially through a Queue of input streams, yielding
// a synthetic newline between consecutive streams so that adjacent sources
// cannot run together into one token of program text. Streams that implement
// io.Closer are closed as they are exhausted. The current and last scanned
// lines are tracked to facilitate user feedback.
type Input struct {
	rr    io.RuneReader
	cur   io.Reader
	sep   bool
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// Named gives r a name for Location tracking.
func Named(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

// ReadRune reads one rune from the current stream, rolling over to the next
// queued stream at EOF and reporting io.EOF only once the queue is empty.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		if in.rr == nil {
			if !in.nextIn() {
				return 0, 0, io.EOF
			}
			if in.sep {
				in.sep = false
				return '\n', 1, nil
			}
		}

		r, n, err := in.rr.ReadRune()
		switch {
		case err == io.EOF:
			in.closeIn()
			in.sep = true
			continue
		case err != nil:
			return 0, 0, err
		}

		if r == '\n' {
			in.nextLine()
		} else {
			in.Scan.WriteRune(r)
		}
		return r, n, nil
	}
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Location = in.Scan.Location
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.rr = runeio.NewReader(r)
	in.nextLine()
	in.Scan.Name = nameOf(in.rr)
	in.Scan.Line = 1
	return true
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.rr = nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

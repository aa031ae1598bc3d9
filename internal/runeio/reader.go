package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader over r; if r already reads runes, it is simply
// returned. Otherwise a bufio.Reader provides rune reading around it. A
// Name() string method on r is preserved on the result.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	rr := runeReader{r, bufio.NewReader(r)}
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedRuneReader{rr, impl.Name()}
	}
	return rr
}

type runeReader struct {
	io.Reader
	io.RuneReader
}

type namedRuneReader struct {
	Reader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }

package main

import (
	"io"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// argv holds the arguments passed to a call, name excluded. A missing
// argument reads as the null string.
type argv []string

func (av argv) arg(i int) string {
	if i >= 0 && i < len(av) {
		return av[i]
	}
	return ""
}

func (av argv) rest() argv {
	if len(av) > 0 {
		return av[1:]
	}
	return nil
}

// primTable names every built-in. Dispatch consults the form store first, so
// any of these can be shadowed by a user form.
var primTable = map[string]func(*TRAC, argv) string{
	// form definition and listing
	"ds": (*TRAC).primDS,
	"ss": (*TRAC).primSS,
	"cl": (*TRAC).primCL,
	"ln": (*TRAC).primLN,
	"dd": (*TRAC).primDD,
	"da": (*TRAC).primDA,
	"sr": (*TRAC).primSR,

	// character navigation
	"cc": (*TRAC).primCC,
	"cs": (*TRAC).primCS,
	"cn": (*TRAC).primCN,
	"in": (*TRAC).primIN,
	"pf": (*TRAC).primPF,

	// arithmetic and comparison
	"ad": (*TRAC).primAD,
	"su": (*TRAC).primSU,
	"ml": (*TRAC).primML,
	"dv": (*TRAC).primDV,
	"eq": (*TRAC).primEQ,
	"gr": (*TRAC).primGR,

	// Boolean bit strings
	"bu": (*TRAC).primBU,
	"bi": (*TRAC).primBI,
	"bc": (*TRAC).primBC,
	"bs": (*TRAC).primBS,
	"br": (*TRAC).primBR,

	// radix and codec; cr doubles as the pointer restore
	"cr": (*TRAC).primCR,
	"sl": (*TRAC).primSL,
	"cd": (*TRAC).primCD,
	"dc": (*TRAC).primDC,

	// meta character and the I/O bridge
	"qm": (*TRAC).primQM,
	"cm": (*TRAC).primCM,
	"ps": (*TRAC).primPS,
	"rc": (*TRAC).primRC,
	"rs": (*TRAC).primRS,
	"hl": (*TRAC).primHL,
	"tn": (*TRAC).primTN,
	"tf": (*TRAC).primTF,

	// block storage and auxiliary streams are not wired up
	"sb": (*TRAC).primNA,
	"fb": (*TRAC).primNA,
	"eb": (*TRAC).primNA,
	"ai": (*TRAC).primNA,
	"ao": (*TRAC).primNA,
	"sp": (*TRAC).primNA,
	"rp": (*TRAC).primNA,
}

func (tr *TRAC) primDS(av argv) string {
	tr.forms.define(av.arg(0), av.arg(1))
	return ""
}

func (tr *TRAC) primSS(av argv) string {
	if f := tr.forms.get(av.arg(0)); f != nil {
		f.segment(av.rest())
	}
	return ""
}

func (tr *TRAC) primCL(av argv) string {
	if f := tr.forms.get(av.arg(0)); f != nil {
		return f.fill(av.rest())
	}
	return ""
}

func (tr *TRAC) primLN(av argv) string {
	return strings.Join(tr.forms.list(), av.arg(0))
}

func (tr *TRAC) primDD(av argv) string {
	for _, name := range av {
		tr.forms.delete(name)
	}
	return ""
}

func (tr *TRAC) primDA(argv) string {
	tr.forms.deleteAll()
	return ""
}

func (tr *TRAC) primSR(av argv) string {
	if f := tr.forms.get(av.arg(0)); f != nil {
		return strconv.Itoa(f.gap())
	}
	return "0"
}

func (tr *TRAC) primCC(av argv) string {
	f := tr.forms.get(av.arg(0))
	if f == nil {
		return ""
	}
	if r, ok := f.nextChar(); ok {
		return string(r)
	}
	tr.forceActive = true
	return av.arg(1)
}

func (tr *TRAC) primCS(av argv) string {
	f := tr.forms.get(av.arg(0))
	if f == nil {
		return ""
	}
	if s, ok := f.nextSeg(); ok {
		return s
	}
	tr.forceActive = true
	return av.arg(1)
}

func (tr *TRAC) primCN(av argv) string {
	f := tr.forms.get(av.arg(0))
	if f == nil {
		return ""
	}
	if d, ok := bigToInt(parseBig(av.arg(1))); ok {
		if s, ok := f.seek(d); ok {
			return s
		}
	}
	tr.forceActive = true
	return av.arg(2)
}

func (tr *TRAC) primIN(av argv) string {
	f := tr.forms.get(av.arg(0))
	if f == nil {
		return ""
	}
	if s, ok := f.find([]rune(av.arg(1))); ok {
		return s
	}
	tr.forceActive = true
	return av.arg(2)
}

func (tr *TRAC) primPF(av argv) string {
	if f := tr.forms.get(av.arg(0)); f != nil {
		tr.writeString(formDumper{form: f}.render())
	}
	return ""
}

func (tr *TRAC) primAD(av argv) string {
	return new(big.Int).Add(parseBig(av.arg(0)), parseBig(av.arg(1))).String()
}

func (tr *TRAC) primSU(av argv) string {
	return new(big.Int).Sub(parseBig(av.arg(0)), parseBig(av.arg(1))).String()
}

func (tr *TRAC) primML(av argv) string {
	return new(big.Int).Mul(parseBig(av.arg(0)), parseBig(av.arg(1))).String()
}

func (tr *TRAC) primDV(av argv) string {
	b := parseBig(av.arg(1))
	if b.Sign() == 0 {
		return "0"
	}
	return new(big.Int).Quo(parseBig(av.arg(0)), b).String()
}

func (tr *TRAC) primEQ(av argv) string {
	if av.arg(0) == av.arg(1) {
		return av.arg(2)
	}
	return av.arg(3)
}

func (tr *TRAC) primGR(av argv) string {
	if parseBig(av.arg(0)).Cmp(parseBig(av.arg(1))) > 0 {
		return av.arg(2)
	}
	return av.arg(3)
}

func (tr *TRAC) primBU(av argv) string {
	return boolOr(boolSuffix(av.arg(0)), boolSuffix(av.arg(1)))
}

func (tr *TRAC) primBI(av argv) string {
	return boolAnd(boolSuffix(av.arg(0)), boolSuffix(av.arg(1)))
}

func (tr *TRAC) primBC(av argv) string {
	return boolNot(boolSuffix(av.arg(0)))
}

func (tr *TRAC) primBS(av argv) string {
	return boolShift(parseBig(av.arg(0)), boolSuffix(av.arg(1)))
}

func (tr *TRAC) primBR(av argv) string {
	return boolRotate(parseBig(av.arg(0)), boolSuffix(av.arg(1)))
}

// primCR is two primitives wearing one name: with a single argument it
// restores form N's pointer to 0, otherwise it is the radix conversion
// cr R1 R2 V.
func (tr *TRAC) primCR(av argv) string {
	if len(av) <= 1 {
		if f := tr.forms.get(av.arg(0)); f != nil {
			f.pointer = 0
		}
		return ""
	}
	return convertRadix(av.arg(0), av.arg(1), av.arg(2))
}

func (tr *TRAC) primSL(av argv) string {
	return strconv.Itoa(utf8.RuneCountInString(av.arg(0)))
}

func (tr *TRAC) primCD(av argv) string {
	for _, r := range av.arg(0) {
		return strconv.Itoa(int(r))
	}
	return "0"
}

func (tr *TRAC) primDC(av argv) string {
	z := parseBig(av.arg(0))
	if z.Sign() < 0 || !z.IsInt64() || z.Int64() > utf8.MaxRune {
		return ""
	}
	return string(rune(z.Int64()))
}

func (tr *TRAC) primQM(argv) string {
	return string(tr.meta)
}

func (tr *TRAC) primCM(av argv) string {
	for _, r := range av.arg(0) {
		tr.meta = r
		break
	}
	return ""
}

func (tr *TRAC) primPS(av argv) string {
	tr.writeString(av.arg(0))
	return ""
}

func (tr *TRAC) primRC(argv) string {
	r, err := tr.readRune()
	tr.haltif(err)
	return string(r)
}

// primRS reads until the meta character. A drained source ends the run: with
// nothing accumulated the halt is immediate, otherwise the record text is
// delivered first so it lands, unexecuted, in the buffer.
func (tr *TRAC) primRS(argv) string {
	var sb strings.Builder
	for {
		r, err := tr.readRune()
		if err == io.EOF {
			if sb.Len() == 0 {
				tr.halt(err)
			}
			tr.haltNext = true
			return sb.String()
		}
		tr.haltif(err)
		if r == tr.meta {
			return sb.String()
		}
		sb.WriteRune(r)
	}
}

func (tr *TRAC) primHL(argv) string {
	tr.halt(nil)
	return ""
}

func (tr *TRAC) primTN(argv) string {
	tr.tracing = true
	return ""
}

func (tr *TRAC) primTF(argv) string {
	tr.tracing = false
	return ""
}

func (tr *TRAC) primNA(argv) string { return "N/A" }

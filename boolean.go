package main

import (
	"math/big"
	"strings"
)

// boolSuffix extracts the Boolean value of a string: its maximal trailing
// run of 0 and 1 characters. All the Boolean primitives work on these.
func boolSuffix(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == '0' || s[i-1] == '1') {
		i--
	}
	return s[i:]
}

// boolOr left-pads the shorter operand with zeros to the longer's length.
func boolOr(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	b = strings.Repeat("0", len(a)-len(b)) + b
	out := []byte(a)
	for i := range out {
		if b[i] == '1' {
			out[i] = '1'
		}
	}
	return string(out)
}

// boolAnd truncates the longer operand on the left to the shorter's length.
func boolAnd(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	a = a[len(a)-len(b):]
	out := []byte(a)
	for i := range out {
		if b[i] == '0' {
			out[i] = '0'
		}
	}
	return string(out)
}

func boolNot(a string) string {
	out := []byte(a)
	for i, c := range out {
		if c == '0' {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// boolShift shifts left for positive counts and right for negative ones,
// zero-filling and preserving length. A count at or past the length zeroes
// the whole string.
func boolShift(count *big.Int, a string) string {
	n := len(a)
	if n == 0 {
		return a
	}
	mag := new(big.Int).Abs(count)
	if mag.Cmp(big.NewInt(int64(n))) >= 0 {
		return strings.Repeat("0", n)
	}
	k := int(mag.Int64())
	if count.Sign() >= 0 {
		return a[k:] + strings.Repeat("0", k)
	}
	return strings.Repeat("0", k) + a[:n-k]
}

// boolRotate rotates left for positive counts and right for negative ones,
// reducing the count modulo the length.
func boolRotate(count *big.Int, a string) string {
	n := len(a)
	if n == 0 {
		return a
	}
	k := int(new(big.Int).Mod(count, big.NewInt(int64(n))).Int64())
	return a[k:] + a[:k]
}

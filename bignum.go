package main

import "math/big"

// parseBig reads a decimal integer with an optional leading sign; malformed
// input parses as zero.
func parseBig(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return new(big.Int)
	}
	return z
}

func bigToInt(z *big.Int) (int, bool) {
	if !z.IsInt64() {
		return 0, false
	}
	n := z.Int64()
	if int64(int(n)) != n {
		return 0, false
	}
	return int(n), true
}

// A radix argument is itself a digit, and the base is one more than its
// value: '0' is base 1, '9' is decimal, 'F' is hexadecimal, 'Z' is base 36.
func radixBase(s string) int {
	for _, r := range s {
		if v := digitVal(r); v >= 0 {
			return v + 1
		}
		break
	}
	return 0
}

func digitVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	}
	return -1
}

func digitChar(v int) byte {
	if v < 10 {
		return byte('0' + v)
	}
	return byte('A' + v - 10)
}

// convertRadix reinterprets the digits of v from one base into another.
// Invalid bases or digits convert to the null string; zero converts to "0".
func convertRadix(r1, r2, v string) string {
	from, to := radixBase(r1), radixBase(r2)
	if from == 0 || to == 0 {
		return ""
	}
	z := new(big.Int)
	scale := big.NewInt(int64(from))
	digit := new(big.Int)
	for _, r := range v {
		d := digitVal(r)
		if d < 0 || d >= from {
			return ""
		}
		z.Mul(z, scale)
		z.Add(z, digit.SetInt64(int64(d)))
	}
	return formatRadix(z, to)
}

func formatRadix(z *big.Int, base int) string {
	if z.Sign() == 0 {
		return "0"
	}
	// no positional notation exists for base 1
	if base < 2 {
		return ""
	}
	var digits []byte
	b := big.NewInt(int64(base))
	rem := new(big.Int)
	n := new(big.Int).Set(z)
	for n.Sign() > 0 {
		n.QuoRem(n, b, rem)
		digits = append(digits, digitChar(int(rem.Int64())))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

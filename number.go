package parsely

import (
	"fmt"
	"strconv"
)

// Digit matches a single ASCII decimal digit.
func Digit() Lexer {
	return CharIf(isDigit, "digit")
}

// HexDigit matches a single ASCII hexadecimal digit, either case.
func HexDigit() Lexer {
	return CharIf(isHexDigit, "hex digit")
}

// DigitBase matches a single digit in the given base, up to base 36.
// Letters count from 'a' (or 'A') as in strconv.
func DigitBase(base int) Lexer {
	return CharIf(func(r rune) bool {
		v := digitValue(r)
		return v >= 0 && v < base
	}, fmt.Sprintf("base-%d digit", base))
}

// Digits matches one or more ASCII decimal digits.
func Digits() Lexer {
	return Digit().Many(1, Unbounded)
}

// Int matches an optional leading '-' followed by one or more digits.
func Int() Lexer {
	return Char('-').Optional().Then(Digits())
}

// Uint matches one or more digits with no sign.
func Uint() Lexer {
	return Digits()
}

// Float matches an integer part, a '.', and an optional fraction part.
func Float() Lexer {
	return Int().Then(Char('.')).Then(Digit().Many(0, Unbounded))
}

// Number matches a float if the input has one, otherwise an integer.
func Number() Lexer {
	return Float().Or(Int())
}

// ParseInt parses a decimal integer, rejecting values outside int64 range.
func ParseInt() Parser[int64] {
	return TryMap(Int().Text(), func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// ParseUint parses an unsigned decimal integer, rejecting values outside
// uint64 range.
func ParseUint() Parser[uint64] {
	return TryMap(Uint().Text(), func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

// ParseFloat parses a number, with or without a fraction part, as a
// float64.
func ParseFloat() Parser[float64] {
	return TryMap(Number().Text(), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	}
	return -1
}

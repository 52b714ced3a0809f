package parsely

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Char matches exactly the character want.
func Char(want rune) Lexer {
	return func(input string) (string, string, error) {
		r, size := utf8.DecodeRuneInString(input)
		if size == 0 || r != want {
			return "", input, NewError(fmt.Sprintf("%q", want), input)
		}
		return input[:size], input[size:], nil
	}
}

// CharIf matches a single character for which pred returns true. desc
// names the character class in errors, e.g. "hex digit".
func CharIf(pred func(rune) bool, desc string) Lexer {
	return func(input string) (string, string, error) {
		r, size := utf8.DecodeRuneInString(input)
		if size == 0 || !pred(r) {
			return "", input, NewError("character matching "+desc, input)
		}
		return input[:size], input[size:], nil
	}
}

// Any matches any single character, failing only at end of input.
func Any() Lexer {
	return func(input string) (string, string, error) {
		_, size := utf8.DecodeRuneInString(input)
		if size == 0 {
			return "", input, NewError("any character", input)
		}
		return input[:size], input[size:], nil
	}
}

// WS matches a single whitespace character.
func WS() Lexer {
	return CharIf(unicode.IsSpace, "whitespace")
}

// Whitespace matches any amount of whitespace, including none.
func Whitespace() Lexer {
	return WS().Many(0, Unbounded)
}

// Take matches exactly n characters.
func Take(n int) Lexer {
	return func(input string) (string, string, error) {
		offset := 0
		for i := 0; i < n; i++ {
			_, size := utf8.DecodeRuneInString(input[offset:])
			if size == 0 {
				return "", input, NewError(fmt.Sprintf("%d characters", n), input)
			}
			offset += size
		}
		return input[:offset], input[offset:], nil
	}
}

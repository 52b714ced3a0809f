package parsely

import (
	"fmt"
	"strings"
)

// Token matches exactly the literal text lit at the start of the input.
// Comparison is exact and case-sensitive.
func Token(lit string) Lexer {
	return func(input string) (string, string, error) {
		if !strings.HasPrefix(input, lit) {
			return "", input, NewError(fmt.Sprintf("literal %q", lit), input)
		}
		return input[:len(lit)], input[len(lit):], nil
	}
}

// End matches only at the end of the input, consuming nothing. Sequence it
// after a parser to require that the input is fully consumed.
func End() Lexer {
	return func(input string) (string, string, error) {
		if input != "" {
			return "", input, NewError("end of input", input)
		}
		return "", "", nil
	}
}

// Until matches everything up to, but not including, the first occurrence
// of stop. The match is empty if the input begins with stop; the lexer
// fails if stop never occurs.
func Until(stop string) Lexer {
	return func(input string) (string, string, error) {
		i := strings.Index(input, stop)
		if i < 0 {
			return "", input, NewError(fmt.Sprintf("input containing %q", stop), input)
		}
		return input[:i], input[i:], nil
	}
}

package parsely

import "fmt"

// Lexer matches and consumes a prefix of its input, discarding the matched
// text's content. On success, matched is a prefix of input and remaining is
// exactly the suffix after it; concatenating the two gives back input. On
// failure, the returned error is a *Error and input is left for the caller
// to retry.
type Lexer func(input string) (matched, remaining string, err error)

// Text adapts the lexer into a parser whose value is the matched text
// itself.
func (l Lexer) Text() Parser[string] {
	return func(input string) (string, string, error) {
		matched, remaining, err := l(input)
		if err != nil {
			return "", input, err
		}
		return matched, remaining, nil
	}
}

// Then runs l and, on success, next on the remaining input. The combined
// match covers both lexers' spans. The first failure wins.
func (l Lexer) Then(next Lexer) Lexer {
	return func(input string) (string, string, error) {
		first, rest, err := l(input)
		if err != nil {
			return "", input, err
		}
		var second string
		second, rest, err = next(rest)
		if err != nil {
			return "", input, rebase(err, input)
		}
		n := len(first) + len(second)
		return input[:n], input[n:], nil
	}
}

// Or runs l and, if it fails, alt on the same input. At most one of the
// two consumes input. If both fail, the error that got further into the
// input is reported.
func (l Lexer) Or(alt Lexer) Lexer {
	return func(input string) (string, string, error) {
		matched, rest, err := l(input)
		if err == nil {
			return matched, rest, nil
		}
		matched, rest, altErr := alt(input)
		if altErr == nil {
			return matched, rest, nil
		}
		return "", input, furthest(err, altErr)
	}
}

// Many applies l repeatedly, between min and max times inclusive. Matching
// stops at the first failure of l or once max repetitions have matched;
// the failing attempt's input is never consumed. Fewer than min successes
// is a failure. Use Unbounded for max to remove the upper limit.
//
// A zero-width match stops the repetition: the lexer would otherwise match
// in place forever.
func (l Lexer) Many(min, max int) Lexer {
	return func(input string) (string, string, error) {
		count := 0
		offset := 0
		rest := input
		for count < max {
			matched, next, err := l(rest)
			if err != nil {
				break
			}
			count++
			offset += len(matched)
			rest = next
			if matched == "" {
				break
			}
		}
		if count < min {
			return "", input, &Error{
				Expected:  fmt.Sprintf("at least %d repetitions, got %d", min, count),
				Input:     input,
				Remainder: rest,
			}
		}
		return input[:offset], input[offset:], nil
	}
}

// Count applies l exactly n times. Unlike Many, a failing attempt
// propagates l's own error rather than a repetition-count error.
func (l Lexer) Count(n int) Lexer {
	return func(input string) (string, string, error) {
		offset := 0
		rest := input
		for i := 0; i < n; i++ {
			matched, next, err := l(rest)
			if err != nil {
				return "", input, rebase(err, input)
			}
			offset += len(matched)
			rest = next
		}
		return input[:offset], input[offset:], nil
	}
}

// Optional turns failure of l into an empty match.
func (l Lexer) Optional() Lexer {
	return func(input string) (string, string, error) {
		matched, rest, err := l(input)
		if err != nil {
			return "", input, nil
		}
		return matched, rest, nil
	}
}

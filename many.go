package parsely

import (
	"fmt"
	"math"
)

// Unbounded removes the upper limit of a repetition.
const Unbounded = math.MaxInt

// Many applies p repeatedly, between min and max times inclusive,
// collecting the values in match order. Matching stops at the first
// failure of p or once max repetitions have matched; the failing attempt's
// input is never consumed. Fewer than min successes is a failure. A lower
// bound of zero with an immediately failing p is an empty success.
//
// A zero-width match stops the repetition: the parser would otherwise
// match in place forever.
func Many[T any](p Parser[T], min, max int) Parser[[]T] {
	return func(input string) ([]T, string, error) {
		var values []T
		count := 0
		rest := input
		for count < max {
			value, next, err := p(rest)
			if err != nil {
				break
			}
			values = append(values, value)
			count++
			progressed := len(next) < len(rest)
			rest = next
			if !progressed {
				break
			}
		}
		if count < min {
			return nil, input, &Error{
				Expected:  fmt.Sprintf("at least %d repetitions, got %d", min, count),
				Input:     input,
				Remainder: rest,
			}
		}
		return values, rest, nil
	}
}

// Count applies p exactly n times, collecting the values. Unlike Many, a
// failing attempt propagates p's own error rather than a repetition-count
// error. Count(p, n) accepts exactly the inputs Many(p, n, n) accepts.
func Count[T any](p Parser[T], n int) Parser[[]T] {
	return func(input string) ([]T, string, error) {
		values := make([]T, 0, n)
		rest := input
		for i := 0; i < n; i++ {
			value, next, err := p(rest)
			if err != nil {
				return nil, input, rebase(err, input)
			}
			values = append(values, value)
			rest = next
		}
		return values, rest, nil
	}
}

// Maybe is the result of an Optional parser: Value is meaningful only when
// OK is true.
type Maybe[T any] struct {
	Value T
	OK    bool
}

// Optional turns failure of p into a success carrying an unset Maybe. No
// input is consumed on the failing path.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(input string) (Maybe[T], string, error) {
		value, rest, err := p(input)
		if err != nil {
			return Maybe[T]{}, input, nil
		}
		return Maybe[T]{Value: value, OK: true}, rest, nil
	}
}

// SepBy applies item repeatedly with sep between consecutive items,
// collecting between min and max values inclusive. The separator after the
// last item is not consumed.
func SepBy[T any](item Parser[T], sep Lexer, min, max int) Parser[[]T] {
	return func(input string) ([]T, string, error) {
		var values []T
		count := 0
		rest := input
		for count < max {
			attempt := item
			if count > 0 {
				attempt = SkipThen(sep, item)
			}
			value, next, err := attempt(rest)
			if err != nil {
				break
			}
			values = append(values, value)
			count++
			progressed := len(next) < len(rest)
			rest = next
			if !progressed {
				break
			}
		}
		if count < min {
			return nil, input, &Error{
				Expected:  fmt.Sprintf("at least %d repetitions, got %d", min, count),
				Input:     input,
				Remainder: rest,
			}
		}
		return values, rest, nil
	}
}

package parsely

import "fmt"

// Map applies p and transforms its value with f. The remaining input is
// p's remaining input, unchanged: f sees values, never text. f must be
// total; a transform that can reject its input belongs in TryMap.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) (B, string, error) {
		var zero B
		value, rest, err := p(input)
		if err != nil {
			return zero, input, err
		}
		return f(value), rest, nil
	}
}

// TryMap applies p and transforms its value with the fallible f. If f
// rejects the value, the whole combinator fails with a conversion error
// positioned at the start of p's match: the shape matched but the content
// was invalid, so nothing after p's prefix counts as tried. f never
// consumes input; on f's success the remaining input is p's.
func TryMap[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return func(input string) (B, string, error) {
		var zero B
		value, rest, err := p(input)
		if err != nil {
			return zero, input, err
		}
		mapped, convErr := f(value)
		if convErr != nil {
			return zero, input, &Error{
				Expected:  fmt.Sprintf("convertible input (%v)", convErr),
				Input:     input,
				Remainder: input,
			}
		}
		return mapped, rest, nil
	}
}

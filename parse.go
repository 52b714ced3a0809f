package parsely

// Parser matches and consumes a prefix of its input, producing a typed
// value from it. The consumption contract is the same as Lexer's: on
// success, remaining is exactly the suffix after the consumed span; on
// failure, the error is a *Error and input is left for the caller.
type Parser[T any] func(input string) (value T, remaining string, err error)

// Or runs p and, if it fails, alt on the same input. At most one of the
// two consumes input. If both fail, the error that got further into the
// input is reported.
func (p Parser[T]) Or(alt Parser[T]) Parser[T] {
	return OneOf(p, alt)
}

// ThenSkip runs p and then skip, keeping only p's value. See ThenSkip.
func (p Parser[T]) ThenSkip(skip Lexer) Parser[T] {
	return ThenSkip(p, skip)
}

// Pad allows optional whitespace before and after p.
func (p Parser[T]) Pad() Parser[T] {
	return Pad(Whitespace(), Whitespace(), p)
}

// OneOf tries each alternative in order on the same input and returns the
// first success. This is ordered alternation, not backtracking: once a
// sequence inside an alternative has started consuming, its failure is
// final for that alternative. If all alternatives fail, the error that got
// furthest into the input is reported.
func OneOf[T any](alternatives ...Parser[T]) Parser[T] {
	return func(input string) (T, string, error) {
		var zero T
		var best error
		for _, alt := range alternatives {
			value, rest, err := alt(input)
			if err == nil {
				return value, rest, nil
			}
			if best == nil {
				best = err
			} else {
				best = furthest(best, err)
			}
		}
		if best == nil {
			best = NewError("at least one alternative", input)
		}
		return zero, input, best
	}
}

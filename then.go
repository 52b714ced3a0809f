package parsely

// Pair holds the two values produced by Then, in match order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Then runs a and, on success, b on a's remaining input, pairing the two
// values. If a fails, b is never attempted. If b fails, its error is
// reported with the position relative to the combined input, which is
// always at or past a's consumption point.
func Then[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(input string) (Pair[A, B], string, error) {
		first, rest, err := a(input)
		if err != nil {
			return Pair[A, B]{}, input, err
		}
		second, rest, err := b(rest)
		if err != nil {
			return Pair[A, B]{}, input, rebase(err, input)
		}
		return Pair[A, B]{First: first, Second: second}, rest, nil
	}
}

// SkipThen runs skip and then p, keeping only p's value. Useful for
// leading punctuation that must match but carries no data.
func SkipThen[T any](skip Lexer, p Parser[T]) Parser[T] {
	return func(input string) (T, string, error) {
		var zero T
		_, rest, err := skip(input)
		if err != nil {
			return zero, input, err
		}
		value, rest, err := p(rest)
		if err != nil {
			return zero, input, rebase(err, input)
		}
		return value, rest, nil
	}
}

// ThenSkip runs p and then skip, keeping only p's value. Useful for
// trailing punctuation that must match but carries no data.
func ThenSkip[T any](p Parser[T], skip Lexer) Parser[T] {
	return func(input string) (T, string, error) {
		var zero T
		value, rest, err := p(input)
		if err != nil {
			return zero, input, err
		}
		_, rest, err = skip(rest)
		if err != nil {
			return zero, input, rebase(err, input)
		}
		return value, rest, nil
	}
}

// Pad runs left, then item, then right, keeping only item's value. All
// three must match.
func Pad[T any](left, right Lexer, item Parser[T]) Parser[T] {
	return func(input string) (T, string, error) {
		var zero T
		_, rest, err := left(input)
		if err != nil {
			return zero, input, err
		}
		value, rest, err := item(rest)
		if err != nil {
			return zero, input, rebase(err, input)
		}
		_, rest, err = right(rest)
		if err != nil {
			return zero, input, rebase(err, input)
		}
		return value, rest, nil
	}
}

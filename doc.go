// Package parsely provides small, composable building blocks for turning
// flat text into typed values.
//
// # Overview
//
// Everything in this package is one of two shapes:
//
//	// Lexer matches and consumes a prefix of its input. The matched text
//	// is structural: it is not turned into a value.
//	type Lexer func(input string) (matched, remaining string, err error)
//
//	// Parser matches and consumes a prefix of its input, producing a
//	// typed value from it.
//	type Parser[T any] func(input string) (value T, remaining string, err error)
//
// On success, matched text plus remaining input always reconstitute the
// original input exactly. On failure, the original input is untouched and
// the returned error is a *Error describing what was expected and where.
//
// Combinators are pure values: they hold no parse state, so a combinator
// built once can be applied any number of times, from any number of
// goroutines, on independent inputs.
//
// # Building a parser
//
// Primitives such as Char, CharIf, Token and Digit match single characters
// or literals. Operators combine them: Then sequences two parsers, SkipThen
// and ThenSkip sequence while discarding one side, Many and Count repeat,
// Map and TryMap transform the produced value. A Lexer becomes a Parser of
// its matched text via Text.
//
//	channel := parsely.TryMap(parsely.HexDigit().Count(2).Text(), fromHex)
//	color := parsely.SkipThen(parsely.Token("#"),
//		parsely.Then(channel, parsely.Then(channel, channel)))
//
//	v, remaining, err := color("#2F14DF")
//
// # Errors
//
// A *Error holds views into the input it was produced from. Code that
// returns an error past the point where the input is controlled (for
// example a FromString-style constructor) should convert it with Detach,
// which copies the views into an independent *OwnedError.
package parsely

// Package jsonish parses a useful subset of JSON with parsely combinators.
//
// It exists as a worked example of recursive grammars: arrays and objects
// contain values, and a named function with a parser's signature is itself
// a parser, so the recursion is plain function calls.
package jsonish

import (
	"strconv"
	"strings"

	"github.com/dhamidi/parsely"
)

// Value is a decoded JSON value: nil, bool, int64, float64, string,
// []Value or map[string]Value.
type Value any

var nullValue = parsely.Map(parsely.Token("null").Text(), func(string) Value { return nil })

var boolValue = parsely.Map(parsely.Token("true").Text(), func(string) Value { return true }).
	Or(parsely.Map(parsely.Token("false").Text(), func(string) Value { return false }))

// numberValue keeps integers as int64 and everything else as float64.
var numberValue = parsely.TryMap(parsely.Number().Text(), func(s string) (Value, error) {
	if !strings.Contains(s, ".") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
})

var escape = parsely.SkipThen(parsely.Char('\\'), parsely.OneOf(
	parsely.Map(parsely.Char('\\').Text(), func(string) string { return `\` }),
	parsely.Map(parsely.Char('"').Text(), func(string) string { return `"` }),
	parsely.Map(parsely.Char('/').Text(), func(string) string { return "/" }),
	parsely.Map(parsely.Char('t').Text(), func(string) string { return "\t" }),
	parsely.Map(parsely.Char('n').Text(), func(string) string { return "\n" }),
	parsely.Map(parsely.Char('r').Text(), func(string) string { return "\r" }),
))

var plainChar = parsely.CharIf(func(r rune) bool {
	return r != '"' && r != '\\'
}, "string character").Text()

var stringBody = parsely.Map(
	parsely.Many(escape.Or(plainChar), 0, parsely.Unbounded),
	func(parts []string) string { return strings.Join(parts, "") })

var stringLit = parsely.Pad(parsely.Char('"'), parsely.Char('"'), stringBody)

var (
	comma = parsely.Whitespace().Then(parsely.Char(',')).Then(parsely.Whitespace())
	colon = parsely.Whitespace().Then(parsely.Char(':')).Then(parsely.Whitespace())
)

// parseArray and parseObject recurse into parseValue, so they stay plain
// functions: package-level combinator values here would form an
// initialization cycle.
func parseArray(input string) (Value, string, error) {
	lbracket := parsely.Char('[').Then(parsely.Whitespace())
	rbracket := parsely.Whitespace().Then(parsely.Char(']'))
	p := parsely.Map(
		parsely.Pad(lbracket, rbracket,
			parsely.SepBy(parsely.Parser[Value](parseValue), comma, 0, parsely.Unbounded)),
		func(vs []Value) Value {
			if vs == nil {
				vs = []Value{}
			}
			return vs
		})
	return p(input)
}

func parseObject(input string) (Value, string, error) {
	lbrace := parsely.Char('{').Then(parsely.Whitespace())
	rbrace := parsely.Whitespace().Then(parsely.Char('}'))
	member := parsely.Then(
		parsely.ThenSkip(stringLit, colon),
		parsely.Parser[Value](parseValue))
	p := parsely.Map(
		parsely.Pad(lbrace, rbrace, parsely.SepBy(member, comma, 0, parsely.Unbounded)),
		func(members []parsely.Pair[string, Value]) Value {
			object := make(map[string]Value, len(members))
			for _, m := range members {
				object[m.First] = m.Second
			}
			return object
		})
	return p(input)
}

func parseValue(input string) (Value, string, error) {
	p := parsely.OneOf(
		nullValue,
		boolValue,
		numberValue,
		parsely.Map(stringLit, func(s string) Value { return s }),
		parsely.Parser[Value](parseArray),
		parsely.Parser[Value](parseObject),
	).Pad()
	return p(input)
}

// Parse decodes input as a single JSON document, requiring that all of it
// is consumed. The returned error is detached and safe to keep.
func Parse(input string) (Value, error) {
	v, _, err := parsely.ThenSkip(parsely.Parser[Value](parseValue), parsely.End())(input)
	if err != nil {
		return nil, parsely.Detach(err)
	}
	return v, nil
}

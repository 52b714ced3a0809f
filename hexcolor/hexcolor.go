// Package hexcolor parses #RRGGBB color literals into their channels.
package hexcolor

import (
	"strconv"

	"github.com/dhamidi/parsely"
)

// Color is an RGB color with 8-bit channels.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// channel parses exactly two hex digits as one 8-bit channel value.
var channel = parsely.TryMap(parsely.HexDigit().Count(2).Text(), fromHex)

var color = parsely.Map(
	parsely.SkipThen(parsely.Token("#"),
		parsely.Then(channel, parsely.Then(channel, channel))),
	func(v parsely.Pair[uint8, parsely.Pair[uint8, uint8]]) Color {
		return Color{R: v.First, G: v.Second.First, B: v.Second.Second}
	})

var colorOnly = parsely.ThenSkip(color, parsely.End())

func fromHex(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	return uint8(v), err
}

// Parse parses a color from the start of input, returning the unconsumed
// remainder.
func Parse(input string) (Color, string, error) {
	return color(input)
}

// FromString parses input as a complete color literal with nothing
// following it. The returned error is detached from input and safe to
// keep.
func FromString(input string) (Color, error) {
	c, _, err := colorOnly(input)
	if err != nil {
		return Color{}, parsely.Detach(err)
	}
	return c, nil
}

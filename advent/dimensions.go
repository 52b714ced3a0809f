package advent

import (
	"strings"

	"github.com/dhamidi/parsely"
)

// Dimensions is one present's length, width and height in feet.
type Dimensions struct {
	Length uint
	Width  uint
	Height uint
}

// side parses one dimension; present sizes fit comfortably in uint.
var side = parsely.Map(parsely.ParseUint(), func(v uint64) uint { return uint(v) })

// xSep matches the 'x' between dimensions, tolerating whitespace around it.
var xSep = parsely.Whitespace().Then(parsely.Char('x')).Then(parsely.Whitespace())

var dimensions = parsely.Map(
	parsely.Then(side.ThenSkip(xSep), parsely.Then(side.ThenSkip(xSep), side)),
	func(v parsely.Pair[uint, parsely.Pair[uint, uint]]) Dimensions {
		return Dimensions{Length: v.First, Width: v.Second.First, Height: v.Second.Second}
	})

var dimensionsOnly = parsely.ThenSkip(dimensions, parsely.End())

// ParseDimensions parses a complete "LxWxH" line. The returned error is
// detached and safe to keep.
func ParseDimensions(input string) (Dimensions, error) {
	d, _, err := dimensionsOnly(input)
	if err != nil {
		return Dimensions{}, parsely.Detach(err)
	}
	return d, nil
}

// Paper returns the wrapping paper needed for the present: its surface
// area plus the area of its smallest side as slack.
func (d Dimensions) Paper() uint {
	lw := d.Length * d.Width
	wh := d.Width * d.Height
	hl := d.Height * d.Length
	return 2*lw + 2*wh + 2*hl + min(lw, wh, hl)
}

// Ribbon returns the ribbon needed: the smallest perimeter of any face
// plus the present's volume for the bow.
func (d Dimensions) Ribbon() uint {
	perimeters := []uint{
		2 * (d.Length + d.Width),
		2 * (d.Width + d.Height),
		2 * (d.Height + d.Length),
	}
	return min(perimeters[0], perimeters[1], perimeters[2]) + d.Length*d.Width*d.Height
}

// Totals sums paper and ribbon over one present description per line.
// Blank lines are skipped.
func Totals(input string) (paper, ribbon uint, err error) {
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		d, err := ParseDimensions(line)
		if err != nil {
			return 0, 0, err
		}
		paper += d.Paper()
		ribbon += d.Ribbon()
	}
	return paper, ribbon, nil
}

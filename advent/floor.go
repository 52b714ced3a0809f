// Package advent solves a couple of Advent of Code puzzles whose inputs
// are flat text, as worked examples of building parsers from combinators.
package advent

import "github.com/dhamidi/parsely"

// step maps '(' to one floor up and ')' to one floor down.
var step = parsely.Map(parsely.Char('(').Text(), func(string) int { return 1 }).
	Or(parsely.Map(parsely.Char(')').Text(), func(string) int { return -1 }))

var steps = parsely.Many(step, 1, parsely.Unbounded)

// FindFloor follows a string of '(' and ')' moves from floor zero and
// returns the final floor.
func FindFloor(input string) (int, error) {
	moves, _, err := steps(input)
	if err != nil {
		return 0, parsely.Detach(err)
	}

	floor := 0
	for _, move := range moves {
		floor += move
	}
	return floor, nil
}

// FirstBasementPosition returns the 1-based position of the move that
// first takes the floor below zero, or 0 if that never happens.
func FirstBasementPosition(input string) (int, error) {
	moves, _, err := steps(input)
	if err != nil {
		return 0, parsely.Detach(err)
	}

	floor := 0
	for i, move := range moves {
		floor += move
		if floor < 0 {
			return i + 1, nil
		}
	}
	return 0, nil
}

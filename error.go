package parsely

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error reports a failed match.
//
// It stores two views into the text being parsed: Input, the input as first
// seen by the failing combinator chain, and Remainder, the suffix that was
// still unconsumed when matching failed. The failure position and the
// matched prefix are derived from the two, so they stay consistent by
// construction.
//
// Both fields alias the caller's input and keep its backing memory alive.
// Convert with Detach before storing an Error or returning it across an
// API boundary that outlives the input.
type Error struct {
	// Expected describes the pattern that was being matched.
	Expected string

	// Input is the original input of the combinator chain that failed.
	Input string

	// Remainder is the unconsumed input at the failure point.
	Remainder string
}

// NewError returns an Error that failed at the very start of input.
func NewError(expected, input string) *Error {
	return &Error{Expected: expected, Input: input, Remainder: input}
}

// Pos returns the byte offset into Input at which matching failed.
func (e *Error) Pos() int {
	return len(e.Input) - len(e.Remainder)
}

// Matched returns the part of Input consumed before the failure.
func (e *Error) Matched() string {
	return e.Input[:e.Pos()]
}

// Found returns a short, quoted fragment of the input at the failure
// point, or "end of input".
func (e *Error) Found() string {
	return found(e.Remainder)
}

func (e *Error) Error() string {
	return fmt.Sprintf("expected %s at offset %d, found %s", e.Expected, e.Pos(), e.Found())
}

// Detach copies the error's input views so the result no longer references
// the original input's memory.
func (e *Error) Detach() *OwnedError {
	return &OwnedError{
		Expected:  strings.Clone(e.Expected),
		Input:     strings.Clone(e.Input),
		Remainder: strings.Clone(e.Remainder),
	}
}

// OwnedError is an Error whose text has been copied out of the original
// input. It is safe to keep after the input is gone.
type OwnedError struct {
	Expected  string
	Input     string
	Remainder string
}

// Pos returns the byte offset into Input at which matching failed.
func (e *OwnedError) Pos() int {
	return len(e.Input) - len(e.Remainder)
}

// Matched returns the part of Input consumed before the failure.
func (e *OwnedError) Matched() string {
	return e.Input[:e.Pos()]
}

// Found returns a short, quoted fragment of the input at the failure
// point, or "end of input".
func (e *OwnedError) Found() string {
	return found(e.Remainder)
}

func (e *OwnedError) Error() string {
	return fmt.Sprintf("expected %s at offset %d, found %s", e.Expected, e.Pos(), e.Found())
}

// Detach converts err into its owned form if it is a *Error. Other errors
// are returned unchanged.
func Detach(err error) error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Detach()
	}
	return err
}

const foundLimit = 12

func found(remainder string) string {
	if remainder == "" {
		return "end of input"
	}
	if len(remainder) > foundLimit {
		cut := foundLimit
		for cut > 0 && !utf8.RuneStart(remainder[cut]) {
			cut--
		}
		remainder = remainder[:cut]
	}
	return fmt.Sprintf("%q", remainder)
}

// rebase re-roots a child error onto the input seen by an enclosing
// combinator. The child saw a suffix of input, so keeping Remainder and
// widening Input moves the reported position from child-relative to
// chain-relative.
func rebase(err error, input string) error {
	var pe *Error
	if errors.As(err, &pe) {
		e := *pe
		e.Input = input
		return &e
	}
	return err
}

// furthest picks the error whose match got further into the input, on the
// assumption that it is the more specific one. Ties go to b.
func furthest(a, b error) error {
	var ea, eb *Error
	if !errors.As(a, &ea) || !errors.As(b, &eb) {
		return b
	}
	if len(ea.Remainder) < len(eb.Remainder) {
		return a
	}
	return b
}

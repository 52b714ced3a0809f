package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/parsely"
	"github.com/fatih/color"
)

// printParseError renders a detached parse error with a caret under the
// failure position:
//
//	#2F14DG
//	      ^
//	expected character matching hex digit, found "G"
//
// Inputs spanning multiple lines only show the offending one.
func printParseError(w io.Writer, err error) bool {
	var owned *parsely.OwnedError
	if !errors.As(err, &owned) {
		return false
	}

	line, column := lineAt(owned.Input, owned.Pos())
	fmt.Fprintln(w, line)
	caret := strings.Repeat(" ", column) + "^"
	fmt.Fprintln(w, color.New(color.FgRed, color.Bold).Sprint(caret))
	fmt.Fprintln(w, color.RedString("expected %s, found %s", owned.Expected, owned.Found()))
	return true
}

// lineAt returns the line containing byte offset pos and the offset's
// column within it.
func lineAt(input string, pos int) (line string, column int) {
	start := strings.LastIndexByte(input[:pos], '\n') + 1
	end := strings.IndexByte(input[pos:], '\n')
	if end < 0 {
		end = len(input)
	} else {
		end += pos
	}
	return input[start:end], pos - start
}

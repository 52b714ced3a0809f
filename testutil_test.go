package parsely

import "testing"

// lexCase describes one application of a lexer: ok cases give the expected
// matched/rest split, failure cases expect an error and untouched input.
type lexCase struct {
	input   string
	matched string
	rest    string
	ok      bool
}

func runLexCases(t *testing.T, l Lexer, cases []lexCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			matched, rest, err := l(tt.input)
			if !tt.ok {
				if err == nil {
					t.Fatalf("lex(%q) succeeded with %q, want error", tt.input, matched)
				}
				return
			}
			if err != nil {
				t.Fatalf("lex(%q) error: %v", tt.input, err)
			}
			if matched != tt.matched {
				t.Errorf("matched = %q, want %q", matched, tt.matched)
			}
			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
			if matched+rest != tt.input {
				t.Errorf("matched+rest = %q, does not reconstitute %q", matched+rest, tt.input)
			}
		})
	}
}

// parseErr unwraps err into a *Error, failing the test otherwise.
func parseErr(t *testing.T, err error) *Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	pe, ok := err.(*Error)
	if !ok {
		t.Fatalf("error is %T, want *Error", err)
	}
	return pe
}

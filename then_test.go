package parsely

import "testing"

func TestThen(t *testing.T) {
	p := Then(Token("foo").Text(), ParseInt())

	value, rest, err := p("foo42!")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if value.First != "foo" || value.Second != 42 {
		t.Errorf("value = %+v, want {foo 42}", value)
	}
	if rest != "!" {
		t.Errorf("rest = %q, want %q", rest, "!")
	}
}

func TestThenFirstFails(t *testing.T) {
	p := Then(Token("foo").Text(), ParseInt())

	_, _, err := p("bar42")
	pe := parseErr(t, err)
	if pe.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", pe.Pos())
	}
	if pe.Expected != `literal "foo"` {
		t.Errorf("Expected = %q, want the literal's own error", pe.Expected)
	}
}

func TestThenSecondFailsPastFirst(t *testing.T) {
	p := Then(Token("foo").Text(), ParseInt())

	_, _, err := p("fooxx")
	pe := parseErr(t, err)
	if pe.Pos() < 3 {
		t.Errorf("Pos() = %d, want >= 3 (past the first parser's span)", pe.Pos())
	}
	if pe.Input != "fooxx" {
		t.Errorf("Input = %q, want the full input", pe.Input)
	}
}

func TestThenConsumptionAdds(t *testing.T) {
	a := Token("ab").Text()
	b := Digits().Text()
	p := Then(a, b)

	input := "ab123xyz"
	_, restA, err := a(input)
	if err != nil {
		t.Fatal(err)
	}
	_, restB, err := b(restA)
	if err != nil {
		t.Fatal(err)
	}
	_, rest, err := p(input)
	if err != nil {
		t.Fatal(err)
	}
	if rest != restB {
		t.Errorf("combined rest = %q, want %q (A's consumption plus B's)", rest, restB)
	}
}

func TestSkipThen(t *testing.T) {
	p := SkipThen(Token(">>>"), ParseInt())

	value, rest, err := p(">>>123")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if value != 123 || rest != "" {
		t.Errorf("value, rest = %d, %q, want 123, \"\"", value, rest)
	}

	if _, _, err := p("123"); err == nil {
		t.Error("missing prefix accepted")
	}
}

func TestThenSkip(t *testing.T) {
	p := ThenSkip(Digits().Text(), Token("<<<"))

	value, rest, err := p("123<<<")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if value != "123" || rest != "" {
		t.Errorf("value, rest = %q, %q, want \"123\", \"\"", value, rest)
	}

	_, _, err = p("123>>>")
	pe := parseErr(t, err)
	if pe.Pos() != 3 {
		t.Errorf("Pos() = %d, want 3", pe.Pos())
	}
}

func TestPad(t *testing.T) {
	p := Pad(Char('>'), Char('<'), ParseInt())

	tests := []struct {
		input string
		value int64
		ok    bool
	}{
		{">123<", 123, true},
		{"123<", 0, false},
		{">123", 0, false},
		{">>123<<", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, _, err := p(tt.input)
			if tt.ok != (err == nil) {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if tt.ok && value != tt.value {
				t.Errorf("value = %d, want %d", value, tt.value)
			}
		})
	}
}

func TestParserPad(t *testing.T) {
	p := ParseInt().Pad()

	value, rest, err := p("  42  x")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if value != 42 || rest != "x" {
		t.Errorf("value, rest = %d, %q, want 42, \"x\"", value, rest)
	}

	// padding is optional
	value, rest, err = p("7")
	if err != nil || value != 7 || rest != "" {
		t.Errorf("value, rest, err = %d, %q, %v, want 7, \"\", nil", value, rest, err)
	}
}

package parsely

import "testing"

func TestDigit(t *testing.T) {
	runLexCases(t, Digit(), []lexCase{
		{"123", "1", "23", true},
		{"0", "0", "", true},
		{"a1", "", "", false},
		{"", "", "", false},
	})
}

func TestHexDigit(t *testing.T) {
	runLexCases(t, HexDigit(), []lexCase{
		{"2F", "2", "F", true},
		{"f0", "f", "0", true},
		{"A", "A", "", true},
		{"G", "", "", false},
		{"", "", "", false},
	})
}

func TestDigitBase(t *testing.T) {
	runLexCases(t, DigitBase(2), []lexCase{
		{"01", "0", "1", true},
		{"10", "1", "0", true},
		{"2", "", "", false},
	})

	runLexCases(t, DigitBase(36), []lexCase{
		{"z9", "z", "9", true},
		{"Z", "Z", "", true},
	})
}

func TestIntLexer(t *testing.T) {
	runLexCases(t, Int(), []lexCase{
		{"123", "123", "", true},
		{"-123abc", "-123", "abc", true},
		{"-1", "-1", "", true},
		{"-", "", "", false},
		{"abc", "", "", false},
		{"", "", "", false},
	})
}

func TestFloatLexer(t *testing.T) {
	runLexCases(t, Float(), []lexCase{
		{"1.5", "1.5", "", true},
		{"-12.25x", "-12.25", "x", true},
		{"1.", "1.", "", true},
		{"15", "", "", false},
		{".5", "", "", false},
	})
}

func TestNumberLexer(t *testing.T) {
	runLexCases(t, Number(), []lexCase{
		{"1.5", "1.5", "", true},
		{"15", "15", "", true},
		{"-3x", "-3", "x", true},
	})
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input string
		value int64
		rest  string
		ok    bool
	}{
		{"123", 123, "", true},
		{"-123abc", -123, "abc", true},
		{"0", 0, "", true},
		{"abc", 0, "", false},
		{"", 0, "", false},
		// matches the digit shape but overflows int64
		{"99999999999999999999", 0, "", false},
	}

	p := ParseInt()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, rest, err := p(tt.input)
			if !tt.ok {
				if err == nil {
					t.Fatalf("ParseInt(%q) = %d, want error", tt.input, value)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInt(%q) error: %v", tt.input, err)
			}
			if value != tt.value {
				t.Errorf("value = %d, want %d", value, tt.value)
			}
			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestParseIntEmptyInputPosition(t *testing.T) {
	_, _, err := ParseInt()("")
	pe := parseErr(t, err)
	if pe.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", pe.Pos())
	}
}

func TestParseUint(t *testing.T) {
	value, rest, err := ParseUint()("42x")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if value != 42 || rest != "x" {
		t.Errorf("value, rest = %d, %q, want 42, \"x\"", value, rest)
	}

	if _, _, err := ParseUint()("-42"); err == nil {
		t.Error("ParseUint accepted a sign")
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input string
		value float64
		rest  string
	}{
		{"1.5", 1.5, ""},
		{"-12.25x", -12.25, "x"},
		{"3", 3, ""},
	}

	p := ParseFloat()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, rest, err := p(tt.input)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if value != tt.value {
				t.Errorf("value = %v, want %v", value, tt.value)
			}
			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
		})
	}
}

package swaram

import (
	"errors"
	"testing"
)

func TestNewScale(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"SRGMPDN", "SRGMPDN"},
		{"SRGMPDNS", "SRGMPDN"},
		{"pnmdgrs", "SRGMPDN"},
		{"s r g p d", "SRGPD"},
		{"DGSRP", "SRGPD"},
		{"SSSS", "S"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := NewScale(tt.input)
			if err != nil {
				t.Fatalf("NewScale(%q) error = %v", tt.input, err)
			}
			if s.String() != tt.expected {
				t.Errorf("NewScale(%q) = %s, want %s", tt.input, s, tt.expected)
			}
			for i, m := range s.Members() {
				if m.Octave != 0 || m.Accidental != 0 {
					t.Errorf("member %d = %#v, want natural octave 0", i, m)
				}
			}
		})
	}
}

func TestNewScaleErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"missing tonic", "RGM"},
		{"unknown letter", "SRX"},
		{"punctuation", "S-R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScale(tt.input)
			var scaleErr *InvalidScaleError
			if !errors.As(err, &scaleErr) {
				t.Fatalf("NewScale(%q) error = %v, want InvalidScaleError", tt.input, err)
			}
		})
	}
}

func TestScaleContains(t *testing.T) {
	s, err := NewScale("SRGPD")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		token    Token
		expected bool
	}{
		{"middle G", Pitch{Degree: Ga}, true},
		{"lower D", Pitch{Degree: Dha, Octave: -1}, true},
		{"upper S", Pitch{Degree: Sa, Octave: 1}, true},
		{"M not in scale", Pitch{Degree: Ma}, false},
		{"flat R", Pitch{Degree: Re, Accidental: -1}, false},
		{"placeholder", Placeholder{'S'}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.token); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestScaleNext(t *testing.T) {
	s, err := NewScale("SRGPD")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		from     Pitch
		dir      Direction
		expected Pitch
	}{
		{"G up to P", Pitch{Degree: Ga}, Ascending, Pitch{Degree: Pa}},
		{"D up wraps to upper S", Pitch{Degree: Dha}, Ascending, Pitch{Degree: Sa, Octave: 1}},
		{"P down to G", Pitch{Degree: Pa}, Descending, Pitch{Degree: Ga}},
		{"S down wraps to lower D", Pitch{Degree: Sa}, Descending, Pitch{Degree: Dha, Octave: -1}},
		{"lower d up to middle S", Pitch{Degree: Dha, Octave: -1}, Ascending, Pitch{Degree: Sa}},
		{"off-scale M up to P", Pitch{Degree: Ma}, Ascending, Pitch{Degree: Pa}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Next(tt.from, tt.dir)
			if !got.Equal(tt.expected) || got.Octave != tt.expected.Octave {
				t.Errorf("Next(%v, %v) = %#v, want %#v", tt.from, tt.dir, got, tt.expected)
			}
		})
	}
}

func TestScaleNextTonicOnly(t *testing.T) {
	s, err := NewScale("S")
	if err != nil {
		t.Fatal(err)
	}
	got := s.Next(Pitch{Degree: Sa}, Ascending)
	if got.Degree != Sa || got.Octave != 1 {
		t.Errorf("Next(S) in tonic-only scale = %#v, want upper S", got)
	}
}

func TestScaleIndexOf(t *testing.T) {
	s, err := NewScale("SGMDN")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.IndexOf(Pitch{Degree: Dha, Octave: 1}); got != 3 {
		t.Errorf("IndexOf(D') = %d, want 3", got)
	}
	if got := s.IndexOf(Pitch{Degree: Re}); got != -1 {
		t.Errorf("IndexOf(R) = %d, want -1", got)
	}
	if got := s.IndexOf(Placeholder{'-'}); got != -1 {
		t.Errorf("IndexOf(placeholder) = %d, want -1", got)
	}
}

func TestScaleValidate(t *testing.T) {
	s, err := NewScale("SRGPD")
	if err != nil {
		t.Fatal(err)
	}

	pattern, err := Tokenize("SG-PD'")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Validate(pattern); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	pattern, err = Tokenize("SG M")
	if err != nil {
		t.Fatal(err)
	}
	err = s.Validate(pattern)
	var notIn *PatternNotInScaleError
	if !errors.As(err, &notIn) {
		t.Fatalf("Validate() error = %v, want PatternNotInScaleError", err)
	}
	if notIn.Position != 3 || notIn.Note.Degree != Ma {
		t.Errorf("PatternNotInScaleError = %+v, want M at position 3", notIn)
	}
}

func TestZeroScaleIsInvalid(t *testing.T) {
	var s *Scale
	if s.Valid() {
		t.Error("nil scale should be invalid")
	}
	if (&Scale{}).Valid() {
		t.Error("zero scale should be invalid")
	}
	if (&Scale{}).Contains(Pitch{}) {
		t.Error("zero scale should contain nothing")
	}
}

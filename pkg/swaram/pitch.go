// Package swaram models the notes (swaras) of Indian classical notation:
// pitches with octave registers, scales and textual patterns.
package swaram

import (
	"fmt"
	"strings"
	"unicode"
)

// Semitones per octave
const Semitones = 12

// Degree is a scale-letter index, S=0 through N=6
type Degree int

const (
	Sa Degree = iota
	Re
	Ga
	Ma
	Pa
	Dha
	Ni
)

// Letters lists the scale-letters in canonical degree order
const Letters = "SRGMPDN"

// NumDegrees is the number of scale-letters
const NumDegrees = len(Letters)

// chromatic offset of each natural degree from S
var baseOffsets = [NumDegrees]int{0, 2, 4, 5, 7, 9, 11}

// position within the octave -> (degree, accidental)
var chromaticMap = [Semitones]struct {
	degree     Degree
	accidental int
}{
	{Sa, 0},
	{Re, -1},
	{Re, 0},
	{Ga, -1},
	{Ga, 0},
	{Ma, 0},
	{Ma, 1},
	{Pa, 0},
	{Dha, -1},
	{Dha, 0},
	{Ni, -1},
	{Ni, 0},
}

// Letter returns the uppercase scale-letter for d
func (d Degree) Letter() rune {
	if d < 0 || int(d) >= NumDegrees {
		return '?'
	}
	return rune(Letters[d])
}

func (d Degree) String() string {
	return string(d.Letter())
}

// DegreeOf returns the degree for a scale-letter in either case
func DegreeOf(letter rune) (Degree, bool) {
	i := strings.IndexRune(Letters, unicode.ToUpper(letter))
	if i < 0 {
		return 0, false
	}
	return Degree(i), true
}

// Pitch is a single note: a degree in an octave register with an optional
// semitone accidental (-1 flat, 0 natural, +1 sharp).
type Pitch struct {
	Degree     Degree
	Octave     int
	Accidental int
}

// NewPitch creates a pitch from a scale-letter
func NewPitch(letter rune, octave, accidental int) (Pitch, error) {
	d, ok := DegreeOf(letter)
	if !ok {
		return Pitch{}, &InvalidNoteError{Symbol: letter, Position: -1}
	}
	return Pitch{Degree: d, Octave: octave, Accidental: accidental}, nil
}

// FromIndex decomposes an absolute chromatic index into a pitch
func FromIndex(index int) Pitch {
	octave := floorDiv(index, Semitones)
	entry := chromaticMap[index-octave*Semitones]
	return Pitch{Degree: entry.degree, Octave: octave, Accidental: entry.accidental}
}

// Index returns the absolute chromatic position, S of the middle octave is 0
func (p Pitch) Index() int {
	return baseOffsets[p.Degree] + p.Accidental + Semitones*p.Octave
}

// Transpose moves the pitch by steps semitones
func (p Pitch) Transpose(steps int) Pitch {
	return FromIndex(p.Index() + steps)
}

// Normalize returns the same degree and accidental in octave 0
func (p Pitch) Normalize() Pitch {
	p.Octave = 0
	return p
}

// Equal reports whether both pitches sound the same
func (p Pitch) Equal(other Pitch) bool {
	return p.Index() == other.Index()
}

// Less orders pitches by absolute index
func (p Pitch) Less(other Pitch) bool {
	return p.Index() < other.Index()
}

// Compare returns -1, 0 or +1 comparing a and b by absolute index
func Compare(a, b Pitch) int {
	switch ai, bi := a.Index(), b.Index(); {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
}

// Glyph renders the pitch in register notation: lowercase below middle,
// uppercase in the middle octave, an apostrophe per octave above it.
func (p Pitch) Glyph() string {
	var b strings.Builder
	letter := p.Degree.Letter()
	if p.Octave < 0 {
		letter = unicode.ToLower(letter)
	}
	b.WriteRune(letter)
	if p.Accidental != 0 {
		b.WriteByte('_')
	}
	switch {
	case p.Octave > 0:
		b.WriteString(strings.Repeat(string(RegisterMarker), p.Octave))
	case p.Octave < -1:
		b.WriteString(strings.Repeat(",", -p.Octave-1))
	}
	return b.String()
}

func (p Pitch) String() string {
	return p.Glyph()
}

// GoString is used by %#v in test failures
func (p Pitch) GoString() string {
	return fmt.Sprintf("swaram.Pitch{%s oct=%d acc=%d}", p.Degree, p.Octave, p.Accidental)
}

func (Pitch) isToken() {}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

package swaram

import (
	"strings"
	"unicode"
)

// Token is one element of a pattern: either a Pitch or a Placeholder.
type Token interface {
	Glyph() string
	isToken()
}

// Placeholder is a non-note symbol such as whitespace or punctuation.
// It is never a scale member and is unchanged by transposition.
type Placeholder struct {
	Symbol rune
}

// Glyph returns the stored symbol
func (p Placeholder) Glyph() string {
	return string(p.Symbol)
}

func (p Placeholder) String() string {
	return p.Glyph()
}

func (Placeholder) isToken() {}

// NewToken builds a token from one symbol. Letters must be scale-letters,
// anything else becomes a Placeholder.
func NewToken(symbol rune, octave int) (Token, error) {
	if !unicode.IsLetter(symbol) {
		return Placeholder{Symbol: symbol}, nil
	}
	p, err := NewPitch(symbol, octave, 0)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// TokensEqual compares two tokens. Pitches are equal when they sound the
// same, placeholders when they hold the same symbol.
func TokensEqual(a, b Token) bool {
	switch x := a.(type) {
	case Pitch:
		y, ok := b.(Pitch)
		return ok && x.Equal(y)
	case Placeholder:
		y, ok := b.(Placeholder)
		return ok && x.Symbol == y.Symbol
	}
	return false
}

// Transpose moves a pitch token by steps semitones and returns placeholders as is
func Transpose(t Token, steps int) Token {
	if p, ok := t.(Pitch); ok {
		return p.Transpose(steps)
	}
	return t
}

// Normalize moves a pitch token to octave 0 and returns placeholders as is
func Normalize(t Token) Token {
	if p, ok := t.(Pitch); ok {
		return p.Normalize()
	}
	return t
}

// Pattern is an ordered sequence of tokens
type Pattern []Token

// Pitches returns only the pitch tokens, in order
func (p Pattern) Pitches() []Pitch {
	out := make([]Pitch, 0, len(p))
	for _, t := range p {
		if pitch, ok := t.(Pitch); ok {
			out = append(out, pitch)
		}
	}
	return out
}

// LastPitch returns the final pitch token
func (p Pattern) LastPitch() (Pitch, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if pitch, ok := p[i].(Pitch); ok {
			return pitch, true
		}
	}
	return Pitch{}, false
}

// Normalize returns a copy with every pitch moved to octave 0
func (p Pattern) Normalize() Pattern {
	out := make(Pattern, len(p))
	for i, t := range p {
		out[i] = Normalize(t)
	}
	return out
}

// Equal compares token by token
func (p Pattern) Equal(other Pattern) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !TokensEqual(p[i], other[i]) {
			return false
		}
	}
	return true
}

// Sum adds up the absolute indices of all pitch tokens
func (p Pattern) Sum() int {
	total := 0
	for _, pitch := range p.Pitches() {
		total += pitch.Index()
	}
	return total
}

// String renders the pattern compactly; Tokenize reverses it exactly
func (p Pattern) String() string {
	var b strings.Builder
	for _, t := range p {
		b.WriteString(t.Glyph())
	}
	return b.String()
}

package swaram

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RegisterMarker after an uppercase letter lifts the note one octave
const RegisterMarker = '\''

// Tokenize converts a phrase into tokens. A lowercase scale-letter is one
// octave below middle, an uppercase one is middle octave, and an uppercase
// letter followed by RegisterMarker is one octave above (the marker is
// consumed). Any other letter is an InvalidNoteError; every other rune
// becomes a Placeholder.
func Tokenize(text string) (Pattern, error) {
	return tokenize(text, false)
}

// ParseFormatted reverses Format by skipping the alignment space that
// follows each single-glyph pitch.
func ParseFormatted(text string) (Pattern, error) {
	return tokenize(text, true)
}

func tokenize(text string, skipAlignment bool) (Pattern, error) {
	runes := []rune(text)
	pattern := make(Pattern, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if !unicode.IsLetter(r) {
			pattern = append(pattern, Placeholder{Symbol: r})
			continue
		}

		pos := i
		octave := 0
		single := true
		if unicode.IsLower(r) {
			octave = -1
		} else if i+1 < len(runes) && runes[i+1] == RegisterMarker {
			octave = 1
			single = false
			i++
		}
		p, err := NewPitch(r, octave, 0)
		if err != nil {
			return nil, &InvalidNoteError{Symbol: r, Position: pos}
		}
		pattern = append(pattern, p)

		if skipAlignment && single && i+1 < len(runes) && runes[i+1] == ' ' {
			i++
		}
	}
	return pattern, nil
}

// Format renders a pattern for display. Single-glyph pitches are followed
// by one space so that columns line up with register-marked notes;
// placeholders are written verbatim.
func Format(pattern Pattern) string {
	var b strings.Builder
	for _, t := range pattern {
		g := t.Glyph()
		b.WriteString(g)
		if _, ok := t.(Pitch); ok && utf8.RuneCountInString(g) == 1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

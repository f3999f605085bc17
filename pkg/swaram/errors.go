package swaram

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned when a seed holds no pitch tokens
var ErrEmptyPattern = errors.New("pattern contains no notes")

// InvalidScaleError reports a scale string that cannot be used for generation
type InvalidScaleError struct {
	Input  string
	Reason string
}

func (e *InvalidScaleError) Error() string {
	return fmt.Sprintf("invalid scale %q: %s", e.Input, e.Reason)
}

// InvalidNoteError reports a letter that is not a scale-letter.
// Position is the rune offset in the parsed text, or -1 when unknown.
type InvalidNoteError struct {
	Symbol   rune
	Position int
}

func (e *InvalidNoteError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid note %q, must be one of %s", e.Symbol, Letters)
	}
	return fmt.Sprintf("invalid note %q at position %d, must be one of %s", e.Symbol, e.Position, Letters)
}

// PatternNotInScaleError reports the first seed note missing from the scale
type PatternNotInScaleError struct {
	Note     Pitch
	Position int
	Scale    string
}

func (e *PatternNotInScaleError) Error() string {
	return fmt.Sprintf("note %s at position %d is not in scale %s", e.Note.Glyph(), e.Position, e.Scale)
}

// Package alankar generates alankars: the series of phrases obtained by
// shifting every note of a seed one scale-step at a time until the seed's
// shape comes back around.
package alankar

import (
	"github.com/james-see/alankar/pkg/swaram"
)

// Sequence is the ordered list of generated patterns, seed first
type Sequence []swaram.Pattern

// Strings formats each pattern for display
func (s Sequence) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = swaram.Format(p)
	}
	return out
}

// Last returns the terminal pattern
func (s Sequence) Last() swaram.Pattern {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Step advances every pitch of pattern one scale-step in dir
func Step(scale *swaram.Scale, pattern swaram.Pattern, dir swaram.Direction) swaram.Pattern {
	next := make(swaram.Pattern, len(pattern))
	for i, t := range pattern {
		next[i] = scale.NextToken(t, dir)
	}
	return next
}

// Generate runs the stepping loop from seed. With shortLoop the loop stops
// once the last note of a pattern is the tonic in any octave; otherwise it
// stops when the pattern's octave-normalized shape equals the seed's. The
// terminal pattern is part of the returned sequence.
//
// The scale must be valid and every note of seed must belong to it, or both
// stop conditions could be unreachable.
func Generate(scale *swaram.Scale, seed swaram.Pattern, dir swaram.Direction, shortLoop bool) (Sequence, error) {
	if !scale.Valid() {
		return nil, &swaram.InvalidScaleError{Input: scale.String(), Reason: "scale is empty or has no tonic"}
	}
	if len(seed.Pitches()) == 0 {
		return nil, swaram.ErrEmptyPattern
	}
	if err := scale.Validate(seed); err != nil {
		return nil, err
	}

	target := seed.Normalize()
	seq := Sequence{seed}
	current := seed
	for {
		current = Step(scale, current, dir)
		seq = append(seq, current)
		if shortLoop {
			if last, _ := current.LastPitch(); last.Degree == swaram.Sa {
				break
			}
			continue
		}
		if current.Normalize().Equal(target) {
			break
		}
	}
	return seq, nil
}

package alankar

import (
	"github.com/james-see/alankar/pkg/swaram"
)

// MirrorSeed reflects every note of pattern around the tonic so that an
// ascending phrase becomes its descending counterpart. A note at scale
// position i moves to (base-(i-base)) mod n with its octave negated. The
// tonic goes one octave above the source tonic rather than onto itself, so
// mirroring twice does not in general give back the original pattern.
// Notes outside the scale and placeholders are copied unchanged.
func MirrorSeed(scale *swaram.Scale, pattern swaram.Pattern) swaram.Pattern {
	n := scale.Len()
	base := scale.IndexOf(swaram.Pitch{Degree: swaram.Sa})
	out := make(swaram.Pattern, len(pattern))
	for k, t := range pattern {
		p, ok := t.(swaram.Pitch)
		i := scale.IndexOf(t)
		if !ok || i < 0 || base < 0 {
			out[k] = t
			continue
		}
		if p.Degree == swaram.Sa {
			out[k] = swaram.Pitch{Degree: swaram.Sa, Octave: p.Octave + 1}
			continue
		}
		j := ((base-(i-base))%n + n) % n
		m := scale.At(j)
		m.Octave = -p.Octave
		out[k] = m
	}
	return out
}

package swaram

import (
	"sort"
	"strings"
	"unicode"
)

// Direction of travel through a scale
type Direction int

const (
	Descending Direction = -1
	Ascending  Direction = 1
)

func (d Direction) String() string {
	if d < 0 {
		return "descending"
	}
	return "ascending"
}

// Scale is an ordered, duplicate-free set of octave-0 pitches in canonical
// degree order. Membership is looked up by absolute index.
type Scale struct {
	members  []Pitch
	position map[int]int
}

// NewScale parses a string of scale-letters. Case is ignored, whitespace is
// skipped, repeats collapse onto the first occurrence and the members are
// re-sorted into S R G M P D N order.
func NewScale(text string) (*Scale, error) {
	seen := make(map[Degree]bool, NumDegrees)
	var members []Pitch
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		d, ok := DegreeOf(r)
		if !ok {
			return nil, &InvalidScaleError{Input: text, Reason: "unknown scale-letter " + string(r) + ", must be one of " + Letters}
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		members = append(members, Pitch{Degree: d})
	}
	if len(members) == 0 {
		return nil, &InvalidScaleError{Input: text, Reason: "no scale-letters"}
	}
	if !seen[Sa] {
		return nil, &InvalidScaleError{Input: text, Reason: "missing tonic S"}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Less(members[j]) })

	s := &Scale{members: members, position: make(map[int]int, len(members))}
	for i, m := range members {
		s.position[m.Index()] = i
	}
	return s, nil
}

// Len returns the number of members
func (s *Scale) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Members returns a copy of the members in canonical order
func (s *Scale) Members() []Pitch {
	return append([]Pitch(nil), s.members...)
}

// At returns the member at canonical position i
func (s *Scale) At(i int) Pitch {
	return s.members[i]
}

// Valid reports whether generation can run on the scale
func (s *Scale) Valid() bool {
	if s.Len() == 0 {
		return false
	}
	_, ok := s.position[0]
	return ok
}

// Contains reports whether the octave-normalized token is a member.
// Placeholders are never members.
func (s *Scale) Contains(t Token) bool {
	return s.IndexOf(t) >= 0
}

// IndexOf returns the canonical position of the octave-normalized token, or -1
func (s *Scale) IndexOf(t Token) int {
	p, ok := t.(Pitch)
	if !ok || s.Len() == 0 {
		return -1
	}
	i, ok := s.position[p.Normalize().Index()]
	if !ok {
		return -1
	}
	return i
}

// Next walks one semitone at a time from p in direction dir until it lands
// on a member, keeping the register reached. A valid scale always contains
// the tonic, so at most one octave is walked.
func (s *Scale) Next(p Pitch, dir Direction) Pitch {
	step := 1
	if dir < 0 {
		step = -1
	}
	next := p
	for i := 0; i < Semitones; i++ {
		next = next.Transpose(step)
		if s.Contains(next) {
			return next
		}
	}
	return next
}

// NextToken applies Next to pitches and passes placeholders through
func (s *Scale) NextToken(t Token, dir Direction) Token {
	if p, ok := t.(Pitch); ok {
		return s.Next(p, dir)
	}
	return t
}

// Validate checks that every pitch token of pattern is a member
func (s *Scale) Validate(pattern Pattern) error {
	for i, t := range pattern {
		p, ok := t.(Pitch)
		if !ok {
			continue
		}
		if !s.Contains(p) {
			return &PatternNotInScaleError{Note: p, Position: i, Scale: s.String()}
		}
	}
	return nil
}

// String returns the members as uppercase letters, e.g. "SRGPD"
func (s *Scale) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, m := range s.members {
		b.WriteRune(m.Degree.Letter())
	}
	return b.String()
}

package alankar

import (
	"fmt"
	"strings"

	"github.com/james-see/alankar/pkg/swaram"
)

// DefaultScale is the seven-note natural scale
const DefaultScale = "SRGMPDN"

// Mode selects which sections are generated
type Mode string

const (
	ModeAscending  Mode = "ascending"
	ModeDescending Mode = "descending"
	ModeBoth       Mode = "both"
)

// ParseMode accepts the long and short spellings of a mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "all":
		return ModeBoth, nil
	case "up", "asc", "ascending", "aaroh":
		return ModeAscending, nil
	case "down", "desc", "descending", "avaroh":
		return ModeDescending, nil
	default:
		return "", fmt.Errorf("unknown direction %q (use up, down or both)", s)
	}
}

// Options describes one generation request
type Options struct {
	Scale     string // scale-letters, e.g. DefaultScale
	Preset    string // raag preset name, overrides Scale when set
	Pattern   string // seed phrase
	Mode      Mode
	ShortLoop bool
}

// Result holds the generated sections. A section that was not requested is nil.
type Result struct {
	Scale      *swaram.Scale
	Seed       swaram.Pattern
	Ascending  Sequence
	Descending Sequence
}

// Sections returns the non-empty sections in display order
func (r *Result) Sections() []Sequence {
	var out []Sequence
	if r.Ascending != nil {
		out = append(out, r.Ascending)
	}
	if r.Descending != nil {
		out = append(out, r.Descending)
	}
	return out
}

// Build validates the request and generates every requested section.
// Either all sections are produced or an error is returned.
func Build(opts Options) (*Result, error) {
	scaleText := opts.Scale
	if opts.Preset != "" {
		preset, err := LookupPreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		scaleText = preset.Scale
	}

	scale, err := swaram.NewScale(scaleText)
	if err != nil {
		return nil, err
	}
	seed, err := swaram.Tokenize(opts.Pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pattern: %w", err)
	}
	if err := scale.Validate(seed); err != nil {
		return nil, err
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeBoth
	}

	res := &Result{Scale: scale, Seed: seed}
	if mode == ModeAscending || mode == ModeBoth {
		res.Ascending, err = Generate(scale, seed, swaram.Ascending, opts.ShortLoop)
		if err != nil {
			return nil, err
		}
	}
	if mode == ModeDescending || mode == ModeBoth {
		res.Descending, err = Generate(scale, MirrorSeed(scale, seed), swaram.Descending, opts.ShortLoop)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

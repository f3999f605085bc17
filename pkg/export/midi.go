// Package export renders generated alankars as Standard MIDI Files
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/james-see/alankar/pkg/alankar"
	"github.com/james-see/alankar/pkg/swaram"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// DefaultTonic is the MIDI note of middle-octave S (C4)
	DefaultTonic uint8 = 60
	// DefaultTempo in beats per minute
	DefaultTempo = 120.0

	velocity   uint8 = 100
	sectionGap       = 4 // rest steps between the ascending and descending sections
)

// MIDIExporter writes every pitch as an eighth note, placeholders as
// eighth-note rests and one rest between consecutive patterns.
type MIDIExporter struct {
	ticksPerQuarter uint16
	tonic           uint8
	tempo           float64
	channel         uint8
}

// NewMIDIExporter creates an exporter with S mapped to tonic
func NewMIDIExporter(tonic uint8, tempo float64) *MIDIExporter {
	if tempo <= 0 {
		tempo = DefaultTempo
	}
	return &MIDIExporter{
		ticksPerQuarter: 480,
		tonic:           tonic,
		tempo:           tempo,
	}
}

// Key returns the MIDI note number for p
func (m *MIDIExporter) Key(p swaram.Pitch) (uint8, error) {
	key := int(m.tonic) + p.Index()
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("note %s is outside the MIDI range with tonic %d", p.Glyph(), m.tonic)
	}
	return uint8(key), nil
}

// GenerateMIDI creates MIDI data from a generated result
func (m *MIDIExporter) GenerateMIDI(r *alankar.Result) ([]byte, error) {
	if r == nil {
		return nil, errors.New("nil result")
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(m.ticksPerQuarter)

	var track smf.Track

	// Tempo meta event (FF 51 03 tttttt)
	microsecondsPerBeat := uint32(60000000.0 / m.tempo)
	track.Add(0, smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsecondsPerBeat >> 16),
		byte(microsecondsPerBeat >> 8),
		byte(microsecondsPerBeat),
	}))
	track.Add(0, trackName("alankar "+r.Scale.String()))

	step := uint32(m.ticksPerQuarter) / 2
	noteLength := step * 7 / 8

	var pending uint32
	for si, seq := range r.Sections() {
		if si > 0 {
			pending += sectionGap * step
		}
		for pi, pattern := range seq {
			if pi > 0 {
				pending += step
			}
			for _, t := range pattern {
				p, ok := t.(swaram.Pitch)
				if !ok {
					pending += step
					continue
				}
				key, err := m.Key(p)
				if err != nil {
					return nil, err
				}
				track.Add(pending, midi.NoteOn(m.channel, key, velocity))
				track.Add(noteLength, midi.NoteOff(m.channel, key))
				pending = step - noteLength
			}
		}
	}
	track.Close(pending)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteMIDIFile writes the rendered result to filename
func (m *MIDIExporter) WriteMIDIFile(r *alankar.Result, filename string) error {
	data, err := m.GenerateMIDI(r)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// trackName builds a sequence/track name meta event (FF 03 len text)
func trackName(name string) smf.Message {
	if len(name) > 127 {
		name = name[:127]
	}
	msg := []byte{0xFF, 0x03, byte(len(name))}
	return smf.Message(append(msg, name...))
}

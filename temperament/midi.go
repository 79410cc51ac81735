package temperament

import (
	"fmt"

	"github.com/aristoxenus/aristoxenus"
	"gitlab.com/gomidi/midi/v2"
)

// keyOffset is the MIDI key of C0, the first name of the scientific range.
const keyOffset = 12

// Key returns the MIDI key number of a scientific name; C4 is key 60.
func (t *Temperament) Key(name string) (uint8, error) {
	i, err := t.table.Index(name)
	if err != nil {
		return 0, err
	}
	k := i + keyOffset
	if k > 127 {
		return 0, fmt.Errorf("Temperament.Key: %q is above MIDI key 127: %w", name, aristoxenus.ErrOutOfRange)
	}
	return uint8(k), nil
}

// NoteOn returns a MIDI note on message for the named pitch.
func (t *Temperament) NoteOn(channel uint8, name string, velocity uint8) (midi.Message, error) {
	k, err := t.Key(name)
	if err != nil {
		return nil, err
	}
	return midi.NoteOn(channel, k, velocity), nil
}

// NoteOff returns a MIDI note off message for the named pitch.
func (t *Temperament) NoteOff(channel uint8, name string) (midi.Message, error) {
	k, err := t.Key(name)
	if err != nil {
		return nil, err
	}
	return midi.NoteOff(channel, k), nil
}

// KeyName returns the scientific name of a MIDI key in the given convention.
func (t *Temperament) KeyName(key uint8, c aristoxenus.Convention) (string, error) {
	if !c.IsValid() {
		return "", fmt.Errorf("Temperament.KeyName: %v: %w", c, aristoxenus.ErrInvalidConvention)
	}
	r := t.table.ScientificRange(c)
	i := int(key) - keyOffset
	if i < 0 || i >= len(r) {
		return "", fmt.Errorf("Temperament.KeyName: key %d: %w", key, aristoxenus.ErrOutOfRange)
	}
	return r[i], nil
}

// MessageName returns the scientific name of the pitch of a note on or note
// off message.
func (t *Temperament) MessageName(msg midi.Message, c aristoxenus.Convention) (string, error) {
	var channel, key, velocity uint8
	if !msg.GetNoteOn(&channel, &key, &velocity) && !msg.GetNoteOff(&channel, &key, &velocity) {
		return "", fmt.Errorf("Temperament.MessageName: %v is not a note message: %w", msg, aristoxenus.ErrUnknownNoteName)
	}
	return t.KeyName(key, c)
}

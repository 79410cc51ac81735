// Package midiin names the notes arriving on MIDI input ports.
package midiin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aristoxenus/aristoxenus"
	"github.com/aristoxenus/aristoxenus/temperament"
	"gitlab.com/gomidi/midi/v2"
)

type (
	// Context enumerates the input ports of a MIDI driver.
	Context interface {
		InputDevices(yield func(Device) bool)
		Close()
	}

	// Device is an input port. Listen calls handle with every message the
	// port receives until stop is called.
	Device interface {
		Listen(handle func(msg midi.Message)) (stop func(), err error)
		String() string
	}

	// Event is a note message with the pitch named.
	Event struct {
		On        bool    `yaml:"on"`
		Channel   uint8   `yaml:"channel"`
		Key       uint8   `yaml:"key"`
		Velocity  uint8   `yaml:"velocity"`
		Name      string  `yaml:"name"`
		Frequency float64 `yaml:"frequency"`
	}

	NullContext struct{}
)

var ErrNoDriver = errors.New("no MIDI driver available")

func (NullContext) InputDevices(yield func(Device) bool) {}

func (NullContext) Close() {}

// Describe names the pitch of a note on or note off message. A note on with
// zero velocity is reported as a note off.
func Describe(t *temperament.Temperament, msg midi.Message, c aristoxenus.Convention) (Event, error) {
	var e Event
	if msg.GetNoteStart(&e.Channel, &e.Key, &e.Velocity) {
		e.On = true
	} else if !msg.GetNoteEnd(&e.Channel, &e.Key) {
		return Event{}, fmt.Errorf("Describe: %v is not a note message: %w", msg, aristoxenus.ErrUnknownNoteName)
	}
	name, err := t.KeyName(e.Key, c)
	if err != nil {
		return Event{}, err
	}
	e.Name = name
	if e.Frequency, err = t.Frequency(name); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Open returns the first input device whose name starts with prefix. An
// empty prefix takes the first device.
func Open(c Context, prefix string) (Device, error) {
	var found Device
	for d := range c.InputDevices {
		if strings.HasPrefix(d.String(), prefix) {
			found = d
			break
		}
	}
	if found == nil {
		if prefix == "" {
			return nil, fmt.Errorf("could not find any MIDI input: %w", ErrNoDriver)
		}
		return nil, fmt.Errorf("could not find a MIDI input starting with %q", prefix)
	}
	return found, nil
}

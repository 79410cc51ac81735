//go:build cgo

package midiin

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	RTMIDIContext struct {
		driver       *rtmididrv.Driver
		inputDevices []RTMIDIDevice
	}

	RTMIDIDevice struct {
		in drivers.In
	}
)

// NewContext opens the rtmidi driver. If that fails the context has no
// devices.
func NewContext() Context {
	m := &RTMIDIContext{}
	m.driver, _ = rtmididrv.New()
	return m
}

func (m *RTMIDIContext) InputDevices(yield func(Device) bool) {
	if m.driver == nil {
		return
	}
	if m.inputDevices == nil {
		ins, err := m.driver.Ins()
		if err != nil {
			return
		}
		for _, in := range ins {
			m.inputDevices = append(m.inputDevices, RTMIDIDevice{in: in})
		}
	}
	for _, device := range m.inputDevices {
		if !yield(device) {
			break
		}
	}
}

func (m *RTMIDIContext) Close() {
	if m.driver == nil {
		return
	}
	for _, d := range m.inputDevices {
		if d.in.IsOpen() {
			d.in.Close()
		}
	}
	m.driver.Close()
}

func (d RTMIDIDevice) Listen(handle func(msg midi.Message)) (func(), error) {
	if !d.in.IsOpen() {
		if err := d.in.Open(); err != nil {
			return nil, fmt.Errorf("opening MIDI input failed: %w", err)
		}
	}
	stop, err := midi.ListenTo(d.in, func(msg midi.Message, timestampms int32) { handle(msg) })
	if err != nil {
		d.in.Close()
		return nil, fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	return func() {
		stop()
		d.in.Close()
	}, nil
}

func (d RTMIDIDevice) String() string {
	return d.in.String()
}

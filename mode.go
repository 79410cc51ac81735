package aristoxenus

import (
	"fmt"
	"strings"
)

// Mode is one of the seven rotations of the diatonic scale.
type Mode int

const (
	Ionian Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

// MajorScale is the ionian interval structure, 0b101010110101.
var MajorScale = StructureOf(0, 2, 4, 5, 7, 9, 11)

var modeNames = [...]string{"ionian", "dorian", "phrygian", "lydian", "mixolydian", "aeolian", "locrian"}

// Modes lists all the modes in scale degree order.
var Modes = []Mode{Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian}

func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == key {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("ParseMode: unknown mode %q: %w", s, ErrInvalidStructure)
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func (m Mode) Title() string { return title(m.String()) }

// Structure returns the interval structure of the mode. The mode on degree n
// of the major scale is reached by n previous inversions of the ionian.
func (m Mode) Structure() Structure {
	s := MajorScale
	for i := Mode(0); i < m; i++ {
		s = s.PreviousInversion(Tones)
	}
	return s
}

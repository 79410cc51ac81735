package aristoxenus

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	// Interval is a single distance from the root, stored as a structure with
	// the root bit and the bit of the upper pitch set (2^k+1). The unison is
	// the lone root bit.
	Interval struct {
		Structure
	}

	// IntervalName is one of the named intervals up to the octave.
	IntervalName int

	// Quality is the qualifier of an interval, e.g. the "minor" of a minor
	// third.
	Quality int
)

const (
	Unison IntervalName = iota
	Hemitone
	Tone
	Hemiolion
	Ditone
	Diatessaron
	Tritone
	Diapente
	CompoundHemitone
	CompoundTone
	CompoundHemiolion
	CompoundDitone
	Diapason
)

const (
	Natural Quality = iota
	Minor
	Diminished
	Major
	Augmented
	Perfect
)

var intervalNames = [...]string{
	"unison",
	"hemitone",
	"tone",
	"hemiolion",
	"ditone",
	"diatessaron",
	"tritone",
	"diapente",
	"compound_hemitone",
	"compound_tone",
	"compound_hemiolion",
	"compound_ditone",
	"diapason",
}

var qualityNames = [...]string{"natural", "minor", "diminished", "major", "augmented", "perfect"}

var ordinals = [...]string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth"}

var intervalQualities = [...]Quality{
	Perfect, Minor, Major, Minor, Major, Perfect, Augmented,
	Perfect, Minor, Major, Minor, Major, Perfect,
}

var intervalDegrees = [...]int{1, 2, 2, 3, 3, 4, 4, 5, 6, 6, 7, 7, 8}

// title returns s in title case. Casers keep state, so each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// NewInterval returns the interval spanning the given number of semitones.
// Zero gives the unison.
func NewInterval(semitones int) Interval {
	if semitones <= 0 {
		return Interval{StructureOf(0)}
	}
	return Interval{StructureOf(0, semitones)}
}

// Semitones returns the distance spanned by the interval.
func (i Interval) Semitones() int {
	if i.BitLen() == 0 {
		return 0
	}
	return i.BitLen() - 1
}

// Name returns the named interval for distances up to an octave.
func (i Interval) Name() (IntervalName, bool) {
	s := i.Semitones()
	if s > int(Diapason) {
		return 0, false
	}
	return IntervalName(s), true
}

func ParseIntervalName(s string) (IntervalName, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	for i, n := range intervalNames {
		if n == key {
			return IntervalName(i), nil
		}
	}
	return 0, fmt.Errorf("ParseIntervalName: unknown interval %q: %w", s, ErrInvalidInterval)
}

// IsValid reports whether n is one of Unison..Diapason.
func (n IntervalName) IsValid() bool { return n >= 0 && int(n) < len(intervalNames) }

func (n IntervalName) String() string {
	if !n.IsValid() {
		return fmt.Sprintf("IntervalName(%d)", int(n))
	}
	return intervalNames[n]
}

// Title returns the display form, e.g. "Compound Hemitone".
func (n IntervalName) Title() string {
	return title(strings.ReplaceAll(n.String(), "_", " "))
}

// Interval returns the bit value of the named interval.
func (n IntervalName) Interval() Interval { return NewInterval(int(n)) }

// Quality returns the qualifier of the interval, Natural for unknown names.
func (n IntervalName) Quality() Quality {
	if !n.IsValid() {
		return Natural
	}
	return intervalQualities[n]
}

// Degree returns the ordinal number of the interval, 1 for the unison and 8
// for the octave. Unknown names have degree 0.
func (n IntervalName) Degree() int {
	if !n.IsValid() {
		return 0
	}
	return intervalDegrees[n]
}

// Ordinal returns the degree spelled out, e.g. "fifth", or "" for unknown
// names.
func (n IntervalName) Ordinal() string {
	if !n.IsValid() {
		return ""
	}
	return ordinals[n.Degree()-1]
}

// Description returns the conventional name, e.g. "perfect fifth".
func (n IntervalName) Description() string {
	if !n.IsValid() {
		return n.String()
	}
	return n.Quality().String() + " " + n.Ordinal()
}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	return qualityNames[q]
}

func (q Quality) Title() string { return title(q.String()) }

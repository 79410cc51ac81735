package aristoxenus_test

import (
	"errors"
	"testing"

	"github.com/aristoxenus/aristoxenus"
)

func TestIntervalNames(t *testing.T) {
	tests := []struct {
		name        aristoxenus.IntervalName
		value       uint64
		description string
		title       string
	}{
		{aristoxenus.Unison, 1, "perfect first", "Unison"},
		{aristoxenus.Hemitone, 3, "minor second", "Hemitone"},
		{aristoxenus.Tone, 5, "major second", "Tone"},
		{aristoxenus.Hemiolion, 9, "minor third", "Hemiolion"},
		{aristoxenus.Ditone, 17, "major third", "Ditone"},
		{aristoxenus.Diatessaron, 33, "perfect fourth", "Diatessaron"},
		{aristoxenus.Tritone, 65, "augmented fourth", "Tritone"},
		{aristoxenus.Diapente, 129, "perfect fifth", "Diapente"},
		{aristoxenus.CompoundHemitone, 257, "minor sixth", "Compound Hemitone"},
		{aristoxenus.CompoundTone, 513, "major sixth", "Compound Tone"},
		{aristoxenus.CompoundHemiolion, 1025, "minor seventh", "Compound Hemiolion"},
		{aristoxenus.CompoundDitone, 2049, "major seventh", "Compound Ditone"},
		{aristoxenus.Diapason, 4097, "perfect eighth", "Diapason"},
	}
	for _, test := range tests {
		iv := test.name.Interval()
		if iv.Uint64() != test.value {
			t.Errorf("%v: got value %v, expected %v", test.name, iv.Uint64(), test.value)
		}
		if got := test.name.Description(); got != test.description {
			t.Errorf("%v: got description %q, expected %q", test.name, got, test.description)
		}
		if got := test.name.Title(); got != test.title {
			t.Errorf("%v: got title %q, expected %q", test.name, got, test.title)
		}
		if n, ok := iv.Name(); !ok || n != test.name {
			t.Errorf("%v: Name() got %v, %v", test.name, n, ok)
		}
		parsed, err := aristoxenus.ParseIntervalName(test.title)
		if err != nil || parsed != test.name {
			t.Errorf("ParseIntervalName(%q): got %v, %v", test.title, parsed, err)
		}
		if test.name != aristoxenus.Unison && !iv.IsValidInterval() {
			t.Errorf("%v should be a valid interval", test.name)
		}
	}
	if _, ok := aristoxenus.NewInterval(13).Name(); ok {
		t.Error("an interval wider than an octave should not have a name")
	}
	if _, err := aristoxenus.ParseIntervalName("ditonus"); !errors.Is(err, aristoxenus.ErrInvalidInterval) {
		t.Errorf("ParseIntervalName of an unknown name: got %v", err)
	}
}

func TestUnknownIntervalName(t *testing.T) {
	for _, n := range []aristoxenus.IntervalName{-1, 13, 20} {
		if n.IsValid() {
			t.Errorf("%d should not be a valid interval name", int(n))
		}
		if n.Degree() != 0 || n.Ordinal() != "" || n.Quality() != aristoxenus.Natural {
			t.Errorf("%d: got degree %v, ordinal %q, quality %v", int(n), n.Degree(), n.Ordinal(), n.Quality())
		}
		if got := n.Description(); got != n.String() {
			t.Errorf("%d: got description %q, expected %q", int(n), got, n.String())
		}
	}
}

func TestModes(t *testing.T) {
	expected := map[aristoxenus.Mode][]int{
		aristoxenus.Ionian:     {0, 2, 4, 5, 7, 9, 11},
		aristoxenus.Dorian:     {0, 2, 3, 5, 7, 9, 10},
		aristoxenus.Phrygian:   {0, 1, 3, 5, 7, 8, 10},
		aristoxenus.Lydian:     {0, 2, 4, 6, 7, 9, 11},
		aristoxenus.Mixolydian: {0, 2, 4, 5, 7, 9, 10},
		aristoxenus.Aeolian:    {0, 2, 3, 5, 7, 8, 10},
		aristoxenus.Locrian:    {0, 1, 3, 5, 6, 8, 10},
	}
	for _, m := range aristoxenus.Modes {
		if got := m.Structure(); !got.Equal(aristoxenus.StructureOf(expected[m]...)) {
			t.Errorf("%v: got %v, expected %v", m, got.Semitones(), expected[m])
		}
		parsed, err := aristoxenus.ParseMode(m.Title())
		if err != nil || parsed != m {
			t.Errorf("ParseMode(%q): got %v, %v", m.Title(), parsed, err)
		}
	}
	if aristoxenus.MajorScale.Uint64() != 2741 {
		t.Errorf("MajorScale: got %v, expected 2741", aristoxenus.MajorScale)
	}
}

func TestParseConventionAndPosition(t *testing.T) {
	for _, c := range []aristoxenus.Convention{aristoxenus.Sharps, aristoxenus.Flats, aristoxenus.Binomials} {
		if got, err := aristoxenus.ParseConvention(c.String()); err != nil || got != c {
			t.Errorf("ParseConvention(%q): got %v, %v", c.String(), got, err)
		}
	}
	if _, err := aristoxenus.ParseConvention("naturals"); !errors.Is(err, aristoxenus.ErrInvalidConvention) {
		t.Errorf("ParseConvention(naturals): got %v", err)
	}
	if got, err := aristoxenus.ParsePosition(" Below "); err != nil || got != aristoxenus.Below {
		t.Errorf("ParsePosition(Below): got %v, %v", got, err)
	}
	if _, err := aristoxenus.ParsePosition("higher"); !errors.Is(err, aristoxenus.ErrInvalidPosition) {
		t.Errorf("ParsePosition(higher): got %v", err)
	}
}

package nomenclature_test

import (
	"errors"
	"testing"

	"github.com/aristoxenus/aristoxenus"
)

func TestScientificRange(t *testing.T) {
	r := defaultTable(t).ScientificRange(aristoxenus.Binomials)
	if len(r) != 8*aristoxenus.Tones {
		t.Fatalf("len(ScientificRange): got %v, expected %v", len(r), 8*aristoxenus.Tones)
	}
	for i, e := range map[int]string{0: "C0", 1: "C#|Db0", 57: "A4", 60: "C5", 95: "B7"} {
		if r[i] != e {
			t.Errorf("ScientificRange[%v]: got %v, expected %v", i, r[i], e)
		}
	}
	if got := defaultTable(t).ScientificOctave(aristoxenus.Flats, 4)[1]; got != "Db4" {
		t.Errorf("ScientificOctave(flats, 4)[1]: got %v, expected Db4", got)
	}
}

func TestDecodeScientific(t *testing.T) {
	table := defaultTable(t)
	tests := map[string]string{
		"C":      "C",
		"C#|Db":  "C#|Db",
		"C4":     "C4",
		"C#|Db4": "C#|Db4",
		"C#4":    "C#|Db4",
		"B#3":    "C4",
		"Cb4":    "B3",
		"Fbb4":   "D#|Eb4",
		"E##4":   "F#|Gb4",
		"B7":     "B7",
		"Dbb0":   "C0",
	}
	for name, expected := range tests {
		got, err := table.DecodeScientific(name)
		if err != nil {
			t.Errorf("DecodeScientific(%q): %v", name, err)
			continue
		}
		if got != expected {
			t.Errorf("DecodeScientific(%q): got %q, expected %q", name, got, expected)
		}
	}
	errs := []struct {
		name string
		err  error
	}{
		{"C#b4", aristoxenus.ErrMixedAccidentals},
		{"C#", aristoxenus.ErrUnknownNoteName},
		{"H4", aristoxenus.ErrUnknownNoteName},
		{"C-4", aristoxenus.ErrUnknownNoteName},
		{"Cb0", aristoxenus.ErrOutOfRange},
		{"B#7", aristoxenus.ErrOutOfRange},
		{"C8", aristoxenus.ErrOutOfRange},
		{"C#|Db9", aristoxenus.ErrOutOfRange},
	}
	for _, test := range errs {
		if _, err := table.DecodeScientific(test.name); !errors.Is(err, test.err) {
			t.Errorf("DecodeScientific(%q): got %v, expected %v", test.name, err, test.err)
		}
	}
}

func TestIndex(t *testing.T) {
	table := defaultTable(t)
	for name, expected := range map[string]int{"A4": 57, "Bbb4": 57, "C0": 0, "B#3": 48} {
		if got, err := table.Index(name); err != nil || got != expected {
			t.Errorf("Index(%q): got %v, %v, expected %v", name, got, err, expected)
		}
	}
	for _, name := range []string{"C", "C#|Db"} {
		if _, err := table.Index(name); !errors.Is(err, aristoxenus.ErrUnknownNoteName) {
			t.Errorf("Index(%q): got %v, expected ErrUnknownNoteName", name, err)
		}
	}
}

func TestEncodeScientific(t *testing.T) {
	table := defaultTable(t)
	tests := []struct {
		value, letter string
		position      aristoxenus.Position
		expected      string
	}{
		{"C4", "B", aristoxenus.Below, "B#3"},
		{"C4", "D", aristoxenus.Above, "Dbb4"},
		{"C4", "C", aristoxenus.Above, "C4"},
		{"C4", "C", aristoxenus.Below, "C4"},
		{"D4", "C", aristoxenus.Below, "C##4"},
		{"B3", "C", aristoxenus.Above, "Cb4"},
		{"C#4", "D", aristoxenus.Above, "Db4"},
		{"Db4", "C", aristoxenus.Below, "C#4"},
	}
	for _, test := range tests {
		got, err := table.EncodeScientific(test.value, test.letter, test.position)
		if err != nil {
			t.Errorf("EncodeScientific(%q, %q, %v): %v", test.value, test.letter, test.position, err)
			continue
		}
		if got != test.expected {
			t.Errorf("EncodeScientific(%q, %q, %v): got %q, expected %q", test.value, test.letter, test.position, got, test.expected)
		}
		if back, err := table.DecodeScientific(got); err != nil {
			t.Errorf("DecodeScientific(%q): %v", got, err)
		} else if v, _ := table.DecodeScientific(test.value); back != v {
			t.Errorf("DecodeScientific(%q): got %q, expected %q", got, back, v)
		}
	}
	errs := []struct {
		value, letter string
		position      aristoxenus.Position
		err           error
	}{
		{"C4", "H", aristoxenus.Above, aristoxenus.ErrInvalidTargetLetter},
		{"C4", "D", aristoxenus.Position(5), aristoxenus.ErrInvalidPosition},
		{"C0", "B", aristoxenus.Below, aristoxenus.ErrUnresolvableName},
		{"B7", "C", aristoxenus.Above, aristoxenus.ErrUnresolvableName},
		{"C9", "C", aristoxenus.Above, aristoxenus.ErrOutOfRange},
	}
	for _, test := range errs {
		if _, err := table.EncodeScientific(test.value, test.letter, test.position); !errors.Is(err, test.err) {
			t.Errorf("EncodeScientific(%q, %q, %v): got %v, expected %v", test.value, test.letter, test.position, err, test.err)
		}
	}
}

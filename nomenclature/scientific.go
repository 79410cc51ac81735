package nomenclature

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aristoxenus/aristoxenus"
)

// DecodeScientific returns the binomial scientific name of a name with an
// octave numeral, e.g. "B#3" gives "C4" and "Fbb4" gives "D#|Eb4".
// Accidentals may carry the pitch across an octave boundary but not outside
// the range of the table. Names of the binomial chromatic scale, with or
// without an octave, are returned as is.
func (t *Table) DecodeScientific(name string) (string, error) {
	if _, ok := t.rangeIndex[name]; ok {
		return name, nil
	}
	if slices.Contains(t.chromatic[aristoxenus.Binomials], name) {
		return name, nil
	}
	base, octave := splitOctave(name)
	if octave == "" {
		return "", fmt.Errorf("Table.DecodeScientific: %q has no octave: %w", name, aristoxenus.ErrUnknownNoteName)
	}
	if t.IsBinomial(base) {
		if _, err := t.Decode(base); err != nil {
			return "", err
		}
		return "", fmt.Errorf("Table.DecodeScientific: %q: %w", name, aristoxenus.ErrOutOfRange)
	}
	sharps, flats := t.CountAccidentals(base)
	if sharps > 0 && flats > 0 {
		return "", fmt.Errorf("Table.DecodeScientific: %q: %w", name, aristoxenus.ErrMixedAccidentals)
	}
	if base == "" || !t.IsNatural(base[:1]) || strings.Trim(base[1:], t.precursors.Sharp+t.precursors.Flat) != "" {
		return "", fmt.Errorf("Table.DecodeScientific: %q: %w", name, aristoxenus.ErrUnknownNoteName)
	}
	i, ok := t.rangeIndex[base[:1]+octave]
	if !ok {
		return "", fmt.Errorf("Table.DecodeScientific: octave of %q: %w", name, aristoxenus.ErrOutOfRange)
	}
	i += sharps - flats
	r := t.ranges[aristoxenus.Binomials]
	if i < 0 || i >= len(r) {
		return "", fmt.Errorf("Table.DecodeScientific: %q: %w", name, aristoxenus.ErrOutOfRange)
	}
	return r[i], nil
}

// Index returns the position of a scientific name in the scientific range;
// the same index applies to the range of every convention.
func (t *Table) Index(name string) (int, error) {
	b, err := t.DecodeScientific(name)
	if err != nil {
		return 0, err
	}
	i, ok := t.rangeIndex[b]
	if !ok {
		return 0, fmt.Errorf("Table.Index: %q has no octave: %w", name, aristoxenus.ErrUnknownNoteName)
	}
	return i, nil
}

// EncodeScientific respells the scientific value on the given letter. With
// Above the letter is searched in the twelve semitones starting at value and
// spelled with flats, with Below in the twelve semitones ending at value and
// spelled with sharps. For instance ("C4", "B", Below) gives "B#3" and
// ("C4", "D", Above) gives "Dbb4". The window is cut short at the ends of the
// range.
func (t *Table) EncodeScientific(value, letter string, position aristoxenus.Position) (string, error) {
	if !t.IsNatural(letter) {
		return "", fmt.Errorf("Table.EncodeScientific: letter %q: %w", letter, aristoxenus.ErrInvalidTargetLetter)
	}
	i, err := t.Index(value)
	if err != nil {
		return "", err
	}
	r := t.ranges[aristoxenus.Binomials]
	var window []string
	var symbol string
	switch position {
	case aristoxenus.Above:
		window = r[i:min(i+aristoxenus.Tones, len(r))]
		symbol = t.precursors.Flat
	case aristoxenus.Below:
		window = slices.Clone(r[max(i-aristoxenus.Tones+1, 0) : i+1])
		slices.Reverse(window)
		symbol = t.precursors.Sharp
	default:
		return "", fmt.Errorf("Table.EncodeScientific: %v: %w", position, aristoxenus.ErrInvalidPosition)
	}
	for steps, name := range window {
		if base, octave := splitOctave(name); base == letter {
			return letter + strings.Repeat(symbol, steps) + octave, nil
		}
	}
	return "", fmt.Errorf("Table.EncodeScientific: %q on %q %v: %w", value, letter, position, aristoxenus.ErrUnresolvableName)
}

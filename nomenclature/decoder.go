package nomenclature

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aristoxenus/aristoxenus"
)

// buildDecoder maps every natural decorated with 0 to 11 sharps or flats to
// the binomial it sounds as. Each sharp walks one step up the binomial
// chromatic scale, each flat one step down.
func (t *Table) buildDecoder() {
	p := t.precursors
	chrom := t.chromatic[aristoxenus.Binomials]
	n := len(chrom)
	t.decoder = make(map[string]string, len(t.naturals)*2*aristoxenus.Tones)
	for i, name := range chrom {
		if !t.IsNatural(name) {
			continue
		}
		for k := 0; k < aristoxenus.Tones; k++ {
			t.decoder[name+strings.Repeat(p.Sharp, k)] = chrom[(i+k)%n]
			t.decoder[name+strings.Repeat(p.Flat, k)] = chrom[((i-k)%n+n)%n]
		}
	}
	t.equivalents = make(map[string][]string, n)
	for name, b := range t.decoder {
		t.equivalents[b] = append(t.equivalents[b], name)
	}
	for _, names := range t.equivalents {
		slices.SortFunc(names, byLength)
	}
}

// Decode returns the binomial form of a name with up to eleven accidentals,
// e.g. "Ebb" and "C##4" both decode to "D", "Db" to "C#|Db". A trailing
// octave numeral is ignored. Binomials decode to themselves. Names mixing
// sharps and flats fail with ErrMixedAccidentals.
func (t *Table) Decode(name string) (string, error) {
	base, _ := splitOctave(name)
	if slices.Contains(t.chromatic[aristoxenus.Binomials], base) {
		return base, nil
	}
	b, ok := t.decoder[base]
	if !ok {
		if sharps, flats := t.CountAccidentals(base); sharps > 0 && flats > 0 && !t.IsBinomial(base) {
			return "", fmt.Errorf("Table.Decode: note name %q: %w", name, aristoxenus.ErrMixedAccidentals)
		}
		return "", fmt.Errorf("Table.Decode: note name %q: %w", name, aristoxenus.ErrUnknownNoteName)
	}
	return b, nil
}

// Equivalents returns all the decorated names that sound as the given name,
// shortest first.
func (t *Table) Equivalents(name string) ([]string, error) {
	b, err := t.Decode(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(t.equivalents[b]), nil
}

// Encode respells the pitch of value on the given natural letter with as few
// accidentals as possible, e.g. ("C#|Db", "B") gives "B##". Between an equal
// number of sharps and flats the sharps win.
func (t *Table) Encode(value, letter string) (string, error) {
	if !t.IsNatural(letter) {
		return "", fmt.Errorf("Table.Encode: letter %q: %w", letter, aristoxenus.ErrInvalidTargetLetter)
	}
	b, err := t.Decode(value)
	if err != nil {
		return "", err
	}
	for _, name := range t.equivalents[b] {
		if name[:1] == letter {
			return name, nil
		}
	}
	return "", fmt.Errorf("Table.Encode: %q on %q: %w", value, letter, aristoxenus.ErrNoEquivalentFound)
}

// LegalRoots returns the names with at most one accidental that can be used
// as chord or scale roots, shortest first.
func (t *Table) LegalRoots() []string {
	var ret []string
	for name := range t.decoder {
		if s, f := t.CountAccidentals(name); s+f <= 1 {
			ret = append(ret, name)
		}
	}
	slices.SortFunc(ret, byLength)
	return ret
}

// Package nomenclature converts between pitch positions and alphabetic note
// names. A Table is built once from Precursors and is read-only afterwards, so
// a single Table can be shared by any number of spellers and temperaments.
package nomenclature

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/aristoxenus/aristoxenus"
)

// Table holds the chromatic scales of every convention, the enharmonic
// decoder and the scientific ranges derived from a set of Precursors.
type Table struct {
	precursors Precursors
	naturals   []string
	halfSteps  map[string]string

	accidentals [3][]string // indexed by aristoxenus.Convention
	chromatic   [3][]string
	ranges      [3][]string

	decoder     map[string]string   // decorated name -> binomial
	equivalents map[string][]string // binomial -> decorated names, shortest first
	rangeIndex  map[string]int      // scientific binomial name -> index in range
}

// New builds a Table from the given precursors.
func New(p Precursors) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	t := &Table{precursors: p, naturals: p.naturals(), halfSteps: map[string]string{}}
	for _, pair := range p.HalfSteps {
		t.halfSteps[pair[0]] = pair[1]
	}
	lower := map[string]bool{}
	for _, upper := range t.halfSteps {
		lower[upper] = true
	}
	var sharps, flats, binomials []string
	for _, n := range t.naturals {
		if _, ok := t.halfSteps[n]; !ok {
			sharps = append(sharps, n+p.Sharp)
		}
		if !lower[n] {
			flats = append(flats, n+p.Flat)
		}
	}
	for i, s := range sharps {
		binomials = append(binomials, s+p.Divider+flats[i])
	}
	t.accidentals = [3][]string{sharps, flats, binomials}
	for c := range t.accidentals {
		t.chromatic[c] = t.interleave(t.accidentals[c])
		for octave := 0; octave < p.Octaves; octave++ {
			t.ranges[c] = append(t.ranges[c], appendOctave(t.chromatic[c], octave)...)
		}
	}
	t.rangeIndex = make(map[string]int, len(t.ranges[aristoxenus.Binomials]))
	for i, n := range t.ranges[aristoxenus.Binomials] {
		t.rangeIndex[n] = i
	}
	t.buildDecoder()
	return t, nil
}

var defaultTable = sync.OnceValues(func() (*Table, error) {
	p, err := DefaultPrecursors()
	if err != nil {
		return nil, err
	}
	return New(p)
})

// Default returns the Table built from DefaultPrecursors. It is built on
// first use and shared afterwards.
func Default() (*Table, error) { return defaultTable() }

// Precursors returns the constants the table was built from.
func (t *Table) Precursors() Precursors { return t.precursors }

// Naturals returns the seven letters in chromatic order from the origin.
func (t *Table) Naturals() []string { return slices.Clone(t.naturals) }

// Accidentals returns the five accidental names of the convention, e.g.
// C#, D#, F#, G#, A# for sharps. An unknown convention gives nil.
func (t *Table) Accidentals(c aristoxenus.Convention) []string {
	if !c.IsValid() {
		return nil
	}
	return slices.Clone(t.accidentals[c])
}

// Chromatic returns the twelve names of an octave: the naturals interleaved
// with the accidentals of the convention. An unknown convention gives nil.
func (t *Table) Chromatic(c aristoxenus.Convention) []string {
	if !c.IsValid() {
		return nil
	}
	return slices.Clone(t.chromatic[c])
}

// ChromaticFrom returns the chromatic scale of the convention rotated to
// start from the pitch of root.
func (t *Table) ChromaticFrom(root string, c aristoxenus.Convention) ([]string, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("Table.ChromaticFrom: %v: %w", c, aristoxenus.ErrInvalidConvention)
	}
	b, err := t.Decode(root)
	if err != nil {
		return nil, err
	}
	i := indexOf(t.chromatic[aristoxenus.Binomials], b)
	ret := slices.Clone(t.chromatic[c][i:])
	return append(ret, t.chromatic[c][:i]...), nil
}

func (t *Table) interleave(accidentals []string) []string {
	ret := make([]string, 0, aristoxenus.Tones)
	j := 0
	for _, n := range t.naturals {
		ret = append(ret, n)
		if _, ok := t.halfSteps[n]; !ok {
			ret = append(ret, accidentals[j])
			j++
		}
	}
	return ret
}

func (t *Table) IsNatural(name string) bool { return slices.Contains(t.naturals, name) }

// IsBinomial reports whether the name is a sharp|flat pair.
func (t *Table) IsBinomial(name string) bool {
	return strings.Contains(name, t.precursors.Divider)
}

// Letter returns the natural letter a name is spelled on, e.g. "F" for
// "F##4".
func (t *Table) Letter(name string) (string, error) {
	if t.IsBinomial(name) {
		return "", fmt.Errorf("Table.Letter: %q: %w", name, aristoxenus.ErrBinomialInput)
	}
	if name == "" || !t.IsNatural(name[:1]) {
		return "", fmt.Errorf("Table.Letter: %q: %w", name, aristoxenus.ErrUnknownNoteName)
	}
	return name[:1], nil
}

// CountAccidentals returns the number of sharp and flat symbols in name.
func (t *Table) CountAccidentals(name string) (sharps, flats int) {
	return strings.Count(name, t.precursors.Sharp), strings.Count(name, t.precursors.Flat)
}

// ScientificOctave returns the chromatic scale of the convention with the
// octave numeral appended, e.g. C4, C#4, ... An unknown convention gives nil.
func (t *Table) ScientificOctave(c aristoxenus.Convention, octave int) []string {
	if !c.IsValid() {
		return nil
	}
	return appendOctave(t.chromatic[c], octave)
}

// ScientificRange returns the scientific names of all the octaves of the
// table in ascending order. An unknown convention gives nil.
func (t *Table) ScientificRange(c aristoxenus.Convention) []string {
	if !c.IsValid() {
		return nil
	}
	return slices.Clone(t.ranges[c])
}

func appendOctave(names []string, octave int) []string {
	ret := make([]string, len(names))
	o := strconv.Itoa(octave)
	for i, n := range names {
		ret[i] = n + o
	}
	return ret
}

// splitOctave separates the trailing octave numeral from a name.
func splitOctave(name string) (base, octave string) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	return name[:i], name[i:]
}

// byLength orders names shortest first, then lexically.
func byLength(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func indexOf(list []string, s string) int { return slices.Index(list, s) }

// rotate returns a copy of list rotated so that first is at index 0. The list
// is returned unrotated if first is not in it.
func rotate(list []string, first string) []string {
	i := max(indexOf(list, first), 0)
	ret := slices.Clone(list[i:])
	return append(ret, list[:i]...)
}

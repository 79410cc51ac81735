// Package temperament assigns frequencies to the scientific pitch names of a
// nomenclature table.
package temperament

import (
	"fmt"
	"math"

	"github.com/aristoxenus/aristoxenus"
	"github.com/aristoxenus/aristoxenus/nomenclature"
	"github.com/viterin/vek"
)

// Temperament is a tuning table: one frequency per name of the scientific
// range, in ascending order. It is immutable after construction.
type Temperament struct {
	table     *nomenclature.Table
	reference nomenclature.Reference
	names     [3][]string // per convention, aligned with freqs
	freqs     []float64 // Hz, rounded to the precision of the table
	cents     []float64 // 1200*log2(freq), for nearest note searches
	index     map[string]int
}

// EqualTemperament tunes the range of the table in twelve tone equal
// temperament from the reference pitch: every semitone multiplies the
// frequency by the twelfth root of two.
func EqualTemperament(table *nomenclature.Table, ref nomenclature.Reference) (*Temperament, error) {
	if ref.Frequency <= 0 {
		return nil, fmt.Errorf("EqualTemperament: reference frequency %v: %w", ref.Frequency, aristoxenus.ErrUnrecognizedFrequency)
	}
	r, err := table.Index(ref.Name)
	if err != nil {
		return nil, fmt.Errorf("EqualTemperament: reference %q: %w", ref.Name, err)
	}
	names := table.ScientificRange(aristoxenus.Binomials)
	var ranges [3][]string
	for c := range ranges {
		ranges[c] = table.ScientificRange(aristoxenus.Convention(c))
	}
	ratios := make([]float64, len(names))
	for i := range ratios {
		ratios[i] = math.Pow(2, float64(i-r)/aristoxenus.Tones)
	}
	scale := math.Pow(10, float64(table.Precursors().Precision))
	vek.MulNumber_Inplace(ratios, ref.Frequency*scale)
	t := &Temperament{
		table:     table,
		reference: ref,
		index:     make(map[string]int, len(names)),
	}
	for i, f := range ratios {
		f = math.Round(f) / scale
		if n := len(t.freqs); n > 0 && t.freqs[n-1] == f {
			continue
		}
		t.index[names[i]] = len(t.freqs)
		for c := range t.names {
			t.names[c] = append(t.names[c], ranges[c][i])
		}
		t.freqs = append(t.freqs, f)
		t.cents = append(t.cents, 1200*math.Log2(f))
	}
	return t, nil
}

// Default tunes the table from the reference pitch of its precursors.
func Default(table *nomenclature.Table) (*Temperament, error) {
	return EqualTemperament(table, table.Precursors().Reference)
}

func (t *Temperament) Reference() nomenclature.Reference { return t.reference }

// Frequencies returns the frequencies aligned with the scientific range.
func (t *Temperament) Frequencies() []float64 {
	ret := make([]float64, len(t.freqs))
	copy(ret, t.freqs)
	return ret
}

// Names returns the scientific names in the given convention, aligned with
// Frequencies. An unknown convention gives nil.
func (t *Temperament) Names(c aristoxenus.Convention) []string {
	if !c.IsValid() {
		return nil
	}
	ret := make([]string, len(t.names[c]))
	copy(ret, t.names[c])
	return ret
}

// Frequency returns the frequency of any scientific name, e.g. "A4", "B#3"
// or "C#|Db5".
func (t *Temperament) Frequency(name string) (float64, error) {
	b, err := t.table.DecodeScientific(name)
	if err != nil {
		return 0, err
	}
	i, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("Temperament.Frequency: %q: %w", name, aristoxenus.ErrOutOfRange)
	}
	return t.freqs[i], nil
}

// Note returns the name of a tabulated frequency in the given convention. An
// exact match is preferred; otherwise the first entry whose integer part
// equals that of freq is returned.
func (t *Temperament) Note(freq float64, c aristoxenus.Convention) (string, error) {
	if !c.IsValid() {
		return "", fmt.Errorf("Temperament.Note: %v: %w", c, aristoxenus.ErrInvalidConvention)
	}
	for i, f := range t.freqs {
		if f == freq {
			return t.name(i, c), nil
		}
	}
	for i, f := range t.freqs {
		if math.Trunc(f) == math.Trunc(freq) {
			return t.name(i, c), nil
		}
	}
	return "", fmt.Errorf("Temperament.Note: %v Hz: %w", freq, aristoxenus.ErrUnrecognizedFrequency)
}

// Nearest returns the name of the tabulated pitch closest to freq and the
// deviation of freq from it in cents.
func (t *Temperament) Nearest(freq float64, c aristoxenus.Convention) (name string, cents float64, err error) {
	if !c.IsValid() {
		return "", 0, fmt.Errorf("Temperament.Nearest: %v: %w", c, aristoxenus.ErrInvalidConvention)
	}
	if freq <= 0 || math.IsInf(freq, 0) || math.IsNaN(freq) || len(t.freqs) == 0 {
		return "", 0, fmt.Errorf("Temperament.Nearest: %v Hz: %w", freq, aristoxenus.ErrUnrecognizedFrequency)
	}
	target := 1200 * math.Log2(freq)
	dist := make([]float64, len(t.cents))
	for i := range dist {
		dist[i] = target
	}
	vek.Sub_Inplace(dist, t.cents)
	vek.Abs_Inplace(dist)
	i := vek.ArgMin(dist)
	return t.name(i, c), target - t.cents[i], nil
}

func (t *Temperament) name(i int, c aristoxenus.Convention) string {
	return t.names[c][i]
}

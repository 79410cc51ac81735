package nomenclature

import "github.com/aristoxenus/aristoxenus"

// Render returns the names of the set bits of the structure, reading bit i
// as chromatic[i]. The chromatic scale is repeated as many times as needed to
// cover wide structures, so names repeat octave after octave.
func Render(s aristoxenus.Structure, chromatic []string) []string {
	if len(chromatic) == 0 {
		return nil
	}
	ret := make([]string, 0, s.OnesCount())
	for iv := range s.Intervals() {
		ret = append(ret, chromatic[iv.Semitones()%len(chromatic)])
	}
	return ret
}

// Render names the structure from root in the given convention, e.g. the
// major scale from "D" in sharps is D E F# G A B C#.
func (t *Table) Render(s aristoxenus.Structure, root string, c aristoxenus.Convention) ([]string, error) {
	chrom, err := t.ChromaticFrom(root, c)
	if err != nil {
		return nil, err
	}
	return Render(s, chrom), nil
}

// Package spelling names the pitches of heptatonic structures so that every
// letter is used exactly once, choosing between sharps and flats when the
// root allows both.
package spelling

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aristoxenus/aristoxenus"
	"github.com/aristoxenus/aristoxenus/nomenclature"
)

type (
	// Spelling is a scale spelled one letter per degree, with the number of
	// accidentals it uses.
	Spelling struct {
		Notes  []string `yaml:"notes,flow"`
		Sharps int      `yaml:"sharps"`
		Flats  int      `yaml:"flats"`
		// Mixed is set when the spelling uses both sharps and flats.
		Mixed bool `yaml:"mixed,omitempty"`
	}

	// Speller spells structures with the names of a nomenclature table.
	Speller struct {
		table *nomenclature.Table
	}
)

func New(table *nomenclature.Table) *Speller {
	return &Speller{table: table}
}

func (s *Speller) spelling(notes []string) Spelling {
	ret := Spelling{Notes: notes}
	for _, n := range notes {
		sharps, flats := s.table.CountAccidentals(n)
		ret.Sharps += sharps
		ret.Flats += flats
	}
	ret.Mixed = ret.Sharps > 0 && ret.Flats > 0
	return ret
}

// Accidentals returns the total number of sharps and flats.
func (sp Spelling) Accidentals() int { return sp.Sharps + sp.Flats }

func (sp Spelling) String() string { return strings.Join(sp.Notes, " ") }

// ForceHeptatonic spells a seven note structure from root using the letters
// in order from the letter of the root, however many accidentals that takes.
// For example the major scale from "C" is C D E F G A B and from "F#" it is
// F# G# A# B C# D# E#.
func (s *Speller) ForceHeptatonic(root string, structure aristoxenus.Structure) (Spelling, error) {
	if !structure.IsValidStructure(aristoxenus.Tones, aristoxenus.Notes) {
		return Spelling{}, fmt.Errorf("Speller.ForceHeptatonic: structure %v: %w", structure.Binary(), aristoxenus.ErrNotHeptatonic)
	}
	if s.table.IsBinomial(root) {
		return Spelling{}, fmt.Errorf("Speller.ForceHeptatonic: root %q: %w", root, aristoxenus.ErrBinomialRoot)
	}
	letter, err := s.table.Letter(root)
	if err != nil {
		return Spelling{}, err
	}
	naturals := s.table.Naturals()
	i := slices.Index(naturals, letter)
	letters := slices.Concat(naturals[i:], naturals[:i])
	plain, err := s.table.Render(structure, root, aristoxenus.Binomials)
	if err != nil {
		return Spelling{}, err
	}
	notes := make([]string, len(plain))
	for j, p := range plain {
		if notes[j], err = s.table.Encode(p, letters[j]); err != nil {
			return Spelling{}, err
		}
	}
	return s.spelling(notes), nil
}

// BestHeptatonic spells a seven note structure with the fewest accidentals.
// Roots sounding as a natural are spelled from that natural. Other roots
// are spelled from both their sharp and flat names; on an equal count a
// spelling mixing sharps and flats loses, and otherwise sharps win.
func (s *Speller) BestHeptatonic(root string, structure aristoxenus.Structure) (Spelling, error) {
	b, err := s.table.Decode(root)
	if err != nil {
		return Spelling{}, err
	}
	if !s.table.IsBinomial(b) {
		return s.ForceHeptatonic(b, structure)
	}
	names := strings.Split(b, s.table.Precursors().Divider)
	sharp, err := s.ForceHeptatonic(names[0], structure)
	if err != nil {
		return Spelling{}, err
	}
	flat, err := s.ForceHeptatonic(names[1], structure)
	if err != nil {
		return Spelling{}, err
	}
	switch {
	case flat.Accidentals() < sharp.Accidentals():
		return flat, nil
	case sharp.Accidentals() < flat.Accidentals():
		return sharp, nil
	case sharp.Mixed && !flat.Mixed:
		return flat, nil
	default:
		return sharp, nil
	}
}

// IsABCDEFG reports whether the names use each of the seven letters exactly
// once.
func (s *Speller) IsABCDEFG(names []string) (bool, error) {
	seen := map[string]bool{}
	for _, n := range names {
		if s.table.IsBinomial(n) {
			return false, fmt.Errorf("Speller.IsABCDEFG: %q: %w", n, aristoxenus.ErrBinomialInput)
		}
		letter, err := s.table.Letter(n)
		if err != nil {
			return false, err
		}
		if seen[letter] {
			return false, nil
		}
		seen[letter] = true
	}
	return len(seen) == aristoxenus.Notes, nil
}

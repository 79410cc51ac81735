package nomenclature

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aristoxenus/aristoxenus"
	"gopkg.in/yaml.v2"
)

type (
	// Precursors are the constants from which a Table is built: the letter
	// alphabet, the pairs of naturals with no pitch between them, the
	// accidental symbols and the extent and tuning reference of the
	// scientific range.
	Precursors struct {
		Alphabet  string     `yaml:"alphabet"`
		Origin    string     `yaml:"origin"`
		HalfSteps [][]string `yaml:"halfsteps,flow"`
		Sharp     string     `yaml:"sharp"`
		Flat      string     `yaml:"flat"`
		Divider   string     `yaml:"divider"`
		Octaves   int        `yaml:"octaves"`
		Reference Reference  `yaml:"reference"`
		// Precision is the number of decimals frequencies are rounded to.
		Precision int `yaml:"precision"`
	}

	// Reference is the pitch the tuning is anchored to, e.g. A4 = 440 Hz.
	Reference struct {
		Name      string  `yaml:"name"`
		Frequency float64 `yaml:"frequency"`
	}
)

//go:embed precursors.yml
var defaultPrecursors []byte

// DefaultPrecursors returns the standard tables: C-origin naturals, # and b,
// eight octaves and A4 = 440 Hz.
func DefaultPrecursors() (Precursors, error) {
	return ParsePrecursors(defaultPrecursors)
}

// ParsePrecursors decodes and validates precursor tables from YAML. Unknown
// keys are rejected.
func ParsePrecursors(data []byte) (Precursors, error) {
	var p Precursors
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return Precursors{}, fmt.Errorf("ParsePrecursors: %v: %w", err, aristoxenus.ErrInvalidPrecursors)
	}
	if err := p.Validate(); err != nil {
		return Precursors{}, err
	}
	return p, nil
}

// LoadPrecursors reads precursor tables from a YAML file.
func LoadPrecursors(path string) (Precursors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Precursors{}, fmt.Errorf("could not read precursors %v: %w", path, err)
	}
	return ParsePrecursors(data)
}

// Validate checks that the tables describe seven distinct single letter
// naturals with exactly enough half steps to leave five accidentals per
// octave.
func (p Precursors) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("Precursors.Validate: "+format+": %w", append(args, aristoxenus.ErrInvalidPrecursors)...)
	}
	if len(p.Alphabet) != aristoxenus.Notes {
		return invalid("alphabet %q must have %d letters", p.Alphabet, aristoxenus.Notes)
	}
	seen := map[rune]bool{}
	for _, r := range p.Alphabet {
		if r < 'A' || r > 'Z' || seen[r] {
			return invalid("alphabet %q must consist of distinct capital letters", p.Alphabet)
		}
		seen[r] = true
	}
	if len(p.Origin) != 1 || !strings.Contains(p.Alphabet, p.Origin) {
		return invalid("origin %q is not in the alphabet", p.Origin)
	}
	if want := aristoxenus.Notes - (aristoxenus.Tones - aristoxenus.Notes); len(p.HalfSteps) != want {
		return invalid("expected %d half steps, got %d", want, len(p.HalfSteps))
	}
	naturals := p.naturals()
	lower := map[string]bool{}
	for _, pair := range p.HalfSteps {
		if len(pair) != 2 {
			return invalid("half step %v must be a pair", pair)
		}
		if lower[pair[0]] {
			return invalid("half step %v is repeated", pair)
		}
		lower[pair[0]] = true
		i := indexOf(naturals, pair[0])
		if i < 0 || naturals[(i+1)%len(naturals)] != pair[1] {
			return invalid("half step %v must join neighbouring naturals", pair)
		}
	}
	for _, sym := range []string{p.Sharp, p.Flat} {
		if utf8.RuneCountInString(sym) != 1 || strings.ContainsAny(sym, p.Alphabet+"0123456789") {
			return invalid("accidental %q must be a single non-letter, non-digit symbol", sym)
		}
	}
	if p.Sharp == p.Flat {
		return invalid("sharp and flat are both %q", p.Sharp)
	}
	if p.Divider == "" || strings.ContainsAny(p.Divider, p.Sharp+p.Flat) {
		return invalid("divider %q must be non-empty and differ from the accidentals", p.Divider)
	}
	if p.Octaves <= 0 || p.Octaves > 10 {
		return invalid("octave count %d must be between 1 and 10", p.Octaves)
	}
	if p.Reference.Frequency <= 0 {
		return invalid("reference frequency %v must be positive", p.Reference.Frequency)
	}
	if p.Precision < 0 {
		return invalid("precision %d must not be negative", p.Precision)
	}
	return nil
}

// naturals returns the alphabet rotated to start from the origin, e.g.
// CDEFGAB.
func (p Precursors) naturals() []string {
	letters := strings.Split(p.Alphabet, "")
	return rotate(letters, p.Origin)
}

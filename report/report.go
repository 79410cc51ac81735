// Package report renders spellings, structures and tuning tables as text
// using templates.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/aristoxenus/aristoxenus"
	"github.com/aristoxenus/aristoxenus/spelling"
	"github.com/aristoxenus/aristoxenus/temperament"
)

type (
	Reporter struct {
		Template *template.Template
	}

	spellingData struct {
		Root      string
		Name      string
		Structure aristoxenus.Structure
		Spelling  spelling.Spelling
	}

	intervalRow struct {
		Semitones int
		Name      string
	}

	inversionRow struct {
		Binary    string
		Semitones []int
	}

	structureData struct {
		Structure  aristoxenus.Structure
		MaxBits    int
		Intervals  []intervalRow
		Inversions []inversionRow
	}

	tuningRow struct {
		Name      string
		Frequency float64
	}

	tuningData struct {
		Reference struct {
			Name      string
			Frequency float64
		}
		Rows []tuningRow
	}
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// New returns a Reporter using the built-in templates.
func New() (*Reporter, error) {
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf(`could not create templates: %v`, err)
	}
	return &Reporter{Template: tmpl}, nil
}

// NewFromTemplates returns a Reporter using the templates in a directory.
// The directory must define the "spelling", "structure" and "tuning"
// templates.
func NewFromTemplates(templateDirectory string) (*Reporter, error) {
	globPtrn := filepath.Join(templateDirectory, "*.tmpl")
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseGlob(globPtrn)
	if err != nil {
		return nil, fmt.Errorf(`could not create template based on directory "%v": %v`, templateDirectory, err)
	}
	return &Reporter{Template: tmpl}, nil
}

func (r *Reporter) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.Template.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf(`could not execute template "%v": %v`, name, err)
	}
	return buf.String(), nil
}

// Spelling describes a spelled scale, e.g. the major scale from D:
//
//	D ionian (101010110101)
//	D  E  F#  G  A  B  C#
//	2 sharps, 0 flats
func (r *Reporter) Spelling(root, name string, s aristoxenus.Structure, sp spelling.Spelling) (string, error) {
	return r.execute("spelling", spellingData{Root: root, Name: name, Structure: s, Spelling: sp})
}

// Structure lists the intervals and inversions of a structure.
func (r *Reporter) Structure(s aristoxenus.Structure, maxBits int) (string, error) {
	data := structureData{Structure: s, MaxBits: maxBits}
	for _, inv := range s.Inversions(maxBits) {
		b := inv.Binary()
		if pad := maxBits - len(b); pad > 0 {
			b = strings.Repeat("0", pad) + b
		}
		data.Inversions = append(data.Inversions, inversionRow{Binary: b, Semitones: inv.Semitones()})
	}
	for iv := range s.Intervals() {
		row := intervalRow{Semitones: iv.Semitones()}
		if n, ok := iv.Name(); ok {
			row.Name = n.Description()
		}
		data.Intervals = append(data.Intervals, row)
	}
	return r.execute("structure", data)
}

// Tuning lists the frequency of every pitch of a temperament.
func (r *Reporter) Tuning(t *temperament.Temperament, c aristoxenus.Convention) (string, error) {
	var data tuningData
	ref := t.Reference()
	data.Reference.Name, data.Reference.Frequency = ref.Name, ref.Frequency
	names := t.Names(c)
	if names == nil {
		return "", fmt.Errorf("Reporter.Tuning: %v: %w", c, aristoxenus.ErrInvalidConvention)
	}
	for i, f := range t.Frequencies() {
		data.Rows = append(data.Rows, tuningRow{Name: names[i], Frequency: f})
	}
	return r.execute("tuning", data)
}

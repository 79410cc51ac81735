package report_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aristoxenus/aristoxenus"
	"github.com/aristoxenus/aristoxenus/nomenclature"
	"github.com/aristoxenus/aristoxenus/report"
	"github.com/aristoxenus/aristoxenus/spelling"
	"github.com/aristoxenus/aristoxenus/temperament"
)

func newReporter(t *testing.T) *report.Reporter {
	t.Helper()
	r, err := report.New()
	if err != nil {
		t.Fatalf("could not create reporter: %v", err)
	}
	return r
}

func TestSpellingReport(t *testing.T) {
	table, err := nomenclature.Default()
	if err != nil {
		t.Fatal(err)
	}
	s := spelling.New(table)
	r := newReporter(t)
	tests := []struct {
		root     string
		expected string
	}{
		{"D", "D ionian (101010110101)\nD  E  F#  G  A  B  C#\n2 sharps, 0 flats\n"},
		{"F", "F ionian (101010110101)\nF  G  A  Bb  C  D  E\n0 sharps, 1 flat\n"},
		{"C", "C ionian (101010110101)\nC  D  E  F  G  A  B\n"},
	}
	for _, test := range tests {
		sp, err := s.BestHeptatonic(test.root, aristoxenus.MajorScale)
		if err != nil {
			t.Fatalf("BestHeptatonic(%q): %v", test.root, err)
		}
		got, err := r.Spelling(test.root, aristoxenus.Ionian.String(), aristoxenus.MajorScale, sp)
		if err != nil {
			t.Fatalf("Spelling(%q): %v", test.root, err)
		}
		if got != test.expected {
			t.Errorf("Spelling(%q): got %q, expected %q", test.root, got, test.expected)
		}
	}
}

func TestStructureReport(t *testing.T) {
	got, err := newReporter(t).Structure(aristoxenus.StructureOf(0, 4, 7), aristoxenus.Tones)
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}
	expected := `structure 145 = 0b10010001, 3 of 12 bits
intervals:
    0  Perfect First
    4  Major Third
    7  Perfect Fifth
inversions:
  1. 001000100001  0,5,9
  2. 000100001001  0,3,8
  3. 000010010001  0,4,7
`
	if got != expected {
		t.Errorf("Structure: got\n%v\nexpected\n%v", got, expected)
	}
}

func TestTuningReport(t *testing.T) {
	table, err := nomenclature.Default()
	if err != nil {
		t.Fatal(err)
	}
	tuning, err := temperament.Default(table)
	if err != nil {
		t.Fatal(err)
	}
	got, err := newReporter(t).Tuning(tuning, aristoxenus.Flats)
	if err != nil {
		t.Fatalf("Tuning: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 1+8*aristoxenus.Tones {
		t.Fatalf("Tuning: got %v lines, expected %v", len(lines), 1+8*aristoxenus.Tones)
	}
	if lines[0] != "equal temperament, A4 = 440 Hz" {
		t.Errorf("Tuning header: got %q", lines[0])
	}
	if e := "A4          440.000  *"; lines[1+57] != e {
		t.Errorf("Tuning A4: got %q, expected %q", lines[1+57], e)
	}
	if e := "Db4         277.183"; lines[1+49] != e {
		t.Errorf("Tuning Db4: got %q, expected %q", lines[1+49], e)
	}
	if strings.Count(got, "*") != 1 {
		t.Errorf("Tuning should mark the reference once:\n%v", got)
	}
	if _, err := newReporter(t).Tuning(tuning, aristoxenus.Convention(7)); !errors.Is(err, aristoxenus.ErrInvalidConvention) {
		t.Errorf("Tuning with an unknown convention: got %v, expected ErrInvalidConvention", err)
	}
}

func TestNewFromTemplates(t *testing.T) {
	dir := t.TempDir()
	custom := `{{ define "spelling" }}{{ .Spelling.Notes | join "," }}{{ end }}`
	if err := os.WriteFile(filepath.Join(dir, "custom.tmpl"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	r, err := report.NewFromTemplates(dir)
	if err != nil {
		t.Fatalf("NewFromTemplates: %v", err)
	}
	sp := spelling.Spelling{Notes: []string{"C", "D", "E"}}
	if got, err := r.Spelling("C", "structure", aristoxenus.StructureOf(0, 2, 4), sp); err != nil || got != "C,D,E" {
		t.Errorf("Spelling with a custom template: got %q, %v", got, err)
	}
	if _, err := r.Structure(aristoxenus.MajorScale, aristoxenus.Tones); err == nil {
		t.Error("Structure without a structure template should fail")
	}
	if _, err := report.NewFromTemplates(filepath.Join(dir, "missing")); err == nil {
		t.Error("NewFromTemplates of an empty directory should fail")
	}
}

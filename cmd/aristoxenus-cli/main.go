package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gopkg.in/yaml.v3"

	"github.com/aristoxenus/aristoxenus"
	"github.com/aristoxenus/aristoxenus/midiin"
	"github.com/aristoxenus/aristoxenus/nomenclature"
	"github.com/aristoxenus/aristoxenus/report"
	"github.com/aristoxenus/aristoxenus/spelling"
	"github.com/aristoxenus/aristoxenus/temperament"
	"github.com/aristoxenus/aristoxenus/version"
)

type env struct {
	table    *nomenclature.Table
	speller  *spelling.Speller
	tuning   *temperament.Temperament
	reporter *report.Reporter
	conv     aristoxenus.Convention
	yamlOut  bool
	maxBits  int
}

func main() {
	precursorPath := flag.String("p", "", "Read the precursor tables (alphabet, accidentals, octaves, reference pitch) from this .yml file instead of the built-in ones.")
	tmplDir := flag.String("t", "", "Render reports with the templates in this directory instead of the built-in ones.")
	convName := flag.String("c", "sharps", "Accidental convention of printed names. Possible values: sharps, flats, binomials")
	yamlOut := flag.Bool("y", false, "Output results as YAML instead of text reports.")
	maxBits := flag.Int("b", aristoxenus.Tones, "Width in bits of the rotation window of structures.")
	versionFlag := flag.Bool("v", false, "Print version.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	precursors, err := nomenclature.DefaultPrecursors()
	if *precursorPath != "" {
		precursors, err = nomenclature.LoadPrecursors(*precursorPath)
	}
	if err != nil {
		log.Fatalf("could not load precursors: %v", err)
	}
	table, err := nomenclature.New(precursors)
	if err != nil {
		log.Fatalf("could not build the note name table: %v", err)
	}
	tuning, err := temperament.Default(table)
	if err != nil {
		log.Fatalf("could not tune the note name table: %v", err)
	}
	var reporter *report.Reporter
	if *tmplDir != "" {
		reporter, err = report.NewFromTemplates(*tmplDir)
	} else {
		reporter, err = report.New()
	}
	if err != nil {
		log.Fatalf("error creating reporter: %v", err)
	}
	conv, err := aristoxenus.ParseConvention(*convName)
	if err != nil {
		log.Fatal(err)
	}
	e := &env{
		table:    table,
		speller:  spelling.New(table),
		tuning:   tuning,
		reporter: reporter,
		conv:     conv,
		yamlOut:  *yamlOut,
		maxBits:  *maxBits,
	}
	if err := e.run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}
}

func (e *env) run(command string, args []string) error {
	switch command {
	case "spell", "force":
		if len(args) != 2 {
			return fmt.Errorf("expected a root and a mode or structure, got %d arguments", len(args))
		}
		s, name, err := parseStructure(args[1])
		if err != nil {
			return err
		}
		var sp spelling.Spelling
		if command == "spell" {
			sp, err = e.speller.BestHeptatonic(args[0], s)
		} else {
			sp, err = e.speller.ForceHeptatonic(args[0], s)
		}
		if err != nil {
			return err
		}
		if e.yamlOut {
			return e.printYAML(sp)
		}
		return e.printReport(e.reporter.Spelling(args[0], name, s, sp))
	case "structure":
		if len(args) != 1 {
			return fmt.Errorf("expected a mode or structure, got %d arguments", len(args))
		}
		s, _, err := parseStructure(args[0])
		if err != nil {
			return err
		}
		if e.yamlOut {
			return e.printYAML(map[string]any{"structure": s, "inversions": s.Inversions(e.maxBits)})
		}
		return e.printReport(e.reporter.Structure(s, e.maxBits))
	case "decode":
		ret := map[string]string{}
		for _, a := range args {
			var b string
			var err error
			if a != "" && a[len(a)-1] >= '0' && a[len(a)-1] <= '9' {
				b, err = e.table.DecodeScientific(a)
			} else {
				b, err = e.table.Decode(a)
			}
			if err != nil {
				return err
			}
			ret[a] = b
		}
		return e.printMap(args, ret)
	case "equivalents":
		if len(args) != 1 {
			return fmt.Errorf("expected a note name, got %d arguments", len(args))
		}
		names, err := e.table.Equivalents(args[0])
		if err != nil {
			return err
		}
		if e.yamlOut {
			return e.printYAML(names)
		}
		fmt.Println(strings.Join(names, " "))
		return nil
	case "encode":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("expected a note, a letter and optionally above or below, got %d arguments", len(args))
		}
		var name string
		var err error
		if len(args) == 3 {
			var pos aristoxenus.Position
			if pos, err = aristoxenus.ParsePosition(args[2]); err != nil {
				return err
			}
			name, err = e.table.EncodeScientific(args[0], args[1], pos)
		} else {
			name, err = e.table.Encode(args[0], args[1])
		}
		if err != nil {
			return err
		}
		fmt.Println(name)
		return nil
	case "freq":
		ret := map[string]string{}
		for _, a := range args {
			f, err := e.tuning.Frequency(a)
			if err != nil {
				return err
			}
			ret[a] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return e.printMap(args, ret)
	case "note":
		ret := map[string]string{}
		for _, a := range args {
			f, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("could not parse frequency %v: %v", a, err)
			}
			name, err := e.tuning.Note(f, e.conv)
			if err != nil {
				var cents float64
				if name, cents, err = e.tuning.Nearest(f, e.conv); err != nil {
					return err
				}
				name = fmt.Sprintf("%s %+.1f cents", name, cents)
			}
			ret[a] = name
		}
		return e.printMap(args, ret)
	case "tune":
		if e.yamlOut {
			names := e.tuning.Names(e.conv)
			freqs := e.tuning.Frequencies()
			doc := &yaml.Node{Kind: yaml.MappingNode}
			for i, f := range freqs {
				doc.Content = append(doc.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: names[i]},
					&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(f, 'f', -1, 64)})
			}
			return e.printYAML(doc)
		}
		return e.printReport(e.reporter.Tuning(e.tuning, e.conv))
	case "ports":
		c := midiin.NewContext()
		defer c.Close()
		for d := range c.InputDevices {
			fmt.Println(d)
		}
		return nil
	case "listen":
		if len(args) > 1 {
			return fmt.Errorf("expected at most a port name prefix, got %d arguments", len(args))
		}
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		return e.listen(prefix)
	}
	return fmt.Errorf("unknown command, see -h for usage")
}

// listen prints the notes played on a MIDI input until interrupted.
func (e *env) listen(prefix string) error {
	c := midiin.NewContext()
	defer c.Close()
	d, err := midiin.Open(c, prefix)
	if err != nil {
		return err
	}
	events := make(chan midiin.Event, 64)
	stop, err := d.Listen(func(msg midi.Message) {
		if ev, err := midiin.Describe(e.tuning, msg, e.conv); err == nil {
			select {
			case events <- ev:
			default: // drop when the printer falls behind
			}
		}
	})
	if err != nil {
		return err
	}
	defer stop()
	log.Printf("listening to %v, press Ctrl+C to stop", d)
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	for {
		select {
		case <-interrupt:
			return nil
		case ev := <-events:
			if e.yamlOut {
				fmt.Println("---")
				if err := e.printYAML(ev); err != nil {
					return err
				}
				continue
			}
			state := "off"
			if ev.On {
				state = "on"
			}
			fmt.Printf("%-3s %-8s %9.3f Hz  ch %d vel %d\n", state, ev.Name, ev.Frequency, ev.Channel+1, ev.Velocity)
		}
	}
}

// parseStructure accepts a mode name or an integer literal such as 2741 or
// 0b101010110101.
func parseStructure(arg string) (aristoxenus.Structure, string, error) {
	if m, err := aristoxenus.ParseMode(arg); err == nil {
		return m.Structure(), m.String(), nil
	}
	s, err := aristoxenus.ParseStructure(arg)
	if err != nil {
		return aristoxenus.Structure{}, "", err
	}
	return s, "structure", nil
}

func (e *env) printMap(keys []string, values map[string]string) error {
	if e.yamlOut {
		return e.printYAML(values)
	}
	for _, k := range keys {
		fmt.Printf("%s\t%s\n", k, values[k])
	}
	return nil
}

func (e *env) printYAML(v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal the result as yaml: %v", err)
	}
	fmt.Print(string(out))
	return nil
}

func (e *env) printReport(text string, err error) error {
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Aristoxenus, spelling and tuning of interval structures.
Usage: %s [flags] command [args ...]

Commands:
  spell ROOT MODE|STRUCTURE      spell a heptatonic structure with the fewest accidentals
  force ROOT MODE|STRUCTURE      spell a heptatonic structure from the letter of ROOT
  structure MODE|STRUCTURE       list the intervals and inversions of a structure
  decode NAME ...                binomial form of note names, scientific if NAME ends in an octave
  equivalents NAME               all enharmonic spellings of a note name
  encode NAME LETTER [above|below]
                                 respell NAME on LETTER
  freq NAME ...                  frequency of scientific note names
  note HZ ...                    name of frequencies
  tune                           print the whole tuning table
  ports                          list the MIDI input ports
  listen [PREFIX]                name the notes played on the first MIDI input starting with PREFIX

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}

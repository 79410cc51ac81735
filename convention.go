package aristoxenus

import (
	"fmt"
	"strings"
)

type (
	// Convention selects how the five pitches between the naturals are
	// spelled.
	Convention int

	// Position tells on which side of a reference note a respelling is
	// searched.
	Position int
)

const (
	Sharps Convention = iota
	Flats
	Binomials
)

const (
	Above Position = iota
	Below
)

var conventionNames = [...]string{"sharps", "flats", "binomials"}

var positionNames = [...]string{"above", "below"}

func ParseConvention(s string) (Convention, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range conventionNames {
		if n == key {
			return Convention(i), nil
		}
	}
	return 0, fmt.Errorf("ParseConvention: %q: %w", s, ErrInvalidConvention)
}

// IsValid reports whether c is one of Sharps, Flats or Binomials.
func (c Convention) IsValid() bool { return c >= 0 && int(c) < len(conventionNames) }

func (c Convention) String() string {
	if c < 0 || int(c) >= len(conventionNames) {
		return fmt.Sprintf("Convention(%d)", int(c))
	}
	return conventionNames[c]
}

func ParsePosition(s string) (Position, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range positionNames {
		if n == key {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("ParsePosition: %q: %w", s, ErrInvalidPosition)
}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

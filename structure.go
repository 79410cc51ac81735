package aristoxenus

import (
	"fmt"
	"iter"
	"math/big"
	"math/bits"
	"strings"
)

const (
	// Tones is the number of semitones in an octave, and thus the width in
	// bits of a single-octave interval structure.
	Tones = 12
	// Notes is the number of distinct letter names in a heptatonic scale.
	Notes = 7
	// PianoBits is the width of a structure spanning the full eight octave
	// scientific range.
	PianoBits = 8 * Tones
)

// Structure is a bit pattern where each set bit i denotes that the pitch i
// semitones above the root is present. Bit 0 is the root. The width is
// arbitrary, so structures spanning several octaves are supported.
//
// Structure is a value type: every operation returns a new Structure and the
// underlying integer is never mutated after construction. The zero value is
// the empty structure.
type Structure struct {
	v *big.Int
}

// NewStructure returns a Structure with the bits of v.
func NewStructure(v uint64) Structure {
	return Structure{v: new(big.Int).SetUint64(v)}
}

// StructureOf returns a Structure with the given semitones set. Negative
// semitones are ignored.
func StructureOf(semitones ...int) Structure {
	v := new(big.Int)
	for _, s := range semitones {
		if s >= 0 {
			v.SetBit(v, s, 1)
		}
	}
	return Structure{v: v}
}

// StructureFromBig returns a Structure with the bits of a copy of v. The sign
// of v is ignored.
func StructureFromBig(v *big.Int) Structure {
	return Structure{v: new(big.Int).Abs(v)}
}

// ParseStructure parses a non-negative integer in any base accepted by
// big.Int.SetString with base 0, e.g. "2741", "0b101010110101" or "0xab5".
func ParseStructure(s string) (Structure, error) {
	v, ok := new(big.Int).SetString(strings.ReplaceAll(strings.TrimSpace(s), "_", ""), 0)
	if !ok || v.Sign() < 0 {
		return Structure{}, fmt.Errorf("ParseStructure: %q: %w", s, ErrInvalidStructure)
	}
	return Structure{v: v}, nil
}

func (s Structure) int() *big.Int {
	if s.v == nil {
		return new(big.Int)
	}
	return s.v
}

// Big returns a copy of the underlying integer.
func (s Structure) Big() *big.Int { return new(big.Int).Set(s.int()) }

// Uint64 returns the low 64 bits of the structure.
func (s Structure) Uint64() uint64 { return s.int().Uint64() }

// BitLen returns the length of the structure in bits.
func (s Structure) BitLen() int { return s.int().BitLen() }

// OnesCount returns the number of set bits.
func (s Structure) OnesCount() int {
	n := 0
	for _, w := range s.int().Bits() {
		n += bits.OnesCount(uint(w))
	}
	return n
}

// Bit reports whether semitone i is present.
func (s Structure) Bit(i int) bool { return i >= 0 && s.int().Bit(i) == 1 }

func (s Structure) IsZero() bool { return s.int().Sign() == 0 }

// Equal reports whether both structures have exactly the same bits.
func (s Structure) Equal(o Structure) bool { return s.int().Cmp(o.int()) == 0 }

// String returns the decimal representation.
func (s Structure) String() string { return s.int().String() }

// Binary returns the base-2 representation, most significant bit first.
func (s Structure) Binary() string { return s.int().Text(2) }

// MarshalText encodes the structure as a 0b-prefixed binary literal.
func (s Structure) MarshalText() ([]byte, error) {
	return []byte("0b" + s.Binary()), nil
}

func (s *Structure) UnmarshalText(text []byte) error {
	p, err := ParseStructure(string(text))
	if err != nil {
		return err
	}
	*s = p
	return nil
}

// Semitones returns the indices of the set bits in ascending order.
func (s Structure) Semitones() []int {
	v := s.int()
	ret := make([]int, 0, s.OnesCount())
	for i := 0; i < v.BitLen(); i++ {
		if v.Bit(i) == 1 {
			ret = append(ret, i)
		}
	}
	return ret
}

func (s Structure) And(o Structure) Structure {
	return Structure{v: new(big.Int).And(s.int(), o.int())}
}

func (s Structure) Or(o Structure) Structure {
	return Structure{v: new(big.Int).Or(s.int(), o.int())}
}

func (s Structure) Xor(o Structure) Structure {
	return Structure{v: new(big.Int).Xor(s.int(), o.int())}
}

func (s Structure) AndNot(o Structure) Structure {
	return Structure{v: new(big.Int).AndNot(s.int(), o.int())}
}

// Not complements the structure within a maxBits wide window, so the result
// stays non-negative. A non-positive width leaves the structure unchanged.
func (s Structure) Not(maxBits int) Structure {
	return Structure{v: new(big.Int).Xor(s.int(), mask(maxBits))}
}

func (s Structure) Lsh(n uint) Structure {
	return Structure{v: new(big.Int).Lsh(s.int(), n)}
}

func (s Structure) Rsh(n uint) Structure {
	return Structure{v: new(big.Int).Rsh(s.int(), n)}
}

// Contains reports whether all bits of sub are present in s.
func (s Structure) Contains(sub Structure) bool {
	return new(big.Int).And(sub.int(), s.int()).Cmp(sub.int()) == 0
}

// IsValidInterval reports whether the structure denotes a single interval:
// exactly two bits set, one of them the root.
func (s Structure) IsValidInterval() bool {
	return s.OnesCount() == 2 && s.int().Bit(0) == 1
}

// IsValidStructure reports whether the structure fits in maxBits and, if
// flippedBits is positive, has exactly that many bits set.
func (s Structure) IsValidStructure(maxBits, flippedBits int) bool {
	if s.BitLen() > maxBits {
		return false
	}
	return flippedBits <= 0 || s.OnesCount() == flippedBits
}

// mask returns n low bits set; a non-positive n gives the empty mask.
func mask(n int) *big.Int {
	if n <= 0 {
		return new(big.Int)
	}
	m := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return m.Sub(m, big.NewInt(1))
}

func mustWidth(maxBits int) {
	if maxBits <= 0 {
		panic(fmt.Sprintf("aristoxenus: rotation window must be positive, got %d bits", maxBits))
	}
}

// RotateLeft rotates the low maxBits bits of the structure left by one; the
// top bit of the window wraps around to bit 0. Bits above the window are
// dropped. It panics if maxBits is not positive.
func (s Structure) RotateLeft(maxBits int) Structure {
	mustWidth(maxBits)
	m := mask(maxBits)
	v := new(big.Int).And(s.int(), m)
	top := v.Bit(maxBits - 1)
	v.Lsh(v, 1).And(v, m)
	v.SetBit(v, 0, top)
	return Structure{v: v}
}

// RotateRight rotates the low maxBits bits of the structure right by one;
// bit 0 wraps around to the top of the window. Bits above the window are
// dropped. It panics if maxBits is not positive.
func (s Structure) RotateRight(maxBits int) Structure {
	mustWidth(maxBits)
	v := new(big.Int).And(s.int(), mask(maxBits))
	low := v.Bit(0)
	v.Rsh(v, 1)
	v.SetBit(v, maxBits-1, low)
	return Structure{v: v}
}

// NextInversion rotates the structure left until a set bit lands on the
// root again. An empty window is returned as is.
func (s Structure) NextInversion(maxBits int) Structure {
	r := s.RotateLeft(maxBits)
	if r.IsZero() {
		return r
	}
	for !r.Bit(0) {
		r = r.RotateLeft(maxBits)
	}
	return r
}

// PreviousInversion rotates the structure right until a set bit lands on the
// root again, undoing NextInversion.
func (s Structure) PreviousInversion(maxBits int) Structure {
	r := s.RotateRight(maxBits)
	if r.IsZero() {
		return r
	}
	for !r.Bit(0) {
		r = r.RotateRight(maxBits)
	}
	return r
}

// Inversions returns OnesCount successive applications of NextInversion. For
// a rooted structure the last element is the structure itself.
func (s Structure) Inversions(maxBits int) []Structure {
	n := s.OnesCount()
	ret := make([]Structure, 0, n)
	cur := s
	for i := 0; i < n; i++ {
		cur = cur.NextInversion(maxBits)
		ret = append(ret, cur)
	}
	return ret
}

// Transpose displaces the structure by whole octaves while keeping the root
// marker at bit 0. With echo the original root sounds again at the new
// octave, without it the root is only kept as the marker. Negative octaves
// shift downwards, dropping any bits that fall below the root.
func (s Structure) Transpose(octaves int, echo bool) Structure {
	v := new(big.Int).Set(s.int())
	if !echo {
		v.SetBit(v, 0, 0)
	}
	if octaves >= 0 {
		v.Lsh(v, uint(Tones*octaves))
	} else {
		v.Rsh(v, uint(-Tones*octaves))
	}
	v.SetBit(v, 0, 1)
	return Structure{v: v}
}

// Intervals yields the individual intervals making up the structure in
// ascending order: the unison for the root bit and root+bit for every other
// set bit. Each iteration works on its own copy, so the sequence can be
// ranged over any number of times.
func (s Structure) Intervals() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		rest := new(big.Int).Set(s.int())
		for rest.Sign() != 0 {
			i := rest.TrailingZeroBits()
			rest.SetBit(rest, int(i), 0)
			if !yield(NewInterval(int(i))) {
				return
			}
		}
	}
}

// Reduce combines the structures with bitwise OR. The empty reduction is the
// empty structure.
func Reduce(structures ...Structure) Structure {
	v := new(big.Int)
	for _, s := range structures {
		v.Or(v, s.int())
	}
	return Structure{v: v}
}

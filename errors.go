package aristoxenus

import "errors"

// Errors returned by the structure, nomenclature, spelling and temperament
// packages. They are wrapped with the name of the failing operation, so use
// errors.Is to test for them.
var (
	ErrInvalidInterval  = errors.New("invalid interval")
	ErrInvalidStructure = errors.New("invalid interval structure")

	ErrUnknownNoteName     = errors.New("unknown note name")
	ErrInvalidTargetLetter = errors.New("target letter is not a natural")
	ErrNoEquivalentFound   = errors.New("no enharmonic equivalent with the target letter")
	ErrUnresolvableName    = errors.New("unable to resolve name")
	ErrMixedAccidentals    = errors.New("name mixes sharps and flats")
	ErrOutOfRange          = errors.New("note outside of the scientific range")

	ErrBinomialRoot  = errors.New("root cannot be a binomial")
	ErrNotHeptatonic = errors.New("structure is not heptatonic")
	ErrBinomialInput = errors.New("cannot resolve the letter of a binomial")

	ErrUnrecognizedFrequency = errors.New("unrecognized frequency")

	ErrInvalidConvention = errors.New("unknown accidental convention")
	ErrInvalidPosition   = errors.New("unknown position")
	ErrInvalidPrecursors = errors.New("invalid precursor tables")
)

package greedy

import (
	"math"

	cerrors "github.com/cockroachdb/errors"
)

const (
	// DefaultLarge is the magnitude of the sentinel that marks unreached diagonals
	DefaultLarge int = 100000000
	// DefaultMaxSpace is the largest number of diagonal cells a single wavefront round may
	// request. It is also the arena block size.
	DefaultMaxSpace int = 1000000
	// DefaultErrorFraction is the number of residues per tolerated difference used to bound the
	// number of wavefront rounds
	DefaultErrorFraction int = 2
)

// Config holds the tuning constants of the greedy aligner. Any field left at zero is replaced
// by its default.
type Config struct {
	// Large is the magnitude of the sentinel row value that marks an unreached diagonal. Sequences
	// must be shorter than Large, and Large must fit in an int32.
	Large int
	// MaxSpace bounds the number of diagonal cells one wavefront round may request from the
	// context's arenas. A round that needs more aborts the alignment with ErrSpaceExhausted.
	MaxSpace int
	// ErrorFraction bounds the number of differences explored: an alignment of sequences whose
	// longer member has n residues runs at most n/ErrorFraction+1 difference rounds.
	ErrorFraction int
}

// DefaultConfig returns the constants used by BLAST's greedy aligner
func DefaultConfig() Config {
	return Config{
		Large:         DefaultLarge,
		MaxSpace:      DefaultMaxSpace,
		ErrorFraction: DefaultErrorFraction,
	}
}

func (c Config) withDefaults() Config {
	if c.Large == 0 {
		c.Large = DefaultLarge
	}
	if c.MaxSpace == 0 {
		c.MaxSpace = DefaultMaxSpace
	}
	if c.ErrorFraction == 0 {
		c.ErrorFraction = DefaultErrorFraction
	}
	return c
}

// Validate verifies that every field of the configuration is usable
func (c Config) Validate() error {
	if c.Large < 1 || c.Large > math.MaxInt32 {
		return cerrors.Wrapf(ErrInvalidParams, "Large is %d, but must be in [1, %d]", c.Large, math.MaxInt32)
	}
	if c.MaxSpace < 1 {
		return cerrors.Wrapf(ErrInvalidParams, "MaxSpace is %d, but must be positive", c.MaxSpace)
	}
	if c.ErrorFraction < 1 {
		return cerrors.Wrapf(ErrInvalidParams, "ErrorFraction is %d, but must be positive", c.ErrorFraction)
	}
	return nil
}

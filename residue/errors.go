package residue

import "github.com/pkg/errors"

// ErrInvalidResidue is returned when a letter has no 2-bit nucleotide code
var ErrInvalidResidue error = errors.New("residue has no 2-bit nucleotide code")

// ErrWindowOutOfRange is returned when a window reaches outside a packed sequence
var ErrWindowOutOfRange error = errors.New("window is outside the packed sequence")

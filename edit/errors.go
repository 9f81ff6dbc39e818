package edit

import "github.com/pkg/errors"

// ErrMalformedCIGAR is returned by ParseCIGAR when the text is not a sequence of count/op pairs
var ErrMalformedCIGAR error = errors.New("malformed CIGAR string")

// ErrScriptOverrun is returned by Apply when a script consumes more residues than a sequence holds
var ErrScriptOverrun error = errors.New("edit script runs past the end of a sequence")

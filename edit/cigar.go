package edit

import (
	"strconv"

	cerrors "github.com/cockroachdb/errors"
)

// ParseCIGAR reads a script from CIGAR text such as "12M1I3M". '=' and 'X' are accepted as
// Replace runs. Runs of the same kind are merged as they are appended.
func ParseCIGAR(text string) (*Script, error) {
	script := NewScript()

	start := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= '0' && b <= '9' {
			continue
		}

		kind, ok := kindFromCIGAR(b)
		if !ok {
			return nil, cerrors.Wrapf(ErrMalformedCIGAR, "unknown operation '%c' in column %d of '%s'", b, i, text)
		}

		if i == start {
			return nil, cerrors.Wrapf(ErrMalformedCIGAR, "expected a run length before '%c' in column %d of '%s'", b, i, text)
		}

		n, err := strconv.ParseInt(text[start:i], 10, 32)
		if err != nil {
			return nil, cerrors.Wrapf(ErrMalformedCIGAR, "bad run length '%s' in '%s'", text[start:i], text)
		}
		if n == 0 {
			return nil, cerrors.Wrapf(ErrMalformedCIGAR, "zero-length run in column %d of '%s'", i, text)
		}

		script.Append(kind, int(n))
		start = i + 1
	}

	if start != len(text) {
		return nil, cerrors.Wrapf(ErrMalformedCIGAR, "trailing run length '%s' in '%s'", text[start:], text)
	}

	return script, nil
}

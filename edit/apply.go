package edit

import (
	cerrors "github.com/cockroachdb/errors"
)

// Apply transforms the aligned prefix of seq1 into the aligned prefix of seq2 by following the
// script: Replace runs take the residues of seq2 in place of those of seq1, Delete runs drop
// residues of seq1 and Insert runs add residues of seq2.
//
// The result always equals seq2[:n] where n is the second span of the script. An error is
// returned if the script consumes more residues than either sequence holds.
func Apply(script *Script, seq1, seq2 []byte) ([]byte, error) {
	span1, span2 := script.Spans()
	if span1 > len(seq1) {
		return nil, cerrors.Wrapf(ErrScriptOverrun, "script consumes %d residues of the first sequence, which has %d", span1, len(seq1))
	}
	if span2 > len(seq2) {
		return nil, cerrors.Wrapf(ErrScriptOverrun, "script consumes %d residues of the second sequence, which has %d", span2, len(seq2))
	}

	out := make([]byte, 0, span2)
	var i, j int
	for _, op := range script.ops {
		switch op.Kind {
		case KindReplace:
			out = append(out, seq2[j:j+op.Len]...)
			i += op.Len
			j += op.Len
		case KindDelete:
			i += op.Len
		case KindInsert:
			out = append(out, seq2[j:j+op.Len]...)
			j += op.Len
		default:
			return nil, cerrors.AssertionFailedf("unknown edit operation kind %s", op.Kind)
		}
	}

	return out, nil
}

// Identities counts the Replace positions at which seq1 and seq2 hold the same residue
func Identities(script *Script, seq1, seq2 []byte) int {
	var i, j, identities int
	for _, op := range script.ops {
		switch op.Kind {
		case KindReplace:
			for n := 0; n < op.Len && i+n < len(seq1) && j+n < len(seq2); n++ {
				if seq1[i+n] == seq2[j+n] {
					identities++
				}
			}
			i += op.Len
			j += op.Len
		case KindDelete:
			i += op.Len
		case KindInsert:
			j += op.Len
		}
	}
	return identities
}

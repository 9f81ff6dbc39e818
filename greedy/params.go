package greedy

import (
	"github.com/bioarsenal/greedy/edit"
	cerrors "github.com/cockroachdb/errors"
)

// Params are the scoring and termination parameters of a single alignment
type Params struct {
	// XDrop is the largest score drop below the best score found that a path may suffer before
	// it is abandoned
	XDrop int
	// Match is the score of aligning two identical residues. It must be positive.
	Match int
	// Mismatch is the score of aligning two different residues. It must be negative.
	Mismatch int
	// GapOpen is the penalty charged once per gap by the affine driver. It must not be negative.
	GapOpen int
	// GapExtend is the penalty charged per gap residue by the affine driver. It must not be
	// negative.
	GapExtend int
}

// UsesGapPenalties reports whether the parameters describe affine gap costs. When they don't,
// every gap residue is charged -Mismatch + Match/2, the cost implied by the linear driver.
func (p Params) UsesGapPenalties() bool {
	return p.GapOpen != 0 || p.GapExtend != 0
}

func (p Params) validateLinear() error {
	if p.Match <= 0 {
		return cerrors.Wrapf(ErrInvalidParams, "Match is %d, but must be positive", p.Match)
	}
	if p.Mismatch >= 0 {
		return cerrors.Wrapf(ErrInvalidParams, "Mismatch is %d, but must be negative", p.Mismatch)
	}
	if p.XDrop < 0 {
		return cerrors.Wrapf(ErrInvalidParams, "XDrop is %d, but must not be negative", p.XDrop)
	}
	return nil
}

// Validate verifies that the parameters can be used by both drivers
func (p Params) Validate() error {
	err := p.validateLinear()
	if err != nil {
		return err
	}
	if p.GapOpen < 0 {
		return cerrors.Wrapf(ErrInvalidParams, "GapOpen is %d, but must not be negative", p.GapOpen)
	}
	if p.GapExtend < 0 {
		return cerrors.Wrapf(ErrInvalidParams, "GapExtend is %d, but must not be negative", p.GapExtend)
	}
	return nil
}

// scoring holds the parameters in the integral units the drivers work in. An odd match score is
// doubled along with every other value so that half a match is a whole unit.
type scoring struct {
	factor    int
	match     int
	halfMatch int
	// mismatch and the gap values are penalties: positive numbers subtracted from the score
	mismatch  int
	gapOpen   int
	gapExtend int
	xDrop     int
}

func (p Params) scale() scoring {
	factor := 1
	if p.Match%2 != 0 {
		factor = 2
	}

	return scoring{
		factor:    factor,
		match:     p.Match * factor,
		halfMatch: p.Match * factor / 2,
		mismatch:  -p.Mismatch * factor,
		gapOpen:   p.GapOpen * factor,
		gapExtend: p.GapExtend * factor,
		xDrop:     p.XDrop * factor,
	}
}

// linearGapResidue is the penalty the linear driver implicitly charges per gap residue
func (s scoring) linearGapResidue() int {
	return s.mismatch + s.halfMatch
}

// ScoreScript recomputes the score of an alignment from its edit script. Replace runs are scored
// residue by residue; gap runs are charged GapOpen + GapExtend per residue when the parameters use
// gap penalties and -Mismatch + Match/2 per residue otherwise. reverse selects the same residue
// order as the alignment call that produced the script.
//
// The result equals the Score reported by the driver that produced the script.
func (p Params) ScoreScript(script *edit.Script, seq1, seq2 []byte, reverse bool) (int, error) {
	span1, span2 := script.Spans()
	if span1 > len(seq1) || span2 > len(seq2) {
		return 0, cerrors.Wrapf(edit.ErrScriptOverrun, "script spans (%d, %d) but sequences hold (%d, %d)", span1, span2, len(seq1), len(seq2))
	}

	s := p.scale()
	pair := newSequencePair(seq1, seq2, reverse)
	affine := p.UsesGapPenalties()

	var total, i, j int
	for _, op := range script.Ops() {
		switch op.Kind {
		case edit.KindReplace:
			for n := 0; n < op.Len; n++ {
				if pair.equal(i+n, j+n) {
					total += s.match
				} else {
					total -= s.mismatch
				}
			}
			i += op.Len
			j += op.Len
		case edit.KindInsert, edit.KindDelete:
			if affine {
				total -= s.gapOpen + s.gapExtend*op.Len
			} else {
				total -= s.linearGapResidue() * op.Len
			}
			if op.Kind == edit.KindInsert {
				j += op.Len
			} else {
				i += op.Len
			}
		default:
			return 0, cerrors.AssertionFailedf("unknown edit operation kind %s", op.Kind)
		}
	}

	return total / s.factor, nil
}

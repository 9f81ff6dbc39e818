package extend

import (
	"context"

	"github.com/bioarsenal/greedy/edit"
	"github.com/bioarsenal/greedy/greedy"
)

// Aligner runs one greedy alignment outward from the origin of two sequences. *greedy.Aligner
// satisfies it.
type Aligner interface {
	Align(ctx context.Context, seq1, seq2 []byte, reverse bool) (*greedy.Result, error)
}

var _ Aligner = &greedy.Aligner{}

// Seed is a pair of offsets, one into the query and one into the subject, at which the two
// sequences are believed to align
type Seed struct {
	QueryOffset   int
	SubjectOffset int
}

// Diagonal is the subject offset minus the query offset
func (s Seed) Diagonal() int {
	return s.SubjectOffset - s.QueryOffset
}

// HSP is a gapped alignment found by extending a seed in both directions. Start offsets are
// inclusive and stop offsets exclusive.
type HSP struct {
	QueryStart   int
	QueryStop    int
	SubjectStart int
	SubjectStop  int
	Score        int
	// PercentIdentity is the share of alignment columns holding identical residues. It is only
	// computed when a traceback was requested.
	PercentIdentity float64
	// Script is nil unless a traceback was requested
	Script *edit.Script
	Seed   Seed
}

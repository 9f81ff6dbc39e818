package extend

import (
	"context"

	"github.com/bioarsenal/greedy/edit"
	"github.com/bioarsenal/greedy/residue"
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// Extender grows seeds into gapped alignments by running its Aligner leftward and rightward from
// each seed. An Extender holds scratch memory and is not safe for concurrent use.
type Extender struct {
	logger  *slog.Logger
	aligner Aligner
	scratch []byte
}

// NewExtender creates an Extender. A nil logger is replaced by slog.Default.
func NewExtender(logger *slog.Logger, aligner Aligner) *Extender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extender{
		logger:  logger,
		aligner: aligner,
	}
}

// Extend aligns query against subject in both directions from seed. The left half covers
// query[:seed.QueryOffset] and subject[:seed.SubjectOffset] read backwards from the seed; the
// right half starts at the seed offsets themselves. The HSP's score is the sum of both halves.
// With traceback set the HSP carries the joined edit script and its percent identity.
func (e *Extender) Extend(ctx context.Context, query, subject []byte, seed Seed, traceback bool) (*HSP, error) {
	if seed.QueryOffset < 0 || seed.QueryOffset > len(query) {
		return nil, cerrors.Wrapf(ErrSeedOutOfRange, "query offset %d of a %d residue query", seed.QueryOffset, len(query))
	}
	if seed.SubjectOffset < 0 || seed.SubjectOffset > len(subject) {
		return nil, cerrors.Wrapf(ErrSeedOutOfRange, "subject offset %d of a %d residue subject", seed.SubjectOffset, len(subject))
	}

	left, err := e.aligner.Align(ctx, query[:seed.QueryOffset], subject[:seed.SubjectOffset], true)
	if err != nil {
		return nil, cerrors.Wrapf(err, "extending seed (%d, %d) left", seed.QueryOffset, seed.SubjectOffset)
	}
	right, err := e.aligner.Align(ctx, query[seed.QueryOffset:], subject[seed.SubjectOffset:], false)
	if err != nil {
		return nil, cerrors.Wrapf(err, "extending seed (%d, %d) right", seed.QueryOffset, seed.SubjectOffset)
	}

	hsp := &HSP{
		QueryStart:   seed.QueryOffset - left.End1,
		QueryStop:    seed.QueryOffset + right.End1,
		SubjectStart: seed.SubjectOffset - left.End2,
		SubjectStop:  seed.SubjectOffset + right.End2,
		Score:        left.Score + right.Score,
		Seed:         seed,
	}

	if traceback {
		script := left.Script
		script.Reverse()
		script.AppendScript(right.Script)

		hsp.Script = script
		hsp.PercentIdentity = percentIdentity(script, query[hsp.QueryStart:hsp.QueryStop], subject[hsp.SubjectStart:hsp.SubjectStop])
	}

	return hsp, nil
}

// ExtendPacked is Extend for a subject stored as packed 2-bit codes. The query must hold the
// same codes, as produced by residue.Encode. subjectLen is the number of residues in the packed
// subject.
func (e *Extender) ExtendPacked(ctx context.Context, query, packedSubject []byte, subjectLen int, seed Seed, traceback bool) (*HSP, error) {
	subject, err := residue.Unpack(packedSubject, 0, subjectLen, e.scratch)
	if err != nil {
		return nil, err
	}
	e.scratch = subject

	return e.Extend(ctx, query, subject, seed, traceback)
}

// ExtendSeeds extends each seed in order, skipping seeds that fall inside an HSP already found
// on the same diagonal
func (e *Extender) ExtendSeeds(ctx context.Context, query, subject []byte, seeds []Seed, traceback bool) ([]*HSP, error) {
	table := NewDiagonalTable(len(seeds))
	var hsps []*HSP

	for _, seed := range seeds {
		if table.Covered(seed) {
			e.logger.LogAttrs(ctx, slog.LevelDebug, "Extender::ExtendSeeds skipping covered seed",
				slog.Int("QueryOffset", seed.QueryOffset),
				slog.Int("SubjectOffset", seed.SubjectOffset))
			continue
		}

		hsp, err := e.Extend(ctx, query, subject, seed, traceback)
		if err != nil {
			return hsps, err
		}
		table.Record(hsp)
		hsps = append(hsps, hsp)
	}

	return hsps, nil
}

func percentIdentity(script *edit.Script, query, subject []byte) float64 {
	columns := 0
	for _, op := range script.Ops() {
		columns += op.Len
	}
	if columns == 0 {
		return 0
	}
	return 100 * float64(edit.Identities(script, query, subject)) / float64(columns)
}

package greedy

import (
	"context"

	"github.com/bioarsenal/greedy/edit"
	cerrors "github.com/cockroachdb/errors"
)

// affineUnits are the affine penalties in multiples of their greatest common divisor, so that
// every path cost is a whole number of rows
type affineUnits struct {
	unit     int
	mismatch int
	extend   int
	openExt  int
}

func (s scoring) affineUnits() affineUnits {
	mismatch := s.match + s.mismatch
	extend := s.gapExtend + s.halfMatch
	unit := gcd(gcd(mismatch, extend), s.gapOpen)

	return affineUnits{
		unit:     unit,
		mismatch: mismatch / unit,
		extend:   extend / unit,
		openExt:  (s.gapOpen + extend) / unit,
	}
}

// reducesToLinear reports whether the affine costs charge every gap residue exactly what the
// linear driver charges, in which case both drivers find the same alignment
func (s scoring) reducesToLinear() bool {
	return s.gapOpen == 0 && (s.gapExtend == 0 || s.gapExtend == s.linearGapResidue())
}

type affineState int

const (
	stateMatch affineState = iota
	stateInsertion
	stateDeletion
)

// affineSources are the three earlier cost rows a cell of the affine recurrence draws from
type affineSources struct {
	mismatch affineWave
	extend   affineWave
	open     affineWave
}

func (c *Context) affineRow(d int) affineWave {
	if d < 0 {
		return affineWave{}
	}
	return c.affineWaves[d]
}

func (c *Context) affineSources(d int, units affineUnits) affineSources {
	return affineSources{
		mismatch: c.affineRow(d - units.mismatch),
		extend:   c.affineRow(d - units.extend),
		open:     c.affineRow(d - units.openExt),
	}
}

// affineInsertion returns the furthest row diagonal k reaches with a path ending in an insertion,
// and whether that insertion extends an existing gap. Extension wins ties.
func (c *Context) affineInsertion(pair *sequencePair, src affineSources, k int) (int32, bool) {
	row := c.unreached
	extended := false

	if r := src.extend.at(k+1, c.unreached).Insertion; r != c.unreached && int(r)-(k+1) < pair.len2 {
		row = r
		extended = true
	}
	if r := src.open.at(k+1, c.unreached).Match; r != c.unreached && int(r)-(k+1) < pair.len2 && r > row {
		row = r
		extended = false
	}

	return row, extended
}

// affineDeletion returns the furthest row diagonal k reaches with a path ending in a deletion,
// and whether that deletion extends an existing gap. Extension wins ties.
func (c *Context) affineDeletion(pair *sequencePair, src affineSources, k int) (int32, bool) {
	row := c.unreached
	extended := false

	if r := src.extend.at(k-1, c.unreached).Deletion; r != c.unreached && int(r) < pair.len1 {
		row = r + 1
		extended = true
	}
	if r := src.open.at(k-1, c.unreached).Match; r != c.unreached && int(r) < pair.len1 && r+1 > row {
		row = r + 1
		extended = false
	}

	return row, extended
}

// affineMatch returns the furthest row diagonal k reaches, before sliding along matches, with a
// path ending in any state, and the state it ends in. Deletion is tried first, then a mismatch,
// then insertion; a later state only replaces an earlier one when it reaches strictly further.
func (c *Context) affineMatch(pair *sequencePair, src affineSources, k int, insertion, deletion int32) (int32, affineState) {
	row := deletion
	state := stateDeletion

	if r := src.mismatch.at(k, c.unreached).Match; r != c.unreached && int(r) < pair.len1 && int(r)-k < pair.len2 && r+1 > row {
		row = r + 1
		state = stateMatch
	}
	if insertion > row {
		row = insertion
		state = stateInsertion
	}

	return row, state
}

// AlignAffine performs a greedy X-drop alignment of seq1 against seq2 with affine gap costs:
// a gap of n residues scores -(GapOpen + n*GapExtend). Parameters that make every gap residue
// cost the same as in the linear model are delegated to Align. Coordinates, reverse handling
// and errors follow Align.
func (c *Context) AlignAffine(ctx context.Context, seq1, seq2 []byte, reverse bool, p Params) (*Result, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	s := p.scale()
	if s.reducesToLinear() {
		return c.Align(ctx, seq1, seq2, reverse, p)
	}

	err = c.begin(seq1, seq2)
	if err != nil {
		return nil, err
	}

	if len(seq1) == 0 || len(seq2) == 0 {
		return trivial(), nil
	}

	return c.alignAffine(ctx, newSequencePair(seq1, seq2, reverse), s)
}

func (c *Context) alignAffine(ctx context.Context, pair sequencePair, s scoring) (*Result, error) {
	units := s.affineUnits()
	dDiff := ceilDiv(s.xDrop+s.halfMatch, units.unit)
	// Rows further back than reach can't feed the recurrence
	reach := maxOf(units.mismatch, units.openExt)
	maxRounds := (maxOf(pair.len1, pair.len2)/c.config.ErrorFraction + 1) * reach

	start := pair.slide(0, 0)
	if start == pair.len1 || start == pair.len2 {
		script := edit.NewScript()
		script.Append(edit.KindReplace, start)
		return &Result{
			End1:   start,
			End2:   start,
			Score:  start * s.match / s.factor,
			Script: script,
		}, nil
	}

	origin, err := c.acquireTriples(1)
	if err != nil {
		return nil, c.abort(ctx, err, bestPoint{}, s)
	}
	origin[0] = CostTriple{Insertion: c.unreached, Match: int32(start), Deletion: c.unreached}
	c.affineWaves = append(c.affineWaves, affineWave{cells: origin})

	best := bestPoint{i: start, score: start * s.match}
	c.best = append(c.best, best.score)

	emptyRows := 0
	for d := 1; d <= maxRounds && emptyRows < reach; d++ {
		if err := ctx.Err(); err != nil {
			return nil, c.abort(ctx, err, best, s)
		}

		src := c.affineSources(d, units)
		c.best = append(c.best, best.score)
		if src.mismatch.empty() && src.extend.empty() && src.open.empty() {
			c.affineWaves = append(c.affineWaves, affineWave{})
			emptyRows++
			continue
		}

		lower, upper := affineBounds(src)
		cells, err := c.acquireTriples(upper - lower + 1)
		if err != nil {
			return nil, c.abort(ctx, err, best, s)
		}

		threshold := c.bestBefore(d-dDiff) - s.xDrop
		pruned := func(row int32, k int) int32 {
			if row == c.unreached || (2*int(row)-k)*s.halfMatch-d*units.unit < threshold {
				return c.unreached
			}
			return row
		}

		liveLower, liveUpper := upper+1, lower-1
		for k := lower; k <= upper; k++ {
			insertion, _ := c.affineInsertion(&pair, src, k)
			deletion, _ := c.affineDeletion(&pair, src, k)
			match, _ := c.affineMatch(&pair, src, k, insertion, deletion)

			match = pruned(match, k)
			if match == c.unreached {
				cells[k-lower] = CostTriple{Insertion: c.unreached, Match: c.unreached, Deletion: c.unreached}
				continue
			}

			i := pair.slide(int(match), int(match)-k)
			cells[k-lower] = CostTriple{
				Insertion: pruned(insertion, k),
				Match:     int32(i),
				Deletion:  pruned(deletion, k),
			}

			if k < liveLower {
				liveLower = k
			}
			liveUpper = k

			score := (2*i-k)*s.halfMatch - d*units.unit
			if score > best.score {
				best = bestPoint{d: d, k: k, i: i, score: score}
				c.best[d] = score
			}
		}

		if liveLower > liveUpper {
			c.affineWaves = append(c.affineWaves, affineWave{})
			emptyRows++
			continue
		}

		emptyRows = 0
		c.affineWaves = append(c.affineWaves, affineWave{
			lower: liveLower,
			upper: liveUpper,
			cells: cells[liveLower-lower : liveUpper-lower+1],
		})
	}

	script, distance, err := c.affineTraceback(&pair, best, units)
	if err != nil {
		return nil, err
	}

	return &Result{
		End1:     best.i,
		End2:     best.i - best.k,
		Score:    best.score / s.factor,
		Distance: distance,
		Script:   script,
	}, nil
}

// affineBounds returns the diagonal range a new cost row can occupy: a mismatch stays on its
// diagonal while a gap moves one diagonal in either direction
func affineBounds(src affineSources) (int, int) {
	lower, upper := 0, 0
	first := true

	widen := func(l, u int) {
		if first || l < lower {
			lower = l
		}
		if first || u > upper {
			upper = u
		}
		first = false
	}

	if !src.mismatch.empty() {
		widen(src.mismatch.lower, src.mismatch.upper)
	}
	if !src.extend.empty() {
		widen(src.extend.lower-1, src.extend.upper+1)
	}
	if !src.open.empty() {
		widen(src.open.lower-1, src.open.upper+1)
	}

	return lower, upper
}

// affineTraceback rebuilds the edit script of the path ending at point by walking the state
// machine of the recurrence backwards, and counts the mismatches and gap residues on the path
func (c *Context) affineTraceback(pair *sequencePair, point bestPoint, units affineUnits) (*edit.Script, int, error) {
	script := edit.NewScript()
	d, k, i := point.d, point.k, point.i
	state := stateMatch
	distance := 0

	for d > 0 {
		src := c.affineSources(d, units)

		switch state {
		case stateMatch:
			insertion, _ := c.affineInsertion(pair, src, k)
			deletion, _ := c.affineDeletion(pair, src, k)
			row, from := c.affineMatch(pair, src, k, insertion, deletion)
			if row == c.unreached {
				return nil, 0, cerrors.AssertionFailedf("traceback reached unreached match cell on diagonal %d at cost %d", k, d)
			}

			pre := int(row)
			script.Append(edit.KindReplace, i-pre)
			i = pre
			state = from
			if from == stateMatch {
				script.Append(edit.KindReplace, 1)
				distance++
				i--
				d -= units.mismatch
			}

		case stateInsertion:
			row, extended := c.affineInsertion(pair, src, k)
			if row == c.unreached {
				return nil, 0, cerrors.AssertionFailedf("traceback reached unreached insertion cell on diagonal %d at cost %d", k, d)
			}

			script.Append(edit.KindInsert, 1)
			distance++
			k++
			if extended {
				d -= units.extend
			} else {
				d -= units.openExt
				state = stateMatch
			}

		case stateDeletion:
			row, extended := c.affineDeletion(pair, src, k)
			if row == c.unreached {
				return nil, 0, cerrors.AssertionFailedf("traceback reached unreached deletion cell on diagonal %d at cost %d", k, d)
			}

			script.Append(edit.KindDelete, 1)
			distance++
			k--
			i--
			if extended {
				d -= units.extend
			} else {
				d -= units.openExt
				state = stateMatch
			}
		}
	}

	if d != 0 || k != 0 || state != stateMatch {
		return nil, 0, cerrors.AssertionFailedf("traceback ended at cost %d on diagonal %d in state %d", d, k, state)
	}

	script.Append(edit.KindReplace, i)
	script.Reverse()
	return script, distance, nil
}

package greedy

import (
	"context"

	"github.com/bioarsenal/greedy/edit"
)

type linearMove int

const (
	linearNone linearMove = iota
	linearDeletion
	linearMismatch
	linearInsertion
)

// linearStep returns the furthest row diagonal k can reach with one more difference than prev,
// before sliding along matches, together with the move that reaches it. Deletion from k-1 is
// tried first, then a mismatch on k, then insertion from k+1; a later move only replaces an
// earlier one when it reaches strictly further.
func (c *Context) linearStep(pair *sequencePair, prev wave, k int) (int32, linearMove) {
	row := c.unreached
	move := linearNone

	if r := prev.at(k-1, c.unreached); r != c.unreached && int(r) < pair.len1 {
		row = r + 1
		move = linearDeletion
	}
	if r := prev.at(k, c.unreached); r != c.unreached && int(r) < pair.len1 && int(r)-k < pair.len2 && r+1 > row {
		row = r + 1
		move = linearMismatch
	}
	if r := prev.at(k+1, c.unreached); r != c.unreached && int(r)-(k+1) < pair.len2 && r > row {
		row = r
		move = linearInsertion
	}

	return row, move
}

// Align performs a greedy X-drop alignment of seq1 against seq2 where mismatches and gap residues
// are each charged as one difference. The alignment starts at offset zero of both sequences, or
// at their ends when reverse is set, and ends at the highest scoring point found. In the reverse
// case End1, End2 and the edit script describe the alignment of the reversed sequences.
//
// The returned error is ErrInvalidParams or ErrContextDestroyed when nothing was computed, and an
// *AbortError when the search stopped early because ctx was cancelled or a round exceeded
// Config.MaxSpace.
func (c *Context) Align(ctx context.Context, seq1, seq2 []byte, reverse bool, p Params) (*Result, error) {
	err := p.validateLinear()
	if err != nil {
		return nil, err
	}
	err = c.begin(seq1, seq2)
	if err != nil {
		return nil, err
	}

	if len(seq1) == 0 || len(seq2) == 0 {
		return trivial(), nil
	}

	return c.alignLinear(ctx, newSequencePair(seq1, seq2, reverse), p.scale())
}

func (c *Context) alignLinear(ctx context.Context, pair sequencePair, s scoring) (*Result, error) {
	opCost := s.match + s.mismatch
	dDiff := ceilDiv(s.xDrop+s.halfMatch, opCost)
	maxD := maxOf(pair.len1, pair.len2)/c.config.ErrorFraction + 1

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

	origin, err := c.acquireRows(1)
	if err != nil {
		return nil, c.abort(ctx, err, bestPoint{}, s)
	}
	origin[0] = int32(start)
	c.waves = append(c.waves, wave{rows: origin})

	best := bestPoint{i: start, score: start * s.match}
	c.best = append(c.best, best.score)

	for d := 1; d <= maxD; d++ {
		if err := ctx.Err(); err != nil {
			return nil, c.abort(ctx, err, best, s)
		}

		// The previous wave is copied out because appending this round may move c.waves
		prev := c.waves[d-1]
		threshold := c.bestBefore(d-dDiff) - s.xDrop
		lower, upper := prev.lower-1, prev.upper+1

		rows, err := c.acquireRows(upper - lower + 1)
		if err != nil {
			return nil, c.abort(ctx, err, best, s)
		}

		liveLower, liveUpper := upper+1, lower-1
		for k := lower; k <= upper; k++ {
			row, _ := c.linearStep(&pair, prev, k)
			if row == c.unreached || (2*int(row)-k)*s.halfMatch-d*opCost < threshold {
				rows[k-lower] = c.unreached
				continue
			}

			i := pair.slide(int(row), int(row)-k)
			rows[k-lower] = int32(i)

			if k < liveLower {
				liveLower = k
			}
			liveUpper = k

			score := (2*i-k)*s.halfMatch - d*opCost
			if score > best.score {
				best = bestPoint{d: d, k: k, i: i, score: score}
			}
		}

		c.best = append(c.best, best.score)
		if liveLower > liveUpper {
			c.waves = append(c.waves, wave{lower: lower, upper: lower - 1})
			break
		}
		c.waves = append(c.waves, wave{
			lower: liveLower,
			upper: liveUpper,
			rows:  rows[liveLower-lower : liveUpper-lower+1],
		})
	}

	return &Result{
		End1:     best.i,
		End2:     best.i - best.k,
		Score:    best.score / s.factor,
		Distance: best.d,
		Script:   c.linearTraceback(&pair, best),
	}, nil
}

// linearTraceback rebuilds the edit script of the path ending at point by recomputing the move
// that produced each wavefront cell
func (c *Context) linearTraceback(pair *sequencePair, point bestPoint) *edit.Script {
	script := edit.NewScript()
	k, i := point.k, point.i

	for d := point.d; d > 0; d-- {
		row, move := c.linearStep(pair, c.waves[d-1], k)
		pre := int(row)
		script.Append(edit.KindReplace, i-pre)

		switch move {
		case linearDeletion:
			script.Append(edit.KindDelete, 1)
			k--
			i = pre - 1
		case linearMismatch:
			script.Append(edit.KindReplace, 1)
			i = pre - 1
		case linearInsertion:
			script.Append(edit.KindInsert, 1)
			k++
			i = pre
		default:
			panic("greedy: traceback reached an unreached diagonal")
		}
	}

	script.Append(edit.KindReplace, i)
	script.Reverse()
	return script
}

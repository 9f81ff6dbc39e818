package extend

import (
	"github.com/dolthub/swiss"
)

type coveredSpan struct {
	start int
	stop  int
}

// DiagonalTable remembers, per diagonal, the subject span already covered by an HSP so that
// seeds falling inside it are not extended again
type DiagonalTable struct {
	spans *swiss.Map[int, coveredSpan]
}

// NewDiagonalTable creates an empty table sized for roughly capacity diagonals
func NewDiagonalTable(capacity int) *DiagonalTable {
	if capacity < 1 {
		capacity = 1
	}
	return &DiagonalTable{
		spans: swiss.NewMap[int, coveredSpan](uint32(capacity)),
	}
}

// Record marks the subject span of hsp as covered on the diagonal of its seed and on the
// diagonal it ends on, which differ when the alignment is gapped
func (t *DiagonalTable) Record(hsp *HSP) {
	t.widen(hsp.Seed.Diagonal(), hsp.SubjectStart, hsp.SubjectStop)

	endDiagonal := hsp.SubjectStop - hsp.QueryStop
	if endDiagonal != hsp.Seed.Diagonal() {
		t.widen(endDiagonal, hsp.SubjectStart, hsp.SubjectStop)
	}
}

func (t *DiagonalTable) widen(diagonal, start, stop int) {
	span, ok := t.spans.Get(diagonal)
	if ok {
		if span.start < start {
			start = span.start
		}
		if span.stop > stop {
			stop = span.stop
		}
	}
	t.spans.Put(diagonal, coveredSpan{start: start, stop: stop})
}

// Covered reports whether the seed's subject offset lies inside a span recorded on its diagonal
func (t *DiagonalTable) Covered(seed Seed) bool {
	span, ok := t.spans.Get(seed.Diagonal())
	return ok && seed.SubjectOffset >= span.start && seed.SubjectOffset < span.stop
}

// Diagonals returns the number of diagonals holding a covered span
func (t *DiagonalTable) Diagonals() int {
	return t.spans.Count()
}

// Clear forgets every recorded span
func (t *DiagonalTable) Clear() {
	t.spans.Clear()
}

package edit

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Script is an ordered, append-only log of run-length edit operations. Adjacent operations of
// the same kind are always merged, so a Script built through Append and AppendScript never
// contains two neighboring runs of the same Kind.
//
// The zero value is an empty script ready for use.
type Script struct {
	ops []Op
}

// NewScript creates an empty script
func NewScript() *Script {
	return &Script{}
}

// Append adds a run of n operations of the provided kind. If the last operation in the script
// has the same kind, its run is extended in place. Runs with n <= 0 are ignored.
func (s *Script) Append(kind Kind, n int) {
	if n <= 0 {
		return
	}

	last := len(s.ops) - 1
	if last >= 0 && s.ops[last].Kind == kind {
		s.ops[last].Len += n
		return
	}

	s.ops = append(s.ops, Op{Kind: kind, Len: n})
}

// AppendScript concatenates src onto this script. A same-kind run at the join point is always
// merged. src is consumed: it is empty when this method returns.
func (s *Script) AppendScript(src *Script) {
	if src == nil || src == s || len(src.ops) == 0 {
		return
	}

	ops := src.ops
	last := len(s.ops) - 1
	if last >= 0 && s.ops[last].Kind == ops[0].Kind {
		s.ops[last].Len += ops[0].Len
		ops = ops[1:]
	}

	s.ops = slices.Grow(s.ops, len(ops))
	s.ops = append(s.ops, ops...)
	src.Free()
}

// Reverse flips the order of the operations in the script. Scripts produced by a
// reverse-direction alignment are listed from the alignment origin outward and must be
// reversed before being joined with a forward script.
func (s *Script) Reverse() {
	for i, j := 0, len(s.ops)-1; i < j; i, j = i+1, j-1 {
		s.ops[i], s.ops[j] = s.ops[j], s.ops[i]
	}
}

// Reset empties the script but retains its storage
func (s *Script) Reset() {
	s.ops = s.ops[:0]
}

// Free empties the script and releases its storage
func (s *Script) Free() {
	s.ops = nil
}

// Len returns the number of runs in the script
func (s *Script) Len() int {
	return len(s.ops)
}

// Ops returns the runs in the script. The returned slice must not be modified.
func (s *Script) Ops() []Op {
	return s.ops
}

// Last returns the final run of the script, if any
func (s *Script) Last() (Op, bool) {
	if len(s.ops) == 0 {
		return Op{}, false
	}
	return s.ops[len(s.ops)-1], true
}

// Clone returns an independent copy of the script
func (s *Script) Clone() *Script {
	return &Script{ops: slices.Clone(s.ops)}
}

// Spans returns the number of residues of the first and second sequence covered by the script
func (s *Script) Spans() (seq1, seq2 int) {
	for _, op := range s.ops {
		c1, c2 := op.Kind.Consumes()
		seq1 += c1 * op.Len
		seq2 += c2 * op.Len
	}
	return seq1, seq2
}

// String renders the script in CIGAR form, e.g. "4M1D3M". An empty script renders as "".
func (s *Script) String() string {
	var sb strings.Builder
	for _, op := range s.ops {
		sb.WriteString(op.String())
	}
	return sb.String()
}

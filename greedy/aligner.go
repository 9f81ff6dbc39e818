package greedy

import "context"

// Aligner binds a Context to one set of scoring parameters. It shares the Context's restriction
// on concurrent use.
type Aligner struct {
	context *Context
	params  Params
}

// NewAligner creates an Aligner that runs every alignment on c with the parameters p
func NewAligner(c *Context, p Params) *Aligner {
	return &Aligner{
		context: c,
		params:  p,
	}
}

// Context returns the Context every alignment runs on
func (a *Aligner) Context() *Context { return a.context }

// Params returns the scoring parameters bound to the Aligner
func (a *Aligner) Params() Params { return a.params }

// Align runs the affine driver when the parameters carry gap penalties and the linear driver
// otherwise
func (a *Aligner) Align(ctx context.Context, seq1, seq2 []byte, reverse bool) (*Result, error) {
	if a.params.UsesGapPenalties() {
		return a.context.AlignAffine(ctx, seq1, seq2, reverse, a.params)
	}
	return a.context.Align(ctx, seq1, seq2, reverse, a.params)
}

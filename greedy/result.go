package greedy

import (
	"github.com/bioarsenal/greedy/edit"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Result is a completed greedy alignment. End1 and End2 are one past the last aligned residue of
// each sequence, counted from the alignment origin.
type Result struct {
	End1  int
	End2  int
	Score int
	// Distance is the number of mismatched residue pairs plus the number of gap residues
	Distance int
	Script   *edit.Script
}

// WriteJSON populates a json object with the alignment's coordinates, score and edit script
func (r *Result) WriteJSON(json jwriter.ObjectState) {
	json.Name("End1").Int(r.End1)
	json.Name("End2").Int(r.End2)
	json.Name("Score").Int(r.Score)
	json.Name("Distance").Int(r.Distance)
	json.Name("CIGAR").String(r.Script.String())
}

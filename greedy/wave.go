package greedy

// CostTriple is the affine state of one diagonal: the furthest seq1 row reached by a path ending
// in an insertion run, in a match or mismatch, and in a deletion run
type CostTriple struct {
	Insertion int32
	Match     int32
	Deletion  int32
}

// wave holds the furthest row reached on each diagonal in [lower, upper] for one difference
// round of the linear driver. Diagonal k is the set of cells where the seq1 offset minus the
// seq2 offset equals k.
type wave struct {
	lower int
	upper int
	rows  []int32
}

func (w wave) empty() bool {
	return len(w.rows) == 0
}

// at returns the row stored for diagonal k, or unreached if k is outside the wave
func (w wave) at(k int, unreached int32) int32 {
	if k < w.lower || k > w.upper || w.empty() {
		return unreached
	}
	return w.rows[k-w.lower]
}

// affineWave holds the affine state of every diagonal in [lower, upper] for one cost row of the
// affine driver
type affineWave struct {
	lower int
	upper int
	cells []CostTriple
}

func (w affineWave) empty() bool {
	return len(w.cells) == 0
}

func (w affineWave) at(k int, unreached int32) CostTriple {
	if k < w.lower || k > w.upper || w.empty() {
		return CostTriple{Insertion: unreached, Match: unreached, Deletion: unreached}
	}
	return w.cells[k-w.lower]
}

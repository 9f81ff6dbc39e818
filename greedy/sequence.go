package greedy

// sequencePair gives the drivers direction-independent access to the two sequences. Offsets
// always count from the alignment origin: the start of both sequences for a forward alignment
// and their ends for a reverse alignment.
type sequencePair struct {
	seq1    []byte
	seq2    []byte
	len1    int
	len2    int
	reverse bool
}

func newSequencePair(seq1, seq2 []byte, reverse bool) sequencePair {
	return sequencePair{
		seq1:    seq1,
		seq2:    seq2,
		len1:    len(seq1),
		len2:    len(seq2),
		reverse: reverse,
	}
}

func (p *sequencePair) equal(i, j int) bool {
	if p.reverse {
		return p.seq1[p.len1-1-i] == p.seq2[p.len2-1-j]
	}
	return p.seq1[i] == p.seq2[j]
}

// slide follows the diagonal through (i, j) across matching residues and returns the first
// offset into seq1 at which the diagonal mismatches or either sequence ends
func (p *sequencePair) slide(i, j int) int {
	if p.reverse {
		for i < p.len1 && j < p.len2 && p.seq1[p.len1-1-i] == p.seq2[p.len2-1-j] {
			i++
			j++
		}
		return i
	}

	for i < p.len1 && j < p.len2 && p.seq1[i] == p.seq2[j] {
		i++
		j++
	}
	return i
}

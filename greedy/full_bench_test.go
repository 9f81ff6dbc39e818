package greedy_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/bioarsenal/greedy/greedy"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func benchmarkPair(length int) ([]byte, []byte) {
	rng := rand.New(rand.NewSource(3))
	seq1 := make([]byte, length)
	for i := range seq1 {
		seq1[i] = "ACGT"[rng.Intn(4)]
	}

	// One difference every 50 residues, alternating substitutions and deletions
	seq2 := make([]byte, 0, length)
	for i, residue := range seq1 {
		switch {
		case i%100 == 49:
			continue
		case i%100 == 99:
			substitute := residue
			for substitute == residue {
				substitute = "ACGT"[rng.Intn(4)]
			}
			seq2 = append(seq2, substitute)
		default:
			seq2 = append(seq2, residue)
		}
	}
	return seq1, seq2
}

func benchmarkAlign(b *testing.B, p greedy.Params, length int) {
	c, err := greedy.NewContext(slog.Default(), greedy.Config{})
	require.NoError(b, err)
	defer c.Destroy()

	aligner := greedy.NewAligner(c, p)
	seq1, seq2 := benchmarkPair(length)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err = aligner.Align(context.Background(), seq1, seq2, false)
		require.NoError(b, err)
	}
}

func BenchmarkAlignLinear(b *testing.B) {
	benchmarkAlign(b, greedy.Params{XDrop: 20, Match: 2, Mismatch: -3}, 10000)
}

func BenchmarkAlignAffine(b *testing.B) {
	benchmarkAlign(b, greedy.Params{XDrop: 20, Match: 2, Mismatch: -3, GapOpen: 5, GapExtend: 2}, 10000)
}

package main

import (
	"context"
	"testing"

	"github.com/bioarsenal/greedy/residue"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAlignCommand(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		subject     string
		reverse     bool
		gapOpen     int
		gapExtend   int
		stats       bool
		wantContain []string
	}{
		{
			name:        "linear deletion",
			query:       "ACGTTACGT",
			subject:     "ACGTACGT",
			wantContain: []string{"end:      9 8", "score:    12", "distance: 1", "cigar:    4M1D4M"},
		},
		{
			name:        "lowercase residues",
			query:       "acgttacgt",
			subject:     "ACGTACGT",
			wantContain: []string{"score:    12", "cigar:    4M1D4M"},
		},
		{
			name:        "reverse",
			query:       "GGACGTAC",
			subject:     "TTACGTAC",
			reverse:     true,
			wantContain: []string{"end:      6 6", "score:    12", "cigar:    6M"},
		},
		{
			name:        "affine deletion",
			query:       "ACGTTACGT",
			subject:     "ACGTACGT",
			gapOpen:     5,
			gapExtend:   2,
			wantContain: []string{"score:    9", "cigar:    4M1D4M"},
		},
		{
			name:        "statistics",
			query:       "ACGTTACGT",
			subject:     "ACGTACGT",
			stats:       true,
			wantContain: []string{"cigar:    4M1D4M", "blocks:   1 ("},
		},
		{
			name:        "statistics without a wavefront round",
			query:       "ACGT",
			subject:     "ACGT",
			stats:       true,
			wantContain: []string{"cigar:    4M", "blocks:   0 (0 cells, 0 acquired)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			xDrop = 10
			if tt.gapOpen != 0 || tt.gapExtend != 0 {
				xDrop = 20
			}
			gapOpen = tt.gapOpen
			gapExtend = tt.gapExtend
			alignReverse = tt.reverse
			alignStats = tt.stats
			alignQuery = writeFASTA(t, "query.fa", "q1", tt.query)
			alignSubject = writeFASTA(t, "subject.fa", "s1", tt.subject)

			output, err := captureOutput(t, func() error {
				return runAlign(context.Background())
			})
			require.NoError(t, err, "Output: %s", output)

			require.Contains(t, output, "query:    q1")
			require.Contains(t, output, "subject:  s1")
			for _, want := range tt.wantContain {
				require.Contains(t, output, want)
			}
		})
	}
}

func TestAlignCommandJSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	alignStats = true
	xDrop = 10
	alignQuery = writeFASTA(t, "query.fa", "q1", "ACGTTACGT", "q2", "GGGG")
	alignSubject = writeFASTA(t, "subject.fa", "s1", "ACGTACGT")

	output, err := captureOutput(t, func() error {
		return runAlign(context.Background())
	})
	require.NoError(t, err)

	decoded := decodeJSON(t, output)
	require.Equal(t, "q1", decoded["Query"])
	require.Equal(t, "s1", decoded["Subject"])
	require.Equal(t, false, decoded["Reverse"])

	result := decoded["Result"].(map[string]interface{})
	require.Equal(t, 9.0, result["End1"])
	require.Equal(t, 8.0, result["End2"])
	require.Equal(t, 12.0, result["Score"])
	require.Equal(t, 1.0, result["Distance"])
	require.Equal(t, "4M1D4M", result["CIGAR"])

	stats := decoded["Context"].(map[string]interface{})
	require.Equal(t, 1.0, stats["Alignments"])
	require.Contains(t, stats, "Rows")
}

func TestAlignCommandErrors(t *testing.T) {
	resetFlags()
	alignQuery = writeFASTA(t, "query.fa", "q1", "ACGN")
	alignSubject = writeFASTA(t, "subject.fa", "s1", "ACGT")
	_, err := captureOutput(t, func() error {
		return runAlign(context.Background())
	})
	require.True(t, errors.Is(err, residue.ErrInvalidResidue))

	resetFlags()
	alignQuery = writeFASTA(t, "empty.fa")
	alignSubject = writeFASTA(t, "subject.fa", "s1", "ACGT")
	_, err = captureOutput(t, func() error {
		return runAlign(context.Background())
	})
	require.ErrorContains(t, err, "holds no sequences")

	resetFlags()
	alignQuery = "does-not-exist.fa"
	_, err = captureOutput(t, func() error {
		return runAlign(context.Background())
	})
	require.Error(t, err)

	resetFlags()
	mismatch = 1
	alignQuery = writeFASTA(t, "query.fa", "q1", "ACGT")
	alignSubject = writeFASTA(t, "subject.fa", "s1", "ACGT")
	_, err = captureOutput(t, func() error {
		return runAlign(context.Background())
	})
	require.ErrorContains(t, err, "Mismatch")
}

package main

import (
	"context"
	"strings"
	"testing"

	"github.com/bioarsenal/greedy/extend"
	"github.com/stretchr/testify/require"
)

const extendQueryResidues = "ACGTTGCAAGCTTAGC"

func TestParseSeed(t *testing.T) {
	seed, err := parseSeed("12:40")
	require.NoError(t, err)
	require.Equal(t, extend.Seed{QueryOffset: 12, SubjectOffset: 40}, seed)

	for _, text := range []string{"12", "a:1", "1:b", ""} {
		_, err := parseSeed(text)
		require.Error(t, err, text)
	}
}

func TestExtendCommand(t *testing.T) {
	tests := []struct {
		name        string
		seeds       []string
		workers     int
		noTraceback bool
		wantLines   int
		wantContain []string
	}{
		{
			name:        "both copies",
			seeds:       []string{"0:20", "0:0", "5:5", "8:28"},
			workers:     3,
			wantLines:   3,
			wantContain: []string{"0\t16\t0\t16\t32\t100.00\t16M", "0\t16\t20\t36\t32\t100.00\t16M"},
		},
		{
			name:        "without traceback",
			seeds:       []string{"3:23"},
			workers:     1,
			noTraceback: true,
			wantLines:   2,
			wantContain: []string{"0\t16\t20\t36\t32\t0.00\t-"},
		},
		{
			name:      "no seeds",
			workers:   2,
			wantLines: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			xDrop = 10
			extendSeeds = tt.seeds
			extendWorkers = tt.workers
			extendNoTraceback = tt.noTraceback
			extendQuery = writeFASTA(t, "query.fa", "q1", extendQueryResidues)
			extendSubject = writeFASTA(t, "subject.fa", "s1", extendQueryResidues+"TTTT"+extendQueryResidues)

			output, err := captureOutput(t, func() error {
				return runExtend(context.Background())
			})
			require.NoError(t, err, "Output: %s", output)

			lines := strings.Split(strings.TrimSpace(output), "\n")
			require.Len(t, lines, tt.wantLines)
			require.True(t, strings.HasPrefix(lines[0], "qstart"))
			for _, want := range tt.wantContain {
				require.Contains(t, output, want)
			}
		})
	}
}

func TestExtendCommandJSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	xDrop = 10
	extendSeeds = []string{"0:0", "4:24"}
	extendWorkers = 2
	extendQuery = writeFASTA(t, "query.fa", "q1", extendQueryResidues)
	extendSubject = writeFASTA(t, "subject.fa", "s1", extendQueryResidues+"TTTT"+extendQueryResidues)

	output, err := captureOutput(t, func() error {
		return runExtend(context.Background())
	})
	require.NoError(t, err)

	decoded := decodeJSON(t, output)
	require.Equal(t, "q1", decoded["Query"])

	hsps := decoded["HSPs"].([]interface{})
	require.Len(t, hsps, 2)

	first := hsps[0].(map[string]interface{})
	require.Equal(t, 0.0, first["SubjectStart"])
	require.Equal(t, 32.0, first["Score"])
	require.Equal(t, "16M", first["CIGAR"])
	require.Equal(t, 100.0, first["PercentIdentity"])

	ops := first["Ops"].([]interface{})
	require.Len(t, ops, 1)
	require.Equal(t, map[string]interface{}{"Op": "M", "Len": 16.0}, ops[0])

	second := hsps[1].(map[string]interface{})
	require.Equal(t, 20.0, second["SubjectStart"])
	seed := second["Seed"].(map[string]interface{})
	require.Equal(t, 4.0, seed["QueryOffset"])
	require.Equal(t, 24.0, seed["SubjectOffset"])
}

func TestExtendCommandErrors(t *testing.T) {
	resetFlags()
	extendSeeds = []string{"bad"}
	_, err := captureOutput(t, func() error {
		return runExtend(context.Background())
	})
	require.ErrorContains(t, err, "bad")

	resetFlags()
	extendSeeds = []string{"50:0"}
	extendQuery = writeFASTA(t, "query.fa", "q1", "ACGT")
	extendSubject = writeFASTA(t, "subject.fa", "s1", "ACGT")
	_, err = captureOutput(t, func() error {
		return runExtend(context.Background())
	})
	require.ErrorIs(t, err, extend.ErrSeedOutOfRange)
}

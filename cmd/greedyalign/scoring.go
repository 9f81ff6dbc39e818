package main

import (
	"github.com/bioarsenal/greedy/greedy"
	"github.com/spf13/cobra"
)

// Scoring and context flags shared by align and extend
var (
	xDrop     int
	match     int
	mismatch  int
	gapOpen   int
	gapExtend int
	maxSpace  int
)

func addScoringFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&xDrop, "xdrop", 20, "Largest score drop below the best score before a path is abandoned")
	cmd.Flags().IntVar(&match, "match", 2, "Score of identical residues (positive)")
	cmd.Flags().IntVar(&mismatch, "mismatch", -3, "Score of differing residues (negative)")
	cmd.Flags().IntVar(&gapOpen, "gap-open", 0, "Penalty charged once per gap; enables affine gaps")
	cmd.Flags().IntVar(&gapExtend, "gap-extend", 0, "Penalty charged per gap residue; enables affine gaps")
	cmd.Flags().IntVar(&maxSpace, "max-space", greedy.DefaultMaxSpace, "Largest number of diagonal cells one round may use")
}

func resetScoringFlags() {
	xDrop = 20
	match = 2
	mismatch = -3
	gapOpen = 0
	gapExtend = 0
	maxSpace = greedy.DefaultMaxSpace
}

func scoringParams() greedy.Params {
	return greedy.Params{
		XDrop:     xDrop,
		Match:     match,
		Mismatch:  mismatch,
		GapOpen:   gapOpen,
		GapExtend: gapExtend,
	}
}

func contextConfig() greedy.Config {
	return greedy.Config{MaxSpace: maxSpace}
}

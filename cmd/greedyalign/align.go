package main

import (
	"context"
	"fmt"

	"github.com/bioarsenal/greedy/greedy"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/spf13/cobra"
)

var (
	alignQuery   string
	alignSubject string
	alignReverse bool
	alignStats   bool
)

func init() {
	cmd := newAlignCmd()
	cmd.Flags().StringVar(&alignQuery, "query", "", "FASTA file holding the first sequence")
	cmd.Flags().StringVar(&alignSubject, "subject", "", "FASTA file holding the second sequence")
	cmd.Flags().BoolVar(&alignReverse, "reverse", false, "Align backwards from the ends of both sequences")
	cmd.Flags().BoolVar(&alignStats, "stats", false, "Report the aligner's configuration and memory use")
	addScoringFlags(cmd)
	_ = cmd.MarkFlagRequired("query")
	_ = cmd.MarkFlagRequired("subject")
	rootCmd.AddCommand(cmd)
}

func newAlignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align --query <fasta> --subject <fasta>",
		Short: "Align two sequences outward from their starts",
		Long: `The align command aligns the first sequence of each FASTA file, starting at the
beginning of both (or at their ends with --reverse) and stopping where the score
drops more than --xdrop below the best score seen. Setting --gap-open or
--gap-extend switches to affine gap costs.

Example:
  greedyalign align --query q.fa --subject s.fa
  greedyalign align --query q.fa --subject s.fa --gap-open 5 --gap-extend 2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd.Context())
		},
	}
	return cmd
}

func runAlign(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	query, err := readFirst(alignQuery)
	if err != nil {
		return err
	}
	subject, err := readFirst(alignSubject)
	if err != nil {
		return err
	}
	printVerbose("Aligning %s (%d) against %s (%d)\n", query.id, len(query.codes), subject.id, len(subject.codes))

	c, err := greedy.NewContext(newLogger(), contextConfig())
	if err != nil {
		return err
	}
	defer c.Destroy()

	result, err := greedy.NewAligner(c, scoringParams()).Align(ctx, query.codes, subject.codes, alignReverse)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(func(obj jwriter.ObjectState) {
			obj.Name("Query").String(query.id)
			obj.Name("Subject").String(subject.id)
			obj.Name("Reverse").Bool(alignReverse)

			res := obj.Name("Result").Object()
			result.WriteJSON(res)
			res.End()

			if alignStats {
				stats := obj.Name("Context").Object()
				c.WriteJSON(stats)
				stats.End()
			}
		})
	}

	fmt.Printf("query:    %s\n", query.id)
	fmt.Printf("subject:  %s\n", subject.id)
	fmt.Printf("end:      %d %d\n", result.End1, result.End2)
	fmt.Printf("score:    %d\n", result.Score)
	fmt.Printf("distance: %d\n", result.Distance)
	fmt.Printf("cigar:    %s\n", result.Script)
	if alignStats {
		stats := c.Statistics()
		fmt.Printf("blocks:   %d (%d cells, %d acquired)\n", stats.BlockCount, stats.BlockCells, stats.AcquiredCells)
	}
	return nil
}

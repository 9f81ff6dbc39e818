package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bioarsenal/greedy/extend"
	cerrors "github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/spf13/cobra"
)

var (
	extendQuery       string
	extendSubject     string
	extendSeeds       []string
	extendWorkers     int
	extendNoTraceback bool
)

func init() {
	cmd := newExtendCmd()
	cmd.Flags().StringVar(&extendQuery, "query", "", "FASTA file holding the query")
	cmd.Flags().StringVar(&extendSubject, "subject", "", "FASTA file holding the subject")
	cmd.Flags().StringArrayVar(&extendSeeds, "seed", nil, "Seed as <query offset>:<subject offset>; repeatable")
	cmd.Flags().IntVar(&extendWorkers, "workers", 1, "Number of seeds extended in parallel")
	cmd.Flags().BoolVar(&extendNoTraceback, "no-traceback", false, "Report coordinates and scores only")
	addScoringFlags(cmd)
	_ = cmd.MarkFlagRequired("query")
	_ = cmd.MarkFlagRequired("subject")
	rootCmd.AddCommand(cmd)
}

func newExtendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extend --query <fasta> --subject <fasta> --seed <q:s>...",
		Short: "Extend seeds into gapped alignments",
		Long: `The extend command grows each seed into a gapped alignment by aligning leftward
and rightward from it. Seeds that extend to the same alignment are reported once,
best score first.

Example:
  greedyalign extend --query q.fa --subject s.fa --seed 0:0 --seed 12:40
  greedyalign extend --query q.fa --subject s.fa --seed 5:5 --workers 4 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtend(cmd.Context())
		},
	}
	return cmd
}

// parseSeed parses "<query offset>:<subject offset>"
func parseSeed(text string) (extend.Seed, error) {
	q, s, found := strings.Cut(text, ":")
	if !found {
		return extend.Seed{}, cerrors.Newf("seed %q is not of the form <query offset>:<subject offset>", text)
	}
	queryOffset, err := strconv.Atoi(q)
	if err != nil {
		return extend.Seed{}, cerrors.Wrapf(err, "seed %q", text)
	}
	subjectOffset, err := strconv.Atoi(s)
	if err != nil {
		return extend.Seed{}, cerrors.Wrapf(err, "seed %q", text)
	}
	return extend.Seed{QueryOffset: queryOffset, SubjectOffset: subjectOffset}, nil
}

func runExtend(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	seeds := make([]extend.Seed, 0, len(extendSeeds))
	for _, text := range extendSeeds {
		seed, err := parseSeed(text)
		if err != nil {
			return err
		}
		seeds = append(seeds, seed)
	}

	query, err := readFirst(extendQuery)
	if err != nil {
		return err
	}
	subject, err := readFirst(extendSubject)
	if err != nil {
		return err
	}
	printVerbose("Extending %d seeds of %s against %s on %d workers\n", len(seeds), query.id, subject.id, extendWorkers)

	pool, err := extend.NewContextPool(newLogger(), extend.PoolOptions{Config: contextConfig()})
	if err != nil {
		return err
	}
	defer pool.Destroy()

	hsps, err := extend.ExtendAll(ctx, pool, scoringParams(), query.codes, subject.codes, seeds, extendWorkers, !extendNoTraceback)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(func(obj jwriter.ObjectState) {
			obj.Name("Query").String(query.id)
			obj.Name("Subject").String(subject.id)

			arr := obj.Name("HSPs").Array()
			for _, hsp := range hsps {
				entry := arr.Object()
				writeHSP(entry, hsp)
				entry.End()
			}
			arr.End()
		})
	}

	fmt.Println("qstart\tqstop\tsstart\tsstop\tscore\tpident\tcigar")
	for _, hsp := range hsps {
		cigar := "-"
		if hsp.Script != nil {
			cigar = hsp.Script.String()
		}
		fmt.Printf("%d\t%d\t%d\t%d\t%d\t%.2f\t%s\n",
			hsp.QueryStart, hsp.QueryStop, hsp.SubjectStart, hsp.SubjectStop, hsp.Score, hsp.PercentIdentity, cigar)
	}
	return nil
}

func writeHSP(obj jwriter.ObjectState, hsp *extend.HSP) {
	obj.Name("QueryStart").Int(hsp.QueryStart)
	obj.Name("QueryStop").Int(hsp.QueryStop)
	obj.Name("SubjectStart").Int(hsp.SubjectStart)
	obj.Name("SubjectStop").Int(hsp.SubjectStop)
	obj.Name("Score").Int(hsp.Score)

	seed := obj.Name("Seed").Object()
	seed.Name("QueryOffset").Int(hsp.Seed.QueryOffset)
	seed.Name("SubjectOffset").Int(hsp.Seed.SubjectOffset)
	seed.End()

	if hsp.Script != nil {
		obj.Name("PercentIdentity").Float64(hsp.PercentIdentity)
		obj.Name("CIGAR").String(hsp.Script.String())
		hsp.Script.WriteJSON(obj.Name("Ops"))
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "greedyalign",
	Short: "Greedy X-drop alignment of nucleotide sequences",
	Long: `greedyalign aligns nucleotide sequences read from FASTA files with a greedy
X-drop aligner. It can align two sequences outward from their starts or ends, and
extend seeds into gapped alignments in both directions.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log aligner activity to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger logs to stderr, at debug level when --verbose is set
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// printVerbose prints a message to stderr if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON writes one JSON object to stdout
func printJSON(populate func(obj jwriter.ObjectState)) error {
	writer := jwriter.NewWriter()
	obj := writer.Object()
	populate(obj)
	obj.End()

	if err := writer.Error(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(os.Stdout, string(writer.Bytes()))
	return err
}

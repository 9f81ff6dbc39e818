package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFASTA writes one FASTA file per call into the test's temporary directory. Entries are
// given as alternating ids and sequences.
func writeFASTA(t *testing.T, name string, entries ...string) string {
	t.Helper()
	require.Zero(t, len(entries)%2)

	var sb strings.Builder
	for i := 0; i < len(entries); i += 2 {
		sb.WriteString(">" + entries[i] + "\n")
		sb.WriteString(entries[i+1] + "\n")
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	return buf.String(), fnErr
}

// decodeJSON checks that output is a single JSON object and returns it
func decodeJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &result), "Output: %s", output)
	return result
}

func resetFlags() {
	verbose = false
	jsonOut = false
	resetScoringFlags()

	alignQuery = ""
	alignSubject = ""
	alignReverse = false
	alignStats = false

	extendQuery = ""
	extendSubject = ""
	extendSeeds = nil
	extendWorkers = 1
	extendNoTraceback = false
}

package main

import (
	"os"

	"github.com/bioarsenal/greedy/residue"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	cerrors "github.com/cockroachdb/errors"
)

// record is one FASTA entry with its residues encoded as 2-bit codes
type record struct {
	id    string
	codes []byte
}

// readFASTA reads every entry of a FASTA file. Letters other than A, C, G and T are rejected.
func readFASTA(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	var records []record
	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)

		letters := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			letters[i] = byte(l)
		}

		codes, err := residue.Encode(letters)
		if err != nil {
			return nil, cerrors.Wrapf(err, "%s: sequence %q", path, s.Name())
		}
		records = append(records, record{id: s.Name(), codes: codes})
	}
	if err := sc.Error(); err != nil {
		return nil, cerrors.Wrapf(err, "failed to read %s", path)
	}
	return records, nil
}

// readFirst returns the first entry of a FASTA file
func readFirst(path string) (record, error) {
	records, err := readFASTA(path)
	if err != nil {
		return record{}, err
	}
	if len(records) == 0 {
		return record{}, cerrors.Newf("%s holds no sequences", path)
	}
	return records[0], nil
}

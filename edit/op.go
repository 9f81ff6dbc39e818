package edit

import "fmt"

// Kind identifies the type of a run-length edit operation
type Kind uint8

const (
	// KindReplace aligns residues of both sequences against each other. The run may contain both
	// matches and mismatches.
	KindReplace Kind = iota + 1
	// KindInsert consumes residues from the second sequence only
	KindInsert
	// KindDelete consumes residues from the first sequence only
	KindDelete
)

var kindMapping = map[Kind]string{
	KindReplace: "KindReplace",
	KindInsert:  "KindInsert",
	KindDelete:  "KindDelete",
}

func (k Kind) String() string {
	str, ok := kindMapping[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return str
}

// CIGAR returns the single-letter CIGAR code for the kind
func (k Kind) CIGAR() byte {
	switch k {
	case KindReplace:
		return 'M'
	case KindInsert:
		return 'I'
	case KindDelete:
		return 'D'
	}
	return '?'
}

// Consumes reports how many residues of the first and second sequences a single unit of
// this kind consumes
func (k Kind) Consumes() (seq1, seq2 int) {
	switch k {
	case KindReplace:
		return 1, 1
	case KindInsert:
		return 0, 1
	case KindDelete:
		return 1, 0
	}
	return 0, 0
}

func kindFromCIGAR(b byte) (Kind, bool) {
	switch b {
	case 'M', '=', 'X':
		return KindReplace, true
	case 'I':
		return KindInsert, true
	case 'D':
		return KindDelete, true
	}
	return 0, false
}

// Op is a single run of edit operations of the same kind
type Op struct {
	Kind Kind
	Len  int
}

func (o Op) String() string {
	return fmt.Sprintf("%d%c", o.Len, o.Kind.CIGAR())
}

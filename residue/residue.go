package residue

import (
	cerrors "github.com/cockroachdb/errors"
)

// PerByte is the number of 2-bit residue codes packed into each byte
const PerByte int = 4

const letters = "ACGT"

// Encode converts nucleotide letters to the codes 0 through 3 for A, C, G and T. Lowercase
// letters are accepted; anything else fails with ErrInvalidResidue.
func Encode(seq []byte) ([]byte, error) {
	codes := make([]byte, len(seq))
	for index, letter := range seq {
		switch letter {
		case 'A', 'a':
			codes[index] = 0
		case 'C', 'c':
			codes[index] = 1
		case 'G', 'g':
			codes[index] = 2
		case 'T', 't':
			codes[index] = 3
		default:
			return nil, cerrors.Wrapf(ErrInvalidResidue, "letter %q at offset %d", letter, index)
		}
	}
	return codes, nil
}

// Decode converts codes produced by Encode back to uppercase letters. Only the low two bits of
// each code are read.
func Decode(codes []byte) []byte {
	seq := make([]byte, len(codes))
	for index, code := range codes {
		seq[index] = letters[code&3]
	}
	return seq
}

// Pack stores four codes per byte with the first residue in the two high bits. A trailing
// partial byte is padded with zero codes.
func Pack(codes []byte) []byte {
	packed := make([]byte, (len(codes)+PerByte-1)/PerByte)
	for index, code := range codes {
		shift := 6 - 2*(index%PerByte)
		packed[index/PerByte] |= (code & 3) << shift
	}
	return packed
}

// Unpack decodes n codes of a packed sequence starting at residue offset start, which need not
// fall on a byte boundary. The codes are appended to dst[:0], which is returned.
func Unpack(packed []byte, start, n int, dst []byte) ([]byte, error) {
	if start < 0 || n < 0 || start+n > len(packed)*PerByte {
		return nil, cerrors.Wrapf(ErrWindowOutOfRange, "window [%d, %d) of %d residues", start, start+n, len(packed)*PerByte)
	}

	dst = dst[:0]
	for index := start; index < start+n; index++ {
		shift := 6 - 2*(index%PerByte)
		dst = append(dst, (packed[index/PerByte]>>shift)&3)
	}
	return dst, nil
}

package residue_test

import (
	"testing"

	"github.com/bioarsenal/greedy/residue"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	codes, err := residue.Encode([]byte("ACGTacgt"))
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2, 3, 0, 1, 2, 3}, codes)
	require.Equal(t, []byte("ACGTACGT"), residue.Decode(codes))
}

func TestEncodeRejectsAmbiguity(t *testing.T) {
	_, err := residue.Encode([]byte("ACNGT"))
	require.True(t, errors.Is(err, residue.ErrInvalidResidue))
	require.Contains(t, err.Error(), "offset 2")
}

func TestPack(t *testing.T) {
	codes, err := residue.Encode([]byte("ACGTTGC"))
	require.NoError(t, err)

	packed := residue.Pack(codes)
	// 00 01 10 11 | 11 10 01 00
	require.Equal(t, []byte{0x1b, 0xe4}, packed)
}

func TestUnpackWindows(t *testing.T) {
	seq := []byte("GATTACAGATTACA")
	codes, err := residue.Encode(seq)
	require.NoError(t, err)
	packed := residue.Pack(codes)

	var scratch []byte
	for start := 0; start < len(seq); start++ {
		for n := 0; start+n <= len(seq); n++ {
			scratch, err = residue.Unpack(packed, start, n, scratch)
			require.NoError(t, err)
			require.Equal(t, seq[start:start+n], residue.Decode(scratch))
		}
	}
}

func TestUnpackOutOfRange(t *testing.T) {
	packed := residue.Pack([]byte{0, 1, 2})

	_, err := residue.Unpack(packed, 2, 3, nil)
	require.True(t, errors.Is(err, residue.ErrWindowOutOfRange))

	_, err = residue.Unpack(packed, -1, 1, nil)
	require.True(t, errors.Is(err, residue.ErrWindowOutOfRange))

	window, err := residue.Unpack(packed, 1, 3, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 0}, window)
}

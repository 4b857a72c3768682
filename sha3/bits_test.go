package sha3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsFromBytesRoundTrip(t *testing.T) {
	for _, p := range [][]byte{{}, {0x00}, {0xFF}, {0x01, 0x80, 0xAA, 0x55}} {
		bits := BitsFromBytes(p)
		require.Len(t, bits, 8*len(p))

		back, ok := bits.Bytes()
		require.True(t, ok)
		require.Equal(t, p, back)
	}
}

func TestBitsFromBytesLSBFirst(t *testing.T) {
	bits := BitsFromBytes([]byte{0x01})
	require.Equal(t, Bits{1, 0, 0, 0, 0, 0, 0, 0}, bits)

	bits = BitsFromBytes([]byte{0x80})
	require.Equal(t, Bits{0, 0, 0, 0, 0, 0, 0, 1}, bits)
}

func TestBitsBytesRejectsNonByteMultiple(t *testing.T) {
	_, ok := Bits{1, 0, 1}.Bytes()
	require.False(t, ok)
}

// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestKnownAnswers exercises the mandatory FIPS 202 / NIST CAVP vectors.
func TestKnownAnswers(t *testing.T) {
	cases := []struct {
		name string
		new  func() *Hasher
		msg  []byte
		want string
	}{
		{"SHA3-224/empty", New224, []byte{}, "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
		{"SHA3-256/empty", New256, []byte{}, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"SHA3-224/hello-world", New224, []byte("Hello, world!"), "6a33e22f20f16642697e8bd549ff7b759252ad56c05a1b0acc31dc69"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := c.new()
			require.NoError(t, h.Update(c.msg))
			out := make([]byte, h.Size())
			require.NoError(t, h.Finalize(out))
			require.Equal(t, decodeHex(t, c.want), out)
		})
	}
}

func TestKnownAnswerBitSequence(t *testing.T) {
	h := New224()
	require.NoError(t, h.UpdateBits(Bits{1, 0, 1}))
	out := make([]byte, h.Size())
	require.NoError(t, h.Finalize(out))
	require.Equal(t, decodeHex(t, "d115e9e3c619f6180c234dba721b302ffe0992df07eeea47464923c0"), out)
}

func TestDeterminism(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	h1 := New256()
	h1.Update(msg)
	d1 := make([]byte, h1.Size())
	require.NoError(t, h1.Finalize(d1))

	h2 := New256()
	h2.Update(msg)
	d2 := make([]byte, h2.Size())
	require.NoError(t, h2.Finalize(d2))

	require.Equal(t, d1, d2)
}

// TestChunkingEquivalence sweeps message lengths across and around rate
// boundaries to check that any partition into Update calls reproduces the
// single-call digest.
func TestChunkingEquivalence(t *testing.T) {
	rateBytes := New256().BlockSize()
	for _, n := range []int{0, 1, 17, rateBytes - 1, rateBytes, rateBytes + 1, 2 * rateBytes, 3*rateBytes + 5} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i * 7)
		}

		whole := New256()
		whole.Update(msg)
		want := make([]byte, whole.Size())
		require.NoError(t, whole.Finalize(want))

		for _, chunkSize := range []int{1, 3, 7} {
			chunked := New256()
			for off := 0; off < len(msg); off += chunkSize {
				end := off + chunkSize
				if end > len(msg) {
					end = len(msg)
				}
				require.NoError(t, chunked.Update(msg[off:end]))
			}
			got := make([]byte, chunked.Size())
			require.NoError(t, chunked.Finalize(got))
			require.Equalf(t, want, got, "n=%d chunkSize=%d", n, chunkSize)
		}
	}
}

// TestBitByteEquivalence checks that Update(bytes) and UpdateBits(expanded
// bits) agree, for lengths that straddle a rate boundary.
func TestBitByteEquivalence(t *testing.T) {
	rateBytes := New384().BlockSize()
	for _, n := range []int{0, 1, rateBytes, rateBytes + 3} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i*13 + 1)
		}

		byHash := New384()
		byHash.Update(msg)
		wantOut := make([]byte, byHash.Size())
		require.NoError(t, byHash.Finalize(wantOut))

		byBits := New384()
		require.NoError(t, byBits.UpdateBits(BitsFromBytes(msg)))
		gotOut := make([]byte, byBits.Size())
		require.NoError(t, byBits.Finalize(gotOut))

		require.Equalf(t, wantOut, gotOut, "n=%d", n)
	}
}

func TestFinalizeIsIdempotentFailure(t *testing.T) {
	h := New512()
	h.Update([]byte("once"))
	out := make([]byte, h.Size())
	require.NoError(t, h.Finalize(out))

	before := append([]byte(nil), out...)
	err := h.Finalize(out)
	require.ErrorIs(t, err, ErrStateViolation)
	require.Equal(t, before, out, "a failed Finalize must not alter the output buffer")

	require.ErrorIs(t, h.Update([]byte("more")), ErrStateViolation)
	require.ErrorIs(t, h.UpdateBits(Bits{1}), ErrStateViolation)
}

func TestFinalizeBufferTooSmall(t *testing.T) {
	h := New256()
	h.Update([]byte("data"))
	out := make([]byte, h.Size()-1)
	err := h.Finalize(out)
	require.ErrorIs(t, err, ErrBufferTooSmall)

	// The instance must still be usable: no state mutation occurred.
	bigOut := make([]byte, h.Size())
	require.NoError(t, h.Finalize(bigOut))
}

func TestFinalizeExactOrLargerBuffer(t *testing.T) {
	h := New256()
	h.Update([]byte("data"))
	out := make([]byte, h.Size()+8)
	for i := range out {
		out[i] = 0xAA
	}
	require.NoError(t, h.Finalize(out))
	for i := h.Size(); i < len(out); i++ {
		require.Equalf(t, byte(0xAA), out[i], "Finalize must not touch bytes past Size()")
	}
}

func TestHashInterfaceViaSum(t *testing.T) {
	h := New256()
	h.Write([]byte("abc"))
	sum := h.Sum(nil)
	require.Len(t, sum, h.Size())

	// Sum must not consume the hasher: calling it again gives the same
	// digest, and further writes still work.
	sum2 := h.Sum(nil)
	require.Equal(t, sum, sum2)
	require.NoError(t, h.Update([]byte("more")))
}

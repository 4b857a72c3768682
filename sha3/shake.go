// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import "github.com/pkg/errors"

// ShakeHash is an extendable-output (XOF) instance: SHAKE128 or SHAKE256.
//
// It absorbs like Hasher while Absorbing. Finalize pads, permutes and moves
// it to Squeezing, after which GetBits/Read/the byte iterator may be pulled
// for as many bits as the caller wants — there is no terminal state for a
// XOF, unlike Hasher's Exhausted.
type ShakeHash struct {
	sp       sponge
	rateBits int
}

func newShakeHash(rateBits int) *ShakeHash {
	return &ShakeHash{sp: newSponge(rateBits, shakeDomainSuffix), rateBits: rateBits}
}

// NewShake128 creates a fresh, Absorbing SHAKE128 instance.
func NewShake128() *ShakeHash { return newShakeHash(1344) }

// NewShake256 creates a fresh, Absorbing SHAKE256 instance.
func NewShake256() *ShakeHash { return newShakeHash(1088) }

// BlockSize returns the sponge's rate in bytes.
func (h *ShakeHash) BlockSize() int { return h.rateBits / 8 }

// Update absorbs bytes. It fails with ErrStateViolation if not Absorbing.
func (h *ShakeHash) Update(p []byte) error {
	if h.sp.mode != absorbing {
		return errors.Wrap(ErrStateViolation, "sha3: Update after Finalize")
	}
	h.sp.absorbBytes(p)
	return nil
}

// UpdateBits absorbs an exact bit sequence. It fails with ErrStateViolation
// if not Absorbing.
func (h *ShakeHash) UpdateBits(bits Bits) error {
	if h.sp.mode != absorbing {
		return errors.Wrap(ErrStateViolation, "sha3: UpdateBits after Finalize")
	}
	if err := validateBits(bits); err != nil {
		return err
	}
	h.sp.absorbBits(bits)
	return nil
}

// Write implements io.Writer by delegating to Update.
func (h *ShakeHash) Write(p []byte) (int, error) {
	if err := h.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize pads and permutes, transitioning Absorbing -> Squeezing. It fails
// with ErrStateViolation if not Absorbing (including if already Squeezing).
func (h *ShakeHash) Finalize() error {
	if h.sp.mode != absorbing {
		return errors.Wrap(ErrStateViolation, "sha3: Finalize called more than once")
	}
	h.sp.finalize()
	return nil
}

// GetBits appends exactly n bits to sink, in squeeze order. It fails with
// ErrStateViolation if not Squeezing (Finalize must be called first), or
// ErrInvalidArgument if n is negative.
func (h *ShakeHash) GetBits(sink Bits, n int) (Bits, error) {
	if n < 0 {
		return sink, errors.Wrapf(ErrInvalidArgument, "sha3: negative bit count %d", n)
	}
	if h.sp.mode != squeezing {
		return sink, errors.Wrap(ErrStateViolation, "sha3: GetBits called while not Squeezing")
	}
	return h.sp.squeezeBits(sink, n), nil
}

// Read implements io.Reader, drawing len(p) bytes aligned to byte boundaries
// of the squeeze stream. It fails with ErrStateViolation if not Squeezing.
func (h *ShakeHash) Read(p []byte) (int, error) {
	if h.sp.mode != squeezing {
		return 0, errors.Wrap(ErrStateViolation, "sha3: Read called while not Squeezing")
	}
	for i := range p {
		b, ok := h.sp.squeezeByteAligned()
		if !ok {
			// squeezePosBits was left non-byte-aligned by an interleaved
			// GetBits call; Read rejects the mix rather than realigning.
			return i, errors.Wrap(ErrStateViolation, "sha3: Read requires a byte-aligned squeeze cursor")
		}
		p[i] = b
	}
	return len(p), nil
}

// ByteIterator yields squeeze-stream bytes one at a time, indefinitely. It
// shares squeezePosBits with GetBits/Read and requires the cursor be
// byte-aligned when Next is called, rejecting (rather than silently
// realigning) a cursor left non-aligned by interleaved bit-level reads.
type ByteIterator struct {
	h *ShakeHash
}

// Iterator returns a ByteIterator over h. h must already be Squeezing
// (Finalize must be called first); Next reports ErrStateViolation otherwise.
func (h *ShakeHash) Iterator() *ByteIterator {
	return &ByteIterator{h: h}
}

// Next returns the next output byte. It fails with ErrStateViolation if h is
// not Squeezing, or if the squeeze cursor is not byte-aligned.
func (it *ByteIterator) Next() (byte, error) {
	if it.h.sp.mode != squeezing {
		return 0, errors.Wrap(ErrStateViolation, "sha3: byte iterator used while not Squeezing")
	}
	b, ok := it.h.sp.squeezeByteAligned()
	if !ok {
		return 0, errors.Wrap(ErrStateViolation, "sha3: byte iterator requires a byte-aligned squeeze cursor")
	}
	return b, nil
}

// Clone returns an independent copy of h in its current state: a value copy
// of the 200-byte state plus scalar bookkeeping, since a sponge holds no
// external resources to share or race over.
func (h *ShakeHash) Clone() *ShakeHash {
	dup := *h
	return &dup
}

// Reset restores h to a fresh, Absorbing, zero state.
func (h *ShakeHash) Reset() {
	h.sp = newSponge(h.rateBits, shakeDomainSuffix)
}

// ShakeSum128 writes an arbitrary-length SHAKE128 digest of data into hash.
func ShakeSum128(hash, data []byte) {
	h := NewShake128()
	h.Write(data)
	h.Finalize()
	h.Read(hash)
}

// ShakeSum256 writes an arbitrary-length SHAKE256 digest of data into hash.
func ShakeSum256(hash, data []byte) {
	h := NewShake256()
	h.Write(data)
	h.Finalize()
	h.Read(hash)
}

// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import "github.com/pkg/errors"

// sha3DomainSuffix and shakeDomainSuffix are the D bit strings of Section
// 6's parameter table, LSB-first as absorbed.
var (
	sha3DomainSuffix  = Bits{0, 1}
	shakeDomainSuffix = Bits{1, 1, 1, 1}
)

// Hasher is a fixed-output SHA-3 instance: SHA3-224, SHA3-256, SHA3-384 or
// SHA3-512, selected by the rateBits/outputBits pair New224..New512 fix.
//
// It satisfies hash.Hash (Write/Sum/Reset/Size/BlockSize) for drop-in use
// alongside the standard library's hash functions, layered over the
// bit-aware sponge that squeezes its output exactly once.
type Hasher struct {
	sp         sponge
	rateBits   int
	outputBits int
}

func newHasher(rateBits, outputBits int) *Hasher {
	return &Hasher{
		sp:         newSponge(rateBits, sha3DomainSuffix),
		rateBits:   rateBits,
		outputBits: outputBits,
	}
}

// New224 creates a fresh, Absorbing SHA3-224 instance.
func New224() *Hasher { return newHasher(1152, 224) }

// New256 creates a fresh, Absorbing SHA3-256 instance.
func New256() *Hasher { return newHasher(1088, 256) }

// New384 creates a fresh, Absorbing SHA3-384 instance.
func New384() *Hasher { return newHasher(832, 384) }

// New512 creates a fresh, Absorbing SHA3-512 instance.
func New512() *Hasher { return newHasher(576, 512) }

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return h.outputBits / 8 }

// BlockSize returns the sponge's rate in bytes.
func (h *Hasher) BlockSize() int { return h.rateBits / 8 }

// Update absorbs bytes. It fails with ErrStateViolation if the instance is
// not Absorbing (Finalize already ran).
func (h *Hasher) Update(p []byte) error {
	if h.sp.mode != absorbing {
		return errors.Wrap(ErrStateViolation, "sha3: Update after finalize")
	}
	h.sp.absorbBytes(p)
	return nil
}

// UpdateBits absorbs an exact bit sequence, not required to be a multiple of
// 8 bits long.
func (h *Hasher) UpdateBits(bits Bits) error {
	if h.sp.mode != absorbing {
		return errors.Wrap(ErrStateViolation, "sha3: UpdateBits after finalize")
	}
	if err := validateBits(bits); err != nil {
		return err
	}
	h.sp.absorbBits(bits)
	return nil
}

// Write implements io.Writer/hash.Hash.Write by delegating to Update.
func (h *Hasher) Write(p []byte) (int, error) {
	if err := h.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize pads, permutes and writes exactly Size() bytes into out,
// transitioning the instance to Exhausted. It fails with ErrStateViolation
// if not Absorbing, or ErrBufferTooSmall if out is smaller than Size()
// bytes; in the latter case no state has been mutated and the caller may
// retry with a larger buffer.
func (h *Hasher) Finalize(out []byte) error {
	if h.sp.mode != absorbing {
		return errors.Wrap(ErrStateViolation, "sha3: Finalize called more than once")
	}
	if len(out) < h.Size() {
		return errors.Wrapf(ErrBufferTooSmall, "need %d bytes, got %d", h.Size(), len(out))
	}
	h.sp.finalize()
	for i := 0; i < h.Size(); i++ {
		out[i], _ = h.sp.squeezeByteAligned()
	}
	h.sp.mode = exhausted
	return nil
}

// Sum appends the digest to in and returns the result, leaving the receiver
// unmodified (it finalizes a value copy), matching hash.Hash.Sum. It panics
// if called while not Absorbing, since hash.Hash.Sum has no error return;
// use Finalize directly to handle that case without a panic.
func (h *Hasher) Sum(in []byte) []byte {
	dup := *h
	digest := make([]byte, h.Size())
	if err := dup.Finalize(digest); err != nil {
		panic(err)
	}
	return append(in, digest...)
}

// Reset restores the instance to a fresh, Absorbing, zero state.
func (h *Hasher) Reset() {
	h.sp = newSponge(h.rateBits, sha3DomainSuffix)
}

// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the SHA-3 fixed-output-length hash functions and
// the SHAKE variable-output-length functions defined by FIPS PUB 202, with
// first-class support for inputs and outputs measured in bits.
//
// Both function families build the sponge construction over the
// Keccak-p[1600, 24] permutation (see the internal/keccakf package). A
// sponge absorbs an arbitrary-length bit stream, pads it with a
// domain-separated pad10*1 rule, and squeezes an arbitrary-length bit
// stream back out. Fixed-output hashers (New224..New512) squeeze exactly
// their digest length once; SHAKE instances (NewShake128, NewShake256) may
// be squeezed for as many bits as the caller wants.
//
//	security strength     SHA-3            SHAKE
//	collision-resistance   output/2         min(output/2, capacity/2)
//	preimage-resistance    output           capacity/2
//
// If you aren't sure which function you need, SHAKE256 with at least 64
// bytes of output gives 256-bit security against all known attacks. The
// SHA-3 functions are fixed-length drop-in replacements for SHA-2.
//
// Every instance is a strict three-state machine: Absorbing, then (for
// SHAKE) Squeezing, then (for fixed-output hashers, after Finalize)
// Exhausted. No operation ever transitions an instance out of Exhausted.
package sha3

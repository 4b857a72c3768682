// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccakf implements the Keccak-p[1600, 24] permutation, the pure
// function underlying every SHA-3 and SHAKE sponge instance defined by
// FIPS PUB 202.
//
// The permutation treats its 1600-bit argument three equivalent ways: a flat
// 200-byte array, twenty-five 64-bit lanes A[x,y] addressed by
// lane index x + 5*y, and a 5x5x64 bit cube A[x,y,z] in which bit z of lane
// A[x,y] is bit z of that lane's 64-bit value (little-endian within the
// lane). Permute operates on the lane view; LaneBit exposes the bit-cube
// view for callers (and tests) that need to check the equivalence holds.
// The package has no flat-byte accessor.
package keccakf

// Width is the number of lanes in the state (5x5).
const Width = 25

// Rounds is the fixed round count for Keccak-p[1600, 24].
const Rounds = 24

// roundConstants are the iota step's RC[i], FIPS 202 Appendix B.2/B.3.
var roundConstants = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rhoOffsets are the rho step's r[x,y] rotation amounts, indexed by the same
// lane index x + 5*y used everywhere else in this package.
var rhoOffsets = [Width]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// piDest[i] gives the lane index that lane i's content moves to under pi:
// A'[y, (2x+3y) mod 5] <- A[x,y], i.e. piDest[x+5y] = y + 5*((2x+3y) mod 5).
var piDest = [Width]uint{
	0, 10, 20, 5, 15,
	16, 1, 11, 21, 6,
	7, 17, 2, 12, 22,
	23, 8, 18, 3, 13,
	14, 24, 9, 19, 4,
}

func rotl64(x uint64, n uint) uint64 {
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (64 - n))
}

// Permute applies Keccak-p[1600, 24] to a in place: 24 rounds of
// theta, rho, pi, chi, iota, bit-exact with FIPS 202 Section 3.2.
//
// All arithmetic is fixed-width XOR, AND, NOT and fixed rotation amounts on
// 64-bit words; there are no data-dependent branches or table lookups keyed
// on state contents, so the permutation runs in constant time with respect
// to its argument.
func Permute(a *[Width]uint64) {
	for round := 0; round < Rounds; round++ {
		theta(a)
		rhoPi(a)
		chi(a)
		iotaStep(a, round)
	}
}

// theta computes the column parities C[x] and XORs D[x] = C[x-1] ^
// rotl(C[x+1], 1) into every lane of column x.
func theta(a *[Width]uint64) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	var d [5]uint64
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			a[x+5*y] ^= d[x]
		}
	}
}

// rhoPi applies the rho (per-lane rotation) and pi (lane permutation) steps
// together: A'[y, 2x+3y mod 5] = rotl(A[x,y], r[x,y]).
func rhoPi(a *[Width]uint64) {
	var b [Width]uint64
	for i := 0; i < Width; i++ {
		b[piDest[i]] = rotl64(a[i], rhoOffsets[i])
	}
	*a = b
}

// chi is the sole non-linear step: A[x,y] ^= (^A[x+1,y]) & A[x+2,y], applied
// row by row (fixed y).
func chi(a *[Width]uint64) {
	var row [5]uint64
	for y := 0; y < 5; y++ {
		base := 5 * y
		copy(row[:], a[base:base+5])
		for x := 0; x < 5; x++ {
			a[base+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// iotaStep XORs the round constant into lane A[0,0].
func iotaStep(a *[Width]uint64, round int) {
	a[0] ^= roundConstants[round]
}

// LaneBit returns bit z (0..63) of lane A[x,y], matching the little-endian
// lane-bit layout of FIPS 202 Section 3.1: bit z of a lane occupies position
// z of that lane's 64-bit value.
func LaneBit(a *[Width]uint64, x, y, z int) uint {
	return uint((a[x+5*y] >> uint(z)) & 1)
}

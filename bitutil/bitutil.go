// Package bitutil implements the bit-twiddling primitives shared by the
// position and move generator packages.
package bitutil

import "math/bits"

// BitScan returns the index of the least significant set bit of bitboard.
// The result is undefined if bitboard is zero.
func BitScan(bitboard uint64) int {
	return bits.TrailingZeros64(bitboard)
}

// PopLSB removes (pops) the least significant bit from the bitboard and
// returns its index. If the bitboard is empty, it returns -1.
func PopLSB(bitboard *uint64) int {
	if *bitboard == 0 {
		return -1
	}
	lsb := BitScan(*bitboard)
	*bitboard &= *bitboard - 1
	return lsb
}

// CountBits returns the number of bits set within the bitboard.
func CountBits(bitboard uint64) int {
	return bits.OnesCount64(bitboard)
}

package position

import "github.com/kestrelchess/corechess/bitutil"

// Square bit constants, one per board square, LSB = a1, MSB = h8.
const (
	A1 uint64 = 1 << iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File and rank masks. The move generator uses the rank masks to find
// promotion and double-push squares; its shift-wraparound guards are its
// own edge masks in package movegen.
const (
	FileA uint64 = 0x0101010101010101
	FileH uint64 = 0x8080808080808080
	Rank1 uint64 = 0x00000000000000FF
	Rank2 uint64 = 0x000000000000FF00
	Rank4 uint64 = 0x00000000FF000000
	Rank5 uint64 = 0x000000FF00000000
	Rank7 uint64 = 0x00FF000000000000
	Rank8 uint64 = 0xFF00000000000000
)

// squareIndex maps a single-bit mask to its 0..63 square index.
func squareIndex(mask uint64) int {
	return bitutil.BitScan(mask)
}

// File returns 0..7 for the file of the given square index.
func File(square int) int { return square & 7 }

// Rank returns 0..7 for the rank of the given square index.
func Rank(square int) int { return square >> 3 }

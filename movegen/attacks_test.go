package movegen

import (
	"os"
	"testing"

	"github.com/kestrelchess/corechess/boardfmt"
	"github.com/kestrelchess/corechess/pieces"
	"github.com/kestrelchess/corechess/position"
)

// TestMain initializes the attack tables once so individual tests don't
// each have to remember to call InitAttackTables themselves.
func TestMain(m *testing.M) {
	InitAttackTables()
	os.Exit(m.Run())
}

func TestGenPawnAttacks(t *testing.T) {
	testcases := []struct {
		name     string
		color    pieces.Color
		bitboard uint64
		expected uint64
	}{
		{"white pawn b4", pieces.White, position.B4, position.A5 | position.C5},
		{"white pawn a4", pieces.White, position.A4, position.B5},
		{"white pawn h4", pieces.White, position.H4, position.G5},
		{"white pawn b8", pieces.White, position.B8, 0x0},
		{"black pawn b4", pieces.Black, position.B4, position.A3 | position.C3},
		{"black pawn a4", pieces.Black, position.A4, position.B3},
		{"black pawn h4", pieces.Black, position.H4, position.G3},
		{"black pawn b1", pieces.Black, position.B1, 0x0},
	}

	for _, tc := range testcases {
		got := genPawnAttacks(tc.bitboard, tc.color)
		if got != tc.expected {
			t.Logf("test %q failed\nexpected:\n%s\ngot:\n%s", tc.name,
				boardfmt.Bitboard(tc.expected, pieces.White, pieces.Pawn),
				boardfmt.Bitboard(got, pieces.White, pieces.Pawn))
			t.FailNow()
		}
	}
}

func TestGenKnightAttacks(t *testing.T) {
	testcases := []struct {
		name     string
		bitboard uint64
		expected uint64
	}{
		{"knight d4", position.D4, position.C2 | position.E2 | position.B3 | position.F3 |
			position.B5 | position.F5 | position.C6 | position.E6},
		{"knight a8", position.A8, position.B6 | position.C7},
		{"knight h1", position.H1, position.F2 | position.G3},
	}

	for _, tc := range testcases {
		got := genKnightAttacks(tc.bitboard)
		if got != tc.expected {
			t.Logf("test %q failed\nexpected:\n%s\ngot:\n%s", tc.name,
				boardfmt.Bitboard(tc.expected, pieces.White, pieces.Knight),
				boardfmt.Bitboard(got, pieces.White, pieces.Knight))
			t.FailNow()
		}
	}
}

func TestGenKingAttacks(t *testing.T) {
	testcases := []struct {
		name     string
		bitboard uint64
		expected uint64
	}{
		{"king d5", position.D5, position.C4 | position.D4 | position.E4 | position.C5 |
			position.E5 | position.C6 | position.D6 | position.E6},
		{"king a8", position.A8, position.A7 | position.B7 | position.B8},
	}

	for _, tc := range testcases {
		got := genKingAttacks(tc.bitboard)
		if got != tc.expected {
			t.Logf("test %q failed\nexpected:\n%s\ngot:\n%s", tc.name,
				boardfmt.Bitboard(tc.expected, pieces.White, pieces.King),
				boardfmt.Bitboard(got, pieces.White, pieces.King))
			t.FailNow()
		}
	}
}

func TestGenBishopAttacks(t *testing.T) {
	testcases := []struct {
		name      string
		bitboard  uint64
		occupancy uint64
		expected  uint64
	}{
		{"bishop d5, blocked at b3", position.D5, position.B3,
			position.C4 | position.B3 | position.E4 | position.F3 | position.G2 | position.H1 |
				position.C6 | position.B7 | position.A8 | position.E6 | position.F7 | position.G8},
		{"bishop e2, blocked at f3", position.E2, position.F3 | position.A6,
			position.D1 | position.F1 | position.D3 | position.F3 | position.C4 | position.B5 | position.A6},
	}

	for _, tc := range testcases {
		got := genBishopAttacks(tc.bitboard, tc.occupancy)
		if got != tc.expected {
			t.Logf("test %q failed\nexpected:\n%s\ngot:\n%s", tc.name,
				boardfmt.Bitboard(tc.expected, pieces.White, pieces.Bishop),
				boardfmt.Bitboard(got, pieces.White, pieces.Bishop))
			t.FailNow()
		}
	}
}

func TestGenRookAttacks(t *testing.T) {
	testcases := []struct {
		name      string
		bitboard  uint64
		occupancy uint64
		expected  uint64
	}{
		{"rook d5, blocked at d2 and g5", position.D5, position.D2 | position.G5,
			position.D6 | position.D7 | position.D8 | position.D4 | position.D3 | position.D2 |
				position.A5 | position.B5 | position.C5 | position.E5 | position.F5 | position.G5},
	}

	for _, tc := range testcases {
		got := genRookAttacks(tc.bitboard, tc.occupancy)
		if got != tc.expected {
			t.Logf("test %q failed\nexpected:\n%s\ngot:\n%s", tc.name,
				boardfmt.Bitboard(tc.expected, pieces.White, pieces.Rook),
				boardfmt.Bitboard(got, pieces.White, pieces.Rook))
			t.FailNow()
		}
	}
}

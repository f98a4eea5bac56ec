package fen

import (
	"testing"

	"github.com/kestrelchess/corechess/pieces"
)

func TestToPosition(t *testing.T) {
	testcases := []struct {
		name     string
		fenStr   string
		color    pieces.Color
		kind     pieces.Kind
		expected uint64
	}{
		{"initial position, white pawns", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", pieces.White, pieces.Pawn, 0xFF00},
		{"initial position, black king", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", pieces.Black, pieces.King, 0x1000000000000000},
		{"scattered rooks and pawns, white rooks", "8/p7/6R1/8/8/1R6/2p5/8", pieces.White, pieces.Rook, 0x400000020000},
		{"scattered rooks and pawns, black pawns", "8/p7/6R1/8/8/1R6/2p5/8", pieces.Black, pieces.Pawn, 0x1000000000400},
	}

	for _, tc := range testcases {
		p := ToPosition(tc.fenStr)
		if got := p.Piece[tc.color][tc.kind]; got != tc.expected {
			t.Fatalf("%s\nexpected: %x\ngot: %x", tc.name, tc.expected, got)
		}
	}
}

func TestPiecePlacementRoundTrip(t *testing.T) {
	testcases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"8/p7/6R1/8/8/1R6/2p5/8",
	}

	for _, fenStr := range testcases {
		p := ToPosition(fenStr)
		if got := PiecePlacement(&p); got != fenStr {
			t.Fatalf("expected: %s, got: %s", fenStr, got)
		}
	}
}

func TestParseSerializeRoundTrip(t *testing.T) {
	fenStr := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	p, halfmove, fullmove := Parse(fenStr)
	if got := Serialize(&p, halfmove, fullmove); got != fenStr {
		t.Fatalf("expected: %s, got: %s", fenStr, got)
	}
}

func TestParseEnPassant(t *testing.T) {
	// After 1. e4 d5 2. e5 f5, White captures en passant on f6.
	fenStr := "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"

	p, _, _ := Parse(fenStr)
	if p.EPTarget == 0 {
		t.Fatalf("expected a nonzero en-passant target")
	}
	if p.EPParticipants&p.Piece[pieces.White][pieces.Pawn] == 0 {
		t.Fatalf("expected ep_participants to include the e5 pawn")
	}
}

// Expect allocation-free placement-only conversion: 0 B/op, 0 allocs/op.
func BenchmarkToPosition(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ToPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	}
}

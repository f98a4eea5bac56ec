package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelchess/corechess/fen"
	"github.com/kestrelchess/corechess/internal/perft"
	"github.com/kestrelchess/corechess/movegen"
	"github.com/kestrelchess/corechess/moves"
	"github.com/kestrelchess/corechess/pieces"
	"github.com/kestrelchess/corechess/position"
)

func TestGenerateStartingPositionMoveCount(t *testing.T) {
	p := position.NewStarting()
	list := movegen.Generate(&p)
	assert.Equal(t, 20, list.Len())
}

func TestGenerateAfterE4MoveCount(t *testing.T) {
	p, _, _ := fen.Parse("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	list := movegen.Generate(&p)
	assert.Equal(t, 20, list.Len())
}

func TestPerftDepth2(t *testing.T) {
	p := position.NewStarting()
	assert.Equal(t, 400, perft.Count(&p, 2))
}

func TestGenerateEnPassant(t *testing.T) {
	// 1.e4 d5 2.e5 f5, white to move: e5xf6 e.p. is the only capture.
	p, _, _ := fen.Parse("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")

	list := movegen.Generate(&p)

	var epMoves []moves.Move
	list.Each(func(m moves.Move) bool {
		if m.EPVictimMask != 0 {
			epMoves = append(epMoves, m)
		}
		return true
	})

	if assert.Len(t, epMoves, 1) {
		m := epMoves[0]
		assert.Equal(t, position.E5, m.FromMask)
		assert.Equal(t, position.F6, m.ToMask)
		assert.Equal(t, position.F5, m.EPVictimMask)
		assert.Equal(t, pieces.Pawn, m.CapturedKind)
	}
}

func TestGeneratePromotions(t *testing.T) {
	// White pawn on c7, black rook on b8; white to move: c7-c8=Q/R/B/N plus
	// c7xb8=Q/R/B/N, eight promotion moves in total.
	p, _, _ := fen.Parse("1r4k1/2P5/8/8/8/8/8/4K3 w - - 0 1")

	list := movegen.Generate(&p)

	var promos []moves.Move
	list.Each(func(m moves.Move) bool {
		if m.PromotedKind != pieces.None {
			promos = append(promos, m)
		}
		return true
	})
	assert.Len(t, promos, 8)

	var quiet, capturing int
	for _, m := range promos {
		if m.CapturedKind == pieces.None {
			quiet++
		} else {
			capturing++
		}
	}
	assert.Equal(t, 4, quiet)
	assert.Equal(t, 4, capturing)
}

func TestGenerateCastling(t *testing.T) {
	p, _, _ := fen.Parse("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	list := movegen.Generate(&p)

	var castles []moves.Move
	list.Each(func(m moves.Move) bool {
		if m.CastleSide != moves.CastleNone {
			castles = append(castles, m)
		}
		return true
	})

	assert.Len(t, castles, 2)
	for _, m := range castles {
		assert.Equal(t, position.E1, m.FromMask)
		switch m.CastleSide {
		case moves.CastleKingSide:
			assert.Equal(t, position.G1, m.ToMask)
		case moves.CastleQueenSide:
			assert.Equal(t, position.C1, m.ToMask)
		}
	}
}

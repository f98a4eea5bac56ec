// Package eval implements the static positional evaluator: material count,
// a bishop-pair bonus, and a central-occupancy bonus, all signed from the
// perspective of the engine's own color, computed by popcounts over
// package position's piece and occupancy bitboards.
package eval

import (
	"github.com/kestrelchess/corechess/bitutil"
	"github.com/kestrelchess/corechess/pieces"
	"github.com/kestrelchess/corechess/position"
)

// pieceValues gives the material worth of each non-king piece kind; the
// king carries no material value here, since a captured king is scored by
// the search's KingMissing shortcut rather than by material.
var pieceValues = [6]int{
	pieces.Pawn:   1,
	pieces.Knight: 3,
	pieces.Bishop: 3,
	pieces.Rook:   5,
	pieces.Queen:  9,
	pieces.King:   0,
}

const (
	bishopPairBonus = 2

	centerBonus = 2
	ringBonus   = 1
)

// center is the four central squares; ring is the twelve squares
// surrounding them. Both are evaluated from White's side of the board and
// apply identically to Black since the board is symmetric.
var (
	center uint64 = position.D4 | position.E4 | position.D5 | position.E5
	ring   uint64 = position.C3 | position.D3 | position.E3 | position.F3 |
		position.C4 | position.F4 |
		position.C5 | position.F5 |
		position.C6 | position.D6 | position.E6 | position.F6
)

// Options toggles evaluator terms on and off; CentralBonus is disabled by
// config past a configured ply to keep deep search leaves cheap.
type Options struct {
	CentralBonus bool
}

// Evaluate scores p from engineColor's perspective: positive favors
// engineColor, negative favors its opponent.
func Evaluate(p *position.Position, engineColor pieces.Color, opts Options) int {
	score := material(p, pieces.White) - material(p, pieces.Black)
	score += bishopPair(p, pieces.White) - bishopPair(p, pieces.Black)
	if opts.CentralBonus {
		score += centralOccupancy(p, pieces.White) - centralOccupancy(p, pieces.Black)
	}
	if engineColor == pieces.Black {
		score = -score
	}
	return score
}

func material(p *position.Position, c pieces.Color) int {
	score := 0
	for k := pieces.Pawn; k <= pieces.King; k++ {
		score += pieceValues[k] * bitutil.CountBits(p.Piece[c][k])
	}
	return score
}

// bishopPair rewards holding two or more bishops; three or more only ever
// happens through underpromotion, and still earns the flat bonus.
func bishopPair(p *position.Position, c pieces.Color) int {
	if bitutil.CountBits(p.Piece[c][pieces.Bishop]) >= 2 {
		return bishopPairBonus
	}
	return 0
}

func centralOccupancy(p *position.Position, c pieces.Color) int {
	occ := p.Occ[c]
	return centerBonus*bitutil.CountBits(occ&center) + ringBonus*bitutil.CountBits(occ&ring)
}

package position

import (
	"github.com/kestrelchess/corechess/moves"
	"github.com/kestrelchess/corechess/pieces"
)

// applyCastle performs the king and rook relocation for a castling move and
// clears that color's castling rights. Preconditions -- the king hasn't
// moved, the path is clear, and the king isn't moving through or into
// check -- are the move generator's responsibility, not Apply's (see the
// Open Question resolution in DESIGN.md).
func (p *Position) applyCastle(m moves.Move) {
	c := m.MoverColor

	p.remove(c, pieces.King, m.FromMask)
	p.place(c, pieces.King, m.ToMask)

	var rookFrom, rookTo uint64
	switch {
	case c == pieces.White && m.CastleSide == moves.CastleKingSide:
		rookFrom, rookTo = H1, F1
	case c == pieces.White && m.CastleSide == moves.CastleQueenSide:
		rookFrom, rookTo = A1, D1
	case c == pieces.Black && m.CastleSide == moves.CastleKingSide:
		rookFrom, rookTo = H8, F8
	case c == pieces.Black && m.CastleSide == moves.CastleQueenSide:
		rookFrom, rookTo = A8, D8
	}

	p.remove(c, pieces.Rook, rookFrom)
	p.place(c, pieces.Rook, rookTo)

	p.CastleRights[c] = 0
}

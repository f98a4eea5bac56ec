package position

import (
	"github.com/kestrelchess/corechess/moves"
	"github.com/kestrelchess/corechess/pieces"
)

// place puts a piece of the given color/kind on the square(s) in mask and
// keeps the derived occupancy boards in sync.
func (p *Position) place(c pieces.Color, k pieces.Kind, mask uint64) {
	p.Piece[c][k] |= mask
	p.Occ[c] |= mask
	p.OccAll |= mask
}

// remove clears a piece of the given color/kind from the square(s) in mask
// and keeps the derived occupancy boards in sync.
func (p *Position) remove(c pieces.Color, k pieces.Kind, mask uint64) {
	p.Piece[c][k] &^= mask
	p.Occ[c] &^= mask
	p.OccAll &^= mask
}

// Apply mutates the position by performing m, through a fixed ordered
// sequence of steps: clear stale en-passant state, handle castling as a
// special case, resolve captures (including en-passant), move or promote
// the piece, record en-passant state after a double pawn push, and update
// castling rights. It is the caller's
// responsibility to ensure m is at least pseudo-legal; Apply does not
// re-derive legality. Moves produced by package movegen are always
// well-formed, so Apply never rejects them; it has no failure return.
func (p *Position) Apply(m moves.Move) {
	// Step 1: clear en-passant state.
	p.EPTarget = 0
	p.EPParticipants = 0

	// Step 2: castling is handled and returned from separately.
	if m.CastleSide != moves.CastleNone {
		p.applyCastle(m)
		return
	}

	mover := m.MoverColor
	enemy := pieces.Opp(mover)

	// Step 3: ordinary capture.
	if m.CapturedKind != pieces.None && m.EPVictimMask == 0 {
		p.remove(enemy, m.CapturedKind, m.ToMask)
	}

	// Step 4: en-passant capture.
	if m.EPVictimMask != 0 {
		p.remove(enemy, pieces.Pawn, m.EPVictimMask)
	}

	// Step 5: move or promote the mover.
	if m.PromotedKind != pieces.None {
		p.remove(mover, pieces.Pawn, m.FromMask)
		p.place(mover, m.PromotedKind, m.ToMask)
	} else {
		p.remove(mover, m.MoverKind, m.FromMask)
		p.place(mover, m.MoverKind, m.ToMask)
	}

	// Step 6: double pawn push sets up the next ply's en-passant state.
	if m.MoverKind == pieces.Pawn {
		fromSq, toSq := squareIndex(m.FromMask), squareIndex(m.ToMask)
		diff := toSq - fromSq
		if diff == 16 || diff == -16 {
			var epSquare uint64
			if diff == 16 {
				epSquare = m.FromMask << 8
			} else {
				epSquare = m.FromMask >> 8
			}
			p.EPTarget = epSquare
			// Participants sit beside the pawn's landing square, not beside
			// the passed-over ep_target square itself.
			p.EPParticipants = AdjacentPawns(m.ToMask, p.Piece[enemy][pieces.Pawn])
		}
	}

	// Step 7: king move forfeits all castling rights for that color.
	if m.MoverKind == pieces.King {
		p.CastleRights[mover] = 0
	}

	// Step 8: rook move off a home square forfeits that side's right.
	if m.MoverKind == pieces.Rook {
		switch mover {
		case pieces.White:
			if m.FromMask&A1 != 0 {
				p.CastleRights[mover] &^= CastleQueenSide
			}
			if m.FromMask&H1 != 0 {
				p.CastleRights[mover] &^= CastleKingSide
			}
		case pieces.Black:
			if m.FromMask&A8 != 0 {
				p.CastleRights[mover] &^= CastleQueenSide
			}
			if m.FromMask&H8 != 0 {
				p.CastleRights[mover] &^= CastleKingSide
			}
		}
	}

	// A captured rook on its home square also forfeits that right, even
	// though the capturing side never moved its own king or rook.
	if m.CapturedKind == pieces.Rook {
		switch enemy {
		case pieces.White:
			if m.ToMask&A1 != 0 {
				p.CastleRights[enemy] &^= CastleQueenSide
			}
			if m.ToMask&H1 != 0 {
				p.CastleRights[enemy] &^= CastleKingSide
			}
		case pieces.Black:
			if m.ToMask&A8 != 0 {
				p.CastleRights[enemy] &^= CastleQueenSide
			}
			if m.ToMask&H8 != 0 {
				p.CastleRights[enemy] &^= CastleKingSide
			}
		}
	}

	// Step 9: occupancy was kept in sync incrementally by place/remove.
}

// AdjacentPawns returns the subset of enemyPawns that sit immediately to
// the left or right of epSquare on the same rank -- the pawns that could
// legally capture en passant on the very next ply. Exported for package
// fen, which must re-derive ep_participants since standard FEN text has no
// field for it.
func AdjacentPawns(epSquare uint64, enemyPawns uint64) uint64 {
	sq := squareIndex(epSquare)
	var adj uint64
	if File(sq) > 0 {
		left := epSquare >> 1
		if left&enemyPawns != 0 {
			adj |= left
		}
	}
	if File(sq) < 7 {
		right := epSquare << 1
		if right&enemyPawns != 0 {
			adj |= right
		}
	}
	return adj
}

package movegen

import (
	"github.com/kestrelchess/corechess/bitutil"
	"github.com/kestrelchess/corechess/moves"
	"github.com/kestrelchess/corechess/pieces"
	"github.com/kestrelchess/corechess/position"
)

// Generate enumerates every pseudo-legal move for p.SideToMove into a fresh
// MoveList. Pseudo-legal here means: a move is emitted if the piece can
// physically reach the target square per its movement rules, without
// checking whether the resulting position leaves the mover's own king in
// check. Package search does not filter for legality either; it scores a
// line in which a king gets captured (Position.KingMissing) as won or lost.
func Generate(p *position.Position) moves.MoveList {
	var list moves.MoveList
	GenerateInto(p, &list)
	return list
}

// GenerateInto fills list with p.SideToMove's pseudo-legal moves, reusing
// list's existing node pool instead of allocating a fresh MoveList. Callers
// on a hot path (search) should Clear and reuse the same list across plies.
func GenerateInto(p *position.Position, list *moves.MoveList) {
	us := p.SideToMove
	enemy := pieces.Opp(us)

	genPawnMoves(p, us, enemy, list)
	genKnightMoves(p, us, list)
	genSliderMoves(p, us, pieces.Bishop, genBishopAttacks, list)
	genSliderMoves(p, us, pieces.Rook, genRookAttacks, list)
	genSliderMoves(p, us, pieces.Queen, genQueenAttacks, list)
	genKingMoves(p, us, list)
	genCastleMoves(p, us, list)
}

// pushQuietOrCapture emits a move from `from` to every set bit of `targets`,
// filling in CapturedKind from whatever occupies the destination.
func pushQuietOrCapture(p *position.Position, us pieces.Color, kind pieces.Kind, from uint64, targets uint64, list *moves.MoveList) {
	for targets != 0 {
		toSq := bitutil.PopLSB(&targets)
		to := uint64(1) << toSq
		_, captured := p.PieceAt(to)
		list.Push(moves.Move{
			FromMask:     from,
			ToMask:       to,
			MoverKind:    kind,
			MoverColor:   us,
			CapturedKind: captured,
		})
	}
}

func genKnightMoves(p *position.Position, us pieces.Color, list *moves.MoveList) {
	knights := p.Piece[us][pieces.Knight]
	for knights != 0 {
		fromSq := bitutil.PopLSB(&knights)
		from := uint64(1) << fromSq
		targets := knightAttacks[fromSq] &^ p.Occ[us]
		pushQuietOrCapture(p, us, pieces.Knight, from, targets, list)
	}
}

func genKingMoves(p *position.Position, us pieces.Color, list *moves.MoveList) {
	from := p.Piece[us][pieces.King]
	if from == 0 {
		return
	}
	fromSq := bitutil.BitScan(from)
	targets := kingAttacks[fromSq] &^ p.Occ[us]
	pushQuietOrCapture(p, us, pieces.King, from, targets, list)
}

type sliderAttackFn func(piece, occupancy uint64) uint64

func genSliderMoves(p *position.Position, us pieces.Color, kind pieces.Kind, attackFn sliderAttackFn, list *moves.MoveList) {
	bb := p.Piece[us][kind]
	for bb != 0 {
		fromSq := bitutil.PopLSB(&bb)
		from := uint64(1) << fromSq
		targets := attackFn(from, p.OccAll) &^ p.Occ[us]
		pushQuietOrCapture(p, us, kind, from, targets, list)
	}
}

// genCastleMoves emits king-side and/or queen-side castling for us iff the
// respective castle right is still held and every square between king and
// rook is empty. Whether the king starts, passes through, or ends in check
// is NOT checked here or anywhere else in this generator (see the Open
// Question resolution recorded in DESIGN.md).
func genCastleMoves(p *position.Position, us pieces.Color, list *moves.MoveList) {
	rights := p.CastleRights[us]
	if rights == 0 {
		return
	}

	var kingFrom, kingSideThrough, queenSideThrough uint64
	switch us {
	case pieces.White:
		kingFrom = position.E1
		kingSideThrough = position.F1 | position.G1
		queenSideThrough = position.B1 | position.C1 | position.D1
	case pieces.Black:
		kingFrom = position.E8
		kingSideThrough = position.F8 | position.G8
		queenSideThrough = position.B8 | position.C8 | position.D8
	}

	if p.Piece[us][pieces.King]&kingFrom == 0 {
		return
	}

	if rights&position.CastleKingSide != 0 && p.OccAll&kingSideThrough == 0 {
		list.Push(moves.Move{
			FromMask:   kingFrom,
			ToMask:     kingFrom << 2,
			MoverKind:  pieces.King,
			MoverColor: us,
			CastleSide: moves.CastleKingSide,
		})
	}
	if rights&position.CastleQueenSide != 0 && p.OccAll&queenSideThrough == 0 {
		list.Push(moves.Move{
			FromMask:   kingFrom,
			ToMask:     kingFrom >> 2,
			MoverKind:  pieces.King,
			MoverColor: us,
			CastleSide: moves.CastleQueenSide,
		})
	}
}

// Package position implements the bitboard position representation:
// twelve piece bitboards indexed [color][kind], derived occupancy,
// castling rights, en-passant state (including ep_participants, the
// pawns adjacent to the landing square that could capture it), incremental
// move application/undo, and a heap-allocation-free virtualization layer.
package position

import "github.com/kestrelchess/corechess/pieces"

// CastleRight is a per-color bitmask over the two home-rank rook squares.
type CastleRight int

const (
	CastleKingSide  CastleRight = 1
	CastleQueenSide CastleRight = 2
	CastleBoth      CastleRight = CastleKingSide | CastleQueenSide
)

// Position carries the full state of a chessboard: piece placement,
// derived occupancy, castling rights, en-passant target, and side to move.
type Position struct {
	// Piece[color][kind] bitboards. Invariant: pairwise disjoint across
	// all (color, kind) pairs -- no square is ever claimed by two entries.
	Piece [2][6]uint64

	// Occ[color] is the bitwise OR of that color's six piece boards;
	// OccAll is Occ[White] | Occ[Black]. Both are kept in sync
	// incrementally rather than recomputed on demand.
	Occ    [2]uint64
	OccAll uint64

	// CastleRights[color] indicates which of that color's rooks are
	// still eligible to castle. Zero means neither rook is eligible.
	CastleRights [2]CastleRight

	// EPTarget is a bitboard with at most one bit set: the square a pawn
	// just double-pushed over. Zero when no en-passant capture is
	// currently available.
	EPTarget uint64
	// EPParticipants lists the enemy pawns (relative to the pawn that
	// just moved) horizontally adjacent to the landing square -- the
	// only pieces that could legally capture en passant next ply.
	EPParticipants uint64

	SideToMove pieces.Color
}

// NewStarting returns the standard initial chess position, White to move,
// full castling rights for both sides, no en-passant target.
func NewStarting() Position {
	var p Position

	p.Piece[pieces.White][pieces.Pawn] = Rank2
	p.Piece[pieces.Black][pieces.Pawn] = Rank7
	p.Piece[pieces.White][pieces.Knight] = B1 | G1
	p.Piece[pieces.Black][pieces.Knight] = B8 | G8
	p.Piece[pieces.White][pieces.Bishop] = C1 | F1
	p.Piece[pieces.Black][pieces.Bishop] = C8 | F8
	p.Piece[pieces.White][pieces.Rook] = A1 | H1
	p.Piece[pieces.Black][pieces.Rook] = A8 | H8
	p.Piece[pieces.White][pieces.Queen] = D1
	p.Piece[pieces.Black][pieces.Queen] = D8
	p.Piece[pieces.White][pieces.King] = E1
	p.Piece[pieces.Black][pieces.King] = E8

	p.CastleRights[pieces.White] = CastleBoth
	p.CastleRights[pieces.Black] = CastleBoth

	p.SideToMove = pieces.White

	p.RefreshOccupancy()
	return p
}

// RefreshOccupancy recomputes Occ and OccAll from the piece boards. Apply
// updates them incrementally; this is exported for callers (such as
// package fen) that place pieces directly rather than through Apply.
func (p *Position) RefreshOccupancy() {
	p.Occ[pieces.White] = 0
	p.Occ[pieces.Black] = 0
	for k := pieces.Pawn; k <= pieces.King; k++ {
		p.Occ[pieces.White] |= p.Piece[pieces.White][k]
		p.Occ[pieces.Black] |= p.Piece[pieces.Black][k]
	}
	p.OccAll = p.Occ[pieces.White] | p.Occ[pieces.Black]
}

// PieceAt returns the color and kind of whatever occupies the single
// square encoded by mask, or (_, pieces.None) if the square is empty.
func (p *Position) PieceAt(mask uint64) (pieces.Color, pieces.Kind) {
	for c := pieces.White; c <= pieces.Black; c++ {
		for k := pieces.Pawn; k <= pieces.King; k++ {
			if p.Piece[c][k]&mask != 0 {
				return c, k
			}
		}
	}
	return pieces.White, pieces.None
}

// KingMissing reports whether either color has zero King bits. The search
// uses this as a proxy for checkmate: a move that captures the opposing
// king signals an immediately winning/losing line.
func (p *Position) KingMissing() bool {
	return p.Piece[pieces.White][pieces.King] == 0 || p.Piece[pieces.Black][pieces.King] == 0
}

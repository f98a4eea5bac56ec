// Package moves declares the Move value type and the free-pooled move list
// used by the position and move generator packages.
package moves

import "github.com/kestrelchess/corechess/pieces"

// CastleSide identifies which side, if any, a move castles on.
type CastleSide int

const (
	CastleNone CastleSide = iota
	CastleKingSide
	CastleQueenSide
)

// Move is an immutable, self-contained description of one chess move. It
// carries everything Position.Apply needs to mutate the board; undoing a
// move goes through Position.Snapshot and Position.Restore instead.
type Move struct {
	FromMask uint64
	ToMask   uint64

	MoverKind  pieces.Kind
	MoverColor pieces.Color

	// CapturedKind is pieces.None unless this move captures.
	CapturedKind pieces.Kind
	// PromotedKind is pieces.None unless this move promotes.
	PromotedKind pieces.Kind

	CastleSide CastleSide

	// EPVictimMask is nonzero only for an en-passant capture; it marks the
	// square of the captured pawn, which differs from ToMask.
	EPVictimMask uint64
}

// IsCapture reports whether the move removes an enemy piece from the
// board, including en-passant captures.
func (m Move) IsCapture() bool {
	return m.CapturedKind != pieces.None || m.EPVictimMask != 0
}

// bucketA reports whether the move belongs in the move list's high-priority
// bucket: captures and en-passant. Quiet moves and quiet promotions go in
// the other bucket, regardless of whether they promote.
func (m Move) bucketA() bool {
	return m.IsCapture()
}

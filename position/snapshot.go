package position

import "github.com/kestrelchess/corechess/moves"

// Snapshot is an opaque, heap-free copy of everything Apply mutates:
// piece/occupancy bitboards, castling rights, and en-passant state.
// SideToMove is deliberately excluded -- Apply never flips it, so the
// search layer is responsible for tracking whose turn it is alongside
// each snapshot.
type Snapshot struct {
	piece          [2][6]uint64
	occ            [2]uint64
	occAll         uint64
	castleRights   [2]CastleRight
	epTarget       uint64
	epParticipants uint64
}

// Snapshot captures the current state. Restore undoes any number of
// Applies back to exactly this state; it is O(total bitboard count), not
// O(move history).
func (p *Position) Snapshot() Snapshot {
	return Snapshot{
		piece:          p.Piece,
		occ:            p.Occ,
		occAll:         p.OccAll,
		castleRights:   p.CastleRights,
		epTarget:       p.EPTarget,
		epParticipants: p.EPParticipants,
	}
}

// Restore sets the position back to exactly the state s captured,
// bit-exact. The caller is responsible for restoring SideToMove, which
// Snapshot does not capture.
func (p *Position) Restore(s Snapshot) {
	p.Piece = s.piece
	p.Occ = s.occ
	p.OccAll = s.occAll
	p.CastleRights = s.castleRights
	p.EPTarget = s.epTarget
	p.EPParticipants = s.epParticipants
}

// VirtualApply speculatively applies m and returns the snapshot needed to
// undo it. It performs the identical mutation as Apply; the "virtual"
// layer is Snapshot+Apply+Restore used in LIFO order, which by
// construction never allocates on the heap per move. Pair every
// VirtualApply with exactly one CommitVirtual or WipeVirtual.
func (p *Position) VirtualApply(m moves.Move) Snapshot {
	s := p.Snapshot()
	p.Apply(m)
	return s
}

// CommitVirtual promotes a speculative move to the real position. Since
// Apply already mutated the position in place, committing is a no-op; the
// snapshot is simply discarded. It exists so call sites read symmetrically
// with WipeVirtual.
func (p *Position) CommitVirtual(Snapshot) {}

// WipeVirtual discards a speculative move, restoring the position to
// exactly what it was before the paired VirtualApply.
func (p *Position) WipeVirtual(s Snapshot) {
	p.Restore(s)
}

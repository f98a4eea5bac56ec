// Package perft implements the move-generator enumeration counts used to
// validate movegen against known node counts at each depth, undoing each
// trial move through package position's snapshot/restore discipline
// rather than a plain struct-copy.
package perft

import (
	"github.com/kestrelchess/corechess/movegen"
	"github.com/kestrelchess/corechess/moves"
	"github.com/kestrelchess/corechess/pieces"
	"github.com/kestrelchess/corechess/position"
)

// Count walks the move-generation tree of pseudo-legal moves to depth and
// returns the number of leaf nodes reached.
//
// See https://www.chessprogramming.org/Perft_Results
func Count(p *position.Position, depth int) int {
	list := movegen.Generate(p)

	if depth == 1 {
		return list.Len()
	}

	nodes := 0
	sideToMove := p.SideToMove

	list.Each(func(m moves.Move) bool {
		snap := p.Snapshot()
		p.Apply(m)
		p.SideToMove = pieces.Opp(sideToMove)

		nodes += Count(p, depth-1)

		p.Restore(snap)
		p.SideToMove = sideToMove
		return true
	})

	return nodes
}

// Divide runs one ply of Count per root move and returns the leaf count
// contributed by each, keyed by the move itself -- the standard perft
// divide used to isolate which root branch disagrees with a known count.
func Divide(p *position.Position, depth int) map[moves.Move]int {
	results := make(map[moves.Move]int)
	if depth < 1 {
		return results
	}

	list := movegen.Generate(p)
	sideToMove := p.SideToMove

	list.Each(func(m moves.Move) bool {
		snap := p.Snapshot()
		p.Apply(m)
		p.SideToMove = pieces.Opp(sideToMove)

		if depth == 1 {
			results[m] = 1
		} else {
			results[m] = Count(p, depth-1)
		}

		p.Restore(snap)
		p.SideToMove = sideToMove
		return true
	})

	return results
}

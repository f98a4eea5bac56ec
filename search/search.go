// Package search implements iterative-deepening alpha-beta search over the
// move generator and evaluator, alternating MAX/MIN nodes explicitly by
// ply parity rather than negating the score at each recursive call, and
// using position's snapshot/restore discipline to undo moves without
// allocating.
package search

import (
	"math"

	"go.uber.org/zap"

	"github.com/kestrelchess/corechess/config"
	"github.com/kestrelchess/corechess/eval"
	"github.com/kestrelchess/corechess/internal/engineerr"
	"github.com/kestrelchess/corechess/movegen"
	"github.com/kestrelchess/corechess/moves"
	"github.com/kestrelchess/corechess/pieces"
	"github.com/kestrelchess/corechess/position"
)

const (
	posInf = math.MaxInt32
	negInf = -math.MaxInt32
)

// BestMove runs iterative deepening from depth 1 up to cfg.MaxPly on a copy
// of pos and returns the move remembered after the deepest completed
// iteration. It never mutates the caller's pos, since Position is passed by
// value. The only error it returns is engineerr.ErrNoLegalMoves, raised
// when the root has nothing to play.
func BestMove(pos position.Position, cfg config.Config, logger *zap.Logger) (moves.Move, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	working := pos

	// One MoveList per ply, reused across the whole iterative-deepening run:
	// leafEval generates one ply past plyLimit, hence the +1.
	lists := make([]moves.MoveList, cfg.MaxPly+2)

	var best moves.Move
	for depth := 1; depth <= cfg.MaxPly; depth++ {
		m, val, err := searchRoot(&working, depth, cfg, lists)
		if err != nil {
			return moves.Move{}, err
		}
		best = m
		logger.Debug("iteration complete",
			zap.Int("depth", depth),
			zap.Int("value", val),
		)
	}
	return best, nil
}

// searchRoot runs one iterative-deepening iteration at the given depth and
// returns the best move found together with its score.
func searchRoot(pos *position.Position, depth int, cfg config.Config, lists []moves.MoveList) (moves.Move, int, error) {
	list := &lists[0]
	list.Clear()
	movegen.GenerateInto(pos, list)
	if list.Len() == 0 {
		return moves.Move{}, 0, engineerr.ErrNoLegalMoves
	}

	bestVal := negInf
	var bestMove moves.Move
	found := false

	prevSide := pos.SideToMove
	list.Each(func(m moves.Move) bool {
		val := scoreRootCandidate(pos, m, depth, cfg, prevSide, lists)
		if !found || val > bestVal {
			bestVal = val
			bestMove = m
			found = true
		}
		return true
	})
	return bestMove, bestVal, nil
}

// scoreRootCandidate evaluates one root candidate move: depth 1 is a plain
// static-eval lookahead (no recursion, per the root's depth-1 special
// case); deeper iterations recurse into alphaBeta starting at depth 2.
func scoreRootCandidate(pos *position.Position, m moves.Move, depth int, cfg config.Config, prevSide pieces.Color, lists []moves.MoveList) int {
	if depth == 1 {
		snap := pos.VirtualApply(m)
		defer pos.WipeVirtual(snap)
		if pos.KingMissing() {
			return posInf
		}
		return eval.Evaluate(pos, cfg.EngineColor, cfg.EvalOptionsAt(depth))
	}

	snap := pos.Snapshot()
	pos.Apply(m)
	pos.SideToMove = pieces.Opp(prevSide)

	var val int
	if pos.KingMissing() {
		val = posInf
	} else {
		val = alphaBeta(pos, 2, depth, negInf, posInf, cfg, lists)
	}

	pos.Restore(snap)
	pos.SideToMove = prevSide
	return val
}

// alphaBeta evaluates the subtree rooted at the current position, currently
// at ply `depth` of an iteration whose leaves sit at `plyLimit`. Odd depths
// are MAX nodes (the root's own side replying), even depths are MIN nodes,
// matching the convention the root establishes by calling this at depth 2.
// lists holds one MoveList per ply, indexed by depth, so a recursive call at
// depth+1 never disturbs the list still being iterated at depth.
func alphaBeta(pos *position.Position, depth, plyLimit, alpha, beta int, cfg config.Config, lists []moves.MoveList) int {
	if alpha >= beta {
		panic("search: alphaBeta called with alpha >= beta")
	}
	if depth == plyLimit {
		return leafEval(pos, depth, alpha, beta, cfg, lists)
	}

	list := &lists[depth]
	list.Clear()
	movegen.GenerateInto(pos, list)
	if list.Len() == 0 {
		return eval.Evaluate(pos, cfg.EngineColor, cfg.EvalOptionsAt(depth))
	}

	isMax := depth%2 == 1
	prevSide := pos.SideToMove

	list.Each(func(m moves.Move) bool {
		snap := pos.Snapshot()
		pos.Apply(m)
		pos.SideToMove = pieces.Opp(prevSide)

		var val int
		if pos.KingMissing() {
			if isMax {
				val = posInf
			} else {
				val = negInf
			}
		} else {
			val = alphaBeta(pos, depth+1, plyLimit, alpha, beta, cfg, lists)
		}

		pos.Restore(snap)
		pos.SideToMove = prevSide

		if isMax {
			if val > alpha {
				alpha = val
			}
		} else {
			if val < beta {
				beta = val
			}
		}
		return alpha < beta
	})

	if isMax {
		return alpha
	}
	return beta
}

// leafEval scores the horizon ply: rather than a single static call, it
// generates the leaf's own moves and alpha-beta-folds their post-move
// evaluations, falling back to the position's own static score if the
// leaf has no moves at all.
func leafEval(pos *position.Position, depth, alpha, beta int, cfg config.Config, lists []moves.MoveList) int {
	list := &lists[depth+1]
	list.Clear()
	movegen.GenerateInto(pos, list)
	if list.Len() == 0 {
		return eval.Evaluate(pos, cfg.EngineColor, cfg.EvalOptionsAt(depth))
	}

	isMax := depth%2 == 1

	list.Each(func(m moves.Move) bool {
		snap := pos.VirtualApply(m)
		var val int
		if pos.KingMissing() {
			if isMax {
				val = posInf
			} else {
				val = negInf
			}
		} else {
			val = eval.Evaluate(pos, cfg.EngineColor, cfg.EvalOptionsAt(depth))
		}
		pos.WipeVirtual(snap)

		if isMax {
			if val > alpha {
				alpha = val
			}
		} else {
			if val < beta {
				beta = val
			}
		}
		return alpha < beta
	})

	if isMax {
		return alpha
	}
	return beta
}

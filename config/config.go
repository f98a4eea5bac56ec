// Package config collects the knobs the search and evaluator read, kept as
// a single struct passed by value rather than package-level globals.
package config

import (
	"github.com/kestrelchess/corechess/eval"
	"github.com/kestrelchess/corechess/pieces"
)

// Config bundles every tunable the search and evaluator consult.
type Config struct {
	// MaxPly bounds iterative deepening: the search runs depths 1..MaxPly
	// and returns the best move found at the deepest completed iteration.
	MaxPly int

	// EngineColor is the side the search is choosing a move for; it is
	// also the perspective the evaluator scores from.
	EngineColor pieces.Color

	// CentralBonus toggles the evaluator's central-occupancy term.
	CentralBonus bool
	// CentralBonusMaxPly disables CentralBonus once the search depth
	// exceeds this value, keeping deep leaves cheap to score. Zero means
	// no ply-based cutoff.
	CentralBonusMaxPly int
}

// Default returns a Config with conservative defaults: seven plies of
// iterative deepening, engine playing White, central bonus active
// throughout.
func Default() Config {
	return Config{
		MaxPly:             7,
		EngineColor:        pieces.White,
		CentralBonus:       true,
		CentralBonusMaxPly: 0,
	}
}

// centralBonusAt reports whether the central-occupancy term should be
// active at the given search depth.
func (c Config) centralBonusAt(depth int) bool {
	if !c.CentralBonus {
		return false
	}
	if c.CentralBonusMaxPly == 0 {
		return true
	}
	return depth <= c.CentralBonusMaxPly
}

// EvalOptionsAt returns the evaluator options to use when scoring a node at
// the given search depth.
func (c Config) EvalOptionsAt(depth int) eval.Options {
	return eval.Options{CentralBonus: c.centralBonusAt(depth)}
}

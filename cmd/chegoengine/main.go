// Command chegoengine is the engine's external interface boundary: it
// accepts a FEN position and an engine color, runs the search, and prints
// the chosen move as a <from><to> square pair -- never algebraic notation,
// since translating to/from a human notation is out of scope for the
// core. It is a small github.com/spf13/cobra command tree with a root
// search entrypoint and a `perft` diagnostic subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kestrelchess/corechess/bitutil"
	"github.com/kestrelchess/corechess/boardfmt"
	"github.com/kestrelchess/corechess/config"
	"github.com/kestrelchess/corechess/fen"
	"github.com/kestrelchess/corechess/internal/perft"
	"github.com/kestrelchess/corechess/movegen"
	"github.com/kestrelchess/corechess/moves"
	"github.com/kestrelchess/corechess/pieces"
	"github.com/kestrelchess/corechess/position"
	"github.com/kestrelchess/corechess/search"
)

// startingFEN is the standard initial position in Forsyth-Edwards
// Notation, used as the default --fen value.
const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	movegen.InitAttackTables()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		fenStr   string
		colorStr string
		maxPly   int
		verbose  bool
	)

	root := &cobra.Command{
		Use:   "chegoengine",
		Short: "Choose the best move for a given chess position",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			pos, engineColor := loadPosition(fenStr, colorStr)

			cfg := config.Default()
			cfg.EngineColor = engineColor
			if maxPly > 0 {
				cfg.MaxPly = maxPly
			}

			logger.Info("searching", zap.String("fen", fenStr), zap.Int("max_ply", cfg.MaxPly))
			best, err := search.BestMove(pos, cfg, logger)
			if err != nil {
				return err
			}

			fmt.Println(moveToSquarePair(best))
			return nil
		},
	}

	root.Flags().StringVar(&fenStr, "fen", startingFEN, "FEN of the position to search from")
	root.Flags().StringVar(&colorStr, "color", "white", "engine's color: white or black")
	root.Flags().IntVar(&maxPly, "max-ply", 0, "override the default iterative-deepening depth")
	root.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newPerftCmd())
	return root
}

func newPerftCmd() *cobra.Command {
	var (
		fenStr  string
		depth   int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Count leaf nodes reached by the move generator to a given depth",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, _ := loadPosition(fenStr, "white")

			if verbose {
				divided := perft.Divide(&pos, depth)
				total := 0
				for m, n := range divided {
					fmt.Printf("%s: %d\n", moveToSquarePair(m), n)
					total += n
				}
				fmt.Printf("total: %d\n", total)
				return nil
			}

			fmt.Println(perft.Count(&pos, depth))
			return nil
		},
	}

	cmd.Flags().StringVar(&fenStr, "fen", startingFEN, "FEN of the position to enumerate from")
	cmd.Flags().IntVar(&depth, "depth", 2, "perft depth")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print a per-root-move node count")

	return cmd
}

func loadPosition(fenStr, colorStr string) (position.Position, pieces.Color) {
	engineColor := pieces.White
	if colorStr == "black" {
		engineColor = pieces.Black
	}

	if fenStr == "" || fenStr == startingFEN {
		return position.NewStarting(), engineColor
	}

	pos, _, _ := fen.Parse(fenStr)
	return pos, engineColor
}

func moveToSquarePair(m moves.Move) string {
	from := bitutil.BitScan(m.FromMask)
	to := bitutil.BitScan(m.ToMask)
	return boardfmt.SquareName(from) + boardfmt.SquareName(to)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

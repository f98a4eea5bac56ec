// Package pieces declares the piece kind and color vocabulary shared by the
// position, move generator, and evaluator packages.
package pieces

// Kind identifies a chess piece type, independent of color.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	// None is the sentinel for "no piece" (an empty square, or a
	// non-capturing/non-promoting move field).
	None
)

// Symbols maps each kind to its uppercase (white) algebraic letter, and
// None to a space.
var Symbols = [7]byte{'P', 'N', 'B', 'R', 'Q', 'K', ' '}

// Color is one of White or Black.
type Color int

const (
	White Color = iota
	Black
)

// Opp returns the opposing color.
func Opp(c Color) Color { return 1 - c }

// PromotionKind names the Kind values a pawn may promote to. It is an
// alias of Kind, so the compiler does not restrict it to those four.
type PromotionKind = Kind

const (
	PromoKnight PromotionKind = Knight
	PromoBishop PromotionKind = Bishop
	PromoRook   PromotionKind = Rook
	PromoQueen  PromotionKind = Queen
)

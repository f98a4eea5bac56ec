// Package boardfmt renders a position.Position into a human-readable
// string for the diagnostic, read-only query boundary the core exposes to
// a UI collaborator. This is not a notation translator -- it never parses
// or emits algebraic notation, only a fixed ASCII/Unicode board diagram.
package boardfmt

import (
	"strings"

	"github.com/kestrelchess/corechess/bitutil"
	"github.com/kestrelchess/corechess/pieces"
	"github.com/kestrelchess/corechess/position"
)

var pieceSymbols = [2][6]rune{
	pieces.White: {'♙', '♘', '♗', '♖', '♕', '♔'},
	pieces.Black: {'♟', '♞', '♝', '♜', '♛', '♚'},
}

var squareNames = buildSquareNames()

func buildSquareNames() [64]string {
	const files = "abcdefgh"
	var names [64]string
	for sq := range 64 {
		names[sq] = string([]byte{files[position.File(sq)], '1' + byte(position.Rank(sq))})
	}
	return names
}

// Bitboard renders a single piece bitboard as an 8x8 diagram.
func Bitboard(bb uint64, color pieces.Color, kind pieces.Kind) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)

			symbol := pieceSymbols[color][kind]
			if bb&square == 0 {
				symbol = '.'
			}

			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}

// Position renders the full board plus side to move, en-passant state, and
// castling rights.
func Position(p *position.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)

			symbol := '.'
			if c, k := p.PieceAt(square); k != pieces.None {
				symbol = pieceSymbols[c][k]
			}

			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}

	b.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")
	if p.SideToMove == pieces.White {
		b.WriteString("white\nEn passant: ")
	} else {
		b.WriteString("black\nEn passant: ")
	}

	if p.EPTarget == 0 {
		b.WriteString("none\nCastling rights: ")
	} else {
		b.WriteString(squareNames[bitutil.BitScan(p.EPTarget)])
		b.WriteString("\nCastling rights: ")
	}

	if p.CastleRights[pieces.White]&position.CastleKingSide != 0 {
		b.WriteByte('K')
	}
	if p.CastleRights[pieces.White]&position.CastleQueenSide != 0 {
		b.WriteByte('Q')
	}
	if p.CastleRights[pieces.Black]&position.CastleKingSide != 0 {
		b.WriteByte('k')
	}
	if p.CastleRights[pieces.Black]&position.CastleQueenSide != 0 {
		b.WriteByte('q')
	}
	b.WriteByte('\n')

	return b.String()
}

// SquareName renders a 0..63 square index as its algebraic name.
func SquareName(square int) string { return squareNames[square] }

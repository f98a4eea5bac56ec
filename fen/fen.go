// Package fen implements conversions between Forsyth-Edwards Notation
// strings and a position.Position, including the ep_participants field
// the position package derives from ep_target since standard FEN has no
// field for it.
//
// fen expects that the passed FEN strings are always well-formed and may
// panic if they are not -- it is not a defensive input-validation layer.
package fen

import (
	"strconv"
	"strings"

	"github.com/kestrelchess/corechess/bitutil"
	"github.com/kestrelchess/corechess/pieces"
	"github.com/kestrelchess/corechess/position"
)

// ToPosition parses the piece-placement field of a FEN string into a
// freshly built Position; every other field (side to move, castling
// rights, en-passant target) is left at its zero value. Use Parse for the
// full six-field FEN record.
func ToPosition(piecePlacementData string) position.Position {
	var p position.Position
	squareIndex := 56

	for i := 0; i < len(piecePlacementData); i++ {
		char := piecePlacementData[i]

		switch {
		case char == '/':
			squareIndex -= 16
		case char >= '1' && char <= '8':
			squareIndex += int(char - '0')
		default:
			color, kind := pieceFromChar(char)
			p.Piece[color][kind] |= 1 << squareIndex
			squareIndex++
		}
	}

	p.RefreshOccupancy()
	return p
}

// pieceFromChar maps a FEN piece letter to its color and kind. Manual
// switch rather than a map: fewer allocations and faster dispatch.
func pieceFromChar(char byte) (pieces.Color, pieces.Kind) {
	switch char {
	case 'P':
		return pieces.White, pieces.Pawn
	case 'N':
		return pieces.White, pieces.Knight
	case 'B':
		return pieces.White, pieces.Bishop
	case 'R':
		return pieces.White, pieces.Rook
	case 'Q':
		return pieces.White, pieces.Queen
	case 'K':
		return pieces.White, pieces.King
	case 'p':
		return pieces.Black, pieces.Pawn
	case 'n':
		return pieces.Black, pieces.Knight
	case 'b':
		return pieces.Black, pieces.Bishop
	case 'r':
		return pieces.Black, pieces.Rook
	case 'q':
		return pieces.Black, pieces.Queen
	case 'k':
		return pieces.Black, pieces.King
	}
	panic("fen: unrecognized piece letter " + string(char))
}

var pieceLetters = [2][6]byte{
	pieces.White: {pieces.Pawn: 'P', pieces.Knight: 'N', pieces.Bishop: 'B', pieces.Rook: 'R', pieces.Queen: 'Q', pieces.King: 'K'},
	pieces.Black: {pieces.Pawn: 'p', pieces.Knight: 'n', pieces.Bishop: 'b', pieces.Rook: 'r', pieces.Queen: 'q', pieces.King: 'k'},
}

// PiecePlacement renders just the first field of a FEN string for p.
func PiecePlacement(p *position.Position) string {
	var board [8][8]byte

	for c := pieces.White; c <= pieces.Black; c++ {
		for k := pieces.Pawn; k <= pieces.King; k++ {
			bb := p.Piece[c][k]
			for ; bb > 0; bb &= bb - 1 {
				sq := bitutil.BitScan(bb)
				board[sq/8][sq%8] = pieceLetters[c][k]
			}
		}
	}

	var out strings.Builder
	out.Grow(20)

	var empty byte
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			char := board[rank][file]
			if char == 0 {
				empty++
			} else {
				if empty > 0 {
					out.WriteByte('0' + empty)
					empty = 0
				}
				out.WriteByte(char)
			}
		}
		if empty > 0 {
			out.WriteByte('0' + empty)
			empty = 0
		}
		if rank != 0 {
			out.WriteByte('/')
		}
	}

	return out.String()
}

// squareFromString parses an algebraic square name ("e3") into a square
// index, or 0 for "-".
func squareFromString(str string) int {
	if str == "-" {
		return 0
	}
	return int(str[0]-'a') + (int(str[1]-'0')-1)*8
}

// squareToString renders a square index as its algebraic name.
func squareToString(square int) string {
	const files = "abcdefgh"
	return string([]byte{files[square%8], '0' + byte(square/8+1)})
}

// Parse parses a full FEN string into a Position, with en-passant
// participants re-derived rather than carried in the FEN text (standard
// FEN has no field for them).
func Parse(fenStr string) (position.Position, int, int) {
	fields := strings.Fields(fenStr)
	if len(fields) != 6 {
		panic("fen: malformed FEN string: " + fenStr)
	}

	p := ToPosition(fields[0])

	if fields[1] == "b" {
		p.SideToMove = pieces.Black
	} else {
		p.SideToMove = pieces.White
	}

	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			p.CastleRights[pieces.White] |= position.CastleKingSide
		case 'Q':
			p.CastleRights[pieces.White] |= position.CastleQueenSide
		case 'k':
			p.CastleRights[pieces.Black] |= position.CastleKingSide
		case 'q':
			p.CastleRights[pieces.Black] |= position.CastleQueenSide
		}
	}

	if epSquare := squareFromString(fields[3]); epSquare != 0 {
		p.EPTarget = 1 << epSquare
		// The FEN field names the passed-over square; the pawn that
		// actually double-pushed landed one rank further in the direction
		// the opponent (not the side to move) was moving.
		var landing uint64
		if p.SideToMove == pieces.White {
			landing = p.EPTarget >> 8
		} else {
			landing = p.EPTarget << 8
		}
		p.EPParticipants = position.AdjacentPawns(landing, p.Piece[p.SideToMove][pieces.Pawn])
	}

	halfmoveCnt, err := strconv.Atoi(fields[4])
	if err != nil {
		panic("fen: cannot parse halfmove counter: " + err.Error())
	}
	fullmoveCnt, err := strconv.Atoi(fields[5])
	if err != nil {
		panic("fen: cannot parse fullmove counter: " + err.Error())
	}

	return p, halfmoveCnt, fullmoveCnt
}

// Serialize renders p, plus the halfmove and fullmove counters (which
// Position itself does not track), as a complete FEN string.
func Serialize(p *position.Position, halfmoveCnt, fullmoveCnt int) string {
	var out strings.Builder
	out.Grow(64)

	out.WriteString(PiecePlacement(p))

	if p.SideToMove == pieces.White {
		out.WriteString(" w ")
	} else {
		out.WriteString(" b ")
	}

	wrote := false
	if p.CastleRights[pieces.White]&position.CastleKingSide != 0 {
		out.WriteByte('K')
		wrote = true
	}
	if p.CastleRights[pieces.White]&position.CastleQueenSide != 0 {
		out.WriteByte('Q')
		wrote = true
	}
	if p.CastleRights[pieces.Black]&position.CastleKingSide != 0 {
		out.WriteByte('k')
		wrote = true
	}
	if p.CastleRights[pieces.Black]&position.CastleQueenSide != 0 {
		out.WriteByte('q')
		wrote = true
	}
	if !wrote {
		out.WriteByte('-')
	}
	out.WriteByte(' ')

	if p.EPTarget == 0 {
		out.WriteString("- ")
	} else {
		out.WriteString(squareToString(bitutil.BitScan(p.EPTarget)))
		out.WriteByte(' ')
	}

	out.WriteString(strconv.Itoa(halfmoveCnt))
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(fullmoveCnt))
	return out.String()
}

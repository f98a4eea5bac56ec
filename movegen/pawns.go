package movegen

import (
	"github.com/kestrelchess/corechess/bitutil"
	"github.com/kestrelchess/corechess/moves"
	"github.com/kestrelchess/corechess/pieces"
	"github.com/kestrelchess/corechess/position"
)

// promotionKinds are the four pieces a pawn may promote to, tried in the
// order a reader would expect them printed.
var promotionKinds = [4]pieces.Kind{pieces.Queen, pieces.Rook, pieces.Bishop, pieces.Knight}

// genPawnMoves emits single and double pushes, diagonal captures, en-passant
// captures, and promotions (plain and capturing) for every pawn of us.
func genPawnMoves(p *position.Position, us, enemy pieces.Color, list *moves.MoveList) {
	pawns := p.Piece[us][pieces.Pawn]
	promoRank := position.Rank8
	doublePushRank := position.Rank2
	forward := 8
	if us == pieces.Black {
		promoRank = position.Rank1
		doublePushRank = position.Rank7
		forward = -8
	}

	for bb := pawns; bb != 0; {
		fromSq := bitutil.PopLSB(&bb)
		from := uint64(1) << fromSq

		genPawnPushes(p, us, from, fromSq, forward, doublePushRank, promoRank, list)
		genPawnCaptures(p, us, enemy, from, fromSq, promoRank, list)
		genPawnEnPassant(p, us, from, list)
	}
}

func genPawnPushes(p *position.Position, us pieces.Color, from uint64, fromSq, forward int, doublePushRank, promoRank uint64, list *moves.MoveList) {
	oneSq := fromSq + forward
	if oneSq < 0 || oneSq > 63 {
		return
	}
	one := uint64(1) << oneSq
	if one&p.OccAll != 0 {
		return
	}
	emitPawnMove(us, from, one, pieces.None, 0, one&promoRank != 0, list)

	if from&doublePushRank == 0 {
		return
	}
	twoSq := oneSq + forward
	two := uint64(1) << twoSq
	if two&p.OccAll == 0 {
		emitPawnMove(us, from, two, pieces.None, 0, false, list)
	}
}

func genPawnCaptures(p *position.Position, us, enemy pieces.Color, from uint64, fromSq int, promoRank uint64, list *moves.MoveList) {
	targets := pawnAttacks[us][fromSq] & p.Occ[enemy]
	for targets != 0 {
		toSq := bitutil.PopLSB(&targets)
		to := uint64(1) << toSq
		_, captured := p.PieceAt(to)
		emitPawnMove(us, from, to, captured, 0, to&promoRank != 0, list)
	}
}

func genPawnEnPassant(p *position.Position, us pieces.Color, from uint64, list *moves.MoveList) {
	if p.EPTarget == 0 || from&p.EPParticipants == 0 {
		return
	}
	var victim uint64
	if us == pieces.White {
		victim = p.EPTarget >> 8
	} else {
		victim = p.EPTarget << 8
	}
	list.Push(moves.Move{
		FromMask:     from,
		ToMask:       p.EPTarget,
		MoverKind:    pieces.Pawn,
		MoverColor:   us,
		CapturedKind: pieces.Pawn,
		EPVictimMask: victim,
	})
}

// emitPawnMove pushes either a single plain/capturing pawn move, or -- when
// promoting is true -- one move per entry in promotionKinds, all sharing
// the same from/to/captured fields.
func emitPawnMove(us pieces.Color, from, to uint64, captured pieces.Kind, epVictim uint64, promoting bool, list *moves.MoveList) {
	if !promoting {
		list.Push(moves.Move{
			FromMask:     from,
			ToMask:       to,
			MoverKind:    pieces.Pawn,
			MoverColor:   us,
			CapturedKind: captured,
			EPVictimMask: epVictim,
		})
		return
	}
	for _, promo := range promotionKinds {
		list.Push(moves.Move{
			FromMask:     from,
			ToMask:       to,
			MoverKind:    pieces.Pawn,
			MoverColor:   us,
			CapturedKind: captured,
			PromotedKind: promo,
			EPVictimMask: epVictim,
		})
	}
}

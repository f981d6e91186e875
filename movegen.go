package chess

import "github.com/seekerror/stdlib/pkg/lang"

// LegalMoves generates every legal move in p into list (appending; callers
// should Reset list first unless deliberately accumulating): pseudo-legal
// generation restricted to a per-situation target set, followed by a
// king-safety filter for castling and king steps, followed by a
// pin/discovered-check safety post-pass. The post-pass is simpler to
// verify than folding pin restrictions into every piece generator, and is
// the only structure that handles the en-passant double-discovered-check
// case cleanly.
func (p *Position) LegalMoves(list *MoveList) {
	king, ok := p.board.KingOf(p.turn)
	if !ok {
		return // guaranteed by validated-position invariant; defensive no-op
	}

	var epCandidates MoveList
	p.genEnPassantCandidates(&epCandidates)
	hasEp := epCandidates.Len() > 0

	checkers := p.Checkers()
	friendly := p.board.ByColor(p.turn)

	switch checkers.Count() {
	case 0:
		target := friendly.Complement()
		p.genPawnMoves(target, list)
		p.genKnightMoves(target, list)
		p.genSliderMoves(Bishop, target, list)
		p.genSliderMoves(Rook, target, list)
		p.genSliderMoves(Queen, target, list)
		p.genKingMoves(king, friendly.Complement(), list)
		p.genCastlingMoves(KingSide, list)
		p.genCastlingMoves(QueenSide, list)
		for i := 0; i < epCandidates.Len(); i++ {
			list.push(epCandidates.At(i))
		}

	default:
		shadow := p.evasionShadow(checkers)
		p.genKingMoves(king, friendly.Complement().Without(shadow), list)

		if checkers.Count() == 1 {
			checkerSq, _ := checkers.First()
			target := Between(king, checkerSq).WithSquare(checkerSq)
			p.genPawnMoves(target, list)
			p.genKnightMoves(target, list)
			p.genSliderMoves(Bishop, target, list)
			p.genSliderMoves(Rook, target, list)
			p.genSliderMoves(Queen, target, list)

			for i := 0; i < epCandidates.Len(); i++ {
				m := epCandidates.At(i)
				if m.CapturedSquare() == checkerSq {
					list.push(m)
				}
			}
		}
		// Two or more checkers: only king moves are possible.
	}

	blockers := p.computeBlockers(king)
	if blockers != 0 || hasEp {
		list.retain(func(m Move) bool { return p.isSafe(king, blockers, m) })
	}
}

// Legals is the convenience allocating form of LegalMoves.
func (p *Position) Legals() MoveList {
	var list MoveList
	p.LegalMoves(&list)
	return list
}

// IsLegal reports whether m is a legal move in p.
func (p *Position) IsLegal(m Move) bool {
	list := p.Legals()
	for i := 0; i < list.Len(); i++ {
		if list.At(i).Equal(m) {
			return true
		}
	}
	return false
}

// SanCandidates generates every legal move with the given role landing on
// `to`, the primitive SAN disambiguation is built on. Pawn candidates
// moving to a last-rank square include every promotion.
func (p *Position) SanCandidates(role Role, to Square, list *MoveList) {
	var all MoveList
	p.LegalMoves(&all)
	for i := 0; i < all.Len(); i++ {
		m := all.At(i)
		switch m.Kind {
		case NormalMove:
			if m.Role == role && m.To == to {
				list.push(m)
			}
		case EnPassantMove:
			if role == Pawn && m.To == to {
				list.push(m)
			}
		case PutMove:
			if m.Role == role && m.To == to {
				list.push(m)
			}
		}
	}
}

// CastlingMoves generates the legal castling moves (0 or 1) for the given side.
func (p *Position) CastlingMoves(side CastlingSide, list *MoveList) {
	var all MoveList
	p.LegalMoves(&all)
	for i := 0; i < all.Len(); i++ {
		m := all.At(i)
		if m.Kind != CastleMove {
			continue
		}
		rookSq, ok := p.castling.RookSquare(p.turn, side)
		if ok && m.Rook == rookSq {
			list.push(m)
		}
	}
}

// evasionShadow is the union of rays from each sliding checker through the
// king, excluding the checker's own square: the king
// may not step to a square the checker would still reach once the king is
// no longer blocking its own retreat path.
func (p *Position) evasionShadow(checkers Bitboard) Bitboard {
	king, _ := p.board.KingOf(p.turn)
	var shadow Bitboard
	for bb := checkers; bb != 0; {
		sq := bb.Pop()
		if isSliderRole(p.board.RoleAt(sq)) {
			shadow |= Ray(king, sq).WithoutSquare(sq)
		}
	}
	return shadow
}

func isSliderRole(r Role) bool {
	return r == Bishop || r == Rook || r == Queen
}

// genKingMoves appends pseudo-legal king steps to squares in `allowed` that
// are not attacked by the enemy with the king itself removed from the
// occupancy: a sliding checker's ray must not be blockable by the king
// retreating straight back along it.
func (p *Position) genKingMoves(king Square, allowed Bitboard, list *MoveList) {
	enemy := p.turn.Other()
	occWithoutKing := p.board.Occupied().WithoutSquare(king)
	candidates := KingAttacks(king) & allowed
	for bb := candidates; bb != 0; {
		to := bb.Pop()
		if AttacksTo(p.board, to, enemy, occWithoutKing) != 0 {
			continue
		}
		list.push(NewNormalMove(King, king, to, p.captureAt(to), lang.Optional[Role]{}))
	}
}

func (p *Position) captureAt(sq Square) lang.Optional[Role] {
	if r := p.board.RoleAt(sq); r != NoRole && p.board.ByColor(p.turn.Other()).Has(sq) {
		return lang.Some(r)
	}
	return lang.Optional[Role]{}
}

func (p *Position) genKnightMoves(target Bitboard, list *MoveList) {
	for bb := p.board.ByPiece(p.turn, Knight); bb != 0; {
		from := bb.Pop()
		for t := KnightAttacks(from) & target; t != 0; {
			to := t.Pop()
			list.push(NewNormalMove(Knight, from, to, p.captureAt(to), lang.Optional[Role]{}))
		}
	}
}

func (p *Position) genSliderMoves(role Role, target Bitboard, list *MoveList) {
	occ := p.board.Occupied()
	for bb := p.board.ByPiece(p.turn, role); bb != 0; {
		from := bb.Pop()
		var attacks Bitboard
		switch role {
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		case Queen:
			attacks = QueenAttacks(from, occ)
		}
		for t := attacks & target; t != 0; {
			to := t.Pop()
			list.push(NewNormalMove(role, from, to, p.captureAt(to), lang.Optional[Role]{}))
		}
	}
}

var promotionRoles = [4]Role{Queen, Rook, Bishop, Knight}

// genPawnMoves appends pseudo-legal non-en-passant pawn moves (captures
// including promotions, single pushes including promotions, double pushes)
// whose destination lies in target.
func (p *Position) genPawnMoves(target Bitboard, list *MoveList) {
	occ := p.board.Occupied()
	enemy := p.board.ByColor(p.turn.Other())
	pawns := p.board.ByPiece(p.turn, Pawn)
	lastRank := RankBb(p.turn.Other().BackRank())

	for bb := pawns; bb != 0; {
		from := bb.Pop()

		captures := PawnAttacks(p.turn, from) & enemy & target
		for t := captures; t != 0; {
			to := t.Pop()
			p.pushPawnMove(from, to, true, lastRank, list)
		}

		single := Square(int(from) + p.turn.push()*8)
		if single.valid() && !occ.Has(single) {
			if target.Has(single) {
				p.pushPawnMove(from, single, false, lastRank, list)
			}
			if from.RelativeRank(p.turn) == 1 {
				dbl := Square(int(from) + p.turn.push()*16)
				if dbl.valid() && !occ.Has(dbl) && target.Has(dbl) {
					list.push(NewNormalMove(Pawn, from, dbl, lang.Optional[Role]{}, lang.Optional[Role]{}))
				}
			}
		}
	}
}

func (p *Position) pushPawnMove(from, to Square, capture bool, lastRank Bitboard, list *MoveList) {
	var cap lang.Optional[Role]
	if capture {
		cap = lang.Some(p.board.RoleAt(to))
	}
	if lastRank.Has(to) {
		for _, promo := range promotionRoles {
			list.push(NewNormalMove(Pawn, from, to, cap, lang.Some(promo)))
		}
		return
	}
	list.push(NewNormalMove(Pawn, from, to, cap, lang.Optional[Role]{}))
}

// genEnPassantCandidates appends the (0, 1, or 2) tentative en passant
// captures available from the position's raw en passant target, with no
// check/safety filtering — callers apply evasion and pin-safety rules
// separately.
func (p *Position) genEnPassantCandidates(list *MoveList) {
	sq, ok := p.epTargetRaw()
	if !ok {
		return
	}
	captureRank := sq.Rank() - p.turn.push()
	pawns := p.board.ByPiece(p.turn, Pawn)
	for _, df := range [2]int{-1, 1} {
		file := sq.File() + df
		if file < 0 || file > 7 {
			continue
		}
		from := NewSquare(file, captureRank)
		if pawns.Has(from) {
			list.push(NewEnPassantMove(from, sq))
		}
	}
}

// legalEnPassant is genEnPassantCandidates restricted to candidates that
// would actually be legal (used by EpSquare's is_relevant_ep filter).
func (p *Position) legalEnPassant(list *MoveList) {
	var candidates MoveList
	p.genEnPassantCandidates(&candidates)
	if candidates.Len() == 0 {
		return
	}
	king, ok := p.board.KingOf(p.turn)
	if !ok {
		return
	}
	blockers := p.computeBlockers(king)
	checkers := p.Checkers()
	for i := 0; i < candidates.Len(); i++ {
		m := candidates.At(i)
		if checkers.Count() >= 2 {
			continue
		}
		if checkers.Count() == 1 {
			checkerSq, _ := checkers.First()
			if m.CapturedSquare() != checkerSq {
				continue
			}
		}
		if p.isSafe(king, blockers, m) {
			list.push(m)
		}
	}
}

// computeBlockers returns the friendly pieces pinned along a ray from the
// king to an enemy slider — the sole piece standing between them.
func (p *Position) computeBlockers(king Square) Bitboard {
	occ := p.board.Occupied()
	enemy := p.turn.Other()
	var blockers Bitboard

	checkPinner := func(s Square) {
		onRay := Between(king, s) & occ
		if onRay.Count() == 1 {
			if sq, _ := onRay.First(); p.board.ByColor(p.turn).Has(sq) {
				blockers |= sq.Bitboard()
			}
		}
	}

	orthogonal := p.board.sliders(Rook, Queen) & p.board.ByColor(enemy)
	for bb := orthogonal; bb != 0; {
		s := bb.Pop()
		if s.Rank() == king.Rank() || s.File() == king.File() {
			checkPinner(s)
		}
	}
	diagonal := p.board.sliders(Bishop, Queen) & p.board.ByColor(enemy)
	for bb := diagonal; bb != 0; {
		s := bb.Pop()
		if abs(s.Rank()-king.Rank()) == abs(s.File()-king.File()) {
			checkPinner(s)
		}
	}
	return blockers
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// genCastlingMoves appends the legal castle for `side`, if any.
func (p *Position) genCastlingMoves(side CastlingSide, list *MoveList) {
	rookSq, ok := p.castling.RookSquare(p.turn, side)
	if !ok {
		return
	}
	king, _ := p.board.KingOf(p.turn)
	occ := p.board.Occupied()
	slot := p.castling.slots[p.turn][side]

	if slot.path&occ != 0 {
		return
	}

	enemy := p.turn.Other()
	occWithoutKing := occ.WithoutSquare(king)
	for bb := slot.kingPath; bb != 0; {
		sq := bb.Pop()
		if AttacksTo(p.board, sq, enemy, occWithoutKing) != 0 {
			return
		}
	}

	backRank := p.turn.BackRank()
	kingToFile := 2
	if side == KingSide {
		kingToFile = 6
	}
	kingTo := NewSquare(kingToFile, backRank)
	if p.castlingUncoversRankAttack(rookSq, kingTo) {
		return
	}

	list.push(NewCastleMove(king, rookSq))
}

// castlingUncoversRankAttack handles the Chess960 edge case where
// a rook "jumping across" the king to its destination can unblock an enemy
// rank slider that the rook itself was blocking at its origin.
func (p *Position) castlingUncoversRankAttack(rook, kingTo Square) bool {
	occAfterRookMoves := p.board.Occupied().WithoutSquare(rook)
	enemyRooksAndQueens := p.board.sliders(Rook, Queen) & p.board.ByColor(p.turn.Other())
	return RookAttacks(kingTo, occAfterRookMoves)&enemyRooksAndQueens&RankBb(kingTo.Rank()) != 0
}

package chess

import "github.com/seekerror/stdlib/pkg/lang"

// PlayUnchecked applies m to a clone of p and returns the result, assuming
// m is legal; illegal input may corrupt the returned position. This is a
// contract on the caller, not a runtime check.
//
// Positions are cheap to clone and the executor returns a new one rather
// than mutating shared state, so two callers can safely hold both P and P'.
func (p *Position) PlayUnchecked(m Move) *Position {
	np := p.Clone()
	np.applyMove(m)
	return np
}

// Play validates m against p before applying it, returning IllegalMove if
// m is not in p.Legals().
func (p *Position) Play(m Move) (*Position, error) {
	if !p.IsLegal(m) {
		return nil, &IllegalMove{Move: m}
	}
	return p.PlayUnchecked(m), nil
}

func (p *Position) applyMove(m Move) {
	mover := p.turn
	p.epSquare = lang.Optional[Square]{}
	p.halfMoveClock++

	switch m.Kind {
	case NormalMove:
		if m.Role == Pawn || m.IsCapture() {
			p.halfMoveClock = 0
		}
		if m.Role == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
			p.epSquare = lang.Some(Square((int(m.From) + int(m.To)) / 2))
		}
		if m.Role == King {
			p.castling = p.castling.discardColor(mover)
		}
		p.castling = p.castling.discardSquare(m.From).discardSquare(m.To)

		promoted := p.board.IsPromoted(m.From)
		role := m.Role
		if promo, ok := m.Promotion.V(); ok {
			role = promo
			promoted = true
		}
		p.board.DiscardPieceAt(m.From)
		p.board.SetPieceAt(m.To, Piece{Color: mover, Role: role}, promoted)

	case CastleMove:
		backRank := mover.BackRank()
		kingSide := m.Rook.File() > m.King.File()
		kingToFile, rookToFile := 2, 3
		if kingSide {
			kingToFile, rookToFile = 6, 5
		}
		kingTo := NewSquare(kingToFile, backRank)
		rookTo := NewSquare(rookToFile, backRank)

		p.board.DiscardPieceAt(m.King)
		p.board.DiscardPieceAt(m.Rook)
		// Rook placed before king so that, in the Chess960 case where a
		// destination coincides with an origin, the king still ends up on
		// its correct square.
		p.board.SetPieceAt(rookTo, Piece{Color: mover, Role: Rook}, false)
		p.board.SetPieceAt(kingTo, Piece{Color: mover, Role: King}, false)
		p.castling = p.castling.discardColor(mover)

	case EnPassantMove:
		p.board.DiscardPieceAt(m.CapturedSquare())
		p.board.DiscardPieceAt(m.From)
		p.board.SetPieceAt(m.To, Piece{Color: mover, Role: Pawn}, false)
		p.halfMoveClock = 0

	case PutMove:
		p.board.SetPieceAt(m.To, Piece{Color: mover, Role: m.Role}, false)
	}

	if mover == Black {
		p.fullMoveNumber++
	}
	p.turn = mover.Other()
}

// IsIrreversible reports whether m can never be part of a repeated
// position: pawn moves, captures, castles, drops, and any move that
// changes castling rights or the en passant target.
func (p *Position) IsIrreversible(m Move) bool {
	switch m.Kind {
	case CastleMove, EnPassantMove, PutMove:
		return true
	case NormalMove:
		if m.Role == Pawn || m.IsCapture() {
			return true
		}
	}

	after := p.PlayUnchecked(m)
	if after.castling.Rights() != p.castling.Rights() {
		return true
	}
	_, hadEp := p.epTargetRaw()
	_, hasEp := after.epTargetRaw()
	return hadEp != hasEp
}

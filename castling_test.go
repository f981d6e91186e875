package chess

import "testing"

func TestNewCastlingClassical(t *testing.T) {
	s, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	ct, ok := newCastling(s.Board, s.CastlingRights)
	if !ok {
		t.Fatalf("newCastling: rights did not reconstruct")
	}
	if rook, has := ct.RookSquare(White, KingSide); !has || rook != SquareH1 {
		t.Errorf("White king-side rook = %v, %v, want h1, true", rook, has)
	}
	if rook, has := ct.RookSquare(White, QueenSide); !has || rook != SquareA1 {
		t.Errorf("White queen-side rook = %v, %v, want a1, true", rook, has)
	}
	if rook, has := ct.RookSquare(Black, KingSide); !has || rook != SquareH8 {
		t.Errorf("Black king-side rook = %v, %v, want h8, true", rook, has)
	}
}

func TestDiscardSquareRemovesRight(t *testing.T) {
	s, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	ct, _ := newCastling(s.Board, s.CastlingRights)
	next := ct.discardSquare(SquareH1)
	if _, has := next.RookSquare(White, KingSide); has {
		t.Errorf("expected White king-side right discarded")
	}
	if _, has := next.RookSquare(White, QueenSide); !has {
		t.Errorf("expected White queen-side right to survive")
	}
}

func TestNewCastlingBadRights(t *testing.T) {
	b := NewBoard()
	b.SetPieceAt(SquareE1, Piece{Color: White, Role: King}, false)
	b.SetPieceAt(SquareE8, Piece{Color: Black, Role: King}, false)
	b.SetPieceAt(SquareH1, Piece{Color: White, Role: Rook}, false)

	// Claim a right for a1 even though no rook sits there.
	rights := SquareH1.Bitboard() | SquareA1.Bitboard()
	_, ok := newCastling(b, rights)
	if ok {
		t.Errorf("expected newCastling to fail: a1 right claimed without a rook")
	}
}

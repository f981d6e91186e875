package chess

import "testing"

func TestParseFenInitial(t *testing.T) {
	const initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	s, err := ParseFEN(initial)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if s.Turn != White {
		t.Errorf("Turn = %v, want White", s.Turn)
	}
	if got := s.String(); got != initial {
		t.Errorf("round trip = %q, want %q", got, initial)
	}
}

func TestParseFenChess960Castling(t *testing.T) {
	const fen = "rkr5/8/8/8/8/8/8/RKR5 w KQkq - 0 1"
	s, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// Both a1 and c1 are rooks flanking the king on b1; K/Q each resolve to
	// the outermost rook on the corresponding side.
	if !s.CastlingRights.Has(SquareC1) || !s.CastlingRights.Has(SquareA1) {
		t.Errorf("CastlingRights = %v, want both a1 and c1 set", s.CastlingRights)
	}
}

func TestParseFenMissingFields(t *testing.T) {
	if _, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"); err == nil {
		t.Errorf("expected error for too few fields")
	}
}

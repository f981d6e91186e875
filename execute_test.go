package chess

import (
	"testing"

	"github.com/seekerror/stdlib/pkg/lang"
)

func TestPlayEnPassant(t *testing.T) {
	s, err := ParseFEN("4k3/8/8/8/2pPp3/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	pos, posErr := FromSetup(s)
	if posErr != 0 {
		t.Fatalf("FromSetup: %v", posErr)
	}

	c4 := NewSquare(2, 3)
	d4 := NewSquare(3, 3)
	d3 := NewSquare(3, 2)

	m := NewEnPassantMove(c4, d3) // c4xd3 en passant
	next, err := pos.Play(m)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if role := next.Board().RoleAt(d3); role != Pawn {
		t.Errorf("RoleAt(d3) = %v, want Pawn", role)
	}
	if role := next.Board().RoleAt(d4); role != NoRole {
		t.Errorf("d4 should be vacated by the captured pawn")
	}
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	s, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	pos, posErr := FromSetup(s)
	if posErr != 0 {
		t.Fatalf("FromSetup: %v", posErr)
	}

	m := NewNormalMove(Rook, SquareA1, NewSquare(0, 3), lang.Optional[Role]{}, lang.Optional[Role]{})
	if _, err := pos.Play(m); err == nil {
		t.Errorf("expected IllegalMove: a1-a4 is blocked by the a-pawn")
	}
}

func TestIsIrreversiblePawnMove(t *testing.T) {
	s, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	pos, posErr := FromSetup(s)
	if posErr != 0 {
		t.Fatalf("FromSetup: %v", posErr)
	}
	m := NewNormalMove(Pawn, NewSquare(4, 1), NewSquare(4, 3), lang.Optional[Role]{}, lang.Optional[Role]{})
	if !pos.IsIrreversible(m) {
		t.Errorf("pawn push should be irreversible")
	}
}

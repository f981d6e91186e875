package chess

import "testing"

func TestBitboardBasics(t *testing.T) {
	var bb Bitboard
	bb = bb.WithSquare(SquareA1).WithSquare(SquareH8)
	if bb.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", bb.Count())
	}
	if !bb.MoreThanOne() {
		t.Errorf("MoreThanOne() = false, want true")
	}
	if !bb.Has(SquareA1) || !bb.Has(SquareH8) {
		t.Errorf("expected both squares set")
	}
	bb = bb.WithoutSquare(SquareA1)
	if bb.Has(SquareA1) {
		t.Errorf("WithoutSquare did not clear a1")
	}
}

func TestBitboardFirstLast(t *testing.T) {
	g6 := NewSquare(6, 5)
	bb := SquareB1.Bitboard() | g6.Bitboard()
	first, ok := bb.First()
	if !ok || first != SquareB1 {
		t.Errorf("First() = %v, %v, want b1, true", first, ok)
	}
	last, ok := bb.Last()
	if !ok || last != g6 {
		t.Errorf("Last() = %v, %v, want g6, true", last, ok)
	}
}

func TestRankAndFileBb(t *testing.T) {
	rank1 := RankBb(0)
	if rank1.Count() != 8 {
		t.Fatalf("RankBb(0).Count() = %d, want 8", rank1.Count())
	}
	fileA := FileBb(0)
	if !fileA.Has(SquareA1) || fileA.Has(SquareB1) {
		t.Errorf("FileBb(0) does not isolate the a-file")
	}
}

package chess

import "github.com/seekerror/stdlib/pkg/lang"

// Setup is an untrusted, read-only view of a position: a board plus the
// scalar game state, before it has passed validation into a Position. It
// is the round-trippable input and output of FromSetup/Position.Setup.
type Setup struct {
	Board          *Board
	Turn           Color
	CastlingRights Bitboard // rook squares with a granted castling right
	EpSquare       lang.Optional[Square]
	HalfMoveClock  int
	FullMoveNumber int
}

// InitialSetup returns the standard chess starting setup.
func InitialSetup() *Setup {
	b := NewBoard()
	for f := 0; f < 8; f++ {
		b.SetPieceAt(NewSquare(f, 1), Piece{White, Pawn}, false)
		b.SetPieceAt(NewSquare(f, 6), Piece{Black, Pawn}, false)
	}
	backRank := [8]Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f, r := range backRank {
		b.SetPieceAt(NewSquare(f, 0), Piece{White, r}, false)
		b.SetPieceAt(NewSquare(f, 7), Piece{Black, r}, false)
	}
	return &Setup{
		Board:          b,
		Turn:           White,
		CastlingRights: SquareA1.Bitboard() | SquareH1.Bitboard() | SquareA8.Bitboard() | SquareH8.Bitboard(),
		FullMoveNumber: 1,
	}
}

// Clone returns an independent deep copy of s.
func (s *Setup) Clone() *Setup {
	cp := *s
	cp.Board = s.Board.Clone()
	return &cp
}

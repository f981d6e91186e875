package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// FEN parsing and formatting of Setup values. Castling rights round-trip
// through a rights bitboard of rook squares rather than a fixed a1/h1/a8/h8
// assumption, so Chess960 starting setups parse and print correctly too.
var pieceSymbols = [NumColors][NumRoles]byte{
	White: {0, 'P', 'N', 'B', 'R', 'Q', 'K'},
	Black: {0, 'p', 'n', 'b', 'r', 'q', 'k'},
}

// ParseFEN parses a Forsyth-Edwards Notation string into a Setup.
func ParseFEN(fen string) (*Setup, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("chess: fen has too few fields: %q", fen)
	}
	for len(fields) < 6 {
		fields = append(fields, defaultField(len(fields)))
	}

	b, err := parsePiecePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	turn, err := parseSideToMove(fields[1])
	if err != nil {
		return nil, err
	}

	rights, err := parseCastlingRights(b, fields[2])
	if err != nil {
		return nil, err
	}

	var ep lang.Optional[Square]
	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("chess: invalid en passant square %q: %w", fields[3], err)
		}
		ep = lang.Some(sq)
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("chess: invalid halfmove clock %q", fields[4])
	}
	fullMove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("chess: invalid fullmove number %q", fields[5])
	}

	return &Setup{
		Board:          b,
		Turn:           turn,
		CastlingRights: rights,
		EpSquare:       ep,
		HalfMoveClock:  halfMove,
		FullMoveNumber: fullMove,
	}, nil
}

func defaultField(i int) string {
	if i == 4 {
		return "0"
	}
	return "1"
}

func parsePiecePlacement(s string) (*Board, error) {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("chess: fen piece placement must have 8 ranks, got %d", len(ranks))
	}
	b := NewBoard()
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, r := range rankStr {
			if r >= '1' && r <= '8' {
				file += int(r - '0')
				continue
			}
			role, color, ok := pieceFromSymbol(byte(r))
			if !ok {
				return nil, fmt.Errorf("chess: invalid fen piece symbol %q", r)
			}
			if file >= 8 {
				return nil, fmt.Errorf("chess: fen rank %d too long", rank+1)
			}
			b.SetPieceAt(NewSquare(file, rank), Piece{Color: color, Role: role}, false)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("chess: fen rank %d has %d squares, want 8", rank+1, file)
		}
	}
	return b, nil
}

func pieceFromSymbol(b byte) (Role, Color, bool) {
	for c := White; c <= Black; c++ {
		for r := Pawn; r <= King; r++ {
			if pieceSymbols[c][r] == b {
				return r, c, true
			}
		}
	}
	return NoRole, White, false
}

func parseSideToMove(s string) (Color, error) {
	switch s {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, fmt.Errorf("chess: invalid side to move %q", s)
	}
}

func parseCastlingRights(b *Board, s string) (Bitboard, error) {
	if s == "-" {
		return 0, nil
	}
	var rights Bitboard
	for _, r := range s {
		switch {
		case r == 'K' || r == 'Q':
			sq, ok := findCastlingRook(b, White, r == 'K')
			if !ok {
				return 0, fmt.Errorf("chess: no rook for castling right %q", r)
			}
			rights |= sq.Bitboard()
		case r == 'k' || r == 'q':
			sq, ok := findCastlingRook(b, Black, r == 'k')
			if !ok {
				return 0, fmt.Errorf("chess: no rook for castling right %q", r)
			}
			rights |= sq.Bitboard()
		case r >= 'A' && r <= 'H':
			rights |= NewSquare(int(r-'A'), White.BackRank()).Bitboard()
		case r >= 'a' && r <= 'h':
			rights |= NewSquare(int(r-'a'), Black.BackRank()).Bitboard()
		default:
			return 0, fmt.Errorf("chess: invalid castling field %q", s)
		}
	}
	return rights, nil
}

// findCastlingRook resolves the classical "KQkq" shorthand to a concrete
// rook square: the outermost rook on the back rank to the requested side of
// the king.
func findCastlingRook(b *Board, c Color, kingSide bool) (Square, bool) {
	king, ok := b.KingOf(c)
	if !ok {
		return 0, false
	}
	rooks := b.ByPiece(c, Rook) & RankBb(c.BackRank())
	found, has := Square(0), false
	for bb := rooks; bb != 0; {
		sq := bb.Pop()
		if kingSide && sq.File() > king.File() {
			if !has || sq.File() > found.File() {
				found, has = sq, true
			}
		} else if !kingSide && sq.File() < king.File() {
			if !has || sq.File() < found.File() {
				found, has = sq, true
			}
		}
	}
	return found, has
}

// String renders s in FEN.
func (s *Setup) String() string {
	var sb strings.Builder
	sb.WriteString(formatPiecePlacement(s.Board))
	sb.WriteByte(' ')
	sb.WriteString(Fold(s.Turn, "w", "b"))
	sb.WriteByte(' ')
	sb.WriteString(formatCastlingRights(s.Board, s.CastlingRights))
	sb.WriteByte(' ')
	if sq, ok := s.EpSquare.V(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", s.HalfMoveClock, s.FullMoveNumber)
	return sb.String()
}

func formatPiecePlacement(b *Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			p, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceSymbols[p.Color][p.Role])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func formatCastlingRights(b *Board, rights Bitboard) string {
	if rights == 0 {
		return "-"
	}
	var sb strings.Builder
	for _, e := range []struct {
		c        Color
		kingSide bool
		letter   byte
	}{
		{White, true, 'K'}, {White, false, 'Q'},
		{Black, true, 'k'}, {Black, false, 'q'},
	} {
		sq, ok := findCastlingRook(b, e.c, e.kingSide)
		if ok && rights.Has(sq) {
			sb.WriteByte(e.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// String renders p in FEN.
func (p *Position) String() string {
	return p.Setup().String()
}

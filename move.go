package chess

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// MoveKind tags which case of Move is populated.
type MoveKind uint8

const (
	// NormalMove is a non-castling, non-en-passant piece move.
	NormalMove MoveKind = iota
	// EnPassantMove is a pawn capturing en passant.
	EnPassantMove
	// CastleMove is a king/rook castle, encoded Chess960-style (origin squares).
	CastleMove
	// PutMove is a piece drop (drop-variant capability; standard chess never
	// generates these, but notation parsers accept them.
	PutMove
)

// Move is a tagged-variant move: Go has no sum types, so this is a single
// struct with a discriminant (Kind) and only the fields relevant to that
// Kind populated.
type Move struct {
	Kind MoveKind

	// Normal
	Role      Role
	From      Square
	To        Square
	Capture   lang.Optional[Role]
	Promotion lang.Optional[Role]

	// EnPassant reuses From/To; the captured pawn square is derived
	// (square_of(to.file, from.rank)).

	// Castle
	King Square
	Rook Square

	// Put reuses Role/To.
}

// NewNormalMove builds a Normal move.
func NewNormalMove(role Role, from, to Square, capture, promotion lang.Optional[Role]) Move {
	return Move{Kind: NormalMove, Role: role, From: from, To: to, Capture: capture, Promotion: promotion}
}

// NewEnPassantMove builds an EnPassant move.
func NewEnPassantMove(from, to Square) Move {
	return Move{Kind: EnPassantMove, Role: Pawn, From: from, To: to}
}

// NewCastleMove builds a Castle move from the king and rook origin squares.
func NewCastleMove(king, rook Square) Move {
	return Move{Kind: CastleMove, Role: King, King: king, Rook: rook}
}

// NewPutMove builds a Put (drop) move.
func NewPutMove(role Role, to Square) Move {
	return Move{Kind: PutMove, Role: role, To: to}
}

// CapturedSquare returns the square the en passant victim sits on
// (square_of(to.file, from.rank)). Only meaningful for EnPassantMove.
func (m Move) CapturedSquare() Square {
	return NewSquare(m.To.File(), m.From.Rank())
}

// IsCapture reports whether m removes an enemy piece from the board.
func (m Move) IsCapture() bool {
	switch m.Kind {
	case NormalMove:
		_, ok := m.Capture.V()
		return ok
	case EnPassantMove:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	if m.Kind != NormalMove {
		return false
	}
	_, ok := m.Promotion.V()
	return ok
}

func (m Move) String() string {
	switch m.Kind {
	case NormalMove:
		return fmt.Sprintf("%v%v-%v", m.Role, m.From, m.To)
	case EnPassantMove:
		return fmt.Sprintf("%v-%vep", m.From, m.To)
	case CastleMove:
		return fmt.Sprintf("castle(K=%v,R=%v)", m.King, m.Rook)
	case PutMove:
		return fmt.Sprintf("%v@%v", m.Role, m.To)
	default:
		return "?"
	}
}

// Equal reports whether m and other describe the same move.
func (m Move) Equal(other Move) bool {
	if m.Kind != other.Kind {
		return false
	}
	switch m.Kind {
	case NormalMove:
		if m.Role != other.Role || m.From != other.From || m.To != other.To {
			return false
		}
		mc, mcOk := m.Capture.V()
		oc, ocOk := other.Capture.V()
		if mcOk != ocOk || (mcOk && mc != oc) {
			return false
		}
		mp, mpOk := m.Promotion.V()
		op, opOk := other.Promotion.V()
		return mpOk == opOk && (!mpOk || mp == op)
	case EnPassantMove:
		return m.From == other.From && m.To == other.To
	case CastleMove:
		return m.King == other.King && m.Rook == other.Rook
	case PutMove:
		return m.Role == other.Role && m.To == other.To
	default:
		return false
	}
}

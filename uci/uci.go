// Package uci implements the compact coordinate move notation used by
// engine-GUI protocols.
package uci

import (
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"

	chess "github.com/kestrelchess/rules"
)

// Kind tags which case of Uci is populated.
type Kind uint8

const (
	// Normal is "<from><to>[<promotion>]".
	Normal Kind = iota
	// Put is "<Role>@<to>".
	Put
	// Null is the literal "0000".
	Null
)

// Uci is a move in UCI notation.
type Uci struct {
	Kind      Kind
	From      chess.Square
	To        chess.Square
	Promotion lang.Optional[chess.Role]
	Role      chess.Role // Put only
}

// Parse parses a UCI string: exactly 4 or 5 bytes, or the literal "0000".
func Parse(s string) (Uci, error) {
	if len(s) != 4 && len(s) != 5 {
		return Uci{}, &chess.InvalidUci{Text: s}
	}
	if s == "0000" {
		return Uci{Kind: Null}, nil
	}

	to, err := chess.SquareFromString(s[2:4])
	if err != nil {
		return Uci{}, &chess.InvalidUci{Text: s}
	}

	if s[1] == '@' {
		role, ok := chess.RoleFromLetter(strings.ToUpper(s[0:1])[0])
		if !ok {
			return Uci{}, &chess.InvalidUci{Text: s}
		}
		return Uci{Kind: Put, Role: role, To: to}, nil
	}

	from, err := chess.SquareFromString(s[0:2])
	if err != nil {
		return Uci{}, &chess.InvalidUci{Text: s}
	}

	if len(s) == 5 {
		promo, ok := chess.RoleFromLetter(strings.ToUpper(s[4:5])[0])
		if !ok {
			return Uci{}, &chess.InvalidUci{Text: s}
		}
		return Uci{Kind: Normal, From: from, To: to, Promotion: lang.Some(promo)}, nil
	}
	return Uci{Kind: Normal, From: from, To: to}, nil
}

// String renders u back to its textual form.
func (u Uci) String() string {
	switch u.Kind {
	case Null:
		return "0000"
	case Put:
		var sb strings.Builder
		sb.WriteByte(lowerLetter(u.Role))
		sb.WriteByte('@')
		sb.WriteString(u.To.String())
		return sb.String()
	default:
		var sb strings.Builder
		sb.WriteString(u.From.String())
		sb.WriteString(u.To.String())
		if p, ok := u.Promotion.V(); ok {
			sb.WriteByte(lowerLetter(p))
		}
		return sb.String()
	}
}

func lowerLetter(r chess.Role) byte {
	return r.Letter() + ('a' - 'A')
}

// FromMove converts a legal Move to its Uci form: Normal and EnPassant both
// emit <from><to>[<promotion>]; Castle emits <king><rook> Chess960-style.
func FromMove(m chess.Move) Uci {
	switch m.Kind {
	case chess.NormalMove:
		return Uci{Kind: Normal, From: m.From, To: m.To, Promotion: m.Promotion}
	case chess.EnPassantMove:
		return Uci{Kind: Normal, From: m.From, To: m.To}
	case chess.CastleMove:
		return Uci{Kind: Normal, From: m.King, To: m.Rook}
	default: // chess.PutMove
		return Uci{Kind: Put, Role: m.Role, To: m.To}
	}
}

// ToMove binds u to a legal move of pos. A King move to a
// castling-rights square is a Chess960-style castle; a King move from its
// classical home square two files over is a classical castle, inferring
// the rook by the sign of the file delta; everything else is Normal. A
// Null never binds.
func (u Uci) ToMove(pos *chess.Position) (chess.Move, error) {
	var candidate chess.Move

	switch u.Kind {
	case Null:
		return chess.Move{}, &chess.IllegalMove{}

	case Put:
		candidate = chess.NewPutMove(u.Role, u.To)

	case Normal:
		role := pos.Board().RoleAt(u.From)
		if role == chess.NoRole {
			return chess.Move{}, &chess.IllegalMove{}
		}
		if _, hasPromo := u.Promotion.V(); hasPromo && role != chess.Pawn {
			return chess.Move{}, &chess.IllegalMove{}
		}

		turn := pos.Turn()
		homeKingSquare := chess.Fold(turn, chess.SquareE1, chess.SquareE8)
		homeRank := chess.Fold(turn, 0, 7)

		switch {
		case role == chess.King && pos.Castling().Rights().Has(u.To):
			candidate = chess.NewCastleMove(u.From, u.To)

		case role == chess.King && u.From == homeKingSquare && u.To.Rank() == homeRank && fileDelta(u.From, u.To) == 2:
			rook := chess.Fold(turn, chess.SquareH1, chess.SquareH8)
			if u.From.File() > u.To.File() {
				rook = chess.Fold(turn, chess.SquareA1, chess.SquareA8)
			}
			candidate = chess.NewCastleMove(u.From, rook)

		default:
			capture := captureRoleAt(pos, u.To)
			candidate = chess.NewNormalMove(role, u.From, u.To, capture, u.Promotion)
		}
	}

	if !pos.IsLegal(candidate) {
		return chess.Move{}, &chess.IllegalMove{Move: candidate}
	}
	return candidate, nil
}

func fileDelta(a, b chess.Square) int {
	d := a.File() - b.File()
	if d < 0 {
		d = -d
	}
	return d
}

func captureRoleAt(pos *chess.Position, sq chess.Square) lang.Optional[chess.Role] {
	role := pos.Board().RoleAt(sq)
	if role == chess.NoRole {
		return lang.Optional[chess.Role]{}
	}
	return lang.Some(role)
}

// Package san implements Standard Algebraic Notation parsing, binding and
// emission.
package san

import (
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"

	chess "github.com/kestrelchess/rules"
)

// Kind tags which case of San is populated.
type Kind uint8

const (
	// Normal is a non-castling, non-drop, non-null move.
	Normal Kind = iota
	// CastleKingSide is "O-O".
	CastleKingSide
	// CastleQueenSide is "O-O-O".
	CastleQueenSide
	// Put is a piece drop, "[Role]@<square>".
	Put
	// Null is the null move, "--".
	Null
)

// San is a parsed Standard Algebraic Notation move, before binding against
// a position. It carries exactly the information present in the text: a
// disambiguation hint is absent unless the text spelled it out.
type San struct {
	Kind Kind

	Role       chess.Role // Normal, Put: the moving or dropped role (Pawn for pawns)
	File       lang.Optional[int]
	Rank       lang.Optional[int]
	Capture    bool
	To         chess.Square
	Promotion  lang.Optional[chess.Role]
}

// SanPlus is a San with its trailing check/checkmate suffix.
type SanPlus struct {
	San       San
	Check     bool
	Checkmate bool
}

// ParseSan parses a SAN string, ignoring a possible check or checkmate
// suffix.
func ParseSan(s string) (San, error) {
	if strings.HasSuffix(s, "#") || strings.HasSuffix(s, "+") {
		s = s[:len(s)-1]
	}
	return parseSanBody(s)
}

// ParseSanPlus parses a SAN string together with its check/checkmate suffix.
func ParseSanPlus(s string) (SanPlus, error) {
	body := s
	checkmate := strings.HasSuffix(s, "#")
	check := strings.HasSuffix(s, "+")
	if checkmate || check {
		body = s[:len(s)-1]
	}
	parsed, err := parseSanBody(body)
	if err != nil {
		return SanPlus{}, err
	}
	return SanPlus{San: parsed, Check: check, Checkmate: checkmate}, nil
}

func parseSanBody(s string) (San, error) {
	switch s {
	case "--":
		return San{Kind: Null}, nil
	case "O-O":
		return San{Kind: CastleKingSide}, nil
	case "O-O-O":
		return San{Kind: CastleQueenSide}, nil
	}

	if len(s) == 3 && s[0] == '@' {
		to, err := chess.SquareFromString(s[1:3])
		if err != nil {
			return San{}, &chess.InvalidSan{Text: s}
		}
		return San{Kind: Put, Role: chess.Pawn, To: to}, nil
	}
	if len(s) == 4 && s[1] == '@' {
		role, ok := chess.RoleFromLetter(s[0])
		if !ok {
			return San{}, &chess.InvalidSan{Text: s}
		}
		to, err := chess.SquareFromString(s[2:4])
		if err != nil {
			return San{}, &chess.InvalidSan{Text: s}
		}
		return San{Kind: Put, Role: role, To: to}, nil
	}

	return parseNormal(s)
}

// parseNormal parses the "[Role][file][rank][x]<square>[=Role]" grammar.
func parseNormal(s string) (San, error) {
	if s == "" {
		return San{}, &chess.InvalidSan{Text: s}
	}
	i := 0
	role := chess.Pawn
	if s[0] < 'a' {
		r, ok := chess.RoleFromLetter(s[0])
		if !ok {
			return San{}, &chess.InvalidSan{Text: s}
		}
		role = r
		i++
	}
	if i >= len(s) {
		return San{}, &chess.InvalidSan{Text: s}
	}

	var file, rank lang.Optional[int]
	if f, ok := fileFromChar(s[i]); ok {
		file = lang.Some(f)
		i++
	}
	if i < len(s) {
		if r, ok := rankFromChar(s[i]); ok {
			rank = lang.Some(r)
			i++
		}
	}

	var capture bool
	var to chess.Square
	var err error

	switch {
	case i >= len(s):
		f, fok := file.V()
		r, rok := rank.V()
		if !fok || !rok {
			return San{}, &chess.InvalidSan{Text: s}
		}
		to = chess.NewSquare(f, r)
		file, rank = lang.Optional[int]{}, lang.Optional[int]{}

	case s[i] == 'x':
		to, err = parseSquare(s, i+1)
		if err != nil {
			return San{}, err
		}
		capture = true
		i += 3

	case s[i] == '=':
		f, fok := file.V()
		r, rok := rank.V()
		if !fok || !rok {
			return San{}, &chess.InvalidSan{Text: s}
		}
		to = chess.NewSquare(f, r)
		file, rank = lang.Optional[int]{}, lang.Optional[int]{}

	default:
		to, err = parseSquare(s, i)
		if err != nil {
			return San{}, err
		}
		i += 2
	}

	var promotion lang.Optional[chess.Role]
	if i < len(s) {
		if s[i] != '=' || i+1 >= len(s) {
			return San{}, &chess.InvalidSan{Text: s}
		}
		p, ok := chess.RoleFromLetter(s[i+1])
		if !ok {
			return San{}, &chess.InvalidSan{Text: s}
		}
		promotion = lang.Some(p)
		i += 2
	}
	if i != len(s) {
		return San{}, &chess.InvalidSan{Text: s}
	}

	return San{
		Kind:      Normal,
		Role:      role,
		File:      file,
		Rank:      rank,
		Capture:   capture,
		To:        to,
		Promotion: promotion,
	}, nil
}

func parseSquare(s string, i int) (chess.Square, error) {
	if i+2 > len(s) {
		return 0, &chess.InvalidSan{Text: s}
	}
	sq, err := chess.SquareFromString(s[i : i+2])
	if err != nil {
		return 0, &chess.InvalidSan{Text: s}
	}
	return sq, nil
}

func fileFromChar(b byte) (int, bool) {
	if b >= 'a' && b <= 'h' {
		return int(b - 'a'), true
	}
	return 0, false
}

func rankFromChar(b byte) (int, bool) {
	if b >= '1' && b <= '8' {
		return int(b - '1'), true
	}
	return 0, false
}

// String renders s back to its textual form.
func (s San) String() string {
	var sb strings.Builder
	switch s.Kind {
	case Null:
		return "--"
	case CastleKingSide:
		return "O-O"
	case CastleQueenSide:
		return "O-O-O"
	case Put:
		if s.Role != chess.Pawn {
			sb.WriteByte(s.Role.Letter())
		}
		sb.WriteByte('@')
		sb.WriteString(s.To.String())
		return sb.String()
	}

	if s.Role != chess.Pawn {
		sb.WriteByte(s.Role.Letter())
	}
	if f, ok := s.File.V(); ok {
		sb.WriteByte('a' + byte(f))
	}
	if r, ok := s.Rank.V(); ok {
		sb.WriteByte('1' + byte(r))
	}
	if s.Capture {
		sb.WriteByte('x')
	}
	sb.WriteString(s.To.String())
	if p, ok := s.Promotion.V(); ok {
		sb.WriteByte('=')
		sb.WriteByte(p.Letter())
	}
	return sb.String()
}

// String renders sp, appending the check or checkmate suffix.
func (sp SanPlus) String() string {
	body := sp.San.String()
	if sp.Checkmate {
		return body + "#"
	}
	if sp.Check {
		return body + "+"
	}
	return body
}

// ToMove binds s to a legal move of pos, returning IllegalSan if no
// candidate matches or AmbiguousSan if more than one does.
func (s San) ToMove(pos *chess.Position) (chess.Move, error) {
	var list chess.MoveList

	switch s.Kind {
	case Null:
		return chess.Move{}, &chess.SanError{Kind: chess.IllegalSan, Text: s.String()}

	case CastleKingSide:
		pos.CastlingMoves(chess.KingSide, &list)
	case CastleQueenSide:
		pos.CastlingMoves(chess.QueenSide, &list)

	case Put:
		pos.SanCandidates(s.Role, s.To, &list)
		return firstMatch(list, s.String(), func(m chess.Move) bool {
			return m.Kind == chess.PutMove
		})

	case Normal:
		role := s.Role
		pos.SanCandidates(role, s.To, &list)
		return firstMatch(list, s.String(), func(m chess.Move) bool {
			switch m.Kind {
			case chess.NormalMove:
				if f, ok := s.File.V(); ok && f != m.From.File() {
					return false
				}
				if r, ok := s.Rank.V(); ok && r != m.From.Rank() {
					return false
				}
				if s.Capture != m.IsCapture() {
					return false
				}
				mp, mpOk := m.Promotion.V()
				sp, spOk := s.Promotion.V()
				return mpOk == spOk && (!mpOk || mp == sp)
			case chess.EnPassantMove:
				if f, ok := s.File.V(); ok && f != m.From.File() {
					return false
				}
				if r, ok := s.Rank.V(); ok && r != m.From.Rank() {
					return false
				}
				_, spOk := s.Promotion.V()
				return s.Capture && !spOk
			default:
				return false
			}
		})
	}

	return firstMatch(list, s.String(), func(chess.Move) bool { return true })
}

func firstMatch(list chess.MoveList, text string, keep func(chess.Move) bool) (chess.Move, error) {
	var match chess.Move
	found := false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if !keep(m) {
			continue
		}
		if found {
			return chess.Move{}, &chess.SanError{Kind: chess.AmbiguousSan, Text: text}
		}
		match, found = m, true
	}
	if !found {
		return chess.Move{}, &chess.SanError{Kind: chess.IllegalSan, Text: text}
	}
	return match, nil
}

// Render computes m's San in the context of pos, with minimal
// disambiguation: a file is added when another same-role candidate shares
// the origin rank or lies on a different file; a rank is added when another
// shares the origin file but a different rank.
func Render(pos *chess.Position, m chess.Move) San {
	switch m.Kind {
	case chess.CastleMove:
		if m.Rook.File() < m.King.File() {
			return San{Kind: CastleQueenSide}
		}
		return San{Kind: CastleKingSide}

	case chess.PutMove:
		return San{Kind: Put, Role: m.Role, To: m.To}

	case chess.EnPassantMove:
		return San{
			Kind:    Normal,
			Role:    chess.Pawn,
			File:    lang.Some(m.From.File()),
			Capture: true,
			To:      m.To,
		}

	default: // chess.NormalMove
		if m.Role == chess.Pawn {
			var file lang.Optional[int]
			if m.IsCapture() {
				file = lang.Some(m.From.File())
			}
			return San{
				Kind:      Normal,
				Role:      chess.Pawn,
				File:      file,
				Capture:   m.IsCapture(),
				To:        m.To,
				Promotion: m.Promotion,
			}
		}

		var list chess.MoveList
		pos.SanCandidates(m.Role, m.To, &list)

		needFile, needRank := false, false
		for i := 0; i < list.Len(); i++ {
			c := list.At(i)
			if c.Kind != chess.NormalMove || c.From == m.From {
				continue
			}
			if m.From.Rank() == c.From.Rank() || m.From.File() != c.From.File() {
				needFile = true
			} else {
				needRank = true
			}
		}

		var file, rank lang.Optional[int]
		if needFile {
			file = lang.Some(m.From.File())
		}
		if needRank {
			rank = lang.Some(m.From.Rank())
		}

		return San{
			Kind:      Normal,
			Role:      m.Role,
			File:      file,
			Rank:      rank,
			Capture:   m.IsCapture(),
			To:        m.To,
			Promotion: m.Promotion,
		}
	}
}

// RenderPlus computes m's SanPlus, including the check/checkmate suffix,
// by playing m against a clone of pos.
func RenderPlus(pos *chess.Position, m chess.Move) SanPlus {
	s := Render(pos, m)
	after := pos.PlayUnchecked(m)
	checkmate := after.IsCheckmate()
	check := !checkmate && after.IsCheck()
	return SanPlus{San: s, Check: check, Checkmate: checkmate}
}

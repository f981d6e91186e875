package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chess "github.com/kestrelchess/rules"
)

func TestParseAndString(t *testing.T) {
	cases := []string{"g1f3", "e7e8q", "0000", "n@e4"}
	for _, text := range cases {
		u, err := Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, text, u.String(), "round trip of %q", text)
	}
}

func TestToMoveClassicalCastle(t *testing.T) {
	s, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	pos, posErr := chess.FromSetup(s)
	require.Zero(t, posErr)

	pos = clearToCastle(t, pos)

	u, err := Parse("e1g1")
	require.NoError(t, err)
	m, err := u.ToMove(pos)
	require.NoError(t, err)
	assert.Equal(t, chess.CastleMove, m.Kind)
	assert.Equal(t, chess.SquareE1, m.King)
	assert.Equal(t, chess.SquareH1, m.Rook)
}

// clearToCastle removes the knight and bishop between the white king and
// the kingside rook so e1g1 is a legal castle.
func clearToCastle(t *testing.T, pos *chess.Position) *chess.Position {
	t.Helper()
	s := pos.Setup()
	s.Board.DiscardPieceAt(chess.SquareF1)
	s.Board.DiscardPieceAt(chess.SquareG1)
	next, posErr := chess.FromSetup(s)
	require.Zero(t, posErr)
	return next
}

func TestUciToMoveIllegal(t *testing.T) {
	s, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	pos, posErr := chess.FromSetup(s)
	require.Zero(t, posErr)

	u, err := Parse("e1e8")
	require.NoError(t, err)
	_, err = u.ToMove(pos)
	require.Error(t, err)
}

func TestNullNeverBinds(t *testing.T) {
	s, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	pos, posErr := chess.FromSetup(s)
	require.Zero(t, posErr)

	u, err := Parse("0000")
	require.NoError(t, err)
	_, err = u.ToMove(pos)
	require.Error(t, err)
}

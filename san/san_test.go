package san

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chess "github.com/kestrelchess/rules"
)

func TestSanPlusRoundTrip(t *testing.T) {
	texts := []string{
		"a1", "a8", "h1", "h8", "e4", "e4=Q", "f1=N#", "hxg7", "bxc1+",
		"bxa8=R+", "Nf3", "Ba5", "Qh1=K", "N2c4", "Red3", "d1=N", "@e4#",
		"K@b3", "Ra1a8", "--", "O-O", "O-O-O+",
	}
	for _, text := range texts {
		sp, err := ParseSanPlus(text)
		require.NoError(t, err, text)
		assert.Equal(t, text, sp.String(), "round trip of %q", text)
	}
}

func TestParseNf3AgainstInitialPosition(t *testing.T) {
	s, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	pos, posErr := chess.FromSetup(s)
	require.Zero(t, posErr)

	sp, err := ParseSanPlus("Nf3")
	require.NoError(t, err)

	m, err := sp.San.ToMove(pos)
	require.NoError(t, err)

	assert.Equal(t, chess.Knight, m.Role)
	assert.Equal(t, chess.SquareG1, m.From)
	assert.Equal(t, chess.SquareF3, m.To)

	rendered := Render(pos, m)
	assert.Equal(t, "Nf3", rendered.String())
}

func TestToMoveAmbiguous(t *testing.T) {
	s, err := chess.ParseFEN("4k3/8/8/8/4K3/8/8/R6R w - - 0 1")
	require.NoError(t, err)
	pos, posErr := chess.FromSetup(s)
	require.Zero(t, posErr)

	sp, err := ParseSanPlus("Rd1")
	require.NoError(t, err)
	_, err = sp.San.ToMove(pos)
	require.Error(t, err)
	var sanErr *chess.SanError
	require.ErrorAs(t, err, &sanErr)
	assert.Equal(t, chess.AmbiguousSan, sanErr.Kind)
}

func TestNullMoveNeverBinds(t *testing.T) {
	s, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	pos, posErr := chess.FromSetup(s)
	require.Zero(t, posErr)

	sp, err := ParseSanPlus("--")
	require.NoError(t, err)
	_, err = sp.San.ToMove(pos)
	require.Error(t, err)
}

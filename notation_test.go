package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGame(t *testing.T, fenStr string) *Game {
	t.Helper()
	fen, err := FEN(fenStr)
	require.NoError(t, err)
	return NewGame(fen)
}

func TestSANDisambiguationByFile(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/4K3/R6R w - - 0 1")
	moves := g.Moves(OfPiece(Rook))
	assert.Contains(t, moves, "Rad1")
	assert.Contains(t, moves, "Rhd1")
	assert.NotContains(t, moves, "Rd1")
}

func TestSANDisambiguationByRank(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/R7/8/8/R3K3 w - - 0 1")
	moves := g.Moves(OfPiece(Rook))
	assert.Contains(t, moves, "R4a2")
	assert.Contains(t, moves, "R1a2")
}

func TestSANFullSquareDisambiguation(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/Q7/8/8/QQ2K3 w - - 0 1")
	moves := g.Moves(OfPiece(Queen))
	// three queens converge on a2: file and rank alone cannot disambiguate a1
	assert.Contains(t, moves, "Qa1a2")
}

func TestSANPawnCapture(t *testing.T) {
	g := NewGame()
	for _, san := range []string{"e4", "d5"} {
		_, err := g.Move(SANMove(san))
		require.NoError(t, err)
	}
	m, err := g.Move(SANMove("exd5"))
	require.NoError(t, err)
	assert.Equal(t, "exd5", m.SAN)
	assert.Equal(t, Pawn, m.Captured)
}

func TestSANCheckSuffix(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	moved, err := g.Move(SANMove("Ra8"))
	require.NoError(t, err)
	assert.Equal(t, "Ra8+", moved.SAN)
}

func TestLenientSANAcceptsCoordinates(t *testing.T) {
	for _, input := range []string{"e2e4", "e2-e4", "Pe2e4"} {
		g := NewGame()
		m, err := g.Move(SANMove(input))
		require.NoErrorf(t, err, "input %q", input)
		assert.Equal(t, "e4", m.SAN)
	}
}

func TestLenientSANPromotion(t *testing.T) {
	g := mustGame(t, "1k6/4P3/8/8/8/8/8/4K3 w - - 0 1")
	m, err := g.Move(SANMove("e7e8q"))
	require.NoError(t, err)
	assert.Equal(t, "e8=Q+", m.SAN)
	assert.Equal(t, Queen, m.Promotion)
}

func TestStrictSANRejectsCoordinates(t *testing.T) {
	g := NewGame()
	_, err := g.Move(SANMove("e2e4"), Strict())
	require.Error(t, err)
	var illegalErr *IllegalMoveError
	require.ErrorAs(t, err, &illegalErr)
	assert.Equal(t, "e2e4", illegalErr.Move)

	_, err = g.Move(SANMove("e4"), Strict())
	assert.NoError(t, err)
}

func TestSANDecorationsIgnored(t *testing.T) {
	g := NewGame()
	_, err := g.Move(SANMove("e4!?"))
	require.NoError(t, err)
	_, err = g.Move(SANMove("e5??"))
	require.NoError(t, err)
}

func TestOverlyDisambiguatedSANRejectedInStrict(t *testing.T) {
	g := NewGame()
	_, err := g.Move(SANMove("Ng1f3"), Strict())
	require.Error(t, err)

	_, err = g.Move(SANMove("Ng1f3"))
	assert.NoError(t, err)
}

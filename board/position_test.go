package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyBoardAllPointsLegal(t *testing.T) {
	p := New(9)
	moves := p.LegalMoves(Black)
	// Pass plus every point.
	assert.Len(t, moves, 9*9+1)
}

func TestPlayTogglesTurn(t *testing.T) {
	p := New(9)
	require.Equal(t, Black, p.Turn())
	require.True(t, p.Play(Move(10)))
	assert.Equal(t, White, p.Turn())
	assert.Equal(t, Move(10), p.LastMove())
	assert.Equal(t, 1, p.MoveCount())
}

func TestSuicideIsIllegal(t *testing.T) {
	p := New(9)
	// Corner point 0 has neighbors 1 and 9. Surround it with black stones
	// that each have outside liberties, so white playing at 0 captures
	// nothing and has no liberties of its own: suicide.
	p.points[1] = Black
	p.points[9] = Black
	p.points[2] = Black // keeps the point-1 group alive after capture check
	p.points[18] = Black
	assert.False(t, p.legal(0, White))
}

func TestCaptureRemovesStones(t *testing.T) {
	p := New(9)
	// Black surrounds a single white stone at point (1,0)=index 1 on a 9x9 board.
	// White stone at index 1; black plays 0, 2, 10 to capture it.
	p.points[1] = White
	p.toMove = Black
	require.True(t, p.Play(Move(0)))
	p.toMove = Black
	require.True(t, p.Play(Move(2)))
	p.toMove = Black
	require.True(t, p.Play(Move(10)))
	assert.Equal(t, None, p.PointColor(1))
}

func TestTwoPassesEndsGame(t *testing.T) {
	p := New(9)
	require.True(t, p.Play(Pass))
	assert.False(t, p.IsTerminal())
	require.True(t, p.Play(Pass))
	assert.True(t, p.IsTerminal())
}

func TestAreaScoreEmptyBoardIsAllDame(t *testing.T) {
	p := New(9)
	black, white := p.AreaScore()
	assert.Equal(t, 0, black)
	assert.Equal(t, 0, white)
}

func TestAreaScoreSimpleTerritory(t *testing.T) {
	p := New(3)
	// Black occupies the whole top row, leaving the rest empty but
	// bordering only black -> all territory is black's.
	for i := 0; i < 3; i++ {
		p.points[i] = Black
	}
	black, white := p.AreaScore()
	assert.Equal(t, 9, black)
	assert.Equal(t, 0, white)
}

func TestCloneIsIndependent(t *testing.T) {
	p := New(9)
	require.True(t, p.Play(Move(5)))
	clone := p.Clone()
	require.True(t, clone.Play(Move(6)))
	assert.NotEqual(t, p.PointColor(6), clone.PointColor(6))
}

package playout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesuji/uctgo/board"
)

type fixedRand struct{ n int }

func (r fixedRand) Intn(n int) int { return r.n % n }

func TestLightChoosePicksLegalMove(t *testing.T) {
	l := NewLight()
	p := board.New(5)

	mv := l.Choose(p, board.Black, board.Pass, fixedRand{0})
	legal := p.LegalMoves(board.Black)
	assert.Contains(t, legal, mv)
}

func TestAssessCommonDetectsCapture(t *testing.T) {
	p := board.New(5)
	// Surround a lone white stone at point 12 (center of a 5x5 board)
	// on three sides, leaving point 17 as its last liberty.
	require.True(t, p.Play(board.Move(0)))  // black, neutral
	require.True(t, p.Play(board.Move(12))) // white, the stone to be captured
	require.True(t, p.Play(board.Move(11))) // black
	require.True(t, p.Play(board.Move(1)))  // white, neutral
	require.True(t, p.Play(board.Move(13))) // black
	require.True(t, p.Play(board.Move(2)))  // white, neutral
	require.True(t, p.Play(board.Move(7)))  // black

	l := NewLight()
	hints := l.Assess(p, board.Move(17), board.Black)
	assert.True(t, hints.Has(HintCapture))
}

func TestGroupLibertiesCountsEmptyNeighbors(t *testing.T) {
	p := board.New(5)
	require.True(t, p.Play(board.Move(12)))
	groups := p.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, 4, groupLiberties(p, groups[0]))
}

func TestAssessCommonPassIsNeutral(t *testing.T) {
	l := NewLight()
	p := board.New(5)
	hints := l.Assess(p, board.Pass, board.Black)
	assert.Equal(t, Hints(0), hints)
}

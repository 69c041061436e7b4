package playout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesuji/uctgo/board"
)

func TestMoggyChooseReturnsLegalMove(t *testing.T) {
	m := NewMoggy()
	p := board.New(5)
	mv := m.Choose(p, board.Black, board.Pass, fixedRand{0})
	assert.Contains(t, p.LegalMoves(board.Black), mv)
}

func TestMoggyTacticalResponseRescuesAtariedGroup(t *testing.T) {
	m := NewMoggy()
	m.CaptureChance = 1 // always take the tactical response when offered
	p := board.New(5)

	require.True(t, p.Play(board.Move(0)))  // black, neutral
	require.True(t, p.Play(board.Move(12))) // white stone to be atari'd
	require.True(t, p.Play(board.Move(11))) // black
	require.True(t, p.Play(board.Move(1)))  // white, neutral
	require.True(t, p.Play(board.Move(13))) // black
	require.True(t, p.Play(board.Move(2)))  // white, neutral
	require.True(t, p.Play(board.Move(7)))  // black: white group at 12 now in atari, liberty at 17

	mv, ok := m.tacticalResponse(p, board.White, board.Move(7), fixedRand{0})
	require.True(t, ok)
	assert.Equal(t, board.Move(17), mv)
}

func TestMoggyTacticalResponseDeclinesByChance(t *testing.T) {
	m := NewMoggy()
	m.CaptureChance = 0 // never take the capture
	p := board.New(5)

	require.True(t, p.Play(board.Move(0)))
	require.True(t, p.Play(board.Move(12)))
	require.True(t, p.Play(board.Move(11)))
	require.True(t, p.Play(board.Move(1)))
	require.True(t, p.Play(board.Move(13)))
	require.True(t, p.Play(board.Move(2)))
	require.True(t, p.Play(board.Move(7)))

	_, ok := m.tacticalResponse(p, board.White, board.Move(7), fixedRand{0})
	assert.False(t, ok)
}

func TestOnlyLibertyFindsSoleEmptyNeighbor(t *testing.T) {
	p := board.New(5)
	require.True(t, p.Play(board.Move(0)))
	require.True(t, p.Play(board.Move(12)))
	require.True(t, p.Play(board.Move(11)))
	require.True(t, p.Play(board.Move(1)))
	require.True(t, p.Play(board.Move(13)))
	require.True(t, p.Play(board.Move(2)))
	require.True(t, p.Play(board.Move(7)))

	group := p.Groups()
	var white board.Group
	for _, g := range group {
		if g.Color == board.White {
			white = g
		}
	}
	require.NotEmpty(t, white.Points)
	assert.Equal(t, 17, onlyLiberty(p, white))
}

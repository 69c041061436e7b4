package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesuji/uctgo/board"
)

func confidentMap(size int, color board.Color, games int) *OwnerMap {
	m := NewOwnerMap(size)
	owners := make([]board.Color, size*size)
	for i := range owners {
		owners[i] = color
	}
	for i := 0; i < games; i++ {
		m.Add(owners)
	}
	return m
}

func TestGroupStatusString(t *testing.T) {
	assert.Equal(t, "alive", Alive.String())
	assert.Equal(t, "dead", Dead.String())
	assert.Equal(t, "unclear", Unclear.String())
}

func TestJudgeClassifiesAliveWhenOwnColorConfident(t *testing.T) {
	p := board.New(3)
	require.True(t, p.Play(board.Move(4)))
	m := confidentMap(3, board.Black, 1000)

	result := Judge(p, m, 0.8, 500)
	assert.Len(t, result[Alive], 1)
	assert.Empty(t, result[Dead])
}

func TestJudgeClassifiesDeadWhenOpponentColorConfident(t *testing.T) {
	p := board.New(3)
	require.True(t, p.Play(board.Move(4)))
	m := confidentMap(3, board.White, 1000)

	dead := DeadGroups(p, m, 0.8, 500)
	require.Len(t, dead, 1)
	assert.Equal(t, board.Black, dead[0].Color)
}

func TestJudgeClassifiesUnclearWithoutEnoughGames(t *testing.T) {
	p := board.New(3)
	require.True(t, p.Play(board.Move(4)))
	m := NewOwnerMap(3)

	result := Judge(p, m, 0.8, 500)
	assert.Len(t, result[Unclear], 1)
}

func TestPassIsSafeFalseWithNoEvidence(t *testing.T) {
	p := board.New(3)
	m := NewOwnerMap(3)
	assert.False(t, PassIsSafe(p, m, board.Black, 0.5, 0.8, 500))
}

// Black encloses the whole 2x2 board (three stones plus one point of
// surrounded territory); with the owner map confidently Black
// everywhere, Black should win by area score and passing is safe.
func TestPassIsSafeTrueWhenColorWinsAreaScore(t *testing.T) {
	p := board.New(2)
	require.True(t, p.Play(board.Move(0))) // Black
	require.True(t, p.Play(board.Pass))    // White
	require.True(t, p.Play(board.Move(1))) // Black
	require.True(t, p.Play(board.Pass))    // White
	require.True(t, p.Play(board.Move(3))) // Black

	m := confidentMap(2, board.Black, 1000)
	assert.True(t, PassIsSafe(p, m, board.Black, 0.5, 0.8, 500))
}

// Same confidently-resolved position, but checked from White's side:
// White is losing by area score, so passing must not be reported safe.
func TestPassIsSafeFalseForLosingColor(t *testing.T) {
	p := board.New(2)
	require.True(t, p.Play(board.Move(0))) // Black
	require.True(t, p.Play(board.Pass))    // White
	require.True(t, p.Play(board.Move(1))) // Black
	require.True(t, p.Play(board.Pass))    // White
	require.True(t, p.Play(board.Move(3))) // Black

	m := confidentMap(2, board.Black, 1000)
	assert.False(t, PassIsSafe(p, m, board.White, 0.5, 0.8, 500))
}

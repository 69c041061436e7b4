package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/playout"
)

func TestUCB1PrefersUnvisitedChild(t *testing.T) {
	tr := New(board.Black)
	pos := board.New(5)
	tr.Expand(tr.root, pos, playout.NewLight(), nil)

	visited := tr.childMove(tr.root, board.Pass)
	tr.at(visited).stats.add(2)

	policy := NewUCB1(0.2)
	best := policy.Descend(tr, tr.root)
	assert.NotEqual(t, visited, best, "an unvisited child should always outscore a visited one")
}

func TestUCB1PicksHigherValueAmongVisited(t *testing.T) {
	tr := New(board.Black)
	pos := board.New(5)
	tr.Expand(tr.root, pos, playout.NewLight(), nil)

	for c := tr.at(tr.root).firstChild; c != nilID; c = tr.at(c).sibling {
		tr.at(c).stats.add(0) // give every child one losing visit
	}
	winner := tr.at(tr.root).firstChild
	tr.at(winner).stats.add(2) // winner now has one win on top

	policy := NewUCB1(0)
	best := policy.Descend(tr, tr.root)
	assert.Equal(t, winner, best)
}

func TestBetaApproachesOneWithNoVisits(t *testing.T) {
	u := NewUCB1AMAF(0.2, 3000)
	assert.InDelta(t, 1.0, u.beta(0), 1e-9)
}

func TestBetaDecreasesWithVisits(t *testing.T) {
	u := NewUCB1AMAF(0.2, 3000)
	b0 := u.beta(0)
	b100 := u.beta(100)
	b10000 := u.beta(10000)
	require.Greater(t, b0, b100)
	require.Greater(t, b100, b10000)
}

func TestBetaZeroWhenEquivalenceDisabled(t *testing.T) {
	u := NewUCB1AMAF(0.2, 0)
	assert.Equal(t, 0.0, u.beta(5))
}

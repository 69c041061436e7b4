// Package engine is the stateful controller a GTP/CLI frontend drives:
// one long-lived tree and owner map per game, with dynamic komi,
// resignation and safe-pass logic layered over the mcts package
// (spec.md §4.6). It is grounded on the teacher's Arena/Agent split in
// agogo.go/agent.go, restructured around real per-game state instead
// of a training self-play loop.
package engine

import (
	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/mcts"
)

// gameState is everything the engine keeps across genmove/notify_play
// calls for one board (spec.md §4.6, §5 "per-game board state").
type gameState struct {
	tree      *mcts.Tree
	owners    *mcts.OwnerMap
	rootColor board.Color
	moveCount int
	lastWasPass bool
}

func newGameState(size int, rootColor board.Color) *gameState {
	return &gameState{
		tree:      mcts.New(rootColor),
		owners:    mcts.NewOwnerMap(size),
		rootColor: rootColor,
	}
}

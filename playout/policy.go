// Package playout implements the pluggable rollout move generator the
// walker invokes once a simulation falls off the edge of the tree
// (spec.md §4.3 step 3). Two policies are provided, selected by the
// `playout=light` / `playout=moggy[:args]` config keys (spec.md §6):
// Light picks uniformly among legal moves; Moggy layers simple capture
// and atari-escape heuristics on top, the way
// original_source/uct/uct.c's playout_light/playout_moggy do.
package playout

import "github.com/tesuji/uctgo/board"

// Rand is the minimal RNG surface a policy needs. *golang.org/x/exp/rand.Rand
// satisfies it, so the walker can hand each worker's private source
// straight through without adapters.
type Rand interface {
	Intn(n int) int
}

// Policy produces moves for random rollouts and assesses tactical
// priors for tree expansion (spec.md §6's Playout policy interface).
type Policy interface {
	// Choose produces the next rollout move for color, given the last
	// move played (used by Moggy to look for atari responses).
	Choose(p *board.Position, color board.Color, previous board.Move, rnd Rand) board.Move
	// Assess reports tactical hints for a legal candidate move, used as
	// a prior signal at tree expansion.
	Assess(p *board.Position, m board.Move, color board.Color) Hints
}

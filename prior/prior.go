// Package prior implements the equivalent-experience bonus injected into
// a tree node's statistics at expansion time (spec.md §4.1 expand, §9
// "Priors and expansion"). A prior is a strategy over (board, candidate
// move) that returns playouts/value offsets; it is applied once per
// node and stored separately from the playouts accumulated by search so
// that tree_merge can subtract it back out (spec.md invariant in §3).
package prior

import (
	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/playout"
)

// Offset is the equivalent-experience contribution for one candidate
// child: Playouts virtual visits, each worth ValueDoubled/Playouts in
// doubled-value space (spec.md §3's value_sum_doubled convention).
type Offset struct {
	Playouts     uint32
	ValueDoubled uint32 // in [0, 2*Playouts]
}

// Source produces prior offsets for every legal child of a node being
// expanded. mover is the color that plays move from the parent position
// (i.e. node.color_to_play_after at the parent).
type Source interface {
	Offset(p *board.Position, move board.Move, mover board.Color, hints playout.Hints) Offset
}

// Heuristic is a small default prior: captures get a few won-equivalent
// playouts, self-atari moves get a few lost-equivalent playouts, and
// everything else is neutral. It is grounded on the teacher's
// expand-time prior seeding in mcts/search.go:expandAndSimulate, which
// feeds a per-child score into the new node's stats at birth.
type Heuristic struct {
	CaptureBonus     uint32
	SelfAtariPenalty uint32
}

func NewHeuristic() *Heuristic {
	return &Heuristic{CaptureBonus: 3, SelfAtariPenalty: 3}
}

func (h *Heuristic) Offset(p *board.Position, move board.Move, mover board.Color, hints playout.Hints) Offset {
	switch {
	case hints.Has(playout.HintCapture):
		return Offset{Playouts: h.CaptureBonus, ValueDoubled: 2 * h.CaptureBonus}
	case hints.Has(playout.HintSelfAtari):
		return Offset{Playouts: h.SelfAtariPenalty, ValueDoubled: 0}
	default:
		return Offset{}
	}
}

package mcts

import "github.com/tesuji/uctgo/board"

// GroupStatus is a group's life-and-death verdict, derived from an
// OwnerMap rather than read off the final score (spec.md §5).
type GroupStatus int

const (
	Unclear GroupStatus = iota
	Alive
	Dead
)

func (s GroupStatus) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unclear"
	}
}

// Judge classifies every stone group on pos using owner-map evidence: a
// group is dead only if every one of its points is confidently owned
// by the opponent, alive only if every one is confidently owned by its
// own color, and unclear otherwise — the conservative default treats
// anything short of unanimous as alive (spec.md §4.4 "Group judgment").
func Judge(pos *board.Position, m *OwnerMap, threshold float64, minGames int) map[GroupStatus][]board.Group {
	out := map[GroupStatus][]board.Group{}
	for _, g := range pos.Groups() {
		status := classify(g, m, threshold, minGames)
		out[status] = append(out[status], g)
	}
	return out
}

func classify(g board.Group, m *OwnerMap, threshold float64, minGames int) GroupStatus {
	ownColor := g.Color
	var ownConfident, oppConfident int
	for _, pt := range g.Points {
		if m.Confident(pt, ownColor, threshold, minGames) {
			ownConfident++
		} else if m.Confident(pt, ownColor.Other(), threshold, minGames) {
			oppConfident++
		}
	}
	switch {
	case oppConfident == len(g.Points):
		return Dead
	case ownConfident == len(g.Points):
		return Alive
	default:
		return Unclear
	}
}

// DeadGroups returns every group Judge classifies as dead, the list
// genmove/dead_group_list reports to the controller (spec.md §5).
func DeadGroups(pos *board.Position, m *OwnerMap, threshold float64, minGames int) []board.Group {
	var dead []board.Group
	for _, g := range pos.Groups() {
		if classify(g, m, threshold, minGames) == Dead {
			dead = append(dead, g)
		}
	}
	return dead
}

// PassIsSafe reports whether passing now would score correctly without
// further play: every point that is neutral in the current position
// must be confidently Black- or White-owned, every group must be judged
// alive or dead, and removing the opponent's dead groups must still
// leave color winning by area score under komi (spec.md §4.4
// "pass_is_safe").
func PassIsSafe(pos *board.Position, m *OwnerMap, color board.Color, komi float64, threshold float64, minGames int) bool {
	owners := pos.Owners()
	for pt, c := range owners {
		if c != board.None {
			continue
		}
		if !m.Confident(pt, board.Black, threshold, minGames) && !m.Confident(pt, board.White, threshold, minGames) {
			return false
		}
	}

	opponent := color.Other()
	var deadOpponentPoints []int
	for _, g := range pos.Groups() {
		switch classify(g, m, threshold, minGames) {
		case Unclear:
			return false
		case Dead:
			if g.Color == opponent {
				deadOpponentPoints = append(deadOpponentPoints, g.Points...)
			}
		}
	}

	hypothetical := pos.Clone()
	hypothetical.RemoveStones(deadOpponentPoints)
	black, white := hypothetical.AreaScore()
	margin := float64(black) - float64(white) - komi
	if color == board.White {
		margin = -margin
	}
	return margin > 0
}

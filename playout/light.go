package playout

import "github.com/tesuji/uctgo/board"

// Light picks uniformly at random among legal moves, including pass.
// It is the cheapest possible rollout policy, useful as a speed
// baseline and as the `random_policy` fallback (spec.md §6).
type Light struct{}

func NewLight() *Light { return &Light{} }

func (l *Light) Choose(p *board.Position, color board.Color, previous board.Move, rnd Rand) board.Move {
	moves := p.LegalMoves(color)
	if len(moves) == 0 {
		return board.Pass
	}
	return moves[rnd.Intn(len(moves))]
}

func (l *Light) Assess(p *board.Position, m board.Move, color board.Color) Hints {
	return assessCommon(p, m, color)
}

// assessCommon computes tactical hints shared by every policy: whether
// color's move captures, or leaves the mover in self-atari. It does not
// set HintExtendsAtari. It plays the move for color on a scratch clone
// so the caller's position is untouched.
func assessCommon(p *board.Position, m board.Move, color board.Color) Hints {
	if m.IsPass() {
		return 0
	}
	var hints Hints

	scratch := p.Clone()
	if scratch.Turn() != color {
		// Play moves for the turn-holder; pass once so m is color's move.
		scratch.Play(board.Pass)
	}
	if !scratch.Play(m) {
		return 0
	}
	// A capture happened if an opposing group that used to occupy the
	// board is now gone; cheaply detected by comparing stone counts.
	var ownBefore, oppBefore int
	for _, g := range p.Groups() {
		if g.Color == color {
			ownBefore += len(g.Points)
		} else {
			oppBefore += len(g.Points)
		}
	}
	var ownAfter, oppAfter int
	for _, g := range scratch.Groups() {
		if g.Color == color {
			ownAfter += len(g.Points)
		} else {
			oppAfter += len(g.Points)
		}
	}
	if oppAfter < oppBefore {
		hints |= HintCapture
	}

	// Self-atari: the group containing the new stone has exactly one
	// liberty and the move captured nothing.
	if !hints.Has(HintCapture) {
		for _, g := range scratch.Groups() {
			if g.Color != color {
				continue
			}
			for _, pt := range g.Points {
				if board.Move(pt) == m {
					if groupLiberties(scratch, g) == 1 {
						hints |= HintSelfAtari
					}
				}
			}
		}
	}

	return hints
}

// groupLiberties counts the distinct empty neighbors of a group.
func groupLiberties(p *board.Position, g board.Group) int {
	libs := map[int]bool{}
	size := p.Size()
	for _, pt := range g.Points {
		x, y := pt%size, pt/size
		if x > 0 && p.PointColor(pt-1) == board.None {
			libs[pt-1] = true
		}
		if x < size-1 && p.PointColor(pt+1) == board.None {
			libs[pt+1] = true
		}
		if y > 0 && p.PointColor(pt-size) == board.None {
			libs[pt-size] = true
		}
		if y < size-1 && p.PointColor(pt+size) == board.None {
			libs[pt+size] = true
		}
	}
	return len(libs)
}

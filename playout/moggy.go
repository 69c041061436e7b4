package playout

import "github.com/tesuji/uctgo/board"

// Moggy layers simple tactical preferences on top of Light: it prefers
// responding to the opponent's last move (capturing it, or saving an
// atari'd group of its own) before falling back to a uniform random
// legal move. This mirrors (in simplified form) the "moggy" playout
// policy `original_source/uct/uct.c` selects via `playout=moggy[:args]`.
type Moggy struct {
	light         *Light
	CaptureChance float64 // probability of taking an available tactical response (capture or rescue) each step, 0..1
}

func NewMoggy() *Moggy {
	return &Moggy{light: NewLight(), CaptureChance: 0.9}
}

func (m *Moggy) Choose(p *board.Position, color board.Color, previous board.Move, rnd Rand) board.Move {
	if !previous.IsPass() && !previous.IsResign() {
		if mv, ok := m.tacticalResponse(p, color, previous, rnd); ok {
			return mv
		}
	}
	return m.light.Choose(p, color, previous, rnd)
}

// tacticalResponse looks for a move around `previous` that either
// captures the group just played there or rescues one of the mover's
// own groups left in atari by it.
func (m *Moggy) tacticalResponse(p *board.Position, color board.Color, previous board.Move, rnd Rand) (board.Move, bool) {
	var candidates []board.Move
	legal := p.LegalMoves(color)
	legalSet := make(map[board.Move]bool, len(legal))
	for _, mv := range legal {
		legalSet[mv] = true
	}
	size := p.Size()
	px, py := int(previous)%size, int(previous)/size

	for _, g := range p.Groups() {
		// Only the group at previous and groups next to it are answered.
		near := false
		for _, pt := range g.Points {
			dx, dy := pt%size-px, pt/size-py
			if dx*dx+dy*dy <= 1 {
				near = true
				break
			}
		}
		if !near {
			continue
		}
		inAtari := groupLiberties(p, g) == 1
		if !inAtari {
			continue
		}
		libPt := onlyLiberty(p, g)
		if libPt < 0 || !legalSet[board.Move(libPt)] {
			continue
		}
		if g.Color != color {
			// opponent group in atari: capturing it is a priority.
			candidates = append(candidates, board.Move(libPt))
		} else {
			// our own group in atari: extending it is a priority.
			candidates = append(candidates, board.Move(libPt))
		}
	}

	if len(candidates) == 0 {
		return board.Pass, false
	}
	if rnd.Intn(1000) >= int(m.CaptureChance*1000) {
		return board.Pass, false
	}
	return candidates[rnd.Intn(len(candidates))], true
}

func onlyLiberty(p *board.Position, g board.Group) int {
	size := p.Size()
	for _, pt := range g.Points {
		x, y := pt%size, pt/size
		if x > 0 && p.PointColor(pt-1) == board.None {
			return pt - 1
		}
		if x < size-1 && p.PointColor(pt+1) == board.None {
			return pt + 1
		}
		if y > 0 && p.PointColor(pt-size) == board.None {
			return pt - size
		}
		if y < size-1 && p.PointColor(pt+size) == board.None {
			return pt + size
		}
	}
	return -1
}

func (m *Moggy) Assess(p *board.Position, mv board.Move, color board.Color) Hints {
	return assessCommon(p, mv, color)
}

package mcts

import (
	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/playout"
	"github.com/tesuji/uctgo/prior"
)

// Rand is the RNG surface the walker needs for the random_policy_chance
// descent step and for handing to the rollout policy.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Walker runs one playout at a time against a single Tree (spec.md
// §4.3). A ParallelDriver owns one Walker per worker, each wrapping its
// own Tree clone and seeded Rand, so Walker itself carries no
// concurrency of its own.
type Walker struct {
	Cfg     Config
	Policy  TreePolicy
	Rollout playout.Policy
	Prior   prior.Source
}

func NewWalker(cfg Config, policy TreePolicy, rollout playout.Policy, priors prior.Source) *Walker {
	return &Walker{Cfg: cfg, Policy: policy, Rollout: rollout, Prior: priors}
}

type amafEvent struct {
	move  board.Move
	color board.Color
}

// randomChild picks uniformly among parent's already-expanded children,
// the descent-time fallback a random_policy_chance Bernoulli trial
// switches to in place of the tree policy (spec.md §6, §9).
func randomChild(t *Tree, parent id, rnd Rand) id {
	n := 0
	for c := t.at(parent).firstChild; c != nilID; c = t.at(c).sibling {
		n++
	}
	if n == 0 {
		return nilID
	}
	pick := rnd.Intn(n)
	i := 0
	for c := t.at(parent).firstChild; c != nilID; c = t.at(c).sibling {
		if i == pick {
			return c
		}
		i++
	}
	return nilID
}

// Playout runs a single descend/expand/rollout/backup cycle against t,
// starting from pos (t's root position). It reports whether the
// playout completed — an aborted playout, e.g. one whose descent
// picked a move the clone rejects as illegal, reports false and updates
// no statistics (a node expanded earlier in that descent keeps its new
// children) — and, on success, the final position's
// per-point ownership for the caller's OwnerMap.
func (w *Walker) Playout(t *Tree, pos *board.Position, rnd Rand) (ok bool, owners []board.Color) {
	clone := pos.Clone()

	path := []id{t.root}
	var trace []amafEvent

	// At most one node is expanded per playout: the descent stops one
	// step below the node it expanded.
	cur := t.root
	expanded := false
	for {
		n := t.at(cur)
		if !expanded && !n.isExpanded && n.stats.Playouts >= w.Cfg.ExpandThreshold {
			t.Expand(cur, clone, w.Rollout, w.Prior)
			n = t.at(cur)
			expanded = true
		}
		if !n.isExpanded {
			break
		}
		var childID id
		if w.Cfg.RandomPolicyChance > 0 && rnd.Float64() < w.Cfg.RandomPolicyChance {
			childID = randomChild(t, cur, rnd)
		} else {
			childID = w.Policy.Descend(t, cur)
		}
		if childID == nilID {
			break
		}
		child := t.at(childID)
		if !clone.Play(child.move) {
			return false, nil
		}
		trace = append(trace, amafEvent{move: child.move, color: n.colorToPlayAfter})
		path = append(path, childID)
		cur = childID
	}
	descentLen := len(path) - 1

	rolloutMoves := 0
	prev := clone.LastMove()
	for !clone.IsTerminal() && rolloutMoves < w.Cfg.Gamelen {
		color := clone.Turn()
		mv := w.Rollout.Choose(clone, color, prev, rnd)
		if !clone.Play(mv) {
			break
		}
		if w.Cfg.PlayoutAMAF {
			trace = append(trace, amafEvent{move: mv, color: color})
		}
		prev = mv
		rolloutMoves++
	}

	black, white := clone.AreaScore()
	score := float64(black) - float64(white) - w.Cfg.Komi - t.extraKomi

	// Backup: every tree node on the descent path gets its mover's
	// value added to its stats (spec.md §4.3 step 5). The root has no
	// mover (nobody played a move to reach it), so its own value isn't
	// meaningful, but its Playouts count still has to track "how many
	// simulations passed through here" — every Descend() call at the
	// root reads p.stats.Playouts as the UCB log(N) term, so leaving it
	// at 0 forever would silently disable exploration at the top level.
	t.at(t.root).stats.Playouts++
	for _, nodeID := range path[1:] {
		n := t.at(nodeID)
		val := w.valueForColor(n.mover(), score)
		n.stats.add(doubled(val))
	}

	// AMAF: for every sibling not actually visited at a descended node,
	// credit it if the same color played its move later in this
	// simulation (spec.md §4.2's AMAF update, "later in the same
	// simulation by the same color").
	if w.Cfg.Equivalence > 0 && descentLen > 0 {
		w.creditAMAF(t, path, trace, descentLen, score)
	}

	return true, clone.Owners()
}

func (w *Walker) creditAMAF(t *Tree, path []id, trace []amafEvent, descentLen int, score float64) {
	seenBlack := map[board.Move]bool{}
	seenWhite := map[board.Move]bool{}

	for i := len(trace) - 1; i >= 0; i-- {
		ev := trace[i]
		if ev.color == board.Black {
			seenBlack[ev.move] = true
		} else {
			seenWhite[ev.move] = true
		}
		if i >= descentLen {
			continue
		}
		parent := t.at(path[i])
		mover := parent.colorToPlayAfter
		seen := seenBlack
		if mover == board.White {
			seen = seenWhite
		}
		visited := path[i+1]
		val := doubled(w.valueForColor(mover, score))
		for c := parent.firstChild; c != nilID; c = t.at(c).sibling {
			if c == visited {
				continue
			}
			child := t.at(c)
			if seen[child.move] {
				child.amaf.add(val)
			}
		}
	}
}

// valueForColor converts a black-perspective point margin into a
// [0,1] value for color, per spec.md §4.3's scoring formula. ValPoints
// is used as given, in points. The formula is evaluated in plain [0,1]
// space; callers double the result (doubled) before adding it to the
// value_sum_doubled accumulation.
func (w *Walker) valueForColor(color board.Color, blackMargin float64) float64 {
	scoreForSide := blackMargin
	if color == board.White {
		scoreForSide = -blackMargin
	}

	margin := clamp(scoreForSide/w.Cfg.ValPoints, -1, 1)
	if w.Cfg.ValExtra {
		return clamp(0.5+0.5*margin*w.Cfg.ValScale, 0, 1)
	}

	winIndicator := 0.5
	switch {
	case scoreForSide > 0:
		winIndicator = 1
	case scoreForSide < 0:
		winIndicator = 0
	}
	return clamp(winIndicator+w.Cfg.ValScale*margin, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func doubled(v float64) uint32 {
	d := v * 2
	if d < 0 {
		d = 0
	}
	if d > 2 {
		d = 2
	}
	return uint32(d + 0.5)
}

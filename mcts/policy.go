package mcts

import "github.com/chewxy/math32"

// TreePolicy selects which child to descend into while still inside
// the tree (spec.md §4.2). Descend is the only method that differs
// between policies; everything else (leaf detection, expansion,
// backup) is shared by Walker.
type TreePolicy interface {
	// Descend picks a child of parent to walk into. parent must already
	// be expanded and have at least one child.
	Descend(t *Tree, parent id) id
}

// UCB1 is the plain upper-confidence-bound policy: pick the child
// maximizing value + explore*sqrt(log(N)/n), visiting every child once
// before any exploration term matters (spec.md §4.2). It is grounded on
// the teacher's Node.Select, adapted from PUCT's P(s,a) prior term to
// the classic UCB1 bonus original_source/uct/uct.c uses for its default
// policy.
type UCB1 struct {
	Explore float64
}

func NewUCB1(explore float64) *UCB1 { return &UCB1{Explore: explore} }

func (u *UCB1) Descend(t *Tree, parent id) id {
	p := t.at(parent)
	logN := math32.Log(float32(p.stats.Playouts) + 1)

	best := nilID
	var bestScore float32 = -math32.MaxFloat32
	for c := p.firstChild; c != nilID; c = t.at(c).sibling {
		child := t.at(c)
		score := ucbScore(child.stats, logN, u.Explore)
		if best == nilID || score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

func ucbScore(s Stats, logParent float32, explore float64) float32 {
	if s.Playouts == 0 {
		return math32.MaxFloat32
	}
	value := float32(s.Value())
	bonus := math32.Sqrt(logParent / float32(s.Playouts))
	return value + float32(explore)*bonus
}

// UCB1AMAF blends a child's own statistics with its all-moves-as-first
// statistics, the way original_source/uct/uct.c's RAVE-flavored policy
// does: early on, when a child has few real playouts, the AMAF
// estimate (which pools evidence from every simulation that happened
// to play this move at any point, not just through this child)
// dominates; as real playouts accumulate, the blend shifts toward the
// child's own value. Equivalence is the number of playouts at which
// the two estimates are weighted equally.
type UCB1AMAF struct {
	Explore     float64
	Equivalence float64
}

func NewUCB1AMAF(explore, equivalence float64) *UCB1AMAF {
	return &UCB1AMAF{Explore: explore, Equivalence: equivalence}
}

func (u *UCB1AMAF) Descend(t *Tree, parent id) id {
	p := t.at(parent)
	logN := math32.Log(float32(p.stats.Playouts) + 1)

	best := nilID
	var bestScore float32 = -math32.MaxFloat32
	for c := p.firstChild; c != nilID; c = t.at(c).sibling {
		child := t.at(c)
		score := u.blendedScore(child.stats, child.amaf, logN)
		if best == nilID || score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// beta implements the standard RAVE-AMAF equivalence blend: 1 when n=0
// (trust AMAF completely), falling toward 0 as n grows past
// Equivalence.
func (u *UCB1AMAF) beta(n uint32) float64 {
	k := u.Equivalence
	if k <= 0 {
		return 0
	}
	fn := float64(n)
	return math32.Sqrt(float32(k / (fn*3 + k)))
}

func (u *UCB1AMAF) blendedScore(s, amaf Stats, logParent float32) float32 {
	if s.Playouts == 0 && amaf.Playouts == 0 {
		return math32.MaxFloat32
	}
	beta := float32(u.beta(s.Playouts))
	combined := beta*float32(amaf.Value()) + (1-beta)*float32(s.Value())
	if s.Playouts == 0 {
		return combined
	}
	bonus := math32.Sqrt(logParent / float32(s.Playouts))
	return combined + float32(u.Explore)*bonus
}

package mcts

import (
	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/playout"
	"github.com/tesuji/uctgo/prior"
)

// Tree is one worker's private UCT tree (spec.md §3, §4.5). Unlike the
// teacher's MCTS type, which guards a tree shared by many searching
// goroutines with per-node mutexes, a Tree here is never touched by
// more than one goroutine at a time: root parallelization hands each
// worker its own clone, so no locking is needed until ParallelDriver
// merges the finished trees back together.
type Tree struct {
	nodes []node

	root      id
	rootColor board.Color // color to move at the tree's root position
	extraKomi float64

	// AmafPrior mirrors the teacher config's boolean knobs: when set,
	// prior offsets are also subtracted out of amaf stats on merge, not
	// just ordinary stats (spec.md §9 "Open Questions", resolved in
	// DESIGN.md).
	AmafPrior bool
}

// New creates a one-node tree: just the root, unexpanded, with rootColor
// to move at the root position.
func New(rootColor board.Color) *Tree {
	t := &Tree{
		nodes:     make([]node, 0, 4096),
		rootColor: rootColor,
	}
	t.root = t.alloc(newNode(nilID, board.Pass, rootColor))
	return t
}

func (t *Tree) alloc(n node) id {
	t.nodes = append(t.nodes, n)
	return id(len(t.nodes) - 1)
}

func (t *Tree) at(i id) *node { return &t.nodes[i] }

// RootStats returns a value copy of the root's aggregate stats, for reporting.
func (t *Tree) RootStats() Stats { return t.at(t.root).stats }

// NodeCount reports how many nodes are currently live in the arena.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// SetExtraKomi sets the dynamic komi adjustment applied on top of the
// walker's base komi when scoring playouts (spec.md §4.6 step 3).
func (t *Tree) SetExtraKomi(v float64) { t.extraKomi = v }

// ExtraKomi reports the current dynamic komi adjustment.
func (t *Tree) ExtraKomi() float64 { return t.extraKomi }

// Clone makes an independent deep copy: a fresh node slice with the
// same contents. Node ids are stable across the copy since the
// underlying slice layout doesn't change, so id values computed
// against the original tree remain valid against the clone.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		nodes:     make([]node, len(t.nodes)),
		root:      t.root,
		rootColor: t.rootColor,
		extraKomi: t.extraKomi,
		AmafPrior: t.AmafPrior,
	}
	copy(c.nodes, t.nodes)
	return c
}

// children returns the ids of all children of parent, following the
// sibling list from firstChild.
func (t *Tree) children(parent id) []id {
	var out []id
	for c := t.at(parent).firstChild; c != nilID; c = t.at(c).sibling {
		out = append(out, c)
	}
	return out
}

// childMove looks up the (already-expanded) child of parent reached by
// move, or nilID if none matches.
func (t *Tree) childMove(parent id, move board.Move) id {
	for c := t.at(parent).firstChild; c != nilID; c = t.at(c).sibling {
		if t.at(c).move == move {
			return c
		}
	}
	return nilID
}

// Expand populates parent's children, one per legal move at pos
// (spec.md §4.1 "expand"), seeding each child's stats with the prior
// offset the playout policy's tactical hints earn it. pos must be the
// board position that parent represents (the caller is responsible for
// having walked the clone forward to it).
func (t *Tree) Expand(parent id, pos *board.Position, policy playout.Policy, priors prior.Source) {
	p := t.at(parent)
	if p.isExpanded {
		return
	}
	mover := p.colorToPlayAfter
	for _, mv := range pos.LegalMoves(mover) {
		hints := policy.Assess(pos, mv, mover)
		off := prior.Offset{}
		if priors != nil {
			off = priors.Offset(pos, mv, mover, hints)
		}

		childID := t.alloc(newNode(parent, mv, mover.Other()))
		child := t.at(childID)
		child.hints = hints
		child.prior = Stats{Playouts: off.Playouts, ValueSumDoubled: off.ValueDoubled}
		child.stats = child.prior

		// Re-fetch parent by id on every iteration: alloc may have grown
		// t.nodes and moved it to a new backing array.
		parentNode := t.at(parent)
		child.sibling = parentNode.firstChild
		parentNode.firstChild = childID
	}
	t.at(parent).isExpanded = true
}

// PromoteAt re-roots the tree at the child reached by move, discarding
// every other branch (spec.md §4.4 "tree promotion"). It reports
// whether a matching, already-expanded child existed; on failure the
// tree is left untouched and the caller should build a fresh one.
func (t *Tree) PromoteAt(move board.Move) bool {
	child := t.childMove(t.root, move)
	if child == nilID {
		return false
	}
	t.promote(child)
	return true
}

// PromoteNode re-roots the tree at an arbitrary already-resolved node id.
func (t *Tree) PromoteNode(newRoot id) {
	t.promote(newRoot)
}

// promote rebuilds the arena so that only the subtree rooted at newRoot
// survives, the way the teacher's MCTS.cleanup frees every sibling
// branch that the game didn't actually walk into. Go's garbage
// collector reclaims the old arena once this function returns, so
// there's no freelist bookkeeping to get wrong.
func (t *Tree) promote(newRoot id) {
	next := &Tree{
		nodes:     make([]node, 0, len(t.nodes)),
		rootColor: t.at(newRoot).colorToPlayAfter,
		extraKomi: t.extraKomi,
		AmafPrior: t.AmafPrior,
	}
	next.root = next.copySubtree(t, newRoot, nilID)
	*t = *next
}

// copySubtree deep-copies the subtree rooted at src (from tree other)
// into t, reparenting it under parent, and returns the new root's id.
func (t *Tree) copySubtree(other *Tree, src id, parent id) id {
	o := other.at(src)
	dst := t.alloc(node{
		move:             o.move,
		colorToPlayAfter: o.colorToPlayAfter,
		parent:           parent,
		sibling:          nilID,
		firstChild:       nilID,
		stats:            o.stats,
		amaf:             o.amaf,
		prior:            o.prior,
		isExpanded:       o.isExpanded,
		hints:            o.hints,
	})
	var lastChild id = nilID
	for c := o.firstChild; c != nilID; c = other.at(c).sibling {
		childDst := t.copySubtree(other, c, dst)
		if lastChild == nilID {
			t.at(dst).firstChild = childDst
		} else {
			t.at(lastChild).sibling = childDst
		}
		lastChild = childDst
	}
	return dst
}

// Merge folds src's statistics into t (spec.md §4.5's tree merge,
// invoked once per worker by ParallelDriver). Matching nodes are
// identified by the move sequence from the root, since two workers'
// arenas assign ids independently. Priors are subtracted back out of
// src before adding so that equivalent-experience offsets, baked into
// every worker's tree alike at expansion time, are not double-counted
// in the combined total (spec.md §3's merge invariant).
func (t *Tree) Merge(src *Tree) {
	t.mergeNode(t.root, src, src.root)
}

func (t *Tree) mergeNode(dstID id, src *Tree, srcID id) {
	if dstID == t.root {
		// the root itself carries no prior and isn't double-counted;
		// its stats are the sum of real playouts from both trees.
		d := t.at(dstID)
		s := src.at(srcID)
		d.stats.Playouts += s.stats.Playouts
		d.stats.ValueSumDoubled += s.stats.ValueSumDoubled
		d.amaf.Playouts += s.amaf.Playouts
		d.amaf.ValueSumDoubled += s.amaf.ValueSumDoubled
	}

	if src.at(srcID).isExpanded {
		t.at(dstID).isExpanded = true
	}

	for sc := src.at(srcID).firstChild; sc != nilID; sc = src.at(sc).sibling {
		srcChild := src.at(sc)
		dc := t.childMove(dstID, srcChild.move)
		if dc == nilID {
			// src has explored a branch dst never expanded: graft it.
			grafted := t.copySubtree(src, sc, dstID)
			p := t.at(dstID)
			t.at(grafted).sibling = p.firstChild
			p.firstChild = grafted
			continue
		}

		dst := t.at(dc)
		dst.stats.Playouts += srcChild.stats.Playouts - srcChild.prior.Playouts
		dst.stats.ValueSumDoubled += srcChild.stats.ValueSumDoubled - srcChild.prior.ValueSumDoubled
		if t.AmafPrior {
			dst.amaf.Playouts += srcChild.amaf.Playouts - srcChild.prior.Playouts
			dst.amaf.ValueSumDoubled += srcChild.amaf.ValueSumDoubled - srcChild.prior.ValueSumDoubled
		} else {
			dst.amaf.Playouts += srcChild.amaf.Playouts
			dst.amaf.ValueSumDoubled += srcChild.amaf.ValueSumDoubled
		}
		t.mergeNode(dc, src, sc)
	}
}

// Normalize divides every accumulated stat by workers, rounding to the
// nearest integer, so a merged tree reads like the output of a single
// search rather than the sum of N of them (spec.md §4.5's "root visits
// equal sum over N, normalized").
func (t *Tree) Normalize(workers int) {
	if workers <= 1 {
		return
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		n.stats.Playouts = roundDiv(n.stats.Playouts, workers)
		n.stats.ValueSumDoubled = roundDiv(n.stats.ValueSumDoubled, workers)
		n.amaf.Playouts = roundDiv(n.amaf.Playouts, workers)
		n.amaf.ValueSumDoubled = roundDiv(n.amaf.ValueSumDoubled, workers)
	}
}

func roundDiv(x uint32, by int) uint32 {
	return uint32((uint64(x)*2 + uint64(by)) / (2 * uint64(by)))
}

// BestChild returns the id of the root's child with the most playouts,
// the standard "choose the most robust move" rule, and whether the
// root has any expanded children at all.
func (t *Tree) BestChild() (id, bool) {
	best := nilID
	var bestPlayouts uint32
	for c := t.at(t.root).firstChild; c != nilID; c = t.at(c).sibling {
		n := t.at(c)
		if best == nilID || n.stats.Playouts > bestPlayouts {
			best = c
			bestPlayouts = n.stats.Playouts
		}
	}
	return best, best != nilID
}

// Move reports the move a node id represents.
func (t *Tree) Move(i id) board.Move { return t.at(i).move }

// Stats reports the node's aggregate playout statistics.
func (t *Tree) Stats(i id) Stats { return t.at(i).stats }

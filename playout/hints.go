package playout

// Hints is a bitfield of tactical flags computed for a candidate move,
// consumed by the tree policy for tie-breaking or pruning (spec.md §3's
// node "hints" field) and by priors at expansion time.
type Hints uint32

const (
	// HintCapture marks a move that captures at least one enemy group.
	HintCapture Hints = 1 << iota
	// HintExtendsAtari marks a move that saves one of the mover's own
	// groups from capture.
	HintExtendsAtari
	// HintSelfAtari marks a move that leaves the mover's own new group
	// in atari (one liberty) without capturing — usually a bad move.
	HintSelfAtari
)

func (h Hints) Has(f Hints) bool { return h&f != 0 }

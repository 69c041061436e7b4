package mcts

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tesuji/uctgo/board"
)

// OwnerMap accumulates, per intersection, how many finished playouts
// ended with each color owning that point (spec.md §5's owner map). It
// is the evidence group judgment and the pass-is-safe heuristic are
// built on.
type OwnerMap struct {
	size        int
	blackCounts []float64
	whiteCounts []float64
	noneCounts  []float64
	playouts    uint32
}

func NewOwnerMap(size int) *OwnerMap {
	n := size * size
	return &OwnerMap{
		size:        size,
		blackCounts: make([]float64, n),
		whiteCounts: make([]float64, n),
		noneCounts:  make([]float64, n),
	}
}

// Add records one playout's final-position ownership (board.Owners).
// Every point is tallied into exactly one of the three counts (Black,
// White, Dame/None), so counts[p].sum() == playouts for every p
// (spec.md §8).
func (m *OwnerMap) Add(owners []board.Color) {
	for i, c := range owners {
		switch c {
		case board.Black:
			m.blackCounts[i]++
		case board.White:
			m.whiteCounts[i]++
		default:
			m.noneCounts[i]++
		}
	}
	m.playouts++
}

// Merge folds another worker's owner map into m, the same accumulation
// root parallelization applies to tree stats (spec.md §4.5).
func (m *OwnerMap) Merge(other *OwnerMap) {
	floats.Add(m.blackCounts, other.blackCounts)
	floats.Add(m.whiteCounts, other.whiteCounts)
	floats.Add(m.noneCounts, other.noneCounts)
	m.playouts += other.playouts
}

// Playouts reports how many playouts contributed to the map.
func (m *OwnerMap) Playouts() uint32 { return m.playouts }

// BlackShare reports the fraction of recorded playouts in which point
// pt ended up black-owned.
func (m *OwnerMap) BlackShare(pt int) float64 {
	if m.playouts == 0 {
		return 0
	}
	return m.blackCounts[pt] / float64(m.playouts)
}

// WhiteShare is BlackShare's mirror for white.
func (m *OwnerMap) WhiteShare(pt int) float64 {
	if m.playouts == 0 {
		return 0
	}
	return m.whiteCounts[pt] / float64(m.playouts)
}

// DameShare reports the fraction of recorded playouts in which point
// pt ended up neutral (dame).
func (m *OwnerMap) DameShare(pt int) float64 {
	if m.playouts == 0 {
		return 0
	}
	return m.noneCounts[pt] / float64(m.playouts)
}

// Confident reports whether point pt's ownership share for color has
// crossed threshold with enough playouts behind it to trust the
// estimate (spec.md §5's GJ_THRES / GJ_MINGAMES).
func (m *OwnerMap) Confident(pt int, color board.Color, threshold float64, minGames int) bool {
	if int(m.playouts) < minGames {
		return false
	}
	switch color {
	case board.Black:
		return m.BlackShare(pt) >= threshold
	case board.White:
		return m.WhiteShare(pt) >= threshold
	case board.None:
		return m.DameShare(pt) >= threshold
	default:
		return false
	}
}

package prior

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/playout"
)

func TestHeuristicOffsetCaptureBonus(t *testing.T) {
	h := NewHeuristic()
	p := board.New(5)

	off := h.Offset(p, board.Move(0), board.Black, playout.HintCapture)
	assert.Equal(t, h.CaptureBonus, off.Playouts)
	assert.Equal(t, 2*h.CaptureBonus, off.ValueDoubled)
}

func TestHeuristicOffsetSelfAtariPenalty(t *testing.T) {
	h := NewHeuristic()
	p := board.New(5)

	off := h.Offset(p, board.Move(0), board.Black, playout.HintSelfAtari)
	assert.Equal(t, h.SelfAtariPenalty, off.Playouts)
	assert.Equal(t, uint32(0), off.ValueDoubled)
}

func TestHeuristicOffsetNeutralForNoHints(t *testing.T) {
	h := NewHeuristic()
	p := board.New(5)

	off := h.Offset(p, board.Move(0), board.Black, 0)
	assert.Equal(t, Offset{}, off)
}

func TestHeuristicOffsetCapturePrecedesSelfAtari(t *testing.T) {
	h := NewHeuristic()
	p := board.New(5)

	off := h.Offset(p, board.Move(0), board.Black, playout.HintCapture|playout.HintSelfAtari)
	assert.Equal(t, h.CaptureBonus, off.Playouts)
	assert.Equal(t, 2*h.CaptureBonus, off.ValueDoubled)
}

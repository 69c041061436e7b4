package mcts

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/playout"
)

func TestParallelDriverSearchMergesWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 4
	cfg.Games = 40
	cfg.Gamelen = 20
	cfg.ExpandThreshold = 1

	root := New(board.Black)
	pos := board.New(5)
	driver := NewParallelDriver(cfg, NewUCB1(cfg.Explore), playout.NewLight(), nil, 42)

	merged, owners, err := driver.Search(root, pos)
	require.NoError(t, err)
	assert.True(t, merged.RootStats().Playouts > 0)
	assert.True(t, owners.Playouts() > 0)
}

// panicOnceDescend wraps a TreePolicy and panics the first time any
// worker calls Descend, to exercise ParallelDriver's worker-boundary
// panic recovery.
type panicOnceDescend struct {
	inner TreePolicy
	fired int32
}

func (p *panicOnceDescend) Descend(t *Tree, parent id) id {
	if atomic.CompareAndSwapInt32(&p.fired, 0, 1) {
		panic("boom")
	}
	return p.inner.Descend(t, parent)
}

func TestParallelDriverRecoversWorkerPanic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 4
	cfg.Games = 40
	cfg.Gamelen = 20
	cfg.ExpandThreshold = 0

	root := New(board.Black)
	pos := board.New(5)
	policy := &panicOnceDescend{inner: NewUCB1(cfg.Explore)}
	driver := NewParallelDriver(cfg, policy, playout.NewLight(), nil, 7)

	merged, owners, err := driver.Search(root, pos)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
	// The other workers still ran to completion and contributed their
	// playouts despite one worker panicking.
	assert.True(t, merged.RootStats().Playouts > 0)
	assert.True(t, owners.Playouts() > 0)
}

package xrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMasterSeederIsDeterministicForFixedSeed(t *testing.T) {
	a := NewMasterSeeder(42).WorkerSeed(0)
	b := NewMasterSeeder(42).WorkerSeed(0)
	assert.Equal(t, a, b)
}

func TestWorkerSeedDiffersAcrossWorkerIndex(t *testing.T) {
	s := NewMasterSeeder(42)
	seeds := make(map[uint64]bool)
	for i := 0; i < 8; i++ {
		seeds[s.WorkerSeed(i)] = true
	}
	assert.Len(t, seeds, 8)
}

func TestDifferentMasterSeedsDivergeWorkerSeeds(t *testing.T) {
	a := NewMasterSeeder(1).WorkerSeed(0)
	b := NewMasterSeeder(2).WorkerSeed(0)
	assert.NotEqual(t, a, b)
}

func TestNewWorkerRandProducesUsableSource(t *testing.T) {
	rnd := NewWorkerRand(7)
	n := rnd.Intn(10)
	assert.True(t, n >= 0 && n < 10)
}

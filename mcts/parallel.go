package mcts

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"

	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/internal/xrand"
	"github.com/tesuji/uctgo/playout"
	"github.com/tesuji/uctgo/prior"
)

// ParallelDriver runs root-parallel search: Workers independent copies
// of the tree, each driven by its own Walker and its own seeded Rand;
// the rest are halted once a majority have finished, and then every
// tree is merged back into one (spec.md §4.5). The joined-count-under-mutex rendezvous below plays the same
// role as original_source/uct/uct.c's finish_mutex/finish_serializer:
// as soon as a majority of workers report their share of playouts
// done, the halt flag stops the rest from grinding out a long tail on
// a slow machine.
type ParallelDriver struct {
	Cfg     Config
	Policy  TreePolicy
	Rollout playout.Policy
	Prior   prior.Source
	Seeder  *xrand.MasterSeeder
}

func NewParallelDriver(cfg Config, policy TreePolicy, rollout playout.Policy, priors prior.Source, seed int64) *ParallelDriver {
	return &ParallelDriver{
		Cfg:     cfg,
		Policy:  policy,
		Rollout: rollout,
		Prior:   priors,
		Seeder:  xrand.NewMasterSeeder(seed),
	}
}

// workerResult is what each goroutine hands back to the driver.
type workerResult struct {
	tree   *Tree
	owners *OwnerMap
	played int
	err    error
}

// Search runs the full root-parallel search rooted at root (a template
// tree each worker clones) starting from pos, and returns the merged,
// normalized tree plus the combined owner map.
func (d *ParallelDriver) Search(root *Tree, pos *board.Position) (*Tree, *OwnerMap, error) {
	workers := d.Cfg.Workers
	if workers < 1 {
		workers = 1
	}
	quorum := (workers + 1) / 2
	share := d.Cfg.Games / workers
	if share < 1 {
		share = 1
	}

	var halt int32 // atomic; flips once under finishMu, read by every worker

	var finishMu sync.Mutex
	joined := 0

	results := make([]workerResult, workers)
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		i := i
		go func() {
			defer wg.Done()
			tree := root.Clone()
			owners := NewOwnerMap(pos.Size())
			walker := NewWalker(d.Cfg, d.Policy, d.Rollout, d.Prior)
			rnd := xrand.NewWorkerRand(d.Seeder.WorkerSeed(i))
			played := 0

			// A panic mid-playout is recovered at this worker boundary so
			// one bad clone/descent doesn't take the other workers' trees
			// down with it; whatever playouts this worker completed before
			// panicking are still merged, and the panic is reported as an
			// error alongside the combined search result.
			func() {
				defer func() {
					if r := recover(); r != nil {
						results[i].err = fmt.Errorf("worker %d panicked: %v", i, r)
					}
				}()
				for played < share && atomic.LoadInt32(&halt) == 0 {
					if ok, finalOwners := walker.Playout(tree, pos, rnd); ok {
						owners.Add(finalOwners)
						played++
					}
					// Early stop: enough playouts, and the best root child
					// already wins more often than LossThreshold.
					if d.Cfg.MinPlayoutsForEarlyStop > 0 && played >= d.Cfg.MinPlayoutsForEarlyStop {
						if best, ok := tree.BestChild(); ok && tree.Stats(best).Value() > d.Cfg.LossThreshold {
							break
						}
					}
				}
			}()

			results[i].tree = tree
			results[i].owners = owners
			results[i].played = played

			finishMu.Lock()
			joined++
			if joined >= quorum {
				atomic.StoreInt32(&halt, 1)
			}
			finishMu.Unlock()
		}()
	}

	wg.Wait()

	var errs error
	merged := root.Clone()
	ownerMap := NewOwnerMap(pos.Size())
	for _, r := range results {
		if r.err != nil {
			errs = multierror.Append(errs, r.err)
		}
		merged.Merge(r.tree)
		ownerMap.Merge(r.owners)
	}
	merged.Normalize(workers)

	return merged, ownerMap, errs
}

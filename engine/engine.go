package engine

import (
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/config"
	"github.com/tesuji/uctgo/internal/xrand"
	"github.com/tesuji/uctgo/mcts"
	"github.com/tesuji/uctgo/playout"
	"github.com/tesuji/uctgo/prior"
)

const (
	resignRatio   = 0.2
	lossThreshold = 0.85
	minEarlyStop  = 5000

	groupJudgeThreshold = 0.8
	groupJudgeMinGames  = 500
)

// Engine is the stateful façade spec.md §4.6 describes. A zero-value
// Engine is not usable; construct with New.
type Engine struct {
	mu     sync.Mutex
	opt    config.Options
	logger *log.Logger
	komi   float64
	seed   int64

	states map[string]*gameState
}

// New builds an Engine with default configuration (spec.md §6's
// key=value defaults), logging diagnostics to logger.
func New(logger *log.Logger, komi float64) *Engine {
	return &Engine{
		opt:    config.Defaults(),
		logger: logger,
		komi:   komi,
		seed:   time.Now().UnixNano(),
		states: make(map[string]*gameState),
	}
}

// Configure applies a spec.md §6 key=value config string. A malformed
// string is a fatal configuration error (spec.md §7): this logs a
// diagnostic and calls os.Exit(1) via the logger rather than return an
// error the caller might silently ignore.
func (e *Engine) Configure(spec string) {
	opt := config.ParseOrExit(spec, e.logger)
	if opt.HasForceSeed {
		e.seed = opt.ForceSeed
	}
	e.mu.Lock()
	e.opt = opt
	e.mu.Unlock()
}

func (e *Engine) fatal(format string, args ...interface{}) {
	e.logger.Fatalf(format, args...)
}

// NotifyPlay records an opponent (or our own) move played on id's
// board (spec.md §4.6 notify_play).
func (e *Engine) NotifyPlay(id string, pos *board.Position, move board.Move, mover board.Color) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, ok := e.states[id]
	if !ok {
		st = newGameState(pos.Size(), mover.Other())
		e.states[id] = st
	}

	if move.IsResign() {
		delete(e.states, id)
		return
	}

	st.lastWasPass = move.IsPass()
	st.moveCount++
	st.rootColor = mover.Other()
	if !st.tree.PromoteAt(move) {
		// Tree-promotion failure: warn and rebuild from scratch next call
		// (spec.md §7).
		e.logger.Printf("tree promotion failed for move %s, rebuilding", board.FormatMove(move, pos.Size()))
		delete(e.states, id)
	}
}

// DoneBoardState destroys per-game state for id (spec.md §4.6).
func (e *Engine) DoneBoardState(id string) {
	e.mu.Lock()
	delete(e.states, id)
	e.mu.Unlock()
}

// Genmove runs a full search and returns the chosen move (spec.md §4.6
// genmove, steps 1-8).
func (e *Engine) Genmove(id string, pos *board.Position, color board.Color) board.Move {
	e.mu.Lock()
	opt := e.opt
	st, ok := e.states[id]
	if !ok {
		st = newGameState(pos.Size(), color)
		e.states[id] = st
	} else if st.rootColor != color {
		e.mu.Unlock()
		e.fatal("non-alternating play: expected %s to move, got %s", st.rootColor, color)
		return board.Resign // unreachable; fatal exits the process
	}
	e.mu.Unlock()

	st.owners = mcts.NewOwnerMap(pos.Size())

	cfg := e.mctsConfig(opt)
	if opt.Dynkomi && opt.DynkomiValue > 0 && st.moveCount < opt.DynkomiValue {
		// Linearly decreasing dynamic komi bonus: biggest early in the
		// game, zero by move DynkomiValue (spec.md §4.6 step 3).
		const baseDynamicKomi = 3.0
		frac := 1 - float64(st.moveCount)/float64(opt.DynkomiValue)
		st.tree.SetExtraKomi(baseDynamicKomi * frac)
	}

	policy := buildTreePolicy(opt)
	rollout := buildRolloutPolicy(opt)
	priorSrc := buildPrior(opt)

	driver := mcts.NewParallelDriver(cfg, policy, rollout, priorSrc, e.seed)
	merged, owners, err := driver.Search(st.tree, pos)
	if err != nil {
		e.logger.Printf("worker error during search: %v", err)
	}
	st.tree = merged
	st.owners = owners

	best, ok := st.tree.BestChild()
	if !ok {
		delete(e.states, id)
		return board.Pass
	}
	bestMove := st.tree.Move(best)
	bestStats := st.tree.Stats(best)

	if bestStats.Value() < resignRatio && !bestMove.IsPass() {
		delete(e.states, id)
		return board.Resign
	}

	if st.lastWasPass && st.moveCount > 1 {
		walker := mcts.NewWalker(cfg, policy, rollout, priorSrc)
		rnd := xrand.NewWorkerRand(uint64(e.seed) + 1)
		for st.owners.Playouts() < groupJudgeMinGames {
			if ok, finalOwners := walker.Playout(st.tree, pos, rnd); ok {
				st.owners.Add(finalOwners)
			}
		}
		if mcts.PassIsSafe(pos, st.owners, color, e.komi, groupJudgeThreshold, groupJudgeMinGames) {
			bestMove = board.Pass
		}
	}

	st.tree.PromoteNode(best)
	st.moveCount++
	st.lastWasPass = bestMove.IsPass()
	st.rootColor = color.Other()
	return bestMove
}

// DeadGroupList classifies every group on pos (spec.md §4.6
// dead_group_list).
func (e *Engine) DeadGroupList(id string, pos *board.Position) []board.Group {
	e.mu.Lock()
	opt := e.opt
	e.mu.Unlock()

	if opt.PassAllAlive {
		return nil
	}

	e.mu.Lock()
	st, ok := e.states[id]
	e.mu.Unlock()
	if !ok {
		// A throwaway search: id has no tracked state, so judge groups on
		// a freshly seeded tree without ever publishing it to e.states.
		st = newGameState(pos.Size(), pos.Turn())
	}

	if st.owners.Playouts() < groupJudgeMinGames {
		cfg := e.mctsConfig(opt)
		policy := buildTreePolicy(opt)
		rollout := buildRolloutPolicy(opt)
		priorSrc := buildPrior(opt)
		walker := mcts.NewWalker(cfg, policy, rollout, priorSrc)
		rnd := xrand.NewWorkerRand(uint64(e.seed))
		for st.owners.Playouts() < groupJudgeMinGames {
			if ok, owners := walker.Playout(st.tree, pos, rnd); ok {
				st.owners.Add(owners)
			}
		}
	}

	return mcts.DeadGroups(pos, st.owners, groupJudgeThreshold, groupJudgeMinGames)
}

// Chat answers informational queries; only "winrate" is recognized
// (spec.md §4.6 chat).
func (e *Engine) Chat(id, command string) (string, bool) {
	e.mu.Lock()
	st, ok := e.states[id]
	e.mu.Unlock()
	if !ok || command != "winrate" {
		return "", false
	}
	best, ok := st.tree.BestChild()
	if !ok {
		return "no moves searched yet", true
	}
	stats := st.tree.Stats(best)
	return strconv.FormatFloat(stats.Value(), 'f', 3, 64) + " extra komi " +
		strconv.FormatFloat(st.tree.ExtraKomi(), 'f', 1, 64), true
}

func (e *Engine) mctsConfig(opt config.Options) mcts.Config {
	cfg := mcts.DefaultConfig()
	cfg.Workers = opt.Threads
	if opt.ThreadModel == "none" || cfg.Workers < 1 {
		cfg.Workers = 1
	}
	cfg.Games = opt.Games
	cfg.ExpandThreshold = opt.ExpandP
	cfg.Gamelen = opt.Gamelen
	cfg.PlayoutAMAF = opt.PlayoutAmaf
	cfg.AmafPrior = opt.AmafPrior
	cfg.Komi = e.komi
	cfg.DumpThreshold = opt.DumpThres
	if opt.ValPoints > 0 {
		cfg.ValPoints = opt.ValPoints
	}
	cfg.ValScale = opt.ValScale
	cfg.ValExtra = opt.ValExtra
	cfg.ResignRatio = resignRatio
	cfg.LossThreshold = lossThreshold
	cfg.MinPlayoutsForEarlyStop = minEarlyStop
	cfg.GroupJudgeThreshold = groupJudgeThreshold
	cfg.GroupJudgeMinGames = groupJudgeMinGames
	if opt.RandomPolicyChance > 0 {
		cfg.RandomPolicyChance = 1 / float64(opt.RandomPolicyChance)
	}

	if spec := opt.Policy; spec.Name == "ucb1amaf" {
		if eq, err := strconv.ParseFloat(spec.Args, 64); err == nil && eq > 0 {
			cfg.Equivalence = eq
		}
	} else {
		cfg.Equivalence = 0
	}
	return cfg
}

func buildTreePolicy(opt config.Options) mcts.TreePolicy {
	explore := 0.2
	switch opt.Policy.Name {
	case "ucb1":
		if args := strings.TrimSpace(opt.Policy.Args); args != "" {
			if f, err := strconv.ParseFloat(args, 64); err == nil {
				explore = f
			}
		}
		return mcts.NewUCB1(explore)
	default: // "ucb1amaf" and unrecognized fall back to the richer default
		equiv := 3000.0
		if args := strings.TrimSpace(opt.Policy.Args); args != "" {
			if f, err := strconv.ParseFloat(args, 64); err == nil {
				equiv = f
			}
		}
		return mcts.NewUCB1AMAF(explore, equiv)
	}
}

func buildRolloutPolicy(opt config.Options) playout.Policy {
	switch opt.Playout.Name {
	case "light":
		return playout.NewLight()
	default:
		m := playout.NewMoggy()
		if args := strings.TrimSpace(opt.Playout.Args); args != "" {
			if f, err := strconv.ParseFloat(args, 64); err == nil {
				m.CaptureChance = f
			}
		}
		return m
	}
}

func buildPrior(opt config.Options) prior.Source {
	if opt.Prior.Name == "none" {
		return nil
	}
	return prior.NewHeuristic()
}

// Command uctgo-bench drives a single genmove search on an empty board
// and reports playouts per second, the same kind of flag-driven
// one-shot measurement tool as the teacher's cmd/generatemoves, rebuilt
// around the UCT search instead of chess move enumeration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/engine"
)

var (
	boardSize = flag.Int("size", 19, "board size")
	komi      = flag.Float64("komi", 7.5, "komi")
	games     = flag.Int("games", 10000, "playouts per move")
	threads   = flag.Int("threads", 1, "worker count")
)

func main() {
	flag.Parse()

	logger := log.New(os.Stderr, "uctgo-bench: ", log.LstdFlags)
	eng := engine.New(logger, *komi)
	eng.Configure(fmt.Sprintf("games=%d,threads=%d", *games, *threads))

	pos := board.New(*boardSize)

	start := time.Now()
	mv := eng.Genmove("bench", pos, board.Black)
	elapsed := time.Since(start)

	fmt.Printf("move: %s\n", board.FormatMove(mv, pos.Size()))
	fmt.Printf("elapsed: %s\n", elapsed)
	fmt.Printf("playouts/sec: %.0f\n", float64(*games)/elapsed.Seconds())
}

// Command uctgo-gtp is a GTP (Go Text Protocol) frontend over the
// engine package: it reads commands from stdin and writes GTP-style
// responses to stdout, the same flag-driven single-binary shape as the
// teacher's cmd/infer, restructured around a line-oriented protocol
// loop instead of a fixed chess self-play driver.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tesuji/uctgo/board"
	"github.com/tesuji/uctgo/engine"
)

var (
	boardSize = flag.Int("size", 19, "board size")
	komi      = flag.Float64("komi", 7.5, "komi")
	config    = flag.String("config", "", "engine configuration string, spec.md §6 grammar")
)

const gameID = "default"

func main() {
	flag.Parse()

	logger := log.New(os.Stderr, "uctgo-gtp: ", log.LstdFlags)
	eng := engine.New(logger, *komi)
	if *config != "" {
		eng.Configure(*config)
	}

	pos := board.New(*boardSize)

	in := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "protocol_version":
			respond(out, true, "2")
		case "name":
			respond(out, true, "uctgo")
		case "version":
			respond(out, true, "1.0")
		case "boardsize":
			if len(args) != 1 {
				respond(out, false, "invalid boardsize")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				respond(out, false, "invalid boardsize")
				continue
			}
			*boardSize = n
			pos = board.New(n)
			eng.DoneBoardState(gameID)
			respond(out, true, "")
		case "clear_board":
			pos = board.New(*boardSize)
			eng.DoneBoardState(gameID)
			respond(out, true, "")
		case "komi":
			if len(args) == 1 {
				if k, err := strconv.ParseFloat(args[0], 64); err == nil {
					*komi = k
				}
			}
			respond(out, true, "")
		case "play":
			if len(args) != 2 {
				respond(out, false, "invalid play")
				continue
			}
			color, ok := parseColor(args[0])
			mv, okMv := board.ParseMove(args[1], pos.Size())
			if !ok || !okMv || (!mv.IsResign() && !pos.Play(mv)) {
				respond(out, false, "illegal move")
				continue
			}
			eng.NotifyPlay(gameID, pos, mv, color)
			respond(out, true, "")
		case "genmove":
			if len(args) != 1 {
				respond(out, false, "invalid genmove")
				continue
			}
			color, ok := parseColor(args[0])
			if !ok {
				respond(out, false, "invalid color")
				continue
			}
			mv := eng.Genmove(gameID, pos, color)
			if !mv.IsResign() {
				pos.Play(mv)
			}
			respond(out, true, board.FormatMove(mv, pos.Size()))
		case "final_status_list":
			dead := eng.DeadGroupList(gameID, pos)
			var sb strings.Builder
			for i, g := range dead {
				if i > 0 {
					sb.WriteString(" ")
				}
				for j, pt := range g.Points {
					if j > 0 {
						sb.WriteString(" ")
					}
					sb.WriteString(board.FormatMove(board.Move(pt), pos.Size()))
				}
			}
			respond(out, true, sb.String())
		case "uctgo-chat":
			if len(args) != 1 {
				respond(out, false, "invalid uctgo-chat")
				continue
			}
			reply, ok := eng.Chat(gameID, args[0])
			respond(out, ok, reply)
		case "quit":
			respond(out, true, "")
			out.Flush()
			return
		default:
			respond(out, false, "unknown command")
		}
	}
}

func parseColor(s string) (board.Color, bool) {
	switch strings.ToLower(s) {
	case "b", "black":
		return board.Black, true
	case "w", "white":
		return board.White, true
	default:
		return board.None, false
	}
}

func respond(out *bufio.Writer, ok bool, body string) {
	if ok {
		fmt.Fprintf(out, "= %s\n\n", body)
	} else {
		fmt.Fprintf(out, "? %s\n\n", body)
	}
	out.Flush()
}

// Minimal UCI-style front end: position setup, fixed-depth search, static
// evaluation. Time controls and pondering are not implemented; use
// "go depth N".
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	dragon "github.com/dylhunn/dragontoothmg"

	"nightvision/engine"
	"nightvision/game"
)

func atoi(s string, fallback int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return fallback
}

func main() {
	depthFlag := flag.Int("depth", 6, "default search depth in plies")
	cacheFlag := flag.Bool("cache", false, "enable the within-search position cache")
	flag.Parse()

	opts := engine.Options{UseCache: *cacheFlag}
	g := game.New(*depthFlag, opts)

	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "quit":
			return
		case "uci":
			fmt.Println("id name nightvision")
			fmt.Println("id author nightvision contributors")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			g = game.New(*depthFlag, opts)
		case "position":
			g = parsePosition(parts[1:], *depthFlag, opts, g)
		case "go":
			depth := *depthFlag
			for i := 1; i < len(parts)-1; i++ {
				if parts[i] == "depth" {
					depth = atoi(parts[i+1], depth)
				}
			}
			best, err := searchCurrent(g, depth, opts)
			if err != nil {
				fmt.Println("info string", err)
				continue
			}
			fmt.Println("bestmove", best)
		case "eval":
			fmt.Println("info string static eval", g.Evaluate(), "cp (side to move)")
		case "status":
			fmt.Println("info string", g.Status())
		default:
			fmt.Println("info string unknown command", parts[0])
		}
	}
}

func parsePosition(args []string, depth int, opts engine.Options, prev *game.Game) *game.Game {
	if len(args) == 0 {
		return prev
	}

	g := prev
	rest := args
	switch args[0] {
	case "startpos":
		g = game.New(depth, opts)
		rest = args[1:]
	case "fen":
		fields := args[1:]
		var fenParts []string
		for len(fields) > 0 && fields[0] != "moves" {
			fenParts = append(fenParts, fields[0])
			fields = fields[1:]
		}
		g = game.NewFromFEN(strings.Join(fenParts, " "), depth, opts)
		rest = fields
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, moveStr := range rest[1:] {
			if err := g.MakeMove(moveStr); err != nil {
				fmt.Println("info string", err)
				break
			}
		}
	}
	return g
}

func searchCurrent(g *game.Game, depth int, opts engine.Options) (dragon.Move, error) {
	// Search without advancing the session: the GUI drives the moves.
	probe := game.NewFromFEN(g.FEN(), depth, opts)
	return probe.EngineMove(context.Background())
}

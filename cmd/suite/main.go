// Runs the engine over a suite of positions at a fixed depth, fanned out
// across worker goroutines. Each worker owns its Engine; the search itself
// stays single-threaded.
package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"strings"
	"time"

	dragon "github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"nightvision/engine"
)

// A handful of tactical positions searched when no suite file is given.
var defaultSuite = []string{
	dragon.Startpos,
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"rnbqkb1r/pppppppp/5n2/7Q/4P3/8/PPPPPPPP/RNB1KBNR b KQkq - 2 2",
	"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
	"8/P6k/8/8/8/8/8/K7 w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
}

func main() {
	depthFlag := flag.Int("depth", 5, "search depth in plies")
	workersFlag := flag.Int("workers", 4, "number of concurrent positions")
	fileFlag := flag.String("file", "", "file with one FEN per line (empty = built-in suite)")
	cacheFlag := flag.Bool("cache", false, "enable the within-search position cache")
	timeoutFlag := flag.Duration("timeout", 0, "per-position deadline (0 = none)")
	debugFlag := flag.Bool("debug", false, "log per-depth search progress")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	fens, err := loadSuite(*fileFlag)
	if err != nil {
		log.Fatal().Err(err).Str("file", *fileFlag).Msg("load-suite")
	}

	grp, ctx := errgroup.WithContext(context.Background())
	positions := make(chan string)

	grp.Go(func() error {
		defer close(positions)
		for _, fen := range fens {
			select {
			case positions <- fen:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	start := time.Now()
	for w := 0; w < *workersFlag; w++ {
		grp.Go(func() error {
			for fen := range positions {
				searchOne(ctx, fen, *depthFlag, *cacheFlag, *timeoutFlag)
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		log.Fatal().Err(err).Msg("suite-failed")
	}
	log.Info().
		Int("positions", len(fens)).
		Int("depth", *depthFlag).
		Dur("elapsed", time.Since(start)).
		Msg("suite-done")
}

func searchOne(ctx context.Context, fen string, depth int, useCache bool, timeout time.Duration) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	board := dragon.ParseFen(fen)
	eng := engine.New(&board, engine.Options{UseCache: useCache})

	start := time.Now()
	mv, score, ok := eng.BestMove(ctx, depth, board.Wtomove, true)
	if !ok {
		log.Info().Str("fen", fen).Msg("no-legal-moves")
		return
	}
	log.Info().
		Str("fen", fen).
		Str("move", mv.String()).
		Int32("score", score).
		Uint64("nodes", eng.Nodes()).
		Dur("elapsed", time.Since(start)).
		Msg("searched")
}

func loadSuite(path string) ([]string, error) {
	if path == "" {
		return defaultSuite, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

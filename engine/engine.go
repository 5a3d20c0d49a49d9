// Package engine recommends moves for a chess position: iterative-deepening
// negamax with alpha-beta pruning and principal-variation search, a
// capture-only quiescence extension, killer/history move ordering, and a
// material + positional static evaluation. Board representation and move
// legality belong to dragontoothmg; this package only consumes them.
package engine

import (
	"context"

	dragon "github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog/log"
)

const defaultCacheSize = 1 << 20

// Options configures an Engine. The zero value is a plain search with no
// position cache.
type Options struct {
	// UseCache enables the within-search position cache.
	UseCache bool
	// CacheSize is the cache capacity in entries; 0 means the default.
	CacheSize int
}

// Engine searches one position for one caller at a time. It holds a
// reference to the caller's board and mutates it only through paired
// make/undo calls: the board is bit-identical before and after a request.
// Not safe for concurrent use; run one Engine per goroutine.
type Engine struct {
	board *dragon.Board
	sc    searchContext
	ctx   context.Context
}

// New creates an Engine bound to the caller-owned board.
func New(board *dragon.Board, opts Options) *Engine {
	e := &Engine{board: board, ctx: context.Background()}
	if opts.UseCache {
		size := opts.CacheSize
		if size <= 0 {
			size = defaultCacheSize
		}
		e.sc.cache = newPositionCache(size)
	}
	return e
}

// Nodes reports how many nodes the last request visited. Diagnostic only.
func (e *Engine) Nodes() uint64 {
	return e.sc.nodes
}

// BestMove recommends a move for the side to move, searching maxDepth plies
// (iteratively from depth 1 when useIterativeDeepening is set). The score
// is oriented so that positive favors White when whiteToMaximize is true,
// Black otherwise.
//
// The context deadline is polled during the search. On expiry the current
// iteration is discarded and the best move of the last fully completed
// depth is returned; a move is never taken from a partial iteration. If not
// even depth 1 finished, the best-ordered legal move is returned, so any
// position with a legal move yields a move. Only checkmate and stalemate
// return ok == false.
func (e *Engine) BestMove(ctx context.Context, maxDepth int, whiteToMaximize bool, useIterativeDeepening bool) (move dragon.Move, score int32, ok bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	e.ctx = ctx
	e.sc.reset()

	rootMoves := e.board.GenerateLegalMoves()
	if len(rootMoves) == 0 {
		return 0, 0, false
	}

	var haveMove bool
	if useIterativeDeepening {
		for depth := 1; depth <= maxDepth; depth++ {
			mv, s, completed := e.searchRoot(int8(depth))
			if !completed {
				break
			}
			move, score, haveMove = mv, s, true
			log.Debug().
				Int("depth", depth).
				Str("move", mv.String()).
				Int32("score", s).
				Uint64("nodes", e.sc.nodes).
				Msg("deepening-iteratively")
		}
	} else {
		move, score, haveMove = e.searchRoot(int8(maxDepth))
	}

	if !haveMove {
		// Deadline expired before any depth completed; any legal move
		// beats returning nothing.
		move, score = e.orderMoves(rootMoves)[0], 0
	}
	if whiteToMaximize != e.board.Wtomove {
		score = -score
	}
	return move, score, true
}

// searchRoot runs one full-width iteration at a fixed depth. Root moves are
// ordered fresh, the window narrows manually as improving moves are found,
// and there is no null-window probing: every root move gets the full
// remaining window. Reports completed == false when the deadline cut the
// iteration short, in which case the partial result must not be used.
func (e *Engine) searchRoot(depth int8) (best dragon.Move, score int32, completed bool) {
	b := e.board
	moves := e.orderMoves(b.GenerateLegalMoves())

	alpha, beta := -infinity, infinity
	found := false
	for _, mv := range moves {
		unapply := b.Apply(mv)
		s := -e.negamax(depth-1, -beta, -alpha)
		unapply()
		if e.sc.aborted {
			return 0, 0, false
		}
		if s > alpha {
			alpha = s
			best = mv
			found = true
		}
	}
	if !found {
		best = moves[0]
	}
	return best, alpha, true
}

func (e *Engine) expired() bool {
	select {
	case <-e.ctx.Done():
		return true
	default:
		return false
	}
}

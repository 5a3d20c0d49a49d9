// Package game wraps an engine and a board into a playable session: it
// validates incoming moves, asks the engine for replies, and reports the
// game result. Notation parsing stays at this boundary; the engine core
// never sees a move string.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dragon "github.com/dylhunn/dragontoothmg"

	"nightvision/engine"
)

// Status is the state of a session.
type Status int

const (
	InProgress Status = iota
	WhiteWon
	BlackWon
	DrawStalemate
	DrawInsufficientMaterial
	DrawFiftyMove
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case WhiteWon:
		return "white wins"
	case BlackWon:
		return "black wins"
	case DrawStalemate:
		return "stalemate - draw"
	case DrawInsufficientMaterial:
		return "insufficient material - draw"
	case DrawFiftyMove:
		return "fifty-move rule - draw"
	}
	return "unknown"
}

// ErrGameOver is returned when a move is requested in a finished game.
var ErrGameOver = errors.New("game is over")

// Game owns the board; its engine holds a reference and searches in place.
type Game struct {
	board  dragon.Board
	engine *engine.Engine
	depth  int
}

// New starts a session from the initial position. depth is the engine's
// maximum search depth for EngineMove.
func New(depth int, opts engine.Options) *Game {
	g := &Game{
		board: dragon.ParseFen(dragon.Startpos),
		depth: depth,
	}
	g.engine = engine.New(&g.board, opts)
	return g
}

// NewFromFEN starts a session from an arbitrary position.
func NewFromFEN(fen string, depth int, opts engine.Options) *Game {
	g := &Game{
		board: dragon.ParseFen(fen),
		depth: depth,
	}
	g.engine = engine.New(&g.board, opts)
	return g
}

// FEN returns the current position.
func (g *Game) FEN() string {
	return g.board.ToFen()
}

// WhiteToMove reports whose turn it is.
func (g *Game) WhiteToMove() bool {
	return g.board.Wtomove
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.InCheck(&g.board)
}

// Evaluate scores the current position for the side to move.
func (g *Game) Evaluate() int32 {
	return engine.EvaluateFor(&g.board, g.board.Wtomove)
}

// MakeMove applies a move given in coordinate notation (e2e4, a7a8q). The
// move is matched against the legal-move list, so malformed or illegal
// input never reaches the board.
func (g *Game) MakeMove(moveStr string) error {
	if g.Status() != InProgress {
		return ErrGameOver
	}
	want := strings.ToLower(strings.TrimSpace(moveStr))
	for _, legal := range g.board.GenerateLegalMoves() {
		if legal.String() == want {
			g.board.Apply(legal)
			return nil
		}
	}
	return fmt.Errorf("illegal move %q in position %s", moveStr, g.board.ToFen())
}

// EngineMove asks the engine for a move for the side to move and plays it.
func (g *Game) EngineMove(ctx context.Context) (dragon.Move, error) {
	if g.Status() != InProgress {
		return 0, ErrGameOver
	}
	mv, _, ok := g.engine.BestMove(ctx, g.depth, g.board.Wtomove, true)
	if !ok {
		return 0, errors.New("no legal moves")
	}
	g.board.Apply(mv)
	return mv, nil
}

// Nodes reports the node count of the last engine search.
func (g *Game) Nodes() uint64 {
	return g.engine.Nodes()
}

// Status derives the game state from the position.
func (g *Game) Status() Status {
	if len(g.board.GenerateLegalMoves()) == 0 {
		if engine.InCheck(&g.board) {
			if g.board.Wtomove {
				return BlackWon
			}
			return WhiteWon
		}
		return DrawStalemate
	}
	if engine.InsufficientMaterial(&g.board) {
		return DrawInsufficientMaterial
	}
	if g.board.Halfmoveclock >= 100 {
		return DrawFiftyMove
	}
	return InProgress
}

// Reset returns the session to the starting position. The engine keeps its
// board reference; the position is overwritten in place.
func (g *Game) Reset() {
	g.board = dragon.ParseFen(dragon.Startpos)
}

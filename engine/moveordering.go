package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

// Move-ordering bonuses. Captures dominate, then promotions, then killers;
// history and the center nudge only break ties among quiet moves.
const (
	captureBonus   int32 = 10000
	promotionBonus int32 = 8000
	killerBonus    int32 = 3000
	centerBonus    int32 = 10
)

type scoredMove struct {
	move  dragon.Move
	score int32
}

// orderMoves returns the moves sorted by descending heuristic score. The
// sort is stable: equal scores keep the generator's order, so a search over
// the same position is reproducible move for move.
func (e *Engine) orderMoves(moves []dragon.Move) []dragon.Move {
	scored := make([]scoredMove, len(moves))
	for i, mv := range moves {
		scored[i] = scoredMove{move: mv, score: e.scoreMove(mv)}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return int(b.score - a.score)
	})
	ordered := make([]dragon.Move, len(moves))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

// scoreMove ranks a single candidate: MVV-LVA for captures, a flat bonus
// for promotions and killer matches, accumulated history credit, and a
// small nudge toward the four center squares.
func (e *Engine) scoreMove(mv dragon.Move) int32 {
	var score int32

	if victim, ok := CapturedPiece(e.board, mv); ok {
		score += captureBonus + pieceValue[victim]
		if attacker, ok := AttackerPiece(e.board, mv); ok {
			score -= pieceValue[attacker]
		}
	}

	if mv.Promote() > 0 {
		score += promotionBonus
	}

	if e.sc.killers.contains(mv) {
		score += killerBonus
	}

	score += e.sc.history.get(mv) / 10

	switch mv.To() {
	case sqD4, sqE4, sqD5, sqE5:
		score += centerBonus
	}

	return score
}

package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

const (
	// Window bound; well above any mate sentinel, well below overflow.
	infinity int32 = 1 << 24

	// Deadline poll granularity, in nodes.
	deadlinePollMask uint64 = 2047
)

// negamax searches one ply per call with alpha-beta pruning and PVS. Scores
// are always from the side to move's perspective; recursion negates and
// swaps the window. Every Apply is paired with its unapply on every exit
// path, cutoffs included.
func (e *Engine) negamax(depth int8, alpha, beta int32) int32 {
	e.sc.nodes++
	if e.sc.nodes&deadlinePollMask == 0 && e.expired() {
		e.sc.aborted = true
	}
	if e.sc.aborted {
		return 0
	}

	if depth <= 0 {
		return e.quiescence(alpha, beta)
	}

	b := e.board
	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return -MateScore
		}
		return DrawScore
	}
	if InsufficientMaterial(b) {
		return DrawScore
	}

	var hash uint64
	if e.sc.cache != nil {
		hash = b.Hash()
		if entry, ok := e.sc.cache.probe(hash, depth); ok {
			switch entry.bound {
			case boundExact:
				return entry.score
			case boundLower:
				if entry.score >= beta {
					return entry.score
				}
				if entry.score > alpha {
					alpha = entry.score
				}
			case boundUpper:
				if entry.score <= alpha {
					return entry.score
				}
				if entry.score < beta {
					beta = entry.score
				}
			}
		}
	}

	ordered := e.orderMoves(moves)
	alphaOrig := alpha
	best := -infinity
	var bestMove dragon.Move

	for i, mv := range ordered {
		unapply := b.Apply(mv)

		var score int32
		if i == 0 {
			// Principal variation: full window.
			score = -e.negamax(depth-1, -beta, -alpha)
		} else {
			// Null-window probe; re-search on a surprise inside the window.
			score = -e.negamax(depth-1, -(alpha + 1), -alpha)
			if score > alpha && score < beta {
				score = -e.negamax(depth-1, -beta, -alpha)
			}
		}

		unapply()
		if e.sc.aborted {
			return 0
		}

		if score > best {
			best = score
			bestMove = mv
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			e.sc.killers.insert(mv)
			e.sc.history.add(mv, depth)
			break
		}
	}

	if e.sc.cache != nil {
		bound := boundExact
		if best <= alphaOrig {
			bound = boundUpper
		} else if best >= beta {
			bound = boundLower
		}
		e.sc.cache.store(hash, depth, best, bestMove, bound)
	}

	return best
}

// quiescence extends the search through capture chains at the depth floor
// so the static evaluation is only ever taken on a quiet position. True
// negamax, fail-hard: the return value never leaves [alpha, beta].
func (e *Engine) quiescence(alpha, beta int32) int32 {
	e.sc.nodes++
	if e.sc.nodes&deadlinePollMask == 0 && e.expired() {
		e.sc.aborted = true
	}
	if e.sc.aborted {
		return 0
	}

	b := e.board
	standPat := EvaluateFor(b, b.Wtomove)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	for _, mv := range b.GenerateLegalMoves() {
		if !IsCapture(b, mv) {
			continue
		}
		// Skip captures that trade down on the spot. An accepted tactical
		// blind spot; en passant has no victim on the target square and is
		// never skipped.
		if victim, ok := CapturedPiece(b, mv); ok {
			if attacker, ok := AttackerPiece(b, mv); ok && pieceValue[victim] < pieceValue[attacker] {
				continue
			}
		}

		unapply := b.Apply(mv)
		score := -e.quiescence(-beta, -alpha)
		unapply()
		if e.sc.aborted {
			return 0
		}

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return beta
		}
	}

	return alpha
}

package engine

import (
	"math/bits"

	dragon "github.com/dylhunn/dragontoothmg"
)

// Score sentinels, in centipawns.
const (
	MateScore int32 = 99999
	DrawScore int32 = 0
)

// Standard piece values, indexed by dragontoothmg.Piece. The king carries no
// material value.
var pieceValue = [7]int32{0, 100, 320, 330, 500, 900, 0}

// Evaluation weights.
const (
	mobilityWeight      int32 = 2
	doubledPawnPenalty  int32 = 20
	isolatedPawnPenalty int32 = 15
	castledKingBonus    int32 = 20
	inCheckPenalty      int32 = 10
)

// Piece-square tables, written rank 8 first as seen from White's side of the
// board. White indexes them through sq^56, Black reads them directly and
// subtracts, so each side sees its own mirror.

var pawnTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int32{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int32{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddleTable = [64]int32{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndTable = [64]int32{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// Evaluate scores a position from White's perspective: positive means White
// stands better. Deterministic, side-effect-free, always finite. Terminal
// positions short-circuit to their sentinel scores.
func Evaluate(b *dragon.Board) int32 {
	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			if b.Wtomove {
				return -MateScore
			}
			return MateScore
		}
		return DrawScore
	}
	if InsufficientMaterial(b) {
		return DrawScore
	}

	endgame := isEndgame(b)

	score := materialScore(b)
	score += positionalScore(b, endgame)
	score += mobilityScore(b, moves)
	score += pawnStructureScore(b)
	score += kingSafetyScore(b)
	return score
}

// EvaluateFor negates the fixed White perspective for a Black caller.
func EvaluateFor(b *dragon.Board, white bool) int32 {
	score := Evaluate(b)
	if !white {
		return -score
	}
	return score
}

// isEndgame holds when no queens remain and at most two rooks survive in
// total. Selects the active-king table.
func isEndgame(b *dragon.Board) bool {
	if b.White.Queens|b.Black.Queens != 0 {
		return false
	}
	return bits.OnesCount64(b.White.Rooks|b.Black.Rooks) <= 2
}

func materialScore(b *dragon.Board) int32 {
	var score int32
	score += int32(bits.OnesCount64(b.White.Pawns)-bits.OnesCount64(b.Black.Pawns)) * pieceValue[dragon.Pawn]
	score += int32(bits.OnesCount64(b.White.Knights)-bits.OnesCount64(b.Black.Knights)) * pieceValue[dragon.Knight]
	score += int32(bits.OnesCount64(b.White.Bishops)-bits.OnesCount64(b.Black.Bishops)) * pieceValue[dragon.Bishop]
	score += int32(bits.OnesCount64(b.White.Rooks)-bits.OnesCount64(b.Black.Rooks)) * pieceValue[dragon.Rook]
	score += int32(bits.OnesCount64(b.White.Queens)-bits.OnesCount64(b.Black.Queens)) * pieceValue[dragon.Queen]
	return score
}

func positionalScore(b *dragon.Board, endgame bool) int32 {
	kingTable := &kingMiddleTable
	if endgame {
		kingTable = &kingEndTable
	}

	var score int32
	score += pstScore(b.White.Pawns, &pawnTable, true) + pstScore(b.Black.Pawns, &pawnTable, false)
	score += pstScore(b.White.Knights, &knightTable, true) + pstScore(b.Black.Knights, &knightTable, false)
	score += pstScore(b.White.Bishops, &bishopTable, true) + pstScore(b.Black.Bishops, &bishopTable, false)
	score += pstScore(b.White.Rooks, &rookTable, true) + pstScore(b.Black.Rooks, &rookTable, false)
	score += pstScore(b.White.Queens, &queenTable, true) + pstScore(b.Black.Queens, &queenTable, false)
	score += pstScore(b.White.Kings, kingTable, true) + pstScore(b.Black.Kings, kingTable, false)
	return score
}

func pstScore(bb uint64, table *[64]int32, white bool) int32 {
	var score int32
	for bb != 0 {
		sq := uint8(bits.TrailingZeros64(bb))
		bb &= bb - 1
		if white {
			score += table[sq^56]
		} else {
			score -= table[sq]
		}
	}
	return score
}

// mobilityScore takes the already-generated move list of the side to move
// and counts the other side without disturbing the position.
func mobilityScore(b *dragon.Board, sideToMoveMoves []dragon.Move) int32 {
	own := len(sideToMoveMoves)
	other := MobilityCount(b, !b.Wtomove)
	if b.Wtomove {
		return int32(own-other) * mobilityWeight
	}
	return int32(other-own) * mobilityWeight
}

func pawnStructureScore(b *dragon.Board) int32 {
	var score int32
	for file := 0; file < 8; file++ {
		mask := fileMask(file)
		white := bits.OnesCount64(b.White.Pawns & mask)
		black := bits.OnesCount64(b.Black.Pawns & mask)

		if white > 1 {
			score -= doubledPawnPenalty * int32(white-1)
		}
		if black > 1 {
			score += doubledPawnPenalty * int32(black-1)
		}

		adjacent := adjacentFilesMask(file)
		if white > 0 && b.White.Pawns&adjacent == 0 {
			score -= isolatedPawnPenalty * int32(white)
		}
		if black > 0 && b.Black.Pawns&adjacent == 0 {
			score += isolatedPawnPenalty * int32(black)
		}
	}
	return score
}

func kingSafetyScore(b *dragon.Board) int32 {
	var score int32
	if sq, ok := kingSquare(&b.White); ok && (sq == sqG1 || sq == sqC1) {
		score += castledKingBonus
	}
	if sq, ok := kingSquare(&b.Black); ok && (sq == sqG8 || sq == sqC8) {
		score -= castledKingBonus
	}
	if b.OurKingInCheck() {
		if b.Wtomove {
			score -= inCheckPenalty
		} else {
			score += inCheckPenalty
		}
	}
	return score
}

func fileMask(file int) uint64 {
	return 0x0101010101010101 << uint(file)
}

func adjacentFilesMask(file int) uint64 {
	var mask uint64
	if file > 0 {
		mask |= fileMask(file - 1)
	}
	if file < 7 {
		mask |= fileMask(file + 1)
	}
	return mask
}

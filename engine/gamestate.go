package engine

import (
	"math/bits"

	dragon "github.com/dylhunn/dragontoothmg"
)

// Thin predicates over the dragontoothmg board. The move generator owns the
// rules; everything here is derived from its bitboards and legal-move list.

const lightSquares uint64 = 0x55AA55AA55AA55AA

// Square indices (a1 = 0, h8 = 63) the evaluation and ordering care about.
const (
	sqC1 uint8 = 2
	sqG1 uint8 = 6
	sqD4 uint8 = 27
	sqE4 uint8 = 28
	sqD5 uint8 = 35
	sqE5 uint8 = 36
	sqC8 uint8 = 58
	sqG8 uint8 = 62
)

// pieceOn reports which piece kind of one side sits on a square.
func pieceOn(bb *dragon.Bitboards, sq uint8) (dragon.Piece, bool) {
	mask := uint64(1) << sq
	switch {
	case bb.Pawns&mask != 0:
		return dragon.Pawn, true
	case bb.Knights&mask != 0:
		return dragon.Knight, true
	case bb.Bishops&mask != 0:
		return dragon.Bishop, true
	case bb.Rooks&mask != 0:
		return dragon.Rook, true
	case bb.Queens&mask != 0:
		return dragon.Queen, true
	case bb.Kings&mask != 0:
		return dragon.King, true
	}
	return 0, false
}

// PieceAt looks a square up on either side's bitboards.
func PieceAt(b *dragon.Board, sq uint8) (piece dragon.Piece, white bool, ok bool) {
	if piece, ok = pieceOn(&b.White, sq); ok {
		return piece, true, true
	}
	piece, ok = pieceOn(&b.Black, sq)
	return piece, false, ok
}

// InCheck reports whether the side to move is in check.
func InCheck(b *dragon.Board) bool {
	return b.OurKingInCheck()
}

// IsCheckmate reports whether the side to move is checkmated.
func IsCheckmate(b *dragon.Board) bool {
	return b.OurKingInCheck() && len(b.GenerateLegalMoves()) == 0
}

// IsStalemate reports whether the side to move has no legal moves while not
// in check.
func IsStalemate(b *dragon.Board) bool {
	return !b.OurKingInCheck() && len(b.GenerateLegalMoves()) == 0
}

// InsufficientMaterial reports positions where no mating line exists for
// either side: bare kings, a lone minor piece, or same-colored bishops only.
func InsufficientMaterial(b *dragon.Board) bool {
	if b.White.Pawns|b.Black.Pawns|b.White.Rooks|b.Black.Rooks|b.White.Queens|b.Black.Queens != 0 {
		return false
	}
	knights := b.White.Knights | b.Black.Knights
	bishops := b.White.Bishops | b.Black.Bishops
	if bits.OnesCount64(knights|bishops) <= 1 {
		return true
	}
	if knights == 0 {
		if bishops&lightSquares == bishops || bishops&^lightSquares == bishops {
			return true
		}
	}
	return false
}

// IsCapture classifies a legal move of the side to move. A destination
// square holding an enemy piece is a capture; so is a pawn stepping
// diagonally onto an empty square (en passant).
func IsCapture(b *dragon.Board, m dragon.Move) bool {
	own, enemy := sideBitboards(b)
	if _, occupied := pieceOn(enemy, m.To()); occupied {
		return true
	}
	if piece, ok := pieceOn(own, m.From()); ok && piece == dragon.Pawn {
		return m.From()%8 != m.To()%8
	}
	return false
}

// CapturedPiece returns the enemy piece on the destination square. En
// passant captures report no victim, matching a plain destination lookup.
func CapturedPiece(b *dragon.Board, m dragon.Move) (dragon.Piece, bool) {
	_, enemy := sideBitboards(b)
	return pieceOn(enemy, m.To())
}

// AttackerPiece returns the moving piece.
func AttackerPiece(b *dragon.Board, m dragon.Move) (dragon.Piece, bool) {
	own, _ := sideBitboards(b)
	return pieceOn(own, m.From())
}

// MobilityCount counts the legal moves available to one side, regardless of
// whose turn it is. The count runs on a value copy of the board so the
// caller's position is never mutated.
func MobilityCount(b *dragon.Board, white bool) int {
	pos := *b
	pos.Wtomove = white
	return len(pos.GenerateLegalMoves())
}

func sideBitboards(b *dragon.Board) (own, enemy *dragon.Bitboards) {
	if b.Wtomove {
		return &b.White, &b.Black
	}
	return &b.Black, &b.White
}

func kingSquare(bb *dragon.Bitboards) (uint8, bool) {
	if bb.Kings == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros64(bb.Kings)), true
}

package engine

import (
	"testing"

	dragon "github.com/dylhunn/dragontoothmg"
)

func parseBoard(t *testing.T, fen string) dragon.Board {
	t.Helper()
	return dragon.ParseFen(fen)
}

func findMove(t *testing.T, b *dragon.Board, moveStr string) dragon.Move {
	t.Helper()
	for _, mv := range b.GenerateLegalMoves() {
		if mv.String() == moveStr {
			return mv
		}
	}
	t.Fatalf("move %s not legal in %s", moveStr, b.ToFen())
	return 0
}

func TestCheckmateDetection(t *testing.T) {
	// Fool's mate: White to move, mated by Qh4.
	b := parseBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !IsCheckmate(&b) {
		t.Fatalf("expected checkmate")
	}
	if IsStalemate(&b) {
		t.Fatalf("mate is not stalemate")
	}
}

func TestStalemateDetection(t *testing.T) {
	b := parseBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if !IsStalemate(&b) {
		t.Fatalf("expected stalemate")
	}
	if IsCheckmate(&b) {
		t.Fatalf("stalemate is not mate")
	}
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want bool
	}{
		{"8/8/8/8/8/8/8/K1k5 w - - 0 1", true},                // bare kings
		{"8/8/8/8/8/8/8/KN5k w - - 0 1", true},                // lone knight
		{"8/8/8/8/8/8/8/KB5k w - - 0 1", true},                // lone bishop
		{"8/8/8/8/8/8/8/KB2b2k w - - 0 1", false},             // opposite-color bishops
		{"8/8/8/8/8/8/8/KB1b3k w - - 0 1", true},              // same-color bishops
		{"8/8/8/8/8/8/8/KNn4k w - - 0 1", false},              // knight each
		{"8/7p/8/8/8/8/8/K6k w - - 0 1", false},               // pawn left
		{dragon.Startpos, false},                              // full board
		{"8/8/8/8/8/8/8/KR5k w - - 0 1", false},               // rook left
	}
	for _, tc := range cases {
		b := parseBoard(t, tc.fen)
		if got := InsufficientMaterial(&b); got != tc.want {
			t.Errorf("InsufficientMaterial(%s) = %v, want %v", tc.fen, got, tc.want)
		}
	}
}

func TestIsCapture(t *testing.T) {
	b := parseBoard(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")

	capture := findMove(t, &b, "e4d5")
	if !IsCapture(&b, capture) {
		t.Fatalf("e4d5 should be a capture")
	}
	victim, ok := CapturedPiece(&b, capture)
	if !ok || victim != dragon.Pawn {
		t.Fatalf("expected pawn victim, got %v ok=%v", victim, ok)
	}
	attacker, ok := AttackerPiece(&b, capture)
	if !ok || attacker != dragon.Pawn {
		t.Fatalf("expected pawn attacker, got %v ok=%v", attacker, ok)
	}

	quiet := findMove(t, &b, "g1f3")
	if IsCapture(&b, quiet) {
		t.Fatalf("g1f3 should be quiet")
	}
}

func TestIsCaptureEnPassant(t *testing.T) {
	b := parseBoard(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	ep := findMove(t, &b, "e5f6")
	if !IsCapture(&b, ep) {
		t.Fatalf("en passant should classify as a capture")
	}
	if _, ok := CapturedPiece(&b, ep); ok {
		t.Fatalf("en passant has no victim on the destination square")
	}
}

func TestPieceAt(t *testing.T) {
	b := parseBoard(t, dragon.Startpos)
	piece, white, ok := PieceAt(&b, 4) // e1
	if !ok || piece != dragon.King || !white {
		t.Fatalf("expected white king on e1, got %v white=%v ok=%v", piece, white, ok)
	}
	piece, white, ok = PieceAt(&b, 57) // b8
	if !ok || piece != dragon.Knight || white {
		t.Fatalf("expected black knight on b8, got %v white=%v ok=%v", piece, white, ok)
	}
	if _, _, ok = PieceAt(&b, 28); ok { // e4
		t.Fatalf("e4 should be empty")
	}
}

func TestMobilityCountDoesNotMutate(t *testing.T) {
	b := parseBoard(t, dragon.Startpos)
	before := b.ToFen()

	if got := MobilityCount(&b, true); got != 20 {
		t.Fatalf("white mobility at start = %d, want 20", got)
	}
	if got := MobilityCount(&b, false); got != 20 {
		t.Fatalf("black mobility at start = %d, want 20", got)
	}
	if after := b.ToFen(); after != before {
		t.Fatalf("board mutated: %s -> %s", before, after)
	}
}

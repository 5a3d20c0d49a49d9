package engine

import (
	"testing"

	dragon "github.com/dylhunn/dragontoothmg"
)

func TestEvaluateStartposIsBalanced(t *testing.T) {
	b := parseBoard(t, dragon.Startpos)
	if got := Evaluate(&b); got != 0 {
		t.Fatalf("Evaluate(startpos) = %d, want 0", got)
	}
}

func TestEvaluateIsDeterministicAndSideEffectFree(t *testing.T) {
	b := parseBoard(t, "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	before := b.ToFen()
	first := Evaluate(&b)
	second := Evaluate(&b)
	if first != second {
		t.Fatalf("evaluation not deterministic: %d vs %d", first, second)
	}
	if after := b.ToFen(); after != before {
		t.Fatalf("evaluation mutated the board: %s -> %s", before, after)
	}
}

func TestEvaluateForNegates(t *testing.T) {
	// White is missing a rook.
	b := parseBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR w Kkq - 0 1")
	white := EvaluateFor(&b, true)
	black := EvaluateFor(&b, false)
	if white >= 0 {
		t.Fatalf("rook-down position should score negative for White, got %d", white)
	}
	if black != -white {
		t.Fatalf("perspectives do not negate: white %d, black %d", white, black)
	}
}

func TestEvaluateCheckmateSentinel(t *testing.T) {
	b := parseBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if got := Evaluate(&b); got != -MateScore {
		t.Fatalf("mated White should evaluate to %d, got %d", -MateScore, got)
	}
	if got := EvaluateFor(&b, false); got != MateScore {
		t.Fatalf("Black's view of mating should be %d, got %d", MateScore, got)
	}
}

func TestEvaluateDrawSentinels(t *testing.T) {
	stalemate := parseBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if got := Evaluate(&stalemate); got != 0 {
		t.Fatalf("stalemate should evaluate to 0, got %d", got)
	}
	bare := parseBoard(t, "8/8/8/8/8/8/8/K1k5 w - - 0 1")
	if got := Evaluate(&bare); got != 0 {
		t.Fatalf("bare kings should evaluate to 0, got %d", got)
	}
}

func TestIsEndgame(t *testing.T) {
	cases := []struct {
		fen  string
		want bool
	}{
		{dragon.Startpos, false},
		{"8/4k3/8/8/8/8/3K4/8 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", false},             // queen on board
		{"4k2r/8/8/8/8/8/8/R3K2R w - - 0 1", false},           // three rooks
		{"4k3/8/8/8/8/8/8/R3K2R w - - 0 1", true},             // two rooks, no queens
	}
	for _, tc := range cases {
		b := parseBoard(t, tc.fen)
		if got := isEndgame(&b); got != tc.want {
			t.Errorf("isEndgame(%s) = %v, want %v", tc.fen, got, tc.want)
		}
	}
}

func TestPawnStructureScore(t *testing.T) {
	// Doubled and isolated a-pawns: -20 doubled, -15 isolated apiece.
	doubled := parseBoard(t, "k7/8/8/8/8/P7/P7/K7 w - - 0 1")
	if got := pawnStructureScore(&doubled); got != -50 {
		t.Fatalf("doubled+isolated pawns = %d, want -50", got)
	}

	// Adjacent pawns: neither doubled nor isolated.
	healthy := parseBoard(t, "k7/8/8/8/8/8/PP6/K7 w - - 0 1")
	if got := pawnStructureScore(&healthy); got != 0 {
		t.Fatalf("healthy pawns = %d, want 0", got)
	}

	// Black with the same defect flips the sign.
	blackDoubled := parseBoard(t, "k7/p7/p7/8/8/8/8/K7 w - - 0 1")
	if got := pawnStructureScore(&blackDoubled); got != 50 {
		t.Fatalf("black doubled+isolated pawns = %d, want 50", got)
	}
}

func TestKingSafetyScore(t *testing.T) {
	castled := parseBoard(t, "rnbqk2r/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1RK1 w kq - 0 1")
	if got := kingSafetyScore(&castled); got != castledKingBonus {
		t.Fatalf("castled white king = %d, want %d", got, castledKingBonus)
	}

	start := parseBoard(t, dragon.Startpos)
	if got := kingSafetyScore(&start); got != 0 {
		t.Fatalf("start position king safety = %d, want 0", got)
	}
}

func TestPositionalScorePrefersAdvancedPawn(t *testing.T) {
	onE4 := parseBoard(t, "k7/8/8/8/4P3/8/8/K7 w - - 0 1")
	onE2 := parseBoard(t, "k7/8/8/8/8/8/4P3/K7 w - - 0 1")
	endgame := true
	advanced := positionalScore(&onE4, endgame)
	home := positionalScore(&onE2, endgame)
	if advanced <= home {
		t.Fatalf("pawn on e4 (%d) should outscore pawn on e2 (%d)", advanced, home)
	}
}

func TestMaterialScore(t *testing.T) {
	// White up a knight, Black up a pawn.
	b := parseBoard(t, "k7/pp6/8/8/8/8/P7/KN6 w - - 0 1")
	want := pieceValue[dragon.Knight] - pieceValue[dragon.Pawn]
	if got := materialScore(&b); got != want {
		t.Fatalf("materialScore = %d, want %d", got, want)
	}
}

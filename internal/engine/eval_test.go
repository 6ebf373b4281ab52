package engine

import (
	"math/rand"
	"testing"

	"github.com/hailam/chessplay/internal/board"
)

func TestStaticEvaluateSymmetricStartingPosition(t *testing.T) {
	pos := board.NewPosition()
	if score := staticEvaluate(pos); score != 0 {
		t.Errorf("staticEvaluate(startpos) = %d, want 0 (symmetric material and PST)", score)
	}
}

func TestStaticEvaluateFavorsMaterialAdvantage(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if score := staticEvaluate(pos); score <= 0 {
		t.Errorf("staticEvaluate with an extra queen = %d, want > 0", score)
	}
}

func TestRandomPlayoutTerminatesOnCheckmate(t *testing.T) {
	pos, err := board.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	result := RandomPlayout(pos, rng)
	if result != -1.0 {
		t.Errorf("RandomPlayout on an already-checkmated position = %v, want -1.0", result)
	}
}

func TestLimitedDepthPlayoutStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		pos := board.NewPosition()
		result := LimitedDepthPlayout(pos, rng)
		if result < -1.0 || result > 1.0 {
			t.Fatalf("LimitedDepthPlayout returned %v, outside [-1, 1]", result)
		}
	}
}

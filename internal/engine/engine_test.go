package engine

import (
	"math"
	"testing"
	"time"

	"github.com/hailam/chessplay/internal/board"
)

func TestTranspositionTableStoreProbeClear(t *testing.T) {
	tt := NewTranspositionTable()
	root := NewNode(nil, board.NoMove)

	tt.Store(1234, root)
	got, ok := tt.Probe(1234)
	if !ok || got != root {
		t.Fatalf("Probe(1234) = %v, %v; want %v, true", got, ok, root)
	}

	if tt.Size() != 1 {
		t.Errorf("Size() = %d, want 1", tt.Size())
	}

	tt.Clear()
	if tt.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", tt.Size())
	}
	if _, ok := tt.Probe(1234); ok {
		t.Errorf("Probe(1234) after Clear should miss")
	}
}

func TestTimeManagerMoveTimeUsesLimitVerbatim(t *testing.T) {
	tm := NewTimeManager()
	tm.Init(UCILimits{MoveTime: 250 * time.Millisecond}, board.White)
	if tm.LimitMs() != 250 {
		t.Errorf("LimitMs() = %d, want 250", tm.LimitMs())
	}
}

func TestTimeManagerFormula(t *testing.T) {
	tm := NewTimeManager()
	tm.Init(UCILimits{Time: [2]time.Duration{10000 * time.Millisecond, 10000 * time.Millisecond}}, board.White)
	if tm.LimitMs() != 200 {
		t.Errorf("LimitMs() = %d, want 200 (10000/50)", tm.LimitMs())
	}

	tm2 := NewTimeManager()
	tm2.Init(UCILimits{Time: [2]time.Duration{60 * time.Millisecond, 60 * time.Millisecond}}, board.White)
	if tm2.LimitMs() != 30 {
		t.Errorf("LimitMs() = %d, want 30 (bounded by time_left/2)", tm2.LimitMs())
	}
}

func TestUCTInfiniteForUnvisited(t *testing.T) {
	n := NewNode(nil, board.NoMove)
	if score := n.UCT(10, 0.6); !math.IsInf(score, 1) {
		t.Errorf("UCT for unvisited node = %v, want +Inf", score)
	}
}

func TestSearchFindBestMoveReturnsLegalMove(t *testing.T) {
	pos := board.NewPosition()
	s := NewSearch()

	move := s.FindBestMove(pos, 50)
	if move == board.NoMove {
		t.Fatal("FindBestMove returned NoMove from the starting position")
	}

	legal := pos.GenerateLegalMoves()
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i) == move {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("FindBestMove returned %v, which is not a legal move", move)
	}
	if s.Iterations() == 0 {
		t.Error("expected at least one completed MCTS iteration")
	}
}

func TestSearchNoLegalMovesReturnsNoMove(t *testing.T) {
	pos, err := board.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	s := NewSearch()
	move := s.FindBestMove(pos, 20)
	if move != board.NoMove {
		t.Errorf("FindBestMove on a checkmated position = %v, want NoMove", move)
	}
}

func TestEngineFindBestMoveReportsInfo(t *testing.T) {
	e := NewEngine()
	var info SearchInfo
	e.OnInfo = func(i SearchInfo) { info = i }

	pos := board.NewPosition()
	move := e.FindBestMove(pos, 50)
	if move == board.NoMove {
		t.Fatal("FindBestMove returned NoMove from the starting position")
	}
	if info.Iterations == 0 {
		t.Error("OnInfo was not called with a non-zero iteration count")
	}
}

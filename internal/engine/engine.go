package engine

import (
	"time"

	"github.com/hailam/chessplay/internal/board"
)

// SearchInfo summarizes a completed (or in-progress) MCTS search for the
// UCI layer's "info" output.
type SearchInfo struct {
	Iterations int
	Nodes      int
	Time       time.Duration
}

// Engine drives one Search at a time and reports progress through OnInfo.
type Engine struct {
	search *Search

	// OnInfo, if set, is called once after FindBestMove returns.
	OnInfo func(SearchInfo)
}

// NewEngine creates a chess engine with the default UCT exploration
// constant.
func NewEngine() *Engine {
	return &Engine{search: NewSearch()}
}

// SetExplorationConstant overrides the UCT exploration constant used by
// subsequent searches. Exposed for UCI's "setoption name UCT_C".
func (e *Engine) SetExplorationConstant(c float64) {
	e.search.C = c
}

// ExplorationConstant returns the exploration constant in effect.
func (e *Engine) ExplorationConstant() float64 {
	return e.search.exploration()
}

// FindBestMove runs MCTS from pos for up to timeLimitMs milliseconds and
// returns the most-visited root move, or board.NoMove if pos has no legal
// moves.
func (e *Engine) FindBestMove(pos *board.Position, timeLimitMs int64) board.Move {
	start := time.Now()
	move := e.search.FindBestMove(pos, timeLimitMs)

	if e.OnInfo != nil {
		e.OnInfo(SearchInfo{
			Iterations: e.search.Iterations(),
			Nodes:      e.search.TreeSize(),
			Time:       time.Since(start),
		})
	}

	return move
}

// Stop requests that an in-progress FindBestMove return after its current
// iteration.
func (e *Engine) Stop() {
	e.search.Stop()
}

// Clear discards the transposition table built by the most recent search.
func (e *Engine) Clear() {
	e.search.tt.Clear()
}

// Iterations reports how many MCTS iterations the most recent
// FindBestMove call completed.
func (e *Engine) Iterations() int {
	return e.search.Iterations()
}

// TreeSize reports how many nodes the most recent search registered.
func (e *Engine) TreeSize() int {
	return e.search.TreeSize()
}

// Perft counts leaf nodes at the given depth, for move-generator
// debugging via the "perft" UCI extension command.
func (e *Engine) Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		move := moves.Get(i)
		undo := pos.MakeMove(move)
		nodes += e.Perft(pos, depth-1)
		pos.UnmakeMove(move, undo)
	}

	return nodes
}

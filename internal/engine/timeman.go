package engine

import (
	"time"

	"github.com/hailam/chessplay/internal/board"
)

// UCILimits contains UCI time control parameters.
type UCILimits struct {
	Time      [2]time.Duration // wtime, btime (remaining time for each color)
	Inc       [2]time.Duration // winc, binc (increment per move)
	MovesToGo int              // moves until next time control (0 = sudden death)
	MoveTime  time.Duration    // fixed time per move (overrides other time controls)
	Infinite  bool             // search until stopped
}

// TimeManager derives a single wall-clock deadline for one MCTS search.
// Unlike an iterative-deepening alpha-beta search, MCTS has no notion of
// per-depth stability to adjust against; the allocation is a flat fraction
// of the remaining clock, checked only between iterations.
type TimeManager struct {
	limitMs   int64
	startTime time.Time
}

// NewTimeManager creates a new time manager.
func NewTimeManager() *TimeManager {
	return &TimeManager{}
}

// Init computes the time budget for this move and starts the clock. The
// budget is time_left/50, capped at time_left/2 and then raised to at least
// 10ms, so on clocks under 20ms it can exceed time_left/2.
func (tm *TimeManager) Init(limits UCILimits, us board.Color) {
	tm.startTime = time.Now()

	if limits.MoveTime > 0 {
		tm.limitMs = limits.MoveTime.Milliseconds()
		return
	}

	if limits.Infinite || limits.Time[us] == 0 {
		tm.limitMs = int64(time.Hour / time.Millisecond)
		return
	}

	timeLeftMs := limits.Time[us].Milliseconds()
	budget := timeLeftMs / 50
	max := timeLeftMs / 2
	if budget > max {
		budget = max
	}
	if budget < 10 {
		budget = 10
	}
	tm.limitMs = budget
}

// Elapsed returns the time elapsed since search started.
func (tm *TimeManager) Elapsed() time.Duration {
	return time.Since(tm.startTime)
}

// LimitMs returns the computed deadline in milliseconds.
func (tm *TimeManager) LimitMs() int64 {
	return tm.limitMs
}

// ShouldStop returns true once the deadline has passed. Checked only
// between MCTS iterations, never mid-playout.
func (tm *TimeManager) ShouldStop() bool {
	return tm.Elapsed().Milliseconds() >= tm.limitMs
}

package engine

import (
	"math"
	"math/rand"

	"github.com/hailam/chessplay/internal/board"
)

// Material values in centipawns, used only by the static evaluation that
// scores playouts which run past maxPlayoutDepth without reaching a
// terminal position.
const (
	pawnValue   = 100
	knightValue = 320
	bishopValue = 330
	rookValue   = 500
	queenValue  = 900
	kingValue   = 20000
)

var pieceValues = [6]int{pawnValue, knightValue, bishopValue, rookValue, queenValue, kingValue}

var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, -10, -10, 10, 10, 10,
	10, 10, 20, 30, 30, 20, 10, 10,
	20, 25, 30, 50, 50, 30, 25, 20,
	30, 40, 50, 60, 60, 50, 40, 30,
	50, 60, 70, 80, 80, 70, 60, 50,
	120, 130, 140, 150, 150, 140, 130, 120,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPST = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var pieceSquareTables = [6]*[64]int{&pawnPST, &knightPST, &bishopPST, &rookPST, &queenPST, &kingPST}

// staticEvaluate scores pos from the perspective of the side to move: a
// positive score favors whoever is about to play. It sums material value
// and piece-square bonuses for both sides and flips sign for black, then
// flips again if black is the one to move.
func staticEvaluate(pos *board.Position) int {
	score := 0

	for pt := board.Pawn; pt <= board.King; pt++ {
		pst := pieceSquareTables[pt]

		white := pos.Pieces[board.White][pt]
		for white != 0 {
			sq := white.PopLSB()
			score += pieceValues[pt]
			score += pst[sq]
		}

		black := pos.Pieces[board.Black][pt]
		for black != 0 {
			sq := black.PopLSB()
			score -= pieceValues[pt]
			score -= pst[sq^56]
		}
	}

	if pos.SideToMove == board.Black {
		score = -score
	}
	return score
}

// RandomPlayout plays pos forward with uniformly random legal moves until a
// terminal position is reached, then scores the result from the
// perspective of the player to move in the position passed in. Checkmate
// scores -1 for the checkmated side, +1 for the side that delivered it;
// stalemate and the 50-move rule score 0. This is the default Simulate
// policy: an unbounded playout, no positional shortcuts.
func RandomPlayout(pos *board.Position, rng *rand.Rand) float64 {
	startingPlayer := pos.SideToMove

	for {
		legal := pos.GenerateLegalMoves()
		if legal.Len() == 0 {
			if pos.InCheck() {
				if pos.SideToMove == startingPlayer {
					return -1.0
				}
				return 1.0
			}
			return 0.0
		}

		if pos.HalfMoveClock >= 100 {
			return 0.0
		}

		move := legal.Get(rng.Intn(legal.Len()))
		pos.MakeMove(move)
	}
}

// LimitedDepthPlayout is an alternate Simulate policy: it plays random
// legal moves for at most maxPlayoutDepth plies, using the same terminal
// checks as RandomPlayout, and falls back to a material-plus-piece-square
// staticEvaluate of the final position (squashed into [-1, 1] with tanh,
// treating roughly three pawns of material as a near-certain result) when
// the depth limit is reached before a terminal state. Not wired in by
// default; assign it to Search.Simulate to use it instead of RandomPlayout.
func LimitedDepthPlayout(pos *board.Position, rng *rand.Rand) float64 {
	startingPlayer := pos.SideToMove

	for depth := 0; depth < maxPlayoutDepth; depth++ {
		legal := pos.GenerateLegalMoves()
		if legal.Len() == 0 {
			if pos.InCheck() {
				if pos.SideToMove == startingPlayer {
					return -1.0
				}
				return 1.0
			}
			return 0.0
		}

		if pos.HalfMoveClock >= 100 {
			return 0.0
		}

		move := legal.Get(rng.Intn(legal.Len()))
		pos.MakeMove(move)
	}

	score := staticEvaluate(pos)
	if pos.SideToMove != startingPlayer {
		score = -score
	}

	return math.Tanh(float64(score) / (pawnValue * 3.0))
}

package engine

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/hailam/chessplay/internal/board"
)

// defaultUCTC is the exploration constant used by UCT when a caller does
// not override it via Search.C.
const defaultUCTC = 0.6

// maxPlayoutDepth bounds LimitedDepthPlayout, the optional alternate
// Simulate policy. Unused by the default RandomPlayout, which always
// plays to a true terminal state.
const maxPlayoutDepth = 20

// Search runs Monte Carlo Tree Search from a root position, iterating
// Select -> Expand -> Simulate -> Backpropagate until its time budget
// expires. Each FindBestMove call starts a fresh tree, clears the
// transposition table and resets the iteration count, so one Search can
// serve successive calls.
type Search struct {
	// C is the UCT exploration constant. Zero means defaultUCTC.
	C float64

	// Simulate scores a position reached at the end of the expansion
	// phase, from the perspective of the side to move in that position.
	// Nil means RandomPlayout.
	Simulate func(pos *board.Position, rng *rand.Rand) float64

	tt         *TranspositionTable
	tm         *TimeManager
	rng        *rand.Rand
	root       *Node
	iterations int
	stop       atomic.Bool

	// OnIteration, if set, is called after every completed iteration with
	// the running iteration count and current tree size. The UCI layer does
	// not set it; it reports once per search through Engine.OnInfo.
	OnIteration func(iterations, nodes int)
}

// NewSearch creates a Search with default exploration constant and a
// freshly seeded random source.
func NewSearch() *Search {
	return &Search{
		C:   defaultUCTC,
		tt:  NewTranspositionTable(),
		tm:  NewTimeManager(),
		rng: rand.New(rand.NewSource(rand.Int63())),
	}
}

func (s *Search) exploration() float64 {
	if s.C == 0 {
		return defaultUCTC
	}
	return s.C
}

// FindBestMove runs MCTS from rootPos for up to timeLimitMs milliseconds
// and returns the most-visited move from the root. It returns board.NoMove
// if the root position has no legal moves.
func (s *Search) FindBestMove(rootPos *board.Position, timeLimitMs int64) board.Move {
	s.tt.Clear()
	s.root = NewNode(nil, board.NoMove)
	s.tt.Store(rootPos.Hash, s.root)
	s.iterations = 0

	s.tm.Init(UCILimits{MoveTime: time.Duration(timeLimitMs) * time.Millisecond}, rootPos.SideToMove)
	s.stop.Store(false)

	for !s.tm.ShouldStop() && !s.stop.Load() {
		pos := rootPos.Copy()

		leaf := s.selectLeaf(s.root, pos)
		expanded := s.expand(leaf, pos)
		result := s.playout(pos)
		s.backpropagate(expanded, result)

		s.iterations++
		if s.OnIteration != nil {
			s.OnIteration(s.iterations, s.tt.Size())
		}
	}

	return bestRootMove(s.root)
}

// Stop requests that the in-progress FindBestMove call return after its
// current iteration finishes. Safe to call from another goroutine; the
// search checks this flag only between iterations, never mid-playout.
func (s *Search) Stop() {
	s.stop.Store(true)
}

// Iterations reports how many MCTS iterations the most recent
// FindBestMove call completed.
func (s *Search) Iterations() int {
	return s.iterations
}

// TreeSize reports how many nodes the most recent search registered.
func (s *Search) TreeSize() int {
	return s.tt.Size()
}

// selectLeaf descends from node, always choosing the child with the
// highest UCT score, until it reaches a node that is terminal or not yet
// fully expanded. pos is advanced in step with the descent so that it
// reflects the leaf's position on return.
func (s *Search) selectLeaf(node *Node, pos *board.Position) *Node {
	for {
		legal := pos.GenerateLegalMoves()
		if legal.Len() == 0 || !node.IsFullyExpanded(legal.Len()) {
			return node
		}

		var best *Node
		maxScore := math.Inf(-1)
		for _, child := range node.Children {
			score := child.UCT(node.Visits, s.exploration())
			if score > maxScore {
				maxScore = score
				best = child
			}
		}
		if best == nil {
			return node
		}

		pos.MakeMove(best.Move)
		node = best
	}
}

// expand adds one new child to node, corresponding to the next legal move
// not yet represented among node's children, and advances pos by that
// move. If node is terminal, expand is a no-op and returns node unchanged.
func (s *Search) expand(node *Node, pos *board.Position) *Node {
	legal := pos.GenerateLegalMoves()
	if legal.Len() == 0 {
		return node
	}

	move := legal.Get(len(node.Children))
	pos.MakeMove(move)

	child := NewNode(node, move)
	node.Children = append(node.Children, child)
	s.tt.Store(pos.Hash, child)

	return child
}

// playout scores pos using the configured Simulate function, defaulting
// to RandomPlayout.
func (s *Search) playout(pos *board.Position) float64 {
	if s.Simulate != nil {
		return s.Simulate(pos, s.rng)
	}
	return RandomPlayout(pos, s.rng)
}

// backpropagate walks from node to the root, incrementing visit counts
// and accumulating result, negating it at every step since result is
// always expressed from the perspective of the player to move at the
// node it is being added to.
func (s *Search) backpropagate(node *Node, result float64) {
	for node != nil {
		node.Visits++
		result = -result
		node.Value += result
		node = node.Parent
	}
}

// bestRootMove returns the move of root's most-visited child, or NoMove
// if root has no children.
func bestRootMove(root *Node) board.Move {
	maxVisits := -1
	best := board.NoMove
	for _, child := range root.Children {
		if child.Visits > maxVisits {
			maxVisits = child.Visits
			best = child.Move
		}
	}
	return best
}

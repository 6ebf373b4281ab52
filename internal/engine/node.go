package engine

import (
	"math"

	"github.com/hailam/chessplay/internal/board"
)

// Node is a single statistics node in the MCTS tree. Children are owned by
// their parent's slice; Parent is a non-owning back-pointer used only to
// walk upward during backpropagation. The root's parent is nil.
type Node struct {
	Parent   *Node
	Move     board.Move // the move that led from Parent to this node
	Children []*Node
	Visits   int
	Value    float64
}

// NewNode creates a node reached from parent by move.
func NewNode(parent *Node, move board.Move) *Node {
	return &Node{Parent: parent, Move: move}
}

// IsFullyExpanded reports whether every legal move from this node's
// position already has a representative child.
func (n *Node) IsFullyExpanded(legalMoveCount int) bool {
	return len(n.Children) >= legalMoveCount
}

// UCT returns the upper confidence bound used to rank n among its siblings
// during selection. parentVisits is the visit count of n's parent.
func (n *Node) UCT(parentVisits int, c float64) float64 {
	if n.Visits == 0 {
		return math.Inf(1)
	}
	exploitation := n.Value / float64(n.Visits)
	exploration := c * math.Sqrt(math.Log(float64(parentVisits))/float64(n.Visits))
	return exploitation + exploration
}

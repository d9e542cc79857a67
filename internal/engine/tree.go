package engine

import (
	"math"
	"sort"

	"github.com/amazonsengine/amazons/internal/amazons"
)

// Node is one entry of the persistent search tree spec.md §3 describes:
// an action (absent at the root), a score that is unset until the node has
// been evaluated, and children created lazily on first expansion. Nodes
// are owned by their parent in a tree that only ever grows downward --
// there are no cycles and no shared references (spec.md §9) -- and survive
// across iterative-deepening passes so earlier scores can drive move
// ordering on the next, deeper pass.
type Node struct {
	Action    amazons.Action
	HasAction bool

	Score  int
	Scored bool

	Children []*Node

	// Best is the child that produced this node's Score on its most
	// recent evaluation. At the root, Best.Action is the engine's chosen
	// move for the iteration that set it.
	Best *Node
}

// NewRoot returns an empty root node -- no action, unscored, no children.
func NewRoot() *Node {
	return &Node{}
}

// EnsureChildren materialises one child per legal action for player if the
// node hasn't been expanded yet. Already-materialised children (and their
// scores from an earlier iterative-deepening pass) are left untouched.
func (n *Node) EnsureChildren(b *amazons.Board, player amazons.Player) {
	if n.Children != nil {
		return
	}
	for a := range b.ActionsFor(player) {
		n.Children = append(n.Children, &Node{Action: a, HasAction: true})
	}
}

// OrderChildren sorts children by their cached score from an earlier
// iteration: descending when maximizing, ascending when minimizing.
// Unscored children sort as if their score were +infinity when maximizing
// (mirrored to -infinity when minimizing), so unexplored moves are tried
// before moves already known to be bad (spec.md §4.3).
func (n *Node) OrderChildren(maximizing bool) {
	sort.SliceStable(n.Children, func(i, j int) bool {
		vi := orderingValue(n.Children[i], maximizing)
		vj := orderingValue(n.Children[j], maximizing)
		if maximizing {
			return vi > vj
		}
		return vi < vj
	})
}

func orderingValue(n *Node, maximizing bool) int {
	if n.Scored {
		return n.Score
	}
	if maximizing {
		return math.MaxInt
	}
	return math.MinInt
}

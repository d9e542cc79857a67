package engine

import (
	"github.com/amazonsengine/amazons/internal/amazons"
	"github.com/amazonsengine/amazons/internal/eval"
)

// Search constants (spec.md §4.2, §4.3).
const (
	// Infinity bounds alpha-beta's initial window. It must dwarf any
	// value Evaluate can produce and any Win-class terminal score.
	Infinity = 1 << 30

	// Win is the base terminal score; an actual terminal leaf returns
	// ±(Win + remaining depth) so the search prefers to win sooner and
	// lose later.
	Win = 100000

	// MaxDepth caps the iterative-deepening loop (spec.md §4.3).
	MaxDepth = 10
)

// Driver runs iterative deepening over MTD(f)-probed alpha-beta minimax to
// pick the best action for self on board, stopping at timer's deadline.
type Driver struct {
	board   *amazons.Board
	self    amazons.Player
	weights eval.Weights
	timer   *Timer
	nodes   uint64

	// OnIteration, if set, is called after every iterative-deepening pass
	// with its depth, score, whether it completed, and the running node
	// count -- a progress hook in the same spirit as the teacher's
	// Engine.OnInfo callback.
	OnIteration func(depth, score int, complete bool, nodes uint64)
}

// NewDriver builds a search driver over board for self, using weights for
// the static evaluation and timer as the deadline.
func NewDriver(board *amazons.Board, self amazons.Player, weights eval.Weights, timer *Timer) *Driver {
	return &Driver{board: board, self: self, weights: weights, timer: timer}
}

// Nodes returns the number of tree nodes visited by the most recent Run.
func (d *Driver) Nodes() uint64 {
	return d.nodes
}

// Run performs iterative deepening: depth 1, 2, 3, ..., each driven by
// MTD(f) with the previous depth's score as the first guess, reusing the
// persistent game tree for move ordering. It returns the best action found
// by the last iteration that either fully completed, or -- if even the
// first iteration was interrupted -- the best partial result available.
//
// Run returns amazons.ErrNoActionFound if self already has no legal action
// on board; this is the "game already over" case spec.md §4.3 says
// propagates to the caller rather than being treated as a search failure.
func (d *Driver) Run() (amazons.Action, error) {
	d.nodes = 0
	if status := d.board.Status(d.self); status.Over {
		return amazons.Action{}, amazons.ErrNoActionFound
	}

	root := NewRoot()
	var best amazons.Action
	haveBest := false
	guess := 0

	for depth := 1; depth <= MaxDepth; depth++ {
		score, remaining := d.mtdf(root, depth, guess)
		guess = score

		complete := remaining == 0
		if complete {
			best = root.Best.Action
			haveBest = true
		} else if !haveBest && root.Best != nil {
			// Iteration 1 itself was interrupted: fall back to whatever
			// partial result it managed to produce.
			best = root.Best.Action
			haveBest = true
		}

		if d.OnIteration != nil {
			d.OnIteration(depth, guess, complete, d.nodes)
		}

		if !complete || depth == MaxDepth || d.timer.TimeoutsSoon() {
			break
		}
	}

	if !haveBest {
		// Root was non-terminal, so at least one child must have been
		// explored on the first iteration; this would be a programming
		// error in the search, not a recoverable condition.
		panic("engine: search produced no action for a non-terminal position")
	}

	return best, nil
}

// mtdf is the memory-enhanced test driver: repeated null-window alpha-beta
// probes against the persistent tree, converging to the minimax value at
// depth (spec.md §4.3).
func (d *Driver) mtdf(root *Node, depth int, firstGuess int) (score int, remaining int) {
	g := firstGuess
	lower, upper := -Infinity, Infinity

	for lower < upper {
		if d.timer.TimeoutsSoon() {
			break
		}

		beta := g
		if lower+1 > beta {
			beta = lower + 1
		}

		value, rem := d.alphaBeta(root, depth, beta-1, beta, true)
		g = value
		remaining = rem

		if g < beta {
			upper = g
		} else {
			lower = g
		}
	}

	return g, remaining
}

// alphaBeta evaluates node at depth under window (alpha, beta), where
// maximizing selects whether self or self.Other() is to move. It returns
// the node's minimax score and a remaining-depth counter: 0 if this
// subtree's search fully completed, or a positive value if the timer cut
// it short (spec.md §4.3).
func (d *Driver) alphaBeta(node *Node, depth int, alpha, beta int, maximizing bool) (int, int) {
	d.nodes++

	player := d.self
	if !maximizing {
		player = d.self.Other()
	}

	if status := d.board.Status(player); status.Over {
		score := Win + depth
		if status.Winner != d.self {
			score = -score
		}
		node.Score, node.Scored = score, true
		return score, 0
	}

	if depth == 0 {
		value := eval.Evaluate(d.board, d.self, player, d.weights)
		node.Score, node.Scored = value, true
		return value, 0
	}

	node.EnsureChildren(d.board, player)
	node.OrderChildren(maximizing)

	best := -Infinity
	if !maximizing {
		best = Infinity
	}

	remaining := 0
	explored := false

	for _, child := range node.Children {
		d.board.Apply(child.Action)
		childScore, childRemaining := d.alphaBeta(child, depth-1, alpha, beta, !maximizing)
		d.board.Undo()

		child.Score, child.Scored = childScore, true

		if !explored || childRemaining < remaining {
			remaining = childRemaining
		}
		explored = true

		if maximizing {
			if childScore > best {
				best = childScore
				node.Best = child
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if childScore < best {
				best = childScore
				node.Best = child
			}
			if best < beta {
				beta = best
			}
		}

		if beta <= alpha {
			break
		}
		if d.timer.TimeoutsSoon() {
			remaining = depth
			break
		}
	}

	node.Score, node.Scored = best, true
	return best, remaining
}

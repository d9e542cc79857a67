package engine

import (
	"testing"

	"github.com/amazonsengine/amazons/internal/amazons"
)

func TestEnsureChildrenIsIdempotent(t *testing.T) {
	board := amazons.DefaultOpeningBoard()
	root := NewRoot()

	root.EnsureChildren(board, amazons.Player0)
	first := root.Children

	root.EnsureChildren(board, amazons.Player0)
	if len(root.Children) != len(first) {
		t.Errorf("EnsureChildren re-expanded an already-expanded node: got %d children, want %d", len(root.Children), len(first))
	}
}

func TestOrderChildrenSortsByCachedScore(t *testing.T) {
	root := NewRoot()
	root.Children = []*Node{
		{Score: 3, Scored: true},
		{Score: -5, Scored: true},
		{Score: 10, Scored: true},
	}

	root.OrderChildren(true)
	if root.Children[0].Score != 10 || root.Children[2].Score != -5 {
		t.Errorf("expected descending order for maximizing, got %v", scores(root.Children))
	}

	root.OrderChildren(false)
	if root.Children[0].Score != -5 || root.Children[2].Score != 10 {
		t.Errorf("expected ascending order for minimizing, got %v", scores(root.Children))
	}
}

func TestOrderChildrenTriesUnscoredFirst(t *testing.T) {
	root := NewRoot()
	unscored := &Node{}
	root.Children = []*Node{
		{Score: 1000, Scored: true},
		unscored,
	}

	root.OrderChildren(true)
	if root.Children[0] != unscored {
		t.Error("expected an unscored child to sort first when maximizing")
	}
}

func scores(nodes []*Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Score
	}
	return out
}

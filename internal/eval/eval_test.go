package eval

import (
	"testing"

	"github.com/amazonsengine/amazons/internal/amazons"
)

func TestEvaluateTieBreakFollowsSideToMove(t *testing.T) {
	// A 4x4 board with the two queens at mirrored corners and no arrows is
	// symmetric under swapping players: mobility, reachability, and
	// relative territory all cancel exactly. The territory tie-break does
	// not cancel by design -- it awards its quarter points to whichever
	// side is actually to move, not always to the evaluating side -- so
	// the same position scores oppositely depending on toMove.
	b, err := amazons.NewBoard(4,
		[]amazons.Position{{Row: 0, Col: 0}},
		[]amazons.Position{{Row: 3, Col: 3}},
		nil)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	selfToMove := Evaluate(b, amazons.Player0, amazons.Player0, DefaultWeights)
	oppToMove := Evaluate(b, amazons.Player0, amazons.Player1, DefaultWeights)

	if selfToMove <= 0 {
		t.Errorf("expected a positive tie-break award when self is to move, got %d", selfToMove)
	}
	if oppToMove >= 0 {
		t.Errorf("expected a negative tie-break award when the opponent is to move, got %d", oppToMove)
	}
	if selfToMove != -oppToMove {
		t.Errorf("expected the tie-break swing to be symmetric: selfToMove=%d oppToMove=%d", selfToMove, oppToMove)
	}
}

func TestEvaluateFavorsMoreMobileSide(t *testing.T) {
	// player0's queen sits in the open center; player1's queen is boxed
	// into a corner by arrows, so player0 should evaluate strictly
	// positive from its own perspective.
	b, err := amazons.NewBoard(6,
		[]amazons.Position{{Row: 3, Col: 3}},
		[]amazons.Position{{Row: 0, Col: 0}},
		[]amazons.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	score := Evaluate(b, amazons.Player0, amazons.Player0, DefaultWeights)
	if score <= 0 {
		t.Errorf("expected player0 to evaluate strictly positive, got %d", score)
	}

	opponentView := Evaluate(b, amazons.Player1, amazons.Player1, DefaultWeights)
	if opponentView >= 0 {
		t.Errorf("expected player1 to evaluate strictly negative from its own perspective, got %d", opponentView)
	}
}

func TestEvaluateTerminalCallerResponsibility(t *testing.T) {
	// Evaluate itself does not special-case terminal positions; a boxed-in
	// queen with zero mobility still produces a finite score rather than
	// panicking, since the search driver is responsible for checking
	// Board.Status before ever reaching a leaf evaluation.
	b, err := amazons.NewBoard(4,
		[]amazons.Position{{Row: 0, Col: 0}},
		[]amazons.Position{{Row: 3, Col: 3}},
		[]amazons.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	_ = Evaluate(b, amazons.Player0, amazons.Player0, DefaultWeights)
}

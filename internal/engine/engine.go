package engine

import (
	"log"
	"time"

	"github.com/amazonsengine/amazons/internal/amazons"
	"github.com/amazonsengine/amazons/internal/eval"
)

// Engine is the public façade spec.md §4.5 and §6 describe: given a
// position, a player-to-move, and a deadline, it returns an action. It owns
// an internal fast Board exclusively for the duration of a search
// (spec.md §5) and keeps that board synchronised with whatever external
// board the caller is driving.
type Engine struct {
	board      *amazons.Board
	self       amazons.Player
	timeBudget time.Duration
	weights    eval.Weights
}

// New snapshots board into the engine's internal fast form and records
// which player the engine plays. timeBudget is the wall-clock allowance
// each ChooseAction call gets.
func New(board *amazons.Board, self amazons.Player, timeBudget time.Duration) *Engine {
	return &Engine{
		board:      board.Copy(),
		self:       self,
		timeBudget: timeBudget,
		weights:    eval.DefaultWeights,
	}
}

// SetWeights overrides the evaluator's weights. Callers that don't call
// this get spec.md §4.2's declared defaults.
func (e *Engine) SetWeights(w eval.Weights) {
	e.weights = w
}

// Board returns the engine's internal board, for read-only inspection
// (tests, diagnostics). Mutating it outside of ChooseAction breaks the
// engine's single-threaded ownership contract.
func (e *Engine) Board() *amazons.Board {
	return e.board
}

// ChooseAction resynchronises the engine's internal board with any
// opponent actions played since the engine's last turn, runs the search
// under a fresh deadline, commits the chosen action to the internal board,
// and returns it.
//
// opponentActions must be given oldest-first: spec.md §4.5 describes this
// as walking the external board's history back to the engine's last move
// and replaying that suffix in chronological order, which is ~100x cheaper
// than copying the full external position.
func (e *Engine) ChooseAction(opponentActions []amazons.Action) (amazons.Action, error) {
	for _, a := range opponentActions {
		e.board.Apply(a)
	}

	timer := NewTimer(e.timeBudget)
	driver := NewDriver(e.board, e.self, e.weights, timer)
	driver.OnIteration = func(depth, score int, complete bool, nodes uint64) {
		log.Printf("[engine] depth=%d score=%d complete=%v nodes=%d elapsed=%s",
			depth, score, complete, nodes, timer.Elapsed())
	}

	action, err := driver.Run()
	if err != nil {
		return amazons.Action{}, err
	}

	e.board.Apply(action)
	log.Printf("[engine] chose %s (nodes=%d elapsed=%s)", action, driver.Nodes(), timer.Elapsed())
	return action, nil
}

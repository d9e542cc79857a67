// Package eval computes the static evaluation spec.md §4.2 defines: a
// signed linear combination of four heuristic scalars derived from the
// board. It has no search logic of its own and is cheap relative to a full
// action enumeration, so the search driver calls it at every depth-0 leaf.
package eval

import "github.com/amazonsengine/amazons/internal/amazons"

// Weights scales the four evaluator components into one linear
// combination. The defaults below must be preserved; callers may expose
// overrides but should not silently change what "evaluate" means by
// default.
type Weights struct {
	Mobility          int
	Territory         int
	Reachability      int
	RelativeTerritory int
}

// DefaultWeights are the weights spec.md §4.2 fixes as the engine's value
// function.
var DefaultWeights = Weights{
	Mobility:          2,
	Territory:         8,
	Reachability:      8,
	RelativeTerritory: 2,
}

// Evaluate returns a scalar score for b from self's perspective: positive
// favors self, negative favors self.Other(). toMove is whichever player
// actually has the move at this node -- it governs the territory
// tie-break's asymmetry (spec.md §9's open question: the tie-break, and
// its sign, follow whoever is to move, not always the evaluating player).
//
// The caller is responsible for handling terminal positions before calling
// Evaluate: spec.md §4.2 is explicit that the evaluator is never invoked
// once Board.Status reports the game over.
func Evaluate(b *amazons.Board, self amazons.Player, toMove amazons.Player, w Weights) int {
	opp := self.Other()

	mobility := queenMobility(b, self) - queenMobility(b, opp)

	selfDist := distanceGrid(b, self)
	oppDist := distanceGrid(b, opp)

	territoryQuarters := 0
	reachability := 0
	relativeTerritory := 0

	n := b.N
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			p := amazons.Pos(r, c)
			if b.At(p) != amazons.Empty {
				continue
			}
			i := r*n + c
			ds, do := selfDist[i], oppDist[i]
			selfReach := ds != unreached
			oppReach := do != unreached

			switch {
			case selfReach && (!oppReach || ds < do):
				territoryQuarters += 4
			case oppReach && (!selfReach || do < ds):
				territoryQuarters -= 4
			case selfReach && oppReach && ds == do:
				// Tie: a quarter point goes to whoever is actually to
				// move, regardless of whose perspective we're scoring.
				if toMove == self {
					territoryQuarters++
				} else {
					territoryQuarters--
				}
			}

			if selfReach {
				reachability++
			}
			if oppReach {
				reachability--
			}

			switch {
			case selfReach && !oppReach:
				relativeTerritory += 4
			case oppReach && !selfReach:
				relativeTerritory -= 4
			case selfReach && oppReach:
				relativeTerritory += do - ds
			}
		}
	}

	// territoryQuarters accumulates in quarter-point units so the tie-break
	// stays exact in integer arithmetic; weight before dividing back down,
	// so a non-multiple-of-4 quarter sum doesn't lose precision to
	// truncation ahead of the weighting.
	return w.Mobility*mobility +
		w.Territory*territoryQuarters/4 +
		w.Reachability*reachability +
		w.RelativeTerritory*relativeTerritory
}

// queenMobility sums the queen-move destination count over every queen of
// player -- plain queen moves, not full actions; arrow shots are not
// considered (spec.md §4.2).
func queenMobility(b *amazons.Board, player amazons.Player) int {
	total := 0
	for _, q := range b.Queens(player) {
		rays := b.ReachableFrom(q, nil)
		for _, ray := range rays {
			total += len(ray)
		}
	}
	return total
}

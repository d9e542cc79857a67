package amazons

import "iter"

// Status is the outcome of a position for the side to move: over iff the
// side to move has no legal action, in which case the opponent wins
// (spec.md §3's Endgame status, §4.1's status()).
type Status struct {
	Over   bool
	Winner Player
}

// ReachableFrom returns, for each of the 8 directions, the ordered list of
// positions reachable from origin by a queen move: empty cells (or the
// optional ignore position, used for arrow-shot enumeration where the
// queen's just-vacated source counts as empty), stopping at the first
// non-empty cell or the board edge.
//
// The no-ignore case is memoised keyed on origin and invalidated whenever
// the board is mutated (spec.md §4.1).
func (b *Board) ReachableFrom(origin Position, ignore *Position) [8][]Position {
	if ignore == nil {
		return b.reachableFromCached(origin)
	}
	return b.reachableFromUncached(origin, ignore)
}

func (b *Board) reachableFromCached(origin Position) [8][]Position {
	if entry, ok := b.reachCache[origin]; ok && entry.generation == b.generation {
		return entry.rays
	}
	rays := b.reachableFromUncached(origin, nil)
	b.reachCache[origin] = reachCacheEntry{generation: b.generation, rays: rays}
	return rays
}

func (b *Board) reachableFromUncached(origin Position, ignore *Position) [8][]Position {
	var rays [8][]Position
	for i, d := range Directions {
		pos := origin
		for {
			pos = pos.Add(d)
			if !b.InBounds(pos) {
				break
			}
			idx := b.index(pos)
			if !b.emptyCells[idx] && (ignore == nil || pos != *ignore) {
				break
			}
			rays[i] = append(rays[i], pos)
		}
	}
	return rays
}

// ReachableIgnoringQueens returns, for each of the 8 directions, every
// position reachable from origin sliding through empty cells AND queen
// cells, stopping only at an arrow or the board edge. This is the edge
// relation the territory/reachability evaluator's BFS relaxes along
// (spec.md §4.2: "treating arrows as blockers and ignoring queens that are
// not moving") -- it deliberately differs from ReachableFrom, which a real
// queen move must respect.
func (b *Board) ReachableIgnoringQueens(origin Position) [8][]Position {
	var rays [8][]Position
	for i, d := range Directions {
		pos := origin
		for {
			pos = pos.Add(d)
			if !b.InBounds(pos) {
				break
			}
			if b.grid[b.index(pos)] == Arrow {
				break
			}
			rays[i] = append(rays[i], pos)
		}
	}
	return rays
}

// AnyMove reports whether origin has at least one queen-move destination,
// short-circuiting as soon as one is found without building the full ray
// lists (spec.md §4.1's "short-circuit variant"). An adjacent empty cell is
// sufficient: the queen could move there and shoot back to its own
// just-vacated origin, so a true result always corresponds to at least one
// full legal action.
func (b *Board) AnyMove(origin Position) bool {
	for _, d := range Directions {
		pos := origin.Add(d)
		if b.InBounds(pos) && b.emptyCells[b.index(pos)] {
			return true
		}
	}
	return false
}

// ActionsFor lazily enumerates every legal action for player: for each
// queen, for each queen-move destination, for each arrow target reachable
// from that destination (treating the queen's origin as empty). Iteration
// stops as soon as the consumer stops ranging, so a caller that only needs
// to know "does any action exist" pays for at most one action.
func (b *Board) ActionsFor(player Player) iter.Seq[Action] {
	return func(yield func(Action) bool) {
		for _, queen := range b.queens[player] {
			destRays := b.ReachableFrom(queen, nil)
			for _, destRay := range destRays {
				for _, dest := range destRay {
					arrowRays := b.ReachableFrom(dest, &queen)
					for _, arrowRay := range arrowRays {
						for _, arrow := range arrowRay {
							a := Action{Source: queen, Destination: dest, Arrow: arrow, Player: player}
							if !yield(a) {
								return
							}
						}
					}
				}
			}
		}
	}
}

// HasMoves reports whether player has at least one legal action, memoised
// per board generation. It checks AnyMove per queen rather than draining
// ActionsFor: a queen with no adjacent empty cell in any direction has no
// reachable destination in that direction at all (the ray would have
// stopped at the first step), so the single-step check alone decides it.
func (b *Board) HasMoves(player Player) bool {
	entry := b.hasMoves[player]
	if entry.known && entry.generation == b.generation {
		return entry.value
	}
	found := false
	for _, q := range b.queens[player] {
		if b.AnyMove(q) {
			found = true
			break
		}
	}
	b.hasMoves[player] = hasMovesEntry{generation: b.generation, known: true, value: found}
	return found
}

// Status reports the endgame status from the point of view of the player
// to move: if they have no legal action, the game is over and the other
// player has won.
func (b *Board) Status(toMove Player) Status {
	if !b.HasMoves(toMove) {
		return Status{Over: true, Winner: toMove.Other()}
	}
	return Status{Over: false}
}

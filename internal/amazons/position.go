// Package amazons implements the board representation and move generator
// for the Game of the Amazons.
package amazons

import "fmt"

// Position is a single cell coordinate on the board.
type Position struct {
	Row, Col int
}

// Pos constructs a Position from a row and column.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position reached by stepping once in the given direction.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// String renders a position using the column-letter/1-based-row syntax
// from the board-file format (e.g. "d10").
func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// Direction is one of the 8 compass steps a queen (and an arrow) may travel.
type Direction struct {
	DRow, DCol int
}

// Directions lists the 8 queen-move directions in a fixed order. Callers
// that need determinism (move ordering, territory labeling) rely on this
// order being stable.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1} /*      */, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

package eval

import "github.com/amazonsengine/amazons/internal/amazons"

// unreached marks a cell the BFS never relaxed to, standing in for the
// spec's "infinite" distance.
const unreached = -1

// distanceGrid returns, for every cell on the board, the minimum number of
// queen moves player needs to reach it, seeded from player's queen
// positions and relaxed along Board.ReachableIgnoringQueens edges (arrows
// block, queens do not -- spec.md §4.2). The grid is flat, row-major,
// sized b.N*b.N; unreached cells hold -1.
func distanceGrid(b *amazons.Board, player amazons.Player) []int {
	n := b.N
	dist := make([]int, n*n)
	for i := range dist {
		dist[i] = unreached
	}

	queens := b.Queens(player)
	queue := make([]amazons.Position, 0, len(queens))
	for _, q := range queens {
		dist[cellIndex(b, q)] = 0
		queue = append(queue, q)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cellIndex(b, cur)]

		rays := b.ReachableIgnoringQueens(cur)
		for _, ray := range rays {
			for _, p := range ray {
				i := cellIndex(b, p)
				if dist[i] == unreached {
					dist[i] = d + 1
					queue = append(queue, p)
				}
			}
		}
	}

	return dist
}

func cellIndex(b *amazons.Board, p amazons.Position) int {
	return p.Row*b.N + p.Col
}

package game

import "math/rand"

// freeCell picks a uniformly random interior cell not present in occupied.
// The one-cell border is reserved for walls and never sampled. Retries
// until an unoccupied cell is found: board capacity far exceeds snake
// length, so a fully occupied board is treated as an unreachable
// precondition rather than defended against.
func freeCell(rng *rand.Rand, grid Grid, occupied map[Position]bool) Position {
	for {
		p := Position{
			X: (1 + rng.Intn(grid.Cols()-2)) * grid.Cell,
			Y: (1 + rng.Intn(grid.Rows()-2)) * grid.Cell,
		}
		if !occupied[p] {
			return p
		}
	}
}

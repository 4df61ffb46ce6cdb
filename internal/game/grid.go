package game

// Grid defines the playfield: overall bounds in logical pixels and the
// fixed cell size everything snaps to. Pure value logic, no failure modes.
type Grid struct {
	Width  int // Playfield width in logical pixels
	Height int // Playfield height in logical pixels
	Cell   int // Cell edge length in logical pixels
}

// DefaultGrid is the standard 800x600 playfield with 20px cells (40x30 cells).
var DefaultGrid = Grid{Width: 800, Height: 600, Cell: 20}

// Cols returns the number of cell columns.
func (g Grid) Cols() int {
	return g.Width / g.Cell
}

// Rows returns the number of cell rows.
func (g Grid) Rows() int {
	return g.Height / g.Cell
}

// Contains reports whether the position lies inside the playfield bounds.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the cell-aligned center of the playfield.
func (g Grid) Center() Position {
	return Position{
		X: g.Width / 2 / g.Cell * g.Cell,
		Y: g.Height / 2 / g.Cell * g.Cell,
	}
}

// BorderCells returns the one-cell-thick wall ring around the playfield.
// Built once per session; immutable thereafter.
func (g Grid) BorderCells() []Position {
	var cells []Position
	for x := 0; x < g.Width; x += g.Cell {
		cells = append(cells, Position{X: x, Y: 0})
		cells = append(cells, Position{X: x, Y: g.Height - g.Cell})
	}
	for y := g.Cell; y < g.Height-g.Cell; y += g.Cell {
		cells = append(cells, Position{X: 0, Y: y})
		cells = append(cells, Position{X: g.Width - g.Cell, Y: y})
	}
	return cells
}

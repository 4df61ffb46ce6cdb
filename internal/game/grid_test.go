package game

import (
	"math/rand"
	"testing"
)

func TestGridDimensions(t *testing.T) {
	g := DefaultGrid
	if g.Cols() != 40 || g.Rows() != 30 {
		t.Errorf("cols/rows = %d/%d, want 40/30", g.Cols(), g.Rows())
	}
}

func TestGridContains(t *testing.T) {
	g := DefaultGrid
	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{X: 0, Y: 0}, true},
		{Position{X: 780, Y: 580}, true},
		{Position{X: 800, Y: 300}, false},
		{Position{X: -20, Y: 0}, false},
		{Position{X: 400, Y: 600}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestBorderCellsFormClosedRing(t *testing.T) {
	g := DefaultGrid
	cells := g.BorderCells()

	// 2 full horizontal edges plus 2 vertical edges without corners.
	want := 2*g.Cols() + 2*(g.Rows()-2)
	if len(cells) != want {
		t.Fatalf("border cell count = %d, want %d", len(cells), want)
	}

	seen := make(map[Position]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			t.Errorf("duplicate border cell %v", c)
		}
		seen[c] = true
		onEdge := c.X == 0 || c.X == g.Width-g.Cell || c.Y == 0 || c.Y == g.Height-g.Cell
		if !onEdge {
			t.Errorf("border cell %v not on an edge", c)
		}
	}
}

func TestCenterIsCellAligned(t *testing.T) {
	c := DefaultGrid.Center()
	if c.X%DefaultGrid.Cell != 0 || c.Y%DefaultGrid.Cell != 0 {
		t.Errorf("center %v not cell-aligned", c)
	}
}

func TestFreeCellAvoidsOccupiedAndBorder(t *testing.T) {
	g := DefaultGrid
	rng := rand.New(rand.NewSource(42))

	occupied := map[Position]bool{
		{X: 100, Y: 100}: true,
		{X: 120, Y: 100}: true,
	}
	for i := 0; i < 1000; i++ {
		p := freeCell(rng, g, occupied)
		if occupied[p] {
			t.Fatalf("freeCell returned occupied cell %v", p)
		}
		if p.X < g.Cell || p.X > g.Width-2*g.Cell || p.Y < g.Cell || p.Y > g.Height-2*g.Cell {
			t.Fatalf("freeCell returned non-interior cell %v", p)
		}
		if p.X%g.Cell != 0 || p.Y%g.Cell != 0 {
			t.Fatalf("freeCell returned unaligned cell %v", p)
		}
	}
}

package draw

// Color is a ready-to-emit ANSI SGR sequence.
type Color string

// Reset clears all SGR attributes.
const Reset Color = "\033[0m"

// Foreground colors used for board items and HUD text.
const (
	White   Color = "\033[38;5;255m"
	Gray    Color = "\033[38;5;245m"
	Green   Color = "\033[38;5;46m"
	Red     Color = "\033[38;5;196m"
	Cyan    Color = "\033[38;5;51m"
	Magenta Color = "\033[38;5;201m"
	Yellow  Color = "\033[38;5;226m"
	Orange  Color = "\033[38;5;208m"
	Purple  Color = "\033[38;5;93m"
)

// Background colors for the playfield.
const (
	BgDarkBlue Color = "\033[48;5;17m"
	BgBlack    Color = "\033[48;5;16m"
)

// Scheme is a named set of board colors. Wall and power-up colors are
// fixed across schemes.
type Scheme struct {
	Name       string
	Background Color
	Snake      Color
	Food       Color
}

// Schemes lists the selectable color schemes in options order.
var Schemes = []Scheme{
	{Name: "Default", Background: BgDarkBlue, Snake: Green, Food: Red},
	{Name: "Monochrome", Background: BgBlack, Snake: White, Food: Gray},
	{Name: "Neon", Background: BgBlack, Snake: Cyan, Food: Magenta},
}

// Colored wraps s in the given color and a trailing reset.
func Colored(c Color, s string) string {
	return string(c) + s + string(Reset)
}

// CellWidth is how many terminal columns one board cell occupies. Two
// columns per cell keeps cells roughly square in a typical font.
const CellWidth = 2

// cell is one board cell ready for output.
type cell struct {
	text  string // Exactly CellWidth runes
	color Color
}

// Board is a cell-addressed frame buffer for the playfield. The shell
// clears it, paints the snapshot into it and renders it once per frame.
type Board struct {
	cols, rows int
	cells      []cell
}

// NewBoard creates a board with the given cell dimensions.
func NewBoard(cols, rows int) *Board {
	return &Board{
		cols:  cols,
		rows:  rows,
		cells: make([]cell, cols*rows),
	}
}

// Cols returns the board width in cells.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height in cells.
func (b *Board) Rows() int { return b.rows }

// Clear fills the board with the scheme's background.
func (b *Board) Clear(bg Color) {
	for i := range b.cells {
		b.cells[i] = cell{text: "  ", color: bg}
	}
}

// Set paints one cell. text must render as CellWidth columns.
func (b *Board) Set(col, row int, text string, c Color) {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return
	}
	b.cells[row*b.cols+col] = cell{text: text, color: c}
}

// Render emits the whole board row by row, switching colors only when a
// cell differs from its left neighbor. Full redraws each frame keep the
// output correct after any screen disturbance.
func (b *Board) Render(cw *ChunkWriter) {
	for row := 0; row < b.rows; row++ {
		cw.MoveCursor(1, row+1)
		var current Color
		for col := 0; col < b.cols; col++ {
			c := b.cells[row*b.cols+col]
			if c.color != current {
				cw.WriteString(string(Reset))
				cw.WriteString(string(c.color))
				current = c.color
			}
			cw.WriteString(c.text)
		}
		cw.WriteString(string(Reset))
	}
}

// FitOffsets centers a board of the given cell size in the terminal.
// ok is false when the terminal is too small to show the whole board
// plus one spare row for the HUD.
func FitOffsets(termW, termH, cols, rows int) (offCol, offRow int, ok bool) {
	needW := cols * CellWidth
	needH := rows + 1
	if termW < needW || termH < needH {
		return 0, 0, false
	}
	return (termW - needW) / 2, (termH - needH) / 2, true
}

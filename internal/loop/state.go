package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/mkalb/slither/internal/draw"
	"github.com/mkalb/slither/internal/game"
	"github.com/mkalb/slither/internal/input"
	"github.com/mkalb/slither/internal/score"
)

// Screen identifies which UI screen the shell is showing.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenInstructions
	ScreenOptions
	ScreenHighScores
	ScreenPlaying
	ScreenGameOver
	ScreenNameEntry
)

// maxNameLength caps the name entered for a high score.
const maxNameLength = 12

// Shell drives the render/input/tick loop for one player: it owns the
// terminal, the session controller and the current screen.
type Shell struct {
	session *game.Session
	store   *score.Store

	reader      *bufio.Reader
	writer      io.Writer
	stream      *input.Stream
	chunkWriter *draw.ChunkWriter
	board       *draw.Board
	termSize    draw.TermSizeFunc

	screen    Screen
	snap      game.Snapshot // Last snapshot from the session
	running   bool
	menuIdx   int
	optionIdx int
	schemeIdx int
	name      []rune

	offCol, offRow int
	fits           bool
}

// Options configures a Shell.
type Options struct {
	// TermSize overrides how the terminal size is determined. SSH
	// sessions answer from window-change events; local play uses stdout.
	TermSize draw.TermSizeFunc
	// Rand seeds the session's randomness. Defaults to a time-seeded source.
	Rand *rand.Rand
}

// NewShell creates a shell for a reader/writer pair (a local tty or an
// SSH session).
func NewShell(r *bufio.Reader, w io.Writer, store *score.Store, opts Options) *Shell {
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.StdoutSize
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid := game.DefaultGrid
	return &Shell{
		session:     game.NewSession(grid, store, rng),
		store:       store,
		reader:      r,
		writer:      w,
		chunkWriter: draw.NewChunkWriter(w),
		board:       draw.NewBoard(grid.Cols(), grid.Rows()),
		termSize:    termSize,
		screen:      ScreenMenu,
		running:     true,
	}
}

// scheme returns the active color scheme.
func (s *Shell) scheme() draw.Scheme {
	return draw.Schemes[s.schemeIdx]
}

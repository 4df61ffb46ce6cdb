// Package loop provides the host shell: the frame loop, the UI screens
// and the glue between terminal input and the game session.
package loop

import (
	"time"

	"github.com/mkalb/slither/internal/draw"
	"github.com/mkalb/slither/internal/input"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Run starts the shell's Input -> Update -> Draw cycle and blocks until
// the player quits or the reader goes away.
func (s *Shell) Run() error {
	s.stream = input.StartStream(s.reader)

	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	for s.running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in, open := input.ReadInput(s.stream)
		if !open {
			break
		}

		// ===== UPDATE PHASE =====
		s.updateScreenFit()
		now := time.Now()
		switch s.screen {
		case ScreenMenu:
			s.updateMenu(in, now)
		case ScreenInstructions:
			s.updateInstructions(in)
		case ScreenOptions:
			s.updateOptions(in)
		case ScreenHighScores:
			s.updateHighScores(in)
		case ScreenPlaying:
			s.updatePlaying(in, now)
		case ScreenGameOver:
			s.updateGameOver(in, now)
		case ScreenNameEntry:
			s.updateNameEntry(in)
		}

		// ===== DRAW PHASE =====
		if err := s.drawFrame(now); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// updateScreenFit recomputes board centering for the current terminal
// size. On any change the terminal is cleared to drop stale cells.
func (s *Shell) updateScreenFit() {
	termW, termH, err := s.termSize()
	if err != nil {
		return
	}
	offCol, offRow, ok := draw.FitOffsets(termW, termH, s.board.Cols(), s.board.Rows())
	if offCol != s.offCol || offRow != s.offRow || ok != s.fits {
		draw.ClearScreen(s.writer)
		s.offCol, s.offRow, s.fits = offCol, offRow, ok
		s.chunkWriter.SetOffset(offCol, offRow)
	}
}

// drawFrame paints the board background, the current screen and flushes.
func (s *Shell) drawFrame(now time.Time) error {
	if !s.fits {
		draw.ClearScreen(s.writer)
		draw.MoveCursor(s.writer, 1, 1)
		_, err := s.writer.Write([]byte("Terminal too small - need at least 80x31"))
		return err
	}

	s.board.Clear(s.scheme().Background)

	// The playfield stays visible behind the game-over overlay.
	if s.screen == ScreenPlaying || s.screen == ScreenGameOver {
		s.paintSnapshot()
	}
	s.board.Render(s.chunkWriter)

	switch s.screen {
	case ScreenMenu:
		s.drawMenu()
	case ScreenInstructions:
		s.drawInstructions()
	case ScreenOptions:
		s.drawOptions()
	case ScreenHighScores:
		s.drawHighScores()
	case ScreenPlaying:
		s.drawPlaying(now)
	case ScreenGameOver:
		s.drawGameOver()
	case ScreenNameEntry:
		s.drawNameEntry()
	}

	return s.chunkWriter.Flush()
}

// writeCentered writes s horizontally centered on a board row.
func (s *Shell) writeCentered(row int, text string, c draw.Color) {
	width := s.board.Cols() * draw.CellWidth
	col := (width-len(text))/2 + 1
	if col < 1 {
		col = 1
	}
	s.chunkWriter.WriteAt(col, row, draw.Colored(c, text))
}

package loop

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkalb/slither/internal/draw"
	"github.com/mkalb/slither/internal/game"
	"github.com/mkalb/slither/internal/input"
)

// updatePlaying feeds direction input to the session and advances the
// tick engine once per frame. The engine's own interval gate decides
// whether the snake actually moves this frame.
func (s *Shell) updatePlaying(in input.Input, now time.Time) {
	cell := s.session.Grid().Cell
	switch {
	case in.Up:
		s.session.ChangeDirection(game.Up(cell))
	case in.Down:
		s.session.ChangeDirection(game.Down(cell))
	case in.Left:
		s.session.ChangeDirection(game.Left(cell))
	case in.Right:
		s.session.ChangeDirection(game.Right(cell))
	}

	if in.Escape || in.Has('m') {
		// Abandon at a tick boundary and fall back to the menu.
		s.session.Abandon()
		s.screen = ScreenMenu
		return
	}

	snap, outcome := s.session.Advance(now)
	s.snap = snap
	if outcome == game.OutcomeGameOver {
		s.screen = ScreenGameOver
	}
}

// paintSnapshot draws the walls, snake, food and field power-up from the
// last snapshot into the board buffer.
func (s *Shell) paintSnapshot() {
	cell := s.session.Grid().Cell
	scheme := s.scheme()

	for _, w := range s.snap.Walls {
		s.board.Set(w.X/cell, w.Y/cell, "██", draw.White)
	}
	for _, seg := range s.snap.Snake {
		s.board.Set(seg.X/cell, seg.Y/cell, "██", scheme.Snake)
	}
	s.board.Set(s.snap.Food.X/cell, s.snap.Food.Y/cell, "██", scheme.Food)

	if p := s.snap.PowerUp; p != nil {
		s.board.Set(p.Pos.X/cell, p.Pos.Y/cell, powerUpGlyph(p.Kind), powerUpColor(p.Kind))
	}
}

// drawPlaying draws the HUD line under the board: score, countdown and
// active effects.
func (s *Shell) drawPlaying(now time.Time) {
	hudRow := s.board.Rows() + 1

	s.chunkWriter.WriteAt(1, hudRow, draw.Colored(draw.White, fmt.Sprintf("Score: %d", s.snap.Score)))

	if s.snap.Mode == game.ModeTimeAttack {
		timeText := fmt.Sprintf("Time: %d", int(s.snap.Remaining.Seconds()))
		col := s.board.Cols()*draw.CellWidth - len(timeText) + 1
		s.chunkWriter.WriteAt(col, hudRow, draw.Colored(draw.White, timeText))
	}

	if len(s.snap.Effects) > 0 {
		var parts []string
		for _, k := range s.snap.Effects {
			parts = append(parts, draw.Colored(powerUpColor(k), k.String()))
		}
		s.writeCenteredRaw(hudRow, strings.Join(parts, " "), effectsTextLen(s.snap.Effects))
	}
}

// powerUpGlyph maps a power-up shape to its two-column marker.
func powerUpGlyph(k game.Kind) string {
	switch game.Lookup(k).Shape {
	case game.ShapeTriangle:
		return "▲ "
	case game.ShapeCircle:
		return "● "
	default:
		return "■ "
	}
}

// powerUpColor maps a power-up kind to its fixed color.
func powerUpColor(k game.Kind) draw.Color {
	switch k {
	case game.KindSpeed:
		return draw.Yellow
	case game.KindMultiplier:
		return draw.Orange
	default:
		return draw.Purple
	}
}

// effectsTextLen is the visible length of the joined effect names.
func effectsTextLen(kinds []game.Kind) int {
	n := 0
	for i, k := range kinds {
		if i > 0 {
			n++
		}
		n += len(k.String())
	}
	return n
}

// writeCenteredRaw centers pre-colored text whose visible length differs
// from its byte length.
func (s *Shell) writeCenteredRaw(row int, text string, visibleLen int) {
	width := s.board.Cols() * draw.CellWidth
	col := (width-visibleLen)/2 + 1
	if col < 1 {
		col = 1
	}
	s.chunkWriter.WriteAt(col, row, text)
}

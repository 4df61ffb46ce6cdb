package loop

import (
	"fmt"
	"time"

	"github.com/mkalb/slither/internal/draw"
	"github.com/mkalb/slither/internal/game"
	"github.com/mkalb/slither/internal/input"
)

// menuItems are the main menu entries in display order.
var menuItems = []string{"New Game", "High Scores", "Instructions", "Options", "Quit"}

// updateMenu handles main menu navigation and selection.
func (s *Shell) updateMenu(in input.Input, now time.Time) {
	if in.Up && s.menuIdx > 0 {
		s.menuIdx--
	}
	if in.Down && s.menuIdx < len(menuItems)-1 {
		s.menuIdx++
	}
	if in.Has('q') {
		s.running = false
		return
	}
	if !in.Enter && !in.Space {
		return
	}

	switch s.menuIdx {
	case 0:
		s.session.Start(now)
		s.snap, _ = s.session.Advance(now)
		s.screen = ScreenPlaying
	case 1:
		s.screen = ScreenHighScores
	case 2:
		s.screen = ScreenInstructions
	case 3:
		s.optionIdx = 0
		s.screen = ScreenOptions
	case 4:
		s.running = false
	}
}

// drawMenu draws the title and the menu entries.
func (s *Shell) drawMenu() {
	rows := s.board.Rows()
	s.writeCentered(rows/2-6, "S L I T H E R", draw.Green)

	for i, item := range menuItems {
		row := rows/2 - 2 + i*2
		if i == s.menuIdx {
			s.writeCentered(row, "> "+item+" <", draw.White)
		} else {
			s.writeCentered(row, item, draw.Gray)
		}
	}
}

// updateInstructions waits for any dismissing key.
func (s *Shell) updateInstructions(in input.Input) {
	if in.Enter || in.Space || in.Escape || len(in.Runes) > 0 {
		s.screen = ScreenMenu
	}
}

// drawInstructions draws the static help text.
func (s *Shell) drawInstructions() {
	rows := s.board.Rows()
	lines := []string{
		"Move with WASD or the arrow keys.",
		"Eat food to grow and score. Avoid the walls and yourself.",
		"",
		"Power-ups (when enabled):",
		"  ▲ Speed - move twice as fast for 5s",
		"  ■ Multiplier - double points for 10s",
		"  ● Invincibility - pass through anything for 7s",
		"",
		"Time Attack ends when the countdown hits zero.",
		"Press M or Escape during a game to return to the menu.",
	}
	s.writeCentered(rows/2-8, "INSTRUCTIONS", draw.White)
	for i, line := range lines {
		s.writeCentered(rows/2-5+i, line, draw.Gray)
	}
	s.writeCentered(rows/2+7, "Press any key to go back", draw.White)
}

// optionItems are the options screen entries in display order.
var optionItems = []string{"Difficulty", "Mode", "Power-ups", "Color Scheme", "Back"}

// updateOptions handles option navigation and cycling. Settings only
// apply to the next session; the controller enforces that itself.
func (s *Shell) updateOptions(in input.Input) {
	if in.Up && s.optionIdx > 0 {
		s.optionIdx--
	}
	if in.Down && s.optionIdx < len(optionItems)-1 {
		s.optionIdx++
	}
	if in.Escape {
		s.screen = ScreenMenu
		return
	}

	cycle := 0
	if in.Right || in.Enter || in.Space {
		cycle = 1
	} else if in.Left {
		cycle = -1
	}
	if cycle == 0 {
		return
	}

	settings := s.session.Settings()
	switch s.optionIdx {
	case 0:
		s.session.SetDifficulty((settings.Difficulty + game.Difficulty(cycle) + 3) % 3)
	case 1:
		if settings.Mode == game.ModeClassic {
			s.session.SetMode(game.ModeTimeAttack)
		} else {
			s.session.SetMode(game.ModeClassic)
		}
	case 2:
		s.session.SetPowerUpsEnabled(!settings.PowerUps)
	case 3:
		s.schemeIdx = (s.schemeIdx + cycle + len(draw.Schemes)) % len(draw.Schemes)
	case 4:
		if in.Enter || in.Space {
			s.screen = ScreenMenu
		}
	}
}

// drawOptions draws the options with their current values.
func (s *Shell) drawOptions() {
	settings := s.session.Settings()
	powerups := "Off"
	if settings.PowerUps {
		powerups = "On"
	}
	values := []string{
		settings.Difficulty.String(),
		settings.Mode.String(),
		powerups,
		s.scheme().Name,
		"",
	}

	rows := s.board.Rows()
	s.writeCentered(rows/2-6, "OPTIONS", draw.White)
	for i, item := range optionItems {
		row := rows/2 - 3 + i*2
		label := item
		if values[i] != "" {
			label = fmt.Sprintf("%s: %s", item, values[i])
		}
		if i == s.optionIdx {
			s.writeCentered(row, "> "+label+" <", draw.White)
		} else {
			s.writeCentered(row, label, draw.Gray)
		}
	}
	s.writeCentered(rows/2+8, "Enter/arrows change - Escape goes back", draw.Gray)
}

// updateHighScores waits for any dismissing key.
func (s *Shell) updateHighScores(in input.Input) {
	if in.Enter || in.Space || in.Escape || len(in.Runes) > 0 {
		s.screen = ScreenMenu
	}
}

// drawHighScores lists the persisted top scores.
func (s *Shell) drawHighScores() {
	rows := s.board.Rows()
	s.writeCentered(rows/2-6, "HIGH SCORES", draw.White)

	entries := s.store.Load()
	if len(entries) == 0 {
		s.writeCentered(rows/2-2, "No high scores yet", draw.Gray)
	}
	for i, e := range entries {
		line := fmt.Sprintf("%d. %-*s %5d", i+1, maxNameLength, e.Name, e.Score)
		s.writeCentered(rows/2-2+i*2, line, draw.Gray)
	}
	s.writeCentered(rows/2+7, "Press any key to go back", draw.White)
}

// updateGameOver handles the game-over prompt: play again with a fresh
// reset, or leave (into name entry when the score qualifies).
func (s *Shell) updateGameOver(in input.Input, now time.Time) {
	switch {
	case in.Enter || in.Space:
		s.session.Restart(now)
		s.snap, _ = s.session.Advance(now)
		s.screen = ScreenPlaying
	case in.Escape || in.Has('n'):
		if s.session.ConcludeOver() == game.PhaseAwaitingName {
			s.name = s.name[:0]
			s.screen = ScreenNameEntry
		} else {
			s.screen = ScreenMenu
		}
	}
}

// drawGameOver overlays the result on the final board.
func (s *Shell) drawGameOver() {
	rows := s.board.Rows()
	s.writeCentered(rows/2-3, "GAME OVER", draw.Red)
	s.writeCentered(rows/2-1, fmt.Sprintf("Final Score: %d", s.session.FinalScore()), draw.White)
	s.writeCentered(rows/2+2, "Play again? Enter = yes, N = no", draw.White)
}

// updateNameEntry edits the high-score name. Enter submits, Escape skips.
func (s *Shell) updateNameEntry(in input.Input) {
	switch {
	case in.Enter:
		name := string(s.name)
		if name == "" {
			name = "Anonymous"
		}
		// Ignore the write error: a broken leaderboard never blocks
		// leaving the session.
		_ = s.session.SubmitName(name)
		s.screen = ScreenMenu
	case in.Escape:
		s.session.SkipName()
		s.screen = ScreenMenu
	case in.Backspace && len(s.name) > 0:
		s.name = s.name[:len(s.name)-1]
	default:
		for _, r := range in.Runes {
			if len(s.name) < maxNameLength {
				s.name = append(s.name, r)
			}
		}
	}
}

// drawNameEntry draws the name prompt with a cursor marker.
func (s *Shell) drawNameEntry() {
	rows := s.board.Rows()
	s.writeCentered(rows/2-3, "NEW HIGH SCORE!", draw.Yellow)
	s.writeCentered(rows/2-1, fmt.Sprintf("Score: %d", s.session.FinalScore()), draw.White)
	s.writeCentered(rows/2+1, "Enter your name: "+string(s.name)+"_", draw.White)
	s.writeCentered(rows/2+4, "Enter submits - Escape skips", draw.Gray)
}

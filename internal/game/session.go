package game

import (
	"math/rand"
	"time"
)

// Phase is the session controller's state.
type Phase int

const (
	PhaseIdle         Phase = iota // No game in progress
	PhaseRunning                   // Tick engine is advancing a game
	PhaseOver                      // Game ended, showing the result
	PhaseAwaitingName              // Score qualified, collecting a name
)

// Scoreboard is the leaderboard collaborator. It is consulted only at
// session-end and name-submission boundaries, never mid-tick.
type Scoreboard interface {
	// Qualifies reports whether the score would enter the top list.
	Qualifies(score int) bool
	// Submit inserts the entry, re-sorts, truncates and persists.
	Submit(name string, score int) error
}

// Settings are the per-session options. They are read at Start and
// changes only take effect for the next session.
type Settings struct {
	Mode       Mode
	Difficulty Difficulty
	PowerUps   bool
	Duration   time.Duration // Time Attack countdown
}

// DefaultSettings mirrors the defaults of the original game: Classic,
// Medium, power-ups on, 60s Time Attack countdown.
func DefaultSettings() Settings {
	return Settings{
		Mode:       ModeClassic,
		Difficulty: DifficultyMedium,
		PowerUps:   true,
		Duration:   TimeAttackDuration,
	}
}

// Session orchestrates mode selection, start/reset/game-over transitions
// and score submission around a running game state.
type Session struct {
	grid     Grid
	settings Settings
	scores   Scoreboard
	rng      *rand.Rand

	phase      Phase
	state      *State
	finalScore int
}

// NewSession creates an idle session on the given grid.
func NewSession(grid Grid, scores Scoreboard, rng *rand.Rand) *Session {
	return &Session{
		grid:     grid,
		settings: DefaultSettings(),
		scores:   scores,
		rng:      rng,
		phase:    PhaseIdle,
	}
}

// Phase returns the current controller state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Settings returns the current per-session options.
func (s *Session) Settings() Settings {
	return s.settings
}

// SetMode selects the ruleset for the next session. Ignored mid-game.
func (s *Session) SetMode(m Mode) {
	if s.phase != PhaseRunning {
		s.settings.Mode = m
	}
}

// SetDifficulty selects the base move interval for the next session.
// Ignored mid-game.
func (s *Session) SetDifficulty(d Difficulty) {
	if s.phase != PhaseRunning {
		s.settings.Difficulty = d
	}
}

// SetPowerUpsEnabled toggles power-up spawning for the next session.
// Ignored mid-game.
func (s *Session) SetPowerUpsEnabled(enabled bool) {
	if s.phase != PhaseRunning {
		s.settings.PowerUps = enabled
	}
}

// Start begins a new game from Idle or Over, resetting all game state.
func (s *Session) Start(now time.Time) {
	s.state = newState(s.grid, s.settings, s.rng, now)
	s.finalScore = 0
	s.phase = PhaseRunning
}

// Restart re-enters Running from the Over screen via a fresh reset,
// bypassing Idle ("play again").
func (s *Session) Restart(now time.Time) {
	if s.phase != PhaseOver {
		return
	}
	s.Start(now)
}

// Advance runs one tick and returns the render snapshot plus the outcome.
// On a fatal collision or timer expiry the session transitions to Over
// with the score frozen. Calling Advance outside Running is a no-op that
// reports GameOver.
func (s *Session) Advance(now time.Time) (Snapshot, Outcome) {
	if s.phase != PhaseRunning {
		return Snapshot{}, OutcomeGameOver
	}
	outcome := s.state.advance(now)
	if outcome == OutcomeGameOver {
		s.finalScore = s.state.Score()
		s.phase = PhaseOver
	}
	return s.state.Snapshot(now), outcome
}

// ChangeDirection forwards a direction request to the running game.
func (s *Session) ChangeDirection(d Direction) {
	if s.phase == PhaseRunning {
		s.state.ChangeDirection(d)
	}
}

// Abandon ends the session immediately and returns to Idle. Safe at any
// tick boundary; the engine has no in-flight work to cancel.
func (s *Session) Abandon() {
	s.state = nil
	s.phase = PhaseIdle
}

// FinalScore returns the score frozen when the game ended.
func (s *Session) FinalScore() int {
	return s.finalScore
}

// ConcludeOver leaves the Over screen: to AwaitingName when the final
// score enters the top list, otherwise back to Idle.
func (s *Session) ConcludeOver() Phase {
	if s.phase != PhaseOver {
		return s.phase
	}
	if s.scores.Qualifies(s.finalScore) {
		s.phase = PhaseAwaitingName
	} else {
		s.phase = PhaseIdle
	}
	return s.phase
}

// SubmitName records the qualified score under the given name and
// returns to Idle. A leaderboard write failure still ends the session;
// the score is simply lost, never fatal.
func (s *Session) SubmitName(name string) error {
	if s.phase != PhaseAwaitingName {
		return nil
	}
	err := s.scores.Submit(name, s.finalScore)
	s.phase = PhaseIdle
	return err
}

// SkipName abandons name entry without recording the score.
func (s *Session) SkipName() {
	if s.phase == PhaseAwaitingName {
		s.phase = PhaseIdle
	}
}

// Grid returns the playfield geometry.
func (s *Session) Grid() Grid {
	return s.grid
}

// Package game implements the snake simulation core: the grid, the tick
// engine that advances it, and the session state machine around it.
// The package is UI-agnostic and deterministic - every time-dependent
// operation takes the current time as a parameter, and all randomness
// flows through an injected *rand.Rand.
package game

import "time"

// Position is a grid-aligned point in logical pixel coordinates.
// Both components are multiples of the grid cell size.
type Position struct {
	X, Y int
}

// Add returns the position offset by the given direction vector.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is a movement vector scaled by the grid cell size.
// Exactly one component is non-zero.
type Direction struct {
	DX, DY int
}

// Up, Down, Left and Right build the four unit directions for a cell size.
func Up(cell int) Direction    { return Direction{DX: 0, DY: -cell} }
func Down(cell int) Direction  { return Direction{DX: 0, DY: cell} }
func Left(cell int) Direction  { return Direction{DX: -cell, DY: 0} }
func Right(cell int) Direction { return Direction{DX: cell, DY: 0} }

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Mode selects the session ruleset.
type Mode int

const (
	ModeClassic    Mode = iota // No timer, play until collision
	ModeTimeAttack             // Fixed countdown ends the session
)

// String returns the display name of the mode.
func (m Mode) String() string {
	if m == ModeTimeAttack {
		return "Time Attack"
	}
	return "Classic"
}

// Difficulty selects the base interval between snake moves.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// BaseInterval returns the minimum time between moves for the difficulty,
// before any speed modifier.
func (d Difficulty) BaseInterval() time.Duration {
	switch d {
	case DifficultyEasy:
		return 100 * time.Millisecond
	case DifficultyHard:
		return 25 * time.Millisecond
	default:
		return 50 * time.Millisecond
	}
}

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Medium"
	}
}

// Outcome reports what a tick produced: more game, or the end of it.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeGameOver
)

// TimeAttackDuration is the default countdown for Time Attack sessions.
const TimeAttackDuration = 60 * time.Second

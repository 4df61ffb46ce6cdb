package game

import (
	"math/rand"
	"time"
)

// State owns everything the tick engine mutates during a session: the
// snake body, current direction, food, the on-field power-up, active
// effects, score and timing bookkeeping. It is created at session start
// and exclusively owned by the single goroutine driving the tick loop.
type State struct {
	grid Grid
	rng  *rand.Rand

	snake []Position // Head-first; length >= 1 always
	dir   Direction
	food  Position
	field *FieldPowerUp // At most one power-up on the field at a time

	walls    map[Position]bool // Border ring, immutable after setup
	wallList []Position        // Same cells in render order

	// Active effects: kind -> activation time. An effect is present
	// while now - activation < Duration(kind).
	effects map[Kind]time.Time

	score int

	mode            Mode
	powerupsEnabled bool
	baseInterval    time.Duration
	duration        time.Duration // Time Attack countdown

	startTime     time.Time
	lastMoveTime  time.Time
	lastSpawnTime time.Time
}

// newState builds a fresh game state: snake of length one at the center
// heading right, food placed, walls built, all clocks anchored at now.
func newState(grid Grid, settings Settings, rng *rand.Rand, now time.Time) *State {
	s := &State{
		grid:            grid,
		rng:             rng,
		snake:           []Position{grid.Center()},
		dir:             Right(grid.Cell),
		walls:           make(map[Position]bool),
		effects:         make(map[Kind]time.Time),
		mode:            settings.Mode,
		powerupsEnabled: settings.PowerUps,
		baseInterval:    settings.Difficulty.BaseInterval(),
		duration:        settings.Duration,
		startTime:       now,
		lastMoveTime:    now,
		lastSpawnTime:   now,
	}
	s.wallList = grid.BorderCells()
	for _, w := range s.wallList {
		s.walls[w] = true
	}
	s.food = freeCell(rng, grid, s.occupied())
	return s
}

// occupied collects every cell an item must not be placed on: the snake
// body, the wall ring, the current food and the field power-up.
func (s *State) occupied() map[Position]bool {
	occ := make(map[Position]bool, len(s.snake)+len(s.walls)+2)
	for _, p := range s.snake {
		occ[p] = true
	}
	for w := range s.walls {
		occ[w] = true
	}
	occ[s.food] = true
	if s.field != nil {
		occ[s.field.Pos] = true
	}
	return occ
}

// ChangeDirection applies a requested direction immediately. The request
// is silently ignored if it exactly reverses the current direction: that
// would be an instant self-collision, not an error.
func (s *State) ChangeDirection(d Direction) {
	if d == s.dir.Reverse() {
		return
	}
	s.dir = d
}

// effectActive reports whether the kind's effect is running at now.
// The interval is half-open: at exactly the duration the effect is gone.
func (s *State) effectActive(k Kind, now time.Time) bool {
	activated, ok := s.effects[k]
	if !ok {
		return false
	}
	return now.Sub(activated) < Duration(k)
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Remaining returns the countdown left in a Time Attack session, clamped
// at zero. Classic sessions always report zero.
func (s *State) Remaining(now time.Time) time.Duration {
	if s.mode != ModeTimeAttack {
		return 0
	}
	left := s.duration - now.Sub(s.startTime)
	if left < 0 {
		return 0
	}
	return left
}

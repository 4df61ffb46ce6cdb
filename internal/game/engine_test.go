package game

import (
	"math/rand"
	"testing"
	"time"
)

// testBase is an arbitrary fixed wall-clock anchor. All engine tests do
// pure time arithmetic from here; nothing sleeps.
var testBase = time.Unix(1700000000, 0)

// newTestState builds a state on the default grid with a deterministic
// RNG and the given settings.
func newTestState(t *testing.T, settings Settings) *State {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	return newState(DefaultGrid, settings, rng, testBase)
}

func classicSettings() Settings {
	s := DefaultSettings()
	s.PowerUps = false
	return s
}

// afterGate returns a time just past the movement gate for the state's
// base interval.
func afterGate(s *State) time.Time {
	return testBase.Add(s.baseInterval + time.Millisecond)
}

func TestGatedTickMovesOneCell(t *testing.T) {
	s := newTestState(t, classicSettings())
	s.snake = []Position{{X: 100, Y: 100}}
	s.food = Position{X: 500, Y: 500}

	if outcome := s.advance(afterGate(s)); outcome != OutcomeContinue {
		t.Fatalf("advance outcome = %v, want Continue", outcome)
	}
	if got, want := s.snake[0], (Position{X: 120, Y: 100}); got != want {
		t.Errorf("head = %v, want %v", got, want)
	}
	if len(s.snake) != 1 {
		t.Errorf("length = %d, want 1 after ordinary move", len(s.snake))
	}
}

func TestUngatedTickLeavesStateUnchanged(t *testing.T) {
	s := newTestState(t, classicSettings())
	s.snake = []Position{{X: 100, Y: 100}}
	before := s.snake[0]

	// Half the base interval: the gate must stay closed.
	if outcome := s.advance(testBase.Add(s.baseInterval / 2)); outcome != OutcomeContinue {
		t.Fatalf("advance outcome = %v, want Continue", outcome)
	}
	if s.snake[0] != before {
		t.Errorf("head moved on an ungated tick: %v -> %v", before, s.snake[0])
	}
	if s.score != 0 {
		t.Errorf("score changed on an ungated tick: %d", s.score)
	}
}

func TestFoodGrowsAndScores(t *testing.T) {
	s := newTestState(t, classicSettings())
	s.snake = []Position{{X: 100, Y: 100}}
	s.food = Position{X: 120, Y: 100}

	s.advance(afterGate(s))

	if len(s.snake) != 2 {
		t.Errorf("length = %d, want 2 after eating", len(s.snake))
	}
	if s.score != 1 {
		t.Errorf("score = %d, want 1", s.score)
	}
	if s.food == (Position{X: 120, Y: 100}) {
		t.Error("food was not respawned")
	}
	for _, seg := range s.snake {
		if s.food == seg {
			t.Errorf("new food %v coincides with snake segment", s.food)
		}
	}
	if s.walls[s.food] {
		t.Errorf("new food %v placed on a wall cell", s.food)
	}
}

func TestMultiplierDoublesFoodScore(t *testing.T) {
	s := newTestState(t, classicSettings())
	s.snake = []Position{{X: 100, Y: 100}}
	s.food = Position{X: 120, Y: 100}
	s.effects[KindMultiplier] = testBase

	s.advance(afterGate(s))

	if s.score != 2 {
		t.Errorf("score = %d, want 2 with multiplier active", s.score)
	}
}

func TestWallCollisionEndsGameFrozen(t *testing.T) {
	s := newTestState(t, classicSettings())
	// One cell left of the right wall, heading right.
	s.snake = []Position{{X: 760, Y: 300}, {X: 740, Y: 300}}
	s.score = 7
	s.food = Position{X: 500, Y: 500}

	outcome := s.advance(afterGate(s))

	if outcome != OutcomeGameOver {
		t.Fatalf("advance outcome = %v, want GameOver", outcome)
	}
	if got, want := s.snake[0], (Position{X: 760, Y: 300}); got != want {
		t.Errorf("head = %v, want pre-collision %v", got, want)
	}
	if len(s.snake) != 2 {
		t.Errorf("length = %d, want frozen 2", len(s.snake))
	}
	if s.score != 7 {
		t.Errorf("score = %d, want frozen 7", s.score)
	}
}

func TestSelfCollisionIncludesTailCell(t *testing.T) {
	s := newTestState(t, classicSettings())
	// Square loop: moving right from (100,100) hits the tail at (120,100).
	// The body is tested before the tail pops, so this is fatal.
	s.snake = []Position{
		{X: 100, Y: 100},
		{X: 100, Y: 120},
		{X: 120, Y: 120},
		{X: 120, Y: 100},
	}
	s.food = Position{X: 500, Y: 500}

	if outcome := s.advance(afterGate(s)); outcome != OutcomeGameOver {
		t.Errorf("advance outcome = %v, want GameOver on tail-cell collision", outcome)
	}
}

func TestInvincibilityPassesThroughWall(t *testing.T) {
	s := newTestState(t, classicSettings())
	s.snake = []Position{{X: 760, Y: 300}}
	s.food = Position{X: 500, Y: 500}
	s.effects[KindInvincibility] = testBase

	outcome := s.advance(afterGate(s))

	if outcome != OutcomeContinue {
		t.Fatalf("advance outcome = %v, want Continue while invincible", outcome)
	}
	if got, want := s.snake[0], (Position{X: 780, Y: 300}); got != want {
		t.Errorf("head = %v, want inside wall cell %v", got, want)
	}
}

func TestDirectionReversalRejected(t *testing.T) {
	s := newTestState(t, classicSettings())
	right := Right(s.grid.Cell)

	s.ChangeDirection(Left(s.grid.Cell))
	if s.dir != right {
		t.Errorf("dir = %v, reversal must be ignored", s.dir)
	}

	up := Up(s.grid.Cell)
	s.ChangeDirection(up)
	if s.dir != up {
		t.Errorf("dir = %v, want %v after valid change", s.dir, up)
	}
}

func TestEffectExpiryIsHalfOpen(t *testing.T) {
	s := newTestState(t, classicSettings())
	s.effects[KindSpeed] = testBase

	// One instant before the duration the effect is still active.
	if !s.effectActive(KindSpeed, testBase.Add(Duration(KindSpeed)-time.Nanosecond)) {
		t.Error("effect inactive just before its duration elapsed")
	}

	// At exactly the duration the sweep removes it.
	s.advance(testBase.Add(Duration(KindSpeed)))
	if _, ok := s.effects[KindSpeed]; ok {
		t.Error("effect survived a sweep at exactly its duration")
	}
}

func TestExpirySweepRunsOnUngatedTicks(t *testing.T) {
	settings := classicSettings()
	settings.Difficulty = DifficultyEasy
	s := newTestState(t, settings)
	s.effects[KindMultiplier] = testBase.Add(-Duration(KindMultiplier))
	s.lastMoveTime = testBase // Keep the gate closed

	s.advance(testBase.Add(time.Millisecond))

	if _, ok := s.effects[KindMultiplier]; ok {
		t.Error("expired effect survived an ungated tick")
	}
}

func TestSpeedHalvesMoveInterval(t *testing.T) {
	s := newTestState(t, classicSettings()) // Medium: 50ms base
	s.snake = []Position{{X: 100, Y: 100}}
	s.food = Position{X: 500, Y: 500}
	s.effects[KindSpeed] = testBase

	// 30ms is short of the 50ms base but past the halved 25ms.
	s.advance(testBase.Add(30 * time.Millisecond))

	if got, want := s.snake[0], (Position{X: 120, Y: 100}); got != want {
		t.Errorf("head = %v, want %v with speed active", got, want)
	}
}

func TestPowerUpSpawnAndClockReset(t *testing.T) {
	settings := DefaultSettings()
	s := newTestState(t, settings)
	s.lastMoveTime = testBase.Add(time.Hour) // Gate closed, spawn logic only

	// Before the interval: nothing spawns.
	s.advance(testBase.Add(SpawnInterval - time.Second))
	if s.field != nil {
		t.Fatal("power-up spawned before the interval elapsed")
	}

	// At the interval: one spawns on a free interior cell.
	at := testBase.Add(SpawnInterval)
	s.advance(at)
	if s.field == nil {
		t.Fatal("power-up did not spawn at the interval")
	}
	if s.walls[s.field.Pos] {
		t.Errorf("power-up at %v on a wall cell", s.field.Pos)
	}
	if !s.lastSpawnTime.Equal(at) {
		t.Errorf("lastSpawnTime = %v, want %v", s.lastSpawnTime, at)
	}

	// Next check with a power-up still on the field: no second spawn,
	// but the spawn clock still resets.
	first := *s.field
	later := at.Add(SpawnInterval)
	s.advance(later)
	if s.field == nil || *s.field != first {
		t.Error("a second power-up replaced the field item")
	}
	if !s.lastSpawnTime.Equal(later) {
		t.Errorf("lastSpawnTime = %v, want reset to %v even without a spawn", s.lastSpawnTime, later)
	}
}

func TestPowerUpPickupActivatesWithoutGrowth(t *testing.T) {
	s := newTestState(t, DefaultSettings())
	s.snake = []Position{{X: 100, Y: 100}, {X: 80, Y: 100}}
	s.food = Position{X: 500, Y: 500}
	s.field = &FieldPowerUp{Pos: Position{X: 120, Y: 100}, Kind: KindMultiplier}

	now := afterGate(s)
	s.advance(now)

	if s.field != nil {
		t.Error("field power-up not cleared on pickup")
	}
	activated, ok := s.effects[KindMultiplier]
	if !ok {
		t.Fatal("effect not activated on pickup")
	}
	if !activated.Equal(now) {
		t.Errorf("activation = %v, want %v", activated, now)
	}
	if len(s.snake) != 2 {
		t.Errorf("length = %d, want unchanged 2 on pickup", len(s.snake))
	}
	if s.score != 0 {
		t.Errorf("score = %d, pickup must not score", s.score)
	}
}

func TestTimeAttackExpiresWithoutCollision(t *testing.T) {
	settings := classicSettings()
	settings.Mode = ModeTimeAttack
	settings.Duration = TimeAttackDuration
	s := newTestState(t, settings)
	s.lastMoveTime = testBase.Add(TimeAttackDuration) // Gate closed, pure expiry

	if outcome := s.advance(testBase.Add(TimeAttackDuration)); outcome != OutcomeGameOver {
		t.Errorf("advance outcome = %v, want GameOver at countdown zero", outcome)
	}
	if got := s.Remaining(testBase.Add(TimeAttackDuration + time.Minute)); got != 0 {
		t.Errorf("Remaining = %v after expiry, want 0", got)
	}
}

func TestScoreMonotonicOverManyTicks(t *testing.T) {
	s := newTestState(t, DefaultSettings())
	last := 0
	now := testBase
	for i := 0; i < 2000; i++ {
		now = now.Add(30 * time.Millisecond)
		if s.advance(now) == OutcomeGameOver {
			break
		}
		if s.score < last {
			t.Fatalf("score decreased: %d -> %d", last, s.score)
		}
		last = s.score
		if len(s.snake) < 1 {
			t.Fatal("snake length fell below 1")
		}
	}
}

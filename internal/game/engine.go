package game

import "time"

// advance runs one logical tick at the given wall-clock time. Phases run
// in fixed order: power-up spawn check, effect expiry sweep, movement
// gating, movement with collision/consumption, Time Attack expiry.
// Movement only happens when the interval gate opens, so this can be
// called at render rate while the simulation steps at its own rate.
func (s *State) advance(now time.Time) Outcome {
	// ===== POWER-UP SPAWN =====
	// The spawn-interval clock resets every time the check fires, whether
	// or not a power-up was actually placed.
	if s.powerupsEnabled && now.Sub(s.lastSpawnTime) >= SpawnInterval {
		if s.field == nil {
			s.field = &FieldPowerUp{
				Pos:  freeCell(s.rng, s.grid, s.occupied()),
				Kind: randomKind(s.rng),
			}
		}
		s.lastSpawnTime = now
	}

	// ===== EFFECT EXPIRY =====
	// Runs every tick regardless of movement, so an effect's wall-clock
	// lifetime is exact even across non-moving ticks.
	for k, activated := range s.effects {
		if now.Sub(activated) >= Duration(k) {
			delete(s.effects, k)
		}
	}

	// ===== MOVEMENT GATE =====
	interval := s.baseInterval
	if s.effectActive(KindSpeed, now) {
		interval /= 2
	}

	if now.Sub(s.lastMoveTime) > interval {
		if outcome := s.move(now); outcome == OutcomeGameOver {
			return OutcomeGameOver
		}
	}

	// ===== TIME ATTACK EXPIRY =====
	if s.mode == ModeTimeAttack && s.Remaining(now) == 0 {
		return OutcomeGameOver
	}

	return OutcomeContinue
}

// move steps the snake one cell and resolves collisions and consumption.
func (s *State) move(now time.Time) Outcome {
	newHead := s.snake[0].Add(s.dir)

	// Collision against the wall ring and the body excluding the head.
	// The current tail cell still counts: the body is tested before the
	// tail pops, matching the reference behavior.
	collision := s.walls[newHead]
	if !collision {
		for _, seg := range s.snake[1:] {
			if seg == newHead {
				collision = true
				break
			}
		}
	}
	if collision && !s.effectActive(KindInvincibility, now) {
		// State and score stay frozen at their pre-collision values.
		return OutcomeGameOver
	}

	s.snake = append([]Position{newHead}, s.snake...)

	switch {
	case newHead == s.food:
		// Food takes priority over a coincident power-up. Tail stays:
		// net growth of one.
		gain := 1
		if s.effectActive(KindMultiplier, now) {
			gain *= 2
		}
		s.score += gain
		s.food = freeCell(s.rng, s.grid, s.occupied())
	case s.field != nil && newHead == s.field.Pos:
		// Pickup activates the effect but does not grow the snake.
		s.effects[s.field.Kind] = now
		s.field = nil
		s.snake = s.snake[:len(s.snake)-1]
	default:
		s.snake = s.snake[:len(s.snake)-1]
	}

	s.lastMoveTime = now
	return OutcomeContinue
}

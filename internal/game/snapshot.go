package game

import "time"

// Snapshot is the read-only render model for one frame. Snake and Effects
// are copies, so mutating a snapshot never affects the live state; Walls
// aliases the immutable wall ring built at session start.
type Snapshot struct {
	Snake     []Position
	Food      Position
	Walls     []Position
	PowerUp   *FieldPowerUp // nil when no power-up is on the field
	Effects   []Kind        // Active effect kinds, registry order
	Score     int
	Mode      Mode
	Remaining time.Duration // Time Attack only; zero otherwise
}

// Snapshot captures the current state for rendering.
func (s *State) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Snake:     append([]Position(nil), s.snake...),
		Food:      s.food,
		Walls:     s.wallList,
		Score:     s.score,
		Mode:      s.mode,
		Remaining: s.Remaining(now),
	}
	if s.field != nil {
		fp := *s.field
		snap.PowerUp = &fp
	}
	for _, k := range allKinds {
		if s.effectActive(k, now) {
			snap.Effects = append(snap.Effects, k)
		}
	}
	return snap
}

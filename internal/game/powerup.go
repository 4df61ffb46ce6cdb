package game

import (
	"math/rand"
	"time"
)

// Kind identifies a power-up. The set is closed: effect semantics are
// applied by the tick engine, the registry only describes each kind.
type Kind int

const (
	KindSpeed        Kind = iota // Halves the effective move interval
	KindMultiplier               // Doubles score gained per food
	KindInvincibility            // Suppresses the fatal-collision check
)

// Shape is the visual marker a power-up is drawn with.
type Shape int

const (
	ShapeTriangle Shape = iota
	ShapeSquare
	ShapeCircle
)

// Traits describes a power-up kind: how long its effect lasts once picked
// up and how the field item is drawn.
type Traits struct {
	Duration time.Duration
	Shape    Shape
}

// traits is the static power-up registry.
var traits = map[Kind]Traits{
	KindSpeed:         {Duration: 5 * time.Second, Shape: ShapeTriangle},
	KindMultiplier:    {Duration: 10 * time.Second, Shape: ShapeSquare},
	KindInvincibility: {Duration: 7 * time.Second, Shape: ShapeCircle},
}

// allKinds is used for uniform random spawn selection.
var allKinds = []Kind{KindSpeed, KindMultiplier, KindInvincibility}

// Lookup returns the registry entry for a kind.
func Lookup(k Kind) Traits {
	return traits[k]
}

// Duration returns how long the kind's effect lasts once activated.
func Duration(k Kind) time.Duration {
	return traits[k].Duration
}

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSpeed:
		return "Speed"
	case KindMultiplier:
		return "Multiplier"
	case KindInvincibility:
		return "Invincibility"
	default:
		return "Unknown"
	}
}

// randomKind picks a kind uniformly at random.
func randomKind(rng *rand.Rand) Kind {
	return allKinds[rng.Intn(len(allKinds))]
}

// FieldPowerUp is a power-up placed on the grid awaiting pickup, as
// opposed to an active effect already consumed and running.
type FieldPowerUp struct {
	Pos  Position
	Kind Kind
}

// SpawnInterval is the minimum time between power-up spawn attempts.
const SpawnInterval = 15 * time.Second

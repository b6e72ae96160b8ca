package crossy

import "github.com/vovakirdan/lanehop/internal/core"

// Entity is a box moving horizontally at a constant per-tick speed.
type Entity struct {
	core.Box
	Speed float64 // Units per tick, never negative
	Dir   int     // -1 moves left, +1 moves right
}

// Velocity returns the signed horizontal displacement per tick.
func (e *Entity) Velocity() float64 {
	return e.Speed * float64(e.Dir)
}

// Step moves the entity by one tick without wrapping.
func (e *Entity) Step() {
	e.X += e.Velocity()
}

// Wrap teleports an entity that left the world to the opposite edge,
// keeping X within [-W, worldW].
func (e *Entity) Wrap(worldW float64) {
	if e.Dir > 0 && e.X > worldW {
		e.X = -e.W
	} else if e.Dir < 0 && e.X < -e.W {
		e.X = worldW
	}
}

// Advance moves the entity by one tick and applies the wrap rule.
func (e *Entity) Advance(worldW float64) {
	e.Step()
	e.Wrap(worldW)
}

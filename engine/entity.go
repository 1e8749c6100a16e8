package engine

import (
	"time"

	"github.com/lixenwraith/breakout/physics"
)

// Entity is any object the engine owns and paints
// Implementations are compared by identity and must be pointer types
type Entity interface {
	Position() (x, y float64)
	Angle() float64
	Size() (w, h float64)
	Image() Image
}

// Physical entities own a body in the physics world
// Attach runs when the engine applies an add, Detach when it applies a removal
type Physical interface {
	Entity
	Attach(w *physics.World)
	Detach()
	Body() *physics.Body
}

// ContactListener is notified once per contact that begins with another entity
type ContactListener interface {
	Contact(other Entity)
}

// PresolveListener inspects or adjusts a contact before the solver applies it
type PresolveListener interface {
	Presolve(c *physics.Contact, other Entity)
}

// Updater receives the frame delta before the physics step
type Updater interface {
	Update(delta time.Duration)
}

// Mutator queues live-set changes, applied by the engine at its next mutation point
type Mutator interface {
	Add(e Entity)
	Remove(e Entity)
}

// Capabilities reports which optional interfaces an entity implements
func Capabilities(e Entity) (physical, contact, presolve bool) {
	_, physical = e.(Physical)
	_, contact = e.(ContactListener)
	_, presolve = e.(PresolveListener)
	return
}

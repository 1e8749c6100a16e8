package physics

import (
	"time"

	"github.com/jakecoffman/cp"
)

// Config holds simulation parameters for a play field
// Coordinates are physical units with Y growing downward, origin at the top-left corner
type Config struct {
	Width  float64 // Field width in physical units
	Height float64 // Field height in physical units

	// Gravity is the downward acceleration in units/sec²
	Gravity float64

	// UnitsPerPixel converts screen units to physical units
	UnitsPerPixel float64

	// MaxStep clamps a single integration step, 0 disables clamping
	MaxStep time.Duration

	// Iterations overrides the solver iteration count when > 0
	Iterations uint

	WallFriction    float64
	WallRestitution float64
}

// ContactEvent pairs the owners of two bodies that began touching while closing during a step
// Contacts dropped by the presolve handler are not reported
type ContactEvent struct {
	A, B any
}

// PresolveFunc receives contacts before the solver resolves them
// a and b are body owners, c is oriented from a to b
type PresolveFunc func(c *Contact, a, b any)

// World owns the rigid-body space, its static boundaries and the per-step contact buffer
type World struct {
	cfg   Config
	space *cp.Space
	walls []*cp.Shape

	contacts []ContactEvent
	presolve PresolveFunc

	bodies int
	steps  uint64
}

// NewWorld creates a space with gravity and the ceiling, left and right walls
// The bottom edge is open
func NewWorld(cfg Config) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	if cfg.Iterations > 0 {
		space.Iterations = cfg.Iterations
	}

	w := &World{
		cfg:      cfg,
		space:    space,
		contacts: make([]ContactEvent, 0, 16),
	}

	topLeft := cp.Vector{X: 0, Y: 0}
	topRight := cp.Vector{X: cfg.Width, Y: 0}
	bottomLeft := cp.Vector{X: 0, Y: cfg.Height}
	bottomRight := cp.Vector{X: cfg.Width, Y: cfg.Height}

	w.addWall(topLeft, topRight)     // ceiling
	w.addWall(topLeft, bottomLeft)   // left
	w.addWall(topRight, bottomRight) // right

	handler := space.NewCollisionHandler(collisionEntity, collisionEntity)
	handler.PreSolveFunc = w.preSolve

	return w
}

func (w *World) addWall(a, b cp.Vector) {
	shape := cp.NewSegment(w.space.StaticBody, a, b, 0)
	shape.SetFriction(w.cfg.WallFriction)
	shape.SetElasticity(w.cfg.WallRestitution)
	w.space.AddShape(shape)
	w.walls = append(w.walls, shape)
}

// Config returns the configuration the world was built with
func (w *World) Config() Config {
	return w.cfg
}

// SetPresolveHandler installs the callback invoked for every presolve event, nil disables it
func (w *World) SetPresolveHandler(fn PresolveFunc) {
	w.presolve = fn
}

// Step advances the simulation once by delta and returns the contacts that began during the step
// The returned slice is reused by the next Step
func (w *World) Step(delta time.Duration) []ContactEvent {
	w.contacts = w.contacts[:0]

	dt := delta.Seconds()
	if limit := w.cfg.MaxStep.Seconds(); limit > 0 && dt > limit {
		dt = limit
	}
	if dt <= 0 {
		return w.contacts
	}

	w.space.Step(dt)
	w.steps++
	return w.contacts
}

// Steps returns the number of integration steps performed
func (w *World) Steps() uint64 {
	return w.steps
}

// BodyCount returns the number of live entity bodies, boundaries excluded
func (w *World) BodyCount() int {
	return w.bodies
}

// Walls returns the number of static boundary segments
func (w *World) Walls() int {
	return len(w.walls)
}

// ToPhysics converts a screen-unit length to physical units
func (w *World) ToPhysics(screen float64) float64 {
	return screen * w.cfg.UnitsPerPixel
}

// ToScreen converts a physical length to screen units
func (w *World) ToScreen(phys float64) float64 {
	if w.cfg.UnitsPerPixel == 0 {
		return phys
	}
	return phys / w.cfg.UnitsPerPixel
}

// preSolve runs listeners first, then records the contact if it survived, is new and is closing
// A body rebuilt under a departing ball overlaps it without closing speed
func (w *World) preSolve(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()

	ignored := false
	if w.presolve != nil {
		w.presolve(&Contact{arb: arb, ignored: &ignored}, a.UserData, b.UserData)
	}
	if ignored {
		return false
	}

	if arb.IsFirstContact() && b.Velocity().Sub(a.Velocity()).Dot(arb.Normal()) < 0 {
		w.contacts = append(w.contacts, ContactEvent{A: a.UserData, B: b.UserData})
	}
	return true
}

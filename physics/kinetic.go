package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// BodyKind selects how the solver moves a body
type BodyKind uint8

const (
	// Static bodies never move
	Static BodyKind = iota
	// Dynamic bodies respond to gravity and impulses
	Dynamic
	// Kinematic bodies move only by their assigned velocity
	Kinematic
)

// ShapeKind selects the collision shape attached to a body
type ShapeKind uint8

const (
	// Circle uses BodyDef.Radius
	Circle ShapeKind = iota
	// Box uses BodyDef.Width and BodyDef.Height
	Box
)

// BodyDef describes a body and its single shape
type BodyDef struct {
	Kind  BodyKind
	Shape ShapeKind

	X, Y       float64 // Center position
	VelX, VelY float64 // Initial velocity, ignored for static bodies

	Radius        float64 // Circle
	Width, Height float64 // Box

	Mass        float64 // Dynamic only, defaults to 1
	Friction    float64
	Restitution float64

	// Owner is handed back in contact and presolve events
	Owner any
}

// Body is a handle on a simulated body owned by a World
type Body struct {
	world *World
	body  *cp.Body
	shape *cp.Shape
	def   BodyDef
}

// CreateBody registers a body described by def with the world
// A zero-size shape or unknown kind is a programming error and panics
func (w *World) CreateBody(def BodyDef) *Body {
	switch def.Shape {
	case Circle:
		if def.Radius <= 0 {
			panic(fmt.Sprintf("physics: circle radius must be positive, got %v", def.Radius))
		}
	case Box:
		if def.Width <= 0 || def.Height <= 0 {
			panic(fmt.Sprintf("physics: box size must be positive, got %vx%v", def.Width, def.Height))
		}
	default:
		panic(fmt.Sprintf("physics: unknown shape kind %d", def.Shape))
	}

	var body *cp.Body
	switch def.Kind {
	case Static:
		body = cp.NewStaticBody()
	case Kinematic:
		body = cp.NewKinematicBody()
	case Dynamic:
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := cp.MomentForBox(mass, def.Width, def.Height)
		if def.Shape == Circle {
			moment = cp.MomentForCircle(mass, 0, def.Radius, cp.Vector{})
		}
		body = cp.NewBody(mass, moment)
	default:
		panic(fmt.Sprintf("physics: unknown body kind %d", def.Kind))
	}

	body.SetPosition(cp.Vector{X: def.X, Y: def.Y})
	body.UserData = def.Owner
	w.space.AddBody(body)

	var shape *cp.Shape
	if def.Shape == Circle {
		shape = cp.NewCircle(body, def.Radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, def.Width, def.Height, 0)
	}
	shape.SetFriction(def.Friction)
	shape.SetElasticity(def.Restitution)
	shape.SetCollisionType(collisionEntity)
	w.space.AddShape(shape)

	if def.Kind != Static {
		body.SetVelocityVector(cp.Vector{X: def.VelX, Y: def.VelY})
	}

	w.bodies++
	return &Body{world: w, body: body, shape: shape, def: def}
}

// Kind returns the body kind
func (b *Body) Kind() BodyKind {
	return b.def.Kind
}

// Destroyed reports whether Destroy has run
func (b *Body) Destroyed() bool {
	return b.body == nil
}

// Destroy removes the body and its shape from the world, repeated calls are no-ops
func (b *Body) Destroy() {
	if b == nil || b.body == nil {
		return
	}
	b.world.space.RemoveShape(b.shape)
	b.world.space.RemoveBody(b.body)
	b.world.bodies--
	b.body = nil
	b.shape = nil
}

// Position returns the body center
func (b *Body) Position() (x, y float64) {
	p := b.body.Position()
	return p.X, p.Y
}

// SetPosition teleports the body center, a destroyed body is left alone
// Static shapes are indexed once when added, so a static body is rebuilt at the new center
func (b *Body) SetPosition(x, y float64) {
	if b.body == nil {
		return
	}
	if b.def.Kind != Static {
		b.body.SetPosition(cp.Vector{X: x, Y: y})
		return
	}

	def := b.def
	def.X, def.Y = x, y
	w := b.world
	b.Destroy()
	*b = *w.CreateBody(def)
}

// Velocity returns the linear velocity
func (b *Body) Velocity() (x, y float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

// SetVelocity overrides the linear velocity
func (b *Body) SetVelocity(x, y float64) {
	b.body.SetVelocityVector(cp.Vector{X: x, Y: y})
}

// Angle returns the rotation in radians
func (b *Body) Angle() float64 {
	return b.body.Angle()
}

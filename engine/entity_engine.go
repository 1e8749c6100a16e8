package engine

import (
	"time"

	"github.com/lixenwraith/breakout/physics"
)

// Phase is the engine-wide position within one Update cycle
type Phase uint8

const (
	// PhaseIdle is outside Update
	PhaseIdle Phase = iota
	// PhaseStepping is inside the physics step, presolve listeners run here
	PhaseStepping
	// PhaseDispatchingContacts delivers the step's contact events
	PhaseDispatchingContacts
	// PhaseApplyingMutations replays queued Add and Remove calls
	PhaseApplyingMutations
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseStepping:
		return "Stepping"
	case PhaseDispatchingContacts:
		return "DispatchingContacts"
	case PhaseApplyingMutations:
		return "ApplyingMutations"
	default:
		return "Unknown"
	}
}

type opKind uint8

const (
	opAdd opKind = iota
	opRemove
)

type op struct {
	kind   opKind
	entity Entity
}

// EntityEngine is the single authority over which entities are simulated
// Add and Remove only queue; the live set changes at the mutation points inside Update
type EntityEngine struct {
	world *physics.World

	live    []Entity
	index   map[Entity]struct{}
	pending []op

	phase Phase

	frames     uint64
	dispatched uint64
}

// NewEntityEngine creates an engine driving world and installs its presolve dispatcher
func NewEntityEngine(world *physics.World) *EntityEngine {
	e := &EntityEngine{
		world: world,
		live:  make([]Entity, 0, 64),
		index: make(map[Entity]struct{}),
	}
	world.SetPresolveHandler(e.presolve)
	return e
}

// World returns the physics world
func (e *EntityEngine) World() *physics.World {
	return e.world
}

// Add queues en for insertion into the live set
func (e *EntityEngine) Add(en Entity) {
	e.pending = append(e.pending, op{kind: opAdd, entity: en})
}

// Remove queues en for removal, removing an entity that is not live is a no-op
func (e *EntityEngine) Remove(en Entity) {
	e.pending = append(e.pending, op{kind: opRemove, entity: en})
}

// Contains reports whether en is in the live set
func (e *EntityEngine) Contains(en Entity) bool {
	_, ok := e.index[en]
	return ok
}

// Len returns the live entity count
func (e *EntityEngine) Len() int {
	return len(e.live)
}

// Pending returns the number of queued operations
func (e *EntityEngine) Pending() int {
	return len(e.pending)
}

// Each calls fn for every live entity in insertion order
// Add and Remove from fn are queued like any other call
func (e *EntityEngine) Each(fn func(Entity)) {
	for _, en := range e.live {
		fn(en)
	}
}

// Phase returns the current cycle phase
func (e *EntityEngine) Phase() Phase {
	return e.phase
}

// Frames returns the number of completed Update calls
func (e *EntityEngine) Frames() uint64 {
	return e.frames
}

// Dispatched returns the number of contact events delivered to entities
func (e *EntityEngine) Dispatched() uint64 {
	return e.dispatched
}

// Update runs one frame: pending mutations, entity intent, physics step,
// contact dispatch, then the mutations requested during dispatch
func (e *EntityEngine) Update(delta time.Duration) {
	e.applyPending()

	for _, en := range e.live {
		if u, ok := en.(Updater); ok {
			u.Update(delta)
		}
	}

	e.phase = PhaseStepping
	contacts := e.world.Step(delta)

	e.phase = PhaseDispatchingContacts
	for _, c := range contacts {
		e.dispatch(c)
	}

	e.applyPending()
	e.phase = PhaseIdle
	e.frames++
}

// Paint hands each live entity to r, no state is mutated
func (e *EntityEngine) Paint(_ time.Duration, r Renderer) {
	if r == nil {
		return
	}
	for _, en := range e.live {
		x, y := en.Position()
		w, h := en.Size()
		r.Draw(Sprite{
			Image:  en.Image(),
			X:      x,
			Y:      y,
			Angle:  en.Angle(),
			Width:  w,
			Height: h,
		})
	}
}

// Clear detaches every live entity and drops queued operations
func (e *EntityEngine) Clear() {
	for _, en := range e.live {
		if p, ok := en.(Physical); ok {
			p.Detach()
		}
	}
	e.live = e.live[:0]
	e.index = make(map[Entity]struct{})
	e.pending = nil
}

// applyPending replays the op log in call order against the live set
// Remove then Add of a live entity rebuilds its body, Add then Remove of a new one leaves nothing
func (e *EntityEngine) applyPending() {
	if len(e.pending) == 0 {
		return
	}
	e.phase = PhaseApplyingMutations

	ops := e.pending
	e.pending = nil

	for _, o := range ops {
		switch o.kind {
		case opAdd:
			if _, ok := e.index[o.entity]; ok {
				continue
			}
			if p, ok := o.entity.(Physical); ok {
				p.Attach(e.world)
			}
			e.index[o.entity] = struct{}{}
			e.live = append(e.live, o.entity)

		case opRemove:
			if _, ok := e.index[o.entity]; !ok {
				continue
			}
			if p, ok := o.entity.(Physical); ok {
				p.Detach()
			}
			delete(e.index, o.entity)
			e.removeLive(o.entity)
		}
	}
}

func (e *EntityEngine) removeLive(en Entity) {
	for i, item := range e.live {
		if item == en {
			copy(e.live[i:], e.live[i+1:])
			e.live[len(e.live)-1] = nil
			e.live = e.live[:len(e.live)-1]
			return
		}
	}
}

func (e *EntityEngine) dispatch(c physics.ContactEvent) {
	a, ok := c.A.(Physical)
	if !ok {
		return
	}
	b, ok := c.B.(Physical)
	if !ok {
		return
	}

	if l, ok := a.(ContactListener); ok {
		l.Contact(b)
		e.dispatched++
	}
	if l, ok := b.(ContactListener); ok {
		l.Contact(a)
		e.dispatched++
	}
}

func (e *EntityEngine) presolve(c *physics.Contact, ownerA, ownerB any) {
	a, ok := ownerA.(Physical)
	if !ok {
		return
	}
	b, ok := ownerB.(Physical)
	if !ok {
		return
	}

	if l, ok := a.(PresolveListener); ok {
		l.Presolve(c, b)
	}
	if l, ok := b.(PresolveListener); ok {
		l.Presolve(c.Swapped(), a)
	}
}

package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/breakout/physics"
)

const frame = time.Second / 60

// probe is a configurable physical entity for engine tests
type probe struct {
	def  physics.BodyDef
	body *physics.Body

	attached int
	detached int
	x, y     float64
}

func newProbe(def physics.BodyDef) *probe {
	return &probe{def: def, x: def.X, y: def.Y}
}

func (p *probe) Attach(w *physics.World) {
	def := p.def
	def.X, def.Y = p.x, p.y
	def.Owner = p
	p.body = w.CreateBody(def)
	p.attached++
}

func (p *probe) Detach() {
	if p.body == nil {
		return
	}
	p.x, p.y = p.body.Position()
	p.body.Destroy()
	p.body = nil
	p.detached++
}

func (p *probe) Body() *physics.Body { return p.body }
func (p *probe) Angle() float64      { return 0 }
func (p *probe) Image() Image        { return "probe" }
func (p *probe) Size() (float64, float64) {
	return p.def.Width, p.def.Height
}
func (p *probe) Position() (float64, float64) {
	if p.body != nil {
		return p.body.Position()
	}
	return p.x, p.y
}

// listener records contacts and runs an optional hook
type listener struct {
	*probe
	contacts []Entity
	hook     func(other Entity)
}

func (l *listener) Attach(w *physics.World) {
	def := l.def
	def.X, def.Y = l.x, l.y
	def.Owner = l
	l.body = w.CreateBody(def)
	l.attached++
}

func (l *listener) Contact(other Entity) {
	l.contacts = append(l.contacts, other)
	if l.hook != nil {
		l.hook(other)
	}
}

// ghost ignores every contact it takes part in
type ghost struct {
	*listener
	presolves int
}

func (g *ghost) Attach(w *physics.World) {
	def := g.def
	def.X, def.Y = g.x, g.y
	def.Owner = g
	g.body = w.CreateBody(def)
	g.attached++
}

func (g *ghost) Presolve(c *physics.Contact, other Entity) {
	g.presolves++
	c.Ignore()
}

// marker has no body and no capabilities
type marker struct{}

func (marker) Position() (float64, float64) { return 1, 2 }
func (marker) Angle() float64               { return 0 }
func (marker) Size() (float64, float64)     { return 1, 1 }
func (marker) Image() Image                 { return "marker" }

// stepper counts Update calls
type stepper struct {
	marker
	deltas []time.Duration
}

func (s *stepper) Update(delta time.Duration) { s.deltas = append(s.deltas, delta) }

type spriteLog struct{ sprites []Sprite }

func (r *spriteLog) Draw(s Sprite) { r.sprites = append(r.sprites, s) }

func newTestEngine() *EntityEngine {
	return NewEntityEngine(physics.NewWorld(physics.Config{
		Width:           20,
		Height:          20,
		Gravity:         10,
		UnitsPerPixel:   1,
		MaxStep:         50 * time.Millisecond,
		WallRestitution: 1,
	}))
}

func ballDef() physics.BodyDef {
	return physics.BodyDef{Kind: physics.Dynamic, Shape: physics.Circle, X: 10, Y: 7, VelY: 5, Radius: 0.25, Restitution: 1}
}

func brickDef() physics.BodyDef {
	return physics.BodyDef{Kind: physics.Static, Shape: physics.Box, X: 10, Y: 10, Width: 4, Height: 1, Restitution: 1}
}

func runUntil(e *EntityEngine, frames int, done func() bool) {
	for i := 0; i < frames && !done(); i++ {
		e.Update(frame)
	}
}

func TestAddIsDeferredUntilUpdate(t *testing.T) {
	e := newTestEngine()
	p := newProbe(brickDef())

	e.Add(p)
	if e.Contains(p) || e.Len() != 0 {
		t.Fatal("entity live before Update")
	}
	if e.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", e.Pending())
	}

	e.Update(frame)

	if !e.Contains(p) || e.Len() != 1 {
		t.Fatal("entity not live after Update")
	}
	if p.attached != 1 || e.World().BodyCount() != 1 {
		t.Errorf("attached = %d, bodies = %d, want 1/1", p.attached, e.World().BodyCount())
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v after Update, want Idle", e.Phase())
	}
}

func TestPendingNetEffect(t *testing.T) {
	tests := []struct {
		name       string
		startLive  bool
		ops        []opKind
		wantLive   bool
		wantAttach int
		wantDetach int
	}{
		{"add", false, []opKind{opAdd}, true, 1, 0},
		{"add twice", false, []opKind{opAdd, opAdd}, true, 1, 0},
		{"add then remove", false, []opKind{opAdd, opRemove}, false, 1, 1},
		{"remove unknown", false, []opKind{opRemove}, false, 0, 0},
		{"remove live", true, []opKind{opRemove}, false, 1, 1},
		{"remove twice", true, []opKind{opRemove, opRemove}, false, 1, 1},
		{"remove then add", true, []opKind{opRemove, opAdd}, true, 2, 1},
		{"add live", true, []opKind{opAdd}, true, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			p := newProbe(brickDef())
			if tt.startLive {
				e.Add(p)
				e.Update(frame)
			}

			for _, k := range tt.ops {
				if k == opAdd {
					e.Add(p)
				} else {
					e.Remove(p)
				}
			}
			e.Update(frame)

			if e.Contains(p) != tt.wantLive {
				t.Errorf("Contains() = %v, want %v", e.Contains(p), tt.wantLive)
			}
			if p.attached != tt.wantAttach || p.detached != tt.wantDetach {
				t.Errorf("attach/detach = %d/%d, want %d/%d", p.attached, p.detached, tt.wantAttach, tt.wantDetach)
			}
			wantBodies := 0
			if tt.wantLive {
				wantBodies = 1
			}
			if e.World().BodyCount() != wantBodies {
				t.Errorf("BodyCount() = %d, want %d", e.World().BodyCount(), wantBodies)
			}
		})
	}
}

func TestRemoveThenAddPreservesPosition(t *testing.T) {
	e := newTestEngine()
	p := newProbe(brickDef())
	e.Add(p)
	e.Update(frame)
	first := p.body

	e.Remove(p)
	e.Add(p)
	e.Update(frame)

	if p.body == first || !first.Destroyed() {
		t.Error("body was not rebuilt")
	}
	if x, y := p.Position(); x != 10 || y != 10 {
		t.Errorf("Position() = (%v,%v), want (10,10)", x, y)
	}
}

func TestContactDispatchedOncePerListener(t *testing.T) {
	e := newTestEngine()
	brick := &listener{probe: newProbe(brickDef())}
	ball := newProbe(ballDef())
	e.Add(brick)
	e.Add(ball)

	runUntil(e, 120, func() bool { return len(brick.contacts) > 0 })

	if len(brick.contacts) != 1 {
		t.Fatalf("brick saw %d contacts, want 1", len(brick.contacts))
	}
	if brick.contacts[0] != Entity(ball) {
		t.Errorf("contact other = %v, want ball", brick.contacts[0])
	}
	if e.Dispatched() != 1 {
		t.Errorf("Dispatched() = %d, want 1", e.Dispatched())
	}
}

func TestMutationsDuringDispatchAreDeferred(t *testing.T) {
	e := newTestEngine()
	brick := &listener{probe: newProbe(brickDef())}
	ball := newProbe(ballDef())
	extra := newProbe(physics.BodyDef{Kind: physics.Static, Shape: physics.Box, X: 2, Y: 2, Width: 1, Height: 1})

	brick.hook = func(other Entity) {
		if e.Phase() != PhaseDispatchingContacts {
			t.Errorf("Phase() = %v in contact callback", e.Phase())
		}
		e.Remove(brick)
		e.Remove(brick)
		e.Remove(other)
		e.Add(extra)
		if !e.Contains(brick) || !e.Contains(other) || e.Contains(extra) {
			t.Error("live set mutated during dispatch")
		}
	}
	e.Add(brick)
	e.Add(ball)

	runUntil(e, 120, func() bool { return len(brick.contacts) > 0 })

	if e.Contains(brick) || e.Contains(ball) {
		t.Error("removed entities still live after Update")
	}
	if !e.Contains(extra) {
		t.Error("entity added during dispatch not live after Update")
	}
	if e.Len() != 1 || e.World().BodyCount() != 1 {
		t.Errorf("Len() = %d, BodyCount() = %d, want 1/1", e.Len(), e.World().BodyCount())
	}
}

func TestPresolveListenerCanIgnoreContact(t *testing.T) {
	e := newTestEngine()
	brick := &ghost{listener: &listener{probe: newProbe(brickDef())}}
	ball := newProbe(ballDef())
	e.Add(brick)
	e.Add(ball)

	for i := 0; i < 120; i++ {
		e.Update(frame)
	}

	if brick.presolves == 0 {
		t.Fatal("presolve never dispatched")
	}
	if len(brick.contacts) != 0 {
		t.Errorf("ignored contact dispatched %d times", len(brick.contacts))
	}
	if _, y := ball.Position(); y < 11 {
		t.Errorf("ball y = %v, want it to pass through the ignoring brick", y)
	}
}

func TestNonPhysicalEntities(t *testing.T) {
	e := newTestEngine()
	m := marker{}
	s := &stepper{}
	e.Add(m)
	e.Add(s)

	e.Update(frame)
	e.Update(2 * frame)

	if !e.Contains(m) || !e.Contains(s) {
		t.Fatal("non-physical entities not live")
	}
	if e.World().BodyCount() != 0 {
		t.Errorf("BodyCount() = %d, want 0", e.World().BodyCount())
	}
	if len(s.deltas) != 2 || s.deltas[1] != 2*frame {
		t.Errorf("Updater deltas = %v", s.deltas)
	}

	physical, contact, presolve := Capabilities(m)
	if physical || contact || presolve {
		t.Error("marker reported capabilities")
	}
	physical, contact, presolve = Capabilities(&ghost{listener: &listener{probe: newProbe(brickDef())}})
	if !physical || !contact || !presolve {
		t.Error("ghost capabilities not detected")
	}
}

func TestPaintDrawsLiveEntities(t *testing.T) {
	e := newTestEngine()
	e.Add(newProbe(brickDef()))
	e.Add(marker{})
	e.Update(frame)

	r := &spriteLog{}
	e.Paint(frame, r)
	e.Paint(frame, nil)

	if len(r.sprites) != 2 {
		t.Fatalf("drew %d sprites, want 2", len(r.sprites))
	}
	if s := r.sprites[0]; s.Image != "probe" || s.X != 10 || s.Y != 10 || s.Width != 4 || s.Height != 1 {
		t.Errorf("sprite = %+v", s)
	}
	if s := r.sprites[1]; s.Image != "marker" || s.X != 1 || s.Y != 2 {
		t.Errorf("sprite = %+v", s)
	}
}

func TestClearDetachesEverything(t *testing.T) {
	e := newTestEngine()
	p := newProbe(brickDef())
	e.Add(p)
	e.Update(frame)
	e.Add(newProbe(ballDef()))

	e.Clear()

	if e.Len() != 0 || e.Pending() != 0 {
		t.Errorf("Len() = %d, Pending() = %d after Clear", e.Len(), e.Pending())
	}
	if p.detached != 1 || e.World().BodyCount() != 0 {
		t.Errorf("detached = %d, bodies = %d", p.detached, e.World().BodyCount())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "Idle"},
		{PhaseStepping, "Stepping"},
		{PhaseDispatchingContacts, "DispatchingContacts"},
		{PhaseApplyingMutations, "ApplyingMutations"},
		{Phase(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestSoundNames(t *testing.T) {
	for _, s := range Sounds() {
		if s.String() == "Unknown" || s.String() == "" {
			t.Errorf("Sound(%d) has no name", s)
		}
	}
	if Sound(200).String() != "Unknown" {
		t.Error("out of range sound should be Unknown")
	}
}

package physics

import (
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		Width:           20,
		Height:          20,
		Gravity:         10,
		UnitsPerPixel:   0.05,
		MaxStep:         50 * time.Millisecond,
		WallRestitution: 1,
	}
}

const frame = time.Second / 60

// dropBallOnBrick places a falling ball above a static brick
func dropBallOnBrick(w *World) (*Body, *Body) {
	brick := w.CreateBody(BodyDef{
		Kind: Static, Shape: Box,
		X: 10, Y: 10, Width: 4, Height: 1,
		Restitution: 1, Owner: "brick",
	})
	ball := w.CreateBody(BodyDef{
		Kind: Dynamic, Shape: Circle,
		X: 10, Y: 7, Radius: 0.25, VelY: 5,
		Restitution: 1, Owner: "ball",
	})
	return ball, brick
}

func TestNewWorldBoundaries(t *testing.T) {
	w := NewWorld(testConfig())
	if w.Walls() != 3 {
		t.Errorf("Walls() = %d, want 3", w.Walls())
	}
	if w.BodyCount() != 0 {
		t.Errorf("BodyCount() = %d, want 0", w.BodyCount())
	}
}

func TestGravityPullsDynamicBodies(t *testing.T) {
	w := NewWorld(testConfig())
	ball := w.CreateBody(BodyDef{Kind: Dynamic, Shape: Circle, X: 5, Y: 5, Radius: 0.25})

	for i := 0; i < 30; i++ {
		w.Step(frame)
	}

	_, y := ball.Position()
	if y <= 5 {
		t.Errorf("ball y = %v after half a second, want > 5", y)
	}
	_, vy := ball.Velocity()
	if vy <= 0 {
		t.Errorf("ball vy = %v, want downward velocity", vy)
	}
}

func TestKinematicIgnoresGravity(t *testing.T) {
	w := NewWorld(testConfig())
	paddle := w.CreateBody(BodyDef{Kind: Kinematic, Shape: Box, X: 10, Y: 18, Width: 3, Height: 0.4})
	paddle.SetVelocity(2, 0)

	for i := 0; i < 60; i++ {
		w.Step(frame)
	}

	x, y := paddle.Position()
	if y != 18 {
		t.Errorf("paddle y = %v, want 18", y)
	}
	if x < 11.9 || x > 12.1 {
		t.Errorf("paddle x = %v, want ~12", x)
	}
}

func TestStepReportsBeginContact(t *testing.T) {
	w := NewWorld(testConfig())
	dropBallOnBrick(w)

	var events []ContactEvent
	for i := 0; i < 120 && len(events) == 0; i++ {
		for _, ev := range w.Step(frame) {
			events = append(events, ev)
		}
	}

	if len(events) != 1 {
		t.Fatalf("got %d contact events, want 1", len(events))
	}
	owners := map[any]bool{events[0].A: true, events[0].B: true}
	if !owners["ball"] || !owners["brick"] {
		t.Errorf("contact owners = %v/%v, want ball and brick", events[0].A, events[0].B)
	}
}

func TestBoundaryContactsAreNotReported(t *testing.T) {
	w := NewWorld(testConfig())
	w.CreateBody(BodyDef{Kind: Dynamic, Shape: Circle, X: 1, Y: 5, VelX: -20, Radius: 0.25, Owner: "ball"})

	for i := 0; i < 60; i++ {
		if got := w.Step(frame); len(got) != 0 {
			t.Fatalf("step %d reported %d contacts against walls", i, len(got))
		}
	}
}

func TestBallReflectsOffLeftWall(t *testing.T) {
	w := NewWorld(testConfig())
	ball := w.CreateBody(BodyDef{Kind: Dynamic, Shape: Circle, X: 1, Y: 5, VelX: -10, Radius: 0.25, Restitution: 1})

	for i := 0; i < 30; i++ {
		w.Step(frame)
	}

	vx, _ := ball.Velocity()
	if vx <= 0 {
		t.Errorf("ball vx = %v after wall contact, want positive", vx)
	}
}

func TestPresolveIgnoreLetsBodiesPass(t *testing.T) {
	w := NewWorld(testConfig())
	calls := 0
	w.SetPresolveHandler(func(c *Contact, a, b any) {
		calls++
		c.Ignore()
		if !c.Ignored() {
			t.Error("Ignored() = false after Ignore()")
		}
	})
	ball, _ := dropBallOnBrick(w)

	reported := 0
	for i := 0; i < 120; i++ {
		reported += len(w.Step(frame))
	}

	if calls == 0 {
		t.Fatal("presolve handler never invoked")
	}
	if reported != 0 {
		t.Errorf("ignored contact reported %d times", reported)
	}
	if _, y := ball.Position(); y < 11 {
		t.Errorf("ball y = %v, want it to fall through the ignored brick", y)
	}
}

func TestContactSwappedFlipsNormal(t *testing.T) {
	w := NewWorld(testConfig())
	checked := false
	w.SetPresolveHandler(func(c *Contact, a, b any) {
		nx, ny := c.Normal()
		sx, sy := c.Swapped().Normal()
		if nx != -sx || ny != -sy {
			t.Errorf("swapped normal = (%v,%v), want (%v,%v)", sx, sy, -nx, -ny)
		}
		c.Swapped().Ignore()
		if !c.Ignored() {
			t.Error("ignore on swapped view not shared")
		}
		checked = true
	})
	dropBallOnBrick(w)

	for i := 0; i < 120 && !checked; i++ {
		w.Step(frame)
	}
	if !checked {
		t.Fatal("presolve handler never invoked")
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	w := NewWorld(testConfig())
	ball, brick := dropBallOnBrick(w)
	if w.BodyCount() != 2 {
		t.Fatalf("BodyCount() = %d, want 2", w.BodyCount())
	}

	brick.Destroy()
	brick.Destroy()
	if !brick.Destroyed() {
		t.Error("Destroyed() = false after Destroy()")
	}
	if w.BodyCount() != 1 {
		t.Errorf("BodyCount() = %d after double destroy, want 1", w.BodyCount())
	}

	// Ball now falls through where the brick was
	for i := 0; i < 120; i++ {
		if got := w.Step(frame); len(got) != 0 {
			t.Fatalf("contact reported against destroyed brick")
		}
	}
	if _, y := ball.Position(); y < 11 {
		t.Errorf("ball y = %v, want below the removed brick", y)
	}
}

func TestStepZeroDeltaDoesNothing(t *testing.T) {
	w := NewWorld(testConfig())
	w.Step(0)
	if w.Steps() != 0 {
		t.Errorf("Steps() = %d after zero delta, want 0", w.Steps())
	}
	w.Step(frame)
	if w.Steps() != 1 {
		t.Errorf("Steps() = %d, want 1", w.Steps())
	}
}

func TestStepClampsLongFrames(t *testing.T) {
	clamped := NewWorld(testConfig())
	free := testConfig()
	free.MaxStep = 0
	unclamped := NewWorld(free)

	a := clamped.CreateBody(BodyDef{Kind: Kinematic, Shape: Circle, X: 5, Y: 5, VelX: 1, Radius: 0.25})
	b := unclamped.CreateBody(BodyDef{Kind: Kinematic, Shape: Circle, X: 5, Y: 5, VelX: 1, Radius: 0.25})

	clamped.Step(time.Second)
	unclamped.Step(time.Second)

	ax, _ := a.Position()
	bx, _ := b.Position()
	if ax > 5.06 {
		t.Errorf("clamped x = %v, want <= 5.05", ax)
	}
	if bx < 5.99 {
		t.Errorf("unclamped x = %v, want ~6", bx)
	}
}

func TestCreateBodyPanicsOnZeroSize(t *testing.T) {
	tests := []struct {
		name string
		def  BodyDef
	}{
		{"circle", BodyDef{Kind: Dynamic, Shape: Circle}},
		{"box width", BodyDef{Kind: Static, Shape: Box, Height: 1}},
		{"box height", BodyDef{Kind: Static, Shape: Box, Width: 1}},
		{"unknown kind", BodyDef{Kind: BodyKind(9), Shape: Circle, Radius: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(testConfig())
			defer func() {
				if recover() == nil {
					t.Error("CreateBody did not panic")
				}
			}()
			w.CreateBody(tt.def)
		})
	}
}

func TestUnitConversion(t *testing.T) {
	w := NewWorld(testConfig())
	if got := w.ToPhysics(100); got != 5 {
		t.Errorf("ToPhysics(100) = %v, want 5", got)
	}
	if got := w.ToScreen(5); got != 100 {
		t.Errorf("ToScreen(5) = %v, want 100", got)
	}
}

func TestSetPositionMovesStaticBody(t *testing.T) {
	w := NewWorld(testConfig())
	brick := w.CreateBody(BodyDef{
		Kind: Static, Shape: Box,
		X: 10, Y: 10, Width: 4, Height: 1,
		Restitution: 1, Owner: "brick",
	})
	brick.SetPosition(10, 14)

	if x, y := brick.Position(); x != 10 || y != 14 {
		t.Fatalf("Position() = (%v,%v), want (10,14)", x, y)
	}
	if w.BodyCount() != 1 {
		t.Errorf("BodyCount() = %d after move, want 1", w.BodyCount())
	}
	if brick.Kind() != Static {
		t.Errorf("Kind() = %v, want Static", brick.Kind())
	}

	// A ball falling through the old spot lands on the new one
	ball := w.CreateBody(BodyDef{
		Kind: Dynamic, Shape: Circle,
		X: 10, Y: 7, Radius: 0.25, VelY: 5,
		Restitution: 1, Owner: "ball",
	})
	hit := false
	for i := 0; i < 240 && !hit; i++ {
		hit = len(w.Step(frame)) > 0
	}
	if !hit {
		t.Fatal("ball never reached the moved brick")
	}
	if _, y := ball.Position(); y < 13 {
		t.Errorf("ball hit at y = %v, want the new brick top near 13.5", y)
	}

	brick.Destroy()
	brick.SetPosition(1, 1)
	if w.BodyCount() != 1 {
		t.Errorf("SetPosition on a destroyed body created one: BodyCount() = %d", w.BodyCount())
	}
}

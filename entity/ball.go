package entity

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/physics"
)

// BallConfig holds the ball material and look
type BallConfig struct {
	Radius      float64
	Mass        float64
	Friction    float64
	Restitution float64
	Image       engine.Image
}

// Ball is a dynamic circle launched from the paddle, it leaves play through the open bottom
type Ball struct {
	shell
	cfg    BallConfig
	vx, vy float64
	out    bool
}

// NewBall creates a detached ball centered at x, y with an initial velocity
func NewBall(cfg BallConfig, x, y, vx, vy float64) *Ball {
	return &Ball{
		shell: shell{x: x, y: y, w: 2 * cfg.Radius, h: 2 * cfg.Radius, image: cfg.Image},
		cfg:   cfg,
		vx:    vx,
		vy:    vy,
	}
}

// Attach creates the dynamic body, carrying over the last known velocity
func (b *Ball) Attach(w *physics.World) {
	b.body = w.CreateBody(physics.BodyDef{
		Kind:        physics.Dynamic,
		Shape:       physics.Circle,
		X:           b.x,
		Y:           b.y,
		VelX:        b.vx,
		VelY:        b.vy,
		Radius:      b.cfg.Radius,
		Mass:        b.cfg.Mass,
		Friction:    b.cfg.Friction,
		Restitution: b.cfg.Restitution,
		Owner:       b,
	})
}

// Detach remembers velocity along with position
func (b *Ball) Detach() {
	if b.body != nil {
		b.vx, b.vy = b.body.Velocity()
	}
	b.shell.Detach()
}

// Velocity returns the current linear velocity
func (b *Ball) Velocity() (float64, float64) {
	if b.body != nil {
		return b.body.Velocity()
	}
	return b.vx, b.vy
}

// SetVelocity overrides the linear velocity, kept for the next Attach when detached
func (b *Ball) SetVelocity(vx, vy float64) {
	b.vx, b.vy = vx, vy
	if b.body != nil {
		b.body.SetVelocity(vx, vy)
	}
}

// Radius returns the ball radius
func (b *Ball) Radius() float64 {
	return b.cfg.Radius
}

// Below reports whether the ball center has passed the lower bound
func (b *Ball) Below(bound float64) bool {
	_, y := b.Position()
	return y > bound
}

// MarkOut flags the ball as out of play, returning false if it already was
func (b *Ball) MarkOut() bool {
	if b.out {
		return false
	}
	b.out = true
	return true
}

// Out reports whether the ball has left play
func (b *Ball) Out() bool {
	return b.out
}

// LaunchVelocity returns a random upward-biased direction scaled to speed
// Horizontal component in [-0.5, 0.5), vertical in [-1, 0) before normalization
func LaunchVelocity(rng *rand.Rand, speed float64) (vx, vy float64) {
	x := rng.Float64() - 0.5
	y := rng.Float64() - 1
	mag := math.Hypot(x, y)
	return x / mag * speed, y / mag * speed
}

package entity

import (
	"math"
	"time"

	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/physics"
)

// PaddleConfig holds paddle geometry, speed and travel limits
type PaddleConfig struct {
	Width, Height float64
	Speed         float64 // Units/sec
	Friction      float64
	Restitution   float64

	// MinX and MaxX bound the paddle edges
	MinX, MaxX float64

	// MaxDeflection is the launch angle from vertical, in radians, for a ball striking an edge
	MaxDeflection float64

	Image engine.Image
}

// Paddle is a kinematic box held at a fixed height
// Its velocity comes from movement intent, never from forces
type Paddle struct {
	shell
	cfg PaddleConfig

	left, right bool

	steering bool
	targetX  float64
}

// NewPaddle creates a detached paddle centered at x, y
func NewPaddle(cfg PaddleConfig, x, y float64) *Paddle {
	return &Paddle{
		shell: shell{x: x, y: y, w: cfg.Width, h: cfg.Height, image: cfg.Image},
		cfg:   cfg,
	}
}

// Attach creates the kinematic body
func (p *Paddle) Attach(w *physics.World) {
	p.body = w.CreateBody(physics.BodyDef{
		Kind:        physics.Kinematic,
		Shape:       physics.Box,
		X:           p.x,
		Y:           p.y,
		Width:       p.cfg.Width,
		Height:      p.cfg.Height,
		Friction:    p.cfg.Friction,
		Restitution: p.cfg.Restitution,
		Owner:       p,
	})
}

// MoveLeft sets or clears the left movement flag
func (p *Paddle) MoveLeft(on bool) {
	p.left = on
	p.steering = false
}

// MoveRight sets or clears the right movement flag
func (p *Paddle) MoveRight(on bool) {
	p.right = on
	p.steering = false
}

// SteerTo drives the paddle center toward x until StopSteering or a key press
func (p *Paddle) SteerTo(x float64) {
	p.steering = true
	p.targetX = x
}

// StopSteering cancels pointer steering
func (p *Paddle) StopSteering() {
	p.steering = false
}

// Intent returns the requested horizontal velocity before limits
func (p *Paddle) Intent(dt float64) float64 {
	if p.steering {
		x, _ := p.Position()
		dx := p.targetX - x
		if dt > 0 && math.Abs(dx) <= p.cfg.Speed*dt {
			return dx / dt
		}
		if dx < 0 {
			return -p.cfg.Speed
		}
		return p.cfg.Speed
	}

	switch {
	case p.left && !p.right:
		return -p.cfg.Speed
	case p.right && !p.left:
		return p.cfg.Speed
	default:
		return 0
	}
}

// Update sets the body velocity from intent, limited so the paddle stops at its bounds
func (p *Paddle) Update(delta time.Duration) {
	if p.body == nil {
		return
	}
	dt := delta.Seconds()
	vx := p.Intent(dt)

	x, y := p.body.Position()
	half := p.cfg.Width / 2
	minX, maxX := p.cfg.MinX+half, p.cfg.MaxX-half
	switch {
	case x < minX:
		p.body.SetPosition(minX, y)
		x = minX
	case x > maxX:
		p.body.SetPosition(maxX, y)
		x = maxX
	}

	if dt > 0 {
		vx = math.Max(vx, (minX-x)/dt)
		vx = math.Min(vx, (maxX-x)/dt)
	}
	p.body.SetVelocity(vx, 0)
}

// topContact is the minimum upward share of the paddle-to-ball normal for a bounce
const topContact = 0.5

// Presolve lets balls meeting the side or underside pass through, only the top surface bounces
func (p *Paddle) Presolve(c *physics.Contact, other engine.Entity) {
	if _, ok := other.(*Ball); !ok {
		return
	}
	if _, ny := c.Normal(); ny > -topContact {
		c.Ignore()
	}
}

// Contact aims a bounced ball by where it struck: straight up at the center,
// MaxDeflection from vertical at either edge, speed unchanged
func (p *Paddle) Contact(other engine.Entity) {
	ball, ok := other.(*Ball)
	if !ok {
		return
	}
	vx, vy := ball.Velocity()
	speed := math.Hypot(vx, vy)
	if speed == 0 {
		return
	}

	bx, _ := ball.Position()
	px, _ := p.Position()
	offset := math.Max(-1, math.Min(1, (bx-px)/(p.cfg.Width/2)))
	angle := offset * p.cfg.MaxDeflection
	ball.SetVelocity(speed*math.Sin(angle), -speed*math.Cos(angle))
}

package entity

import (
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/physics"
)

// BrickConfig holds brick geometry, material, hit points and per-tier images
type BrickConfig struct {
	Width, Height float64
	Friction      float64
	Restitution   float64
	HitPoints     HitPoints
	Images        [tierCount]engine.Image
}

// BrokenListener is notified once when a brick is destroyed
type BrokenListener interface {
	Broken(b *Brick)
}

// Brick is a static box holding a damage tier and a hit-point counter
// A tier change rebuilds its body in place within one engine mutation batch
type Brick struct {
	shell
	env      Env
	cfg      *BrickConfig
	listener BrokenListener

	tier      Tier
	hp        int
	destroyed bool
}

// NewBrick creates a detached brick of tier centered at x, y
func NewBrick(env Env, cfg *BrickConfig, tier Tier, x, y float64, listener BrokenListener) *Brick {
	return &Brick{
		shell:    shell{x: x, y: y, w: cfg.Width, h: cfg.Height, image: cfg.Images[tier]},
		env:      env,
		cfg:      cfg,
		listener: listener,
		tier:     tier,
		hp:       cfg.HitPoints.Of(tier),
	}
}

// Attach creates the static body for the current tier
func (b *Brick) Attach(w *physics.World) {
	b.body = w.CreateBody(physics.BodyDef{
		Kind:        physics.Static,
		Shape:       physics.Box,
		X:           b.x,
		Y:           b.y,
		Width:       b.cfg.Width,
		Height:      b.cfg.Height,
		Friction:    b.cfg.Friction,
		Restitution: b.cfg.Restitution,
		Owner:       b,
	})
}

// Tier returns the current damage tier
func (b *Brick) Tier() Tier {
	return b.tier
}

// HitPoints returns the remaining hit points
func (b *Brick) HitPoints() int {
	return b.hp
}

// Breakable reports whether the brick can ever be destroyed
func (b *Brick) Breakable() bool {
	return b.cfg.HitPoints.Of(b.tier) > 0
}

// Destroyed reports whether the brick has broken
func (b *Brick) Destroyed() bool {
	return b.destroyed
}

// Contact takes one hit per ball contact
func (b *Brick) Contact(other engine.Entity) {
	if _, ok := other.(*Ball); ok {
		b.Hit()
	}
}

// Hit applies one point of damage, breaking the brick at zero
// Hits on a destroyed brick are ignored
func (b *Brick) Hit() {
	if b.destroyed {
		return
	}

	tier, hp, destroyed := b.cfg.HitPoints.Damage(b.tier, b.hp)
	if destroyed {
		b.hp = 0
		b.broken()
		return
	}

	if !b.Breakable() {
		b.env.play(engine.SoundSolidHit)
		return
	}

	changed := tier != b.tier
	b.tier, b.hp = tier, hp
	if changed {
		// Swap to the lighter tier's body and image at the same position
		b.image = b.cfg.Images[tier]
		b.env.Engine.Remove(b)
		b.env.Engine.Add(b)
	}
	b.env.play(engine.SoundBrickHit)
}

func (b *Brick) broken() {
	b.destroyed = true
	if b.tier == TierThick {
		b.env.play(engine.SoundHeavyBreak)
	} else {
		b.env.play(engine.SoundBrickBreak)
	}
	b.env.Engine.Remove(b)
	if b.listener != nil {
		b.listener.Broken(b)
	}
}

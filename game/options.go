package game

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/status"
)

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the base logger, each session adds its id field
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.baseLog = l }
}

// WithSound routes cues to p
func WithSound(p engine.SoundPlayer) Option {
	return func(c *Controller) { c.sound = p }
}

// WithImages resolves asset paths through l at entity construction
func WithImages(l engine.ImageLoader) Option {
	return func(c *Controller) { c.images = l }
}

// WithStatus publishes metrics into r
func WithStatus(r *status.Registry) Option {
	return func(c *Controller) { c.metrics = r }
}

// WithRand sets the launch direction source
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithLevelComplete registers fn, called once when the last breakable brick breaks
func WithLevelComplete(fn func(Summary)) Option {
	return func(c *Controller) { c.onComplete = fn }
}

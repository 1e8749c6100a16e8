// Package game runs one breakout session: the field, paddle, level, ball spawning and exit
package game

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/entity"
	"github.com/lixenwraith/breakout/logger"
	"github.com/lixenwraith/breakout/physics"
	"github.com/lixenwraith/breakout/status"
)

// Summary reports a session's counters
type Summary struct {
	Session      string
	Elapsed      time.Duration // Simulated time
	Frames       uint64
	BallsSpawned int
	BallsLost    int
	BricksBroken int
	BricksLeft   int
	Complete     bool
}

// Controller owns the world, entity engine and scheduler of one session
// All methods run on the frame goroutine
type Controller struct {
	cfg config.Config

	baseLog    *zap.Logger
	log        *zap.Logger
	sound      engine.SoundPlayer
	images     engine.ImageLoader
	metrics    *status.Registry
	rng        *rand.Rand
	onComplete func(Summary)

	world  *physics.World
	engine *engine.EntityEngine
	sched  *engine.Scheduler

	ballCfg  entity.BallConfig
	brickCfg *entity.BrickConfig
	paddle   *entity.Paddle
	balls    []*entity.Ball

	spawnTimer *engine.Timer
	session    string
	running    bool
	complete   bool
	elapsed    time.Duration

	ballsSpawned int
	ballsLost    int
	bricksLeft   int
	bricksBroken int

	gauges gauges
}

// gauges are metric pointers cached at construction
type gauges struct {
	frames, entities, contacts *atomic.Int64
	balls, ballsLost           *atomic.Int64
	bricksLeft, bricksBroken   *atomic.Int64
	timers, fired              *atomic.Int64
	complete                   *atomic.Bool
	session                    *status.Text
}

// New validates cfg and builds the field, paddle and level
// Entities are queued and go live on the first Update
func New(cfg config.Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:     cfg,
		baseLog: logger.Nop(),
		sound:   engine.Silent{},
		images:  engine.PathImages{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseLog == nil {
		c.baseLog = logger.Nop()
	}
	if c.sound == nil {
		c.sound = engine.Silent{}
	}
	if c.images == nil {
		c.images = engine.PathImages{}
	}
	if c.metrics == nil {
		c.metrics = status.NewRegistry()
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	c.log = c.baseLog
	c.cacheGauges()

	c.world = physics.NewWorld(physics.Config{
		Width:           cfg.Field.Width,
		Height:          cfg.Field.Height,
		Gravity:         cfg.Field.Gravity,
		UnitsPerPixel:   cfg.Field.UnitsPerPixel,
		MaxStep:         cfg.Physics.MaxStep.Std(),
		Iterations:      cfg.Physics.Iterations,
		WallFriction:    cfg.Physics.WallFriction,
		WallRestitution: cfg.Physics.WallRestitution,
	})
	c.engine = engine.NewEntityEngine(c.world)
	c.sched = engine.NewScheduler()
	env := entity.Env{Engine: c.engine, Sound: c.sound}

	c.ballCfg = entity.BallConfig{
		Radius:      cfg.Ball.Radius,
		Mass:        cfg.Ball.Mass,
		Friction:    cfg.Ball.Friction,
		Restitution: cfg.Ball.Restitution,
		Image:       c.images.Image(cfg.Ball.Image),
	}

	c.paddle = entity.NewPaddle(entity.PaddleConfig{
		Width:         cfg.Paddle.Width,
		Height:        cfg.Paddle.Height,
		Speed:         cfg.Paddle.Speed,
		Friction:      cfg.Paddle.Friction,
		Restitution:   cfg.Paddle.Restitution,
		MinX:          0,
		MaxX:          cfg.Field.Width,
		MaxDeflection: cfg.Paddle.MaxDeflection * math.Pi / 180,
		Image:         c.images.Image(cfg.Paddle.Image),
	}, cfg.Field.Width/2, cfg.Field.Height-cfg.Paddle.BottomOffset)
	c.engine.Add(c.paddle)

	if err := c.buildLevel(env); err != nil {
		return nil, err
	}
	c.publish()
	return c, nil
}

func (c *Controller) buildLevel(env entity.Env) error {
	b := c.cfg.Bricks
	c.brickCfg = &entity.BrickConfig{
		Width:       b.Width,
		Height:      b.Height,
		Friction:    b.Friction,
		Restitution: b.Restitution,
		HitPoints: entity.HitPoints{
			entity.TierNormal:  b.Normal.HitPoints,
			entity.TierThick:   b.Thick.HitPoints,
			entity.TierThicker: b.Thicker.HitPoints,
			entity.TierSolid:   b.Solid.HitPoints,
		},
	}
	c.brickCfg.Images[entity.TierNormal] = c.images.Image(b.Normal.Image)
	c.brickCfg.Images[entity.TierThick] = c.images.Image(b.Thick.Image)
	c.brickCfg.Images[entity.TierThicker] = c.images.Image(b.Thicker.Image)
	c.brickCfg.Images[entity.TierSolid] = c.images.Image(b.Solid.Image)

	placements, err := Layout(c.cfg.Level, b.Width, b.Height)
	if err != nil {
		return err
	}
	for _, p := range placements {
		brick := entity.NewBrick(env, c.brickCfg, p.Tier, p.X, p.Y, c)
		if brick.Breakable() {
			c.bricksLeft++
		}
		c.engine.Add(brick)
	}
	return nil
}

func (c *Controller) cacheGauges() {
	m := c.metrics
	c.gauges = gauges{
		frames:       m.Ints.Get(status.EngineFrames),
		entities:     m.Ints.Get(status.EngineEntities),
		contacts:     m.Ints.Get(status.EngineContacts),
		balls:        m.Ints.Get(status.GameBalls),
		ballsLost:    m.Ints.Get(status.GameBallsLost),
		bricksLeft:   m.Ints.Get(status.GameBricksLeft),
		bricksBroken: m.Ints.Get(status.GameBricksBroken),
		timers:       m.Ints.Get(status.SchedulerTimers),
		fired:        m.Ints.Get(status.SchedulerFired),
		complete:     m.Bools.Get(status.GameComplete),
		session:      m.Texts.Get(status.GameSession),
	}
}

// Start opens a session and schedules the repeating ball spawn, repeated calls are no-ops
func (c *Controller) Start() error {
	if c.running {
		return nil
	}

	c.spawnTimer = c.sched.NewTimer(c.spawnBall)
	if err := c.spawnTimer.ScheduleRepeating(c.cfg.Ball.SpawnInterval.Std()); err != nil {
		return fmt.Errorf("spawn timer: %w", err)
	}

	c.session = uuid.NewString()
	c.log = c.baseLog.With(zap.String("session", c.session))
	c.gauges.session.Set(c.session)
	c.running = true

	c.log.Info("session started",
		zap.Int("bricks", c.bricksLeft),
		zap.Duration("spawn_interval", c.cfg.Ball.SpawnInterval.Std()),
		zap.Int("max_balls", c.cfg.Ball.MaxBalls),
	)
	return nil
}

// Stop cancels every timer and ends the session, the field stays paintable
func (c *Controller) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.spawnTimer.Cancel()
	c.sched.Clear()
	c.publish()

	s := c.Summary()
	c.log.Info("session stopped",
		zap.Duration("elapsed", s.Elapsed),
		zap.Uint64("frames", s.Frames),
		zap.Int("balls_spawned", s.BallsSpawned),
		zap.Int("balls_lost", s.BallsLost),
		zap.Int("bricks_broken", s.BricksBroken),
		zap.Int("bricks_left", s.BricksLeft),
		zap.Bool("complete", s.Complete),
	)
}

// Update advances one frame without painting
func (c *Controller) Update(delta time.Duration) {
	c.Frame(delta, nil)
}

// Frame runs the engine update, ball exit sweep, paint and scheduler update in that order
// A nil renderer skips painting
func (c *Controller) Frame(delta time.Duration, r engine.Renderer) {
	c.elapsed += delta
	c.engine.Update(delta)
	c.sweepBalls()
	c.engine.Paint(delta, r)
	c.sched.Update(delta)
	c.publish()
}

// Paint hands every live entity to r
func (c *Controller) Paint(delta time.Duration, r engine.Renderer) {
	c.engine.Paint(delta, r)
}

// sweepBalls removes balls that left the field, the bottom is open so this is the only exit
func (c *Controller) sweepBalls() {
	live := c.balls[:0]
	for _, b := range c.balls {
		if c.inField(b) {
			live = append(live, b)
			continue
		}
		if !b.MarkOut() {
			continue
		}
		c.engine.Remove(b)
		c.ballsLost++
		c.sound.Play(engine.SoundBallOut)

		x, y := b.Position()
		c.log.Debug("ball out", zap.Float64("x", x), zap.Float64("y", y), zap.Int("lost", c.ballsLost))
	}
	clear(c.balls[len(live):])
	c.balls = live
}

// inField is false once the center passes the lower bound or tunnels through a side wall
func (c *Controller) inField(b *entity.Ball) bool {
	x, _ := b.Position()
	return !b.Below(c.cfg.Field.Height) && x >= 0 && x <= c.cfg.Field.Width
}

// spawnBall launches a ball just above the paddle center
func (c *Controller) spawnBall() {
	if !c.running || c.complete {
		return
	}
	if limit := c.cfg.Ball.MaxBalls; limit > 0 && len(c.balls) >= limit {
		return
	}

	px, py := c.paddle.Position()
	y := py - c.cfg.Paddle.Height/2 - c.cfg.Ball.Radius - c.cfg.Ball.SpawnGap
	vx, vy := entity.LaunchVelocity(c.rng, c.cfg.Ball.LaunchSpeed)

	ball := entity.NewBall(c.ballCfg, px, y, vx, vy)
	c.engine.Add(ball)
	c.balls = append(c.balls, ball)
	c.ballsSpawned++
}

// Broken counts a destroyed brick and completes the level on the last breakable one
func (c *Controller) Broken(b *entity.Brick) {
	c.bricksLeft--
	c.bricksBroken++

	x, y := b.Position()
	c.log.Debug("brick broken",
		zap.Stringer("tier", b.Tier()),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Int("left", c.bricksLeft),
	)

	if c.bricksLeft == 0 && !c.complete {
		c.completeLevel()
	}
}

func (c *Controller) completeLevel() {
	c.complete = true
	if c.spawnTimer != nil {
		c.spawnTimer.Cancel()
	}
	c.sound.Play(engine.SoundLevelComplete)

	s := c.Summary()
	c.log.Info("level complete",
		zap.Duration("elapsed", s.Elapsed),
		zap.Int("balls_spawned", s.BallsSpawned),
		zap.Int("balls_lost", s.BallsLost),
	)
	if c.onComplete != nil {
		c.onComplete(s)
	}
}

func (c *Controller) publish() {
	g := c.gauges
	g.frames.Store(int64(c.engine.Frames()))
	g.entities.Store(int64(c.engine.Len()))
	g.contacts.Store(int64(c.engine.Dispatched()))
	g.balls.Store(int64(len(c.balls)))
	g.ballsLost.Store(int64(c.ballsLost))
	g.bricksLeft.Store(int64(c.bricksLeft))
	g.bricksBroken.Store(int64(c.bricksBroken))
	g.timers.Store(int64(c.sched.Len()))
	g.fired.Store(int64(c.sched.Fired()))
	g.complete.Store(c.complete)
}

// Summary returns the current session counters
func (c *Controller) Summary() Summary {
	return Summary{
		Session:      c.session,
		Elapsed:      c.elapsed,
		Frames:       c.engine.Frames(),
		BallsSpawned: c.ballsSpawned,
		BallsLost:    c.ballsLost,
		BricksBroken: c.bricksBroken,
		BricksLeft:   c.bricksLeft,
		Complete:     c.complete,
	}
}

// Balls returns the active ball count, balls still queued for addition included
func (c *Controller) Balls() int {
	return len(c.balls)
}

// BricksLeft returns the breakable bricks still standing
func (c *Controller) BricksLeft() int {
	return c.bricksLeft
}

// Running reports whether a session is open
func (c *Controller) Running() bool {
	return c.running
}

// Complete reports whether every breakable brick has broken
func (c *Controller) Complete() bool {
	return c.complete
}

// Session returns the current session id, empty before Start
func (c *Controller) Session() string {
	return c.session
}

// Engine returns the entity engine
func (c *Controller) Engine() *engine.EntityEngine {
	return c.engine
}

// Scheduler returns the session scheduler
func (c *Controller) Scheduler() *engine.Scheduler {
	return c.sched
}

// World returns the physics world
func (c *Controller) World() *physics.World {
	return c.world
}

// Paddle returns the paddle entity
func (c *Controller) Paddle() *entity.Paddle {
	return c.paddle
}

// Metrics returns the registry the controller publishes into
func (c *Controller) Metrics() *status.Registry {
	return c.metrics
}

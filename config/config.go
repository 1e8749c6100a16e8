// Package config loads game settings from YAML over the built-in defaults
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/breakout/logger"
	"github.com/lixenwraith/breakout/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete game configuration
type Config struct {
	Field   FieldConfig   `yaml:"field"`
	Physics PhysicsConfig `yaml:"physics"`
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Bricks  BricksConfig  `yaml:"bricks"`
	Level   LevelConfig   `yaml:"level"`
	Log     logger.Config `yaml:"log"`
}

// FieldConfig is the play field in physical units
type FieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	UnitsPerPixel float64 `yaml:"units_per_pixel"`
	Gravity       float64 `yaml:"gravity"`
}

// PhysicsConfig tunes the frame driver and solver
type PhysicsConfig struct {
	FrameInterval   Duration `yaml:"frame_interval"`
	MaxStep         Duration `yaml:"max_step"`
	Iterations      uint     `yaml:"iterations"`
	WallFriction    float64  `yaml:"wall_friction"`
	WallRestitution float64  `yaml:"wall_restitution"`
}

// BallConfig is the ball material, launch and spawn policy
type BallConfig struct {
	Radius        float64  `yaml:"radius"`
	Mass          float64  `yaml:"mass"`
	Friction      float64  `yaml:"friction"`
	Restitution   float64  `yaml:"restitution"`
	LaunchSpeed   float64  `yaml:"launch_speed"`
	SpawnInterval Duration `yaml:"spawn_interval"`
	SpawnGap      float64  `yaml:"spawn_gap"`
	MaxBalls      int      `yaml:"max_balls"` // 0 = unlimited
	Image         string   `yaml:"image"`
}

// PaddleConfig is the paddle geometry, speed and bounce
type PaddleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	Friction      float64 `yaml:"friction"`
	Restitution   float64 `yaml:"restitution"`
	MaxDeflection float64 `yaml:"max_deflection"` // Degrees from vertical at the edge
	BottomOffset  float64 `yaml:"bottom_offset"`
	Image         string  `yaml:"image"`
}

// TierConfig is one brick tier, hit points 0 = indestructible
type TierConfig struct {
	HitPoints int    `yaml:"hit_points"`
	Image     string `yaml:"image"`
}

// BricksConfig is the shared brick geometry and material plus per-tier settings
type BricksConfig struct {
	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	Friction    float64    `yaml:"friction"`
	Restitution float64    `yaml:"restitution"`
	Normal      TierConfig `yaml:"normal"`
	Thick       TierConfig `yaml:"thick"`
	Thicker     TierConfig `yaml:"thicker"`
	Solid       TierConfig `yaml:"solid"`
}

// LevelConfig is a grid of tier glyphs placed from the top-left origin
type LevelConfig struct {
	Rows    []string `yaml:"rows"`
	OriginX float64  `yaml:"origin_x"`
	OriginY float64  `yaml:"origin_y"`
}

// Duration is a time.Duration written as a Go duration string in YAML
type Duration time.Duration

// Std returns the value as time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML parses strings like "500ms"
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string: %w", node.Line, err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes the duration string form
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:         parameter.FieldWidth,
			Height:        parameter.FieldHeight,
			UnitsPerPixel: parameter.UnitsPerPixel,
			Gravity:       parameter.Gravity,
		},
		Physics: PhysicsConfig{
			FrameInterval:   Duration(parameter.FrameUpdateInterval),
			MaxStep:         Duration(parameter.MaxPhysicsStep),
			Iterations:      parameter.SolverIterations,
			WallFriction:    parameter.WallFriction,
			WallRestitution: parameter.WallRestitution,
		},
		Ball: BallConfig{
			Radius:        parameter.BallRadius,
			Mass:          parameter.BallMass,
			Friction:      parameter.BallFriction,
			Restitution:   parameter.BallRestitution,
			LaunchSpeed:   parameter.BallLaunchSpeed,
			SpawnInterval: Duration(parameter.BallSpawnInterval),
			SpawnGap:      parameter.BallSpawnGap,
			MaxBalls:      parameter.BallMaxActive,
			Image:         parameter.BallImage,
		},
		Paddle: PaddleConfig{
			Width:         parameter.PaddleWidth,
			Height:        parameter.PaddleHeight,
			Speed:         parameter.PaddleSpeed,
			Friction:      parameter.PaddleFriction,
			Restitution:   parameter.PaddleRestitution,
			MaxDeflection: parameter.PaddleMaxDeflection,
			BottomOffset:  parameter.PaddleBottomOffset,
			Image:         parameter.PaddleImage,
		},
		Bricks: BricksConfig{
			Width:       parameter.BrickWidth,
			Height:      parameter.BrickHeight,
			Friction:    parameter.BrickFriction,
			Restitution: parameter.BrickRestitution,
			Normal:      TierConfig{HitPoints: parameter.NormalHitPoints, Image: parameter.NormalBrickImage},
			Thick:       TierConfig{HitPoints: parameter.ThickHitPoints, Image: parameter.ThickBrickImage},
			Thicker:     TierConfig{HitPoints: parameter.ThickerHitPoints, Image: parameter.ThickerBrickImage},
			Solid:       TierConfig{HitPoints: parameter.SolidHitPoints, Image: parameter.SolidBrickImage},
		},
		Level: LevelConfig{
			Rows:    append([]string(nil), parameter.DefaultLevel...),
			OriginX: parameter.LevelOriginX,
			OriginY: parameter.LevelOriginY,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load reads path over the defaults and validates the result
// Keys missing from the file keep their default, unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode overlays the YAML document read from r onto cfg, an empty document leaves cfg unchanged
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

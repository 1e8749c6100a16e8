package config

import (
	"fmt"

	"github.com/lixenwraith/breakout/parameter"
)

// Validate checks every section, the first failure is returned wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"field.width", c.Field.Width > 0},
		{"field.height", c.Field.Height > 0},
		{"field.units_per_pixel", c.Field.UnitsPerPixel > 0},
		{"field.gravity", c.Field.Gravity >= 0},
		{"physics.frame_interval", c.Physics.FrameInterval > 0},
		{"physics.max_step", c.Physics.MaxStep >= 0},
		{"ball.radius", c.Ball.Radius > 0},
		{"ball.mass", c.Ball.Mass > 0},
		{"ball.launch_speed", c.Ball.LaunchSpeed > 0},
		{"ball.spawn_interval", c.Ball.SpawnInterval > 0},
		{"ball.max_balls", c.Ball.MaxBalls >= 0},
		{"paddle.width", c.Paddle.Width > 0 && c.Paddle.Width <= c.Field.Width},
		{"paddle.height", c.Paddle.Height > 0},
		{"paddle.speed", c.Paddle.Speed > 0},
		{"paddle.max_deflection", c.Paddle.MaxDeflection >= 0 && c.Paddle.MaxDeflection < 90},
		{"paddle.bottom_offset", c.Paddle.BottomOffset > 0 && c.Paddle.BottomOffset < c.Field.Height},
		{"bricks.width", c.Bricks.Width > 0},
		{"bricks.height", c.Bricks.Height > 0},
		{"bricks.normal.hit_points", c.Bricks.Normal.HitPoints >= 0},
		{"bricks.thick.hit_points", c.Bricks.Thick.HitPoints >= 0},
		{"bricks.thicker.hit_points", c.Bricks.Thicker.HitPoints >= 0},
		{"bricks.solid.hit_points", c.Bricks.Solid.HitPoints >= 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalidConfig, chk.name)
		}
	}

	if err := c.validateLevel(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// validateLevel requires known glyphs, a grid inside the field and at least one breakable brick
func (c Config) validateLevel() error {
	breakable := 0
	for row, line := range c.Level.Rows {
		right := c.Level.OriginX + float64(len(line))*c.Bricks.Width
		if c.Level.OriginX < 0 || right > c.Field.Width {
			return fmt.Errorf("%w: level row %d exceeds field width", ErrInvalidConfig, row)
		}
		for col, glyph := range line {
			hp, ok := c.glyphHitPoints(glyph)
			if !ok {
				return fmt.Errorf("%w: level row %d col %d: unknown glyph %q", ErrInvalidConfig, row, col, glyph)
			}
			if hp > 0 {
				breakable++
			}
		}
	}

	bottom := c.Level.OriginY + float64(len(c.Level.Rows))*c.Bricks.Height
	paddleTop := c.Field.Height - c.Paddle.BottomOffset - c.Paddle.Height/2
	if c.Level.OriginY < 0 || bottom > paddleTop {
		return fmt.Errorf("%w: level overlaps the paddle lane", ErrInvalidConfig)
	}
	if breakable == 0 {
		return fmt.Errorf("%w: level has no breakable bricks", ErrInvalidConfig)
	}
	return nil
}

// glyphHitPoints maps a level glyph to its tier's hit points, gaps report 0
func (c Config) glyphHitPoints(glyph rune) (int, bool) {
	switch glyph {
	case parameter.GlyphNormal:
		return c.Bricks.Normal.HitPoints, true
	case parameter.GlyphThick:
		return c.Bricks.Thick.HitPoints, true
	case parameter.GlyphThicker:
		return c.Bricks.Thicker.HitPoints, true
	case parameter.GlyphSolid:
		return c.Bricks.Solid.HitPoints, true
	case parameter.GlyphEmpty:
		return 0, true
	default:
		return 0, false
	}
}

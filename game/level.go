package game

import (
	"fmt"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/entity"
	"github.com/lixenwraith/breakout/parameter"
)

// Placement is one brick of a level layout, centered at X, Y
type Placement struct {
	Tier entity.Tier
	X, Y float64
}

// TierForGlyph maps a level glyph to its tier, ok is false for gaps and unknown glyphs
func TierForGlyph(glyph rune) (entity.Tier, bool) {
	switch glyph {
	case parameter.GlyphNormal:
		return entity.TierNormal, true
	case parameter.GlyphThick:
		return entity.TierThick, true
	case parameter.GlyphThicker:
		return entity.TierThicker, true
	case parameter.GlyphSolid:
		return entity.TierSolid, true
	default:
		return 0, false
	}
}

// Layout places the level rows on a grid of brick-sized cells from the level origin
func Layout(level config.LevelConfig, brickW, brickH float64) ([]Placement, error) {
	var out []Placement
	for row, line := range level.Rows {
		for col, glyph := range []rune(line) {
			if glyph == parameter.GlyphEmpty {
				continue
			}
			tier, ok := TierForGlyph(glyph)
			if !ok {
				return nil, fmt.Errorf("%w: level row %d col %d: unknown glyph %q", config.ErrInvalidConfig, row, col, glyph)
			}
			out = append(out, Placement{
				Tier: tier,
				X:    level.OriginX + (float64(col)+0.5)*brickW,
				Y:    level.OriginY + (float64(row)+0.5)*brickH,
			})
		}
	}
	return out, nil
}

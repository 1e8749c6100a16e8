package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/parameter"
)

// Glyph is the terminal stand-in for an image, one rune repeated over the sprite's cells
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Glyphs resolves image paths to glyphs and implements engine.ImageLoader
type Glyphs map[string]Glyph

// DefaultGlyphs covers every built-in image path
func DefaultGlyphs() Glyphs {
	base := tcell.StyleDefault.Background(RgbBackground)
	return Glyphs{
		parameter.BallImage:         {'●', base.Foreground(RgbBall)},
		parameter.PaddleImage:       {'▀', base.Foreground(RgbPaddle)},
		parameter.NormalBrickImage:  {'▒', base.Foreground(RgbBrickNormal)},
		parameter.ThickBrickImage:   {'▓', base.Foreground(RgbBrickThick)},
		parameter.ThickerBrickImage: {'█', base.Foreground(RgbBrickThicker)},
		parameter.SolidBrickImage:   {'█', base.Foreground(RgbBrickSolid)},
	}
}

// Image returns the glyph for path, a magenta '?' for unknown paths
func (g Glyphs) Image(path string) engine.Image {
	if glyph, ok := g[path]; ok {
		return glyph
	}
	return Glyph{Rune: '?', Style: tcell.StyleDefault.Foreground(RgbUnknown)}
}

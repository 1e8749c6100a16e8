package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray
	RgbBall       = tcell.NewRGBColor(255, 255, 255) // White
	RgbPaddle     = tcell.NewRGBColor(125, 207, 255) // Light cyan

	RgbBrickNormal  = tcell.NewRGBColor(158, 206, 106) // Green
	RgbBrickThick   = tcell.NewRGBColor(224, 175, 104) // Amber
	RgbBrickThicker = tcell.NewRGBColor(247, 118, 142) // Red-pink
	RgbBrickSolid   = tcell.NewRGBColor(120, 120, 120) // Gray

	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbUnknown    = tcell.NewRGBColor(255, 0, 255)   // Magenta marks a missing glyph
)

package parameter

// Brick geometry and material
const (
	BrickWidth       = 2.0
	BrickHeight      = 1.0
	BrickFriction    = 0.1
	BrickRestitution = 1.2
)

// Hit points per damage tier, 0 = indestructible
const (
	NormalHitPoints  = 1
	ThickHitPoints   = 1
	ThickerHitPoints = 2
	SolidHitPoints   = 0
)

// Brick images per tier
const (
	NormalBrickImage  = "images/bricks/normal.png"
	ThickBrickImage   = "images/bricks/thick.png"
	ThickerBrickImage = "images/bricks/thicker.png"
	SolidBrickImage   = "images/bricks/solid.png"
)

// Level layout glyphs
const (
	GlyphNormal  = 'n'
	GlyphThick   = 't'
	GlyphThicker = 'T'
	GlyphSolid   = 's'
	GlyphEmpty   = '.'
)

// Level origin is the top-left corner of the brick grid
const (
	LevelOriginX = 1.0
	LevelOriginY = 2.0
)

// DefaultLevel is the layout used when no level is configured
var DefaultLevel = []string{
	"TTTTTTTTTTTT",
	"tttttttttttt",
	"nnnnnnnnnnnn",
	"nnss.nn.ssnn",
}

package parameter

// Play field in physical units, origin top-left, Y grows downward
const (
	FieldWidth  = 26.0
	FieldHeight = 16.0

	// UnitsPerPixel is the physical-to-screen scale (32 screen units per physical unit)
	UnitsPerPixel = 1.0 / 32.0

	// Gravity is the downward acceleration in units/sec²
	Gravity = 0.1
)

// Boundary material
// The solver multiplies restitution of both shapes, so walls use 1.0 to let the ball's value govern
const (
	WallFriction    = 0.0
	WallRestitution = 1.0
)

package parameter

import "time"

// Frame Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame driver interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxPhysicsStep clamps one integration step
	MaxPhysicsStep = 50 * time.Millisecond

	// SolverIterations is the contact solver iteration count per step
	SolverIterations = 10

	// KeyReleaseDelay emulates key-up on terminals that only report presses
	// Longer than the typical auto-repeat interval so a held key stays down
	KeyReleaseDelay = 120 * time.Millisecond
)

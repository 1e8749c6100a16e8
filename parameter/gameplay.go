package parameter

import "time"

// Ball
const (
	BallRadius      = 0.25
	BallMass        = 1.0
	BallFriction    = 0.0
	BallRestitution = 1.0

	// BallLaunchSpeed is the speed of a freshly spawned ball in units/sec
	BallLaunchSpeed = 5.0

	// BallSpawnInterval is the period of the repeating spawn timer
	BallSpawnInterval = 500 * time.Millisecond

	// BallSpawnGap separates a new ball from the paddle top
	BallSpawnGap = 0.05

	// BallMaxActive caps concurrently active balls, 0 = unlimited
	BallMaxActive = 0

	BallImage = "images/ball.png"
)

// Paddle
const (
	PaddleWidth       = 3.0
	PaddleHeight      = 0.5
	PaddleSpeed       = 10.0
	PaddleRestitution = 1.0
	PaddleFriction    = 0.0

	// PaddleMaxDeflection is the bounce angle from vertical, in degrees, at the paddle edge
	PaddleMaxDeflection = 60.0

	// PaddleBottomOffset is the distance from the field bottom to the paddle center
	PaddleBottomOffset = 1.0

	PaddleImage = "images/paddle.png"
)

package game

// Key is a movement key understood by the controller
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// KeyDown starts paddle movement
func (c *Controller) KeyDown(k Key) {
	c.setKey(k, true)
}

// KeyUp stops paddle movement in that direction
func (c *Controller) KeyUp(k Key) {
	c.setKey(k, false)
}

func (c *Controller) setKey(k Key, down bool) {
	switch k {
	case KeyLeft:
		c.paddle.MoveLeft(down)
	case KeyRight:
		c.paddle.MoveRight(down)
	}
}

// PointerStart begins steering the paddle toward the pointer, x and y are screen units
func (c *Controller) PointerStart(x, y float64) {
	c.paddle.SteerTo(c.world.ToPhysics(x))
}

// PointerDrag moves the steering target
func (c *Controller) PointerDrag(x, y float64) {
	c.paddle.SteerTo(c.world.ToPhysics(x))
}

// PointerEnd stops steering, the paddle halts where it is
func (c *Controller) PointerEnd(x, y float64) {
	c.paddle.StopSteering()
}

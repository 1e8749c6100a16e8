package entity

import (
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/physics"
)

// Env is what entities need from the session that owns them
type Env struct {
	Engine engine.Mutator
	Sound  engine.SoundPlayer
}

func (env Env) play(s engine.Sound) {
	if env.Sound != nil {
		env.Sound.Play(s)
	}
}

// shell carries the state shared by every physical entity
// Position lives in the body while attached and in x, y otherwise
type shell struct {
	body  *physics.Body
	x, y  float64
	w, h  float64
	image engine.Image
}

// Position returns the center in physical units
func (s *shell) Position() (float64, float64) {
	if s.body != nil {
		return s.body.Position()
	}
	return s.x, s.y
}

// SetPosition moves the center, teleporting the body when attached
func (s *shell) SetPosition(x, y float64) {
	s.x, s.y = x, y
	if s.body != nil {
		s.body.SetPosition(x, y)
	}
}

// Angle returns the body rotation
func (s *shell) Angle() float64 {
	if s.body != nil {
		return s.body.Angle()
	}
	return 0
}

// Size returns the bounding box
func (s *shell) Size() (float64, float64) {
	return s.w, s.h
}

// Image returns the image handle
func (s *shell) Image() engine.Image {
	return s.image
}

// Body returns the attached body, nil when detached
func (s *shell) Body() *physics.Body {
	return s.body
}

// Detach stores the last position and destroys the body
func (s *shell) Detach() {
	if s.body == nil {
		return
	}
	s.x, s.y = s.body.Position()
	s.body.Destroy()
	s.body = nil
}

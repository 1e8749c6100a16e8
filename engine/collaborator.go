package engine

// Image is an opaque handle produced by an ImageLoader, the core never inspects it
type Image any

// ImageLoader resolves an asset path to an image handle at entity construction
type ImageLoader interface {
	Image(path string) Image
}

// PathImages is an ImageLoader whose handles are the asset paths themselves
type PathImages struct{}

// Image returns path unchanged
func (PathImages) Image(path string) Image {
	return path
}

// Sprite is what the renderer receives for one entity per frame
type Sprite struct {
	Image         Image
	X, Y          float64 // Center in physical units
	Angle         float64 // Radians
	Width, Height float64
}

// Renderer consumes sprites, it never writes back into the core
type Renderer interface {
	Draw(s Sprite)
}

// Sound identifies a cue emitted by the core
type Sound uint8

const (
	SoundBrickHit Sound = iota
	SoundBrickBreak
	SoundHeavyBreak
	SoundSolidHit
	SoundBallOut
	SoundLevelComplete

	soundCount
)

var soundNames = [soundCount]string{
	SoundBrickHit:      "BrickHit",
	SoundBrickBreak:    "BrickBreak",
	SoundHeavyBreak:    "HeavyBreak",
	SoundSolidHit:      "SolidHit",
	SoundBallOut:       "BallOut",
	SoundLevelComplete: "LevelComplete",
}

// String returns the cue name
func (s Sound) String() string {
	if s < soundCount {
		return soundNames[s]
	}
	return "Unknown"
}

// Sounds lists every cue the core can emit
func Sounds() []Sound {
	list := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		list = append(list, s)
	}
	return list
}

// SoundPlayer plays cues, implementations must not block the frame
type SoundPlayer interface {
	Play(s Sound)
}

// Silent discards every cue
type Silent struct{}

// Play does nothing
func (Silent) Play(Sound) {}

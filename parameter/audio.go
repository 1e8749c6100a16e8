package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the base gain in beep's logarithmic scale (base 2), 0 = unity
	AudioVolume = -1.0
)

// Cue tones
const (
	BrickHitFreq       = 660.0
	BrickHitDuration   = 40 * time.Millisecond
	BrickBreakFreq     = 880.0
	BrickBreakDuration = 60 * time.Millisecond

	// Thick-tier bricks break with a lower, longer tone
	HeavyBreakFreq     = 220.0
	HeavyBreakDuration = 140 * time.Millisecond

	SolidHitFreq     = 110.0
	SolidHitDuration = 30 * time.Millisecond

	BallOutFreq     = 330.0
	BallOutDuration = 200 * time.Millisecond

	LevelCompleteFreq     = 1320.0
	LevelCompleteDuration = 400 * time.Millisecond
)

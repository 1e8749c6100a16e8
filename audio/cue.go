package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/parameter"
)

// Tone is a single enveloped sine cue
type Tone struct {
	Freq     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Gain     float64 // Linear, 1 = full scale
}

const (
	cueAttack  = 3 * time.Millisecond
	cueRelease = 20 * time.Millisecond
)

// Tones maps each engine cue to its tone
var Tones = map[engine.Sound]Tone{
	engine.SoundBrickHit:      {parameter.BrickHitFreq, parameter.BrickHitDuration, cueAttack, cueRelease, 0.5},
	engine.SoundBrickBreak:    {parameter.BrickBreakFreq, parameter.BrickBreakDuration, cueAttack, cueRelease, 0.6},
	engine.SoundHeavyBreak:    {parameter.HeavyBreakFreq, parameter.HeavyBreakDuration, cueAttack, 60 * time.Millisecond, 0.8},
	engine.SoundSolidHit:      {parameter.SolidHitFreq, parameter.SolidHitDuration, cueAttack, cueRelease, 0.4},
	engine.SoundBallOut:       {parameter.BallOutFreq, parameter.BallOutDuration, cueAttack, 120 * time.Millisecond, 0.6},
	engine.SoundLevelComplete: {parameter.LevelCompleteFreq, parameter.LevelCompleteDuration, 10 * time.Millisecond, 200 * time.Millisecond, 0.7},
}

// Streamer builds a finite streamer playing t at rate
func (t Tone) Streamer(rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.0fHz: %w", t.Freq, err)
	}
	shaped := newEnvelope(beep.Take(rate.N(t.Duration), sine), t.Duration, t.Attack, t.Release, rate)
	return gain(shaped, t.Gain), nil
}

// gain wraps s in a base-2 volume, non-positive gain is silent
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining <= e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

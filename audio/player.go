package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/parameter"
)

// Player plays engine cues through the speaker mixer
// Every method is safe before Init and after Close, cues are then dropped
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool

	played  atomic.Int64
	dropped atomic.Int64
}

// NewPlayer creates a player at the default sample rate and volume
func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	return &Player{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2, Volume: parameter.AudioVolume},
	}
}

// Init opens the audio device, repeated calls are no-ops
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Play queues cue s on the mixer without blocking on playback
func (p *Player) Play(s engine.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		p.dropped.Add(1)
		return
	}
	tone, ok := Tones[s]
	if !ok {
		p.dropped.Add(1)
		return
	}
	stream, err := tone.Streamer(p.rate)
	if err != nil {
		p.dropped.Add(1)
		return
	}

	speaker.Lock()
	p.mixer.Add(stream)
	speaker.Unlock()
	p.played.Add(1)
}

// SetVolume sets the master gain in base-2 steps, 0 = unity
func (p *Player) SetVolume(v float64) {
	speaker.Lock()
	p.master.Volume = v
	speaker.Unlock()
}

// Played returns the number of cues handed to the mixer
func (p *Player) Played() int64 {
	return p.played.Load()
}

// Dropped returns the number of cues discarded
func (p *Player) Dropped() int64 {
	return p.dropped.Load()
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

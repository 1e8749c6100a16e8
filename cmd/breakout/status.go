package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/breakout/status"
)

// statusMessage is a transient line shown after the metrics
const statusMessage = "ui.message"

func statusLine(m *status.Registry, paused bool) string {
	line := m.Line(
		status.GameBalls,
		status.GameBallsLost,
		status.GameBricksLeft,
		status.GameBricksBroken,
		status.RenderFPS,
	)
	if paused {
		line += " | paused"
	}
	if msg := m.Texts.Get(statusMessage).Get(); msg != "" {
		line += " | " + msg
	}
	return line
}

// logMetrics writes every metric as one entry, run once at exit
func logMetrics(log *zap.Logger, m *status.Registry) {
	fields := make([]zap.Field, 0, m.Len())
	m.Each(func(name, value string) {
		fields = append(fields, zap.String(name, value))
	})
	log.Info("final metrics", fields...)
}

// fpsMeter publishes frames per second averaged over one-second windows
type fpsMeter struct {
	out    *status.Float
	start  time.Time
	frames int
}

func newFPSMeter(out *status.Float) *fpsMeter {
	return &fpsMeter{out: out}
}

func (f *fpsMeter) tick(now time.Time) {
	if f.start.IsZero() {
		f.start = now
		return
	}
	f.frames++
	if elapsed := now.Sub(f.start); elapsed >= time.Second {
		f.out.Set(float64(f.frames) / elapsed.Seconds())
		f.start = now
		f.frames = 0
	}
}

package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric names published by the game and its frame driver
const (
	EngineFrames   = "engine.frames"
	EngineEntities = "engine.entities"
	EngineContacts = "engine.contacts"

	GameBalls        = "game.balls"
	GameBallsLost    = "game.balls_lost"
	GameBricksLeft   = "game.bricks_left"
	GameBricksBroken = "game.bricks_broken"
	GameComplete     = "game.complete"
	GameSession      = "game.session"

	SchedulerTimers = "scheduler.timers"
	SchedulerFired  = "scheduler.fired"

	RenderFPS = "render.fps"
)

// Registry groups metric tables by value type
// Writers cache pointers at construction, readers snapshot through Range
type Registry struct {
	Ints   *Table[atomic.Int64]
	Bools  *Table[atomic.Bool]
	Floats *Table[Float]
	Texts  *Table[Text]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewTable[atomic.Int64](),
		Bools:  NewTable[atomic.Bool](),
		Floats: NewTable[Float](),
		Texts:  NewTable[Text](),
	}
}

// Len returns the metric count across all tables
func (r *Registry) Len() int {
	return r.Ints.Len() + r.Bools.Len() + r.Floats.Len() + r.Texts.Len()
}

// Line renders the selected metrics as "name=value" pairs in the given order
// Unknown names are skipped
func (r *Registry) Line(names ...string) string {
	var b strings.Builder
	for _, name := range names {
		val, ok := r.value(name)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(shortName(name))
		b.WriteByte('=')
		b.WriteString(val)
	}
	return b.String()
}

// Each calls fn for every metric, ints then bools, floats and texts, each table in name order
func (r *Registry) Each(fn func(name, value string)) {
	r.Ints.Range(func(name string, v *atomic.Int64) {
		fn(name, strconv.FormatInt(v.Load(), 10))
	})
	r.Bools.Range(func(name string, v *atomic.Bool) {
		fn(name, strconv.FormatBool(v.Load()))
	})
	r.Floats.Range(func(name string, v *Float) {
		fn(name, formatFloat(v.Get()))
	})
	r.Texts.Range(func(name string, v *Text) {
		fn(name, v.Get())
	})
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

func (r *Registry) value(name string) (string, bool) {
	switch {
	case r.Ints.Has(name):
		return strconv.FormatInt(r.Ints.Get(name).Load(), 10), true
	case r.Bools.Has(name):
		return strconv.FormatBool(r.Bools.Get(name).Load()), true
	case r.Floats.Has(name):
		return formatFloat(r.Floats.Get(name).Get()), true
	case r.Texts.Has(name):
		return r.Texts.Get(name).Get(), true
	default:
		return "", false
	}
}

// shortName drops the group prefix
func shortName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

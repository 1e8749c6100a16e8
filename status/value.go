package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// Float is an atomic float64 stored as bits, zero value reads 0
type Float struct {
	bits atomic.Uint64
}

// Set stores val
func (f *Float) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the value
func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// MaxTextLen bounds Text values, a session uuid fits
const MaxTextLen = 36

// Text is an atomic string truncated to MaxTextLen, zero value reads ""
type Text struct {
	ptr atomic.Pointer[string]
}

// Set stores val, cutting on a rune boundary
func (t *Text) Set(val string) {
	if len(val) > MaxTextLen {
		cut := MaxTextLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	t.ptr.Store(&val)
}

// Get loads the value
func (t *Text) Get() string {
	if p := t.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

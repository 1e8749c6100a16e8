package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/game"
	"github.com/lixenwraith/breakout/parameter"
	"github.com/lixenwraith/breakout/render"
)

// pointerTarget is the controller surface the router drives
type pointerTarget interface {
	KeyDown(k game.Key)
	KeyUp(k game.Key)
	PointerStart(x, y float64)
	PointerDrag(x, y float64)
	PointerEnd(x, y float64)
}

// inputRouter translates tcell events into controller input
// Terminals report key presses only, so each press arms a one-shot release timer and auto-repeat keeps re-arming it
type inputRouter struct {
	target pointerTarget
	view   *render.Screen

	release  [2]*engine.Timer
	held     [2]bool
	dragging bool
	paused   bool
}

func newInputRouter(ctrl *game.Controller, view *render.Screen) *inputRouter {
	r := &inputRouter{target: ctrl, view: view}
	sched := ctrl.Scheduler()
	for _, k := range []game.Key{game.KeyLeft, game.KeyRight} {
		r.release[k] = sched.NewTimer(func() { r.up(k) })
	}
	return r
}

// key handles a key event and reports whether the game should exit
func (r *inputRouter) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		r.press(game.KeyLeft, game.KeyRight)
	case tcell.KeyRight:
		r.press(game.KeyRight, game.KeyLeft)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'h', 'a':
			r.press(game.KeyLeft, game.KeyRight)
		case 'l', 'd':
			r.press(game.KeyRight, game.KeyLeft)
		case 'p', ' ':
			r.paused = !r.paused
		}
	}
	return false
}

// press holds k down, releases the opposite key and re-arms k's release timer
func (r *inputRouter) press(k, opposite game.Key) {
	if r.held[opposite] {
		r.release[opposite].Cancel()
		r.up(opposite)
	}
	if !r.held[k] {
		r.held[k] = true
		r.target.KeyDown(k)
	}
	// Only fails for a non-positive delay
	_ = r.release[k].Schedule(parameter.KeyReleaseDelay)
}

func (r *inputRouter) up(k game.Key) {
	if !r.held[k] {
		return
	}
	r.held[k] = false
	r.target.KeyUp(k)
}

// mouse steers with the primary button held, the pointer is converted to screen units
func (r *inputRouter) mouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := r.view.CellToScreen(col, row)

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !r.dragging:
		r.dragging = true
		r.target.PointerStart(x, y)
	case pressed:
		r.target.PointerDrag(x, y)
	case r.dragging:
		r.dragging = false
		r.target.PointerEnd(x, y)
	}
}

// Package render draws the play field on a tcell screen
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/engine"
)

// Screen maps the physical field onto terminal cells and implements engine.Renderer
// Layout: one wall row on top, one wall column each side, one status row at the bottom
type Screen struct {
	scr tcell.Screen

	fieldW, fieldH float64
	unitsPerPixel  float64

	// Cells per physical unit, recomputed on Begin
	scaleX, scaleY float64
	cols, rows     int
}

// NewScreen creates a renderer for a field of the given size in physical units
func NewScreen(scr tcell.Screen, fieldW, fieldH, unitsPerPixel float64) *Screen {
	s := &Screen{
		scr:           scr,
		fieldW:        fieldW,
		fieldH:        fieldH,
		unitsPerPixel: unitsPerPixel,
	}
	s.layout()
	return s
}

func (s *Screen) layout() {
	w, h := s.scr.Size()
	s.cols = max(w-2, 1)
	s.rows = max(h-2, 1)
	s.scaleX = float64(s.cols) / s.fieldW
	s.scaleY = float64(s.rows) / s.fieldH
}

// Begin clears the screen and draws the walls, the bottom stays open
func (s *Screen) Begin() {
	s.layout()
	bg := tcell.StyleDefault.Background(RgbBackground)
	wall := bg.Foreground(RgbWall)

	s.scr.SetStyle(bg)
	s.scr.Clear()

	s.scr.SetContent(0, 0, '┌', nil, wall)
	s.scr.SetContent(s.cols+1, 0, '┐', nil, wall)
	for c := 1; c <= s.cols; c++ {
		s.scr.SetContent(c, 0, '─', nil, wall)
	}
	for r := 1; r <= s.rows; r++ {
		s.scr.SetContent(0, r, '│', nil, wall)
		s.scr.SetContent(s.cols+1, r, '│', nil, wall)
	}
}

// Draw fills the cells covered by the sprite's bounding box, at least one cell
// Sprites whose image is not a Glyph are skipped
func (s *Screen) Draw(sp engine.Sprite) {
	glyph, ok := sp.Image.(Glyph)
	if !ok {
		return
	}

	c0, r0 := s.FieldToCell(sp.X-sp.Width/2, sp.Y-sp.Height/2)
	c1, r1 := s.FieldToCell(sp.X+sp.Width/2, sp.Y+sp.Height/2)
	// Right and bottom edges are exclusive
	c1 = max(c0, c1-1)
	r1 = max(r0, r1-1)

	for r := r0; r <= r1; r++ {
		if r < 1 || r > s.rows {
			continue
		}
		for c := c0; c <= c1; c++ {
			if c < 1 || c > s.cols {
				continue
			}
			s.scr.SetContent(c, r, glyph.Rune, nil, glyph.Style)
		}
	}
}

// Status writes text on the bottom row, truncated to the screen width
func (s *Screen) Status(text string) {
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	row := s.rows + 1
	col := 0
	for _, r := range text {
		if col >= s.cols+2 {
			break
		}
		s.scr.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < s.cols+2; col++ {
		s.scr.SetContent(col, row, ' ', nil, style)
	}
}

// End presents the frame
func (s *Screen) End() {
	s.scr.Show()
}

// FieldToCell returns the cell containing the physical point x, y
func (s *Screen) FieldToCell(x, y float64) (col, row int) {
	return 1 + int(math.Floor(x*s.scaleX)), 1 + int(math.Floor(y*s.scaleY))
}

// CellToField returns the physical center of a cell
func (s *Screen) CellToField(col, row int) (x, y float64) {
	return (float64(col-1) + 0.5) / s.scaleX, (float64(row-1) + 0.5) / s.scaleY
}

// CellToScreen returns the center of a cell in screen units, the controller's pointer space
func (s *Screen) CellToScreen(col, row int) (x, y float64) {
	x, y = s.CellToField(col, row)
	return x / s.unitsPerPixel, y / s.unitsPerPixel
}

// Cells returns the play area in cells, walls and status row excluded
func (s *Screen) Cells() (cols, rows int) {
	return s.cols, s.rows
}

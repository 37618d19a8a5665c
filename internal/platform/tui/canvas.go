package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// upperHalf draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = '▀'

// glyph is a text character placed over the pixel layer.
type glyph struct {
	r  rune
	fg core.Color
}

// Canvas rasterizes world-space drawing onto a terminal grid. Each cell
// holds two vertically stacked pixels, so a cols x rows grid has a
// cols x 2*rows pixel resolution. Text is laid out one character per cell.
type Canvas struct {
	worldW, worldH float64
	cols, rows     int
	sx, sy         float64 // Pixels per world unit

	px   []core.Color // cols * 2*rows, row-major
	text []glyph      // cols * rows, zero rune = no text
}

// NewCanvas creates a canvas mapping a worldW x worldH world onto a
// cols x rows cell grid.
func NewCanvas(worldW, worldH float64, cols, rows int) *Canvas {
	c := &Canvas{worldW: worldW, worldH: worldH}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid. Content is discarded.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	c.cols, c.rows = cols, rows
	c.sx = float64(cols) / c.worldW
	c.sy = float64(2*rows) / c.worldH
	c.px = make([]core.Color, cols*2*rows)
	c.text = make([]glyph, cols*rows)
}

// Cols returns the grid width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the grid height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Size returns the world size.
func (c *Canvas) Size() (float64, float64) {
	return c.worldW, c.worldH
}

// Pixel returns the color of pixel (x, y) in the 2x vertical grid.
func (c *Canvas) Pixel(x, y int) core.Color {
	if x < 0 || x >= c.cols || y < 0 || y >= 2*c.rows {
		return core.Color{}
	}
	return c.px[y*c.cols+x]
}

// paint blends col into pixel (x, y). Text in the pixel's cell is hidden
// by opaque paint and tinted by translucent paint.
func (c *Canvas) paint(x, y int, col core.Color) {
	if x < 0 || x >= c.cols || y < 0 || y >= 2*c.rows || col.A == 0 {
		return
	}
	i := y*c.cols + x
	c.px[i] = col.Over(c.px[i])

	g := &c.text[(y/2)*c.cols+x]
	if g.r == 0 {
		return
	}
	if col.A == 255 {
		*g = glyph{}
		return
	}
	// Both pixels of a cell are painted by area fills; tint the glyph once
	if y%2 == 0 {
		g.fg = col.Over(g.fg)
	}
}

// span converts a world interval to the pixel indices whose centers fall
// inside it.
func span(from, to, scale float64, limit int) (int, int) {
	lo := int(math.Ceil(from*scale - 0.5))
	hi := int(math.Ceil(to*scale - 0.5))
	return max(lo, 0), min(hi, limit)
}

// Clear fills every pixel and removes all text.
func (c *Canvas) Clear(col core.Color) {
	col.A = 255
	for i := range c.px {
		c.px[i] = col
	}
	clear(c.text)
}

// FillRect fills r.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	x0, x1 := span(r.X, r.Right(), c.sx, c.cols)
	y0, y1 := span(r.Y, r.Bottom(), c.sy, 2*c.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.paint(x, y, col)
		}
	}
}

// FillRectGradientV fills r with a vertical gradient.
func (c *Canvas) FillRectGradientV(r core.Rect, top, bottom core.Color) {
	if r.H <= 0 {
		return
	}
	x0, x1 := span(r.X, r.Right(), c.sx, c.cols)
	y0, y1 := span(r.Y, r.Bottom(), c.sy, 2*c.rows)
	for y := y0; y < y1; y++ {
		t := ((float64(y)+0.5)/c.sy - r.Y) / r.H
		col := top.Lerp(bottom, t)
		for x := x0; x < x1; x++ {
			c.paint(x, y, col)
		}
	}
}

// FillCircle fills every pixel whose center lies inside the circle.
func (c *Canvas) FillCircle(center core.Vec, radius float64, col core.Color) {
	if radius <= 0 {
		return
	}
	x0, x1 := span(center.X-radius, center.X+radius, c.sx, c.cols)
	y0, y1 := span(center.Y-radius, center.Y+radius, c.sy, 2*c.rows)
	r2 := radius * radius
	for y := y0; y < y1; y++ {
		dy := (float64(y)+0.5)/c.sy - center.Y
		for x := x0; x < x1; x++ {
			dx := (float64(x)+0.5)/c.sx - center.X
			if dx*dx+dy*dy <= r2 {
				c.paint(x, y, col)
			}
		}
	}
}

// DrawText places s on the cell row nearest the middle of its line.
// Terminal text has a single size; size only positions the line.
func (c *Canvas) DrawText(s string, pos core.Vec, size float64, col core.Color) {
	row := int((pos.Y + size/2) * c.sy / 2)
	if row < 0 || row >= c.rows {
		return
	}
	x := int(math.Round(pos.X * c.sx))
	for _, r := range s {
		if x >= 0 && x < c.cols {
			c.text[row*c.cols+x] = glyph{r: r, fg: col}
		}
		x++
	}
}

// MeasureText returns the world width of s, one cell per character.
func (c *Canvas) MeasureText(s string, _ float64) float64 {
	return float64(utf8.RuneCountInString(s)) / c.sx
}

// DrawTexture samples a pixel texture into the grid. Other texture types
// are ignored.
func (c *Canvas) DrawTexture(t core.Texture, opts core.TextureOptions) {
	pt, ok := t.(core.PixelTexture)
	if !ok || !pt.Valid() {
		return
	}
	tw, th := pt.Size()
	b := opts.Bounds()
	x0, x1 := span(b.X, b.Right(), c.sx, c.cols)
	y0, y1 := span(b.Y, b.Bottom(), c.sy, 2*c.rows)
	for y := y0; y < y1; y++ {
		wy := (float64(y) + 0.5) / c.sy
		for x := x0; x < x1; x++ {
			p := core.Vec{X: (float64(x) + 0.5) / c.sx, Y: wy}
			sx, sy, ok := opts.SourcePoint(p, tw, th)
			if !ok {
				continue
			}
			c.paint(x, y, pt.At(sx, sy).Modulate(opts.Tint))
		}
	}
}

// Compose writes the canvas into s, resizing it to the grid.
func (c *Canvas) Compose(s *core.Screen) {
	s.Resize(c.cols, c.rows)
	for row := 0; row < c.rows; row++ {
		for x := 0; x < c.cols; x++ {
			top := c.px[2*row*c.cols+x]
			bottom := c.px[(2*row+1)*c.cols+x]
			if g := c.text[row*c.cols+x]; g.r != 0 {
				s.SetCell(x, row, core.Cell{Rune: g.r, FG: g.fg, BG: top.Lerp(bottom, 0.5)})
				continue
			}
			s.SetCell(x, row, core.Cell{Rune: upperHalf, FG: top, BG: bottom})
		}
	}
}

package desktop

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// glyphScale converts a line height to the em size of the arcade face,
// whose glyphs are square.
const glyphScale = 0.6

// Canvas draws into an ebiten image whose pixels are world units.
type Canvas struct {
	dst  *ebiten.Image
	w, h float64
	face *text.GoTextFaceSource
}

// NewFaceSource parses the bundled arcade font.
func NewFaceSource() (*text.GoTextFaceSource, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("desktop: load font: %w", err)
	}
	return s, nil
}

// NewCanvas creates a canvas for a world of w x h units.
func NewCanvas(w, h float64, face *text.GoTextFaceSource) *Canvas {
	return &Canvas{w: w, h: h, face: face}
}

// Target sets the image drawn into for the current frame.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *Canvas) Clear(col core.Color) {
	col.A = 255
	c.dst.Fill(col)
}

func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if r.W <= 0 || r.H <= 0 || col.A == 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

// FillRectGradientV draws one strip per world unit.
func (c *Canvas) FillRectGradientV(r core.Rect, top, bottom core.Color) {
	if r.H <= 0 {
		return
	}
	for y := 0.0; y < r.H; y++ {
		strip := min(1, r.H-y)
		col := top.Lerp(bottom, (y+strip/2)/r.H)
		vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y+y), float32(r.W), float32(strip), col, false)
	}
}

func (c *Canvas) FillCircle(center core.Vec, radius float64, col core.Color) {
	if radius <= 0 || col.A == 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), col, true)
}

func (c *Canvas) textFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: c.face, Size: size * glyphScale}
}

// DrawText draws s with the arcade face, vertically centered in a line of
// the given size.
func (c *Canvas) DrawText(s string, pos core.Vec, size float64, col core.Color) {
	if c.face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y+size*(1-glyphScale)/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, c.textFace(size), op)
}

func (c *Canvas) MeasureText(s string, size float64) float64 {
	if c.face == nil {
		return 0
	}
	return text.Advance(s, c.textFace(size))
}

// DrawTexture draws a texture loaded by Loader. Other textures are ignored.
func (c *Canvas) DrawTexture(t core.Texture, opts core.TextureOptions) {
	tex, ok := t.(*Texture)
	if !ok || !tex.Valid() {
		return
	}
	tw, th := tex.Size()
	op := &ebiten.DrawImageOptions{GeoM: textureGeoM(opts, tw, th)}
	op.Filter = ebiten.FilterLinear
	if opts.Tint != (core.Color{}) {
		op.ColorScale.ScaleWithColor(opts.Tint)
	}
	c.dst.DrawImage(tex.img, op)
}

// textureGeoM maps texture pixels onto the destination quad: scale to Dst,
// optional vertical flip, then rotation around the pivot.
func textureGeoM(opts core.TextureOptions, tw, th int) ebiten.GeoM {
	var g ebiten.GeoM
	if tw <= 0 || th <= 0 {
		return g
	}
	g.Scale(opts.Dst.W/float64(tw), opts.Dst.H/float64(th))
	if opts.FlipY {
		g.Scale(1, -1)
		g.Translate(0, opts.Dst.H)
	}
	g.Translate(-opts.Origin.X, -opts.Origin.Y)
	g.Rotate(opts.Rotation * math.Pi / 180)
	p := opts.Pivot()
	g.Translate(p.X, p.Y)
	return g
}

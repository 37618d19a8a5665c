// Package raster renders frames into in-memory RGBA images.
// It backs headless snapshots and terminal screenshots.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// bezierCircle is the control point distance for a quarter circle.
const bezierCircle = 0.5522847498

// imageTexture is a texture backed by a decoded image.
type imageTexture interface {
	core.Texture
	Image() image.Image
}

// Drawer renders a frame into a canvas.
type Drawer interface {
	Draw(c core.Canvas)
}

// Canvas is a core.Canvas drawing into an RGBA image.
type Canvas struct {
	img   *image.RGBA
	w, h  float64 // World size
	scale float64 // Pixels per world unit
	face  font.Face
	z     vector.Rasterizer
}

// NewCanvas creates a canvas for a world of w x h units rendered at scale
// pixels per unit.
func NewCanvas(w, h, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Ceil(w * scale))
	ph := int(math.Ceil(h * scale))
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, pw, ph)),
		w:     w,
		h:     h,
		scale: scale,
		face:  basicfont.Face7x13,
	}
}

// Image returns the rendered image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the world size.
func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

// Clear fills the whole image.
func (c *Canvas) Clear(col core.Color) {
	col.A = 255
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// pixelRect converts a world rectangle to clipped image pixels.
func (c *Canvas) pixelRect(r core.Rect) image.Rectangle {
	px := func(v float64) int { return int(math.Round(v * c.scale)) }
	return image.Rect(px(r.X), px(r.Y), px(r.Right()), px(r.Bottom())).Intersect(c.img.Bounds())
}

// FillRect fills r, blending translucent colors.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if col.A == 0 {
		return
	}
	draw.Draw(c.img, c.pixelRect(r), image.NewUniform(col), image.Point{}, draw.Over)
}

// FillRectGradientV fills r row by row from top to bottom.
func (c *Canvas) FillRectGradientV(r core.Rect, top, bottom core.Color) {
	pr := c.pixelRect(r)
	full := r.H * c.scale
	if full <= 0 {
		return
	}
	y0 := r.Y * c.scale
	for y := pr.Min.Y; y < pr.Max.Y; y++ {
		t := (float64(y) + 0.5 - y0) / full
		row := image.Rect(pr.Min.X, y, pr.Max.X, y+1)
		draw.Draw(c.img, row, image.NewUniform(top.Lerp(bottom, t)), image.Point{}, draw.Over)
	}
}

// FillCircle rasterizes an anti-aliased disc.
func (c *Canvas) FillCircle(center core.Vec, radius float64, col core.Color) {
	if radius <= 0 || col.A == 0 {
		return
	}
	cx, cy, r := center.X*c.scale, center.Y*c.scale, radius*c.scale
	box := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r)), int(math.Ceil(cy+r)),
	)
	clip := box.Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}

	// Rasterizer coordinates are relative to the clipped box; the path may
	// extend past it and is clipped by the rasterizer
	x, y := float32(cx-float64(clip.Min.X)), float32(cy-float64(clip.Min.Y))
	rr, k := float32(r), float32(r*bezierCircle)
	c.z.Reset(clip.Dx(), clip.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(x+rr, y)
	c.z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	c.z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	c.z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	c.z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	c.z.ClosePath()
	c.z.Draw(c.img, clip, image.NewUniform(col), image.Point{})
}

// textScale returns the pixel magnification for a line of the given size.
func (c *Canvas) textScale(size float64) float64 {
	return size * c.scale / float64(c.face.Metrics().Height.Ceil())
}

// DrawText renders s with the built-in bitmap face, scaled to size.
func (c *Canvas) DrawText(s string, pos core.Vec, size float64, col core.Color) {
	if s == "" || size <= 0 {
		return
	}
	m := c.face.Metrics()
	adv := font.MeasureString(c.face, s).Ceil()
	line := image.NewRGBA(image.Rect(0, 0, adv, m.Height.Ceil()))
	d := font.Drawer{
		Dst:  line,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(s)

	k := c.textScale(size)
	x0 := int(math.Round(pos.X * c.scale))
	y0 := int(math.Round(pos.Y * c.scale))
	dst := image.Rect(x0, y0, x0+int(math.Round(float64(adv)*k)), y0+int(math.Round(float64(line.Bounds().Dy())*k)))
	draw.NearestNeighbor.Scale(c.img, dst, line, line.Bounds(), draw.Over, nil)
}

// MeasureText returns the width of s in world units.
func (c *Canvas) MeasureText(s string, size float64) float64 {
	adv := font.MeasureString(c.face, s).Ceil()
	return float64(adv) * size / float64(c.face.Metrics().Height.Ceil())
}

// DrawTexture draws an image-backed texture with an affine transform.
// Only the alpha of the tint is applied.
func (c *Canvas) DrawTexture(t core.Texture, opts core.TextureOptions) {
	it, ok := t.(imageTexture)
	if !ok || !it.Valid() {
		return
	}
	src := it.Image()
	sb := src.Bounds()
	tw, th := sb.Dx(), sb.Dy()
	if opts.Dst.W <= 0 || opts.Dst.H <= 0 {
		return
	}

	kx := opts.Dst.W / float64(tw)
	ky := opts.Dst.H / float64(th)
	v0 := opts.Dst.Y
	if opts.FlipY {
		ky = -ky
		v0 = opts.Dst.Bottom()
	}
	p := opts.Pivot()
	sin, cos := math.Sincos(opts.Rotation * math.Pi / 180)
	s := c.scale

	a, b := s*cos*kx, -s*sin*ky
	d, e := s*sin*kx, s*cos*ky
	tx := s * (p.X + cos*(opts.Dst.X-p.X) - sin*(v0-p.Y))
	ty := s * (p.Y + sin*(opts.Dst.X-p.X) + cos*(v0-p.Y))
	// Source coordinates are absolute; shift so the image origin maps to Dst
	tx -= a*float64(sb.Min.X) + b*float64(sb.Min.Y)
	ty -= d*float64(sb.Min.X) + e*float64(sb.Min.Y)

	var dopts *draw.Options
	if opts.Tint.A != 0 && opts.Tint.A != 255 {
		dopts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: opts.Tint.A})}
	}
	draw.ApproxBiLinear.Transform(c.img, f64.Aff3{a, b, tx, d, e, ty}, src, sb, draw.Over, dopts)
}

// Snapshot renders one frame of d at the given scale.
func Snapshot(d Drawer, w, h, scale float64) *image.RGBA {
	c := NewCanvas(w, h, scale)
	d.Draw(c)
	return c.Image()
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, replacing any existing file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("raster: close %s: %w", path, cerr)
		}
	}()
	return EncodePNG(f, img)
}

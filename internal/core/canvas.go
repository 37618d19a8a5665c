package core

import "math"

// Texture is a decoded image owned by a presentation backend.
// An invalid texture is a placeholder for an asset that failed to load;
// drawing code checks Valid every frame and falls back to primitives.
type Texture interface {
	Valid() bool
	Size() (w, h int)
}

// Sound is a short clip played fire-and-forget. Playing an invalid sound
// does nothing.
type Sound interface {
	Valid() bool
	Play()
}

// PixelTexture is a texture whose pixels can be read back, used by
// backends that rasterize textures themselves.
type PixelTexture interface {
	Texture
	// At samples the texture at texture-space pixel coordinates.
	At(sx, sy float64) Color
}

// TextureOptions places a texture on a canvas.
//
// The unrotated texture is stretched over Dst. Rotation is in degrees,
// clockwise on screen, around the pivot Dst.X+Origin.X, Dst.Y+Origin.Y.
// FlipY mirrors the texture vertically before rotation.
type TextureOptions struct {
	Dst      Rect
	Origin   Vec
	Rotation float64
	FlipY    bool
	Tint     Color
}

// Pivot returns the rotation pivot in canvas coordinates.
func (o TextureOptions) Pivot() Vec {
	return Vec{X: o.Dst.X + o.Origin.X, Y: o.Dst.Y + o.Origin.Y}
}

// Bounds returns the axis-aligned bounding box of the drawn quad after
// rotation.
func (o TextureOptions) Bounds() Rect {
	if o.Rotation == 0 {
		return o.Dst
	}
	pivot := o.Pivot()
	sin, cos := math.Sincos(o.Rotation * math.Pi / 180)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4]Vec{
		{X: o.Dst.X, Y: o.Dst.Y},
		{X: o.Dst.Right(), Y: o.Dst.Y},
		{X: o.Dst.X, Y: o.Dst.Bottom()},
		{X: o.Dst.Right(), Y: o.Dst.Bottom()},
	} {
		dx, dy := p.X-pivot.X, p.Y-pivot.Y
		x := pivot.X + dx*cos - dy*sin
		y := pivot.Y + dx*sin + dy*cos
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// SourcePoint maps a canvas point back to texture pixel coordinates for a
// texture of size tw x th. ok is false when p lies outside the drawn quad.
func (o TextureOptions) SourcePoint(p Vec, tw, th int) (sx, sy float64, ok bool) {
	if o.Dst.W <= 0 || o.Dst.H <= 0 || tw <= 0 || th <= 0 {
		return 0, 0, false
	}

	pivot := o.Pivot()
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	if o.Rotation != 0 {
		rad := -o.Rotation * math.Pi / 180
		sin, cos := math.Sincos(rad)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}

	u := pivot.X + dx - o.Dst.X
	v := pivot.Y + dy - o.Dst.Y
	if u < 0 || v < 0 || u >= o.Dst.W || v >= o.Dst.H {
		return 0, 0, false
	}

	sx = u / o.Dst.W * float64(tw)
	sy = v / o.Dst.H * float64(th)
	if o.FlipY {
		sy = float64(th) - sy
		if sy >= float64(th) {
			sy = float64(th) - 1
		}
	}
	return sx, sy, true
}

// Canvas is the drawing surface a frame is rendered into.
// All coordinates are world units; backends scale to their own resolution.
// Colors with alpha below 255 are blended over existing content.
type Canvas interface {
	// Size returns the logical canvas size in world units.
	Size() (w, h float64)

	// Clear fills the whole canvas with an opaque color.
	Clear(c Color)

	FillRect(r Rect, c Color)

	// FillRectGradientV fills r with a vertical gradient from top to bottom.
	FillRectGradientV(r Rect, top, bottom Color)

	FillCircle(center Vec, radius float64, c Color)

	// DrawText draws s with its top-left corner at pos. size is the line
	// height in world units.
	DrawText(s string, pos Vec, size float64, c Color)

	// MeasureText returns the width of s at the given size in world units.
	MeasureText(s string, size float64) float64

	// DrawTexture draws a texture created by the same backend. Invalid or
	// foreign textures are ignored.
	DrawTexture(t Texture, opts TextureOptions)
}

package core

import "fmt"

// Color is a non-premultiplied 8-bit RGBA color.
// It implements color.Color so backends can hand it straight to image APIs.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors for game elements.
var (
	ColorWhite     = Color{255, 255, 255, 255}
	ColorBlack     = Color{0, 0, 0, 255}
	ColorSkyBlue   = Color{102, 191, 255, 255}
	ColorBlue      = Color{0, 121, 241, 255}
	ColorGreen     = Color{0, 228, 48, 255}
	ColorDarkGreen = Color{0, 117, 44, 255}
	ColorBrown     = Color{127, 106, 79, 255}
	ColorDarkBrown = Color{76, 63, 47, 255}
	ColorYellow    = Color{253, 249, 0, 255}
	ColorOrange    = Color{255, 161, 0, 255}
	ColorGold      = Color{255, 203, 0, 255}
	ColorRed       = Color{230, 41, 55, 255}
	ColorLightGray = Color{200, 200, 200, 255}
	ColorGray      = Color{130, 130, 130, 255}
)

// RGBA returns alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 255
	g = uint32(c.G) * a / 255
	b = uint32(c.B) * a / 255
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// Fade returns the color with its alpha scaled to the given opacity (0..1).
func (c Color) Fade(alpha float64) Color {
	c.A = uint8(ClampF(alpha, 0, 1)*255 + 0.5)
	return c
}

// Over composites c over an opaque dst and returns the opaque result.
func (c Color) Over(dst Color) Color {
	if c.A == 255 {
		return c
	}
	a := float64(c.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return Color{mix(c.R, dst.R), mix(c.G, dst.G), mix(c.B, dst.B), 255}
}

// Modulate multiplies c channel-wise by tint, the way textures are tinted.
// A zero tint leaves c unchanged.
func (c Color) Modulate(tint Color) Color {
	if tint == (Color{}) || tint == ColorWhite {
		return c
	}
	mul := func(a, b uint8) uint8 {
		return uint8(uint16(a) * uint16(b) / 255)
	}
	return Color{mul(c.R, tint.R), mul(c.G, tint.G), mul(c.B, tint.B), mul(c.A, tint.A)}
}

// Lerp interpolates between c and other; t=0 yields c, t=1 yields other.
func (c Color) Lerp(other Color, t float64) Color {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{mix(c.R, other.R), mix(c.G, other.G), mix(c.B, other.B), mix(c.A, other.A)}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

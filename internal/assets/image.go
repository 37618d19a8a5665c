package assets

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// ImageTexture is a texture backed by a decoded image in memory.
// It is used by backends that sample pixels themselves (terminal, raster).
type ImageTexture struct {
	img image.Image
}

// NewImageTexture wraps a decoded image.
func NewImageTexture(img image.Image) *ImageTexture {
	return &ImageTexture{img: img}
}

// Valid reports whether the texture has pixels.
func (t *ImageTexture) Valid() bool {
	return t != nil && t.img != nil && !t.img.Bounds().Empty()
}

// Size returns the texture size in pixels.
func (t *ImageTexture) Size() (int, int) {
	if !t.Valid() {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the underlying image.
func (t *ImageTexture) Image() image.Image {
	return t.img
}

// At samples the texture at texture-space coordinates, clamped to the edges.
func (t *ImageTexture) At(sx, sy float64) core.Color {
	b := t.img.Bounds()
	x := core.Clamp(b.Min.X+int(sx), b.Min.X, b.Max.X-1)
	y := core.Clamp(b.Min.Y+int(sy), b.Min.Y, b.Max.Y-1)
	r, g, bl, a := t.img.At(x, y).RGBA()
	if a == 0 {
		return core.Color{}
	}
	// Un-premultiply back to 8-bit straight alpha
	return core.Color{
		R: uint8(r * 0xffff / a >> 8),
		G: uint8(g * 0xffff / a >> 8),
		B: uint8(bl * 0xffff / a >> 8),
		A: uint8(a >> 8),
	}
}

// DecodeImageFile reads and decodes an image file of any registered format.
func DecodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// ImageLoader loads textures as in-memory images and has no audio.
type ImageLoader struct{}

// LoadTexture decodes an image file into an ImageTexture.
func (ImageLoader) LoadTexture(path string) (core.Texture, error) {
	img, err := DecodeImageFile(path)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(img), nil
}

// LoadSound always fails; the game stays silent.
func (ImageLoader) LoadSound(path string) (core.Sound, error) {
	return nil, fmt.Errorf("%s: %w", path, ErrAudioUnsupported)
}

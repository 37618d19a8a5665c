package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/assets"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

func pixel(img *image.RGBA, x, y int) core.Color {
	c := img.RGBAAt(x, y)
	return core.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(100, 50, 2)
	c.Clear(core.ColorBlack)
	c.FillRect(core.NewRect(10, 10, 5, 5), core.ColorRed)

	if b := c.Image().Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("image size = %v, expected 200x100", b)
	}
	if got := pixel(c.Image(), 25, 25); got != core.ColorRed {
		t.Errorf("inside = %+v, expected red", got)
	}
	if got := pixel(c.Image(), 30, 25); got != core.ColorBlack {
		t.Errorf("right of rect = %+v, expected black (exclusive edge)", got)
	}
}

func TestFillRectBlends(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	c.Clear(core.ColorWhite)
	c.FillRect(core.NewRect(0, 0, 10, 10), core.ColorBlack.Fade(0.5))

	got := pixel(c.Image(), 5, 5)
	if got.R < 120 || got.R > 135 || got.A != 255 {
		t.Errorf("half black over white = %+v, expected mid gray", got)
	}
}

func TestFillRectClipped(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	// Must not panic
	c.FillRect(core.NewRect(-20, -20, 100, 5), core.ColorRed)
	c.FillRect(core.NewRect(50, 50, 5, 5), core.ColorRed)
}

func TestGradient(t *testing.T) {
	c := NewCanvas(10, 100, 1)
	c.FillRectGradientV(core.NewRect(0, 0, 10, 100), core.ColorSkyBlue, core.ColorBlue)

	top, bottom := pixel(c.Image(), 5, 0), pixel(c.Image(), 5, 99)
	if top.G < 185 || bottom.G > 125 {
		t.Errorf("gradient ends = %+v / %+v", top, bottom)
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(100, 100, 1)
	c.Clear(core.ColorBlack)
	c.FillCircle(core.Vec{X: 50, Y: 50}, 20, core.ColorYellow)

	if got := pixel(c.Image(), 50, 50); got != core.ColorYellow {
		t.Errorf("center = %+v, expected yellow", got)
	}
	if got := pixel(c.Image(), 50, 75); got != core.ColorBlack {
		t.Errorf("outside = %+v, expected black", got)
	}
	if got := pixel(c.Image(), 66, 66); got != core.ColorBlack {
		t.Errorf("corner of bounding box = %+v, expected black", got)
	}

	// Partially off-canvas circles are clipped
	c.FillCircle(core.Vec{X: 2, Y: 2}, 10, core.ColorRed)
	if got := pixel(c.Image(), 0, 0); got != core.ColorRed {
		t.Errorf("clipped circle = %+v, expected red", got)
	}
}

func TestText(t *testing.T) {
	c := NewCanvas(200, 50, 1)
	c.Clear(core.ColorBlack)

	w1 := c.MeasureText("HELLO", 13)
	w2 := c.MeasureText("HELLO", 26)
	if w1 <= 0 || w2 != 2*w1 {
		t.Errorf("MeasureText = %v / %v, expected proportional to size", w1, w2)
	}

	c.DrawText("HELLO", core.Vec{X: 10, Y: 10}, 26, core.ColorWhite)
	lit := 0
	b := c.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pixel(c.Image(), x, y) == core.ColorWhite {
				lit++
				if x < 10 || y < 10 || float64(x) >= 10+w2 || y >= 36 {
					t.Fatalf("text pixel at (%d,%d) outside its box", x, y)
				}
			}
		}
	}
	if lit == 0 {
		t.Error("no text pixels drawn")
	}
}

func checkerTexture() *assets.ImageTexture {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 255, 255})
	return assets.NewImageTexture(img)
}

func TestDrawTexture(t *testing.T) {
	tex := checkerTexture()

	tests := []struct {
		name      string
		opts      core.TextureOptions
		top, bott color.RGBA
	}{
		{
			name: "plain",
			opts: core.TextureOptions{Dst: core.NewRect(0, 0, 40, 40)},
			top:  color.RGBA{255, 0, 0, 255},
			bott: color.RGBA{0, 0, 255, 255},
		},
		{
			name: "flipped",
			opts: core.TextureOptions{Dst: core.NewRect(0, 0, 40, 40), FlipY: true},
			top:  color.RGBA{0, 0, 255, 255},
			bott: color.RGBA{255, 0, 0, 255},
		},
		{
			name: "half turn",
			opts: core.TextureOptions{Dst: core.NewRect(0, 0, 40, 40), Origin: core.Vec{X: 20, Y: 20}, Rotation: 180},
			top:  color.RGBA{0, 0, 255, 255},
			bott: color.RGBA{255, 0, 0, 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(40, 40, 1)
			c.Clear(core.ColorBlack)
			c.DrawTexture(tex, tt.opts)

			if got := c.Image().RGBAAt(20, 5); got != tt.top {
				t.Errorf("top = %+v, expected %+v", got, tt.top)
			}
			if got := c.Image().RGBAAt(20, 34); got != tt.bott {
				t.Errorf("bottom = %+v, expected %+v", got, tt.bott)
			}
		})
	}
}

func TestDrawTextureIgnoresPlaceholders(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	c.Clear(core.ColorBlack)
	c.DrawTexture(assets.EmptyTexture, core.TextureOptions{Dst: core.NewRect(0, 0, 10, 10)})
	if got := pixel(c.Image(), 5, 5); got != core.ColorBlack {
		t.Errorf("placeholder drew %+v", got)
	}
}

func TestSnapshotWorld(t *testing.T) {
	cfg := config.Default()
	w := flappy.New(cfg, nil, nil)

	img := Snapshot(w, cfg.Screen.Width, cfg.Screen.Height, 0.5)
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("snapshot size = %v", b)
	}
	// Ground strip at the bottom
	if got := pixel(img, 1, 299); got != core.ColorBrown && got != core.ColorDarkBrown {
		t.Errorf("ground pixel = %+v, expected brown", got)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("decode snapshot: %v", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	c := NewCanvas(4, 4, 1)
	c.Clear(core.ColorGold)

	if err := SavePNG(path, c.Image()); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	img, err := assets.DecodeImageFile(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 255 || g>>8 != 203 || b>>8 != 0 {
		t.Errorf("saved pixel = %d,%d,%d, expected gold", r>>8, g>>8, b>>8)
	}

	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), c.Image()); err == nil {
		t.Error("expected error for missing directory")
	}
}

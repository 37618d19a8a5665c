package core

import (
	"math"
	"testing"
)

func TestSourcePointIdentity(t *testing.T) {
	opts := TextureOptions{Dst: NewRect(100, 50, 40, 30)}

	sx, sy, ok := opts.SourcePoint(Vec{X: 120, Y: 65}, 80, 60)
	if !ok {
		t.Fatal("center of quad should map into the texture")
	}
	if sx != 40 || sy != 30 {
		t.Errorf("SourcePoint() = (%v, %v), expected (40, 30)", sx, sy)
	}

	if _, _, ok := opts.SourcePoint(Vec{X: 99, Y: 65}, 80, 60); ok {
		t.Error("point left of quad should not map")
	}
	if _, _, ok := opts.SourcePoint(Vec{X: 140, Y: 65}, 80, 60); ok {
		t.Error("right edge is exclusive")
	}
}

func TestSourcePointFlipY(t *testing.T) {
	opts := TextureOptions{Dst: NewRect(0, 0, 10, 10), FlipY: true}

	_, sy, ok := opts.SourcePoint(Vec{X: 5, Y: 1}, 10, 10)
	if !ok {
		t.Fatal("expected mapping")
	}
	if sy != 9 {
		t.Errorf("flipped sy = %v, expected 9", sy)
	}
}

func TestSourcePointRotation(t *testing.T) {
	// 90 degrees clockwise around the quad center: the texture's top edge
	// ends up on the right side.
	opts := TextureOptions{
		Dst:      NewRect(0, 0, 20, 20),
		Origin:   Vec{X: 10, Y: 10},
		Rotation: 90,
	}

	sx, sy, ok := opts.SourcePoint(Vec{X: 18, Y: 10}, 20, 20)
	if !ok {
		t.Fatal("expected mapping")
	}
	if math.Abs(sx-10) > 1e-9 || math.Abs(sy-2) > 1e-9 {
		t.Errorf("rotated SourcePoint() = (%v, %v), expected (10, 2)", sx, sy)
	}
}

func TestSourcePointDegenerate(t *testing.T) {
	opts := TextureOptions{Dst: NewRect(0, 0, 0, 10)}
	if _, _, ok := opts.SourcePoint(Vec{}, 10, 10); ok {
		t.Error("zero-width quad should never map")
	}
}

func TestTextureBounds(t *testing.T) {
	opts := TextureOptions{Dst: NewRect(10, 10, 40, 20)}
	if opts.Bounds() != opts.Dst {
		t.Errorf("unrotated Bounds() = %+v, expected Dst", opts.Bounds())
	}

	opts.Origin = Vec{X: 20, Y: 10}
	opts.Rotation = 90
	b := opts.Bounds()
	want := NewRect(20, 0, 20, 40)
	if math.Abs(b.X-want.X) > 1e-9 || math.Abs(b.Y-want.Y) > 1e-9 ||
		math.Abs(b.W-want.W) > 1e-9 || math.Abs(b.H-want.H) > 1e-9 {
		t.Errorf("rotated Bounds() = %+v, expected %+v", b, want)
	}
}

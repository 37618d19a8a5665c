package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

type fakeTexture struct {
	closed bool
}

func (t *fakeTexture) Valid() bool      { return true }
func (t *fakeTexture) Size() (int, int) { return 4, 4 }
func (t *fakeTexture) Close() error {
	t.closed = true
	return nil
}

type fakeSound struct {
	plays  int
	closed bool
}

func (s *fakeSound) Valid() bool { return true }
func (s *fakeSound) Play()       { s.plays++ }
func (s *fakeSound) Close() error {
	s.closed = true
	return nil
}

// fakeLoader succeeds for paths containing "ok" and records every attempt.
type fakeLoader struct {
	attempts []string
	textures []*fakeTexture
	sounds   []*fakeSound
}

func (l *fakeLoader) LoadTexture(path string) (core.Texture, error) {
	l.attempts = append(l.attempts, path)
	if !strings.Contains(path, "ok") {
		return nil, errors.New("missing")
	}
	t := &fakeTexture{}
	l.textures = append(l.textures, t)
	return t, nil
}

func (l *fakeLoader) LoadSound(path string) (core.Sound, error) {
	l.attempts = append(l.attempts, path)
	if !strings.Contains(path, "ok") {
		return nil, errors.New("missing")
	}
	s := &fakeSound{}
	l.sounds = append(l.sounds, s)
	return s, nil
}

func TestLoadDegradesIndependently(t *testing.T) {
	loader := &fakeLoader{}
	paths := config.AssetConfig{
		Background: "bg-ok.png",
		Bird:       "bird-missing.png",
		Pipe:       "",
		JumpSound:  "jump-ok.wav",
		ScoreSound: "score-missing.wav",
		CrashSound: "crash-ok.wav",
	}

	set := Load(loader, paths, nil)

	if !set.Background.Valid() {
		t.Error("background should load")
	}
	if set.Bird.Valid() || set.Bird != EmptyTexture {
		t.Error("missing bird should fall back to EmptyTexture")
	}
	if set.Pipe != EmptyTexture {
		t.Error("pipe without a path should fall back to EmptyTexture")
	}
	if !set.Jump.Valid() || !set.Crash.Valid() {
		t.Error("jump and crash sounds should load")
	}
	if set.Score != EmptySound {
		t.Error("missing score sound should fall back to EmptySound")
	}

	// Five paths configured, each attempted exactly once
	if len(loader.attempts) != 5 {
		t.Errorf("expected 5 load attempts, got %d: %v", len(loader.attempts), loader.attempts)
	}
}

func TestEmptySoundIsSilent(t *testing.T) {
	set := Empty()
	// Must not panic
	set.Jump.Play()
	set.Score.Play()
	set.Crash.Play()

	if set.Background.Valid() || set.Bird.Valid() || set.Pipe.Valid() {
		t.Error("Empty() textures should be invalid")
	}
	if w, h := set.Bird.Size(); w != 0 || h != 0 {
		t.Error("EmptyTexture should have zero size")
	}
}

func TestCloseReleasesValidAssets(t *testing.T) {
	loader := &fakeLoader{}
	paths := config.AssetConfig{
		Background: "ok.png",
		Bird:       "ok.png",
		Pipe:       "ok.png",
		JumpSound:  "ok.wav",
	}
	set := Load(loader, paths, nil)

	if err := set.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	for i, tex := range loader.textures {
		if !tex.closed {
			t.Errorf("texture %d not released", i)
		}
	}
	for i, s := range loader.sounds {
		if !s.closed {
			t.Errorf("sound %d not released", i)
		}
	}
	if set.Bird != EmptyTexture || set.Jump != EmptySound {
		t.Error("Close should reset assets to placeholders")
	}

	// Second close is a no-op
	if err := set.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}

func TestImageLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bird.png")

	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.Set(1, 2, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	var loader ImageLoader
	tex, err := loader.LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture() failed: %v", err)
	}
	if w, h := tex.Size(); w != 2 || h != 3 {
		t.Errorf("Size() = %dx%d, expected 2x3", w, h)
	}

	it, ok := tex.(*ImageTexture)
	if !ok {
		t.Fatalf("expected *ImageTexture, got %T", tex)
	}
	if got := it.At(1, 2); got != (core.Color{R: 255, A: 255}) {
		t.Errorf("At(1, 2) = %+v, expected opaque red", got)
	}
	// Out of range samples clamp to the edge
	if got := it.At(10, 10); got != (core.Color{R: 255, A: 255}) {
		t.Errorf("At(10, 10) = %+v, expected clamped opaque red", got)
	}

	if _, err := loader.LoadTexture(filepath.Join(dir, "nope.png")); err == nil {
		t.Error("missing file should fail")
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadTexture(garbage); err == nil {
		t.Error("undecodable file should fail")
	}

	if _, err := loader.LoadSound("jump.wav"); !errors.Is(err, ErrAudioUnsupported) {
		t.Errorf("LoadSound() error = %v, expected ErrAudioUnsupported", err)
	}
}

func TestLoadWithImageLoaderAllMissing(t *testing.T) {
	paths := config.AssetConfig{
		Dir:        t.TempDir(),
		Background: "background.png",
		Bird:       "bird.png",
		Pipe:       "pipe.png",
		JumpSound:  "jump.wav",
		ScoreSound: "score.wav",
		CrashSound: "crash.wav",
	}
	set := Load(ImageLoader{}, paths, nil)
	if set.Background.Valid() || set.Bird.Valid() || set.Pipe.Valid() {
		t.Error("textures should fall back when files are missing")
	}
	if set.Jump.Valid() || set.Score.Valid() || set.Crash.Valid() {
		t.Error("sounds should fall back without audio support")
	}
}

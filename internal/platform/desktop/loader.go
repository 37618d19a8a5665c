package desktop

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/flappy-arcade/internal/assets"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// SampleRate is the audio context rate; clips are resampled to it.
const SampleRate = 44100

// Texture is a GPU image owned by the window backend.
type Texture struct {
	img *ebiten.Image
}

func (t *Texture) Valid() bool {
	return t != nil && t.img != nil
}

func (t *Texture) Size() (int, int) {
	if !t.Valid() {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Close releases the GPU image.
func (t *Texture) Close() error {
	if t.Valid() {
		t.img.Deallocate()
		t.img = nil
	}
	return nil
}

// Sound is a clip with its own player; playing it again restarts it.
type Sound struct {
	player *audio.Player
}

func (s *Sound) Valid() bool {
	return s != nil && s.player != nil
}

func (s *Sound) Play() {
	if !s.Valid() {
		return
	}
	if err := s.player.Rewind(); err != nil {
		return
	}
	s.player.Play()
}

// Close releases the player.
func (s *Sound) Close() error {
	if !s.Valid() {
		return nil
	}
	err := s.player.Close()
	s.player = nil
	return err
}

// Loader loads textures into ebiten images and sounds into players on one
// audio context. A nil context disables audio.
type Loader struct {
	audio *audio.Context
}

// NewLoader creates a loader using ctx for sound playback.
func NewLoader(ctx *audio.Context) *Loader {
	return &Loader{audio: ctx}
}

// LoadTexture decodes an image file and uploads it.
func (l *Loader) LoadTexture(path string) (core.Texture, error) {
	img, err := assets.DecodeImageFile(path)
	if err != nil {
		return nil, err
	}
	return &Texture{img: ebiten.NewImageFromImage(img)}, nil
}

// LoadSound decodes a WAV or Ogg Vorbis file into a player.
func (l *Loader) LoadSound(path string) (core.Sound, error) {
	if l.audio == nil {
		return nil, fmt.Errorf("%s: %w", path, assets.ErrAudioUnsupported)
	}
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("desktop: read %s: %w", path, err)
	}
	stream, err := decode(l.audio.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("desktop: decode %s: %w", path, err)
	}
	player, err := l.audio.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("desktop: player for %s: %w", path, err)
	}
	return &Sound{player: player}, nil
}

type decodeFunc func(sampleRate int, src io.ReadSeeker) (io.ReadSeeker, error)

// decoderFor picks the audio decoder by file extension.
func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return func(rate int, src io.ReadSeeker) (io.ReadSeeker, error) {
			return wav.DecodeWithSampleRate(rate, src)
		}, nil
	case ".ogg", ".oga":
		return func(rate int, src io.ReadSeeker) (io.ReadSeeker, error) {
			return vorbis.DecodeWithSampleRate(rate, src)
		}, nil
	default:
		return nil, fmt.Errorf("desktop: unsupported audio format %q", ext)
	}
}

// Package assets loads the optional textures and sounds of the game.
// Every asset degrades independently: a failed load yields an empty
// placeholder and the game draws primitives or stays silent instead.
package assets

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// ErrAudioUnsupported is returned by loaders of backends that cannot play sound.
var ErrAudioUnsupported = errors.New("assets: audio not supported by this backend")

// ErrNoPath is returned when an asset has no configured file.
var ErrNoPath = errors.New("assets: no path configured")

// Loader decodes asset files for one presentation backend.
type Loader interface {
	LoadTexture(path string) (core.Texture, error)
	LoadSound(path string) (core.Sound, error)
}

type emptyTexture struct{}

func (emptyTexture) Valid() bool      { return false }
func (emptyTexture) Size() (int, int) { return 0, 0 }

type emptySound struct{}

func (emptySound) Valid() bool { return false }
func (emptySound) Play()       {}

// EmptyTexture and EmptySound stand in for assets that failed to load.
var (
	EmptyTexture core.Texture = emptyTexture{}
	EmptySound   core.Sound   = emptySound{}
)

// Set is the full asset set of the game.
type Set struct {
	Background core.Texture
	Bird       core.Texture
	Pipe       core.Texture

	Jump  core.Sound
	Score core.Sound
	Crash core.Sound
}

// Empty returns a set where every asset is a placeholder.
func Empty() *Set {
	return &Set{
		Background: EmptyTexture,
		Bird:       EmptyTexture,
		Pipe:       EmptyTexture,
		Jump:       EmptySound,
		Score:      EmptySound,
		Crash:      EmptySound,
	}
}

// Load attempts every asset exactly once. Failures are logged at debug
// level and replaced with placeholders; Load itself never fails.
func Load(loader Loader, paths config.AssetConfig, logger *log.Logger) *Set {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	texture := func(name, file string) core.Texture {
		path := paths.AssetPath(file)
		if path == "" {
			logger.Debug("asset skipped", "asset", name, "error", ErrNoPath)
			return EmptyTexture
		}
		t, err := loader.LoadTexture(path)
		if err == nil && (t == nil || !t.Valid()) {
			err = errors.New("decoded texture is empty")
		}
		if err != nil {
			logger.Debug("texture unavailable, using fallback", "asset", name, "path", path, "error", err)
			return EmptyTexture
		}
		w, h := t.Size()
		logger.Debug("texture loaded", "asset", name, "path", path, "width", w, "height", h)
		return t
	}

	sound := func(name, file string) core.Sound {
		path := paths.AssetPath(file)
		if path == "" {
			logger.Debug("asset skipped", "asset", name, "error", ErrNoPath)
			return EmptySound
		}
		s, err := loader.LoadSound(path)
		if err == nil && (s == nil || !s.Valid()) {
			err = errors.New("decoded sound is empty")
		}
		if err != nil {
			logger.Debug("sound unavailable, staying silent", "asset", name, "path", path, "error", err)
			return EmptySound
		}
		logger.Debug("sound loaded", "asset", name, "path", path)
		return s
	}

	return &Set{
		Background: texture("background", paths.Background),
		Bird:       texture("bird", paths.Bird),
		Pipe:       texture("pipe", paths.Pipe),
		Jump:       sound("jump", paths.JumpSound),
		Score:      sound("score", paths.ScoreSound),
		Crash:      sound("crash", paths.CrashSound),
	}
}

// Close releases every valid asset that holds backend resources and
// replaces it with its placeholder. It is safe to call more than once.
func (s *Set) Close() error {
	var errs []error
	release := func(v any) {
		if c, ok := v.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for _, t := range []*core.Texture{&s.Background, &s.Bird, &s.Pipe} {
		if *t != nil && (*t).Valid() {
			release(*t)
		}
		*t = EmptyTexture
	}
	for _, snd := range []*core.Sound{&s.Jump, &s.Score, &s.Crash} {
		if *snd != nil && (*snd).Valid() {
			release(*snd)
		}
		*snd = EmptySound
	}
	return errors.Join(errs...)
}

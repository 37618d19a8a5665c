package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate, got %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML differs from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("pipes:\n  speed: 4.5\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Pipes.Speed != 4.5 {
		t.Errorf("speed = %v, expected 4.5", cfg.Pipes.Speed)
	}
	if cfg.Pipes.GapSize != Default().Pipes.GapSize {
		t.Error("keys not present in YAML should keep defaults")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "pipes: [1, 2"},
		{"zero speed", "pipes:\n  speed: 0\n"},
		{"gap larger than margin", "pipes:\n  gap_size: 400\n"},
		{"gap does not fit", "screen:\n  height: 300\n"},
		{"gap as tall as bird", "pipes:\n  gap_size: 30\n"},
		{"bird taller than gap", "bird:\n  height: 250\n"},
		{"inverted rotation", "bird:\n  min_rotation: 90\n"},
		{"ground covers screen", "ground:\n  height: 600\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	_, err := Parse([]byte("pipes:\n  speed: -1\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("validation errors should wrap ErrInvalid, got %v", err)
	}
}

func TestValidateGapMustFitBird(t *testing.T) {
	cfg := Default()
	cfg.Pipes.GapSize = cfg.Bird.Height
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), "bird height") {
		t.Errorf("Validate() = %v, expected a gap/bird height error", err)
	}

	cfg.Pipes.GapSize = cfg.Bird.Height + 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("a gap one unit taller than the bird should validate, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("gravity = %v, expected 0.7", cfg.Physics.Gravity)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != Default() {
		t.Error("marshalled config should parse back to the same values")
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	easy := Default()
	if err := ApplyPreset(&easy, DifficultyEasy); err != nil {
		t.Fatal(err)
	}
	if easy.Pipes.GapSize <= base.Pipes.GapSize || easy.Pipes.Speed >= base.Pipes.Speed {
		t.Errorf("easy should widen the gap and slow pipes, got %+v", easy.Pipes)
	}

	hard := Default()
	if err := ApplyPreset(&hard, DifficultyHard); err != nil {
		t.Fatal(err)
	}
	if hard.Pipes.GapSize >= base.Pipes.GapSize || hard.Pipes.Speed <= base.Pipes.Speed {
		t.Errorf("hard should narrow the gap and speed up pipes, got %+v", hard.Pipes)
	}

	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := Default()
		if err := ApplyPreset(&cfg, preset); err != nil {
			t.Fatal(err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s should stay valid: %v", preset, err)
		}
	}

	cfg := Default()
	if err := ApplyPreset(&cfg, "nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestDerivedGeometry(t *testing.T) {
	cfg := Default()
	if cfg.BirdX() != 200 {
		t.Errorf("BirdX() = %v, expected 200", cfg.BirdX())
	}
	if cfg.GroundY() != 550 {
		t.Errorf("GroundY() = %v, expected 550", cfg.GroundY())
	}
	lo, hi := cfg.GapCenterRange()
	if lo != 150 || hi != 350 {
		t.Errorf("GapCenterRange() = (%v, %v), expected (150, 350)", lo, hi)
	}
}

func TestAssetPath(t *testing.T) {
	a := AssetConfig{Dir: "res"}
	if got := a.AssetPath("bird.png"); got != filepath.Join("res", "bird.png") {
		t.Errorf("AssetPath() = %q", got)
	}
	if got := a.AssetPath(""); got != "" {
		t.Errorf("empty name should stay empty, got %q", got)
	}
	abs := filepath.Join(string(filepath.Separator), "tmp", "x.png")
	if got := a.AssetPath(abs); got != abs {
		t.Errorf("absolute path should be kept, got %q", got)
	}
}

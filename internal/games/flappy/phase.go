package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Mode identifies the UI state of a World.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
	ModeCredits
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeGameOver:
		return "GameOver"
	case ModeCredits:
		return "Credits"
	default:
		return "Unknown"
	}
}

// Input is the per-frame input relevant to the game, already folded from
// raw actions. A click counts as both Jump and Confirm.
type Input struct {
	Jump    bool
	Confirm bool
	Credits bool
	Cancel  bool
}

// InputFromFrame folds backend actions into game input.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Jump:    f.Any(core.ActionJump, core.ActionClick),
		Confirm: f.Any(core.ActionConfirm, core.ActionClick),
		Credits: f.Has(core.ActionCredits),
		Cancel:  f.Has(core.ActionCancel),
	}
}

// phase is the closed set of UI states. Each state owns its update and
// overlay handlers; the unexported methods keep the set sealed.
type phase interface {
	mode() Mode
	update(w *World, in Input, dt float64) phase
	overlay(w *World, c core.Canvas)
}

type menuPhase struct{}

func (menuPhase) mode() Mode { return ModeMenu }

// Confirm and credits are applied in that order, so pressing both in one
// frame resets the session and still lands on the credits screen.
func (menuPhase) update(w *World, in Input, _ float64) phase {
	var next phase = menuPhase{}
	if in.Confirm {
		w.startSession()
		next = playingPhase{}
	}
	if in.Credits {
		next = creditsPhase{}
	}
	return next
}

type playingPhase struct{}

func (playingPhase) mode() Mode { return ModePlaying }

func (playingPhase) update(w *World, in Input, dt float64) phase {
	if w.simulate(in, dt) {
		w.crash()
		return gameOverPhase{}
	}
	return playingPhase{}
}

// gameOverPhase carries the seconds spent on the game-over screen.
type gameOverPhase struct {
	elapsed float64
}

func (gameOverPhase) mode() Mode { return ModeGameOver }

func (p gameOverPhase) update(w *World, in Input, dt float64) phase {
	p.elapsed += dt
	if in.Confirm && p.elapsed >= w.cfg.Timing.GameOverDelay {
		return menuPhase{}
	}
	return p
}

type creditsPhase struct{}

func (creditsPhase) mode() Mode { return ModeCredits }

func (creditsPhase) update(_ *World, in Input, _ float64) phase {
	if in.Confirm || in.Cancel {
		return menuPhase{}
	}
	return creditsPhase{}
}

// Package hud holds the animated state of the heads-up display: the score
// counter and the damage flash.
package hud

import (
	"github.com/automoto/bombarena/engine"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	scoreTweenSeconds = 0.4
	flashSeconds      = 0.5
)

// State counts the displayed score toward the real one and fades a flash
// after every health drop.
type State struct {
	shown      float32
	target     int
	scoreTween *gween.Tween

	lastHealth int
	flash      float32
	flashTween *gween.Tween
}

func New() *State {
	return &State{lastHealth: -1}
}

// Update advances the tweens by dt seconds and retargets them from frame.
func (s *State) Update(frame engine.Frame, dt float32) {
	if frame.Score != s.target {
		s.target = frame.Score
		s.scoreTween = gween.New(s.shown, float32(frame.Score), scoreTweenSeconds, ease.OutQuad)
	}
	if s.scoreTween != nil {
		var done bool
		s.shown, done = s.scoreTween.Update(dt)
		if done {
			s.scoreTween = nil
		}
	}

	if s.lastHealth >= 0 && frame.Health < s.lastHealth {
		s.flashTween = gween.New(1, 0, flashSeconds, ease.OutCubic)
	}
	s.lastHealth = frame.Health
	if s.flashTween != nil {
		var done bool
		s.flash, done = s.flashTween.Update(dt)
		if done {
			s.flashTween = nil
			s.flash = 0
		}
	}
}

// Score is the score currently displayed.
func (s *State) Score() int {
	return int(s.shown + 0.5)
}

// Flash is the damage flash intensity in [0, 1].
func (s *State) Flash() float32 {
	return s.flash
}

package hud

import (
	"testing"

	"github.com/automoto/bombarena/engine"
)

func TestScoreCountsUp(t *testing.T) {
	s := New()
	frame := engine.Frame{Score: 100, Health: 100, MaxHealth: 100}

	s.Update(frame, 0.1)
	if mid := s.Score(); mid <= 0 || mid >= 100 {
		t.Fatalf("score after 0.1s = %d, want strictly between 0 and 100", mid)
	}
	for i := 0; i < 10; i++ {
		s.Update(frame, 0.1)
	}
	if s.Score() != 100 {
		t.Errorf("score settled at %d, want 100", s.Score())
	}
}

func TestFlashOnDamage(t *testing.T) {
	s := New()
	s.Update(engine.Frame{Health: 100, MaxHealth: 100}, 0.016)
	if s.Flash() != 0 {
		t.Fatal("flash without damage")
	}
	s.Update(engine.Frame{Health: 90, MaxHealth: 100}, 0.016)
	if s.Flash() <= 0 {
		t.Fatal("no flash after damage")
	}
	for i := 0; i < 60; i++ {
		s.Update(engine.Frame{Health: 90, MaxHealth: 100}, 0.016)
	}
	if s.Flash() != 0 {
		t.Errorf("flash did not fade: %v", s.Flash())
	}
}

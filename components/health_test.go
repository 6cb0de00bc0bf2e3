package components

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestHealthApplyClamps(t *testing.T) {
	h := HealthData{Current: 100, Max: 100}
	for _, amount := range []int{30, -50, 500, -10, 0, 1000} {
		h.Apply(amount)
		if h.Current < 0 || h.Current > h.Max {
			t.Fatalf("after %d: health %d outside [0,%d]", amount, h.Current, h.Max)
		}
	}
	if !h.Depleted() {
		t.Error("expected depleted health")
	}
}

func TestCollidableRetain(t *testing.T) {
	var c CollidableData
	w := donburi.NewWorld()
	a, b := w.Create(Bomb), w.Create(Bomb)
	c.StandOn(a)
	c.StandOn(a)
	c.StandOn(b)
	if len(c.StandingOn) != 2 {
		t.Fatalf("duplicate exemption recorded: %v", c.StandingOn)
	}
	c.Retain(func(e donburi.Entity) bool { return e == b })
	if c.Exempt(a) || !c.Exempt(b) {
		t.Errorf("retain kept the wrong bombs: %v", c.StandingOn)
	}
}

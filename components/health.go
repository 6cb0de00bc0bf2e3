package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Apply subtracts amount and clamps the result to [0, Max].
// Negative amounts heal.
func (h *HealthData) Apply(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Depleted reports whether health reached zero.
func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()

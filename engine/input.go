package engine

import "github.com/automoto/bombarena/config"

// InputState is a polled snapshot of which controls are held this tick.
type InputState struct {
	held [config.ActionCount]bool
}

// NewInput returns a snapshot with the given actions held.
func NewInput(actions ...config.ActionID) InputState {
	var in InputState
	for _, a := range actions {
		in.Set(a, true)
	}
	return in
}

// Set marks action as held or released.
func (in *InputState) Set(action config.ActionID, held bool) {
	if action <= config.ActionNone || action >= config.ActionCount {
		return
	}
	in.held[action] = held
}

// Held reports whether action is held.
func (in InputState) Held(action config.ActionID) bool {
	if action <= config.ActionNone || action >= config.ActionCount {
		return false
	}
	return in.held[action]
}

// Clear releases every action.
func (in *InputState) Clear() {
	in.held = [config.ActionCount]bool{}
}

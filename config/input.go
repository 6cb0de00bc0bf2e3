package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionPlaceBomb
	ActionCount // Must be last - used for array sizing
)

// MoveActions lists the directional actions in the order movement is applied.
var MoveActions = [...]ActionID{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight}

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveUp:    "up",
	ActionMoveDown:  "down",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionPlaceBomb: "bomb",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

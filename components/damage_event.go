package components

import "github.com/yohamta/donburi"

// DamageEventData is queued during a tick and applied by the combat pass.
type DamageEventData struct {
	Target donburi.Entity
	Amount int
	Lethal bool // Empties health and ignores invulnerability
	Source Kind
}

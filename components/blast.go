package components

import "github.com/yohamta/donburi"

// BlastData is one fire segment. It does not reference the bomb that spawned it.
type BlastData struct {
	Life  Countdown // Phase is the visual stage: unburnt, mid-burn, late-burn
	CellX int
	CellY int
}

var Blast = donburi.NewComponentType[BlastData]()

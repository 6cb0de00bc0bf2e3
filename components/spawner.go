package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// SpawnerData mints enemies at a fixed tick interval.
type SpawnerData struct {
	Timer Countdown
	Rand  *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()

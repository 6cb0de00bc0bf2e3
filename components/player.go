package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing       Direction
	Speed        float64
	BombCooldown Countdown // Placement refused while active
	Invuln       Countdown // Damage-intake throttle
}

var Player = donburi.NewComponentType[PlayerData]()

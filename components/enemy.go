package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Facing Direction
	Speed  float64
}

var Enemy = donburi.NewComponentType[EnemyData]()

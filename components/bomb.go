package components

import "github.com/yohamta/donburi"

type BombData struct {
	Owner  donburi.Entity // Informational only
	Fuse   Countdown
	Radius int // Cells per cardinal direction
	CellX  int
	CellY  int
}

var Bomb = donburi.NewComponentType[BombData]()

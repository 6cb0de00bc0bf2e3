package engine

import "github.com/automoto/bombarena/components"

// Renderable is the visual state of one live entity.
type Renderable struct {
	Kind       components.Kind
	X, Y, W, H float64
	Sprite     string
	Phase      int
}

// Frame is everything the renderer needs for one tick. Entities are ordered
// back to front: walls, bombs, blasts, enemies, player.
type Frame struct {
	Tick           int
	Score          int
	Kills          int
	BombsPlaced    int
	EnemiesSpawned int
	Health         int
	MaxHealth      int
	Terminal       bool
	Entities       []Renderable
}

// Count returns how many entities of kind the frame holds.
func (f Frame) Count(kind components.Kind) int {
	n := 0
	for _, r := range f.Entities {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

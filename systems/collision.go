package systems

import (
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// MoveAxis tentatively moves e by (dx, dy). If the mover then overlaps a wall
// or a bomb it is not standing on, the move is undone exactly and MoveAxis
// returns false. Callers move one axis at a time.
func MoveAxis(sim *engine.Simulation, e *donburi.Entry, dx, dy float64) bool {
	if dx == 0 && dy == 0 {
		return true
	}
	obj := components.Object.Get(e).Object

	obj.X += dx
	obj.Y += dy
	obj.Update()

	if !isBlocked(sim, e, obj) {
		return true
	}

	obj.X -= dx
	obj.Y -= dy
	obj.Update()
	return false
}

func isBlocked(sim *engine.Simulation, e *donburi.Entry, obj *resolv.Object) bool {
	if sim.AnyOverlap(obj, tags.ResolvWall) {
		return true
	}

	var col *components.CollidableData
	if e.HasComponent(components.Collidable) {
		col = components.Collidable.Get(e)
	}
	for _, bomb := range sim.Overlapping(obj, tags.ResolvBomb) {
		if col == nil || !col.Exempt(bomb.Entity()) {
			return true
		}
	}
	return false
}

// ClampToArena keeps obj fully inside the arena.
func ClampToArena(sim *engine.Simulation, obj *resolv.Object) {
	maxX := float64(sim.Config.Arena.PixelWidth()) - obj.W
	maxY := float64(sim.Config.Arena.PixelHeight()) - obj.H

	x, y := obj.X, obj.Y
	if x > maxX {
		x = maxX
	}
	if x < 0 {
		x = 0
	}
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	if x != obj.X || y != obj.Y {
		obj.X, obj.Y = x, y
		obj.Update()
	}
}

// releaseBombs drops standing-on exemptions for bombs e no longer overlaps.
func releaseBombs(sim *engine.Simulation, e *donburi.Entry) {
	if !e.HasComponent(components.Collidable) {
		return
	}
	col := components.Collidable.Get(e)
	if len(col.StandingOn) == 0 {
		return
	}
	obj := components.Object.Get(e).Object
	col.Retain(func(bomb donburi.Entity) bool {
		if !sim.World.Valid(bomb) {
			return false
		}
		be := sim.World.Entry(bomb)
		if sim.IsPending(be) {
			return false
		}
		return engine.Overlaps(obj, components.Object.Get(be).Object)
	})
}

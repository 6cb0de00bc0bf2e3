package factory

import (
	"github.com/automoto/bombarena/archetypes"
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateBomb places a bomb on the cell containing pixel (x, y). It returns
// false without creating anything when the cell lies outside the arena or
// already holds a wall or a bomb. Every mover overlapping the new bomb may
// keep walking off it.
func CreateBomb(sim *engine.Simulation, owner *donburi.Entry, x, y float64) (*donburi.Entry, bool) {
	ac := sim.Config.Arena
	cellX, cellY := CellOf(x, y, ac.CellSize)
	if cellX < 0 || cellY < 0 || cellX >= ac.Width || cellY >= ac.Height {
		return nil, false
	}

	cs := float64(ac.CellSize)
	bx, by := float64(cellX)*cs, float64(cellY)*cs
	if sim.AnyOverlapRect(bx, by, cs, cs, tags.ResolvBomb) || sim.AnyOverlapRect(bx, by, cs, cs, tags.ResolvWall) {
		return nil, false
	}

	bomb := archetypes.Bomb.Spawn(sim.World)

	obj := resolv.NewObject(bx, by, cs, cs, tags.ResolvBomb)
	obj.SetShape(resolv.NewRectangle(0, 0, cs, cs))

	var ownerEnt donburi.Entity
	if owner != nil {
		ownerEnt = owner.Entity()
	}
	components.EntityKind.SetValue(bomb, components.KindBomb)
	components.Bomb.SetValue(bomb, components.BombData{
		Owner:  ownerEnt,
		Fuse:   components.NewCountdown(sim.Config.Bomb.Fuse),
		Radius: sim.Config.Bomb.Radius,
		CellX:  cellX,
		CellY:  cellY,
	})
	components.Sprite.SetValue(bomb, components.SpriteData{ID: components.SpriteBomb})
	sim.Register(bomb, obj)

	for _, mover := range sim.Overlapping(obj, tags.ResolvFlammable) {
		if mover.HasComponent(components.Collidable) {
			components.Collidable.Get(mover).StandOn(bomb.Entity())
		}
	}

	sim.Logger.Debug("bomb placed", "cellX", cellX, "cellY", cellY, "tick", sim.Tick)
	sim.Observer.BombPlaced()
	return bomb, true
}

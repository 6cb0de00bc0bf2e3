package factory

import (
	"github.com/automoto/bombarena/archetypes"
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(sim *engine.Simulation, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(sim.World)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvWall)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	components.EntityKind.SetValue(wall, components.KindWall)
	components.Sprite.SetValue(wall, components.SpriteData{ID: components.SpriteWall})
	sim.Register(wall, obj)

	return wall
}

// CreateWallAtCell places a cell-sized wall on the grid.
func CreateWallAtCell(sim *engine.Simulation, cellX, cellY int) *donburi.Entry {
	cs := float64(sim.Config.Arena.CellSize)
	return CreateWall(sim, float64(cellX)*cs, float64(cellY)*cs, cs, cs)
}

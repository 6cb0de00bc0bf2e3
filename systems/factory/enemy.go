package factory

import (
	"github.com/automoto/bombarena/archetypes"
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy places an enemy centered in the given cell.
func CreateEnemy(sim *engine.Simulation, cellX, cellY int) *donburi.Entry {
	ec := sim.Config.Enemy
	enemy := archetypes.Enemy.Spawn(sim.World)

	x, y := centeredIn(cellX, cellY, sim.Config.Arena.CellSize, ec.Size)
	obj := resolv.NewObject(x, y, ec.Size, ec.Size)
	obj.SetShape(resolv.NewRectangle(0, 0, ec.Size, ec.Size))
	obj.AddTags(tags.ResolvEnemy, tags.ResolvFlammable)

	components.EntityKind.SetValue(enemy, components.KindEnemy)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Facing: components.DirDown,
		Speed:  ec.Speed,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		ID: components.FacingSprite(components.SpriteEnemy, components.DirDown),
	})
	sim.Register(enemy, obj)

	sim.Observer.EnemySpawned()
	return enemy
}

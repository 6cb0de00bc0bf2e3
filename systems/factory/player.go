package factory

import (
	"github.com/automoto/bombarena/archetypes"
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer places the player centered in the given cell.
func CreatePlayer(sim *engine.Simulation, cellX, cellY int) *donburi.Entry {
	pc := sim.Config.Player
	player := archetypes.Player.Spawn(sim.World)

	x, y := centeredIn(cellX, cellY, sim.Config.Arena.CellSize, pc.Size)
	obj := resolv.NewObject(x, y, pc.Size, pc.Size)
	obj.SetShape(resolv.NewRectangle(0, 0, pc.Size, pc.Size))
	obj.AddTags(tags.ResolvPlayer, tags.ResolvFlammable)

	components.EntityKind.SetValue(player, components.KindPlayer)
	components.Player.SetValue(player, components.PlayerData{
		Facing:       components.DirDown,
		Speed:        pc.Speed,
		BombCooldown: components.NewCountdown(0),
		Invuln:       components.NewCountdown(0),
	})
	components.Health.SetValue(player, components.HealthData{
		Current: pc.MaxHealth,
		Max:     pc.MaxHealth,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		ID: components.FacingSprite(components.SpritePlayer, components.DirDown),
	})
	sim.Register(player, obj)

	sim.Logger.Debug("player created", "cellX", cellX, "cellY", cellY)
	return player
}

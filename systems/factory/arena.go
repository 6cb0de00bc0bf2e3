package factory

import (
	"github.com/automoto/bombarena/arena"
	"github.com/automoto/bombarena/engine"
	"github.com/yohamta/donburi"
)

// BuildArena creates the walls of layout, the player and the spawner, in
// that order. It returns the player.
func BuildArena(sim *engine.Simulation, layout arena.Layout) *donburi.Entry {
	for _, c := range layout.Walls {
		CreateWallAtCell(sim, c.X, c.Y)
	}
	player := CreatePlayer(sim, layout.PlayerSpawn.X, layout.PlayerSpawn.Y)
	CreateSpawner(sim)

	sim.Logger.Info("arena built",
		"width", layout.Width, "height", layout.Height, "walls", len(layout.Walls))
	return player
}

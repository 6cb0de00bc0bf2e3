package factory

import (
	"math/rand/v2"

	"github.com/automoto/bombarena/archetypes"
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/yohamta/donburi"
)

// CreateSpawner adds the enemy spawner. Spawn positions come from a PCG
// stream seeded from config, so a session replays identically.
func CreateSpawner(sim *engine.Simulation) *donburi.Entry {
	ec := sim.Config.Enemy
	spawner := archetypes.Spawner.Spawn(sim.World)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Timer: components.NewCountdown(ec.SpawnInterval),
		Rand:  rand.New(rand.NewPCG(ec.Seed, ec.Seed^0x9e3779b97f4a7c15)),
	})
	return spawner
}

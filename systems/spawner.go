package systems

import (
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/systems/factory"
	"github.com/automoto/bombarena/tags"
	"github.com/yohamta/donburi"
)

var spawnBlockers = []string{tags.ResolvWall, tags.ResolvBomb, tags.ResolvBlast, tags.ResolvPlayer}

// UpdateSpawner mints an enemy on a free arena edge cell each time the spawn
// interval elapses. Nothing spawns while the population is at its cap.
func UpdateSpawner(sim *engine.Simulation) {
	e, ok := components.Spawner.First(sim.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(e)
	if _, expired := spawner.Timer.Tick(); !expired {
		return
	}
	spawner.Timer.Reset(sim.Config.Enemy.SpawnInterval)

	if limit := sim.Config.Enemy.MaxAlive; limit > 0 && aliveEnemies(sim) >= limit {
		sim.Logger.Debug("spawn skipped, enemy cap reached", "max", limit)
		return
	}

	ac := sim.Config.Arena
	cs := float64(ac.CellSize)
	for attempt := 0; attempt < sim.Config.Enemy.SpawnAttempts; attempt++ {
		cellX, cellY := edgeCell(spawner, ac.Width, ac.Height)
		x, y := float64(cellX)*cs, float64(cellY)*cs
		if cellBlocked(sim, x, y, cs) {
			continue
		}
		factory.CreateEnemy(sim, cellX, cellY)
		sim.EnemiesSpawned++
		sim.Logger.Debug("enemy spawned", "cellX", cellX, "cellY", cellY, "tick", sim.Tick)
		return
	}
}

// edgeCell picks a random cell on the arena border.
func edgeCell(spawner *components.SpawnerData, w, h int) (int, int) {
	switch spawner.Rand.IntN(4) {
	case 0:
		return spawner.Rand.IntN(w), 0
	case 1:
		return spawner.Rand.IntN(w), h - 1
	case 2:
		return 0, spawner.Rand.IntN(h)
	default:
		return w - 1, spawner.Rand.IntN(h)
	}
}

func cellBlocked(sim *engine.Simulation, x, y, cs float64) bool {
	for _, category := range spawnBlockers {
		if sim.AnyOverlapRect(x, y, cs, cs, category) {
			return true
		}
	}
	return false
}

func aliveEnemies(sim *engine.Simulation) int {
	n := 0
	tags.Enemy.Each(sim.World, func(e *donburi.Entry) {
		if !sim.IsPending(e) {
			n++
		}
	})
	return n
}

package systems

import (
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/systems/factory"
	"github.com/automoto/bombarena/tags"
	"github.com/yohamta/donburi"
)

type detonation struct {
	bomb  *donburi.Entry
	chain bool
}

var rays = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// UpdateBombs runs every fuse and detonates bombs whose fuse ran out or that
// an active blast touches. Blasts from one detonation can set off further
// bombs; the chain is resolved before the system returns.
func UpdateBombs(sim *engine.Simulation) {
	var due []detonation

	tags.Bomb.Each(sim.World, func(e *donburi.Entry) {
		if sim.IsPending(e) {
			return
		}
		bomb := components.Bomb.Get(e)
		bomb.Fuse.Tick()
		if !bomb.Fuse.Active() {
			due = append(due, detonation{bomb: e})
			return
		}
		if sim.AnyOverlap(components.Object.Get(e).Object, tags.ResolvBlast) {
			due = append(due, detonation{bomb: e, chain: true})
		}
	})

	for len(due) > 0 {
		for _, d := range due {
			explode(sim, d.bomb, d.chain)
		}
		due = due[:0]

		tags.Bomb.Each(sim.World, func(e *donburi.Entry) {
			if sim.IsPending(e) {
				return
			}
			if sim.AnyOverlap(components.Object.Get(e).Object, tags.ResolvBlast) {
				due = append(due, detonation{bomb: e, chain: true})
			}
		})
	}
}

// explode spawns the center blast and walks the four rays. A ray stops at
// the arena edge or at the first wall cell.
func explode(sim *engine.Simulation, e *donburi.Entry, chain bool) {
	if sim.IsPending(e) {
		return
	}
	bomb := components.Bomb.Get(e)
	ac := sim.Config.Arena
	cs := float64(ac.CellSize)

	factory.CreateBlast(sim, bomb.CellX, bomb.CellY)
	segments := 1

	for _, r := range rays {
		for step := 1; step <= bomb.Radius; step++ {
			x := bomb.CellX + r[0]*step
			y := bomb.CellY + r[1]*step
			if x < 0 || y < 0 || x >= ac.Width || y >= ac.Height {
				break
			}
			if sim.AnyOverlapRect(float64(x)*cs, float64(y)*cs, cs, cs, tags.ResolvWall) {
				break
			}
			factory.CreateBlast(sim, x, y)
			segments++
		}
	}

	sim.Unregister(e)
	sim.Logger.Debug("bomb detonated",
		"cellX", bomb.CellX, "cellY", bomb.CellY, "chain", chain, "segments", segments, "tick", sim.Tick)
	sim.Observer.BombDetonated(chain, segments)
}

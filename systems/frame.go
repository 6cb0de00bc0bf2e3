package systems

import (
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/tags"
	"github.com/yohamta/donburi"
)

type tagIterator interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

var drawOrder = []tagIterator{tags.Wall, tags.Bomb, tags.Blast, tags.Enemy, tags.Player}

// BuildFrame snapshots every live entity for the renderer, back to front.
func BuildFrame(sim *engine.Simulation) engine.Frame {
	f := engine.Frame{
		Tick:           sim.Tick,
		Score:          sim.Score,
		Kills:          sim.Kills,
		BombsPlaced:    sim.BombsPlaced,
		EnemiesSpawned: sim.EnemiesSpawned,
		Terminal:       sim.Terminal,
	}
	if player, ok := sim.Player(); ok {
		hp := components.Health.Get(player)
		f.Health, f.MaxHealth = hp.Current, hp.Max
	} else {
		f.MaxHealth = sim.Config.Player.MaxHealth
	}

	for _, tag := range drawOrder {
		tag.Each(sim.World, func(e *donburi.Entry) {
			if sim.IsPending(e) {
				return
			}
			f.Entities = append(f.Entities, renderable(e))
		})
	}
	return f
}

func renderable(e *donburi.Entry) engine.Renderable {
	obj := components.Object.Get(e)
	r := engine.Renderable{
		Kind:   *components.EntityKind.Get(e),
		X:      obj.X,
		Y:      obj.Y,
		W:      obj.W,
		H:      obj.H,
		Sprite: components.Sprite.Get(e).ID,
	}
	if e.HasComponent(components.Blast) {
		r.Phase = components.Blast.Get(e).Life.Phase
	}
	return r
}

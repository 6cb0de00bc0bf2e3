package systems

import (
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/systems/factory"
	"github.com/automoto/bombarena/tags"
	"github.com/yohamta/donburi"
)

// UpdateBlasts applies every active blast to the flammable entities it
// overlaps, then advances its lifetime. A blast stays a hazard for its full
// lifetime and removes itself when the lifetime runs out.
func UpdateBlasts(sim *engine.Simulation) {
	var burned []*donburi.Entry

	tags.Blast.Each(sim.World, func(e *donburi.Entry) {
		if sim.IsPending(e) {
			return
		}
		obj := components.Object.Get(e).Object
		burned = append(burned, sim.Overlapping(obj, tags.ResolvFlammable)...)

		blast := components.Blast.Get(e)
		phaseChanged, expired := blast.Life.Tick()
		if phaseChanged {
			components.Sprite.Get(e).ID = factory.BlastSprite(blast.Life.Phase)
		}
		if expired {
			sim.Unregister(e)
		}
	})

	for _, victim := range burned {
		if sim.IsPending(victim) {
			continue
		}
		switch *components.EntityKind.Get(victim) {
		case components.KindPlayer:
			sim.QueueDamage(components.DamageEventData{
				Target: victim.Entity(),
				Lethal: true,
				Source: components.KindBlast,
			})
		case components.KindEnemy:
			killEnemy(sim, victim, components.KindBlast)
		}
	}
}

// killEnemy removes an enemy and credits the kill.
func killEnemy(sim *engine.Simulation, e *donburi.Entry, cause components.Kind) {
	if sim.IsPending(e) {
		return
	}
	sim.Unregister(e)
	sim.Score += sim.Config.Combat.ScorePerKill
	sim.Kills++
	sim.Observer.EnemyKilled(cause)
}

package systems

import (
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/yohamta/donburi"
)

// UpdateCombat applies queued damage events, keeps health within [0, max]
// and moves the player to the terminal state once health is exhausted.
func UpdateCombat(sim *engine.Simulation) {
	for _, dmg := range sim.DrainDamage() {
		if !sim.World.Valid(dmg.Target) {
			continue
		}
		e := sim.World.Entry(dmg.Target)
		if sim.IsPending(e) || !e.HasComponent(components.Health) {
			continue
		}
		hp := components.Health.Get(e)

		var player *components.PlayerData
		if e.HasComponent(components.Player) {
			player = components.Player.Get(e)
		}

		amount := dmg.Amount
		if dmg.Lethal {
			amount = hp.Current
		} else if player != nil && player.Invuln.Active() {
			continue
		}
		if amount <= 0 {
			continue
		}

		before := hp.Current
		hp.Apply(amount)
		if player != nil {
			player.Invuln.Reset(sim.Config.Player.InvulnFrames)
		}
		sim.Logger.Debug("damage applied",
			"source", dmg.Source, "amount", before-hp.Current, "health", hp.Current, "tick", sim.Tick)
		sim.Observer.PlayerDamaged(before - hp.Current)

		if hp.Depleted() && player != nil {
			enterTerminal(sim, e)
		}
	}
}

func enterTerminal(sim *engine.Simulation, e *donburi.Entry) {
	sim.Terminal = true
	sim.Unregister(e)
	sim.Logger.Info("player terminal", "score", sim.Score, "kills", sim.Kills, "tick", sim.Tick)
	sim.Observer.PlayerTerminal(sim.Score)
}

package systems

import "github.com/automoto/bombarena/engine"

// UpdateCleanup purges every entity scheduled for removal during the tick.
// It must run after all other update systems.
func UpdateCleanup(sim *engine.Simulation) {
	if n := sim.Flush(); n > 0 {
		sim.Logger.Debug("entities removed", "count", n, "tick", sim.Tick)
	}
}

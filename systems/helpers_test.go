package systems

import (
	"testing"

	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/config"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/tags"
	"github.com/yohamta/donburi"
)

// newSim returns an empty arena with every update system installed.
func newSim(t *testing.T, tweak func(*config.Config)) *engine.Simulation {
	t.Helper()
	cfg := config.Default()
	if tweak != nil {
		tweak(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	sim := engine.New(cfg)
	sim.AddSystem(UpdatePlayer)
	sim.AddSystem(UpdateBombs)
	sim.AddSystem(UpdateBlasts)
	sim.AddSystem(UpdateEnemies)
	sim.AddSystem(UpdateSpawner)
	sim.AddSystem(UpdateCombat)
	sim.AddSystem(UpdateCleanup)
	return sim
}

func step(sim *engine.Simulation, n int, actions ...config.ActionID) {
	for i := 0; i < n; i++ {
		sim.Input = engine.NewInput(actions...)
		sim.Step()
	}
}

func count(sim *engine.Simulation, tag tagIterator) int {
	n := 0
	tag.Each(sim.World, func(e *donburi.Entry) {
		if !sim.IsPending(e) {
			n++
		}
	})
	return n
}

func blastCells(sim *engine.Simulation) map[[2]int]int {
	cells := make(map[[2]int]int)
	tags.Blast.Each(sim.World, func(e *donburi.Entry) {
		b := components.Blast.Get(e)
		cells[[2]int{b.CellX, b.CellY}]++
	})
	return cells
}

func position(e *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(e)
	return obj.X, obj.Y
}

package factory

import (
	"fmt"

	"github.com/automoto/bombarena/archetypes"
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateBlast places one cell-sized fire segment.
func CreateBlast(sim *engine.Simulation, cellX, cellY int) *donburi.Entry {
	blast := archetypes.Blast.Spawn(sim.World)

	cs := float64(sim.Config.Arena.CellSize)
	obj := resolv.NewObject(float64(cellX)*cs, float64(cellY)*cs, cs, cs, tags.ResolvBlast)
	obj.SetShape(resolv.NewRectangle(0, 0, cs, cs))

	life := components.NewCountdown(sim.Config.Blast.Lifetime, sim.Config.Blast.PhaseThresholds...)
	components.EntityKind.SetValue(blast, components.KindBlast)
	components.Blast.SetValue(blast, components.BlastData{
		Life:  life,
		CellX: cellX,
		CellY: cellY,
	})
	components.Sprite.SetValue(blast, components.SpriteData{ID: BlastSprite(life.Phase)})
	sim.Register(blast, obj)

	return blast
}

// BlastSprite returns the sprite id for a blast phase, e.g. "explosion_1".
func BlastSprite(phase int) string {
	return fmt.Sprintf("%s_%d", components.SpriteBlast, phase+1)
}

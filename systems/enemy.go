package systems

import (
	"math"

	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies moves every enemy toward the player's current center, one
// axis at a time, then resolves enemy contact with the player.
func UpdateEnemies(sim *engine.Simulation) {
	player, ok := sim.Player()
	if !ok {
		return
	}
	targetX, targetY := components.Object.Get(player).CenterXY()
	playerObj := components.Object.Get(player).Object

	var contacts []*donburi.Entry

	tags.Enemy.Each(sim.World, func(e *donburi.Entry) {
		if sim.IsPending(e) {
			return
		}
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)

		cx, cy := obj.CenterXY()
		if dx := pursuitStep(targetX-cx, enemy.Speed); dx != 0 {
			MoveAxis(sim, e, dx, 0)
			enemy.Facing = components.DirRight
			if dx < 0 {
				enemy.Facing = components.DirLeft
			}
		}
		if dy := pursuitStep(targetY-cy, enemy.Speed); dy != 0 {
			MoveAxis(sim, e, 0, dy)
			enemy.Facing = components.DirDown
			if dy < 0 {
				enemy.Facing = components.DirUp
			}
		}
		ClampToArena(sim, obj.Object)
		releaseBombs(sim, e)
		components.Sprite.Get(e).ID = components.FacingSprite(components.SpriteEnemy, enemy.Facing)

		if engine.Overlaps(obj.Object, playerObj) {
			contacts = append(contacts, e)
		}
	})

	// Contact is fatal to the enemy. The player takes damage unless invulnerable.
	for _, e := range contacts {
		if sim.IsPending(e) {
			continue
		}
		killEnemy(sim, e, components.KindPlayer)
		sim.QueueDamage(components.DamageEventData{
			Target: player.Entity(),
			Amount: sim.Config.Combat.ContactDamage,
			Source: components.KindEnemy,
		})
	}
}

// pursuitStep returns the signed step toward delta, never overshooting it.
func pursuitStep(delta, speed float64) float64 {
	step := math.Min(speed, math.Abs(delta))
	if delta < 0 {
		return -step
	}
	return step
}

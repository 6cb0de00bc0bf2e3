package systems

import (
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/config"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/systems/factory"
)

// UpdatePlayer applies the held directions, clamps the player to the arena
// and places a bomb when the action is held and the cooldown has run out.
func UpdatePlayer(sim *engine.Simulation) {
	e, ok := sim.Player()
	if !ok {
		return
	}
	player := components.Player.Get(e)
	obj := components.Object.Get(e)

	player.BombCooldown.Tick()
	player.Invuln.Tick()

	// Each held direction moves and corrects on its own axis, so diagonals
	// slide along walls.
	for _, action := range config.MoveActions {
		if !sim.Input.Held(action) {
			continue
		}
		dir, dx, dy := moveFor(action, player.Speed)
		MoveAxis(sim, e, dx, dy)
		player.Facing = dir
	}
	ClampToArena(sim, obj.Object)
	releaseBombs(sim, e)

	if sim.Input.Held(config.ActionPlaceBomb) && !player.BombCooldown.Active() {
		cx, cy := obj.CenterXY()
		if _, placed := factory.CreateBomb(sim, e, cx, cy); placed {
			player.BombCooldown.Reset(sim.Config.Player.BombCooldown)
			sim.BombsPlaced++
		}
	}

	components.Sprite.Get(e).ID = components.FacingSprite(components.SpritePlayer, player.Facing)
}

func moveFor(action config.ActionID, speed float64) (components.Direction, float64, float64) {
	switch action {
	case config.ActionMoveUp:
		return components.DirUp, 0, -speed
	case config.ActionMoveDown:
		return components.DirDown, 0, speed
	case config.ActionMoveLeft:
		return components.DirLeft, -speed, 0
	default:
		return components.DirRight, speed, 0
	}
}

package components

import "github.com/yohamta/donburi"

// SpriteData names the image the renderer should draw for an entity.
type SpriteData struct {
	ID string
}

var Sprite = donburi.NewComponentType[SpriteData]()

// Sprite ids handed to the renderer
const (
	SpriteWall   = "wall"
	SpriteBomb   = "bomb"
	SpriteBlast  = "explosion"
	SpritePlayer = "player"
	SpriteEnemy  = "spider"
)

// FacingSprite combines a base sprite with a facing, e.g. "player_left".
func FacingSprite(base string, d Direction) string {
	return base + "_" + d.String()
}

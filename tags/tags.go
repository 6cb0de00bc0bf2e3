package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Wall      = donburi.NewTag().SetName("Wall")
	Bomb      = donburi.NewTag().SetName("Bomb")
	Blast     = donburi.NewTag().SetName("Blast")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Flammable = donburi.NewTag().SetName("Flammable")
	Spawner   = donburi.NewTag().SetName("Spawner")
)

// Resolv tags double as registry categories for overlap queries
const (
	ResolvPlayer    = "player"
	ResolvWall      = "walls"
	ResolvBomb      = "bombs"
	ResolvBlast     = "blasts"
	ResolvEnemy     = "enemies"
	ResolvFlammable = "flammable"
)

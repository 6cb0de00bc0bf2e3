package archetypes

import (
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/tags"
	"github.com/yohamta/donburi"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.EntityKind,
		components.Object,
		components.Sprite,
	)
	Bomb = newArchetype(
		tags.Bomb,
		components.Bomb,
		components.EntityKind,
		components.Object,
		components.Sprite,
	)
	Blast = newArchetype(
		tags.Blast,
		components.Blast,
		components.EntityKind,
		components.Object,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		tags.Flammable,
		components.Player,
		components.EntityKind,
		components.Object,
		components.Sprite,
		components.Health,
		components.Collidable,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.Flammable,
		components.Enemy,
		components.EntityKind,
		components.Object,
		components.Sprite,
		components.Collidable,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	return w.Entry(w.Create(all...))
}

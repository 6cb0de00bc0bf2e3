package components

import "github.com/yohamta/donburi"

// Kind is the variant of an entity. Every simulated entity carries exactly one.
type Kind int

const (
	KindWall Kind = iota
	KindBomb
	KindBlast
	KindEnemy
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBomb:
		return "bomb"
	case KindBlast:
		return "blast"
	case KindEnemy:
		return "enemy"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

var EntityKind = donburi.NewComponentType[Kind]()

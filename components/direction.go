package components

// Direction is the facing of a mover; it selects the sprite variant.
type Direction int

const (
	DirDown Direction = iota // front
	DirUp                    // back
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "back"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "front"
	}
}

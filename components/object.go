package components

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// CenterXY returns the midpoint of the bounding box.
func (o ObjectData) CenterXY() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// Cell returns the grid cell containing the bounding box center.
func (o ObjectData) Cell(cellSize int) (int, int) {
	cx, cy := o.CenterXY()
	cs := float64(cellSize)
	return int(math.Floor(cx / cs)), int(math.Floor(cy / cs))
}

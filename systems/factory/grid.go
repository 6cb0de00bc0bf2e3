package factory

import "math"

// CellOf returns the grid cell containing pixel (x, y).
func CellOf(x, y float64, cellSize int) (int, int) {
	cs := float64(cellSize)
	return int(math.Floor(x / cs)), int(math.Floor(y / cs))
}

// SnapToCell returns the center of the grid cell containing (x, y).
func SnapToCell(x, y float64, cellSize int) (float64, float64) {
	cx, cy := CellOf(x, y, cellSize)
	return CellCenter(cx, cy, cellSize)
}

// CellCenter returns the pixel center of a grid cell.
func CellCenter(cellX, cellY, cellSize int) (float64, float64) {
	cs := float64(cellSize)
	return float64(cellX)*cs + cs/2, float64(cellY)*cs + cs/2
}

// centeredIn returns the top-left of a size x size box centered in a cell.
func centeredIn(cellX, cellY, cellSize int, size float64) (float64, float64) {
	cx, cy := CellCenter(cellX, cellY, cellSize)
	return math.Floor(cx - size/2), math.Floor(cy - size/2)
}

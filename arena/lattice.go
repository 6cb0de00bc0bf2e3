package arena

// Lattice returns the wall centers of the fixed obstacle grid for a field of
// fieldW x fieldH pixels. The first wall sits one cell in from the top-left
// corner and walls repeat every second cell while they keep one free cell
// before the far edge. The result is row-major and identical for identical input.
func Lattice(fieldW, fieldH, cellW, cellH int) []Point {
	if cellW <= 0 || cellH <= 0 {
		return nil
	}

	startX := cellW + cellW/2
	startY := cellH + cellH/2

	var centers []Point
	for cy := startY; cy < fieldH-cellH; cy += 2 * cellH {
		for cx := startX; cx < fieldW-cellW; cx += 2 * cellW {
			centers = append(centers, Point{X: cx, Y: cy})
		}
	}
	return centers
}

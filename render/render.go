// Package render draws simulation frames with flat shapes.
package render

import (
	"image/color"

	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	background  = color.RGBA{34, 120, 60, 255}
	wallColor   = color.RGBA{90, 90, 100, 255}
	bombColor   = color.RGBA{20, 20, 20, 255}
	playerColor = color.RGBA{240, 240, 240, 255}
	enemyColor  = color.RGBA{150, 40, 160, 255}

	// Unburnt, mid-burn, late-burn
	blastColors = []color.RGBA{
		{255, 230, 90, 255},
		{255, 150, 40, 255},
		{200, 60, 20, 255},
	}
)

// DrawFrame draws every renderable in frame order.
func DrawFrame(screen *ebiten.Image, frame engine.Frame) {
	screen.Fill(background)
	for _, r := range frame.Entities {
		drawEntity(screen, r)
	}
}

func drawEntity(screen *ebiten.Image, r engine.Renderable) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	switch r.Kind {
	case components.KindWall:
		vector.DrawFilledRect(screen, x, y, w, h, wallColor, false)
	case components.KindBomb:
		vector.DrawFilledCircle(screen, x+w/2, y+h/2, w*0.35, bombColor, true)
	case components.KindBlast:
		vector.DrawFilledRect(screen, x, y, w, h, BlastColor(r.Phase), false)
	case components.KindEnemy:
		vector.DrawFilledRect(screen, x, y, w, h, enemyColor, false)
		drawFacing(screen, r)
	case components.KindPlayer:
		vector.DrawFilledRect(screen, x, y, w, h, playerColor, false)
		drawFacing(screen, r)
	}
}

// drawFacing marks the side a mover faces, read from its sprite suffix.
func drawFacing(screen *ebiten.Image, r engine.Renderable) {
	const mark = 6
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	c := color.RGBA{0, 0, 0, 255}
	switch facingOf(r.Sprite) {
	case components.DirUp:
		vector.DrawFilledRect(screen, x, y, w, mark, c, false)
	case components.DirLeft:
		vector.DrawFilledRect(screen, x, y, mark, h, c, false)
	case components.DirRight:
		vector.DrawFilledRect(screen, x+w-mark, y, mark, h, c, false)
	default:
		vector.DrawFilledRect(screen, x, y+h-mark, w, mark, c, false)
	}
}

// BlastColor returns the fill for a blast phase.
func BlastColor(phase int) color.RGBA {
	if phase < 0 {
		phase = 0
	}
	if phase >= len(blastColors) {
		phase = len(blastColors) - 1
	}
	return blastColors[phase]
}

func facingOf(sprite string) components.Direction {
	for _, d := range []components.Direction{components.DirUp, components.DirLeft, components.DirRight} {
		suffix := "_" + d.String()
		if len(sprite) >= len(suffix) && sprite[len(sprite)-len(suffix):] == suffix {
			return d
		}
	}
	return components.DirDown
}

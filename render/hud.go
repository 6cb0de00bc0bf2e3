package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/fonts"
	"github.com/automoto/bombarena/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

// DrawHUD renders the health bar and the score line in the top-left corner.
func DrawHUD(screen *ebiten.Image, frame engine.Frame, state *hud.State) {
	// Background (dark gray)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	ratio := float32(0)
	if frame.MaxHealth > 0 {
		ratio = float32(frame.Health) / float32(frame.MaxHealth)
	}
	bar := color.RGBA{40, 220, 40, 255}
	if f := state.Flash(); f > 0 {
		bar.R = uint8(40 + 215*f)
	}
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		bar, false)

	label := fmt.Sprintf("Score %d  Kills %d  Bombs %d", state.Score(), frame.Kills, frame.BombsPlaced)
	text.Draw(screen, label, fonts.Regular.Get(), hudMargin+hudBarWidth+hudMargin, hudMargin+hudBarHeight, color.White)
}

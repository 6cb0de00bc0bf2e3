package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

var (
	titleColor = color.RGBA{230, 60, 40, 255}
	bestColor  = color.RGBA{250, 210, 60, 255}
)

// GameOverScene shows the final score. Enter starts a new session.
type GameOverScene struct {
	session      *Session
	sceneChanger SceneChanger
	final        engine.Frame
	newBest      bool
}

func NewGameOverScene(sc SceneChanger, session *Session, final engine.Frame, newBest bool) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, session: session, final: final, newBest: newBest}
}

func (gs *GameOverScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		gs.sceneChanger.ChangeScene(NewArenaScene(gs.sceneChanger, gs.session))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	w := screen.Bounds().Dx()
	drawCentered(screen, "GAME OVER", fonts.Title.Get(), w, 160, titleColor)
	drawCentered(screen, fmt.Sprintf("Score %d   Kills %d", gs.final.Score, gs.final.Kills), fonts.Bold.Get(), w, 230, color.White)
	drawCentered(screen, fmt.Sprintf("Bombs %d   Spawned %d   Ticks %d", gs.final.BombsPlaced, gs.final.EnemiesSpawned, gs.final.Tick), fonts.Regular.Get(), w, 255, color.Gray{Y: 180})

	if gs.session.Scores != nil {
		best := gs.session.Scores.Best()
		line := fmt.Sprintf("Best %d", best.Score)
		c := color.Color(color.White)
		if gs.newBest {
			line = "New best!"
			c = bestColor
		}
		drawCentered(screen, line, fonts.Regular.Get(), w, 280, c)
	}
	drawCentered(screen, "Press Enter to play again", fonts.Small.Get(), w, 340, color.Gray{Y: 180})
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, c color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, (width-b.Dx())/2, y, c)
}

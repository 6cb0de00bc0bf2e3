package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/game"
	"github.com/automoto/bombarena/highscore"
	"github.com/automoto/bombarena/hud"
	"github.com/automoto/bombarena/input"
	"github.com/automoto/bombarena/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// ArenaScene runs one game session, one simulation tick per ebiten update.
type ArenaScene struct {
	session      *Session
	sceneChanger SceneChanger
	game         *game.Game
	hud          *hud.State
	frame        engine.Frame
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, session *Session) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, session: session}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	if as.game == nil {
		return
	}

	as.frame = as.game.AdvanceTick(input.Poll(input.DefaultBindings))
	as.hud.Update(as.frame, 1/float32(as.session.Config.TickRate))

	if as.game.Terminal() {
		newBest := as.submitScore()
		as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, as.session, as.frame, newBest))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.game == nil {
		return
	}
	render.DrawFrame(screen, as.frame)
	render.DrawHUD(screen, as.frame, as.hud)
}

func (as *ArenaScene) configure() {
	g, err := game.New(as.session.Config, as.session.GameOptions...)
	if err != nil {
		as.session.Logger.Error("could not start session", "err", err)
		return
	}
	as.game = g
	as.hud = hud.New()
	as.frame = as.game.Frame()
}

func (as *ArenaScene) submitScore() bool {
	if as.session.Scores == nil {
		return false
	}
	newBest, err := as.session.Scores.Submit(highscore.Record{
		Score:    as.frame.Score,
		Kills:    as.frame.Kills,
		Ticks:    as.frame.Tick,
		Achieved: time.Now(),
	})
	if err != nil {
		as.session.Logger.Warn("could not save high score", "err", err)
	}
	return newBest
}

package scenes

import (
	"github.com/automoto/bombarena/config"
	"github.com/automoto/bombarena/game"
	"github.com/automoto/bombarena/highscore"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Session carries what every scene needs to start or restart a game.
type Session struct {
	Config      *config.Config
	GameOptions []game.Option
	Scores      *highscore.Store // Optional
	Logger      *log.Logger
}

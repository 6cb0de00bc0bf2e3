// bombarena is a tile-grid arena game: place bombs, dodge the blasts and
// outlast the spiders.
//
// Usage:
//
//	bombarena [--config arena.yaml] [--map levels/arena.tmx] [--metrics-addr 127.0.0.1:9090]
package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/automoto/bombarena/arena"
	"github.com/automoto/bombarena/config"
	"github.com/automoto/bombarena/fonts"
	"github.com/automoto/bombarena/game"
	"github.com/automoto/bombarena/highscore"
	"github.com/automoto/bombarena/scenes"
	"github.com/automoto/bombarena/telemetry"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	flagConfig      string
	flagMap         string
	flagMetricsAddr string
	flagLogLevel    string
	flagSeed        uint64
	flagNoSave      bool
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.bounds.Dx(), g.bounds.Dy()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bombarena",
	Short: "Bomb-laying arena game",
	Long: `Place bombs to clear the arena of spiders without getting caught in the blast.

Controls:
  Arrows/WASD  - Move
  Space        - Place bomb
  Enter        - Play again (after game over)`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML file overriding the default parameters")
	rootCmd.Flags().StringVar(&flagMap, "map", "", "Path to a Tiled .tmx arena layout")
	rootCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (disabled when empty)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Enemy spawn seed (0 keeps the configured seed)")
	rootCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not read or write the high score")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "bombarena"})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	cfg, err := config.LoadOrDefault(flagConfig)
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.Enemy.Seed = flagSeed
	}

	session := &scenes.Session{Config: cfg, Logger: logger}
	session.GameOptions = append(session.GameOptions, game.WithLogger(logger))

	if flagMap != "" {
		layout, err := arena.LoadTMX(os.DirFS(filepath.Dir(flagMap)), filepath.Base(flagMap))
		if err != nil {
			return err
		}
		layout.Apply(cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("map %s: %w", flagMap, err)
		}
		session.GameOptions = append(session.GameOptions, game.WithLayout(layout))
		logger.Info("loaded map", "path", flagMap, "width", layout.Width, "height", layout.Height)
	} else if err := arena.Default(cfg).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if flagMetricsAddr != "" {
		reg := prometheus.NewRegistry()
		session.GameOptions = append(session.GameOptions, game.WithObserver(telemetry.NewMetrics(reg)))
		go func() {
			if err := telemetry.Serve(ctx, flagMetricsAddr, telemetry.NewRouter(reg), logger); err != nil {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
	}

	if !flagNoSave {
		scores, err := highscore.Open("bombarena")
		if err != nil {
			logger.Warn("high scores disabled", "err", err)
		} else {
			session.Scores = scores
			logger.Debug("high score loaded", "best", scores.Best().Score)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	w, h := cfg.Arena.PixelWidth(), cfg.Arena.PixelHeight()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("bombarena")
	ebiten.SetTPS(cfg.TickRate)

	g := &Game{bounds: image.Rect(0, 0, w, h)}
	g.scene = scenes.NewArenaScene(g, session)

	return ebiten.RunGame(g)
}

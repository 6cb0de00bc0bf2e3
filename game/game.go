// Package game wires the systems into a Simulation and exposes the single
// per-frame entry point.
package game

import (
	"fmt"
	"time"

	"github.com/automoto/bombarena/arena"
	"github.com/automoto/bombarena/config"
	"github.com/automoto/bombarena/engine"
	"github.com/automoto/bombarena/systems"
	"github.com/automoto/bombarena/systems/factory"
	"github.com/charmbracelet/log"
)

// Game is one session of the arena.
type Game struct {
	sim    *engine.Simulation
	layout *arena.Layout
	last   engine.Frame

	simOpts []engine.Option
}

// Option configures a Game.
type Option func(*Game)

// WithLayout replaces the default wall lattice.
func WithLayout(l arena.Layout) Option {
	return func(g *Game) {
		g.layout = &l
	}
}

// WithLogger sets the logger handed to every system.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.simOpts = append(g.simOpts, engine.WithLogger(l))
	}
}

// WithObserver sets the receiver of gameplay events.
func WithObserver(o engine.Observer) Option {
	return func(g *Game) {
		g.simOpts = append(g.simOpts, engine.WithObserver(o))
	}
}

// New builds a session from cfg. cfg is copied; later changes to it have no
// effect on the session. It fails when the player spawn is not an open cell.
func New(cfg *config.Config, opts ...Option) (*Game, error) {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}

	cfg = cfg.Clone()
	layout := arena.Default(cfg)
	if g.layout != nil {
		layout = *g.layout
		layout.Apply(cfg)
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("arena layout: %w", err)
	}

	g.sim = engine.New(cfg, g.simOpts...)
	g.configure()
	factory.BuildArena(g.sim, layout)
	g.last = systems.BuildFrame(g.sim)
	return g, nil
}

func (g *Game) configure() {
	g.sim.AddSystem(systems.UpdatePlayer)
	g.sim.AddSystem(systems.UpdateBombs)
	g.sim.AddSystem(systems.UpdateBlasts)
	g.sim.AddSystem(systems.UpdateEnemies)
	g.sim.AddSystem(systems.UpdateSpawner)
	g.sim.AddSystem(systems.UpdateCombat)

	// Must be last
	g.sim.AddSystem(systems.UpdateCleanup)
}

// AdvanceTick samples input once, runs one full update pass and returns the
// resulting frame. Once the session is terminal it returns the final frame
// and changes nothing.
func (g *Game) AdvanceTick(input engine.InputState) engine.Frame {
	if g.sim.Terminal {
		return g.last
	}
	start := time.Now()

	g.sim.Input = input
	g.sim.Step()
	g.last = systems.BuildFrame(g.sim)

	g.sim.Observer.TickCompleted(g.last, time.Since(start))
	return g.last
}

// Frame returns the most recent frame.
func (g *Game) Frame() engine.Frame {
	return g.last
}

// Terminal reports whether the session has ended.
func (g *Game) Terminal() bool {
	return g.sim.Terminal
}

// Simulation exposes the underlying state.
func (g *Game) Simulation() *engine.Simulation {
	return g.sim
}

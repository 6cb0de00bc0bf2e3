package game

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/automoto/bombarena/arena"
	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/config"
	"github.com/automoto/bombarena/engine"
)

type recorder struct {
	engine.NopObserver
	placed    int
	detonated int
	terminal  int
	ticks     int
}

func (r *recorder) BombPlaced()                               { r.placed++ }
func (r *recorder) BombDetonated(bool, int)                   { r.detonated++ }
func (r *recorder) PlayerTerminal(int)                        { r.terminal++ }
func (r *recorder) TickCompleted(engine.Frame, time.Duration) { r.ticks++ }

func mustNew(t *testing.T, cfg *config.Config, opts ...Option) *Game {
	t.Helper()
	g, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestInitialFrame(t *testing.T) {
	g := mustNew(t, config.Default())
	f := g.Frame()

	if f.Count(components.KindWall) != 36 {
		t.Errorf("expected 36 walls, got %d", f.Count(components.KindWall))
	}
	if f.Count(components.KindPlayer) != 1 {
		t.Fatalf("expected one player, got %d", f.Count(components.KindPlayer))
	}
	if f.Health != 100 || f.MaxHealth != 100 {
		t.Errorf("health %d/%d", f.Health, f.MaxHealth)
	}
	// Draw order: walls first, player last.
	if f.Entities[0].Kind != components.KindWall || f.Entities[len(f.Entities)-1].Kind != components.KindPlayer {
		t.Error("frame not ordered back to front")
	}
}

func TestAdvanceTickCountsTicks(t *testing.T) {
	rec := &recorder{}
	g := mustNew(t, config.Default(), WithObserver(rec))

	for i := 0; i < 5; i++ {
		g.AdvanceTick(engine.NewInput())
	}
	if g.Frame().Tick != 5 || rec.ticks != 5 {
		t.Errorf("tick=%d observed=%d, want 5", g.Frame().Tick, rec.ticks)
	}
}

func TestTerminalIsIdempotent(t *testing.T) {
	cfg := config.Default()
	cfg.Bomb.Fuse = 3
	rec := &recorder{}
	g := mustNew(t, cfg, WithObserver(rec))

	g.AdvanceTick(engine.NewInput(config.ActionPlaceBomb))
	g.AdvanceTick(engine.NewInput())
	final := g.AdvanceTick(engine.NewInput())

	if !g.Terminal() || !final.Terminal {
		t.Fatal("player standing on a detonating bomb should end the session")
	}
	if final.BombsPlaced != 1 {
		t.Errorf("final frame bombs placed=%d, want 1", final.BombsPlaced)
	}
	if final.Health != 0 || final.Count(components.KindPlayer) != 0 {
		t.Errorf("final frame health=%d players=%d", final.Health, final.Count(components.KindPlayer))
	}

	for i := 0; i < 10; i++ {
		f := g.AdvanceTick(engine.NewInput(config.ActionMoveRight, config.ActionPlaceBomb))
		if !reflect.DeepEqual(f, final) {
			t.Fatalf("frame changed after terminal on call %d", i)
		}
	}
	if g.Simulation().Tick != 3 {
		t.Errorf("simulation advanced after terminal: tick %d", g.Simulation().Tick)
	}
	if rec.placed != 1 || rec.detonated != 1 || rec.terminal != 1 {
		t.Errorf("observer saw placed=%d detonated=%d terminal=%d", rec.placed, rec.detonated, rec.terminal)
	}
}

func TestCustomLayout(t *testing.T) {
	layout := arena.Layout{
		CellSize:    40,
		Width:       5,
		Height:      4,
		Walls:       []arena.Cell{{X: 2, Y: 2}},
		PlayerSpawn: arena.Cell{X: 4, Y: 3},
	}
	cfg := config.Default()
	cfg.Player.Size = 30
	cfg.Enemy.Size = 30
	g := mustNew(t, cfg, WithLayout(layout))

	f := g.Frame()
	if f.Count(components.KindWall) != 1 {
		t.Fatalf("expected 1 wall, got %d", f.Count(components.KindWall))
	}
	p := f.Entities[len(f.Entities)-1]
	if p.X != 165 || p.Y != 125 {
		t.Errorf("player at (%v,%v), want (165,125)", p.X, p.Y)
	}
	if cfg.Arena.Width != 13 {
		t.Error("New modified the caller's config")
	}
}

func TestSameInputsSameFrames(t *testing.T) {
	cfg := config.Default()
	cfg.Enemy.SpawnInterval = 10
	a, b := mustNew(t, cfg), mustNew(t, cfg)
	script := []config.ActionID{config.ActionMoveRight, config.ActionMoveDown, config.ActionPlaceBomb, config.ActionMoveLeft}

	for i := 0; i < 200; i++ {
		in := engine.NewInput(script[(i/15)%len(script)])
		fa, fb := a.AdvanceTick(in), b.AdvanceTick(in)
		if !reflect.DeepEqual(fa, fb) {
			t.Fatalf("frames diverged at tick %d", i+1)
		}
	}
}

func TestSpawnOnWallRejected(t *testing.T) {
	cfg := config.Default()
	// (1,1) is the first lattice wall.
	cfg.Player.SpawnCellX, cfg.Player.SpawnCellY = 1, 1
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config itself should be valid: %v", err)
	}
	if _, err := New(cfg); !errors.Is(err, arena.ErrSpawnBlocked) {
		t.Fatalf("expected ErrSpawnBlocked, got %v", err)
	}

	layout := arena.Layout{
		CellSize:    50,
		Width:       4,
		Height:      4,
		Walls:       []arena.Cell{{X: 3, Y: 3}},
		PlayerSpawn: arena.Cell{X: 3, Y: 3},
	}
	if _, err := New(config.Default(), WithLayout(layout)); !errors.Is(err, arena.ErrSpawnBlocked) {
		t.Errorf("custom layout: expected ErrSpawnBlocked, got %v", err)
	}
}

func TestOpenSpawnCellMoves(t *testing.T) {
	cfg := config.Default()
	cfg.Player.SpawnCellX, cfg.Player.SpawnCellY = 2, 1
	g := mustNew(t, cfg)
	start := g.Frame().Entities[len(g.Frame().Entities)-1]

	var f engine.Frame
	for i := 0; i < 10; i++ {
		f = g.AdvanceTick(engine.NewInput(config.ActionMoveDown))
	}
	p := f.Entities[len(f.Entities)-1]
	if p.Kind != components.KindPlayer || p.Y <= start.Y {
		t.Errorf("player stuck at y=%v, started at y=%v", p.Y, start.Y)
	}
}

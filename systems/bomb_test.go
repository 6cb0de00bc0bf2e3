package systems

import (
	"testing"

	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/config"
	"github.com/automoto/bombarena/systems/factory"
	"github.com/automoto/bombarena/tags"
)

func TestWallBlocksPropagation(t *testing.T) {
	sim := newSim(t, func(c *config.Config) {
		c.Bomb.Fuse = 1
		c.Bomb.Radius = 3
	})
	factory.CreateWallAtCell(sim, 2, 0)
	if _, ok := factory.CreateBomb(sim, nil, 25, 25); !ok {
		t.Fatal("bomb refused")
	}

	step(sim, 1)

	cells := blastCells(sim)
	for _, want := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {0, 2}, {0, 3}} {
		if cells[want] != 1 {
			t.Errorf("expected one blast at %v, got %d", want, cells[want])
		}
	}
	for _, blocked := range [][2]int{{2, 0}, {3, 0}} {
		if cells[blocked] != 0 {
			t.Errorf("blast placed at %v behind the wall", blocked)
		}
	}
	if len(cells) != 5 {
		t.Errorf("expected 5 blast cells, got %d: %v", len(cells), cells)
	}
	if count(sim, tags.Wall) != 1 {
		t.Error("wall was destroyed")
	}
}

func TestFuseTiming(t *testing.T) {
	const fuse = 5
	sim := newSim(t, func(c *config.Config) {
		c.Bomb.Fuse = fuse
		c.Bomb.Radius = 2
	})
	factory.CreateBomb(sim, nil, 6*50+10, 6*50+10)

	for tick := 1; tick < fuse; tick++ {
		step(sim, 1)
		if n := count(sim, tags.Blast); n != 0 {
			t.Fatalf("tick %d: expected no blasts, got %d", tick, n)
		}
		if count(sim, tags.Bomb) != 1 {
			t.Fatalf("tick %d: bomb vanished early", tick)
		}
	}

	step(sim, 1)
	want := 1 + 4*2
	if n := count(sim, tags.Blast); n != want {
		t.Fatalf("tick %d: expected %d blasts, got %d", fuse, want, n)
	}
	if count(sim, tags.Bomb) != 0 {
		t.Fatal("bomb still present after detonation")
	}

	step(sim, 1)
	if n := count(sim, tags.Blast); n != want {
		t.Errorf("blast count changed after detonation: %d", n)
	}
}

func TestRayStopsAtArenaEdge(t *testing.T) {
	sim := newSim(t, func(c *config.Config) {
		c.Bomb.Fuse = 1
		c.Bomb.Radius = 4
	})
	factory.CreateBomb(sim, nil, 12*50+1, 12*50+1)

	step(sim, 1)

	// Corner cell: only the left and up rays have room.
	if n := count(sim, tags.Blast); n != 1+4+4 {
		t.Errorf("expected 9 blasts from the corner, got %d", n)
	}
}

func TestChainReactionSameTick(t *testing.T) {
	sim := newSim(t, func(c *config.Config) {
		c.Bomb.Fuse = 3
		c.Bomb.Radius = 2
	})
	factory.CreateBomb(sim, nil, 4*50+25, 4*50+25)
	second, _ := factory.CreateBomb(sim, nil, 6*50+25, 4*50+25)
	third, _ := factory.CreateBomb(sim, nil, 8*50+25, 4*50+25)
	components.Bomb.Get(second).Fuse.Reset(100)
	components.Bomb.Get(third).Fuse.Reset(100)

	step(sim, 2)
	if count(sim, tags.Blast) != 0 {
		t.Fatal("blasts before the first fuse ran out")
	}

	step(sim, 1)
	if n := count(sim, tags.Bomb); n != 0 {
		t.Fatalf("expected every bomb in the chain to detonate on tick 3, %d left", n)
	}
	if n := count(sim, tags.Blast); n != 3*9 {
		t.Errorf("expected 27 blasts, got %d", n)
	}
}

func TestBombPlacedInActiveBlastDetonates(t *testing.T) {
	sim := newSim(t, func(c *config.Config) {
		c.Bomb.Fuse = 1
		c.Bomb.Radius = 1
		c.Blast.Lifetime = 10
		c.Blast.PhaseThresholds = []int{6, 3}
	})
	factory.CreateBomb(sim, nil, 25, 25)
	step(sim, 1)

	late, ok := factory.CreateBomb(sim, nil, 75, 25)
	if !ok {
		t.Fatal("bomb refused")
	}
	components.Bomb.Get(late).Fuse.Reset(100)

	step(sim, 1)
	if count(sim, tags.Bomb) != 0 {
		t.Error("bomb inside an active blast did not detonate")
	}
}

func TestBlastLifetimeAndPhases(t *testing.T) {
	sim := newSim(t, func(c *config.Config) {
		c.Bomb.Fuse = 1
		c.Bomb.Radius = 0
		c.Blast.Lifetime = 6
		c.Blast.PhaseThresholds = []int{4, 2}
	})
	factory.CreateBomb(sim, nil, 300, 300)

	wantSprites := []string{"explosion_1", "explosion_2", "explosion_2", "explosion_3", "explosion_3"}
	for i, want := range wantSprites {
		step(sim, 1)
		blast, ok := tags.Blast.First(sim.World)
		if !ok {
			t.Fatalf("tick %d: blast gone early", i+1)
		}
		if got := components.Sprite.Get(blast).ID; got != want {
			t.Errorf("tick %d: sprite %q, want %q", i+1, got, want)
		}
	}

	step(sim, 1)
	if count(sim, tags.Blast) != 0 {
		t.Error("blast outlived its lifetime")
	}
}

func TestBlastKillsEnemy(t *testing.T) {
	sim := newSim(t, func(c *config.Config) {
		c.Bomb.Fuse = 1
		c.Bomb.Radius = 1
	})
	factory.CreateBomb(sim, nil, 6*50, 6*50)
	factory.CreateEnemy(sim, 7, 6)

	step(sim, 1)

	if count(sim, tags.Enemy) != 0 {
		t.Fatal("enemy survived the blast")
	}
	if sim.Score != sim.Config.Combat.ScorePerKill || sim.Kills != 1 {
		t.Errorf("score=%d kills=%d, want %d and 1", sim.Score, sim.Kills, sim.Config.Combat.ScorePerKill)
	}

	// Blast keeps burning after the kill.
	if count(sim, tags.Blast) != 5 {
		t.Errorf("expected blasts to persist, got %d", count(sim, tags.Blast))
	}
}

// Package arena describes the static obstacle layout of a session: the
// default wall lattice or a layout loaded from a Tiled map.
package arena

import (
	"errors"
	"fmt"

	"github.com/automoto/bombarena/config"
)

var (
	ErrSpawnOutside = errors.New("player spawn outside the arena")
	ErrSpawnBlocked = errors.New("player spawn is a wall")
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Point is a pixel coordinate.
type Point struct {
	X, Y int
}

// Layout is the static content of an arena, in cells.
type Layout struct {
	CellSize    int
	Width       int
	Height      int
	Walls       []Cell
	PlayerSpawn Cell
}

// Contains reports whether c lies inside the layout.
func (l Layout) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < l.Width && c.Y < l.Height
}

// IsWall reports whether c holds a wall.
func (l Layout) IsWall(c Cell) bool {
	for _, w := range l.Walls {
		if w == c {
			return true
		}
	}
	return false
}

// Validate checks that the player spawn is an open cell inside the layout.
func (l Layout) Validate() error {
	if !l.Contains(l.PlayerSpawn) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrSpawnOutside, l.PlayerSpawn, l.Width, l.Height)
	}
	if l.IsWall(l.PlayerSpawn) {
		return fmt.Errorf("%w: %v", ErrSpawnBlocked, l.PlayerSpawn)
	}
	return nil
}

// Apply copies the layout dimensions and spawn into cfg.
func (l Layout) Apply(cfg *config.Config) {
	cfg.Arena.CellSize = l.CellSize
	cfg.Arena.Width = l.Width
	cfg.Arena.Height = l.Height
	cfg.Player.SpawnCellX = l.PlayerSpawn.X
	cfg.Player.SpawnCellY = l.PlayerSpawn.Y
}

// Empty returns a layout with no walls, sized from cfg.
func Empty(cfg *config.Config) Layout {
	return Layout{
		CellSize:    cfg.Arena.CellSize,
		Width:       cfg.Arena.Width,
		Height:      cfg.Arena.Height,
		PlayerSpawn: Cell{X: cfg.Player.SpawnCellX, Y: cfg.Player.SpawnCellY},
	}
}

// Default returns the lattice layout for cfg.
func Default(cfg *config.Config) Layout {
	l := Empty(cfg)
	cs := cfg.Arena.CellSize
	for _, p := range Lattice(cfg.Arena.PixelWidth(), cfg.Arena.PixelHeight(), cs, cs) {
		l.Walls = append(l.Walls, Cell{X: p.X / cs, Y: p.Y / cs})
	}
	return l
}

// Package engine holds the Simulation aggregate every system receives, the
// spatial registry queries built on it, and the frame handed to renderers.
package engine

import (
	"io"

	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/config"
	"github.com/automoto/bombarena/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// System is one step of the per-tick update pass.
type System func(sim *Simulation)

// Simulation owns all state of one session. It is passed explicitly to every
// system; nothing in the simulation reads package-level state.
type Simulation struct {
	World    donburi.World
	Space    *resolv.Space
	Config   *config.Config
	Logger   *log.Logger
	Observer Observer

	// Input is the snapshot sampled for the current tick.
	Input InputState

	Tick           int
	Score          int
	Kills          int
	BombsPlaced    int
	EnemiesSpawned int
	Terminal       bool

	systems []System

	pending map[donburi.Entity]struct{}
	order   []donburi.Entity
	damage  []components.DamageEventData
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used by systems.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.Logger = l
		}
	}
}

// WithObserver sets the receiver of gameplay events.
func WithObserver(o Observer) Option {
	return func(s *Simulation) {
		if o != nil {
			s.Observer = o
		}
	}
}

// New creates an empty simulation whose collision space covers the arena.
func New(cfg *config.Config, opts ...Option) *Simulation {
	s := &Simulation{
		World:    donburi.NewWorld(),
		Config:   cfg,
		Logger:   log.New(io.Discard),
		Observer: NopObserver{},
		pending:  make(map[donburi.Entity]struct{}),
	}
	s.Space = resolv.NewSpace(
		cfg.Arena.PixelWidth(), cfg.Arena.PixelHeight(),
		cfg.Arena.CellSize, cfg.Arena.CellSize,
	)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddSystem appends a system to the update pass.
func (s *Simulation) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
}

// Step runs every system once, in the order they were added.
func (s *Simulation) Step() {
	s.Tick++
	for _, sys := range s.systems {
		sys(s)
	}
}

// Player returns the live player entry. It reports false once the player
// has been removed or is scheduled for removal.
func (s *Simulation) Player() (*donburi.Entry, bool) {
	e, ok := tags.Player.First(s.World)
	if !ok || s.IsPending(e) {
		return nil, false
	}
	return e, true
}

// QueueDamage records a damage event for the combat pass.
func (s *Simulation) QueueDamage(ev components.DamageEventData) {
	s.damage = append(s.damage, ev)
}

// DrainDamage returns and clears the queued damage events.
func (s *Simulation) DrainDamage() []components.DamageEventData {
	d := s.damage
	s.damage = nil
	return d
}

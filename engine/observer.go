package engine

import (
	"time"

	"github.com/automoto/bombarena/components"
)

// Observer receives gameplay events as they happen. Implementations must not
// mutate the simulation.
type Observer interface {
	BombPlaced()
	BombDetonated(chain bool, segments int)
	EnemySpawned()
	EnemyKilled(cause components.Kind)
	PlayerDamaged(amount int)
	PlayerTerminal(score int)
	TickCompleted(frame Frame, elapsed time.Duration)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) BombPlaced()                        {}
func (NopObserver) BombDetonated(bool, int)            {}
func (NopObserver) EnemySpawned()                      {}
func (NopObserver) EnemyKilled(components.Kind)        {}
func (NopObserver) PlayerDamaged(int)                  {}
func (NopObserver) PlayerTerminal(int)                 {}
func (NopObserver) TickCompleted(Frame, time.Duration) {}

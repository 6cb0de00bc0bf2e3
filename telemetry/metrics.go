// Package telemetry exports gameplay events as Prometheus metrics.
package telemetry

import (
	"time"

	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements engine.Observer. Labels carry bounded values only
// (entity kinds, chain yes/no).
type Metrics struct {
	bombsPlaced    prometheus.Counter
	detonations    *prometheus.CounterVec
	blastSegments  prometheus.Counter
	enemiesSpawned prometheus.Counter
	enemiesKilled  *prometheus.CounterVec
	playerDamage   prometheus.Counter
	sessionsEnded  prometheus.Counter
	lastScore      prometheus.Gauge
	liveEntities   *prometheus.GaugeVec
	tickDuration   prometheus.Histogram
}

var _ engine.Observer = (*Metrics)(nil)

// NewMetrics registers every collector with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		bombsPlaced: f.NewCounter(prometheus.CounterOpts{
			Name: "bombarena_bombs_placed_total",
			Help: "Bombs placed by the player",
		}),
		detonations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bombarena_detonations_total",
			Help: "Bomb detonations",
		}, []string{"chain"}), // Bounded: "true", "false"
		blastSegments: f.NewCounter(prometheus.CounterOpts{
			Name: "bombarena_blast_segments_total",
			Help: "Blast segments created by detonations",
		}),
		enemiesSpawned: f.NewCounter(prometheus.CounterOpts{
			Name: "bombarena_enemies_spawned_total",
			Help: "Enemies minted by the spawner",
		}),
		enemiesKilled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bombarena_enemies_killed_total",
			Help: "Enemies removed, by cause",
		}, []string{"cause"}), // Bounded: entity kind names
		playerDamage: f.NewCounter(prometheus.CounterOpts{
			Name: "bombarena_player_damage_total",
			Help: "Health points lost by the player",
		}),
		sessionsEnded: f.NewCounter(prometheus.CounterOpts{
			Name: "bombarena_sessions_ended_total",
			Help: "Sessions that reached the terminal state",
		}),
		lastScore: f.NewGauge(prometheus.GaugeOpts{
			Name: "bombarena_last_score",
			Help: "Score of the most recently ended session",
		}),
		liveEntities: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bombarena_live_entities",
			Help: "Live entities at the end of the last tick",
		}, []string{"kind"}),
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "bombarena_tick_duration_seconds",
			Help:    "Time spent in one simulation tick",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025},
		}),
	}
}

func (m *Metrics) BombPlaced() {
	m.bombsPlaced.Inc()
}

func (m *Metrics) BombDetonated(chain bool, segments int) {
	label := "false"
	if chain {
		label = "true"
	}
	m.detonations.WithLabelValues(label).Inc()
	m.blastSegments.Add(float64(segments))
}

func (m *Metrics) EnemySpawned() {
	m.enemiesSpawned.Inc()
}

func (m *Metrics) EnemyKilled(cause components.Kind) {
	m.enemiesKilled.WithLabelValues(cause.String()).Inc()
}

func (m *Metrics) PlayerDamaged(amount int) {
	m.playerDamage.Add(float64(amount))
}

func (m *Metrics) PlayerTerminal(score int) {
	m.sessionsEnded.Inc()
	m.lastScore.Set(float64(score))
}

var trackedKinds = []components.Kind{
	components.KindWall, components.KindBomb, components.KindBlast, components.KindEnemy, components.KindPlayer,
}

func (m *Metrics) TickCompleted(frame engine.Frame, elapsed time.Duration) {
	m.tickDuration.Observe(elapsed.Seconds())
	for _, k := range trackedKinds {
		m.liveEntities.WithLabelValues(k.String()).Set(float64(frame.Count(k)))
	}
}

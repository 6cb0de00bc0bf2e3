package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/bombarena/components"
	"github.com/automoto/bombarena/engine"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRecordEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.BombPlaced()
	m.BombPlaced()
	m.BombDetonated(false, 9)
	m.BombDetonated(true, 5)
	m.EnemyKilled(components.KindBlast)
	m.PlayerDamaged(10)
	m.PlayerTerminal(40)

	if got := testutil.ToFloat64(m.bombsPlaced); got != 2 {
		t.Errorf("bombs placed = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.detonations.WithLabelValues("true")); got != 1 {
		t.Errorf("chain detonations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.blastSegments); got != 14 {
		t.Errorf("segments = %v, want 14", got)
	}
	if got := testutil.ToFloat64(m.enemiesKilled.WithLabelValues("blast")); got != 1 {
		t.Errorf("blast kills = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.lastScore); got != 40 {
		t.Errorf("last score = %v, want 40", got)
	}
}

func TestTickCompletedSetsGauges(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	frame := engine.Frame{Entities: []engine.Renderable{
		{Kind: components.KindWall}, {Kind: components.KindWall}, {Kind: components.KindPlayer},
	}}

	m.TickCompleted(frame, time.Millisecond)

	if got := testutil.ToFloat64(m.liveEntities.WithLabelValues("wall")); got != 2 {
		t.Errorf("walls = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.liveEntities.WithLabelValues("enemy")); got != 0 {
		t.Errorf("enemies = %v, want 0", got)
	}
}

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.BombPlaced()

	ts := httptest.NewServer(NewRouter(reg))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/metrics status %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "bombarena_bombs_placed_total 1") {
		t.Errorf("metrics output missing counter:\n%s", body)
	}

	resp, err = http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/healthz status %d", resp.StatusCode)
	}
}

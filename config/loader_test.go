package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
bomb:
  fuse: 90
arena:
  width: 15
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Bomb.Fuse != 90 {
		t.Errorf("bomb.fuse = %d, want 90", cfg.Bomb.Fuse)
	}
	if cfg.Arena.Width != 15 {
		t.Errorf("arena.width = %d, want 15", cfg.Arena.Width)
	}
	// Untouched keys keep their defaults.
	if cfg.Bomb.Radius != 2 || cfg.Arena.Height != 13 || cfg.Player.MaxHealth != 100 {
		t.Errorf("defaults lost: radius=%d height=%d health=%d", cfg.Bomb.Radius, cfg.Arena.Height, cfg.Player.MaxHealth)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero fuse", "bomb:\n  fuse: 0\n"},
		{"negative radius", "bomb:\n  radius: -1\n"},
		{"ascending thresholds", "blast:\n  phaseThresholds: [12, 24]\n"},
		{"player larger than cell", "player:\n  size: 80\n"},
		{"spawn outside arena", "player:\n  spawnCellX: 13\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("bomb: [unterminated"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("syntax error reported as a validation failure")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg.TickRate != 60 {
		t.Fatalf("empty path: cfg=%+v err=%v", cfg, err)
	}

	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("tickRate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("tickRate = %d, want 30", cfg.TickRate)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.Blast.PhaseThresholds[0] = 1
	b.Bomb.Fuse = 1
	if a.Blast.PhaseThresholds[0] == 1 || a.Bomb.Fuse == 1 {
		t.Error("Clone shares state with the original")
	}
}

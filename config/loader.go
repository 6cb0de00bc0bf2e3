package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load reads a YAML file and overlays it onto the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse overlays YAML bytes onto the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when it is set, otherwise returns the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate reports every field that would break the simulation.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.TickRate > 0, "tickRate must be positive, got %d", c.TickRate)
	check(c.Arena.CellSize > 0, "arena.cellSize must be positive, got %d", c.Arena.CellSize)
	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena must be at least 1x1 cells, got %dx%d", c.Arena.Width, c.Arena.Height)

	check(c.Player.Speed > 0, "player.speed must be positive")
	check(c.Player.MaxHealth > 0, "player.maxHealth must be positive, got %d", c.Player.MaxHealth)
	check(c.Player.InvulnFrames >= 0, "player.invulnFrames must not be negative")
	check(c.Player.BombCooldown >= 0, "player.bombCooldown must not be negative")
	check(c.Player.Size > 0 && c.Player.Size <= float64(c.Arena.CellSize), "player.size must be in (0, cellSize]")
	check(c.Player.SpawnCellX >= 0 && c.Player.SpawnCellX < c.Arena.Width &&
		c.Player.SpawnCellY >= 0 && c.Player.SpawnCellY < c.Arena.Height,
		"player spawn cell (%d,%d) outside arena", c.Player.SpawnCellX, c.Player.SpawnCellY)

	check(c.Bomb.Fuse > 0, "bomb.fuse must be positive, got %d", c.Bomb.Fuse)
	check(c.Bomb.Radius >= 0, "bomb.radius must not be negative")

	check(c.Blast.Lifetime > 0, "blast.lifetime must be positive, got %d", c.Blast.Lifetime)
	for i, th := range c.Blast.PhaseThresholds {
		check(th > 0 && th < c.Blast.Lifetime, "blast.phaseThresholds[%d]=%d must be in (0, lifetime)", i, th)
		if i > 0 {
			check(th < c.Blast.PhaseThresholds[i-1], "blast.phaseThresholds must be descending")
		}
	}

	check(c.Enemy.Speed > 0, "enemy.speed must be positive")
	check(c.Enemy.Size > 0 && c.Enemy.Size <= float64(c.Arena.CellSize), "enemy.size must be in (0, cellSize]")
	check(c.Enemy.SpawnInterval > 0, "enemy.spawnInterval must be positive")
	check(c.Enemy.MaxAlive >= 0, "enemy.maxAlive must not be negative")
	check(c.Enemy.SpawnAttempts > 0, "enemy.spawnAttempts must be positive")

	check(c.Combat.ContactDamage >= 0, "combat.contactDamage must not be negative")

	return errors.Join(errs...)
}

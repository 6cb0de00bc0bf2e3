package config

// ArenaConfig describes the tile grid the simulation runs on.
type ArenaConfig struct {
	CellSize int `yaml:"cellSize"` // Pixels per grid cell (square)
	Width    int `yaml:"width"`    // Arena width in cells
	Height   int `yaml:"height"`   // Arena height in cells
}

// PixelWidth returns the arena width in pixels.
func (a ArenaConfig) PixelWidth() int { return a.Width * a.CellSize }

// PixelHeight returns the arena height in pixels.
func (a ArenaConfig) PixelHeight() int { return a.Height * a.CellSize }

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 `yaml:"speed"` // Pixels per tick per held direction

	// Combat
	MaxHealth    int `yaml:"maxHealth"`
	InvulnFrames int `yaml:"invulnFrames"` // Damage-intake throttle after a non-lethal hit

	// Bombs
	BombCooldown int `yaml:"bombCooldown"` // Ticks between placements

	// Dimensions
	Size float64 `yaml:"size"` // Collision box edge

	// Spawn cell
	SpawnCellX int `yaml:"spawnCellX"`
	SpawnCellY int `yaml:"spawnCellY"`
}

// BombConfig contains bomb fuse and blast shape settings
type BombConfig struct {
	Fuse   int `yaml:"fuse"`   // Ticks from placement to detonation
	Radius int `yaml:"radius"` // Cells per cardinal direction
}

// BlastConfig controls blast segment lifetime and visual phases
type BlastConfig struct {
	Lifetime int `yaml:"lifetime"` // Ticks a segment stays hazardous
	// PhaseThresholds are remaining-tick values at which the visual phase
	// advances (unburnt -> mid-burn -> late-burn). Must be descending.
	PhaseThresholds []int `yaml:"phaseThresholds"`
}

// EnemyConfig contains enemy and spawner configuration
type EnemyConfig struct {
	Speed         float64 `yaml:"speed"`
	Size          float64 `yaml:"size"`
	SpawnInterval int     `yaml:"spawnInterval"` // Ticks between spawns
	MaxAlive      int     `yaml:"maxAlive"`      // Spawner pauses at this population
	SpawnAttempts int     `yaml:"spawnAttempts"` // Candidate cells tried per spawn
	Seed          uint64  `yaml:"seed"`          // Spawn position generator seed
}

// CombatConfig contains damage and score values
type CombatConfig struct {
	ContactDamage int `yaml:"contactDamage"` // Damage dealt by enemy contact
	ScorePerKill  int `yaml:"scorePerKill"`
}

// Config is the constant parameter table consumed at construction time.
type Config struct {
	TickRate int          `yaml:"tickRate"` // Ticks per second; timers are tick-counted
	Arena    ArenaConfig  `yaml:"arena"`
	Player   PlayerConfig `yaml:"player"`
	Bomb     BombConfig   `yaml:"bomb"`
	Blast    BlastConfig  `yaml:"blast"`
	Enemy    EnemyConfig  `yaml:"enemy"`
	Combat   CombatConfig `yaml:"combat"`
}

// Default returns the default parameter table.
func Default() *Config {
	return &Config{
		TickRate: 60,

		Arena: ArenaConfig{
			CellSize: 50,
			Width:    13,
			Height:   13,
		},

		Player: PlayerConfig{
			Speed:        5,
			MaxHealth:    100,
			InvulnFrames: 60,
			BombCooldown: 45,
			Size:         40,
			SpawnCellX:   0,
			SpawnCellY:   0,
		},

		Bomb: BombConfig{
			Fuse:   120, // 2 seconds
			Radius: 2,
		},

		Blast: BlastConfig{
			Lifetime:        36,
			PhaseThresholds: []int{24, 12},
		},

		Enemy: EnemyConfig{
			Speed:         2,
			Size:          40,
			SpawnInterval: 120,
			MaxAlive:      12,
			SpawnAttempts: 8,
			Seed:          1,
		},

		Combat: CombatConfig{
			ContactDamage: 10,
			ScorePerKill:  10,
		},
	}
}

// Clone returns a deep copy so callers can tweak a table without touching the original.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Blast.PhaseThresholds = append([]int(nil), c.Blast.PhaseThresholds...)
	return &cp
}

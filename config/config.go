// Package config loads the game configuration from a TOML file
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// DefaultPath is the config file looked up when no -config flag is given
const DefaultPath = "alpha-strike.toml"

// MaxNameLen bounds the player name
const MaxNameLen = 12

// Sentinel errors
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownKeys   = errors.New("unknown config keys")
)

// Config is the full game configuration
type Config struct {
	Game    GameConfig    `toml:"game"`
	Audio   AudioConfig   `toml:"audio"`
	Network NetworkConfig `toml:"network"`
	Storage StorageConfig `toml:"storage"`
	Player  PlayerConfig  `toml:"player"`
	Log     LogConfig     `toml:"log"`
}

// GameConfig holds simulation tunables
type GameConfig struct {
	InitialArenaSize float64  `toml:"initial_arena_size"`
	MinArenaSize     float64  `toml:"min_arena_size"`
	ShrinkRate       float64  `toml:"shrink_rate"` // px per real second
	MinSpawnInterval Duration `toml:"min_spawn_interval"`
	EnemySpeedBase   float64  `toml:"enemy_speed_base"`
	EnemySpeedMax    float64  `toml:"enemy_speed_max"`
	ComboDecay       Duration `toml:"combo_decay"`
	BaseMaxHP        int      `toml:"base_max_hp"`
	BaseRadius       float64  `toml:"base_radius"`
	BombRadius       float64  `toml:"bomb_radius"`
	SlowDuration     Duration `toml:"slow_duration"`
	SlowFactor       float64  `toml:"slow_factor"`
	SpawnMargin      float64  `toml:"spawn_margin"`
	DodgeDistance    float64  `toml:"dodge_distance"`
	Seed             int64    `toml:"seed"` // 0 seeds from time
}

// AudioConfig controls cue playback
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	Music        bool    `toml:"music"`
}

// NetworkConfig controls the status broadcaster
type NetworkConfig struct {
	Enabled        bool     `toml:"enabled"`
	Address        string   `toml:"address"`
	StatusInterval Duration `toml:"status_interval"`
	WriteTimeout   Duration `toml:"write_timeout"`
	SendQueue      int      `toml:"send_queue"`
}

// StorageConfig locates the cumulative score ledger, empty path disables it
type StorageConfig struct {
	Path string `toml:"path"`
}

// PlayerConfig identifies the local player
type PlayerConfig struct {
	Name string `toml:"name"`
	ID   string `toml:"id"`
}

// LogConfig controls debug logging
type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			InitialArenaSize: 900,
			MinArenaSize:     400,
			ShrinkRate:       5,
			MinSpawnInterval: Duration{300 * time.Millisecond},
			EnemySpeedBase:   45,
			EnemySpeedMax:    200,
			ComboDecay:       Duration{3 * time.Second},
			BaseMaxHP:        5,
			BaseRadius:       40,
			BombRadius:       250,
			SlowDuration:     Duration{5 * time.Second},
			SlowFactor:       0.4,
			SpawnMargin:      50,
			DodgeDistance:    60,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			Music:        true,
		},
		Network: NetworkConfig{
			Enabled:        false,
			Address:        ":7777",
			StatusInterval: Duration{5 * time.Second},
			WriteTimeout:   Duration{2 * time.Second},
			SendQueue:      16,
		},
		Storage: StorageConfig{
			Path: "alpha-strike.db",
		},
		Player: PlayerConfig{
			Name: "AGENT",
		},
	}
}

// Load reads path over the defaults; a missing file yields defaults
// The returned bool reports whether a player id was generated
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, false, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if err == nil {
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, false, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
		}
	}

	generated := cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return cfg, generated, nil
}

// Save writes cfg as TOML, creating parent directories
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// normalize trims the player name and assigns an id when absent
func (c *Config) normalize() bool {
	c.Player.Name = strings.ToUpper(strings.TrimSpace(c.Player.Name))
	if r := []rune(c.Player.Name); len(r) > MaxNameLen {
		c.Player.Name = string(r[:MaxNameLen])
	}

	if c.Audio.MasterVolume < 0 {
		c.Audio.MasterVolume = 0
	} else if c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = 1
	}

	if c.Player.ID == "" {
		c.Player.ID = uuid.NewString()
		return true
	}
	return false
}

// Validate checks invariants the simulation relies on
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.InitialArenaSize <= 0 || g.MinArenaSize <= 0:
		return fmt.Errorf("%w: arena sizes must be positive", ErrInvalidConfig)
	case g.MinArenaSize > g.InitialArenaSize:
		return fmt.Errorf("%w: min_arena_size %.0f exceeds initial_arena_size %.0f", ErrInvalidConfig, g.MinArenaSize, g.InitialArenaSize)
	case g.ShrinkRate < 0:
		return fmt.Errorf("%w: shrink_rate must not be negative", ErrInvalidConfig)
	case g.MinSpawnInterval.Duration <= 0:
		return fmt.Errorf("%w: min_spawn_interval must be positive", ErrInvalidConfig)
	case g.EnemySpeedBase <= 0 || g.EnemySpeedMax < g.EnemySpeedBase:
		return fmt.Errorf("%w: enemy speeds must satisfy 0 < base <= max", ErrInvalidConfig)
	case g.ComboDecay.Duration <= 0:
		return fmt.Errorf("%w: combo_decay must be positive", ErrInvalidConfig)
	case g.BaseMaxHP < 1:
		return fmt.Errorf("%w: base_max_hp must be at least 1", ErrInvalidConfig)
	case g.BaseRadius <= 0 || g.BombRadius < 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	case g.SlowFactor <= 0 || g.SlowFactor > 1:
		return fmt.Errorf("%w: slow_factor must be in (0, 1]", ErrInvalidConfig)
	case g.SlowDuration.Duration < 0:
		return fmt.Errorf("%w: slow_duration must not be negative", ErrInvalidConfig)
	}

	if c.Network.Enabled {
		if c.Network.Address == "" {
			return fmt.Errorf("%w: network.address is required when enabled", ErrInvalidConfig)
		}
		if c.Network.StatusInterval.Duration <= 0 {
			return fmt.Errorf("%w: network.status_interval must be positive", ErrInvalidConfig)
		}
		if c.Network.SendQueue < 1 {
			return fmt.Errorf("%w: network.send_queue must be at least 1", ErrInvalidConfig)
		}
	}

	if c.Player.Name == "" {
		return fmt.Errorf("%w: player.name must not be empty", ErrInvalidConfig)
	}
	return nil
}

package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/alpha-strike/config"
)

// Environment overrides
const (
	EnvEnabled      = "ALPHA_STRIKE_AUDIO_ENABLED"
	EnvMasterVolume = "ALPHA_STRIKE_MASTER_VOLUME" // 0-100
)

// DefaultSampleRate is the speaker rate
const DefaultSampleRate = 48000

// Config holds runtime audio settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	Music        bool
	SampleRate   int
}

// LoadConfig derives runtime settings from the file config then the environment
func LoadConfig(fc config.AudioConfig) Config {
	cfg := Config{
		Enabled:      fc.Enabled,
		MasterVolume: fc.MasterVolume,
		Music:        fc.Music,
		SampleRate:   DefaultSampleRate,
	}

	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
		}
	}

	if cfg.MasterVolume < 0 {
		cfg.MasterVolume = 0
	}
	if cfg.MasterVolume > 1 {
		cfg.MasterVolume = 1
	}
	return cfg
}

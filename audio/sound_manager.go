// Package audio renders simulation cues as synthesized sound through beep
package audio

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/alpha-strike/events"
)

// ErrNotInitialized is returned when playing before Initialize succeeded
var ErrNotInitialized = errors.New("audio: not initialized")

const musicGain = 0.3

// SoundManager handles synthesized sound playback and implements events.Sink
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config) *SoundManager {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(rate),
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with 100ms buffer
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Emit implements events.Sink, failures are dropped
func (sm *SoundManager) Emit(c events.Cue) {
	switch c {
	case events.CueSessionStart:
		sm.StartMusic()
	case events.CueSessionEnd:
		sm.StopMusic()
	default:
		_ = sm.Play(c)
	}
}

// Play queues the one-shot for c on the mixer
func (sm *SoundManager) Play(c events.Cue) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if !sm.cfg.Enabled {
		return nil
	}

	s := CueSound(c, sm.rate)
	if s == nil {
		return nil
	}
	gain, ok := cueGain[c]
	if !ok {
		gain = 0.5
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(s, gain*sm.cfg.MasterVolume))
	speaker.Unlock()
	return nil
}

// StartMusic begins the background loop if music is enabled
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.cfg.Enabled || !sm.cfg.Music {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.music = &beep.Ctrl{
		Streamer: newVolume(newMusicGenerator(sm.rate), musicGain*sm.cfg.MasterVolume),
		Paused:   false,
	}
	sm.mixer.Add(sm.music)
	log.Printf("Audio: music started")
}

// StopMusic pauses the background loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// MusicPlaying reports whether the background loop is audible
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil && !sm.music.Paused
}

// Cleanup stops all sounds and clears resources
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.music = nil
	sm.initialized = false
}

// Name implements service.Service
func (sm *SoundManager) Name() string { return "audio" }

// Start implements service.Service
func (sm *SoundManager) Start() error {
	if !sm.cfg.Enabled {
		return nil
	}
	return sm.Initialize()
}

// Stop implements service.Service
func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}

package network

import (
	"log"

	"github.com/lixenwraith/alpha-strike/events"
	"github.com/lixenwraith/alpha-strike/status"
)

// Service wraps the hub and reporter as one lifecycle unit
// It also implements events.Sink to push immediately on session start and end
type Service struct {
	config   *Config
	hub      *Hub
	reporter *Reporter
}

// NewService creates a stopped status broadcaster
func NewService(cfg *Config, reg *status.Registry, id Identity) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	hub := NewHub(cfg)
	return &Service{
		config:   cfg,
		hub:      hub,
		reporter: NewReporter(hub, reg, id, cfg.StatusInterval),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "network"
}

// Start implements service.Service
func (s *Service) Start() error {
	if err := s.hub.Start(); err != nil {
		return err
	}
	s.reporter.Start()
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	s.reporter.Stop()
	return s.hub.Stop()
}

// Hub exposes the underlying hub
func (s *Service) Hub() *Hub {
	return s.hub
}

// Reporter exposes the interval reporter
func (s *Service) Reporter() *Reporter {
	return s.reporter
}

// SetTotal updates the stored total and pushes it
func (s *Service) SetTotal(total int64) {
	s.reporter.SetTotal(total)
	s.push()
}

// Emit implements events.Sink
func (s *Service) Emit(c events.Cue) {
	switch c {
	case events.CueSessionStart, events.CueSessionEnd:
		s.push()
	}
}

func (s *Service) push() {
	if err := s.reporter.Push(); err != nil && err != ErrNotRunning {
		log.Printf("Network: status push failed: %v", err)
	}
}

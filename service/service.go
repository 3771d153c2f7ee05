// Package service manages the lifecycle of long-lived peripherals around the simulation
package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: audio backend, status broadcaster, score ledger
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire devices, bind sockets, launch goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Func adapts plain start and stop functions to Service
type Func struct {
	ID      string
	StartFn func() error
	StopFn  func() error
}

func (f Func) Name() string { return f.ID }

func (f Func) Start() error {
	if f.StartFn == nil {
		return nil
	}
	return f.StartFn()
}

func (f Func) Stop() error {
	if f.StopFn == nil {
		return nil
	}
	return f.StopFn()
}

// Group starts services in registration order and stops them in reverse
// Optional services that fail to start are logged and skipped
type Group struct {
	mu       sync.Mutex
	entries  []entry
	started  []Service
	stopOnce sync.Once
}

type entry struct {
	svc      Service
	optional bool
}

// Add registers a required service, its start failure aborts StartAll
func (g *Group) Add(s Service) {
	g.mu.Lock()
	g.entries = append(g.entries, entry{svc: s})
	g.mu.Unlock()
}

// AddOptional registers a service whose start failure is tolerated
func (g *Group) AddOptional(s Service) {
	g.mu.Lock()
	g.entries = append(g.entries, entry{svc: s, optional: true})
	g.mu.Unlock()
}

// StartAll starts every service, stopping already started ones if a required service fails
func (g *Group) StartAll() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.entries {
		if err := e.svc.Start(); err != nil {
			if e.optional {
				log.Printf("Service %s unavailable: %v", e.svc.Name(), err)
				continue
			}
			stopErr := g.stopStarted()
			return errors.Join(fmt.Errorf("service %s: %w", e.svc.Name(), err), stopErr)
		}
		g.started = append(g.started, e.svc)
	}
	return nil
}

// Started reports whether the named service is running
func (g *Group) Started(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, s := range g.started {
		if s.Name() == name {
			return true
		}
	}
	return false
}

// StopAll stops started services in reverse order, once
func (g *Group) StopAll() error {
	var err error
	g.stopOnce.Do(func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		err = g.stopStarted()
	})
	return err
}

func (g *Group) stopStarted() error {
	var errs []error
	for i := len(g.started) - 1; i >= 0; i-- {
		s := g.started[i]
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("service %s: %w", s.Name(), err))
		}
	}
	g.started = nil
	return errors.Join(errs...)
}

package main

import (
	"log"
	"math/rand"
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/alpha-strike/audio"
	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/config"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/core"
	"github.com/lixenwraith/alpha-strike/engine"
	"github.com/lixenwraith/alpha-strike/events"
	"github.com/lixenwraith/alpha-strike/network"
	"github.com/lixenwraith/alpha-strike/render"
	"github.com/lixenwraith/alpha-strike/render/renderers"
	"github.com/lixenwraith/alpha-strike/service"
	"github.com/lixenwraith/alpha-strike/status"
	"github.com/lixenwraith/alpha-strike/storage"
	"github.com/lixenwraith/alpha-strike/systems"
)

const bankQueueSize = 8

// app wires the simulation to the terminal and peripherals
type app struct {
	cfg    *config.Config
	screen tcell.Screen

	registry  *status.Registry
	session   *engine.Session
	scheduler *engine.ClockScheduler
	services  service.Group

	sound *audio.SoundManager
	net   *network.Service // nil when disabled
	store *storage.ScoreStore

	// bank feeds run deltas to the storage goroutine, closed on storage stop
	bank     chan int64
	bankDone chan struct{}

	// renderMu guards the orchestrator against resize during a frame
	renderMu sync.Mutex
	orch     *render.RenderOrchestrator

	frontMu sync.Mutex
	front   render.Frontend
}

func newApp(cfg *config.Config, screen tcell.Screen) *app {
	a := &app{
		cfg:      cfg,
		screen:   screen,
		registry: status.NewRegistry(),
		front: render.Frontend{
			Scene:      render.SceneMenu,
			PlayerName: cfg.Player.Name,
		},
	}

	a.sound = audio.NewSoundManager(audio.LoadConfig(cfg.Audio))
	sinks := events.Fanout{a.sound}
	if cfg.Network.Enabled {
		a.net = network.NewService(network.FromConfig(cfg.Network), a.registry,
			network.Identity{ID: cfg.Player.ID, Name: cfg.Player.Name})
		sinks = append(sinks, a.net)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world := engine.NewWorld(cfg.Game, rand.New(rand.NewSource(seed)), sinks)

	a.session = systems.NewSession(world, a.registry)
	a.session.OnGameOver(a.onGameOver)

	a.orch = render.NewRenderOrchestrator(screen)
	renderers.RegisterAll(a.orch)

	a.scheduler = engine.NewClockScheduler(a.session, nil, constants.GameUpdateInterval, a.registry)
	a.scheduler.SetFrameHandler(a.draw)

	if cfg.Storage.Path != "" {
		a.services.AddOptional(service.Func{
			ID:      "storage",
			StartFn: a.openStore,
			StopFn:  a.closeStore,
		})
	}
	a.services.AddOptional(a.sound)
	if a.net != nil {
		a.services.AddOptional(a.net)
	}
	return a
}

func (a *app) openStore() error {
	store, err := storage.Open(a.cfg.Storage.Path)
	if err != nil {
		return err
	}
	a.store = store

	total, err := store.Total(a.cfg.Player.ID)
	if err != nil {
		store.Close()
		a.store = nil
		return err
	}
	a.setTotal(total)

	a.bank = make(chan int64, bankQueueSize)
	a.bankDone = make(chan struct{})
	core.Go(a.bankLoop)
	return nil
}

// bankLoop writes run deltas in arrival order and republishes the stored total
func (a *app) bankLoop() {
	defer close(a.bankDone)
	for delta := range a.bank {
		stored, err := a.store.Add(a.cfg.Player.ID, a.cfg.Player.Name, delta)
		if err != nil {
			log.Printf("Storage: failed to bank score: %v", err)
			continue
		}
		a.setTotal(stored)
	}
}

// closeStore drains pending deltas before closing the ledger
func (a *app) closeStore() error {
	if a.store == nil {
		return nil
	}
	close(a.bank)
	<-a.bankDone
	return a.store.Close()
}

func (a *app) setTotal(total int64) {
	a.frontMu.Lock()
	a.front.TotalScore = total
	a.frontMu.Unlock()
	if a.net != nil {
		a.net.SetTotal(total)
	}
}

// start brings peripherals up and begins ticking
func (a *app) start() error {
	if err := a.services.StartAll(); err != nil {
		return err
	}
	a.frontMu.Lock()
	a.front.Online = a.services.Started("network")
	a.frontMu.Unlock()
	a.scheduler.Start()
	return nil
}

// stop halts ticking then peripherals
func (a *app) stop() {
	a.scheduler.Stop()
	if a.session.Running() {
		a.session.Stop()
	}
	if err := a.services.StopAll(); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}

func (a *app) frontend() render.Frontend {
	a.frontMu.Lock()
	defer a.frontMu.Unlock()
	return a.front
}

func (a *app) scene() render.Scene {
	return a.frontend().Scene
}

// draw runs on the scheduler goroutine after every tick
func (a *app) draw() {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()
	a.orch.RenderFrame(a.session, a.frontend())
}

func (a *app) resize() {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()
	a.orch.Resize()
}

// beginSession enters play from the menu or game over screen
func (a *app) beginSession() {
	a.frontMu.Lock()
	if a.front.Scene == render.ScenePlaying {
		a.frontMu.Unlock()
		return
	}
	a.front.Scene = render.ScenePlaying
	a.front.Final = components.Stats{}
	a.frontMu.Unlock()

	a.session.Start()
}

// onGameOver switches to the game over screen and queues the run for banking
// Runs on the ticking goroutine once per session, never waits on storage
func (a *app) onGameOver(final components.Stats) {
	delta := final.DisplayScore()
	log.Printf("Status at game over: %v", a.registry.Snapshot())

	a.frontMu.Lock()
	a.front.Scene = render.SceneGameOver
	a.front.Final = final
	a.front.LastDelta = delta
	total := a.front.TotalScore + delta
	a.frontMu.Unlock()

	// Shown at once, replaced by the stored total when banked
	a.setTotal(total)

	if a.bank == nil {
		return
	}
	select {
	case a.bank <- delta:
	default:
		log.Printf("Storage: bank queue full, run of %d not persisted", delta)
	}
}

// keyRune maps a typed rune onto the alphabet
func keyRune(r rune) (rune, bool) {
	r = unicode.ToUpper(r)
	return r, constants.ValidKey(r)
}

// handleKey applies one key event, returns false to quit
func (a *app) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyEnter:
		if a.scene() != render.ScenePlaying {
			a.beginSession()
		}

	case tcell.KeyRune:
		if a.scene() != render.ScenePlaying {
			return true
		}
		if k, ok := keyRune(r); ok {
			a.session.PushKey(k)
		}
	}
	return true
}

// run processes terminal events until quit
func (a *app) run() {
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return // Screen finalized
		case *tcell.EventResize:
			a.resize()
		case *tcell.EventKey:
			if !a.handleKey(ev.Key(), ev.Rune()) {
				return
			}
		}
	}
}

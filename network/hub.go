package network

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/alpha-strike/core"
)

var (
	ErrNotRunning = errors.New("network: not running")
	ErrHubFull    = errors.New("network: client limit reached")
)

// Hub accepts websocket subscribers and fans frames out to them
type Hub struct {
	config   *Config
	upgrader websocket.Upgrader
	server   *http.Server
	listener net.Listener

	mu      sync.RWMutex
	clients map[ClientID]*client
	nextID  ClientID

	// last is replayed to every new subscriber
	last atomic.Pointer[[]byte]

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewHub creates a stopped hub
func NewHub(cfg *Config) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	h := &Hub{
		config:  cfg,
		clients: make(map[ClientID]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc(cfg.Path, h.serveWs)
	h.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	return h
}

// Start binds the listener and serves in the background
func (h *Hub) Start() error {
	if !h.running.CompareAndSwap(false, true) {
		return nil // Already running
	}

	ln, err := net.Listen("tcp", h.config.Address)
	if err != nil {
		h.running.Store(false)
		return err
	}
	h.listener = ln

	h.wg.Add(1)
	core.Go(func() {
		defer h.wg.Done()
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Network: serve failed: %v", err)
		}
	})
	log.Printf("Network: status hub listening on %s%s", ln.Addr(), h.config.Path)
	return nil
}

// Addr returns the bound address, empty when stopped
func (h *Hub) Addr() string {
	if !h.running.Load() || h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}

// Stop closes every client and the listener, a stopped hub cannot be restarted
func (h *Hub) Stop() error {
	if !h.running.CompareAndSwap(true, false) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.WriteTimeout)
	defer cancel()
	err := h.server.Shutdown(ctx)

	h.mu.Lock()
	for id, c := range h.clients {
		c.close()
		delete(h.clients, id)
	}
	h.mu.Unlock()

	h.wg.Wait()
	return err
}

// Running returns hub state
func (h *Hub) Running() bool {
	return h.running.Load()
}

// Broadcast queues frame for every client, returns the count that accepted it
func (h *Hub) Broadcast(frame []byte) (int, error) {
	if !h.running.Load() {
		return 0, ErrNotRunning
	}
	h.last.Store(&frame)

	h.mu.RLock()
	defer h.mu.RUnlock()
	sent := 0
	for _, c := range h.clients {
		if c.send(frame) {
			sent++
		}
	}
	return sent, nil
}

// ClientCount returns connected client count
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) serveWs(w http.ResponseWriter, r *http.Request) {
	if !h.running.Load() {
		http.Error(w, ErrNotRunning.Error(), http.StatusServiceUnavailable)
		return
	}
	if h.ClientCount() >= h.config.MaxClients {
		http.Error(w, ErrHubFull.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Network: upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	if !h.running.Load() {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.nextID++
	c := newClient(h.nextID, conn, h.config.SendQueueSize)
	h.clients[c.ID] = c
	h.wg.Add(2)
	h.mu.Unlock()

	if last := h.last.Load(); last != nil {
		c.send(*last)
	}

	pingPeriod := h.config.PongWait * 9 / 10
	core.Go(func() {
		defer h.wg.Done()
		c.writeLoop(h.config.WriteTimeout, pingPeriod)
	})
	core.Go(func() {
		defer h.wg.Done()
		c.readLoop(h.config.PongWait)
		h.remove(c.ID)
	})
}

func (h *Hub) remove(id ClientID) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
}

package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// ClientID uniquely identifies a connected client
type ClientID uint32

// client is one websocket subscriber
type client struct {
	ID   ClientID
	Addr string

	conn   *websocket.Conn
	sendCh chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool

	// Drop accounting
	dropped atomic.Uint64
}

func newClient(id ClientID, conn *websocket.Conn, sendQueueSize int) *client {
	return &client{
		ID:      id,
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		sendCh:  make(chan []byte, sendQueueSize),
		closeCh: make(chan struct{}),
	}
}

// send queues a frame for transmission
// Returns false if closed or queue full
func (c *client) send(frame []byte) bool {
	if c.closed.Load() {
		return false
	}
	select {
	case c.sendCh <- frame:
		return true
	default:
		c.dropped.Add(1)
		return false
	}
}

// close initiates shutdown, safe to call repeatedly
// writeLoop owns the socket and closes it after the close frame
func (c *client) close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.closeCh)
	})
}

// readLoop discards inbound frames, keeping control frames flowing until the peer leaves
func (c *client) readLoop(pongWait time.Duration) {
	defer c.close()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop drains the send queue and pings on idle
func (c *client) writeLoop(writeTimeout, pingPeriod time.Duration) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.closeCh:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case frame := <-c.sendCh:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

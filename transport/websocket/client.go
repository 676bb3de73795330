package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/rocketscienceinc/scribble-backend/internal/room"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 16 << 10
)

// Client is one websocket connection. Outbound frames go through send and are written by
// writePump only; inbound frames are read and dispatched by the serving goroutine.
type Client struct {
	id       string
	roomCode string
	logger   *slog.Logger
	conn     *websocket.Conn
	limiter  *rate.Limiter

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	// room is set after a successful join. Only the serving goroutine touches it.
	room *room.Room
}

func newClient(logger *slog.Logger, id, roomCode string, conn *websocket.Conn, limiter *rate.Limiter, buffer int) *Client {
	return &Client{
		id:       id,
		roomCode: roomCode,
		logger:   logger.With("connID", id, "room", roomCode),
		conn:     conn,
		limiter:  limiter,
		send:     make(chan []byte, buffer),
		done:     make(chan struct{}),
	}
}

func (that *Client) enqueue(data []byte) bool {
	select {
	case <-that.done:
		return true
	default:
	}

	select {
	case that.send <- data:
		return true
	default:
		return false
	}
}

func (that *Client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		_ = that.conn.Close()
	})
}

func (that *Client) writePump(pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		that.close()
	}()

	for {
		select {
		case <-that.done:
			return
		case data := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				that.logger.Debug("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				that.logger.Debug("failed to write ping", "error", err)
				return
			}
		}
	}
}

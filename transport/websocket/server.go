package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/rocketscienceinc/scribble-backend/internal/common/uuid"
	"github.com/rocketscienceinc/scribble-backend/internal/config"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
	"github.com/rocketscienceinc/scribble-backend/internal/room"
)

type roomRegistry interface {
	Join(code, connID, username string) (*room.Room, *entity.Player, error)
	Leave(r *room.Room, connID string) error
}

type handlerFunc func(client *Client, payload []byte) error

type Server struct {
	logger   *slog.Logger
	conf     config.Socket
	hub      *Hub
	registry roomRegistry
	ids      uuid.UUID
	upgrader websocket.Upgrader

	mu  sync.Mutex
	srv *http.Server

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, conf config.Socket, hub *Hub, registry roomRegistry, ids uuid.UUID) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		conf:     conf,
		hub:      hub,
		registry: registry,
		ids:      ids,

		handlers: make(map[string]handlerFunc),
	}

	server.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     server.checkOrigin,
	}

	server.handlers[entity.EventJoinGame] = server.handleJoinGame
	server.handlers[entity.EventDrawing] = server.handleDrawing
	server.handlers[entity.EventClearCanvas] = server.handleClearCanvas
	server.handlers[entity.EventChatMessage] = server.handleChatMessage
	server.handlers[entity.EventReadyForNextRound] = server.handleReadyForNextRound

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server. It returns nil once Shutdown is called.
func (that *Server) Start(port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	that.mu.Lock()
	that.srv = srv
	that.mu.Unlock()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown stops accepting connections and disconnects every client.
func (that *Server) Shutdown(ctx context.Context) error {
	that.hub.closeAll()

	that.mu.Lock()
	srv := that.srv
	that.mu.Unlock()

	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown websocket server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection and serves it until it drops.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	code, err := room.ParseCode(req.URL.Query().Get("room"))
	if err != nil {
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		// the upgrader already wrote the http error
		log.Debug("failed to upgrade connection", "error", err)
		return
	}

	client := newClient(
		that.logger,
		that.ids.NewUUID(),
		code,
		conn,
		rate.NewLimiter(rate.Limit(that.conf.RateLimit), that.conf.Burst),
		that.conf.SendBuffer,
	)

	client.logger.Info("websocket connection established", "remote", req.RemoteAddr)

	that.hub.add(client)
	go client.writePump(that.conf.PingInterval)

	that.readLoop(client)
}

// readLoop dispatches inbound messages until the connection drops, then leaves the room.
func (that *Server) readLoop(client *Client) {
	log := client.logger.With("method", "readLoop")

	defer func() {
		that.hub.remove(client.id)
		client.close()

		if client.room != nil {
			if err := that.registry.Leave(client.room, client.id); err != nil {
				log.Warn("failed to leave room", "error", err)
			}
		}

		log.Info("websocket connection closed")
	}()

	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(that.conf.PongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(that.conf.PongWait))
	})

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("unexpected close", "error", err)
			}

			return
		}

		if !client.limiter.Allow() {
			log.Debug("rate limit exceeded, message dropped")
			continue
		}

		that.dispatch(client, data)
	}
}

func (that *Server) dispatch(client *Client, data []byte) {
	log := client.logger.With("method", "dispatch")

	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		log.Warn("failed to unmarshal message", "error", err)
		return
	}

	handler, ok := that.handlers[message.Event]
	if !ok {
		log.Warn("unknown event", "event", message.Event)
		return
	}

	if err := handler(client, message.Payload); err != nil {
		that.logRejection(log, message.Event, err)
	}
}

func (that *Server) checkOrigin(req *http.Request) bool {
	origin := req.Header.Get("Origin")
	if origin == "" || slices.Contains(that.conf.AllowedOrigins, "*") {
		return true
	}

	return slices.Contains(that.conf.AllowedOrigins, origin)
}

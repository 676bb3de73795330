package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/scribble-backend/internal/common/clock"
	"github.com/rocketscienceinc/scribble-backend/internal/common/uuid"
	"github.com/rocketscienceinc/scribble-backend/internal/config"
	"github.com/rocketscienceinc/scribble-backend/internal/repository"
	"github.com/rocketscienceinc/scribble-backend/internal/repository/storage"
	"github.com/rocketscienceinc/scribble-backend/internal/room"
	"github.com/rocketscienceinc/scribble-backend/internal/usecase"
	"github.com/rocketscienceinc/scribble-backend/transport/rest"
	"github.com/rocketscienceinc/scribble-backend/transport/websocket"
)

const (
	shutdownTimeout = 10 * time.Second
	historyBuffer   = 256
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var (
		historyRepo repository.HistoryRepository
		wordRepo    repository.WordRepository
	)

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		historyRepo = repository.NewHistoryRepository(redisStorage.Connection, conf.Redis.HistorySize, conf.Redis.HistoryTTL)
		wordRepo = repository.NewWordRepository(redisStorage.Connection)
	} else {
		log.Info("Redis is disabled, round history is kept in memory")
		historyRepo = repository.NewMemoryHistoryRepository(conf.Redis.HistorySize)
	}

	words, err := usecase.LoadWordBank(ctx, logger, conf.Words, wordRepo)
	if err != nil {
		return err
	}

	archive := usecase.NewHistoryArchive(logger, historyRepo, historyBuffer)
	archiveDone := make(chan struct{})
	go func() {
		archive.Run(ctx)
		close(archiveDone)
	}()

	hub := websocket.NewHub(logger)
	registry := room.NewRegistry(logger, conf.Game, room.Deps{
		Notifier: hub,
		Words:    words,
		Clock:    clock.New(),
		History:  archive,
	})

	wsServer := websocket.New(logger, conf.Socket, hub, registry, uuid.New())
	httpServer := rest.New(logger, rest.NewHandlers(logger, registry, archive), conf.Socket.AllowedOrigins)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := httpServer.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		err = fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		err = fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdown(log, wsServer, httpServer, registry)

	cancel()
	<-archiveDone

	return err
}

type stopper interface {
	Shutdown(ctx context.Context) error
}

func shutdown(log *slog.Logger, wsServer, httpServer stopper, registry *room.Registry) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := wsServer.Shutdown(ctx); err != nil {
		log.Error("could not stop websocket server", "error", err)
	}

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("could not stop http server", "error", err)
	}

	registry.Close()
}

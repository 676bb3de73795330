package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	logger   *slog.Logger
	handlers *Handlers
	origins  []string

	mu  sync.Mutex
	srv *http.Server
}

func New(logger *slog.Logger, handlers *Handlers, allowedOrigins []string) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		handlers: handlers,
		origins:  allowedOrigins,
	}
}

// Router builds the gin engine with every route registered.
func (that *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), that.requestLogger())

	corsConfig := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}

	if len(that.origins) == 0 || slices.Contains(that.origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = that.origins
	}

	router.Use(cors.New(corsConfig))

	router.GET("/ping", that.handlers.Ping)
	router.GET("/rooms", that.handlers.ListRooms)
	router.GET("/rooms/:code/history", that.handlers.RoomHistory)

	return router
}

// Start - starts HTTP server. It returns nil once Shutdown is called.
func (that *Server) Start(port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	that.mu.Lock()
	that.srv = srv
	that.mu.Unlock()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	that.mu.Lock()
	srv := that.srv
	that.mu.Unlock()

	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	return nil
}

func (that *Server) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		that.logger.Debug("request served",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

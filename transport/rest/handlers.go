package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/scribble-backend/internal/entity"
	"github.com/rocketscienceinc/scribble-backend/internal/room"
)

type roomLister interface {
	List() []entity.RoomInfo
}

type historyReader interface {
	Recent(ctx context.Context, room string, limit int) ([]entity.RoundResult, error)
}

type Handlers struct {
	logger  *slog.Logger
	rooms   roomLister
	history historyReader
}

func NewHandlers(logger *slog.Logger, rooms roomLister, history historyReader) *Handlers {
	return &Handlers{
		logger:  logger.With("component", "rest"),
		rooms:   rooms,
		history: history,
	}
}

func (that *Handlers) ListRooms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, that.rooms.List())
}

// RoomHistory returns the newest round results of a room. The room does not have to be live.
func (that *Handlers) RoomHistory(ctx *gin.Context) {
	log := that.logger.With("method", "RoomHistory")

	code, err := room.ParseCode(ctx.Param("code"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid room code"})
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
	}

	results, err := that.history.Recent(ctx.Request.Context(), code, limit)
	if err != nil {
		log.Error("failed to read round history", "room", code, "error", err)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to read history"})

		return
	}

	ctx.JSON(http.StatusOK, results)
}

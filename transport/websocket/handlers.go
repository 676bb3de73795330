package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
)

var errMalformedPayload = errors.New("malformed payload")

func (that *Server) handleJoinGame(client *Client, payload []byte) error {
	var username string
	if err := json.Unmarshal(payload, &username); err != nil {
		return fmt.Errorf("%w: %w", errMalformedPayload, err)
	}

	// a second join is answered by the room itself
	if client.room != nil {
		_, err := client.room.Join(client.id, username)
		return err
	}

	joined, player, err := that.registry.Join(client.roomCode, client.id, username)
	if err != nil {
		return err
	}

	client.room = joined
	client.logger.Info("player joined", "username", player.Username)

	return nil
}

func (that *Server) handleDrawing(client *Client, payload []byte) error {
	if client.room == nil {
		return apperror.ErrUnknownConnection
	}

	var stroke entity.DrawData
	if err := json.Unmarshal(payload, &stroke); err != nil {
		return fmt.Errorf("%w: %w", errMalformedPayload, err)
	}

	return client.room.Draw(client.id, stroke)
}

func (that *Server) handleClearCanvas(client *Client, _ []byte) error {
	if client.room == nil {
		return apperror.ErrUnknownConnection
	}

	return client.room.Clear(client.id)
}

func (that *Server) handleChatMessage(client *Client, payload []byte) error {
	if client.room == nil {
		return apperror.ErrUnknownConnection
	}

	var message string
	if err := json.Unmarshal(payload, &message); err != nil {
		return fmt.Errorf("%w: %w", errMalformedPayload, err)
	}

	return client.room.Chat(client.id, message)
}

func (that *Server) handleReadyForNextRound(client *Client, _ []byte) error {
	if client.room == nil {
		return apperror.ErrUnknownConnection
	}

	return client.room.ReadyForNext(client.id)
}

// logRejection keeps rejected events off the wire. Drawing rejections are frequent and logged without detail.
func (that *Server) logRejection(log *slog.Logger, event string, err error) {
	switch {
	case errors.Is(err, apperror.ErrUnknownConnection):
		log.Warn("event from a connection without a player", "event", event)
	case errors.Is(err, apperror.ErrNotDrawer), errors.Is(err, apperror.ErrStrokeLimit):
		log.Debug("stroke rejected", "event", event)
	case errors.Is(err, errMalformedPayload):
		log.Warn("malformed payload", "event", event, "error", err)
	default:
		log.Debug("event rejected", "event", event, "error", err)
	}
}

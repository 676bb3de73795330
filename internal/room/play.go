package room

import (
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
)

// Draw relays a stroke from the drawer to everyone else. Strokes from anyone else are dropped
// without any notice to the sender.
func (that *Room) Draw(connID string, stroke entity.DrawData) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.players[connID]; !ok {
		return apperror.ErrUnknownConnection
	}

	if err := that.relay.Accept(connID, that.drawerID(), stroke); err != nil {
		return err
	}

	that.notifier.Notify(that.others(connID), entity.EventDrawing, stroke)

	return nil
}

// Clear empties the canvas. Only the drawer may clear; repeating it has no further effect on the log.
func (that *Room) Clear(connID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.players[connID]; !ok {
		return apperror.ErrUnknownConnection
	}

	if err := that.relay.Clear(connID, that.drawerID()); err != nil {
		return err
	}

	that.notifier.Notify(that.others(connID), entity.EventClearCanvas, nil)

	return nil
}

// Chat broadcasts a message, evaluating it as a guess first when the sender is an unsolved guesser.
func (that *Room) Chat(connID, raw string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	player, ok := that.players[connID]
	if !ok {
		return apperror.ErrUnknownConnection
	}

	message := truncate(strings.TrimSpace(raw), that.conf.MaxChatLength)
	if message == "" {
		return apperror.ErrEmptyMessage
	}

	chat := entity.ChatMessage{Username: player.Username, Message: message}

	if that.phase != entity.PhaseGame || that.round == nil {
		that.broadcast(entity.EventChatMessage, chat)
		return nil
	}

	if that.round.Insider(connID) {
		if that.round.Reveals(message) {
			that.notifier.Notify(that.insiders(), entity.EventChatMessage, chat)
			return nil
		}

		that.broadcast(entity.EventChatMessage, chat)

		return nil
	}

	result := that.evaluator.Evaluate(that.round, connID, message, that.remaining, that.duration)
	if !result.IsCorrect {
		that.broadcast(entity.EventChatMessage, chat)
		return nil
	}

	player.AddScore(result.Award)

	that.logger.Info("correct guess", "connID", connID, "username", player.Username, "award", result.Award)

	that.broadcast(entity.EventChatMessage, entity.ChatMessage{
		Username:       player.Username,
		Message:        player.Username + " guessed the word!",
		IsCorrectGuess: true,
	})
	that.broadcastPlayers()

	if that.round.AllSolved(that.order) {
		that.endRound(that.firstSolver(), entity.EndReasonAllGuessed)
	}

	return nil
}

func (that *Room) insiders() []string {
	ids := make([]string, 0, len(that.order))
	for _, id := range that.order {
		if that.round.Insider(id) {
			ids = append(ids, id)
		}
	}

	return ids
}

func truncate(message string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(message) <= limit {
		return message
	}

	return string([]rune(message)[:limit])
}

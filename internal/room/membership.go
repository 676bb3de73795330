package room

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
)

// Join adds the connection as a player. Rejections are also reported to the connection as a system chat entry.
func (that *Room) Join(connID, username string) (*entity.Player, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "Join", "connID", connID)

	if that.closed {
		return nil, apperror.ErrRoomClosed
	}

	username = strings.TrimSpace(username)

	if err := that.validateJoin(connID, username); err != nil {
		log.Debug("join rejected", "username", username, "error", err)
		that.send(connID, entity.EventChatMessage, entity.NewSystemMessage(that.rejectionText(err, username)))

		return nil, err
	}

	player := &entity.Player{ID: connID, Username: username}
	that.players[connID] = player
	that.order = append(that.order, connID)
	that.scheduler.Join(connID)

	log.Info("player joined", "username", username, "players", len(that.players))

	if that.phase == entity.PhaseLobby {
		that.setPhase(entity.PhaseWaiting)
	} else {
		that.catchUp(connID)
	}

	that.broadcastPlayers()
	that.broadcast(entity.EventChatMessage, entity.NewSystemMessage(username+" joined"))

	that.maybeStartRound()

	return player.Clone(), nil
}

// Leave removes the player of the connection and settles the round if the departure decides it.
func (that *Room) Leave(connID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "Leave", "connID", connID)

	player, ok := that.players[connID]
	if !ok {
		log.Warn("leave from unknown connection ignored")
		return apperror.ErrUnknownConnection
	}

	delete(that.players, connID)
	delete(that.ready, connID)
	that.order = slices.DeleteFunc(that.order, func(id string) bool { return id == connID })
	that.scheduler.Leave(connID)

	log.Info("player left", "username", player.Username, "players", len(that.players))

	if len(that.players) == 0 {
		that.resetToLobby()
		return nil
	}

	that.broadcastPlayers()
	that.broadcast(entity.EventChatMessage, entity.NewSystemMessage(player.Username+" left"))

	switch that.phase {
	case entity.PhaseGame:
		switch {
		case that.round.DrawerID() == connID:
			that.endRound(nil, entity.EndReasonDrawerLeft)
		case len(that.players) == 1:
			that.endRound(nil, entity.EndReasonNoGuessers)
		case that.round.AllSolved(that.order):
			that.endRound(that.firstSolver(), entity.EndReasonAllGuessed)
		}
	case entity.PhaseRoundEnd:
		that.advanceIfAllReady()
	}

	return nil
}

func (that *Room) validateJoin(connID, username string) error {
	if _, ok := that.players[connID]; ok {
		return apperror.ErrAlreadyJoined
	}

	if username == "" || utf8.RuneCountInString(username) > that.conf.MaxUsernameLength {
		return apperror.ErrInvalidUsername
	}

	if strings.IndexFunc(username, unicode.IsControl) >= 0 {
		return apperror.ErrInvalidUsername
	}

	for _, other := range that.players {
		if strings.EqualFold(other.Username, username) {
			return apperror.ErrUsernameTaken
		}
	}

	if len(that.players) >= that.conf.MaxPlayers {
		return apperror.ErrRoomFull
	}

	return nil
}

func (that *Room) rejectionText(err error, username string) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidUsername):
		return fmt.Sprintf("Please choose a username of 1 to %d characters.", that.conf.MaxUsernameLength)
	case errors.Is(err, apperror.ErrUsernameTaken):
		return fmt.Sprintf("The username %q is already taken.", username)
	case errors.Is(err, apperror.ErrRoomFull):
		return "This room is full."
	case errors.Is(err, apperror.ErrAlreadyJoined):
		return "You have already joined the game."
	default:
		return "Could not join the game."
	}
}

// catchUp brings a connection that joined mid-game to the room's current state.
func (that *Room) catchUp(connID string) {
	that.send(connID, entity.EventGameState, that.phase)

	switch that.phase {
	case entity.PhaseGame:
		that.send(connID, entity.EventNewRound, entity.NewRound{
			DrawerID: that.round.DrawerID(),
			Time:     that.remaining,
		})
		that.send(connID, entity.EventTimer, that.remaining)

		for _, s := range that.relay.Snapshot() {
			that.send(connID, entity.EventDrawing, s)
		}
	case entity.PhaseRoundEnd:
		if that.lastEnd != nil {
			that.send(connID, entity.EventRoundEnd, that.lastEnd)
		}
	}
}

func (that *Room) resetToLobby() {
	that.stopTimers()
	that.gen++
	that.round = nil
	that.lastEnd = nil
	that.relay.Reset()
	clear(that.ready)
	that.phase = entity.PhaseLobby

	that.logger.Info("room is empty, back to lobby")
}

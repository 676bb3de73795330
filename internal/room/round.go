package room

import (
	"fmt"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
	"github.com/rocketscienceinc/scribble-backend/internal/guess"
)

// ReadyForNext records that the player has seen the round result.
func (that *Room) ReadyForNext(connID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.players[connID]; !ok {
		that.logger.Warn("ready from unknown connection ignored", "connID", connID)
		return apperror.ErrUnknownConnection
	}

	if that.phase != entity.PhaseRoundEnd {
		return fmt.Errorf("%w: %s", apperror.ErrWrongPhase, that.phase)
	}

	that.ready[connID] = struct{}{}
	that.advanceIfAllReady()

	return nil
}

func (that *Room) maybeStartRound() {
	if that.phase != entity.PhaseWaiting || len(that.players) < that.conf.MinPlayers {
		return
	}

	that.startRound()
}

func (that *Room) startRound() {
	log := that.logger.With("method", "startRound")

	next, err := that.scheduler.StartRound()
	if err != nil {
		log.Error("failed to start round", "error", err)
		return
	}

	that.gen++
	that.rounds++
	that.round = guess.NewRound(next.Word, next.DrawerID)
	that.drawerName = that.players[next.DrawerID].Username
	that.remaining = next.Duration
	that.duration = next.Duration
	that.lastEnd = nil
	clear(that.ready)
	that.relay.Reset()

	log.Info("round started", "round", that.rounds, "drawerID", next.DrawerID, "duration", next.Duration)

	that.setPhase(entity.PhaseGame)

	// the word only ever goes to the drawer
	for _, id := range that.order {
		payload := entity.NewRound{DrawerID: next.DrawerID, Time: next.Duration}
		if id == next.DrawerID {
			payload.Word = that.round.Word()
		}

		that.send(id, entity.EventNewRound, payload)
	}

	that.broadcast(entity.EventTimer, that.remaining)
	that.countdown.Start(that.gen, that.tick)
}

// tick runs on the countdown goroutine. Ticks from a round that already ended are dropped.
func (that *Room) tick(gen uint64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || gen != that.gen || that.phase != entity.PhaseGame {
		return
	}

	that.remaining--
	if that.remaining <= 0 {
		that.remaining = 0
		that.broadcast(entity.EventTimer, 0)
		that.endRound(nil, entity.EndReasonTimeout)

		return
	}

	that.broadcast(entity.EventTimer, that.remaining)
}

func (that *Room) endRound(winner *entity.Player, reason entity.EndReason) {
	that.countdown.Cancel()
	that.gen++

	result := &entity.RoundEnd{
		Winner: winner.Clone(),
		Word:   that.round.Word(),
	}
	that.lastEnd = result
	clear(that.ready)

	that.logger.Info("round ended", "round", that.rounds, "reason", reason, "winner", winnerName(winner))

	that.phase = entity.PhaseRoundEnd
	that.broadcast(entity.EventRoundEnd, result)
	that.broadcast(entity.EventGameState, entity.PhaseRoundEnd)
	that.broadcastPlayers()

	that.archive(winner, reason)

	gen := that.gen
	that.readyTimer = that.clock.AfterFunc(that.conf.ReadyTimeout, func() {
		that.readyTimeout(gen)
	})
}

func (that *Room) readyTimeout(gen uint64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || gen != that.gen || that.phase != entity.PhaseRoundEnd {
		return
	}

	that.logger.Debug("ready timeout elapsed")
	that.nextRound()
}

func (that *Room) advanceIfAllReady() {
	for _, id := range that.order {
		if _, ok := that.ready[id]; !ok {
			return
		}
	}

	that.nextRound()
}

func (that *Room) nextRound() {
	if that.readyTimer != nil {
		that.readyTimer.Stop()
		that.readyTimer = nil
	}

	that.gen++
	that.setPhase(entity.PhaseWaiting)
	that.maybeStartRound()
}

// firstSolver is the fastest solver who is still in the room.
func (that *Room) firstSolver() *entity.Player {
	for _, id := range that.round.Solved() {
		if player, ok := that.players[id]; ok {
			return player
		}
	}

	return nil
}

func (that *Room) archive(winner *entity.Player, reason entity.EndReason) {
	if that.history == nil {
		return
	}

	result := entity.RoundResult{
		Room:    that.code,
		Round:   that.rounds,
		Drawer:  that.drawerName,
		Word:    that.round.Word(),
		Winner:  winnerName(winner),
		Reason:  reason,
		Scores:  that.roster(),
		EndedAt: that.clock.Now(),
	}

	that.history.Record(result)
}

func winnerName(winner *entity.Player) string {
	if winner == nil {
		return ""
	}

	return winner.Username
}

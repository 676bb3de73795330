package room

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/rocketscienceinc/scribble-backend/internal/common/clock"
	"github.com/rocketscienceinc/scribble-backend/internal/config"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
	"github.com/rocketscienceinc/scribble-backend/internal/guess"
	"github.com/rocketscienceinc/scribble-backend/internal/scheduler"
	"github.com/rocketscienceinc/scribble-backend/internal/stroke"
)

// Notifier delivers one event to a set of connections. It is called with the room lock held,
// so it must not block and must not call back into the room.
type Notifier interface {
	Notify(connIDs []string, event string, payload any)
}

type historyRecorder interface {
	Record(result entity.RoundResult)
}

type wordPicker interface {
	Pick(exclude []string) (string, error)
}

type Deps struct {
	Notifier Notifier
	Words    wordPicker
	Clock    clock.Clock
	History  historyRecorder
}

// Room is the authority of one game room. Every exported method takes the room lock for the
// whole event, so events of one room are handled one at a time, in arrival order.
type Room struct {
	mu     sync.Mutex
	code   string
	logger *slog.Logger
	conf   config.Game

	notifier  Notifier
	history   historyRecorder
	clock     clock.Clock
	scheduler *scheduler.Scheduler
	countdown *scheduler.Countdown
	evaluator *guess.Evaluator
	relay     *stroke.Relay

	players    map[string]*entity.Player
	order      []string
	phase      entity.Phase
	closed     bool
	gen        uint64
	rounds     uint64
	round      *guess.Round
	drawerName string
	remaining  int
	duration   int
	lastEnd    *entity.RoundEnd
	ready      map[string]struct{}
	readyTimer clock.Timer
}

func New(code string, logger *slog.Logger, conf config.Game, deps Deps) *Room {
	clk := deps.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Room{
		code:   code,
		logger: logger.With("component", "room", "room", code),
		conf:   conf,

		notifier:  deps.Notifier,
		history:   deps.History,
		clock:     clk,
		scheduler: scheduler.New(deps.Words, conf.RecentWords, conf.RoundSeconds()),
		countdown: scheduler.NewCountdown(clk, conf.TickInterval),
		evaluator: guess.NewEvaluator(guess.Policy{
			Award:      conf.CorrectGuessAward,
			TimeScaled: conf.TimeScaledAward,
			MinAward:   conf.MinAward,
		}),
		relay: stroke.NewRelay(conf.MaxStrokes),

		players: make(map[string]*entity.Player),
		phase:   entity.PhaseLobby,
		ready:   make(map[string]struct{}),
	}
}

func (that *Room) Code() string {
	return that.code
}

func (that *Room) Info() entity.RoomInfo {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.RoomInfo{
		Code:    that.code,
		Players: len(that.players),
		Phase:   that.phase,
	}
}

func (that *Room) Phase() entity.Phase {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.phase
}

// Players returns a copy of the roster in join order.
func (that *Room) Players() []entity.Player {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.roster()
}

// DrawerID is empty outside the Game phase.
func (that *Room) DrawerID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.drawerID()
}

// Snapshot returns the strokes drawn since the last clear.
func (that *Room) Snapshot() []entity.DrawData {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.relay.Snapshot()
}

// Close stops the room's timers. Further joins fail with ErrRoomClosed.
func (that *Room) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.shutdown()
}

// closeIfEmpty is used by the registry to retire a room without racing a concurrent join.
func (that *Room) closeIfEmpty() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.players) > 0 {
		return false
	}

	that.shutdown()

	return true
}

func (that *Room) shutdown() {
	that.closed = true
	that.stopTimers()
	that.gen++
}

func (that *Room) stopTimers() {
	that.countdown.Cancel()

	if that.readyTimer != nil {
		that.readyTimer.Stop()
		that.readyTimer = nil
	}
}

func (that *Room) drawerID() string {
	if that.phase != entity.PhaseGame || that.round == nil {
		return ""
	}

	return that.round.DrawerID()
}

func (that *Room) roster() []entity.Player {
	roster := make([]entity.Player, 0, len(that.order))
	for _, id := range that.order {
		roster = append(roster, *that.players[id])
	}

	return roster
}

func (that *Room) setPhase(next entity.Phase) {
	if !that.phase.CanTransitionTo(next) {
		that.logger.Error("invalid phase transition", "from", that.phase, "to", next)
	}

	that.logger.Debug("phase changed", "from", that.phase, "to", next)
	that.phase = next
	that.broadcast(entity.EventGameState, next)
}

func (that *Room) broadcast(event string, payload any) {
	if len(that.order) == 0 {
		return
	}

	that.notifier.Notify(slices.Clone(that.order), event, payload)
}

func (that *Room) send(connID, event string, payload any) {
	that.notifier.Notify([]string{connID}, event, payload)
}

func (that *Room) others(connID string) []string {
	ids := make([]string, 0, len(that.order))
	for _, id := range that.order {
		if id != connID {
			ids = append(ids, id)
		}
	}

	return ids
}

func (that *Room) broadcastPlayers() {
	that.broadcast(entity.EventUpdatePlayers, that.roster())
}

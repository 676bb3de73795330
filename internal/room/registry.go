package room

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"sync"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
	"github.com/rocketscienceinc/scribble-backend/internal/config"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
)

const DefaultCode = "main"

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// ParseCode returns the default room for an empty code.
func ParseCode(code string) (string, error) {
	if code == "" {
		return DefaultCode, nil
	}

	if !codePattern.MatchString(code) {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidRoomCode, code)
	}

	return code, nil
}

// Registry owns the rooms of the process, keyed by code. Rooms are created on first join and
// retired when their last player leaves.
type Registry struct {
	mu     sync.Mutex
	base   *slog.Logger
	logger *slog.Logger
	conf   config.Game
	deps   Deps
	rooms  map[string]*Room
}

func NewRegistry(logger *slog.Logger, conf config.Game, deps Deps) *Registry {
	return &Registry{
		base:   logger,
		logger: logger.With("component", "registry"),
		conf:   conf,
		deps:   deps,
		rooms:  make(map[string]*Room),
	}
}

// Join places the connection in the room with the given code.
func (that *Registry) Join(code, connID, username string) (*Room, *entity.Player, error) {
	for {
		room := that.getOrCreate(code)

		player, err := room.Join(connID, username)
		if errors.Is(err, apperror.ErrRoomClosed) {
			// retired between lookup and join, try a fresh one
			continue
		}

		if err != nil {
			that.release(room)
			return nil, nil, fmt.Errorf("failed to join room %s: %w", code, err)
		}

		return room, player, nil
	}
}

func (that *Registry) Leave(room *Room, connID string) error {
	if err := room.Leave(connID); err != nil {
		return fmt.Errorf("failed to leave room %s: %w", room.Code(), err)
	}

	that.release(room)

	return nil
}

func (that *Registry) Lookup(code string) (*Room, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms[code]

	return room, ok
}

// List describes every live room, ordered by code.
func (that *Registry) List() []entity.RoomInfo {
	that.mu.Lock()
	rooms := make([]*Room, 0, len(that.rooms))
	for _, room := range that.rooms {
		rooms = append(rooms, room)
	}
	that.mu.Unlock()

	infos := make([]entity.RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		infos = append(infos, room.Info())
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Code < infos[j].Code })

	return infos
}

func (that *Registry) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for code, room := range that.rooms {
		room.Close()
		delete(that.rooms, code)
	}
}

func (that *Registry) getOrCreate(code string) *Room {
	that.mu.Lock()
	defer that.mu.Unlock()

	if room, ok := that.rooms[code]; ok {
		return room
	}

	room := New(code, that.base, that.conf, that.deps)
	that.rooms[code] = room

	that.logger.Info("room created", "room", code)

	return room
}

func (that *Registry) release(room *Room) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.rooms[room.Code()] != room {
		return
	}

	if room.closeIfEmpty() {
		delete(that.rooms, room.Code())
		that.logger.Info("room removed", "room", room.Code())
	}
}

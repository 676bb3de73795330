package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
	"github.com/rocketscienceinc/scribble-backend/internal/common/clock"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
	"github.com/rocketscienceinc/scribble-backend/internal/wordbank"
)

func newTestRegistry(t *testing.T) (*Registry, *recorder) {
	t.Helper()

	bank, err := wordbank.New([]string{"apple"}, nil)
	require.NoError(t, err)

	notes := &recorder{}
	registry := NewRegistry(discardLogger(), testGameConfig(), Deps{
		Notifier: notes,
		Words:    bank,
		Clock:    clock.NewFake(time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)),
	})
	t.Cleanup(registry.Close)

	return registry, notes
}

func TestParseCode(t *testing.T) {
	t.Run("Empty code is the default room", func(t *testing.T) {
		code, err := ParseCode("")

		require.NoError(t, err)
		assert.Equal(t, DefaultCode, code)
	})

	t.Run("Valid codes pass through", func(t *testing.T) {
		for _, in := range []string{"main", "Room_1", "a-b-c", "x"} {
			code, err := ParseCode(in)

			require.NoError(t, err, in)
			assert.Equal(t, in, code)
		}
	})

	t.Run("Invalid codes are rejected", func(t *testing.T) {
		for _, in := range []string{"has space", "slash/room", "ünïcode", "abcdefghijklmnopqrstuvwxyz0123456789"} {
			_, err := ParseCode(in)

			require.ErrorIs(t, err, apperror.ErrInvalidRoomCode, in)
		}
	})
}

func TestRegistry(t *testing.T) {
	t.Run("First join creates the room", func(t *testing.T) {
		// Given: an empty registry
		registry, _ := newTestRegistry(t)

		// When: a player joins a new code
		room, player, err := registry.Join("blue", "a", "Alice")

		// Then: the room exists and holds the player
		require.NoError(t, err)
		assert.Equal(t, "blue", room.Code())
		assert.Equal(t, "Alice", player.Username)

		found, ok := registry.Lookup("blue")
		require.True(t, ok)
		assert.Same(t, room, found)
	})

	t.Run("Rooms are isolated", func(t *testing.T) {
		// Given: players in two rooms
		registry, notes := newTestRegistry(t)
		blue, _, err := registry.Join("blue", "a", "Alice")
		require.NoError(t, err)
		_, _, err = registry.Join("red", "b", "Bob")
		require.NoError(t, err)

		// When: listing rooms and chatting in one of them
		require.NoError(t, blue.Chat("a", "hello"))

		// Then: each room has one player and the chat stays in its room
		assert.Equal(t, []entity.RoomInfo{
			{Code: "blue", Players: 1, Phase: entity.PhaseWaiting},
			{Code: "red", Players: 1, Phase: entity.PhaseWaiting},
		}, registry.List())
		assert.NotContains(t, notes.received("b", entity.EventChatMessage), entity.ChatMessage{Username: "Alice", Message: "hello"})
	})

	t.Run("Same username in different rooms", func(t *testing.T) {
		registry, _ := newTestRegistry(t)

		_, _, err := registry.Join("blue", "a", "Alice")
		require.NoError(t, err)
		_, _, err = registry.Join("red", "b", "Alice")
		require.NoError(t, err)
	})

	t.Run("Last leave removes the room", func(t *testing.T) {
		// Given: a room with two players
		registry, _ := newTestRegistry(t)
		room, _, err := registry.Join("blue", "a", "Alice")
		require.NoError(t, err)
		_, _, err = registry.Join("blue", "b", "Bob")
		require.NoError(t, err)

		// When: both leave
		require.NoError(t, registry.Leave(room, "a"))
		_, stillThere := registry.Lookup("blue")
		require.NoError(t, registry.Leave(room, "b"))

		// Then: the room is kept while occupied and dropped when empty
		assert.True(t, stillThere)
		_, ok := registry.Lookup("blue")
		assert.False(t, ok)
		assert.Empty(t, registry.List())

		// And: the retired room refuses joins while the code gets a fresh room
		_, err = room.Join("c", "Carol")
		require.ErrorIs(t, err, apperror.ErrRoomClosed)

		fresh, _, err := registry.Join("blue", "c", "Carol")
		require.NoError(t, err)
		assert.NotSame(t, room, fresh)
	})

	t.Run("Rejected first join does not leave an empty room", func(t *testing.T) {
		// Given: an empty registry
		registry, _ := newTestRegistry(t)

		// When: the first join has an invalid name
		_, _, err := registry.Join("blue", "a", "")

		// Then: the error is returned and no room lingers
		require.ErrorIs(t, err, apperror.ErrInvalidUsername)
		assert.Empty(t, registry.List())
	})

	t.Run("Leave of an unknown connection", func(t *testing.T) {
		registry, _ := newTestRegistry(t)
		room, _, err := registry.Join("blue", "a", "Alice")
		require.NoError(t, err)

		require.ErrorIs(t, registry.Leave(room, "ghost"), apperror.ErrUnknownConnection)
		assert.Len(t, registry.List(), 1)
	})
}

package stroke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
)

func segment(x float64) entity.DrawData {
	return entity.DrawData{
		From:      entity.Point{X: x, Y: x},
		To:        entity.Point{X: x + 1, Y: x + 1},
		Color:     "#ff0000",
		LineWidth: 3,
	}
}

func TestRelay_Accept(t *testing.T) {
	t.Run("Keeps the drawer's strokes in order", func(t *testing.T) {
		// Given: an empty relay
		relay := NewRelay(100)

		// When: the drawer sends three strokes
		for i := range 3 {
			require.NoError(t, relay.Accept("drawer", "drawer", segment(float64(i))))
		}

		// Then: the snapshot replays them in order
		assert.Equal(t, []entity.DrawData{segment(0), segment(1), segment(2)}, relay.Snapshot())
	})

	t.Run("Rejects strokes from anyone but the drawer", func(t *testing.T) {
		relay := NewRelay(100)

		err := relay.Accept("guesser", "drawer", segment(1))

		require.ErrorIs(t, err, apperror.ErrNotDrawer)
		assert.Zero(t, relay.Len())
	})

	t.Run("Rejects strokes when nobody draws", func(t *testing.T) {
		relay := NewRelay(100)

		require.ErrorIs(t, relay.Accept("", "", segment(1)), apperror.ErrNotDrawer)
	})

	t.Run("Rejects malformed strokes", func(t *testing.T) {
		relay := NewRelay(100)
		broken := segment(1)
		broken.LineWidth = -1

		require.ErrorIs(t, relay.Accept("drawer", "drawer", broken), apperror.ErrInvalidStroke)
	})

	t.Run("Stops at the limit", func(t *testing.T) {
		relay := NewRelay(2)
		require.NoError(t, relay.Accept("d", "d", segment(1)))
		require.NoError(t, relay.Accept("d", "d", segment(2)))

		require.ErrorIs(t, relay.Accept("d", "d", segment(3)), apperror.ErrStrokeLimit)
		assert.Equal(t, 2, relay.Len())
	})
}

func TestRelay_Clear(t *testing.T) {
	t.Run("Repeated clears leave an empty log", func(t *testing.T) {
		// Given: a relay with strokes
		relay := NewRelay(100)
		require.NoError(t, relay.Accept("d", "d", segment(1)))

		// When: the drawer clears several times
		for range 3 {
			require.NoError(t, relay.Clear("d", "d"))
		}

		// Then: the log is empty
		assert.Empty(t, relay.Snapshot())
	})

	t.Run("Only the drawer can clear", func(t *testing.T) {
		relay := NewRelay(100)
		require.NoError(t, relay.Accept("d", "d", segment(1)))

		require.ErrorIs(t, relay.Clear("g", "d"), apperror.ErrNotDrawer)
		assert.Equal(t, 1, relay.Len())
	})

	t.Run("Snapshot is detached from the log", func(t *testing.T) {
		relay := NewRelay(100)
		require.NoError(t, relay.Accept("d", "d", segment(1)))

		snapshot := relay.Snapshot()
		relay.Reset()

		assert.Len(t, snapshot, 1)
	})
}

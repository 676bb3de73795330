package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase_CanTransitionTo(t *testing.T) {
	t.Run("Follows the round cycle", func(t *testing.T) {
		// Given: the phases of one full cycle
		cycle := []Phase{PhaseLobby, PhaseWaiting, PhaseGame, PhaseRoundEnd, PhaseWaiting, PhaseGame}

		// When/Then: every step of the cycle is allowed
		for i := 0; i+1 < len(cycle); i++ {
			assert.True(t, cycle[i].CanTransitionTo(cycle[i+1]), "%s -> %s", cycle[i], cycle[i+1])
		}
	})

	t.Run("Rejects skipping phases", func(t *testing.T) {
		assert.False(t, PhaseLobby.CanTransitionTo(PhaseGame))
		assert.False(t, PhaseWaiting.CanTransitionTo(PhaseRoundEnd))
		assert.False(t, PhaseGame.CanTransitionTo(PhaseWaiting))
		assert.False(t, PhaseRoundEnd.CanTransitionTo(PhaseGame))
	})

	t.Run("Any phase can fall back to lobby", func(t *testing.T) {
		for _, phase := range []Phase{PhaseWaiting, PhaseGame, PhaseRoundEnd} {
			assert.True(t, phase.CanTransitionTo(PhaseLobby))
		}
	})
}

func TestPhase_Validate(t *testing.T) {
	require.NoError(t, PhaseGame.Validate())
	require.Error(t, Phase("Drawing").Validate())
}

func TestPlayer_AddScore(t *testing.T) {
	t.Run("Score never decreases", func(t *testing.T) {
		// Given: a player with some points
		player := &Player{ID: "c1", Username: "alice", Score: 100}

		// When: adding a negative and a positive award
		player.AddScore(-50)
		player.AddScore(40)

		// Then: only the positive award counts
		assert.Equal(t, 140, player.Score)
	})

	t.Run("Clone is detached from the original", func(t *testing.T) {
		player := &Player{ID: "c1", Username: "alice"}

		clone := player.Clone()
		clone.Score = 10

		assert.Zero(t, player.Score)
		assert.Nil(t, (*Player)(nil).Clone())
	})
}

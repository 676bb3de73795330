package guess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	for _, raw := range []string{" CAT ", "cat", "Cat", "\tcAt\n"} {
		assert.Equal(t, "cat", Normalize(raw), "input %q", raw)
	}

	assert.Equal(t, "ice cream", Normalize("  Ice   CREAM "))
}

func TestEvaluator_Evaluate(t *testing.T) {
	evaluator := NewEvaluator(Policy{Award: 100})

	t.Run("Matches case and whitespace insensitively", func(t *testing.T) {
		for _, raw := range []string{" CAT ", "cat", "Cat"} {
			// Given: a fresh round with the word cat
			round := NewRound("cat", "drawer")

			// When: a guesser sends a variant of the word
			result := evaluator.Evaluate(round, "guesser", raw, 50, 80)

			// Then: it is a correct guess worth the fixed award
			assert.Equal(t, Result{Accepted: true, IsCorrect: true, Award: 100}, result, "input %q", raw)
			assert.True(t, round.HasSolved("guesser"))
		}
	})

	t.Run("A wrong guess is accepted but not correct", func(t *testing.T) {
		round := NewRound("apple", "drawer")

		result := evaluator.Evaluate(round, "guesser", "banana", 50, 80)

		assert.Equal(t, Result{Accepted: true}, result)
		assert.False(t, round.HasSolved("guesser"))
	})

	t.Run("The drawer is never evaluated", func(t *testing.T) {
		// Given: the drawer types the secret word
		round := NewRound("apple", "drawer")

		// When: evaluating the drawer's message
		result := evaluator.Evaluate(round, "drawer", "apple", 50, 80)

		// Then: it is not a guess
		assert.False(t, result.Accepted)
		assert.False(t, result.IsCorrect)
		assert.Empty(t, round.Solved())
	})

	t.Run("A solver is not scored twice", func(t *testing.T) {
		round := NewRound("apple", "drawer")
		require.True(t, evaluator.Evaluate(round, "guesser", "apple", 50, 80).IsCorrect)

		result := evaluator.Evaluate(round, "guesser", "apple", 40, 80)

		assert.False(t, result.Accepted)
		assert.Equal(t, []string{"guesser"}, round.Solved())
	})

	t.Run("Time scaled award shrinks but keeps the minimum", func(t *testing.T) {
		scaled := NewEvaluator(Policy{Award: 100, TimeScaled: true, MinAward: 10})

		assert.Equal(t, 50, scaled.Evaluate(NewRound("cat", "d"), "g", "cat", 40, 80).Award)
		assert.Equal(t, 10, scaled.Evaluate(NewRound("cat", "d"), "g", "cat", 1, 80).Award)
		assert.Equal(t, 100, scaled.Evaluate(NewRound("cat", "d"), "g", "cat", 120, 80).Award)
	})
}

func TestRound_AllSolved(t *testing.T) {
	evaluator := NewEvaluator(Policy{Award: 100})

	t.Run("Needs every guesser", func(t *testing.T) {
		round := NewRound("cat", "a")
		players := []string{"a", "b", "c"}

		evaluator.Evaluate(round, "b", "cat", 10, 80)
		assert.False(t, round.AllSolved(players))

		evaluator.Evaluate(round, "c", "cat", 10, 80)
		assert.True(t, round.AllSolved(players))
		assert.Equal(t, []string{"b", "c"}, round.Solved())
	})

	t.Run("A drawer alone never solves the round", func(t *testing.T) {
		assert.False(t, NewRound("cat", "a").AllSolved([]string{"a"}))
	})
}

func TestRound_Reveals(t *testing.T) {
	round := NewRound("Ice Cream", "a")

	assert.True(t, round.Reveals("it's ICE   cream!"))
	assert.False(t, round.Reveals("frozen dessert"))
	assert.True(t, round.Insider("a"))
	assert.False(t, round.Insider("b"))
}

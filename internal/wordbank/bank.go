package wordbank

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
	"github.com/rocketscienceinc/scribble-backend/internal/guess"
)

// Bank is a shared, read-only list of guessable words. Safe for concurrent use by many rooms.
type Bank struct {
	mu    sync.Mutex
	words []string
	rnd   *rand.Rand
}

// New normalizes and de-duplicates words. A nil rnd seeds from the runtime.
func New(words []string, rnd *rand.Rand) (*Bank, error) {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // word choice is not security sensitive
	}

	seen := make(map[string]struct{}, len(words))
	cleaned := make([]string, 0, len(words))

	for _, word := range words {
		word = guess.Normalize(word)
		if word == "" {
			continue
		}

		if _, ok := seen[word]; ok {
			continue
		}

		seen[word] = struct{}{}
		cleaned = append(cleaned, word)
	}

	if len(cleaned) == 0 {
		return nil, apperror.ErrEmptyWordBank
	}

	return &Bank{words: cleaned, rnd: rnd}, nil
}

// Pick returns a uniformly random word not in exclude. When exclude covers the whole bank
// the exclusion is dropped rather than failing the round.
func (that *Bank) Pick(exclude []string) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.words) == 0 {
		return "", apperror.ErrEmptyWordBank
	}

	candidates := that.words
	if len(exclude) > 0 {
		candidates = make([]string, 0, len(that.words))
		for _, word := range that.words {
			if !slices.Contains(exclude, word) {
				candidates = append(candidates, word)
			}
		}

		if len(candidates) == 0 {
			candidates = that.words
		}
	}

	return candidates[that.rnd.IntN(len(candidates))], nil
}

func (that *Bank) Len() int {
	return len(that.words)
}

func (that *Bank) Words() []string {
	return slices.Clone(that.words)
}

func (that *Bank) String() string {
	return fmt.Sprintf("wordbank(%d words)", len(that.words))
}

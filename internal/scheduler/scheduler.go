package scheduler

import (
	"fmt"
	"slices"
)

type wordPicker interface {
	Pick(exclude []string) (string, error)
}

type Round struct {
	DrawerID string
	Word     string
	Duration int
}

// Scheduler picks the next drawer and word of one room.
type Scheduler struct {
	rotation    Rotation
	words       wordPicker
	recent      []string
	recentLimit int
	duration    int
}

// New - recentLimit is how many of the last words may not repeat, duration is the round length in ticks.
func New(words wordPicker, recentLimit, duration int) *Scheduler {
	return &Scheduler{
		words:       words,
		recentLimit: recentLimit,
		duration:    duration,
	}
}

func (that *Scheduler) Join(playerID string) {
	that.rotation.Add(playerID)
}

func (that *Scheduler) Leave(playerID string) {
	that.rotation.Remove(playerID)
}

func (that *Scheduler) Order() []string {
	return that.rotation.Order()
}

func (that *Scheduler) StartRound() (Round, error) {
	drawerID, err := that.rotation.Next()
	if err != nil {
		return Round{}, fmt.Errorf("failed to pick drawer: %w", err)
	}

	word, err := that.words.Pick(that.recent)
	if err != nil {
		return Round{}, fmt.Errorf("failed to pick word: %w", err)
	}

	that.remember(word)

	return Round{
		DrawerID: drawerID,
		Word:     word,
		Duration: that.duration,
	}, nil
}

func (that *Scheduler) remember(word string) {
	if that.recentLimit <= 0 {
		return
	}

	that.recent = append(that.recent, word)
	if len(that.recent) > that.recentLimit {
		that.recent = slices.Delete(that.recent, 0, len(that.recent)-that.recentLimit)
	}
}

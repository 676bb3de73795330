package scheduler

import (
	"slices"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
)

// Rotation is the drawer order. Joiners go to the tail, leavers are spliced out and the
// relative order of everyone else is kept.
type Rotation struct {
	order []string
	next  int
}

func (that *Rotation) Add(id string) bool {
	if slices.Contains(that.order, id) {
		return false
	}

	that.order = append(that.order, id)

	return true
}

func (that *Rotation) Remove(id string) bool {
	idx := slices.Index(that.order, id)
	if idx < 0 {
		return false
	}

	that.order = slices.Delete(that.order, idx, idx+1)

	// keep the cursor on the same upcoming player
	if idx < that.next {
		that.next--
	}

	if that.next >= len(that.order) {
		that.next = 0
	}

	return true
}

// Next returns the upcoming drawer and advances the cursor.
func (that *Rotation) Next() (string, error) {
	if len(that.order) == 0 {
		return "", apperror.ErrNoPlayers
	}

	id := that.order[that.next]
	that.next = (that.next + 1) % len(that.order)

	return id, nil
}

func (that *Rotation) Order() []string {
	return slices.Clone(that.order)
}

func (that *Rotation) Len() int {
	return len(that.order)
}

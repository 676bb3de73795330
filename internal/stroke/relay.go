package stroke

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/scribble-backend/internal/apperror"
	"github.com/rocketscienceinc/scribble-backend/internal/entity"
)

// Relay is the single-writer stroke log of one room. It is not safe for concurrent use;
// the owning room serializes access.
type Relay struct {
	limit   int
	strokes []entity.DrawData
}

func NewRelay(limit int) *Relay {
	return &Relay{limit: limit}
}

// Accept appends a stroke from sender if sender is the drawer. The caller relays it only on nil error.
func (that *Relay) Accept(sender, drawerID string, stroke entity.DrawData) error {
	if drawerID == "" || sender != drawerID {
		return apperror.ErrNotDrawer
	}

	if err := stroke.Validate(); err != nil {
		return err
	}

	if that.limit > 0 && len(that.strokes) >= that.limit {
		return fmt.Errorf("%w: %d strokes", apperror.ErrStrokeLimit, that.limit)
	}

	that.strokes = append(that.strokes, stroke)

	return nil
}

// Clear empties the log if sender is the drawer. Clearing an empty log is a no-op.
func (that *Relay) Clear(sender, drawerID string) error {
	if drawerID == "" || sender != drawerID {
		return apperror.ErrNotDrawer
	}

	that.Reset()

	return nil
}

func (that *Relay) Reset() {
	that.strokes = that.strokes[:0]
}

// Snapshot returns the strokes since the last clear, in order.
func (that *Relay) Snapshot() []entity.DrawData {
	return slices.Clone(that.strokes)
}

func (that *Relay) Len() int {
	return len(that.strokes)
}

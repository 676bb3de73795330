package scheduler

import (
	"time"

	"github.com/rocketscienceinc/scribble-backend/internal/common/clock"
)

// Countdown drives the periodic tick of a round. Ticks carry the round generation they were
// started for; a tick that loses the race against Cancel must be discarded by the receiver.
type Countdown struct {
	clock    clock.Clock
	interval time.Duration
	stop     chan struct{}
}

func NewCountdown(clk clock.Clock, interval time.Duration) *Countdown {
	return &Countdown{
		clock:    clk,
		interval: interval,
	}
}

// Start cancels any running countdown and ticks for round gen until cancelled.
func (that *Countdown) Start(gen uint64, onTick func(gen uint64)) {
	that.Cancel()

	stop := make(chan struct{})
	ticker := that.clock.NewTicker(that.interval)
	that.stop = stop

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C():
				select {
				case <-stop:
					return
				default:
				}

				onTick(gen)
			}
		}
	}()
}

// Cancel never blocks, so it is safe to call from inside onTick.
func (that *Countdown) Cancel() {
	if that.stop != nil {
		close(that.stop)
		that.stop = nil
	}
}

func (that *Countdown) Running() bool {
	return that.stop != nil
}
